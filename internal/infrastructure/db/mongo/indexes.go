package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureAllIndexes creates every index the repositories depend on. Run once
// at startup, before the server accepts traffic.
func EnsureAllIndexes(ctx context.Context, db *mongo.Database) error {
	ensurers := []interface {
		EnsureIndexes(ctx context.Context) error
	}{
		NewAccountRepository(db),
		NewAssetRepository(db),
		NewPropertyRepository(db),
		NewInquiryRepository(db),
		NewReviewRepository(db),
	}
	for _, e := range ensurers {
		if err := e.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("ensure indexes: %w", err)
		}
	}
	return nil
}
