package ports

import (
	"context"

	"github.com/terravista/realty-api/internal/core/domain"
)

// AssetRepository persists binary assets. Each kind maps to its own
// collection; implementations must return domain.ErrAssetNotFound for
// unknown identifiers.
type AssetRepository interface {
	Insert(ctx context.Context, kind domain.AssetKind, asset *domain.Asset) (*domain.Asset, error)
	FindByID(ctx context.Context, kind domain.AssetKind, id string) (*domain.Asset, error)
	Delete(ctx context.Context, kind domain.AssetKind, id string) error
}
