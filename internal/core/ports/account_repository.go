package ports

import (
	"context"

	"github.com/terravista/realty-api/internal/core/domain"
)

// AccountRepository defines the interface for back-office account persistence.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}
