package ports

import (
	"context"

	"github.com/terravista/realty-api/internal/core/domain"
)

// ReviewRepository persists visitor testimonials.
type ReviewRepository interface {
	Insert(ctx context.Context, review *domain.Review) (*domain.Review, error)
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	List(ctx context.Context, approvedOnly bool) ([]domain.Review, error)
	SetApproved(ctx context.Context, id string, approved bool) error
	Delete(ctx context.Context, id string) error
}
