package ports

import (
	"context"

	"github.com/terravista/realty-api/internal/core/domain"
)

// PropertyFilter narrows list queries. Zero values mean "no constraint".
type PropertyFilter struct {
	Status   domain.PropertyStatus
	Featured *bool
	Page     int
	Limit    int
}

// PropertyRepository persists marketed properties.
type PropertyRepository interface {
	Insert(ctx context.Context, p *domain.Property) (*domain.Property, error)
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Property, error)
	List(ctx context.Context, filter PropertyFilter) ([]domain.Property, int64, error)
	Update(ctx context.Context, p *domain.Property) error
	Delete(ctx context.Context, id string) error
	// IncrementViews atomically bumps the view counter without racing
	// concurrent readers of the rest of the document.
	IncrementViews(ctx context.Context, id string) error
}
