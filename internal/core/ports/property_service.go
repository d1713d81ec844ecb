package ports

import (
	"context"

	"github.com/terravista/realty-api/internal/core/domain"
)

// CreatePropertyInput is the service DTO for creating or replacing a property.
type CreatePropertyInput struct {
	Title       string
	Slug        string
	Description string
	Location    string
	PriceRange  string
	Status      string
	Amenities   []string
	ImageIDs    []string
	VideoID     string
	Featured    bool
}

// PropertyPage is a paginated list result.
type PropertyPage struct {
	Items      []domain.Property
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// PropertyService manages the property catalogue.
type PropertyService interface {
	Create(ctx context.Context, input CreatePropertyInput) (*domain.Property, error)
	Get(ctx context.Context, id string) (*domain.Property, error)
	// GetBySlug resolves a public page view and counts it.
	GetBySlug(ctx context.Context, slug string) (*domain.Property, error)
	List(ctx context.Context, filter PropertyFilter) (*PropertyPage, error)
	Update(ctx context.Context, id string, input CreatePropertyInput) (*domain.Property, error)
	Delete(ctx context.Context, id string) error
}
