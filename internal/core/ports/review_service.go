package ports

import (
	"context"

	"github.com/terravista/realty-api/internal/core/domain"
)

// CreateReviewInput is the service DTO for a new testimonial.
type CreateReviewInput struct {
	Author  string
	Email   string
	Rating  int
	Comment string
}

// ReviewService manages testimonials. New reviews start unapproved and stay
// off the public list until an admin approves them.
type ReviewService interface {
	Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error)
	List(ctx context.Context, approvedOnly bool) ([]domain.Review, error)
	Approve(ctx context.Context, id string) (*domain.Review, error)
	Delete(ctx context.Context, id string) error
}
