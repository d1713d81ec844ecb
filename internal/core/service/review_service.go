package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/terravista/realty-api/internal/core/domain"
	"github.com/terravista/realty-api/internal/core/ports"
)

// ReviewService manages visitor testimonials.
type ReviewService struct {
	repo   ports.ReviewRepository
	logger zerolog.Logger
}

func NewReviewService(repo ports.ReviewRepository, logger zerolog.Logger) *ReviewService {
	return &ReviewService{repo: repo, logger: logger}
}

// Create stores a new review. Reviews start unapproved and are invisible on
// the public list until an admin approves them.
func (s *ReviewService) Create(ctx context.Context, input ports.CreateReviewInput) (*domain.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}

	review := &domain.Review{
		Author:    input.Author,
		Email:     input.Email,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Approved:  false,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, review)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("review_id", created.ID).Int("rating", created.Rating).Msg("review submitted")
	return created, nil
}

func (s *ReviewService) List(ctx context.Context, approvedOnly bool) ([]domain.Review, error) {
	return s.repo.List(ctx, approvedOnly)
}

func (s *ReviewService) Approve(ctx context.Context, id string) (*domain.Review, error) {
	if err := s.repo.SetApproved(ctx, id, true); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *ReviewService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("review_id", id).Msg("review deleted")
	return nil
}
