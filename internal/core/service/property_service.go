package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/terravista/realty-api/internal/core/domain"
	"github.com/terravista/realty-api/internal/core/ports"
)

// PropertyService manages the property catalogue.
type PropertyService struct {
	repo   ports.PropertyRepository
	logger zerolog.Logger
}

func NewPropertyService(repo ports.PropertyRepository, logger zerolog.Logger) *PropertyService {
	return &PropertyService{repo: repo, logger: logger}
}

func (s *PropertyService) Create(ctx context.Context, input ports.CreatePropertyInput) (*domain.Property, error) {
	status := domain.PropertyStatus(input.Status)
	if !domain.ValidPropertyStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	now := time.Now().UTC()
	property := &domain.Property{
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
		Location:    input.Location,
		PriceRange:  input.PriceRange,
		Status:      status,
		Amenities:   input.Amenities,
		ImageIDs:    input.ImageIDs,
		VideoID:     input.VideoID,
		Featured:    input.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Insert(ctx, property)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("property_id", created.ID).Str("slug", created.Slug).Msg("property created")
	return created, nil
}

func (s *PropertyService) Get(ctx context.Context, id string) (*domain.Property, error) {
	return s.repo.FindByID(ctx, id)
}

// GetBySlug resolves a public property page. The view counter bump is
// fire-and-forget: a failed increment never breaks the page.
func (s *PropertyService) GetBySlug(ctx context.Context, slug string) (*domain.Property, error) {
	property, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.repo.IncrementViews(ctx, property.ID); err != nil {
		s.logger.Warn().Err(err).Str("property_id", property.ID).Msg("view counter increment failed")
	} else {
		property.Views++
	}

	return property, nil
}

func (s *PropertyService) List(ctx context.Context, filter ports.PropertyFilter) (*ports.PropertyPage, error) {
	if filter.Status != "" && !domain.ValidPropertyStatus(filter.Status) {
		return nil, domain.ErrInvalidStatus
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &ports.PropertyPage{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *PropertyService) Update(ctx context.Context, id string, input ports.CreatePropertyInput) (*domain.Property, error) {
	status := domain.PropertyStatus(input.Status)
	if !domain.ValidPropertyStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	property.Title = input.Title
	property.Slug = input.Slug
	property.Description = input.Description
	property.Location = input.Location
	property.PriceRange = input.PriceRange
	property.Status = status
	property.Amenities = input.Amenities
	property.ImageIDs = input.ImageIDs
	property.VideoID = input.VideoID
	property.Featured = input.Featured
	property.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, property); err != nil {
		return nil, err
	}

	s.logger.Info().Str("property_id", property.ID).Msg("property updated")
	return property, nil
}

func (s *PropertyService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("property_id", id).Msg("property deleted")
	return nil
}
