package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/terravista/realty-api/internal/core/domain"
	"github.com/terravista/realty-api/internal/core/ports"
)

// InquiryNotifier is the interface the service uses to hand new leads to
// the async notification dispatcher. A nil notifier disables notifications.
type InquiryNotifier interface {
	Enqueue(n ports.InquiryNotification)
}

// InquiryService manages leads from the public contact form.
type InquiryService struct {
	repo     ports.InquiryRepository
	notifier InquiryNotifier
	logger   zerolog.Logger
}

func NewInquiryService(repo ports.InquiryRepository, notifier InquiryNotifier, logger zerolog.Logger) *InquiryService {
	return &InquiryService{repo: repo, notifier: notifier, logger: logger}
}

func (s *InquiryService) Create(ctx context.Context, input ports.CreateInquiryInput) (*domain.Inquiry, error) {
	inquiry := &domain.Inquiry{
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Message:    input.Message,
		PropertyID: input.PropertyID,
		Status:     domain.InquiryNew,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, inquiry)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("inquiry_id", created.ID).Str("property_id", created.PropertyID).Msg("inquiry received")

	if s.notifier != nil {
		s.notifier.Enqueue(ports.InquiryNotification{
			InquiryID:  created.ID,
			Name:       created.Name,
			Email:      created.Email,
			Phone:      created.Phone,
			PropertyID: created.PropertyID,
			Message:    created.Message,
		})
	}

	return created, nil
}

func (s *InquiryService) Get(ctx context.Context, id string) (*domain.Inquiry, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *InquiryService) List(ctx context.Context, status domain.InquiryStatus) ([]domain.Inquiry, error) {
	if status != "" && !domain.ValidInquiryStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	return s.repo.List(ctx, status)
}

func (s *InquiryService) UpdateStatus(ctx context.Context, id string, status string) (*domain.Inquiry, error) {
	next := domain.InquiryStatus(status)
	if !domain.ValidInquiryStatus(next) {
		return nil, domain.ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

func (s *InquiryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
