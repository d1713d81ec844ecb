package ports

import (
	"context"

	"github.com/terravista/realty-api/internal/core/domain"
)

// CreateInquiryInput is the service DTO for a new lead.
type CreateInquiryInput struct {
	Name       string
	Email      string
	Phone      string
	Message    string
	PropertyID string
}

// InquiryService manages leads end to end: public submission, back-office
// triage, deletion.
type InquiryService interface {
	Create(ctx context.Context, input CreateInquiryInput) (*domain.Inquiry, error)
	Get(ctx context.Context, id string) (*domain.Inquiry, error)
	List(ctx context.Context, status domain.InquiryStatus) ([]domain.Inquiry, error)
	UpdateStatus(ctx context.Context, id string, status string) (*domain.Inquiry, error)
	Delete(ctx context.Context, id string) error
}
