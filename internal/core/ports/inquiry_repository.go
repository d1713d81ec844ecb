package ports

import (
	"context"

	"github.com/terravista/realty-api/internal/core/domain"
)

// InquiryRepository persists leads from the public contact form.
type InquiryRepository interface {
	Insert(ctx context.Context, inquiry *domain.Inquiry) (*domain.Inquiry, error)
	FindByID(ctx context.Context, id string) (*domain.Inquiry, error)
	List(ctx context.Context, status domain.InquiryStatus) ([]domain.Inquiry, error)
	UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) error
	Delete(ctx context.Context, id string) error
}
