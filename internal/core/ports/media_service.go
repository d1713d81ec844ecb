package ports

import (
	"context"

	"github.com/terravista/realty-api/internal/core/domain"
)

// UploadInput carries a validated-at-the-edge multipart upload into the
// media service, which enforces the kind's MIME allow-list and size ceiling
// before anything touches the store.
type UploadInput struct {
	Kind         domain.AssetKind
	OriginalName string
	MimeType     string
	Data         []byte
	Metadata     map[string]string
}

// MediaService stores, serves, and deletes binary assets.
type MediaService interface {
	Upload(ctx context.Context, input UploadInput) (*domain.Asset, error)
	Fetch(ctx context.Context, kind domain.AssetKind, id string) (*domain.Asset, error)
	Delete(ctx context.Context, kind domain.AssetKind, id string) error
}
