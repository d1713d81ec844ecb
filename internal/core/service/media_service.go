package service

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/terravista/realty-api/internal/core/domain"
	"github.com/terravista/realty-api/internal/core/ports"
)

// MediaLimits carries the per-kind upload ceilings in bytes.
type MediaLimits struct {
	MaxImageBytes int64
	MaxVideoBytes int64
}

// MediaService stores and serves binary assets.
type MediaService struct {
	assets ports.AssetRepository
	limits MediaLimits
	logger zerolog.Logger
}

func NewMediaService(assets ports.AssetRepository, limits MediaLimits, logger zerolog.Logger) *MediaService {
	return &MediaService{assets: assets, limits: limits, logger: logger}
}

// Upload validates and persists a new asset. MIME and size checks run
// before the repository is touched, so a rejected upload never writes.
func (s *MediaService) Upload(ctx context.Context, input ports.UploadInput) (*domain.Asset, error) {
	contentType := normalizeMime(input.MimeType)
	if !input.Kind.MimeAllowed(contentType) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidMimeType, contentType)
	}

	size := int64(len(input.Data))
	if size == 0 {
		return nil, fmt.Errorf("%w: empty upload", domain.ErrInvalidMimeType)
	}
	if max := s.maxBytes(input.Kind); size > max {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", domain.ErrAssetTooLarge, size, max)
	}

	asset := &domain.Asset{
		Filename:     uniqueFilename(input.OriginalName),
		OriginalName: input.OriginalName,
		MimeType:     contentType,
		Size:         size,
		Data:         input.Data,
		Metadata:     input.Metadata,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.assets.Insert(ctx, input.Kind, asset)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("kind", string(input.Kind)).
		Str("asset_id", created.ID).
		Str("mime_type", created.MimeType).
		Int64("size", created.Size).
		Msg("asset stored")

	return created, nil
}

// Fetch returns the full asset record, bytes included.
func (s *MediaService) Fetch(ctx context.Context, kind domain.AssetKind, id string) (*domain.Asset, error) {
	return s.assets.FindByID(ctx, kind, id)
}

// Delete removes an asset. Removal is atomic; later fetches see
// ErrAssetNotFound.
func (s *MediaService) Delete(ctx context.Context, kind domain.AssetKind, id string) error {
	if err := s.assets.Delete(ctx, kind, id); err != nil {
		return err
	}
	s.logger.Info().Str("kind", string(kind)).Str("asset_id", id).Msg("asset deleted")
	return nil
}

func (s *MediaService) maxBytes(kind domain.AssetKind) int64 {
	if kind == domain.AssetVideo {
		return s.limits.MaxVideoBytes
	}
	return s.limits.MaxImageBytes
}

// normalizeMime strips parameters like "; codecs=..." and lowercases the type.
func normalizeMime(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mt
}

// uniqueFilename keeps the original extension but replaces the name with a
// random identifier so uploads can never collide or traverse paths.
func uniqueFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return uuid.NewString() + ext
}
