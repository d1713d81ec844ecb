package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/terravista/realty-api/internal/core/domain"
)

const (
	collectionImages = "images"
	collectionVideos = "videos"
)

// fetchTimeout is wider than defaultTimeout because video documents can be
// hundreds of megabytes.
const fetchTimeout = 60 * time.Second

// AssetRepository stores binary assets inline in the document, one
// collection per kind.
type AssetRepository struct {
	images *mongo.Collection
	videos *mongo.Collection
}

func NewAssetRepository(db *mongo.Database) *AssetRepository {
	return &AssetRepository{
		images: db.Collection(collectionImages),
		videos: db.Collection(collectionVideos),
	}
}

type assetDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Filename     string             `bson:"filename"`
	OriginalName string             `bson:"original_name"`
	MimeType     string             `bson:"mime_type"`
	Size         int64              `bson:"size"`
	Data         primitive.Binary   `bson:"data"`
	Metadata     map[string]string  `bson:"metadata,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (d assetDoc) toDomain() *domain.Asset {
	return &domain.Asset{
		ID:           d.ID.Hex(),
		Filename:     d.Filename,
		OriginalName: d.OriginalName,
		MimeType:     d.MimeType,
		Size:         d.Size,
		Data:         d.Data.Data,
		Metadata:     d.Metadata,
		CreatedAt:    d.CreatedAt,
	}
}

func (r *AssetRepository) collection(kind domain.AssetKind) *mongo.Collection {
	if kind == domain.AssetVideo {
		return r.videos
	}
	return r.images
}

func (r *AssetRepository) Insert(ctx context.Context, kind domain.AssetKind, asset *domain.Asset) (*domain.Asset, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	doc := assetDoc{
		Filename:     asset.Filename,
		OriginalName: asset.OriginalName,
		MimeType:     asset.MimeType,
		Size:         asset.Size,
		Data:         primitive.Binary{Data: asset.Data},
		Metadata:     asset.Metadata,
		CreatedAt:    asset.CreatedAt,
	}

	res, err := r.collection(kind).InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", kind, err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *AssetRepository) FindByID(ctx context.Context, kind domain.AssetKind, id string) (*domain.Asset, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAssetNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	var doc assetDoc
	if err := r.collection(kind).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, fmt.Errorf("find %s: %w", kind, err)
	}
	return doc.toDomain(), nil
}

func (r *AssetRepository) Delete(ctx context.Context, kind domain.AssetKind, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAssetNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.collection(kind).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}

// EnsureIndexes creates lookup indexes on both asset collections.
func (r *AssetRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	model := mongo.IndexModel{Keys: bson.D{{Key: "filename", Value: 1}}}
	if _, err := r.images.Indexes().CreateOne(ctx, model); err != nil {
		return err
	}
	_, err := r.videos.Indexes().CreateOne(ctx, model)
	return err
}
