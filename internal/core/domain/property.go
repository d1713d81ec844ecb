package domain

import (
	"errors"
	"time"
)

// PropertyStatus represents the sales stage of a development.
type PropertyStatus string

const (
	PropertyUpcoming  PropertyStatus = "upcoming"
	PropertyAvailable PropertyStatus = "available"
	PropertySoldOut   PropertyStatus = "sold_out"
)

var ErrPropertyNotFound = errors.New("property not found")
var ErrInvalidStatus = errors.New("invalid status")

// ValidPropertyStatus reports whether s is a known sales stage.
func ValidPropertyStatus(s PropertyStatus) bool {
	switch s {
	case PropertyUpcoming, PropertyAvailable, PropertySoldOut:
		return true
	}
	return false
}

// Property is a marketed development or listing.
type Property struct {
	ID          string         `json:"id" bson:"_id,omitempty"`
	Title       string         `json:"title" bson:"title"`
	Slug        string         `json:"slug" bson:"slug"`
	Description string         `json:"description" bson:"description"`
	Location    string         `json:"location" bson:"location"`
	PriceRange  string         `json:"price_range" bson:"price_range"`
	Status      PropertyStatus `json:"status" bson:"status"`
	Amenities   []string       `json:"amenities,omitempty" bson:"amenities,omitempty"`
	ImageIDs    []string       `json:"image_ids,omitempty" bson:"image_ids,omitempty"`
	VideoID     string         `json:"video_id,omitempty" bson:"video_id,omitempty"`
	Featured    bool           `json:"featured" bson:"featured"`
	Views       int64          `json:"views" bson:"views"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" bson:"updated_at"`
}
