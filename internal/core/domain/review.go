package domain

import (
	"errors"
	"time"
)

var ErrReviewNotFound = errors.New("review not found")
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Review is a visitor testimonial. Only approved reviews appear on the
// public site; approval is an explicit admin action.
type Review struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Author    string    `json:"author" bson:"author"`
	Email     string    `json:"email" bson:"email"`
	Rating    int       `json:"rating" bson:"rating"`
	Comment   string    `json:"comment" bson:"comment"`
	Approved  bool      `json:"approved" bson:"approved"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
