package domain

import (
	"errors"
	"time"
)

// InquiryStatus tracks how far a lead has progressed.
type InquiryStatus string

const (
	InquiryNew       InquiryStatus = "new"
	InquiryContacted InquiryStatus = "contacted"
	InquiryClosed    InquiryStatus = "closed"
)

var ErrInquiryNotFound = errors.New("inquiry not found")

// ValidInquiryStatus reports whether s is a known lead state.
func ValidInquiryStatus(s InquiryStatus) bool {
	switch s {
	case InquiryNew, InquiryContacted, InquiryClosed:
		return true
	}
	return false
}

// Inquiry is a lead submitted through the public contact form.
type Inquiry struct {
	ID         string        `json:"id" bson:"_id,omitempty"`
	Name       string        `json:"name" bson:"name"`
	Email      string        `json:"email" bson:"email"`
	Phone      string        `json:"phone" bson:"phone"`
	Message    string        `json:"message" bson:"message"`
	PropertyID string        `json:"property_id,omitempty" bson:"property_id,omitempty"`
	Status     InquiryStatus `json:"status" bson:"status"`
	CreatedAt  time.Time     `json:"created_at" bson:"created_at"`
}
