package handler

import "time"

// --- Property ---

type propertyRequest struct {
	Title       string   `json:"title"       validate:"required"`
	Slug        string   `json:"slug"        validate:"required"`
	Description string   `json:"description" validate:"required"`
	Location    string   `json:"location"    validate:"required"`
	PriceRange  string   `json:"price_range"`
	Status      string   `json:"status"      validate:"required,oneof=upcoming available sold_out"`
	Amenities   []string `json:"amenities"`
	ImageIDs    []string `json:"image_ids"`
	VideoID     string   `json:"video_id"`
	Featured    bool     `json:"featured"`
}

type propertyResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	PriceRange  string    `json:"price_range"`
	Status      string    `json:"status"`
	Amenities   []string  `json:"amenities,omitempty"`
	ImageIDs    []string  `json:"image_ids,omitempty"`
	VideoID     string    `json:"video_id,omitempty"`
	Featured    bool      `json:"featured"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listPropertiesResponse struct {
	Data       []propertyResponse `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// --- Inquiry ---

type inquiryRequest struct {
	Name       string `json:"name"        validate:"required"`
	Email      string `json:"email"       validate:"required,email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"     validate:"required"`
	PropertyID string `json:"property_id"`
}

type inquiryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted closed"`
}

type inquiryResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Message    string    `json:"message"`
	PropertyID string    `json:"property_id,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// --- Review ---

type reviewRequest struct {
	Author  string `json:"author"  validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Rating  int    `json:"rating"  validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

type reviewResponse struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}
