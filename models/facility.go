package models

import "time"

// Facility represents a bookable sports facility.
type Facility struct {
	ID           string    `bson:"id" json:"id"`                       // Unique facility identifier (UUID)
	Name         string    `bson:"name" json:"name"`                   // Display name
	Description  string    `bson:"description" json:"description"`     // Free-text description
	CategoryID   string    `bson:"category_id" json:"category_id"`     // Owning category
	Location     string    `bson:"location" json:"location"`           // Human-readable address or area
	PricePerHour float64   `bson:"price_per_hour" json:"price_per_hour"`
	Capacity     int       `bson:"capacity" json:"capacity"`           // Maximum concurrent party size
	ImageURL     string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	OpenMinute   int       `bson:"open_minute" json:"open_minute"`     // Opening time (minutes from midnight)
	CloseMinute  int       `bson:"close_minute" json:"close_minute"`   // Closing time (minutes from midnight)
	Active       bool      `bson:"active" json:"active"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// FacilityFilter carries the list-page filter state for facilities.
type FacilityFilter struct {
	CategoryID string  `form:"category"`
	Location   string  `form:"location"`
	MinPrice   float64 `form:"minPrice"`
	MaxPrice   float64 `form:"maxPrice"`
	Search     string  `form:"q"`
}
