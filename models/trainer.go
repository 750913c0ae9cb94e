package models

import "time"

// Trainer represents a coach available for booked sessions.
type Trainer struct {
	ID          string    `bson:"id" json:"id"`
	FullName    string    `bson:"full_name" json:"full_name"`
	Specialty   string    `bson:"specialty" json:"specialty"`       // e.g. "tennis", "swimming"
	FacilityID  string    `bson:"facility_id,omitempty" json:"facility_id,omitempty"`
	Bio         string    `bson:"bio" json:"bio"`
	HourlyRate  float64   `bson:"hourly_rate" json:"hourly_rate"`
	Rating      float64   `bson:"rating" json:"rating"`             // Average review score
	PhotoURL    string    `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// TrainerFilter carries the list-page filter state for trainers.
type TrainerFilter struct {
	Specialty  string `form:"specialty"`
	FacilityID string `form:"facility"`
	Search     string `form:"q"`
}

// TrainerApplication is a request from a coach to join the platform.
type TrainerApplication struct {
	ID         string    `bson:"id" json:"id"`
	FullName   string    `bson:"full_name" json:"full_name"`
	Email      string    `bson:"email" json:"email"`
	Phone      string    `bson:"phone" json:"phone"`
	Specialty  string    `bson:"specialty" json:"specialty"`
	Experience string    `bson:"experience" json:"experience"` // Free-text summary
	Status     string    `bson:"status" json:"status"`         // "submitted", "approved", "rejected"
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}
