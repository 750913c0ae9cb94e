package models

import "time"

// Testimonial is user-submitted feedback shown on the landing page once approved.
type Testimonial struct {
	ID         string    `bson:"id" json:"id"`
	AuthorName string    `bson:"author_name" json:"author_name"`
	Quote      string    `bson:"quote" json:"quote"`
	Rating     int       `bson:"rating" json:"rating"` // 1..5
	Approved   bool      `bson:"approved" json:"approved"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// Category groups facilities (e.g. "Indoor courts", "Pools").
type Category struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Slug      string    `bson:"slug" json:"slug"`
	IconURL   string    `bson:"icon_url,omitempty" json:"icon_url,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
