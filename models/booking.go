package models

import "time"

// Booking status values.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusExpired   = "expired"
)

// Booking represents a facility or trainer session booking.
type Booking struct {
	ID         string    `bson:"id" json:"id"`                                 // Unique booking identifier (UUID)
	FacilityID string    `bson:"facility_id" json:"facility_id"`               // Facility that was booked
	TrainerID  string    `bson:"trainer_id,omitempty" json:"trainer_id,omitempty"` // Optional trainer for the session
	UserID     string    `bson:"user_id" json:"user_id"`                       // User who made the booking
	Date       string    `bson:"date" json:"date"`                             // Booking date in "YYYY-MM-DD" format
	Start      int       `bson:"start" json:"start"`                           // Start time (minutes from midnight)
	End        int       `bson:"end" json:"end"`                               // End time (minutes from midnight)
	PartySize  int       `bson:"party_size" json:"party_size"`                 // Number of participants
	TotalPrice float64   `bson:"total_price" json:"total_price"`               // Calculated total price
	Status     string    `bson:"status" json:"status"`                         // pending, confirmed, cancelled, expired
	HoldUntil  time.Time `bson:"hold_until" json:"hold_until"`                 // Confirmation deadline for pending bookings
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// BookingFilter carries the admin list filter state for bookings.
type BookingFilter struct {
	Status     string `form:"status"`
	FacilityID string `form:"facility"`
	UserID     string `form:"user"`
	DateFrom   string `form:"from"` // inclusive, "YYYY-MM-DD"
	DateTo     string `form:"to"`   // inclusive, "YYYY-MM-DD"
}

// Countdown is the remaining time until a booking hold lapses.
type Countdown struct {
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Expired bool `json:"expired"`
}

// BookingConfirmationResponse is returned after creating or fetching a
// pending booking, carrying the hold deadline and its countdown.
type BookingConfirmationResponse struct {
	Booking   Booking   `json:"booking"`
	HoldUntil time.Time `json:"hold_until"`
	Countdown Countdown `json:"countdown"`
}
