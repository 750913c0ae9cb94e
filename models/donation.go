package models

import "time"

// Donation represents a one-off donation to the facility fund.
type Donation struct {
	ID              string    `bson:"id" json:"id"`
	UserID          string    `bson:"user_id,omitempty" json:"user_id,omitempty"` // Optional; anonymous donations allowed
	DonorName       string    `bson:"donor_name" json:"donor_name"`
	Email           string    `bson:"email" json:"email"`
	Amount          int64     `bson:"amount" json:"amount"`   // Minor units (cents)
	Currency        string    `bson:"currency" json:"currency"`
	Message         string    `bson:"message,omitempty" json:"message,omitempty"`
	PaymentIntentID string    `bson:"payment_intent_id" json:"payment_intent_id"`
	Status          string    `bson:"status" json:"status"` // "pending", "succeeded", "failed"
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}
