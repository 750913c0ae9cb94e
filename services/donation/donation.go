package donation

import (
	"fmt"
	"strings"

	donationRepo "courtside/database/repository/donation"
	"courtside/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// DonationRequest is the input for creating a donation.
type DonationRequest struct {
	UserID    string `json:"-"`
	DonorName string `json:"donorName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Amount    int64  `json:"amount" binding:"required"` // Minor units
	Currency  string `json:"currency"`
	Message   string `json:"message"`
}

// DonationResult carries the created record plus the client secret the
// frontend needs to complete payment.
type DonationResult struct {
	Donation     models.Donation `json:"donation"`
	ClientSecret string          `json:"clientSecret"`
}

// DonationService defines the donation operations.
type DonationService interface {
	Create(req DonationRequest) (*DonationResult, error)
	MarkSucceeded(donationID string) (*models.Donation, error)
	List(status string, params models.ListParams) (models.PagedResult[models.Donation], error)
}

// DefaultDonationService is the production implementation backed by Stripe.
type DefaultDonationService struct {
	Repo donationRepo.DonationRepository
}

// Create validates the amount, creates a Stripe payment intent and persists
// a pending donation record.
func (s *DefaultDonationService) Create(req DonationRequest) (*DonationResult, error) {
	if req.Amount < 100 {
		return nil, fmt.Errorf("donation amount must be at least 100 minor units")
	}
	currency := strings.ToLower(req.Currency)
	if currency == "" {
		currency = "usd"
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("purpose", "facility-donation")

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	donation := &models.Donation{
		ID:              uuid.New().String(),
		UserID:          req.UserID,
		DonorName:       req.DonorName,
		Email:           req.Email,
		Amount:          req.Amount,
		Currency:        currency,
		Message:         req.Message,
		PaymentIntentID: intent.ID,
		Status:          "pending",
	}
	if err := s.Repo.Create(donation); err != nil {
		return nil, fmt.Errorf("failed to save donation: %w", err)
	}

	return &DonationResult{Donation: *donation, ClientSecret: intent.ClientSecret}, nil
}

// MarkSucceeded flips a donation to succeeded after payment completes.
func (s *DefaultDonationService) MarkSucceeded(donationID string) (*models.Donation, error) {
	donation, err := s.Repo.GetByID(donationID)
	if err != nil {
		return nil, err
	}
	if donation.Status == "succeeded" {
		return donation, nil
	}
	if err := s.Repo.UpdateStatus(donationID, "succeeded"); err != nil {
		return nil, err
	}
	donation.Status = "succeeded"
	return donation, nil
}

// List returns one admin page of donations.
func (s *DefaultDonationService) List(status string, params models.ListParams) (models.PagedResult[models.Donation], error) {
	donations, total, err := s.Repo.List(status, params)
	if err != nil {
		return models.PagedResult[models.Donation]{}, err
	}
	return models.NewPagedResult(donations, params, total), nil
}
