package booking

import (
	"time"

	bookingRepo "courtside/database/repository/booking"
	facilityRepo "courtside/database/repository/facility"
	"courtside/models"

	"github.com/hibiken/asynq"
)

// BookingRequest is the input for creating a booking.
type BookingRequest struct {
	FacilityID string `json:"facilityID" binding:"required"`
	TrainerID  string `json:"trainerID"`
	UserID     string `json:"-"`
	Date       string `json:"date" binding:"required"` // "YYYY-MM-DD"
	Start      int    `json:"start"`                   // Minutes from midnight
	End        int    `json:"end"`
	PartySize  int    `json:"partySize"`
}

// BookingService defines the booking lifecycle operations.
type BookingService interface {
	Create(req BookingRequest) (*models.BookingConfirmationResponse, error)
	Get(bookingID string) (*models.BookingConfirmationResponse, error)
	Confirm(bookingID, userID string) (*models.Booking, error)
	Cancel(bookingID, userID string) error
	ListByUser(userID string, params models.ListParams) (models.PagedResult[models.Booking], error)
	List(filter models.BookingFilter, params models.ListParams) (models.PagedResult[models.Booking], error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo       bookingRepo.BookingRepository
	Facilities facilityRepo.FacilityRepository
	Queue      *asynq.Client
	HoldWindow time.Duration
}
