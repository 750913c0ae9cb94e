// File: services/booking/booking.go
package booking

import (
	"fmt"
	"time"

	"courtside/models"
	"courtside/services/tasks"
	"courtside/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create validates the request against the facility, places a pending
// booking under a confirmation hold, and schedules its expiry.
func (s *DefaultBookingService) Create(req BookingRequest) (*models.BookingConfirmationResponse, error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, fmt.Errorf("invalid booking date %q, expected YYYY-MM-DD", req.Date)
	}
	if req.Start < 0 || req.End <= req.Start {
		return nil, fmt.Errorf("invalid booking window: start %d, end %d", req.Start, req.End)
	}
	if req.PartySize <= 0 {
		return nil, fmt.Errorf("party size must be at least 1")
	}

	facility, err := s.Facilities.GetByID(req.FacilityID)
	if err != nil {
		return nil, err
	}
	if !facility.Active {
		return nil, fmt.Errorf("facility %s is not available for booking", facility.Name)
	}
	if req.Start < facility.OpenMinute || req.End > facility.CloseMinute {
		return nil, fmt.Errorf("requested window falls outside facility opening hours")
	}
	if req.PartySize > facility.Capacity {
		return nil, fmt.Errorf("party size %d exceeds facility capacity %d", req.PartySize, facility.Capacity)
	}

	overlap, err := s.Repo.HasOverlap(req.FacilityID, req.Date, req.Start, req.End)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, fmt.Errorf("the requested slot is no longer available")
	}

	now := time.Now()
	holdUntil := now.Add(s.HoldWindow)
	booking := &models.Booking{
		ID:         uuid.New().String(),
		FacilityID: req.FacilityID,
		TrainerID:  req.TrainerID,
		UserID:     req.UserID,
		Date:       req.Date,
		Start:      req.Start,
		End:        req.End,
		PartySize:  req.PartySize,
		TotalPrice: facility.PricePerHour * float64(req.End-req.Start) / 60.0,
		Status:     models.BookingStatusPending,
		HoldUntil:  holdUntil,
	}
	if err := s.Repo.Create(booking); err != nil {
		return nil, err
	}

	s.scheduleExpiry(booking)

	return &models.BookingConfirmationResponse{
		Booking:   *booking,
		HoldUntil: holdUntil,
		Countdown: CountdownUntil(holdUntil, now),
	}, nil
}

// Get returns the booking with the current hold countdown.
func (s *DefaultBookingService) Get(bookingID string) (*models.BookingConfirmationResponse, error) {
	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	return &models.BookingConfirmationResponse{
		Booking:   *booking,
		HoldUntil: booking.HoldUntil,
		Countdown: CountdownUntil(booking.HoldUntil, time.Now()),
	}, nil
}

// Confirm finalizes a pending booking inside its hold window and schedules
// a session reminder.
func (s *DefaultBookingService) Confirm(bookingID, userID string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, fmt.Errorf("booking %s does not belong to this user", bookingID)
	}
	if booking.Status != models.BookingStatusPending {
		return nil, fmt.Errorf("booking is %s and can no longer be confirmed", booking.Status)
	}
	if time.Now().After(booking.HoldUntil) {
		return nil, fmt.Errorf("the confirmation window for this booking has lapsed")
	}

	if err := s.Repo.UpdateStatus(bookingID, models.BookingStatusConfirmed); err != nil {
		return nil, err
	}
	booking.Status = models.BookingStatusConfirmed

	s.scheduleReminder(booking)
	return booking, nil
}

// Cancel marks a booking cancelled.
func (s *DefaultBookingService) Cancel(bookingID, userID string) error {
	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return err
	}
	if booking.UserID != userID {
		return fmt.Errorf("booking %s does not belong to this user", bookingID)
	}
	if booking.Status == models.BookingStatusCancelled {
		return nil
	}
	return s.Repo.UpdateStatus(bookingID, models.BookingStatusCancelled)
}

// ListByUser returns one page of the user's bookings.
func (s *DefaultBookingService) ListByUser(userID string, params models.ListParams) (models.PagedResult[models.Booking], error) {
	bookings, total, err := s.Repo.ListByUser(userID, params)
	if err != nil {
		return models.PagedResult[models.Booking]{}, err
	}
	return models.NewPagedResult(bookings, params, total), nil
}

// List returns one admin page of bookings matching the filter.
func (s *DefaultBookingService) List(filter models.BookingFilter, params models.ListParams) (models.PagedResult[models.Booking], error) {
	bookings, total, err := s.Repo.List(filter, params)
	if err != nil {
		return models.PagedResult[models.Booking]{}, err
	}
	return models.NewPagedResult(bookings, params, total), nil
}

func (s *DefaultBookingService) scheduleExpiry(booking *models.Booking) {
	if s.Queue == nil {
		return
	}
	payload := tasks.BookingTaskPayload{BookingID: booking.ID, UserID: booking.UserID}
	task, opts, err := tasks.NewBookingExpireTask(payload, booking.HoldUntil)
	if err == nil {
		_, err = s.Queue.Enqueue(task, opts...)
	}
	if err != nil {
		utils.GetLogger().Warn("failed to schedule booking expiry",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}
}

func (s *DefaultBookingService) scheduleReminder(booking *models.Booking) {
	if s.Queue == nil {
		return
	}
	sessionDay, err := time.ParseInLocation("2006-01-02", booking.Date, time.Local)
	if err != nil {
		return
	}
	// Fire one hour before the session starts.
	fireAt := sessionDay.Add(time.Duration(booking.Start)*time.Minute - time.Hour)
	if fireAt.Before(time.Now()) {
		return
	}
	payload := tasks.BookingTaskPayload{BookingID: booking.ID, UserID: booking.UserID}
	task, opts, err := tasks.NewSessionReminderTask(payload, fireAt)
	if err == nil {
		_, err = s.Queue.Enqueue(task, opts...)
	}
	if err != nil {
		utils.GetLogger().Warn("failed to schedule session reminder",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}
}
