package admin

import (
	"fmt"
	"time"

	aidRepo "courtside/database/repository/aid"
	bookingRepo "courtside/database/repository/booking"
	donationRepo "courtside/database/repository/donation"
	facilityRepo "courtside/database/repository/facility"
	trainerRepo "courtside/database/repository/trainer"
	userRepo "courtside/database/repository/user"
	"courtside/models"
)

// AdminService aggregates platform-wide numbers for the dashboard.
type AdminService interface {
	DashboardStats() (*models.DashboardStats, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Bookings   bookingRepo.BookingRepository
	Donations  donationRepo.DonationRepository
	Aid        aidRepo.AidRepository
	Facilities facilityRepo.FacilityRepository
	Trainers   trainerRepo.TrainerRepository
	Users      userRepo.UserRepository
}

// DashboardStats collects counts across all collections.
func (s *DefaultAdminService) DashboardStats() (*models.DashboardStats, error) {
	byStatus, err := s.Bookings.CountByStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}

	donationTotal, donationCount, err := s.Donations.TotalSucceeded()
	if err != nil {
		return nil, fmt.Errorf("failed to total donations: %w", err)
	}

	submitted, err := s.Aid.CountByStatus(models.AidStatusSubmitted)
	if err != nil {
		return nil, fmt.Errorf("failed to count aid applications: %w", err)
	}
	inReview, err := s.Aid.CountByStatus(models.AidStatusInReview)
	if err != nil {
		return nil, fmt.Errorf("failed to count aid applications: %w", err)
	}

	facilityCount, err := s.Facilities.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count facilities: %w", err)
	}
	trainerCount, err := s.Trainers.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count trainers: %w", err)
	}
	userCount, err := s.Users.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	return &models.DashboardStats{
		BookingsByStatus:   byStatus,
		DonationTotal:      donationTotal,
		DonationCount:      donationCount,
		PendingAidRequests: submitted + inReview,
		FacilityCount:      facilityCount,
		TrainerCount:       trainerCount,
		UserCount:          userCount,
		GeneratedAt:        time.Now(),
	}, nil
}
