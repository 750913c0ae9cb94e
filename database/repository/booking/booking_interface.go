package bookingRepo

import "courtside/models"

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	UpdateStatus(id, status string) error
	ListByUser(userID string, params models.ListParams) ([]models.Booking, int64, error)
	List(filter models.BookingFilter, params models.ListParams) ([]models.Booking, int64, error)
	HasOverlap(facilityID, date string, start, end int) (bool, error)
	ExpirePending(id string) (bool, error)
	CountByStatus() (map[string]int64, error)
}
