package booking

import (
	"fmt"
	"testing"
	"time"

	"courtside/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFacilityRepo serves one in-memory facility.
type fakeFacilityRepo struct {
	facility *models.Facility
}

func (r *fakeFacilityRepo) Create(facility *models.Facility) error { return nil }
func (r *fakeFacilityRepo) Update(facility *models.Facility) error { return nil }
func (r *fakeFacilityRepo) Delete(id string) error                 { return nil }

func (r *fakeFacilityRepo) GetByID(id string) (*models.Facility, error) {
	if r.facility != nil && r.facility.ID == id {
		return r.facility, nil
	}
	return nil, fmt.Errorf("facility with id %s not found", id)
}

func (r *fakeFacilityRepo) List(filter models.FacilityFilter, params models.ListParams) ([]models.Facility, int64, error) {
	return nil, 0, nil
}

func (r *fakeFacilityRepo) Count() (int64, error) { return 0, nil }

// fakeBookingRepo stores bookings in memory and reports a fixed overlap
// answer.
type fakeBookingRepo struct {
	bookings map[string]*models.Booking
	overlap  bool
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]*models.Booking{}}
}

func (r *fakeBookingRepo) Create(booking *models.Booking) error {
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	r.bookings[booking.ID] = booking
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	if b, ok := r.bookings[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, fmt.Errorf("booking with id %s not found", id)
}

func (r *fakeBookingRepo) UpdateStatus(id, status string) error {
	b, ok := r.bookings[id]
	if !ok {
		return fmt.Errorf("booking with id %s not found", id)
	}
	b.Status = status
	return nil
}

func (r *fakeBookingRepo) ListByUser(userID string, params models.ListParams) ([]models.Booking, int64, error) {
	return nil, 0, nil
}

func (r *fakeBookingRepo) List(filter models.BookingFilter, params models.ListParams) ([]models.Booking, int64, error) {
	return nil, 0, nil
}

func (r *fakeBookingRepo) HasOverlap(facilityID, date string, start, end int) (bool, error) {
	return r.overlap, nil
}

func (r *fakeBookingRepo) ExpirePending(id string) (bool, error) {
	b, ok := r.bookings[id]
	if !ok || b.Status != models.BookingStatusPending {
		return false, nil
	}
	b.Status = models.BookingStatusExpired
	return true, nil
}

func (r *fakeBookingRepo) CountByStatus() (map[string]int64, error) {
	counts := map[string]int64{}
	for _, b := range r.bookings {
		counts[b.Status]++
	}
	return counts, nil
}

func createTestFacility() *models.Facility {
	return &models.Facility{
		ID:           "fac-1",
		Name:         "Center Court",
		PricePerHour: 40,
		Capacity:     4,
		OpenMinute:   8 * 60,
		CloseMinute:  22 * 60,
		Active:       true,
	}
}

func createBookingService() (*DefaultBookingService, *fakeBookingRepo, *fakeFacilityRepo) {
	bookings := newFakeBookingRepo()
	facilities := &fakeFacilityRepo{facility: createTestFacility()}
	svc := &DefaultBookingService{
		Repo:       bookings,
		Facilities: facilities,
		HoldWindow: 30 * time.Minute,
	}
	return svc, bookings, facilities
}

func createValidBookingRequest() BookingRequest {
	return BookingRequest{
		FacilityID: "fac-1",
		UserID:     "user-1",
		Date:       "2026-09-05",
		Start:      10 * 60,
		End:        11 * 60,
		PartySize:  2,
	}
}

func TestCreateBookingPlacesPendingHold(t *testing.T) {
	svc, _, _ := createBookingService()

	resp, err := svc.Create(createValidBookingRequest())
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusPending, resp.Booking.Status)
	assert.Equal(t, 40.0, resp.Booking.TotalPrice)
	assert.False(t, resp.Countdown.Expired)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), resp.HoldUntil, 5*time.Second)
}

func TestCreateBookingRejectsBadInput(t *testing.T) {
	svc, _, _ := createBookingService()

	req := createValidBookingRequest()
	req.Date = "05/09/2026"
	_, err := svc.Create(req)
	assert.ErrorContains(t, err, "invalid booking date")

	req = createValidBookingRequest()
	req.End = req.Start
	_, err = svc.Create(req)
	assert.ErrorContains(t, err, "invalid booking window")

	req = createValidBookingRequest()
	req.PartySize = 0
	_, err = svc.Create(req)
	assert.ErrorContains(t, err, "party size")
}

func TestCreateBookingRejectsOutsideOpeningHours(t *testing.T) {
	svc, _, _ := createBookingService()

	req := createValidBookingRequest()
	req.Start = 6 * 60
	req.End = 7 * 60
	_, err := svc.Create(req)
	assert.ErrorContains(t, err, "opening hours")
}

func TestCreateBookingRejectsOverCapacity(t *testing.T) {
	svc, _, _ := createBookingService()

	req := createValidBookingRequest()
	req.PartySize = 10
	_, err := svc.Create(req)
	assert.ErrorContains(t, err, "capacity")
}

func TestCreateBookingRejectsInactiveFacility(t *testing.T) {
	svc, _, facilities := createBookingService()
	facilities.facility.Active = false

	_, err := svc.Create(createValidBookingRequest())
	assert.ErrorContains(t, err, "not available")
}

func TestCreateBookingRejectsOverlappingSlot(t *testing.T) {
	svc, bookings, _ := createBookingService()
	bookings.overlap = true

	_, err := svc.Create(createValidBookingRequest())
	assert.ErrorContains(t, err, "no longer available")
}

func TestConfirmBookingWithinHold(t *testing.T) {
	svc, _, _ := createBookingService()

	resp, err := svc.Create(createValidBookingRequest())
	require.NoError(t, err)

	confirmed, err := svc.Confirm(resp.Booking.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, confirmed.Status)
}

func TestConfirmBookingRejectsWrongUser(t *testing.T) {
	svc, _, _ := createBookingService()

	resp, err := svc.Create(createValidBookingRequest())
	require.NoError(t, err)

	_, err = svc.Confirm(resp.Booking.ID, "someone-else")
	assert.ErrorContains(t, err, "does not belong")
}

func TestConfirmBookingRejectsLapsedHold(t *testing.T) {
	svc, bookings, _ := createBookingService()

	resp, err := svc.Create(createValidBookingRequest())
	require.NoError(t, err)
	bookings.bookings[resp.Booking.ID].HoldUntil = time.Now().Add(-time.Minute)

	_, err = svc.Confirm(resp.Booking.ID, "user-1")
	assert.ErrorContains(t, err, "lapsed")
}

func TestCancelBookingIsIdempotent(t *testing.T) {
	svc, _, _ := createBookingService()

	resp, err := svc.Create(createValidBookingRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(resp.Booking.ID, "user-1"))
	require.NoError(t, svc.Cancel(resp.Booking.ID, "user-1"))

	got, err := svc.Get(resp.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, got.Booking.Status)
}

func TestExpirePendingSkipsConfirmedBooking(t *testing.T) {
	svc, bookings, _ := createBookingService()

	resp, err := svc.Create(createValidBookingRequest())
	require.NoError(t, err)
	_, err = svc.Confirm(resp.Booking.ID, "user-1")
	require.NoError(t, err)

	expired, err := bookings.ExpirePending(resp.Booking.ID)
	require.NoError(t, err)
	assert.False(t, expired)
}
