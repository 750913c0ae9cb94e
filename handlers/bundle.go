package handlers

// HandlerBundle groups all endpoint handlers into one struct so routing
// can be wired in a single place.
type HandlerBundle struct {
	Facilities *FacilityHandler
	Trainers   *TrainerHandler
	Bookings   *BookingHandler
	Aid        *AidHandler
	Donations  *DonationHandler
	Weather    *WeatherHandler
	Content    *ContentHandler
	Users      *UserHandler
	Admin      *AdminHandler
}
