package models

import "time"

// DashboardStats is the aggregated snapshot shown on the admin dashboard.
type DashboardStats struct {
	BookingsByStatus   map[string]int64 `json:"bookingsByStatus"`
	DonationTotal      int64            `json:"donationTotal"` // Succeeded donations, minor units
	DonationCount      int64            `json:"donationCount"`
	PendingAidRequests int64            `json:"pendingAidRequests"`
	FacilityCount      int64            `json:"facilityCount"`
	TrainerCount       int64            `json:"trainerCount"`
	UserCount          int64            `json:"userCount"`
	GeneratedAt        time.Time        `json:"generatedAt"`
}
