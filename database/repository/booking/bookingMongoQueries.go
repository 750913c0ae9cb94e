// File: database/repository/booking/bookingMongoQueries.go
package bookingRepo

import (
	"fmt"
	"time"

	"courtside/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoBookingRepo) page(query bson.M, params models.ListParams) ([]models.Booking, int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((params.Page - 1) * params.PageSize)).
		SetLimit(int64(params.PageSize))

	cursor, err := r.coll.Find(ctx, query, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, 0, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, total, nil
}

// ListByUser returns one page of a user's bookings, newest first.
func (r *MongoBookingRepo) ListByUser(userID string, params models.ListParams) ([]models.Booking, int64, error) {
	return r.page(bson.M{"user_id": userID}, params)
}

// List returns one page of bookings matching the admin filter.
func (r *MongoBookingRepo) List(filter models.BookingFilter, params models.ListParams) ([]models.Booking, int64, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.FacilityID != "" {
		query["facility_id"] = filter.FacilityID
	}
	if filter.UserID != "" {
		query["user_id"] = filter.UserID
	}
	dateRange := bson.M{}
	if filter.DateFrom != "" {
		dateRange["$gte"] = filter.DateFrom
	}
	if filter.DateTo != "" {
		dateRange["$lte"] = filter.DateTo
	}
	if len(dateRange) > 0 {
		query["date"] = dateRange
	}
	return r.page(query, params)
}

// CountByStatus aggregates booking counts grouped by status.
func (r *MongoBookingRepo) CountByStatus() (map[string]int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate bookings by status: %w", err)
	}
	defer cursor.Close(ctx)

	counts := make(map[string]int64)
	for cursor.Next(ctx) {
		var row struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode status count: %w", err)
		}
		counts[row.ID] = row.Count
	}
	return counts, cursor.Err()
}
