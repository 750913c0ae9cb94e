// File: database/repository/facility/facilityMongoQueries.go
package facilityRepo

import (
	"fmt"
	"time"

	"courtside/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// buildFilter translates a FacilityFilter into a Mongo query document.
func buildFilter(filter models.FacilityFilter) bson.M {
	query := bson.M{"active": true}
	if filter.CategoryID != "" {
		query["category_id"] = filter.CategoryID
	}
	if filter.Location != "" {
		query["location"] = bson.M{"$regex": filter.Location, "$options": "i"}
	}
	price := bson.M{}
	if filter.MinPrice > 0 {
		price["$gte"] = filter.MinPrice
	}
	if filter.MaxPrice > 0 {
		price["$lte"] = filter.MaxPrice
	}
	if len(price) > 0 {
		query["price_per_hour"] = price
	}
	if filter.Search != "" {
		query["$text"] = bson.M{"$search": filter.Search}
	}
	return query
}

// List returns one page of facilities matching the filter plus the total count.
func (r *MongoFacilityRepo) List(filter models.FacilityFilter, params models.ListParams) ([]models.Facility, int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	query := buildFilter(filter)

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count facilities: %w", err)
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64((params.Page - 1) * params.PageSize)).
		SetLimit(int64(params.PageSize))

	cursor, err := r.coll.Find(ctx, query, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list facilities: %w", err)
	}
	defer cursor.Close(ctx)

	var facilities []models.Facility
	if err := cursor.All(ctx, &facilities); err != nil {
		return nil, 0, fmt.Errorf("failed to decode facilities: %w", err)
	}
	return facilities, total, nil
}
