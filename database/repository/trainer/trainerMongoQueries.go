// File: database/repository/trainer/trainerMongoQueries.go
package trainerRepo

import (
	"fmt"
	"time"

	"courtside/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// List returns one page of trainers matching the filter plus the total count.
func (r *MongoTrainerRepo) List(filter models.TrainerFilter, params models.ListParams) ([]models.Trainer, int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	query := bson.M{"active": true}
	if filter.Specialty != "" {
		query["specialty"] = filter.Specialty
	}
	if filter.FacilityID != "" {
		query["facility_id"] = filter.FacilityID
	}
	if filter.Search != "" {
		query["full_name"] = bson.M{"$regex": filter.Search, "$options": "i"}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count trainers: %w", err)
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}}).
		SetSkip(int64((params.Page - 1) * params.PageSize)).
		SetLimit(int64(params.PageSize))

	cursor, err := r.coll.Find(ctx, query, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list trainers: %w", err)
	}
	defer cursor.Close(ctx)

	var trainers []models.Trainer
	if err := cursor.All(ctx, &trainers); err != nil {
		return nil, 0, fmt.Errorf("failed to decode trainers: %w", err)
	}
	return trainers, total, nil
}

// ListApplications returns one page of trainer applications, optionally
// filtered by status.
func (r *MongoTrainerRepo) ListApplications(status string, params models.ListParams) ([]models.TrainerApplication, int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	query := bson.M{}
	if status != "" {
		query["status"] = status
	}

	total, err := r.appColl.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count trainer applications: %w", err)
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((params.Page - 1) * params.PageSize)).
		SetLimit(int64(params.PageSize))

	cursor, err := r.appColl.Find(ctx, query, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list trainer applications: %w", err)
	}
	defer cursor.Close(ctx)

	var apps []models.TrainerApplication
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, 0, fmt.Errorf("failed to decode trainer applications: %w", err)
	}
	return apps, total, nil
}
