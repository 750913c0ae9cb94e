package facilityRepo

import (
	"context"
	"fmt"
	"time"

	"courtside/database"
	"courtside/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFacilityRepo implements FacilityRepository using MongoDB.
type MongoFacilityRepo struct {
	coll *mongo.Collection
}

// NewMongoFacilityRepo creates a new instance of FacilityRepository using MongoDB.
func NewMongoFacilityRepo() FacilityRepository {
	repo := &MongoFacilityRepo{coll: database.Collection("facilities")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoFacilityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category_id", Value: 1}}},
		{Keys: bson.D{{Key: "price_per_hour", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: "text"}, {Key: "description", Value: "text"}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a facility by its unique ID.
func (r *MongoFacilityRepo) GetByID(id string) (*models.Facility, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var facility models.Facility
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&facility); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("facility with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch facility with id %s: %w", id, err)
	}
	return &facility, nil
}

// Count returns the number of facility documents.
func (r *MongoFacilityRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count facilities: %w", err)
	}
	return count, nil
}
