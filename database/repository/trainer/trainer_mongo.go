package trainerRepo

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

// MongoTrainerRepo implements TrainerRepository using MongoDB.
type MongoTrainerRepo struct {
	coll    *mongo.Collection
	appColl *mongo.Collection
}

// NewMongoTrainerRepo creates a new instance of TrainerRepository using MongoDB.
func NewMongoTrainerRepo() TrainerRepository {
	repo := &MongoTrainerRepo{
		coll:    database.Collection("trainers"),
		appColl: database.Collection("trainer_applications"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTrainerRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	trainerIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "specialty", Value: 1}}},
		{Keys: bson.D{{Key: "facility_id", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, trainerIndexes); err != nil {
		return fmt.Errorf("failed to create trainer indexes: %w", err)
	}

	appIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	if _, err := r.appColl.Indexes().CreateMany(ctx, appIndexes); err != nil {
		return fmt.Errorf("failed to create trainer application indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a trainer by its unique ID.
func (r *MongoTrainerRepo) GetByID(id string) (*models.Trainer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var trainer models.Trainer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&trainer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("trainer with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch trainer with id %s: %w", id, err)
	}
	return &trainer, nil
}

// Count returns the number of active trainer documents.
func (r *MongoTrainerRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"active": true})
	if err != nil {
		return 0, fmt.Errorf("failed to count trainers: %w", err)
	}
	return count, nil
}
