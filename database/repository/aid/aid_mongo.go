package aidRepo

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

// AidRepository defines persistence operations for submitted financial aid
// applications. Drafts never touch this repository; they live in Redis until
// submission.
type AidRepository interface {
	Create(app *models.AidApplication) error
	GetByID(id string) (*models.AidApplication, error)
	List(filter models.AidApplicationFilter, params models.ListParams) ([]models.AidApplication, int64, error)
	UpdateStatus(id, status string) error
	Delete(id string) error
	CountByStatus(status string) (int64, error)
}

// MongoAidRepo implements AidRepository using MongoDB.
type MongoAidRepo struct {
	coll *mongo.Collection
}

// NewMongoAidRepo creates a new instance of AidRepository using MongoDB.
func NewMongoAidRepo() AidRepository {
	repo := &MongoAidRepo{coll: database.Collection("aid_applications")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAidRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a submitted application.
func (r *MongoAidRepo) Create(app *models.AidApplication) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, app); err != nil {
		return fmt.Errorf("failed to create aid application: %w", err)
	}
	return nil
}

// GetByID retrieves an application by its unique ID.
func (r *MongoAidRepo) GetByID(id string) (*models.AidApplication, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var app models.AidApplication
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&app); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("aid application with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch aid application with id %s: %w", id, err)
	}
	return &app, nil
}

// List returns one page of applications matching the filter, newest first.
func (r *MongoAidRepo) List(filter models.AidApplicationFilter, params models.ListParams) ([]models.AidApplication, int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count aid applications: %w", err)
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((params.Page - 1) * params.PageSize)).
		SetLimit(int64(params.PageSize))

	cursor, err := r.coll.Find(ctx, query, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list aid applications: %w", err)
	}
	defer cursor.Close(ctx)

	var apps []models.AidApplication
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, 0, fmt.Errorf("failed to decode aid applications: %w", err)
	}
	return apps, total, nil
}

// UpdateStatus sets the review status of an application.
func (r *MongoAidRepo) UpdateStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update aid application with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("aid application with id %s not found", id)
	}
	return nil
}

// Delete removes an application permanently.
func (r *MongoAidRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete aid application with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("aid application with id %s not found", id)
	}
	return nil
}

// CountByStatus returns the number of applications in the given status.
func (r *MongoAidRepo) CountByStatus(status string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"status": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count aid applications: %w", err)
	}
	return count, nil
}
