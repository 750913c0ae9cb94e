// File: database/repository/trainer/trainerMongoCrud.go
package trainerRepo

import (
	"fmt"
	"time"

	"courtside/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new trainer document.
func (r *MongoTrainerRepo) Create(trainer *models.Trainer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	trainer.CreatedAt = now
	trainer.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, trainer); err != nil {
		return fmt.Errorf("failed to create trainer: %w", err)
	}
	return nil
}

// Update modifies an existing trainer document.
func (r *MongoTrainerRepo) Update(trainer *models.Trainer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	trainer.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": trainer.ID}, bson.M{"$set": trainer})
	if err != nil {
		return fmt.Errorf("failed to update trainer with id %s: %w", trainer.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("trainer with id %s not found", trainer.ID)
	}
	return nil
}

// Delete removes a trainer document by its ID.
func (r *MongoTrainerRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete trainer with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("trainer with id %s not found", id)
	}
	return nil
}

// CreateApplication inserts a new trainer application document.
func (r *MongoTrainerRepo) CreateApplication(app *models.TrainerApplication) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now

	if _, err := r.appColl.InsertOne(ctx, app); err != nil {
		return fmt.Errorf("failed to create trainer application: %w", err)
	}
	return nil
}

// GetApplicationByID retrieves a trainer application by its unique ID.
func (r *MongoTrainerRepo) GetApplicationByID(id string) (*models.TrainerApplication, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var app models.TrainerApplication
	if err := r.appColl.FindOne(ctx, bson.M{"id": id}).Decode(&app); err != nil {
		return nil, fmt.Errorf("trainer application with id %s not found: %w", id, err)
	}
	return &app, nil
}

// UpdateApplicationStatus sets the review status of a trainer application.
func (r *MongoTrainerRepo) UpdateApplicationStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.appColl.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update trainer application with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("trainer application with id %s not found", id)
	}
	return nil
}
