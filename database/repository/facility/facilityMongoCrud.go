// File: database/repository/facility/facilityMongoCrud.go
package facilityRepo

import (
	"fmt"
	"time"

	"courtside/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new facility document.
func (r *MongoFacilityRepo) Create(facility *models.Facility) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	facility.CreatedAt = now
	facility.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, facility); err != nil {
		return fmt.Errorf("failed to create facility: %w", err)
	}
	return nil
}

// Update modifies an existing facility document.
func (r *MongoFacilityRepo) Update(facility *models.Facility) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	facility.UpdatedAt = time.Now()
	filter := bson.M{"id": facility.ID}
	update := bson.M{"$set": facility}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update facility with id %s: %w", facility.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("facility with id %s not found", facility.ID)
	}
	return nil
}

// Delete removes a facility document by its ID.
func (r *MongoFacilityRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete facility with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("facility with id %s not found", id)
	}
	return nil
}
