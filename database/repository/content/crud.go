package contentRepo

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

// MongoContentRepo implements ContentRepository using MongoDB.
type MongoContentRepo struct {
	testimonials *mongo.Collection
	categories   *mongo.Collection
}

// NewMongoContentRepo creates a new instance of ContentRepository using MongoDB.
func NewMongoContentRepo() ContentRepository {
	return &MongoContentRepo{
		testimonials: database.Collection("testimonials"),
		categories:   database.Collection("categories"),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// CreateTestimonial inserts a new testimonial, unapproved by default.
func (r *MongoContentRepo) CreateTestimonial(t *models.Testimonial) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	t.Approved = false
	t.CreatedAt = time.Now()

	if _, err := r.testimonials.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("failed to create testimonial: %w", err)
	}
	return nil
}

// ListTestimonials returns one page of testimonials, newest first.
func (r *MongoContentRepo) ListTestimonials(approvedOnly bool, params models.ListParams) ([]models.Testimonial, int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	query := bson.M{}
	if approvedOnly {
		query["approved"] = true
	}

	total, err := r.testimonials.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count testimonials: %w", err)
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((params.Page - 1) * params.PageSize)).
		SetLimit(int64(params.PageSize))

	cursor, err := r.testimonials.Find(ctx, query, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list testimonials: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.Testimonial
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("failed to decode testimonials: %w", err)
	}
	return items, total, nil
}

// ApproveTestimonial marks a testimonial as approved for display.
func (r *MongoContentRepo) ApproveTestimonial(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.testimonials.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"approved": true}})
	if err != nil {
		return fmt.Errorf("failed to approve testimonial with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("testimonial with id %s not found", id)
	}
	return nil
}

// DeleteTestimonial removes a testimonial by its ID.
func (r *MongoContentRepo) DeleteTestimonial(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.testimonials.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete testimonial with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("testimonial with id %s not found", id)
	}
	return nil
}

// CreateCategory inserts a new category document.
func (r *MongoContentRepo) CreateCategory(c *models.Category) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	c.CreatedAt = time.Now()
	if _, err := r.categories.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// UpdateCategory modifies an existing category document.
func (r *MongoContentRepo) UpdateCategory(c *models.Category) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.categories.UpdateOne(ctx, bson.M{"id": c.ID}, bson.M{"$set": c})
	if err != nil {
		return fmt.Errorf("failed to update category with id %s: %w", c.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("category with id %s not found", c.ID)
	}
	return nil
}

// DeleteCategory removes a category by its ID.
func (r *MongoContentRepo) DeleteCategory(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.categories.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete category with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("category with id %s not found", id)
	}
	return nil
}

// ListCategories returns all categories sorted by name.
func (r *MongoContentRepo) ListCategories() ([]models.Category, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.categories.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}
