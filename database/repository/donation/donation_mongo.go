package donationRepo

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

// DonationRepository defines persistence operations for donations.
type DonationRepository interface {
	Create(donation *models.Donation) error
	GetByID(id string) (*models.Donation, error)
	GetByPaymentIntent(paymentIntentID string) (*models.Donation, error)
	UpdateStatus(id, status string) error
	List(status string, params models.ListParams) ([]models.Donation, int64, error)
	TotalSucceeded() (total int64, count int64, err error)
}

// MongoDonationRepo implements DonationRepository using MongoDB.
type MongoDonationRepo struct {
	coll *mongo.Collection
}

// NewMongoDonationRepo creates a new instance of DonationRepository using MongoDB.
func NewMongoDonationRepo() DonationRepository {
	repo := &MongoDonationRepo{coll: database.Collection("donations")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoDonationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "payment_intent_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new donation document.
func (r *MongoDonationRepo) Create(donation *models.Donation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	donation.CreatedAt = now
	donation.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, donation); err != nil {
		return fmt.Errorf("failed to create donation: %w", err)
	}
	return nil
}

// GetByID retrieves a donation by its unique ID.
func (r *MongoDonationRepo) GetByID(id string) (*models.Donation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var donation models.Donation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&donation); err != nil {
		return nil, fmt.Errorf("donation with id %s not found: %w", id, err)
	}
	return &donation, nil
}

// GetByPaymentIntent retrieves a donation by its Stripe payment intent ID.
func (r *MongoDonationRepo) GetByPaymentIntent(paymentIntentID string) (*models.Donation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var donation models.Donation
	if err := r.coll.FindOne(ctx, bson.M{"payment_intent_id": paymentIntentID}).Decode(&donation); err != nil {
		return nil, fmt.Errorf("donation for payment intent %s not found: %w", paymentIntentID, err)
	}
	return &donation, nil
}

// UpdateStatus sets the payment status of a donation.
func (r *MongoDonationRepo) UpdateStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update donation with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("donation with id %s not found", id)
	}
	return nil
}

// List returns one page of donations, optionally filtered by status.
func (r *MongoDonationRepo) List(status string, params models.ListParams) ([]models.Donation, int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	query := bson.M{}
	if status != "" {
		query["status"] = status
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count donations: %w", err)
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((params.Page - 1) * params.PageSize)).
		SetLimit(int64(params.PageSize))

	cursor, err := r.coll.Find(ctx, query, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list donations: %w", err)
	}
	defer cursor.Close(ctx)

	var donations []models.Donation
	if err := cursor.All(ctx, &donations); err != nil {
		return nil, 0, fmt.Errorf("failed to decode donations: %w", err)
	}
	return donations, total, nil
}

// TotalSucceeded aggregates the sum and count of succeeded donations.
func (r *MongoDonationRepo) TotalSucceeded() (int64, int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{"status": "succeeded"}},
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$amount"}, "count": bson.M{"$sum": 1}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate donations: %w", err)
	}
	defer cursor.Close(ctx)

	if cursor.Next(ctx) {
		var row struct {
			Total int64 `bson:"total"`
			Count int64 `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return 0, 0, fmt.Errorf("failed to decode donation aggregate: %w", err)
		}
		return row.Total, row.Count, nil
	}
	return 0, 0, cursor.Err()
}
