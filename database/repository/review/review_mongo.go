package reviewRepo

import (
	"context"
	"fmt"
	"time"

	"salao/database"
	"salao/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates a new instance of ReviewRepository using MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	coll := database.MongoClient.Database(database.DBName).Collection("reviews")
	repo := &MongoReviewRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoReviewRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "appointmentId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "serviceId", Value: 1}}},
		{Keys: bson.D{{Key: "employeeId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a review by its unique ID.
func (r *MongoReviewRepo) GetByID(id string) (*models.Review, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var review models.Review
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&review); err != nil {
		return nil, fmt.Errorf("failed to fetch review with id %s: %w", id, err)
	}
	return &review, nil
}

// GetAll retrieves reviews filtered by service and/or employee, newest first.
func (r *MongoReviewRepo) GetAll(serviceID, employeeID string) ([]models.Review, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if serviceID != "" {
		filter["serviceId"] = serviceID
	}
	if employeeID != "" {
		filter["employeeId"] = employeeID
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	for cursor.Next(ctx) {
		var rv models.Review
		if err := cursor.Decode(&rv); err != nil {
			return nil, fmt.Errorf("failed to decode review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	return reviews, nil
}

// GetByAppointment retrieves the review for an appointment, nil if none.
func (r *MongoReviewRepo) GetByAppointment(appointmentID string) (*models.Review, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var review models.Review
	if err := r.coll.FindOne(ctx, bson.M{"appointmentId": appointmentID}).Decode(&review); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch review for appointment %s: %w", appointmentID, err)
	}
	return &review, nil
}

// Create inserts a new review document.
func (r *MongoReviewRepo) Create(review *models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// Update modifies an existing review document.
func (r *MongoReviewRepo) Update(review *models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	review.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": review.ID}, bson.M{"$set": review})
	if err != nil {
		return fmt.Errorf("failed to update review with id %s: %w", review.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("review with id %s not found", review.ID)
	}
	return nil
}

// Delete removes a review document by its ID.
func (r *MongoReviewRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete review with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("review with id %s not found", id)
	}
	return nil
}
