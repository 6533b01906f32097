package notificationRepo

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

// MongoNotificationRepo implements NotificationRepository using MongoDB.
type MongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo creates a new instance of NotificationRepository using MongoDB.
func NewMongoNotificationRepo() NotificationRepository {
	coll := database.MongoClient.Database(database.DBName).Collection("notifications")
	repo := &MongoNotificationRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoNotificationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a notification by its unique ID.
func (r *MongoNotificationRepo) GetByID(id string) (*models.Notification, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var n models.Notification
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&n); err != nil {
		return nil, fmt.Errorf("failed to fetch notification with id %s: %w", id, err)
	}
	return &n, nil
}

// GetByUser retrieves a user's notifications, newest first.
func (r *MongoNotificationRepo) GetByUser(userID string) ([]models.Notification, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve notifications: %w", err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	for cursor.Next(ctx) {
		var n models.Notification
		if err := cursor.Decode(&n); err != nil {
			return nil, fmt.Errorf("failed to decode notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

// Create inserts a new notification document.
func (r *MongoNotificationRepo) Create(n *models.Notification) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	n.CreatedAt = now
	n.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (r *MongoNotificationRepo) setFields(filter, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	_, err := r.coll.UpdateMany(ctx, filter, bson.M{"$set": fields})
	return err
}

// MarkRead flips a notification's isRead flag.
func (r *MongoNotificationRepo) MarkRead(id string) error {
	if err := r.setFields(bson.M{"id": id}, bson.M{"isRead": true}); err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", id, err)
	}
	return nil
}

// MarkAllRead flips isRead on every unread notification of a user.
func (r *MongoNotificationRepo) MarkAllRead(userID string) error {
	if err := r.setFields(bson.M{"userId": userID, "isRead": false}, bson.M{"isRead": true}); err != nil {
		return fmt.Errorf("failed to mark notifications read for user %s: %w", userID, err)
	}
	return nil
}

// SetEmailSent records that the notification went out by email.
func (r *MongoNotificationRepo) SetEmailSent(id string) error {
	if err := r.setFields(bson.M{"id": id}, bson.M{"sentViaEmail": true}); err != nil {
		return fmt.Errorf("failed to flag email sent for notification %s: %w", id, err)
	}
	return nil
}

// Delete removes a notification document by its ID.
func (r *MongoNotificationRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete notification with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("notification with id %s not found", id)
	}
	return nil
}
