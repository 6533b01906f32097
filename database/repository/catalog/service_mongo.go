package catalogRepo

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

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo creates a new instance of ServiceRepository using MongoDB.
func NewMongoServiceRepo() ServiceRepository {
	coll := database.MongoClient.Database(database.DBName).Collection("services")
	repo := &MongoServiceRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoServiceRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a service by its unique ID.
func (r *MongoServiceRepo) GetByID(id string) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var svc models.Service
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	return &svc, nil
}

// GetByName retrieves a service by name, nil if no such service.
func (r *MongoServiceRepo) GetByName(name string) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var svc models.Service
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&svc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service with name %s: %w", name, err)
	}
	return &svc, nil
}

// GetAll retrieves every service document.
func (r *MongoServiceRepo) GetAll() ([]models.Service, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	for cursor.Next(ctx) {
		var s models.Service
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		services = append(services, s)
	}
	return services, nil
}

// Create inserts a new service document.
func (r *MongoServiceRepo) Create(svc *models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	svc.CreatedAt = now
	svc.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, svc); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// Update modifies an existing service document.
func (r *MongoServiceRepo) Update(svc *models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	svc.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": svc.ID}, bson.M{"$set": svc})
	if err != nil {
		return fmt.Errorf("failed to update service with id %s: %w", svc.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("service with id %s not found", svc.ID)
	}
	return nil
}

// Delete removes a service document by its ID.
func (r *MongoServiceRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete service with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("service with id %s not found", id)
	}
	return nil
}
