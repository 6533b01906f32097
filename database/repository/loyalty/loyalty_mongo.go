package loyaltyRepo

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

// MongoLoyaltyRepo implements LoyaltyRepository using MongoDB.
type MongoLoyaltyRepo struct {
	programColl *mongo.Collection
	ledgerColl  *mongo.Collection
}

// NewMongoLoyaltyRepo creates a new instance of LoyaltyRepository using MongoDB.
func NewMongoLoyaltyRepo() LoyaltyRepository {
	db := database.MongoClient.Database(database.DBName)
	repo := &MongoLoyaltyRepo{
		programColl: db.Collection("loyalty_programs"),
		ledgerColl:  db.Collection("loyalty_transactions"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoLoyaltyRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.programColl.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create program indexes: %w", err)
	}

	_, err := r.ledgerColl.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create ledger indexes: %w", err)
	}
	return nil
}

func (r *MongoLoyaltyRepo) findProgram(filter bson.M) (*models.LoyaltyProgram, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.LoyaltyProgram
	if err := r.programColl.FindOne(ctx, filter).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch loyalty program: %w", err)
	}
	return &p, nil
}

// GetActiveProgram retrieves the active program document, nil if none.
func (r *MongoLoyaltyRepo) GetActiveProgram() (*models.LoyaltyProgram, error) {
	return r.findProgram(bson.M{"isActive": true})
}

// GetProgram retrieves the program document, nil if none exists yet.
func (r *MongoLoyaltyRepo) GetProgram() (*models.LoyaltyProgram, error) {
	return r.findProgram(bson.M{})
}

// CreateProgram inserts a new program document.
func (r *MongoLoyaltyRepo) CreateProgram(p *models.LoyaltyProgram) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := r.programColl.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create loyalty program: %w", err)
	}
	return nil
}

// UpdateProgram modifies the program document.
func (r *MongoLoyaltyRepo) UpdateProgram(p *models.LoyaltyProgram) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	p.UpdatedAt = time.Now()
	result, err := r.programColl.UpdateOne(ctx, bson.M{"id": p.ID}, bson.M{"$set": p})
	if err != nil {
		return fmt.Errorf("failed to update loyalty program %s: %w", p.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("loyalty program with id %s not found", p.ID)
	}
	return nil
}

// CreateTransaction appends one entry to the points ledger.
func (r *MongoLoyaltyRepo) CreateTransaction(tx *models.LoyaltyTransaction) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	tx.CreatedAt = time.Now()
	if _, err := r.ledgerColl.InsertOne(ctx, tx); err != nil {
		return fmt.Errorf("failed to create loyalty transaction: %w", err)
	}
	return nil
}

// GetTransactionsByUser retrieves a user's ledger, newest first.
func (r *MongoLoyaltyRepo) GetTransactionsByUser(userID string) ([]models.LoyaltyTransaction, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.ledgerColl.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve loyalty transactions: %w", err)
	}
	defer cursor.Close(ctx)

	var txs []models.LoyaltyTransaction
	for cursor.Next(ctx) {
		var tx models.LoyaltyTransaction
		if err := cursor.Decode(&tx); err != nil {
			return nil, fmt.Errorf("failed to decode loyalty transaction: %w", err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
