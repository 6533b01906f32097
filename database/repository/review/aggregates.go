package reviewRepo

import (
	"fmt"
	"time"

	"salao/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *MongoReviewRepo) averageBy(field, value string) (models.RatingSummary, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: field, Value: value}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + field},
			{Key: "averageRating", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return models.RatingSummary{}, fmt.Errorf("failed to aggregate ratings: %w", err)
	}
	defer cursor.Close(ctx)

	if cursor.Next(ctx) {
		var summary models.RatingSummary
		if err := cursor.Decode(&summary); err != nil {
			return models.RatingSummary{}, fmt.Errorf("failed to decode rating summary: %w", err)
		}
		return summary, nil
	}
	// No reviews yet.
	return models.RatingSummary{}, nil
}

// AverageForService aggregates the mean rating of a service.
func (r *MongoReviewRepo) AverageForService(serviceID string) (models.RatingSummary, error) {
	return r.averageBy("serviceId", serviceID)
}

// AverageForEmployee aggregates the mean rating of an employee.
func (r *MongoReviewRepo) AverageForEmployee(employeeID string) (models.RatingSummary, error) {
	return r.averageBy("employeeId", employeeID)
}
