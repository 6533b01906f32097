package appointmentRepo

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

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo creates a new instance of AppointmentRepository using MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	coll := database.MongoClient.Database(database.DBName).Collection("appointments")
	repo := &MongoAppointmentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAppointmentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "employeeId", Value: 1}, {Key: "date", Value: 1}}},
		// Two bookings can never share a start slot for the same employee
		// and day; this backstops the conflict check under concurrency.
		{
			Keys:    bson.D{{Key: "employeeId", Value: 1}, {Key: "date", Value: 1}, {Key: "startTime", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "clientId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an appointment by its unique ID.
func (r *MongoAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		return nil, fmt.Errorf("failed to fetch appointment with id %s: %w", id, err)
	}
	return &appt, nil
}

func (r *MongoAppointmentRepo) find(filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	for cursor.Next(ctx) {
		var a models.Appointment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode appointment: %w", err)
		}
		appts = append(appts, a)
	}
	return appts, nil
}

// GetAll retrieves every appointment document.
func (r *MongoAppointmentRepo) GetAll() ([]models.Appointment, error) {
	return r.find(bson.M{})
}

// GetByClient retrieves all appointments booked by a client.
func (r *MongoAppointmentRepo) GetByClient(clientID string) ([]models.Appointment, error) {
	return r.find(bson.M{"clientId": clientID})
}

// GetByEmployee retrieves all appointments assigned to an employee.
func (r *MongoAppointmentRepo) GetByEmployee(employeeID string) ([]models.Appointment, error) {
	return r.find(bson.M{"employeeId": employeeID})
}

// IntervalsFor returns booked intervals for an employee on a date. Status
// is deliberately not filtered: cancelled appointments keep blocking their
// slot until deleted.
func (r *MongoAppointmentRepo) IntervalsFor(employeeID, date string) ([]models.TimeInterval, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	return r.intervalsFor(ctx, employeeID, date)
}

func (r *MongoAppointmentRepo) intervalsFor(ctx context.Context, employeeID, date string) ([]models.TimeInterval, error) {
	filter := bson.M{"employeeId": employeeID, "date": date}
	opts := options.Find().
		SetProjection(bson.M{"startTime": 1, "endTime": 1, "_id": 0}).
		SetSort(bson.D{{Key: "startTime", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve booked intervals: %w", err)
	}
	defer cursor.Close(ctx)

	var intervals []models.TimeInterval
	for cursor.Next(ctx) {
		var iv models.TimeInterval
		if err := cursor.Decode(&iv); err != nil {
			return nil, fmt.Errorf("failed to decode interval: %w", err)
		}
		intervals = append(intervals, iv)
	}
	return intervals, nil
}

// Update modifies an existing appointment document.
func (r *MongoAppointmentRepo) Update(appt *models.Appointment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	appt.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": appt.ID}, bson.M{"$set": appt})
	if err != nil {
		return fmt.Errorf("failed to update appointment with id %s: %w", appt.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("appointment with id %s not found", appt.ID)
	}
	return nil
}

// Delete removes an appointment document by its ID.
func (r *MongoAppointmentRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete appointment with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("appointment with id %s not found", id)
	}
	return nil
}
