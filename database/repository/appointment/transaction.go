package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salao/models"
	"salao/services/scheduling"

	"go.mongodb.org/mongo-driver/mongo"
)

// CreateIfFree checks the employee's roster for the day and inserts the
// appointment only when its interval is free. On replica-set deployments
// both steps run inside one session transaction so a concurrent booking for
// the same slot cannot slip between the check and the insert; on standalone
// Mongo it degrades to the plain check-then-insert path, where the unique
// (employeeId, date, startTime) index still rejects exact duplicates.
func (r *MongoAppointmentRepo) CreateIfFree(ctx context.Context, appt *models.Appointment) error {
	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		// Sessions themselves unavailable (very old server).
		return r.createIfFreeUnguarded(ctx, appt)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		booked, err := r.intervalsFor(sc, appt.EmployeeID, appt.Date)
		if err != nil {
			return err
		}
		if scheduling.HasConflict(appt.Interval(), booked) {
			return ErrSlotTaken
		}
		if _, err := r.coll.InsertOne(sc, appt); err != nil {
			return fmt.Errorf("insert appointment failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrSlotTaken) {
			return ErrSlotTaken
		}
		// StartSession succeeds against a standalone server; the rejection
		// only arrives from the first operation that carries a transaction
		// number. Fall back to the unguarded path in that case.
		if transactionsUnsupported(err) {
			return r.createIfFreeUnguarded(ctx, appt)
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}

// transactionsUnsupported reports whether err is the server telling us the
// deployment cannot run transactions (standalone mongod, code 20
// IllegalOperation).
func transactionsUnsupported(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == 20 || cmdErr.HasErrorMessage("Transaction numbers are only allowed")
	}
	return false
}

func (r *MongoAppointmentRepo) createIfFreeUnguarded(ctx context.Context, appt *models.Appointment) error {
	booked, err := r.intervalsFor(ctx, appt.EmployeeID, appt.Date)
	if err != nil {
		return err
	}
	if scheduling.HasConflict(appt.Interval(), booked) {
		return ErrSlotTaken
	}
	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("insert appointment failed: %w", err)
	}
	return nil
}
