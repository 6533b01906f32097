package appointmentRepo

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestTransactionsUnsupported(t *testing.T) {
	standaloneErr := mongo.CommandError{
		Code:    20,
		Name:    "IllegalOperation",
		Message: "Transaction numbers are only allowed on a replica set member or mongos",
	}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"standalone rejection", standaloneErr, true},
		{"standalone rejection wrapped", fmt.Errorf("insert appointment failed: %w", standaloneErr), true},
		{"message match without code", mongo.CommandError{Code: 0, Message: "Transaction numbers are only allowed on a replica set member or mongos"}, true},
		{"other command error", mongo.CommandError{Code: 11000, Message: "duplicate key"}, false},
		{"plain error", errors.New("connection reset"), false},
		{"slot taken", ErrSlotTaken, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := transactionsUnsupported(tc.err); got != tc.want {
				t.Errorf("transactionsUnsupported(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}
