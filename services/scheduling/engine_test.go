package scheduling

import (
	"reflect"
	"testing"

	"salao/models"
)

func TestComputeEndTime(t *testing.T) {
	cases := []struct {
		start    string
		duration int
		expected string
	}{
		{
			start:    "09:00",
			duration: 30,
			expected: "09:30",
		},
		{
			start:    "09:45",
			duration: 30,
			expected: "10:15",
		},
		{
			start:    "10:00",
			duration: 60,
			expected: "11:00",
		},
		{
			start:    "16:30",
			duration: 90,
			expected: "18:00",
		},
		{
			start:    "00:05",
			duration: 5,
			expected: "00:10",
		},
		{
			// No rollover past midnight: the hour component keeps growing.
			start:    "23:45",
			duration: 30,
			expected: "24:15",
		},
	}

	for _, c := range cases {
		got := ComputeEndTime(c.start, c.duration)
		if got != c.expected {
			t.Fatalf("ComputeEndTime(%q, %d): expected %s, got %s", c.start, c.duration, c.expected, got)
		}
	}
}

func TestHasConflict(t *testing.T) {
	booked := []models.TimeInterval{
		{Start: "09:00", End: "09:30"},
		{Start: "11:00", End: "12:00"},
	}

	cases := []struct {
		name      string
		candidate models.TimeInterval
		expected  bool
	}{
		{
			name:      "strictly between bookings",
			candidate: models.TimeInterval{Start: "10:00", End: "10:30"},
			expected:  false,
		},
		{
			name:      "identical to existing booking",
			candidate: models.TimeInterval{Start: "09:00", End: "09:30"},
			expected:  true,
		},
		{
			name:      "back to back after a booking",
			candidate: models.TimeInterval{Start: "09:30", End: "10:00"},
			expected:  false,
		},
		{
			name:      "back to back before a booking",
			candidate: models.TimeInterval{Start: "10:30", End: "11:00"},
			expected:  false,
		},
		{
			name:      "overlaps tail of a booking",
			candidate: models.TimeInterval{Start: "09:15", End: "09:45"},
			expected:  true,
		},
		{
			name:      "overlaps head of a booking",
			candidate: models.TimeInterval{Start: "10:45", End: "11:15"},
			expected:  true,
		},
		{
			name:      "envelops a booking",
			candidate: models.TimeInterval{Start: "10:30", End: "12:30"},
			expected:  true,
		},
		{
			name:      "inside a booking",
			candidate: models.TimeInterval{Start: "11:15", End: "11:45"},
			expected:  true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := HasConflict(c.candidate, booked); got != c.expected {
				t.Fatalf("expected %v, got %v", c.expected, got)
			}
		})
	}
}

func TestHasConflictEmptyRoster(t *testing.T) {
	if HasConflict(models.TimeInterval{Start: "09:00", End: "09:30"}, nil) {
		t.Fatal("expected no conflict against an empty roster")
	}
}

func TestAvailableSlotsEmptyRoster(t *testing.T) {
	expected := []string{
		"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
		"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
		"15:00", "15:30", "16:00", "16:30",
	}

	got := AvailableSlots(nil)
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
}

func TestAvailableSlotsExcludesBooked(t *testing.T) {
	booked := []models.TimeInterval{
		{Start: "10:00", End: "10:30"},
	}

	got := AvailableSlots(booked)
	for _, s := range got {
		if s == "10:00" {
			t.Fatal("booked slot 10:00 should not be listed")
		}
	}

	want := map[string]bool{"09:30": false, "10:30": false}
	for _, s := range got {
		if _, ok := want[s]; ok {
			want[s] = true
		}
	}
	for s, found := range want {
		if !found {
			t.Fatalf("expected slot %s to be available", s)
		}
	}
	if len(got) != 15 {
		t.Fatalf("expected 15 free slots, got %d", len(got))
	}
}

func TestAvailableSlotsLongBooking(t *testing.T) {
	// A 90-minute booking blocks three consecutive grid slots.
	booked := []models.TimeInterval{
		{Start: "13:00", End: "14:30"},
	}

	got := AvailableSlots(booked)
	blocked := map[string]bool{"13:00": true, "13:30": true, "14:00": true}
	for _, s := range got {
		if blocked[s] {
			t.Fatalf("slot %s overlaps the booking and should be excluded", s)
		}
	}
	if len(got) != 13 {
		t.Fatalf("expected 13 free slots, got %d", len(got))
	}
}
