// Package scheduling computes appointment end times, detects booking
// conflicts and enumerates free slots. It is pure arithmetic over
// wall-clock "HH:MM" strings; callers are responsible for validating input
// format before it reaches this package.
package scheduling

import (
	"fmt"
	"strconv"
	"strings"

	"salao/models"
)

// Working hours and slot granularity, in minutes from midnight. These are
// fixed application constants, not derived from any schedule configuration.
const (
	WorkdayStart    = 9 * 60  // 09:00
	WorkdayEnd      = 17 * 60 // 17:00
	SlotStepMinutes = 30
)

// clockToMinutes converts "HH:MM" to minutes since midnight.
func clockToMinutes(t string) int {
	hh, mm, _ := strings.Cut(t, ":")
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	return h*60 + m
}

// minutesToClock renders minutes since midnight as zero-padded "HH:MM".
// Values past midnight keep their oversized hour component ("24:15") rather
// than rolling into the next day; an appointment never crosses a date
// boundary in this model.
func minutesToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ComputeEndTime returns the end time of a booking that starts at start
// ("HH:MM") and runs for duration minutes.
func ComputeEndTime(start string, duration int) string {
	return minutesToClock(clockToMinutes(start) + duration)
}

// HasConflict reports whether candidate overlaps any of the booked
// intervals. Intervals are half-open: a booking ending at 10:00 does not
// conflict with one starting at 10:00.
func HasConflict(candidate models.TimeInterval, booked []models.TimeInterval) bool {
	cs := clockToMinutes(candidate.Start)
	ce := clockToMinutes(candidate.End)
	for _, b := range booked {
		if cs < clockToMinutes(b.End) && ce > clockToMinutes(b.Start) {
			return true
		}
	}
	return false
}

// AvailableSlots returns the start times of free slots within working
// hours, in ascending order. Each candidate slot is a fixed
// SlotStepMinutes-wide window; the width does not depend on the duration of
// the service the caller intends to book, so a slot can show as free even
// though a longer service starting there would run into a later booking.
func AvailableSlots(booked []models.TimeInterval) []string {
	slots := make([]string, 0, (WorkdayEnd-WorkdayStart)/SlotStepMinutes)
	for t := WorkdayStart; t < WorkdayEnd; t += SlotStepMinutes {
		candidate := models.TimeInterval{
			Start: minutesToClock(t),
			End:   minutesToClock(t + SlotStepMinutes),
		}
		if !HasConflict(candidate, booked) {
			slots = append(slots, candidate.Start)
		}
	}
	return slots
}
