package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 2025-06-02 is a Monday in Asia/Kolkata.
const monday = "2025-06-02"

func openPlace() *Place {
	return &Place{
		ID:             "p1",
		Name:           "City Museum",
		Longitude:      77.2090,
		Latitude:       28.6139,
		AvgDurationMin: 60,
		OpensAt:        "09:00",
		ClosesAt:       "18:00",
		Active:         true,
	}
}

func TestValidateEventMissingPlace(t *testing.T) {
	status, reason := ValidateEvent(nil, monday, "10:00", ValidateOptions{})
	assert.Equal(t, StatusInvalid, status)
	assert.Equal(t, ReasonPlaceNotFound, reason)
}

func TestValidateEventWithinHours(t *testing.T) {
	status, reason := ValidateEvent(openPlace(), monday, "10:00", ValidateOptions{})
	assert.Equal(t, StatusValid, status)
	assert.Empty(t, reason)
}

func TestValidateEventFullDayClosure(t *testing.T) {
	closure := &Closure{PlaceID: "p1", Date: monday, IsClosedFullDay: true}
	status, reason := ValidateEvent(openPlace(), monday, "10:00", ValidateOptions{Closure: closure})
	assert.Equal(t, StatusInvalid, status)
	assert.Equal(t, ReasonFullDayClosure, reason)
}

func TestValidateEventClosureRangeOverlap(t *testing.T) {
	closure := &Closure{
		PlaceID:      "p1",
		Date:         monday,
		ClosedRanges: []TimeRange{{StartTime: "12:00", EndTime: "14:00"}},
	}

	tests := []struct {
		name      string
		startTime string
		status    ValidationStatus
		reason    ValidationReason
	}{
		{"visit ends inside range", "11:30", StatusInvalid, ReasonClosureRange},
		{"visit starts inside range", "13:30", StatusInvalid, ReasonClosureRange},
		{"visit ends exactly at range start", "11:00", StatusValid, ""},
		{"visit starts exactly at range end", "14:00", StatusValid, ""},
		{"visit well before range", "09:00", StatusValid, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, reason := ValidateEvent(openPlace(), monday, tt.startTime, ValidateOptions{Closure: closure})
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestValidateEventWeeklyClosedDay(t *testing.T) {
	place := openPlace()
	place.ClosedDays = []string{"MONDAY"}

	status, reason := ValidateEvent(place, monday, "10:00", ValidateOptions{})
	assert.Equal(t, StatusInvalid, status)
	assert.Equal(t, ReasonClosedDay, reason)

	// Case of the stored weekday must not matter.
	place.ClosedDays = []string{"monday"}
	status, _ = ValidateEvent(place, monday, "10:00", ValidateOptions{})
	assert.Equal(t, StatusInvalid, status)

	// Tuesday is fine.
	status, reason = ValidateEvent(place, "2025-06-03", "10:00", ValidateOptions{})
	assert.Equal(t, StatusValid, status)
	assert.Empty(t, reason)
}

// A closure for the date overrides the weekly pattern, so the more specific
// closure reason wins even when the weekday is also closed.
func TestValidateEventClosureBeatsWeeklyPattern(t *testing.T) {
	place := openPlace()
	place.ClosedDays = []string{"MONDAY"}
	closure := &Closure{PlaceID: "p1", Date: monday, IsClosedFullDay: true}

	status, reason := ValidateEvent(place, monday, "10:00", ValidateOptions{Closure: closure})
	assert.Equal(t, StatusInvalid, status)
	assert.Equal(t, ReasonFullDayClosure, reason)
}

func TestValidateEventOutsideHours(t *testing.T) {
	tests := []struct {
		name      string
		startTime string
		status    ValidationStatus
		reason    ValidationReason
	}{
		{"before opening", "08:00", StatusInvalid, ReasonOutsideHours},
		{"runs past closing", "17:30", StatusInvalid, ReasonOutsideHours},
		{"ends exactly at closing", "17:00", StatusValid, ""},
		{"starts exactly at opening", "09:00", StatusValid, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, reason := ValidateEvent(openPlace(), monday, tt.startTime, ValidateOptions{})
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

// Places with blank or malformed hours are treated as always open.
func TestValidateEventUnboundedHours(t *testing.T) {
	place := openPlace()
	place.OpensAt = ""
	place.ClosesAt = "garbage"

	status, reason := ValidateEvent(place, monday, "23:30", ValidateOptions{})
	assert.Equal(t, StatusValid, status)
	assert.Empty(t, reason)
}
