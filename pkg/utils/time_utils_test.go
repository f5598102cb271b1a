package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"23:59", 1439, false},
		{" 12:30 ", 750, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"1230", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestFormatClockWrapsAcrossMidnight(t *testing.T) {
	assert.Equal(t, "09:00", FormatClock(540))
	assert.Equal(t, "00:00", FormatClock(1440))
	assert.Equal(t, "01:30", FormatClock(1440+90))
	assert.Equal(t, "23:30", FormatClock(-30))
}

func TestAddClock(t *testing.T) {
	got, err := AddClock("23:30", 45)
	require.NoError(t, err)
	assert.Equal(t, "00:15", got)

	got, err = AddClock("09:00", -75)
	require.NoError(t, err)
	assert.Equal(t, "07:45", got)

	_, err = AddClock("not-a-clock", 10)
	assert.Error(t, err)
}

func TestWeekdayInZone(t *testing.T) {
	// 2025-06-02 is a Monday everywhere at noon; date parsing pins
	// midnight in the requested zone.
	day, err := WeekdayInZone("2025-06-02", "Asia/Kolkata")
	require.NoError(t, err)
	assert.Equal(t, "MONDAY", day)

	day, err = WeekdayInZone("2025-06-08", "UTC")
	require.NoError(t, err)
	assert.Equal(t, "SUNDAY", day)

	_, err = WeekdayInZone("2025-13-40", "UTC")
	assert.Error(t, err)

	_, err = WeekdayInZone("2025-06-02", "Not/AZone")
	assert.Error(t, err)
}
