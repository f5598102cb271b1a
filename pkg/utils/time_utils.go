package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const MinutesPerDay = 24 * 60

// ParseClock converts a 24h "HH:MM" string into minutes since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock string %q", s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock string %q", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock string %q", s)
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock %q out of range", s)
	}

	return hours*60 + minutes, nil
}

// FormatClock renders minutes since midnight as "HH:MM", wrapping
// across midnight so that e.g. 1500 minutes renders as "01:00".
func FormatClock(minutes int) string {
	minutes %= MinutesPerDay
	if minutes < 0 {
		minutes += MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AddClock shifts an "HH:MM" string by delta minutes (delta may be negative).
func AddClock(clock string, delta int) (string, error) {
	minutes, err := ParseClock(clock)
	if err != nil {
		return "", err
	}
	return FormatClock(minutes + delta), nil
}

// WeekdayInZone resolves the weekday of a "YYYY-MM-DD" date in the given
// IANA zone, returned uppercase ("MONDAY", ...).
func WeekdayInZone(date string, zone string) (string, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return "", fmt.Errorf("load zone %q: %w", zone, err)
	}

	t, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", date, err)
	}

	return strings.ToUpper(t.Weekday().String()), nil
}

// ParseDateInZone parses a "YYYY-MM-DD" date in the given IANA zone.
func ParseDateInZone(date string, zone string) (time.Time, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("load zone %q: %w", zone, err)
	}

	t, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", date, err)
	}

	return t, nil
}

// Use explicit "seconds" variant for DB storage (recommended)
func NowUnixSeconds() int64 { return time.Now().Unix() }
