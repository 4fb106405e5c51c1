package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ResolveClock resolves a time-of-day string against a calendar date
// (YYYY-MM-DD) into an absolute local timestamp.
// Supported formats:
// - HH:MM (e.g., "08:30")
// - HH:MM:SS (e.g., "08:30:15")
func ResolveClock(date, input string) (time.Time, error) {
	input = strings.TrimSpace(input)

	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%s'", date)
	}

	var clock time.Time
	if clock, err = time.Parse("15:04:05", input); err != nil {
		if clock, err = time.Parse("15:04", input); err != nil {
			return time.Time{}, fmt.Errorf("invalid time '%s'. Use HH:MM or HH:MM:SS", input)
		}
	}

	return time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, time.Local), nil
}

// ParseOdometer parses an odometer reading from user input.
// An empty string means the reading was not taken and yields nil.
func ParseOdometer(input string) (*float64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	// Allow comma as decimal separator
	input = strings.ReplaceAll(input, ",", ".")

	value, err := strconv.ParseFloat(input, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, fmt.Errorf("odometer reading must be a valid number")
	}
	if value < 0 {
		return nil, fmt.Errorf("odometer reading cannot be negative")
	}

	return &value, nil
}

// ParseCount parses a delivery/pickup counter from user input.
// An empty string counts as zero.
func ParseCount(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("'%s' is not a whole number", input)
	}
	if value < 0 {
		return 0, fmt.Errorf("count cannot be negative")
	}

	return value, nil
}
