package models

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// DateLayout is the ISO calendar-day format used everywhere in the model
const DateLayout = "2006-01-02"

// ErrMalformedDate is returned when a date string does not parse as
// YYYY-MM-DD
var ErrMalformedDate = errors.New("malformed date")

// ParseDate parses a YYYY-MM-DD string into a UTC time
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	return t, nil
}

// DaysBetween returns the number of calendar days from a to b, rounded
// to the nearest whole day
func DaysBetween(a, b string) (int, error) {
	ta, err := ParseDate(a)
	if err != nil {
		return 0, err
	}
	tb, err := ParseDate(b)
	if err != nil {
		return 0, err
	}
	return int(math.Round(tb.Sub(ta).Hours() / 24)), nil
}
