package common

import (
	"fmt"
	"time"
)

// ParseDate parses value using a Go reference layout and anchors the
// result at midday UTC. Statement dates carry no time of day; anchoring at
// noon keeps the calendar day stable when the value crosses timezones.
func ParseDate(layout, value string) (time.Time, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return Midday(t), nil
}

// Midday returns the same calendar day fixed at 12:00 UTC.
func Midday(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
}
