// Package temporal parses and formats the date-like strings accepted by the
// temporal primitive.
package temporal

import (
	"math"
	"time"
)

// Parse accepts RFC 3339 with optional fractional seconds, or a bare calendar
// date (2006-01-02) taken as midnight UTC.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t, nil
	}
	if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
		return t2, nil
	}
	if t3, err3 := time.Parse(time.DateOnly, s); err3 == nil {
		return t3, nil
	}
	return time.Time{}, err
}

// Format normalizes to UTC and formats using RFC3339Nano (Go trims trailing zeros).
func Format(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// FromUnixMilli converts a possibly fractional count of Unix milliseconds.
func FromUnixMilli(ms float64) time.Time {
	whole := math.Trunc(ms)
	nanos := int64(math.Round((ms - whole) * 1e6))
	return time.UnixMilli(int64(whole)).Add(time.Duration(nanos)).UTC()
}
