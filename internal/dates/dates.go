// Package dates holds the calendar arithmetic the projection engine
// leans on: month lengths, day clamping, month offsets, and comparable
// date keys.
package dates

import (
	"fmt"
	"strings"
	"time"
)

// DaysInMonth returns the number of days in the given month (1-12).
func DaysInMonth(year, month int) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDay clamps a nominal day-of-month into [1, DaysInMonth(year, month)].
func ClampDay(year, month, day int) int {
	if day < 1 {
		return 1
	}
	if dim := DaysInMonth(year, month); day > dim {
		return dim
	}
	return day
}

// AddMonths advances a (year, month) pair by n months, normalizing
// across year boundaries. Month is 1-based in and out.
func AddMonths(year, month, n int) (int, int) {
	t := time.Date(year, time.Month(month+n), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), int(t.Month())
}

// Key packs a calendar date into a single comparable integer,
// year*10000 + month*100 + day, so date ordering is integer ordering.
func Key(year, month, day int) int {
	return year*10000 + month*100 + day
}

// ParseISO parses a "YYYY-MM-DD" date string, falling back to RFC 3339
// timestamps. The result carries only calendar fields, in UTC.
func ParseISO(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ISO date %q", s)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
