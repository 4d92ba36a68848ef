// Package dateutil holds calendar-day helpers. All comparisons ignore the
// time of day; callers are expected to pass values in the same location.
package dateutil

import (
	"errors"
	"strings"
	"time"
)

const ISODate = "2006-01-02"

var inputLayouts = []string{
	ISODate,
	"2006.01.02",
	"2006/01/02",
	"20060102",
	"2006. 1. 2.",
	"2006. 1. 2",
}

var ErrInvalidDate = errors.New("invalid date")

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Today is the current calendar day in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return StartOfDay(now.In(loc))
}

// CompareDays returns -1, 0 or 1 comparing the calendar days of a and b.
func CompareDays(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	switch {
	case ay != by:
		return sign(ay - by)
	case am != bm:
		return sign(int(am) - int(bm))
	default:
		return sign(ad - bd)
	}
}

func SameDay(a, b time.Time) bool { return CompareDays(a, b) == 0 }

// AddDays moves a calendar day forward keeping midnight.
func AddDays(day time.Time, n int) time.Time {
	return StartOfDay(day).AddDate(0, 0, n)
}

// Parse accepts the date formats admins type into the dashboard. An empty
// string is not an error: it means "not entered yet" and returns ok=false.
func Parse(raw string, loc *time.Location) (t time.Time, ok bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range inputLayouts {
		if parsed, perr := time.ParseInLocation(layout, raw, loc); perr == nil {
			return parsed, true, nil
		}
	}
	// RFC3339 timestamps from API clients keep only their calendar day.
	if parsed, perr := time.Parse(time.RFC3339, raw); perr == nil {
		return StartOfDay(parsed.In(loc)), true, nil
	}
	return time.Time{}, false, ErrInvalidDate
}

// Format renders an ISO date, or "" for nil.
func Format(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(ISODate)
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
