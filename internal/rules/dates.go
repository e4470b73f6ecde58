package rules

import (
	"fmt"
	"math"
	"strings"
	"time"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTime accepts the ISO-8601 shapes the UI sends: full timestamps with
// or without a zone, local date-times and bare dates. Zone-less values are
// read as UTC.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// DaysUntil counts whole calendar days from now's date to the date of s.
// Negative values are in the past.
func DaysUntil(s string, now time.Time) (int, error) {
	t, err := ParseTime(s)
	if err != nil {
		return 0, err
	}
	day := func(t time.Time) time.Time {
		y, m, d := t.UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return int(math.Round(day(t).Sub(day(now)).Hours() / 24)), nil
}

// DueWithin reports whether the date s is overdue or falls within days of
// now. Empty or unparseable dates are never due.
func DueWithin(s string, now time.Time, days int) bool {
	if s == "" {
		return false
	}
	n, err := DaysUntil(s, now)
	if err != nil {
		return false
	}
	return n <= days
}
