package domain

import (
	"fmt"
	"time"
)

// ISODateLayout is the fixed-width date format used for WeekOf values.
const ISODateLayout = "2006-01-02"

// ParseISODate parses a YYYY-MM-DD date string.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(ISODateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ISO date %q: %w", s, err)
	}
	return t, nil
}

// FormatISODate formats a time as YYYY-MM-DD.
func FormatISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}

// MondayOf returns the ISO date of the Monday of the week containing t.
func MondayOf(t time.Time) string {
	// Go: Sunday=0..Saturday=6, we want Monday=0..Sunday=6
	offset := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -offset)
	return FormatISODate(monday)
}

// NormalizeToMonday snaps an ISO date string to the Monday of its week.
func NormalizeToMonday(isoDate string) (string, error) {
	t, err := ParseISODate(isoDate)
	if err != nil {
		return "", err
	}
	return MondayOf(t), nil
}

// AddDaysToISODate shifts an ISO date string by the given number of days.
func AddDaysToISODate(isoDate string, days int) (string, error) {
	t, err := ParseISODate(isoDate)
	if err != nil {
		return "", err
	}
	return FormatISODate(t.AddDate(0, 0, days)), nil
}

// NextUntrackedWeek walks forward in 7-day steps from startWeekOf until it
// finds a Monday not present in existing. startWeekOf must already be a
// Monday ISO date.
func NextUntrackedWeek(startWeekOf string, existing map[string]bool) (string, error) {
	candidate := startWeekOf
	for existing[candidate] {
		next, err := AddDaysToISODate(candidate, 7)
		if err != nil {
			return "", err
		}
		candidate = next
	}
	return candidate, nil
}
