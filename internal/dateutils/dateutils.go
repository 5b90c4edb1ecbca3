// Package dateutils provides the date handling shared by the ledger and
// the report engines. All user-facing dates are DD/MM/YYYY strings.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayoutBR is the only layout the data file uses.
const DateLayoutBR = "02/01/2006"

// ParseDate parses a DD/MM/YYYY string.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	t, err := time.Parse(DateLayoutBR, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date %q: %w", dateStr, err)
	}
	return t, nil
}

// FormatDate renders a time as DD/MM/YYYY. Zero times render empty.
func FormatDate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(DateLayoutBR)
}

// IsValid reports whether dateStr is a parseable DD/MM/YYYY date.
func IsValid(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}

// CompareDates compares two dates ignoring any time component and
// returns -1, 0 or 1.
func CompareDates(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// InRange reports whether date falls within [start, end] inclusive.
func InRange(date, start, end time.Time) bool {
	return CompareDates(date, start) >= 0 && CompareDates(date, end) <= 0
}

// StartOfMonth returns the first day of the month for a given date.
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the last day of the month for a given date.
func EndOfMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, 1, -1)
}
