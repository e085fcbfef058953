package utils

import (
	"strings"
	"time"
)

const dateOnly = "2006-01-02"

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	dateOnly,
}

// ParseDateBound parses a query string bound. A bare date used as an upper
// bound covers the whole day, so 2024-01-31 includes 2024-01-31T23:59:59.
// Values without an offset are read as UTC.
func ParseDateBound(raw string, upper bool) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		if layout == dateOnly && upper {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}

// ParseDateRange parses an inclusive [start, end] interval.
func ParseDateRange(startRaw, endRaw string) (time.Time, time.Time, error) {
	if strings.TrimSpace(startRaw) == "" || strings.TrimSpace(endRaw) == "" {
		return time.Time{}, time.Time{}, ErrMissingDateRange
	}
	start, err := ParseDateBound(startRaw, false)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ParseDateBound(endRaw, true)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return start, end, nil
}
