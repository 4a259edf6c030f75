package models

import (
	"strings"
	"time"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseTime accepts the formats the backend and its admin forms produce.
// Unknown formats yield the zero time instead of failing the whole document.
func parseTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ParseTime is parseTime for callers outside the package (admin flight form).
func ParseTime(value string) (time.Time, bool) {
	t := parseTime(value)
	return t, !t.IsZero()
}
