// Package utils provides small shared helpers for time parsing and display.
package utils

import (
	"strings"
	"time"
)

// publishedLayouts are the date formats observed across upstream providers.
// Guardian emits RFC3339 ("2024-05-01T08:30:00Z"), NewsData emits a plain
// "2006-01-02 15:04:05", RSS feeds use RFC1123 variants.
var publishedLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02",
}

// ParsePublishedAt parses a provider date string into a timestamp.
// ok is false when no known layout matches; callers keep the zero time
// so unparseable dates sort after everything else.
func ParsePublishedAt(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a timestamp for tables and reports.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.UTC().Format("2006-01-02 15:04")
}

// NowUTC returns the current time in UTC. Exists so display code and
// tests agree on one clock convention.
func NowUTC() time.Time {
	return time.Now().UTC()
}
