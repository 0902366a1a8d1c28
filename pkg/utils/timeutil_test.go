package utils

import (
	"testing"
	"time"
)

func TestParsePublishedAt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{
			name:  "guardian rfc3339",
			input: "2024-05-01T08:30:00Z",
			want:  time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "newsdata space separated",
			input: "2024-05-01 08:30:00",
			want:  time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "rss rfc1123z",
			input: "Wed, 01 May 2024 08:30:00 +0000",
			want:  time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "date only",
			input: "2024-05-01",
			want:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{name: "empty", input: "", ok: false},
		{name: "garbage", input: "yesterday-ish", ok: false},
		{name: "whitespace", input: "   ", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePublishedAt(tt.input)
			if ok != tt.ok {
				t.Fatalf("ok: got %v, want %v", ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("time: got %v, want %v", got, tt.want)
			}
			if !ok && !got.IsZero() {
				t.Errorf("failed parse should return zero time, got %v", got)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(time.Time{}); got != "unknown" {
		t.Errorf("zero time: got %q, want %q", got, "unknown")
	}
	ts := time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)
	if got := FormatDate(ts); got != "2024-05-01 08:30" {
		t.Errorf("got %q, want %q", got, "2024-05-01 08:30")
	}
}
