package admin

import (
	"testing"
	"time"
)

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"seconds", 59 * time.Second, "just now"},
		{"exactly one minute", 60 * time.Second, "1m ago"},
		{"minutes", 45 * time.Minute, "45m ago"},
		{"exactly one hour", 60 * time.Minute, "1h ago"},
		{"hours", 23 * time.Hour, "23h ago"},
		{"exactly one day", 24 * time.Hour, "1d ago"},
		{"days", 6 * 24 * time.Hour, "6d ago"},
		{"one week", 7 * 24 * time.Hour, "1w ago"},
		{"four weeks", 34 * 24 * time.Hour, "4w ago"},
		{"one month", 35 * 24 * time.Hour, "1mo ago"},
		{"eleven months", 359 * 24 * time.Hour, "11mo ago"},
		{"one year", 365 * 24 * time.Hour, "1y ago"},
		{"two years", 800 * 24 * time.Hour, "2y ago"},
	}
	for _, c := range cases {
		ts := now.Add(-c.ago)
		if got := FormatRelativeTime(&ts, now); got != c.want {
			t.Errorf("%s: got %q, want %q", c.name, got, c.want)
		}
	}
}

func TestFormatRelativeTimeNil(t *testing.T) {
	if got := FormatRelativeTime(nil, time.Now()); got != "—" {
		t.Errorf("nil time = %q", got)
	}
}
