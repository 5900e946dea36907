package models

import (
	"testing"
	"time"
)

func TestParseTimestampNativeShape(t *testing.T) {
	ts := ParseTimestamp(map[string]interface{}{
		"seconds":     float64(1700000000),
		"nanoseconds": float64(500000000),
	})
	if ts == nil {
		t.Fatal("expected timestamp, got nil")
	}
	want := time.Unix(1700000000, 500000000).UTC()
	if !ts.Equal(want) {
		t.Errorf("got %v, want %v", ts, want)
	}
}

func TestParseTimestampEpochMillis(t *testing.T) {
	ts := ParseTimestamp(float64(1700000000000))
	if ts == nil {
		t.Fatal("expected timestamp, got nil")
	}
	if got := ts.UnixMilli(); got != 1700000000000 {
		t.Errorf("got %d, want 1700000000000", got)
	}
}

func TestParseTimestampISOString(t *testing.T) {
	ts := ParseTimestamp("2024-03-01T12:30:00Z")
	if ts == nil {
		t.Fatal("expected timestamp, got nil")
	}
	if ts.Year() != 2024 || ts.Month() != time.March || ts.Hour() != 12 {
		t.Errorf("unexpected parse result: %v", ts)
	}
}

func TestParseTimestampFailures(t *testing.T) {
	cases := []interface{}{
		nil,
		"",
		"not-a-date",
		map[string]interface{}{"nanos": float64(1)},
		true,
		[]interface{}{"2024-03-01"},
	}
	for _, v := range cases {
		if ts := ParseTimestamp(v); ts != nil {
			t.Errorf("ParseTimestamp(%v) = %v, want nil", v, ts)
		}
	}
}

// The native map shape wins even when it looks string-convertible; the
// priority order is shape, then number, then string.
func TestParseTimestampPriority(t *testing.T) {
	native := ParseTimestamp(map[string]interface{}{"seconds": float64(100)})
	if native == nil || native.Unix() != 100 {
		t.Fatalf("native shape not honored: %v", native)
	}
}
