package models

import (
	"time"
)

// ParseTimestamp normalizes the heterogeneous timestamp shapes that appear in
// stored documents. Priority order:
//  1. native-timestamp map shape: {"seconds": ..., "nanoseconds": ...}
//  2. numeric epoch milliseconds
//  3. ISO-8601 / RFC3339 string
// Returns nil when absent or unparsable.
func ParseTimestamp(v interface{}) *time.Time {
	switch t := v.(type) {
	case nil:
		return nil
	case map[string]interface{}:
		secs, ok := asFloat(t["seconds"])
		if !ok {
			return nil
		}
		nanos, _ := asFloat(t["nanoseconds"])
		ts := time.Unix(int64(secs), int64(nanos)).UTC()
		return &ts
	case float64, int64, int:
		millis, _ := asFloat(t)
		ts := time.UnixMilli(int64(millis)).UTC()
		return &ts
	case string:
		if t == "" {
			return nil
		}
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
			if ts, err := time.Parse(layout, t); err == nil {
				ts = ts.UTC()
				return &ts
			}
		}
		return nil
	default:
		return nil
	}
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// DocString reads a string field, substituting empty for missing or non-string values.
func DocString(data map[string]interface{}, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}
