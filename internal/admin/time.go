package admin

import (
	"fmt"
	"time"
)

// FormatRelativeTime renders a human-relative-time string for t as of now.
// The divisions are deliberate approximations (weeks = days/7, months =
// days/30, years = days/365), all floored to integers; they are not
// calendar-accurate and must stay this way for display parity:
//
//	< 60s  "just now"      < 60m  "{n}m ago"     < 24h  "{n}h ago"
//	< 7d   "{n}d ago"      weeks < 5  "{n}w ago"  months < 12  "{n}mo ago"
//	else   "{n}y ago"
//
// A nil time renders as an em dash.
func FormatRelativeTime(t *time.Time, now time.Time) string {
	if t == nil {
		return "—"
	}
	minutes := now.Sub(*t).Milliseconds() / 60000
	if minutes < 1 {
		return "just now"
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", minutes)
	}
	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}
	days := hours / 24
	if days < 7 {
		return fmt.Sprintf("%dd ago", days)
	}
	if weeks := days / 7; weeks < 5 {
		return fmt.Sprintf("%dw ago", weeks)
	}
	if months := days / 30; months < 12 {
		return fmt.Sprintf("%dmo ago", months)
	}
	return fmt.Sprintf("%dy ago", days/365)
}
