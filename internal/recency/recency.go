package recency

import (
	"fmt"
	"time"
)

// Formatter turns timestamps into coarse "N units ago" labels relative to its clock.
type Formatter struct {
	now func() time.Time
}

// New returns a Formatter using the wall clock.
func New() *Formatter {
	return &Formatter{now: time.Now}
}

// NewWithClock returns a Formatter reading the current time from now.
func NewWithClock(now func() time.Time) *Formatter {
	return &Formatter{now: now}
}

// Format labels t. Bands are checked in order, every magnitude is truncated:
//
//	< 60 minutes -> "N minutes ago"
//	< 24 hours   -> "N hours ago"
//	< 30 days    -> "N days ago"
//	otherwise    -> "N months ago" (30-day months)
//
// Timestamps in the future are reported as "0 minutes ago".
func (f *Formatter) Format(t time.Time) string {
	minutes := int64(f.now().Sub(t) / time.Minute)
	if minutes < 0 {
		minutes = 0
	}

	if minutes < 60 {
		return fmt.Sprintf("%d minutes ago", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%d hours ago", hours)
	}

	days := hours / 24
	if days < 30 {
		return fmt.Sprintf("%d days ago", days)
	}

	return fmt.Sprintf("%d months ago", days/30)
}

var std = New()

// Format labels t against the wall clock.
func Format(t time.Time) string {
	return std.Format(t)
}
