package utils

import (
	"fmt"
	"strings"
	"time"
)

const day = 24 * time.Hour

// DateLayout is the plain calendar date format accepted alongside RFC 3339
const DateLayout = "2006-01-02"

// ParseDate parses an RFC 3339 timestamp or a YYYY-MM-DD date (midnight UTC)
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected RFC 3339 or %s", value, DateLayout)
	}
	return t, nil
}

// WholeDaysBetween counts complete days from from to to, truncated toward zero.
// The result is negative when to is before from.
func WholeDaysBetween(from, to time.Time) int {
	return int(to.Sub(from) / day)
}

// CeilDays counts days from from to to rounded up. It never returns a negative value.
func CeilDays(from, to time.Time) int {
	d := to.Sub(from)
	if d <= 0 {
		return 0
	}
	days := d / day
	if d%day != 0 {
		days++
	}
	return int(days)
}
