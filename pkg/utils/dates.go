package utils

import (
	"strings"
	"time"
)

// Accepted inbound date layouts, most specific first. Inquiries arrive from
// extraction services and manual forms, so the format varies.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// ParseFlexibleDate returns the parsed date and true, or a zero time and
// false. An unparsable date is treated as absent, never as an error.
func ParseFlexibleDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DurationDays is the whole number of days between start and end.
func DurationDays(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

func NowUnixSeconds() int64 { return time.Now().Unix() }
