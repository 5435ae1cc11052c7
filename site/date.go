package site

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// InvalidDate is returned by FormatDate for input it can't parse.
const InvalidDate = "Invalid Date"

// ParseDate parses a post date. YYYY-MM-DD is tried first, then any
// layout dateparse recognizes. Dates without a zone are UTC.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true
	}

	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate turns a date such as 2025-03-05 into "March 5, 2025".
func FormatDate(iso string) string {
	t, ok := ParseDate(iso)
	if !ok {
		return InvalidDate
	}
	return t.Format("January 2, 2006")
}
