package utils

import (
	"strconv"
	"strings"
	"time"
)

const isoDate = "2006-01-02"

// ParseEuropeanDate parses a day/month/year date such as "15/03/2021".
// Any trailing time component is ignored.
func ParseEuropeanDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	var n [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, false
		}
		n[i] = v
	}
	day, month, year := n[0], n[1], n[2]
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// ParseFecha accepts both the endpoint's day/month/year form and ISO dates
// coming from date inputs.
func ParseFecha(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, ok := ParseEuropeanDate(s); ok {
		return t, true
	}
	if len(s) >= len(isoDate) {
		if t, err := time.Parse(isoDate, s[:len(isoDate)]); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortKeyFecha returns the timestamp used to order by a day/month/year date.
// Missing or unparsable dates sort as the epoch.
func SortKeyFecha(s string) int64 {
	t, ok := ParseEuropeanDate(s)
	if !ok {
		return 0
	}
	return t.UnixMilli()
}
