package dates

import (
	"fmt"
	"strings"
	"time"
)

const isoLayout = "2006-01-02"

// ParseISO parses a strict YYYY-MM-DD calendar date. Impossible dates
// (2020-13-45) fail like any other malformed input.
func ParseISO(s string) (time.Time, error) {
	return time.Parse(isoLayout, strings.TrimSpace(s))
}

// FormatISO renders a date as YYYY-MM-DD. A zero date renders as the empty
// string so callers can omit the whole segment.
func FormatISO(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(isoLayout)
}

// ExtractYear scans a string and returns the first plausible 4-digit year,
// or 0 if none is found.
func ExtractYear(s string) int {
	s = strings.TrimSpace(s)
	for i := 0; i+4 <= len(s); i++ {
		var y int
		if _, err := fmt.Sscanf(s[i:i+4], "%d", &y); err == nil {
			if y >= 1000 && y <= time.Now().Year()+1 {
				return y
			}
		}
	}
	return 0
}
