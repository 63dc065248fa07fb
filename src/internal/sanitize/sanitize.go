package sanitize

import (
	"net/url"
	"strings"
)

// MaxInput bounds the length of a raw citation string accepted by the
// parser. The grammar cascade runs whole-string pattern matches, so
// attacker-controlled input must be capped before any pattern runs.
const MaxInput = 16 * 1024

// CleanString trims and removes ASCII control characters except
// tab/newline/carriage return, truncating at max runes (max <= 0 disables
// truncation).
func CleanString(s string, max int) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	var b strings.Builder
	n := 0
	for _, r := range s {
		if r == '\n' || r == '\t' || r == '\r' || (r >= 0x20 && r != 0x7f) {
			b.WriteRune(r)
			n++
			if max > 0 && n >= max {
				break
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// CleanURL returns a validated http/https URL or the empty string.
func CleanURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return strings.ReplaceAll(u.String(), " ", "%20")
}
