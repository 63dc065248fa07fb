package doi

import (
	"regexp"
	"strings"
)

var (
	barePat    = regexp.MustCompile(`10\.\d{4,9}/[-._;()/:A-Za-z0-9]+`)
	doiOrgPat  = regexp.MustCompile(`https?://doi\.org/(10\.\d{4,9}/[-._;()/:A-Za-z0-9]+)`)
	labeledPat = regexp.MustCompile(`(?i)DOI:\s*(\S+)`)
)

// Sanitize trims a DOI and strips a leading https://doi.org/ resolver prefix,
// keeping only the DOI suffix.
func Sanitize(d string) string {
	d = strings.TrimSpace(d)
	const prefix = "https://doi.org/"
	if strings.HasPrefix(strings.ToLower(d), prefix) {
		return d[len(prefix):]
	}
	return d
}

// Find scans a trailing segment for a bare DOI pattern, then for a doi.org
// URL, and returns the first match in that order, or "".
func Find(tail string) string {
	if m := barePat.FindString(tail); m != "" {
		return m
	}
	if m := doiOrgPat.FindStringSubmatch(tail); m != nil {
		return m[1]
	}
	return ""
}

// FindLabeled captures a DOI introduced by a case-insensitive "DOI:" label,
// with any trailing period stripped, or "".
func FindLabeled(tail string) string {
	m := labeledPat.FindStringSubmatch(tail)
	if m == nil {
		return ""
	}
	return strings.TrimRight(m[1], ".")
}
