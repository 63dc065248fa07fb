package names

import (
	"strings"

	"autoquote/src/internal/schema"
)

// NoAuthor is the placeholder rendered when an entry has no authors.
const NoAuthor = "[无作者]"

// maxListed is the number of authors kept before truncating with a suffix.
const maxListed = 3

// HasLatin reports whether s contains any ASCII letter. Script detection is
// deliberately this crude: the legacy suffix and name-joining rules depend on
// it, so mixed-script and romanized names keep their historical treatment.
func HasLatin(s string) bool {
	for _, r := range s {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
			return true
		}
	}
	return false
}

// Format renders one author for a GB/T 7714 reference list.
//
// Organizations render verbatim. Names without a Latin letter in the surname
// are treated as CJK and concatenated with no separator or reordering. Latin
// names render as "Surname Initials" with compound surnames capitalized
// per token, e.g. first "Bo Liang" -> "Liang B L".
func Format(a schema.Author) string {
	if a.IsOrganization {
		return a.Last
	}
	if !HasLatin(a.Last) {
		if a.First == "" {
			return a.Last
		}
		return a.Last + a.First
	}
	surname := strings.Join(capitalizeParts(a.Last), " ")
	if a.First == "" {
		return surname
	}
	initials := Initials(a.First)
	if initials == "" {
		return surname
	}
	return surname + " " + initials
}

// Initials reduces a given name to space-joined uppercase initials with no
// periods: "Bo Liang" -> "B L", "A.-B." -> "A B".
func Initials(given string) string {
	var out []string
	for _, seg := range splitNameParts(given) {
		r := []rune(seg)
		out = append(out, strings.ToUpper(string(r[0])))
	}
	return strings.Join(out, " ")
}

// FormatList renders an ordered author list. Lists longer than three keep the
// first three and append a truncation suffix: "et al." when any retained
// formatted name contains a Latin letter, otherwise "等". The check looks only
// at the retained three, not the full list.
func FormatList(authors []schema.Author) string {
	if len(authors) == 0 {
		return NoAuthor
	}
	formatted := make([]string, 0, len(authors))
	for _, a := range authors {
		formatted = append(formatted, Format(a))
	}
	if len(formatted) > maxListed {
		kept := formatted[:maxListed]
		suffix := "等"
		for _, name := range kept {
			if HasLatin(name) {
				suffix = "et al."
				break
			}
		}
		return strings.Join(kept, ", ") + ", " + suffix
	}
	return strings.Join(formatted, ", ")
}

// capitalizeParts splits on spaces and hyphens and capitalizes each token
// (first rune upper, rest lower), handling compound surnames.
func capitalizeParts(s string) []string {
	var out []string
	for _, seg := range splitNameParts(s) {
		r := []rune(seg)
		out = append(out, strings.ToUpper(string(r[0]))+strings.ToLower(string(r[1:])))
	}
	return out
}

func splitNameParts(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == '-' || r == '\t' })
}
