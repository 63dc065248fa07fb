package parse

import (
	"regexp"
	"strings"

	"autoquote/src/internal/schema"
)

var (
	authorSepPat = regexp.MustCompile(`[,;]`)
	orgPat       = regexp.MustCompile(`^[A-Z0-9&\-_. ]+$`)
	apaPairPat   = regexp.MustCompile(`\s*([^,]+?),\s*([A-Z][A-Za-z. ]*)(?:,|$)`)
	etAlTailPat  = regexp.MustCompile(`(?i)[,;\s]*(et al\.?|等)$`)
)

// splitAuthors is the basic author splitter used by the GB/T marker grammars:
// comma/semicolon separated tokens, full-width commas normalized, et al./等
// tokens dropped. A token of only uppercase letters, digits and symbols is
// treated as an organization author.
func splitAuthors(segment string) []schema.Author {
	seg := strings.ReplaceAll(segment, "，", ",")
	var authors []schema.Author
	for _, p := range authorSepPat.Split(seg, -1) {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		switch strings.ToLower(p) {
		case "et al.", "et al", "等":
			continue
		}
		authors = append(authors, schema.Author{Last: p, IsOrganization: orgPat.MatchString(p)})
	}
	return authors
}

// apaAuthors parses an APA author list such as
// "Smith, J., Doe, A. B., & Zhang, W." via a repeated "Surname, Initials"
// group over a comma-normalized segment. Initials lose their periods and are
// kept as space-joined letter groups. When no pair matches at all it falls
// back to splitAuthors.
func apaAuthors(segment string) []schema.Author {
	seg := strings.ReplaceAll(segment, "&", ",")
	var authors []schema.Author
	for _, m := range apaPairPat.FindAllStringSubmatch(seg, -1) {
		surname := strings.TrimSpace(m[1])
		first := strings.Join(strings.Fields(strings.ReplaceAll(strings.TrimSpace(m[2]), ".", "")), " ")
		authors = append(authors, schema.Author{Last: surname, First: first})
	}
	if len(authors) == 0 {
		return splitAuthors(segment)
	}
	return authors
}

// stripEtAl removes a trailing "et al."/"等" token, with any leading
// punctuation, from an author segment.
func stripEtAl(segment string) string {
	return etAlTailPat.ReplaceAllString(strings.TrimSpace(segment), "")
}
