package parse

import (
	"regexp"
	"strconv"
	"strings"

	"autoquote/src/internal/schema"
)

// Authors. "Title." JournalName Volume (Year). The quotes are optional and a
// trailing et al./等 token is stripped from the author segment first.
var legacyPat = regexp.MustCompile(`(?i)^(.+?)\.\s*"?([^".]+)"?\.\s*(.+?)\s+(\d+)\s*\((\d{4})\)\.?$`)

func tryLegacy(text string) (schema.Entry, bool) {
	m := legacyPat.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	year, _ := strconv.Atoi(m[5])
	return schema.JournalArticle{
		Header: schema.Header{
			Title:   strings.TrimSpace(m[2]),
			Authors: apaAuthors(stripEtAl(m[1])),
			Year:    year,
		},
		Journal: strings.TrimRight(strings.TrimSpace(m[3]), ","),
		Volume:  m[4],
	}, true
}
