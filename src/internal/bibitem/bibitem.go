// Package bibitem turns a formatted reference into a LaTeX \bibitem block
// with a stable citation key.
package bibitem

import (
	"fmt"
	"regexp"
	"strings"

	"autoquote/src/internal/schema"
)

var (
	keyCharPat    = regexp.MustCompile(`[^A-Za-z0-9\x{4e00}-\x{9fa5}]`)
	pureCJKPat    = regexp.MustCompile(`^[\x{4e00}-\x{9fa5}]+$`)
	enumPrefixPat = regexp.MustCompile(`^\s*(\[\d+\]|\(?\d+\)?[.)])\s*`)
)

var latexRepl = map[rune]string{
	'\\': `\\`,
	'{':  `\{`,
	'}':  `\}`,
	'#':  `\#`,
	'$':  `\$`,
	'%':  `\%`,
	'&':  `\&`,
	'_':  `\_`,
	'^':  `\^{}`,
	'~':  `\~{}`,
}

// Escape escapes the LaTeX special characters in text.
func Escape(text string) string {
	var b strings.Builder
	for _, r := range text {
		if repl, ok := latexRepl[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Key derives a citation key: first author's surname plus given name reduced
// to alphanumeric/CJK characters, a 等/EtAl disambiguation suffix when the
// entry has more than one author (等 when any author's concatenated name is
// pure CJK), and the year when present. Authorless entries use the first 8
// alphanumeric/CJK characters of the title, or "ref".
func Key(e schema.Entry) string {
	h := e.Common()
	if len(h.Authors) > 0 {
		a := h.Authors[0]
		base := keyCharPat.ReplaceAllString(a.Last+a.First, "")
		if len(h.Authors) > 1 {
			suffix := "EtAl"
			for _, x := range h.Authors {
				if pureCJKPat.MatchString(x.Last + x.First) {
					suffix = "等"
					break
				}
			}
			base += suffix
		}
		if h.Year > 0 {
			return fmt.Sprintf("%s%d", base, h.Year)
		}
		return base
	}
	var b strings.Builder
	n := 0
	for _, r := range h.Title {
		if ('A' <= r && r <= 'Z') || ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') || (0x4e00 <= r && r <= 0x9fa5) {
			b.WriteRune(r)
			n++
			if n == 8 {
				break
			}
		}
	}
	if b.Len() == 0 {
		return "ref"
	}
	return b.String()
}

// Build assembles the \bibitem block for an entry and its formatted
// reference. A pre-existing enumeration prefix ([N], N., N), (N)) is
// stripped from the formatted string, and the entry's URL or DOI, when
// present, becomes a second \url{}/DOI: line.
func Build(e schema.Entry, formatted string) string {
	key := Key(e)
	var second string
	switch v := e.(type) {
	case schema.WebResource:
		if v.URL != "" {
			second = `\url{` + Escape(v.URL) + `}`
		}
	case schema.JournalArticle:
		if v.DOI != "" {
			second = "DOI: " + Escape(v.DOI)
		}
	case schema.ConferencePaper:
		if v.DOI != "" {
			second = "DOI: " + Escape(v.DOI)
		}
	}
	body := enumPrefixPat.ReplaceAllString(Escape(formatted), "")
	body = strings.TrimSuffix(body, ".")
	if second != "" {
		return fmt.Sprintf("\\bibitem{%s}\n    %s. \\\\ \n    %s", key, body, second)
	}
	return fmt.Sprintf("\\bibitem{%s}\n    %s.", key, body)
}
