package parse

import (
	"fmt"
	"regexp"
	"strings"

	"autoquote/src/internal/dates"
	"autoquote/src/internal/sanitize"
	"autoquote/src/internal/schema"
	"autoquote/src/internal/stringsx"
)

var bibtexPat = regexp.MustCompile(`(?s)^@([A-Za-z]+)\s*\{\s*([^,]+)\s*,(.*)\}\s*$`)

// parseBibTeX parses an @type{key, field=value, ...} record. Missing fields
// yield empty values, never a failure; only structural malformation (no type
// token, no braced body) is an error.
func parseBibTeX(text string) (schema.Entry, error) {
	m := bibtexPat.FindStringSubmatch(text)
	if m == nil {
		return nil, fmt.Errorf("%w: not a valid BibTeX record", ErrMalformedGrammar)
	}
	entryType := strings.ToLower(m[1])
	fields := splitBibTeXFields(strings.TrimSpace(m[3]))

	h := schema.Header{
		Title: fields["title"],
		Year:  dates.ExtractYear(fields["year"]),
	}
	if af := fields["author"]; af != "" {
		h.Authors = bibtexAuthors(af)
	}

	switch entryType {
	case "article":
		return schema.JournalArticle{
			Header:  h,
			Journal: stringsx.FirstNonEmpty(fields["journal"], fields["journaltitle"]),
			Volume:  fields["volume"],
			Issue:   stringsx.FirstNonEmpty(fields["number"], fields["issue"]),
			Pages:   fields["pages"],
			DOI:     fields["doi"],
		}, nil
	case "book":
		return schema.Book{
			Header:    h,
			Publisher: fields["publisher"],
			Place:     fields["address"],
			Edition:   fields["edition"],
			ISBN:      fields["isbn"],
		}, nil
	case "inproceedings", "conference":
		return schema.ConferencePaper{
			Header:     h,
			Conference: stringsx.FirstNonEmpty(fields["booktitle"], fields["conference"]),
			Pages:      fields["pages"],
			DOI:        fields["doi"],
			Location:   fields["address"],
			Publisher:  fields["publisher"],
		}, nil
	default:
		// misc, online, web and anything unknown fall back to a web resource.
		return schema.WebResource{Header: h, URL: sanitize.CleanURL(fields["url"])}, nil
	}
}

// splitBibTeXFields splits the record body into field=value segments with an
// explicit brace-depth scan: depth rises on '{', falls (floored at zero) on
// '}', and a comma separates fields only at depth zero.
func splitBibTeXFields(body string) map[string]string {
	fields := make(map[string]string)
	var buf strings.Builder
	depth := 0
	flush := func() {
		if k, v, ok := strings.Cut(buf.String(), "="); ok {
			fields[strings.ToLower(strings.TrimSpace(k))] = stripBibTeXValue(v)
		}
		buf.Reset()
	}
	for _, ch := range body {
		switch ch {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		}
		if ch == ',' && depth == 0 {
			flush()
			continue
		}
		buf.WriteRune(ch)
	}
	if strings.TrimSpace(buf.String()) != "" {
		flush()
	}
	return fields
}

// stripBibTeXValue trims a field value and removes exactly one surrounding
// layer of braces or quotes.
func stripBibTeXValue(v string) string {
	v = strings.TrimSpace(strings.Trim(strings.TrimSpace(v), ","))
	if len(v) >= 2 && ((v[0] == '{' && v[len(v)-1] == '}') || (v[0] == '"' && v[len(v)-1] == '"')) {
		v = strings.TrimSpace(v[1 : len(v)-1])
	}
	return v
}

// bibtexAuthors splits an author field on the literal " and " separator.
// A token without a comma is tokenized by whitespace with the last token
// taken as the surname; that is a heuristic, not a guarantee.
func bibtexAuthors(field string) []schema.Author {
	parts := strings.Split(strings.ReplaceAll(field, "\n", " "), " and ")
	var authors []schema.Author
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if last, first, ok := strings.Cut(p, ","); ok {
			authors = append(authors, schema.Author{Last: strings.TrimSpace(last), First: strings.TrimSpace(first)})
			continue
		}
		tokens := strings.Fields(p)
		if len(tokens) == 1 {
			// single token: organization or CJK name
			authors = append(authors, schema.Author{Last: tokens[0]})
			continue
		}
		authors = append(authors, schema.Author{
			Last:  tokens[len(tokens)-1],
			First: strings.Join(tokens[:len(tokens)-1], " "),
		})
	}
	return authors
}
