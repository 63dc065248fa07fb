package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"autoquote/src/internal/dates"
	"autoquote/src/internal/doi"
	"autoquote/src/internal/sanitize"
	"autoquote/src/internal/schema"
)

var (
	preTitlePat = regexp.MustCompile(`^(.+?)\.\s*(.+)$`)

	jPagesPat = regexp.MustCompile(`:\s*([0-9eE\-–]+)\b`)
	jMainPat  = regexp.MustCompile(`^([^,.]+),\s*(\d{4})(?:,\s*([^:.]+))?`)
	viPat     = regexp.MustCompile(`^([^()]+)\(([^)]+)\)`)

	mPubPat = regexp.MustCompile(`([^:]+):\s*([^,.]+),\s*(\d{4})`)

	webPubDatePat = regexp.MustCompile(`\((\d{4}-\d{2}-\d{2})\)`)
	webAccDatePat = regexp.MustCompile(`\[(\d{4}-\d{2}-\d{2})\]`)
	webURLPat     = regexp.MustCompile(`https?://[^\s.]+[^\s]*`)

	confTitlePat = regexp.MustCompile(`(.+?)\[C\]\.?\s*//\s*(.+)`)
	confPubPat   = regexp.MustCompile(`([^:]+):\s*([^,]+),\s*(\d{4})(?::\s*([0-9\-–]+))?`)
)

// parseMarker handles the GB/T intermediate style once a type marker has been
// located. The string left of the first period is the author segment; the
// remainder is handed to the marker-specific sub-grammar.
func parseMarker(text, marker string) (schema.Entry, error) {
	pm := preTitlePat.FindStringSubmatch(text)
	if pm == nil {
		return nil, fmt.Errorf("%w: cannot split authors from title (missing period)", ErrMalformedGrammar)
	}
	authors := splitAuthors(pm[1])
	rest := pm[2]
	switch marker {
	case "J":
		return parseMarkerJournal(authors, rest)
	case "M":
		return parseMarkerBook(authors, rest)
	case "EB/OL", "DB/OL":
		return parseMarkerWeb(authors, rest, marker)
	case "C":
		return parseMarkerConference(authors, rest)
	}
	return nil, fmt.Errorf("%w: unsupported marker [%s]", ErrMalformedGrammar, marker)
}

// titleTail splits "Title[<marker>]. tail" and reports whether the marker was
// found after a non-empty title.
func titleTail(rest, marker string) (title, tail string, ok bool) {
	pat := regexp.MustCompile(`(.+?)\[` + regexp.QuoteMeta(marker) + `\]\.?\s*(.+)`)
	m := pat.FindStringSubmatch(rest)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), m[2], true
}

// parseMarkerJournal parses the [J] tail shape
// "Journal, Year[, Vol(Issue)]: Pages. DOI: xxx". Partial tails degrade
// silently: an unmatched journal name becomes the literal "NA" placeholder.
func parseMarkerJournal(authors []schema.Author, rest string) (schema.Entry, error) {
	title, tail, ok := titleTail(rest, "J")
	if !ok {
		return nil, fmt.Errorf("%w: journal entry: cannot locate title before [J]", ErrMalformedGrammar)
	}
	e := schema.JournalArticle{
		Header:  schema.Header{Title: title, Authors: authors},
		Journal: "NA",
		DOI:     doi.FindLabeled(tail),
	}
	if m := jPagesPat.FindStringSubmatch(tail); m != nil {
		e.Pages = m[1]
	}
	if m := jMainPat.FindStringSubmatch(tail); m != nil {
		e.Journal = strings.TrimSpace(m[1])
		e.Year, _ = strconv.Atoi(m[2])
		if vi := strings.TrimSpace(m[3]); vi != "" {
			if vm := viPat.FindStringSubmatch(vi); vm != nil {
				e.Volume = strings.TrimSpace(vm[1])
				e.Issue = strings.TrimSpace(vm[2])
			} else {
				e.Volume = vi
			}
		}
	}
	return e, nil
}

// parseMarkerBook parses the [M] tail shape "Place: Publisher, Year.".
func parseMarkerBook(authors []schema.Author, rest string) (schema.Entry, error) {
	title, tail, ok := titleTail(rest, "M")
	if !ok {
		return nil, fmt.Errorf("%w: book entry: cannot locate title before [M]", ErrMalformedGrammar)
	}
	e := schema.Book{Header: schema.Header{Title: title, Authors: authors}}
	if m := mPubPat.FindStringSubmatch(tail); m != nil {
		e.Place = strings.TrimSpace(m[1])
		e.Publisher = strings.TrimSpace(m[2])
		e.Year, _ = strconv.Atoi(m[3])
	}
	return e, nil
}

// parseMarkerWeb parses the [EB/OL]/[DB/OL] tail shape
// "(PublishDate) [AccessDate]. URL.". Both dates are optional and detected
// independently; a malformed date is dropped, not an error.
func parseMarkerWeb(authors []schema.Author, rest, marker string) (schema.Entry, error) {
	title, tail, ok := titleTail(rest, marker)
	if !ok {
		return nil, fmt.Errorf("%w: electronic resource: cannot locate title before [%s]", ErrMalformedGrammar, marker)
	}
	e := schema.WebResource{Header: schema.Header{Title: title, Authors: authors}}
	if m := webPubDatePat.FindStringSubmatch(tail); m != nil {
		if d, err := dates.ParseISO(m[1]); err == nil {
			e.DatePublished = d
		}
	}
	if m := webAccDatePat.FindStringSubmatch(tail); m != nil {
		if d, err := dates.ParseISO(m[1]); err == nil {
			e.DateAccessed = d
		}
	}
	if m := webURLPat.FindString(tail); m != "" {
		e.URL = sanitize.CleanURL(strings.TrimRight(m, "."))
	}
	return e, nil
}

// parseMarkerConference parses the [C] tail shape
// "//ConferenceName. Location: Publisher, Year[: Pages]". The // separator
// after the title marker is mandatory.
func parseMarkerConference(authors []schema.Author, rest string) (schema.Entry, error) {
	m := confTitlePat.FindStringSubmatch(rest)
	if m == nil {
		return nil, fmt.Errorf("%w: conference entry: missing // separator after [C]", ErrMalformedGrammar)
	}
	title := strings.TrimSpace(m[1])
	tail := m[2]
	conf := tail
	if i := strings.Index(tail, "."); i >= 0 {
		conf = tail[:i]
	}
	e := schema.ConferencePaper{
		Header:     schema.Header{Title: title, Authors: authors},
		Conference: strings.TrimSpace(conf),
	}
	pubSec := strings.TrimLeft(tail[len(conf):], ". ")
	if pm := confPubPat.FindStringSubmatch(pubSec); pm != nil {
		e.Location = strings.TrimSpace(pm[1])
		e.Publisher = strings.TrimSpace(pm[2])
		e.Year, _ = strconv.Atoi(pm[3])
		e.Pages = pm[4]
	}
	return e, nil
}
