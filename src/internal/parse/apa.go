package parse

import (
	"regexp"
	"strconv"
	"strings"

	"autoquote/src/internal/doi"
	"autoquote/src/internal/schema"
)

// The four APA-family shapes, each a single whole-string pattern tried in
// fixed order. A structural match commits to that grammar; sub-fields the
// grammar cannot extract afterwards are simply left absent.
var (
	// Authors. (Year). Title. Journal, Vol(Issue), Pages. <doi-or-url>
	apaJournalPat = regexp.MustCompile(`^(.+?)\s*\((\d{4})\)\.\s*(.+?)\.\s*([^,]+),\s*([^,]+),\s*([^.]+)\.\s*(.*)$`)
	// Authors. (Year[, Month]). Title. In BookTitle (pp. X-Y). Place: Publisher.
	apaChapterPat = regexp.MustCompile(`(?i)^(.+?)\s*\((\d{4})(?:,[^)]*)?\)\.\s*(.+?)\.\s*In\s+(.+?)\s*\(pp\.\s*([0-9\-–]+)\)\.\s*([^:]+):\s*([^.]+)\.?$`)
	// Authors. (Year). Title. Conference.
	apaConferencePat = regexp.MustCompile(`^(.+?)\s*\((\d{4})\)\.\s*(.+?)\.\s*([^.]+?)\.?$`)
	// Authors. (Year[, Month]). Title. In Conference (pp. X-Y). Publisher.
	apaConferenceExtPat = regexp.MustCompile(`(?i)^(.+?)\s*\((\d{4})(?:,\s*[A-Za-z]+)?\)\.\s*(.+?)\.\s*In\s+(.+?)\s*\(pp\.\s*([0-9\-–]+)\)\.\s*([^.]+)\.?$`)

	volIssuePat = regexp.MustCompile(`^(\d+)(?:\(([^)]+)\))?`)
)

func tryAPAJournal(text string) (schema.Entry, bool) {
	m := apaJournalPat.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	year, _ := strconv.Atoi(m[2])
	e := schema.JournalArticle{
		Header: schema.Header{
			Title:   strings.TrimSpace(m[3]),
			Authors: apaAuthors(m[1]),
			Year:    year,
		},
		Journal: strings.TrimSpace(m[4]),
		Pages:   strings.TrimSpace(m[6]),
	}
	// A combined token like 15(2) splits into volume and issue; a bare
	// numeric token is volume-only.
	if vi := volIssuePat.FindStringSubmatch(strings.TrimSpace(m[5])); vi != nil {
		e.Volume = vi[1]
		e.Issue = vi[2]
	}
	e.DOI = doi.Find(strings.TrimSpace(m[7]))
	return e, true
}

func tryAPAChapter(text string) (schema.Entry, bool) {
	m := apaChapterPat.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	year, _ := strconv.Atoi(m[2])
	return schema.BookChapter{
		Header: schema.Header{
			Title:   strings.TrimRight(strings.TrimSpace(m[3]), "."),
			Authors: apaAuthors(m[1]),
			Year:    year,
		},
		BookTitle: strings.TrimRight(strings.TrimSpace(m[4]), "."),
		Pages:     m[5],
		Place:     strings.TrimSpace(m[6]),
		Publisher: strings.TrimSpace(m[7]),
	}, true
}

func tryAPAConference(text string) (schema.Entry, bool) {
	m := apaConferencePat.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	year, _ := strconv.Atoi(m[2])
	return schema.ConferencePaper{
		Header: schema.Header{
			Title:   strings.TrimSpace(m[3]),
			Authors: apaAuthors(m[1]),
			Year:    year,
		},
		Conference: strings.TrimSpace(m[4]),
	}, true
}

func tryAPAConferenceExt(text string) (schema.Entry, bool) {
	m := apaConferenceExtPat.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	year, _ := strconv.Atoi(m[2])
	return schema.ConferencePaper{
		Header: schema.Header{
			Title:   strings.TrimSpace(m[3]),
			Authors: apaAuthors(m[1]),
			Year:    year,
		},
		Conference: strings.TrimRight(strings.TrimSpace(m[4]), "."),
		Pages:      m[5],
		Publisher:  strings.TrimSpace(m[6]),
	}, true
}
