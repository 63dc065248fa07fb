// Package gbt renders structured entries as GB/T 7714-2015 reference
// strings with exact punctuation.
package gbt

import (
	"errors"
	"fmt"
	"strings"

	"autoquote/src/internal/dates"
	"autoquote/src/internal/doi"
	"autoquote/src/internal/names"
	"autoquote/src/internal/schema"
	"autoquote/src/internal/stringsx"
)

// ErrUnsupportedEntryType means Format was called on a variant outside the
// closed set. That is a programming-contract violation, not a user input
// error: it cannot occur while construction is restricted to the five
// variants.
var ErrUnsupportedEntryType = errors.New("unsupported entry type")

// Format dispatches on the entry variant and returns the formatted
// reference. It is total over the five known variants.
func Format(e schema.Entry) (string, error) {
	switch v := e.(type) {
	case schema.JournalArticle:
		return formatJournal(v), nil
	case schema.Book:
		return formatBook(v), nil
	case schema.BookChapter:
		return formatChapter(v), nil
	case schema.WebResource:
		return formatWeb(v), nil
	case schema.ConferencePaper:
		return formatConference(v), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedEntryType, e)
	}
}

// authorSegment renders the author list with a trailing period appended only
// when not already present.
func authorSegment(h schema.Header) string {
	return stringsx.EnsurePeriod(names.FormatList(h.Authors))
}

func yearOrND(y int) string {
	if y > 0 {
		return fmt.Sprintf("%d", y)
	}
	return "n.d."
}

// volIssue renders ", Vol(Issue)", ", Vol" or ", (Issue)" depending on which
// parts are present, or "" when neither is.
func volIssue(vol, iss string) string {
	switch {
	case vol != "" && iss != "":
		return fmt.Sprintf(", %s(%s)", vol, iss)
	case vol != "":
		return ", " + vol
	case iss != "":
		return fmt.Sprintf(", (%s)", iss)
	}
	return ""
}

// formatJournal: <Authors>. <Title>[J]. <Journal>, <Year>[, <Vol>(<Issue>)][: <Pages>][. DOI: <doi>]
func formatJournal(a schema.JournalArticle) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s[J]. %s, %s", authorSegment(a.Header), a.Title, a.Journal, yearOrND(a.Year))
	b.WriteString(volIssue(a.Volume, a.Issue))
	if a.Pages != "" {
		b.WriteString(": " + a.Pages)
	}
	if d := doi.Sanitize(a.DOI); d != "" {
		b.WriteString(". DOI: " + d)
	}
	return b.String()
}

// formatBook: <Authors>. <Title>[M]. [<Edition>. ]<Place>: <Publisher>, <Year>.
func formatBook(bk schema.Book) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s[M].", authorSegment(bk.Header), bk.Title)
	if bk.Edition != "" {
		edition := bk.Edition + "版"
		if bk.Lang() == schema.LangEN {
			edition = bk.Edition + " ed."
		}
		b.WriteString(" " + stringsx.EnsurePeriod(edition))
	}
	placePub := ""
	if bk.Place != "" && bk.Publisher != "" {
		placePub = bk.Place + ": " + bk.Publisher
	} else {
		placePub = stringsx.FirstNonEmpty(bk.Publisher, bk.Place)
	}
	if placePub != "" {
		fmt.Fprintf(&b, " %s, %s.", placePub, yearOrND(bk.Year))
	} else {
		fmt.Fprintf(&b, " %s.", yearOrND(bk.Year))
	}
	return b.String()
}

// formatChapter: <Authors>. <Title>[M]//<BookTitle>. [<Place>: <Publisher>, ]<Year>[: <Pages>].
func formatChapter(c schema.BookChapter) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s[M]//%s.", authorSegment(c.Header), c.Title, c.BookTitle)
	if c.Place != "" && c.Publisher != "" {
		fmt.Fprintf(&b, " %s: %s, %s", c.Place, c.Publisher, yearOrND(c.Year))
	} else if pp := stringsx.FirstNonEmpty(c.Publisher, c.Place); pp != "" {
		fmt.Fprintf(&b, " %s, %s", pp, yearOrND(c.Year))
	} else {
		fmt.Fprintf(&b, " %s", yearOrND(c.Year))
	}
	if c.Pages != "" {
		b.WriteString(": " + c.Pages)
	}
	b.WriteString(".")
	return b.String()
}

// formatWeb: <Authors>. <Title>[EB/OL]. [(<PubDate>)][ [<AccessDate>]]. <URL>.
func formatWeb(w schema.WebResource) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s[EB/OL].", authorSegment(w.Header), w.Title)
	if d := dates.FormatISO(w.DatePublished); d != "" {
		b.WriteString(" (" + d + ")")
	}
	if d := dates.FormatISO(w.DateAccessed); d != "" {
		b.WriteString(" [" + d + "]")
	}
	fmt.Fprintf(&b, ". %s.", w.URL)
	return b.String()
}

// formatConference: <Authors>. <Title>[C]//<Conference>. [<Location>; <Publisher>, ]<Year>[, <Vol>(<Issue>)][: <Pages>][. DOI: <doi>]
func formatConference(c schema.ConferencePaper) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s[C]//%s.", authorSegment(c.Header), c.Title, c.Conference)
	var segs []string
	if c.Location != "" {
		segs = append(segs, c.Location)
	}
	if c.Publisher != "" {
		segs = append(segs, c.Publisher)
	}
	if len(segs) > 0 {
		fmt.Fprintf(&b, " %s, %s", strings.Join(segs, "; "), yearOrND(c.Year))
	} else {
		fmt.Fprintf(&b, " %s", yearOrND(c.Year))
	}
	b.WriteString(volIssue(c.Volume, c.Issue))
	if c.Pages != "" {
		b.WriteString(": " + c.Pages)
	}
	if d := doi.Sanitize(c.DOI); d != "" {
		b.WriteString(". DOI: " + d)
	}
	return b.String()
}
