// Package parse turns free-form citation strings into structured entries.
//
// A raw string is matched against an ordered cascade of mutually exclusive
// grammars: BibTeX (leading @), the GB/T marker style ([J]/[M]/[EB/OL]/
// [DB/OL]/[C]), four APA-family shapes, and a legacy trailing-year shape.
// The first grammar whose top-level structure matches commits; there is no
// backtracking to a later grammar after that. All patterns are RE2, so
// matching cost stays linear in the input, which is additionally capped at
// sanitize.MaxInput.
package parse

import (
	"fmt"
	"regexp"
	"strings"

	"autoquote/src/internal/sanitize"
	"autoquote/src/internal/schema"
)

var markerPat = regexp.MustCompile(`\[(J|M|EB/OL|DB/OL|C)\]`)

// tryFunc attempts one grammar over the whole trimmed string. ok reports
// whether the grammar's top-level structure matched; a match commits.
type tryFunc func(text string) (schema.Entry, bool)

var apaCascade = []tryFunc{
	tryAPAJournal,
	tryAPAChapter,
	tryAPAConference,
	tryAPAConferenceExt,
}

// Parse normalizes one raw citation string into an Entry. It fails with
// ErrUnrecognizedFormat when no grammar matches and with ErrMalformedGrammar
// when a matched grammar is missing a mandatory delimiter or sub-field.
func Parse(raw string) (schema.Entry, error) {
	if len(raw) > sanitize.MaxInput {
		return nil, fmt.Errorf("%w: input exceeds %d bytes", ErrUnrecognizedFormat, sanitize.MaxInput)
	}
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, fmt.Errorf("%w: empty input", ErrUnrecognizedFormat)
	}
	// The @ check runs first and unconditionally: a BibTeX record whose field
	// values contain [J]-like substrings must never reach the marker grammar.
	if strings.HasPrefix(text, "@") {
		return parseBibTeX(text)
	}
	if m := markerPat.FindStringSubmatch(text); m != nil {
		return parseMarker(text, m[1])
	}
	for _, try := range apaCascade {
		if e, ok := try(text); ok {
			return e, nil
		}
	}
	if e, ok := tryLegacy(text); ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: need a [J]/[M]/[EB/OL]/[DB/OL]/[C] marker, a BibTeX record, or an APA-style shape", ErrUnrecognizedFormat)
}
