// Package batch normalizes many citation lines with per-line isolation of
// failures: one malformed line never aborts the rest.
package batch

import (
	"strings"

	"autoquote/src/internal/bibitem"
	"autoquote/src/internal/gbt"
	"autoquote/src/internal/parse"
	"autoquote/src/internal/sanitize"
)

// Result is the outcome of normalizing one input line.
type Result struct {
	Raw     string `yaml:"raw" json:"raw"`
	Success bool   `yaml:"success" json:"success"`
	Type    string `yaml:"type,omitempty" json:"type,omitempty"`
	GBT     string `yaml:"gbt,omitempty" json:"gbt,omitempty"`
	Error   string `yaml:"error,omitempty" json:"error,omitempty"`
}

// Line normalizes a single raw citation string. Control characters are
// cleaned out of the line before parsing.
func Line(raw string) Result { return line(raw, false) }

// BibItemLine normalizes a single raw citation string and wraps the
// formatted reference as a LaTeX \bibitem block.
func BibItemLine(raw string) Result { return line(raw, true) }

func line(raw string, wrap bool) Result {
	cleaned := sanitize.CleanString(raw, 0)
	if cleaned == "" {
		return Result{Raw: raw, Error: "empty line"}
	}
	entry, err := parse.Parse(cleaned)
	if err != nil {
		return Result{Raw: cleaned, Error: err.Error()}
	}
	formatted, err := gbt.Format(entry)
	if err != nil {
		return Result{Raw: cleaned, Error: err.Error()}
	}
	if wrap {
		formatted = bibitem.Build(entry, formatted)
	}
	return Result{Raw: cleaned, Success: true, Type: string(entry.Kind()), GBT: formatted}
}

// Run normalizes every non-blank line of text.
func Run(text string) []Result { return run(text, false) }

// RunBibItems normalizes every non-blank line of text as \bibitem blocks.
func RunBibItems(text string) []Result { return run(text, true) }

func run(text string, wrap bool) []Result {
	var out []Result
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, line(l, wrap))
	}
	return out
}
