package schema

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Kind tags the closed set of entry variants.
type Kind string

const (
	KindJournal     Kind = "journal"
	KindBook        Kind = "book"
	KindBookChapter Kind = "book_chapter"
	KindWeb         Kind = "web"
	KindConference  Kind = "conference"
)

// Language selects punctuation conventions (edition strings, truncation suffix).
type Language string

const (
	LangZH Language = "zh"
	LangEN Language = "en"
)

// Author is a single author. For organizations the full organization name is
// stored in Last and First is empty.
type Author struct {
	Last           string `yaml:"last" json:"last"`
	First          string `yaml:"first,omitempty" json:"first,omitempty"`
	IsOrganization bool   `yaml:"is_organization,omitempty" json:"is_organization,omitempty"`
}

// Header holds the fields shared by every entry variant. Author order is
// citation-significant and preserved as given. Year 0 means unknown and
// renders as "n.d.". An empty Language means LangZH.
type Header struct {
	Title    string   `yaml:"title" json:"title"`
	Authors  []Author `yaml:"authors,omitempty" json:"authors,omitempty"`
	Year     int      `yaml:"year,omitempty" json:"year,omitempty"`
	Language Language `yaml:"language,omitempty" json:"language,omitempty"`
}

// Common returns the shared header fields.
func (h Header) Common() Header { return h }

// Lang returns the header language, defaulting to zh.
func (h Header) Lang() Language {
	if h.Language == LangEN {
		return LangEN
	}
	return LangZH
}

// Validate applies the construction-time rules shared by all variants.
func (h Header) Validate() error {
	if strings.TrimSpace(h.Title) == "" {
		return errors.New("title is required")
	}
	switch h.Language {
	case "", LangZH, LangEN:
	default:
		return fmt.Errorf("invalid language: %s", h.Language)
	}
	return nil
}

// Entry is the canonical structured record for one citation, one of exactly
// five variants. Entries are values: never mutated after construction.
type Entry interface {
	Kind() Kind
	Common() Header
	Validate() error
}

// JournalArticle is a journal article ([J]).
type JournalArticle struct {
	Header  `yaml:",inline"`
	Journal string `yaml:"journal,omitempty" json:"journal,omitempty"`
	Volume  string `yaml:"volume,omitempty" json:"volume,omitempty"`
	Issue   string `yaml:"issue,omitempty" json:"issue,omitempty"`
	Pages   string `yaml:"pages,omitempty" json:"pages,omitempty"`
	DOI     string `yaml:"doi,omitempty" json:"doi,omitempty"`
}

func (JournalArticle) Kind() Kind { return KindJournal }

// Book is a monograph ([M]).
type Book struct {
	Header    `yaml:",inline"`
	Publisher string `yaml:"publisher,omitempty" json:"publisher,omitempty"`
	Place     string `yaml:"place,omitempty" json:"place,omitempty"`
	Edition   string `yaml:"edition,omitempty" json:"edition,omitempty"`
	ISBN      string `yaml:"isbn,omitempty" json:"isbn,omitempty"`
}

func (Book) Kind() Kind { return KindBook }

// BookChapter is a chapter inside an edited book, rendered with the [M]
// marker and a // separator before the book title.
type BookChapter struct {
	Header    `yaml:",inline"`
	BookTitle string `yaml:"book_title" json:"book_title"`
	Place     string `yaml:"place,omitempty" json:"place,omitempty"`
	Publisher string `yaml:"publisher,omitempty" json:"publisher,omitempty"`
	Pages     string `yaml:"pages,omitempty" json:"pages,omitempty"`
}

func (BookChapter) Kind() Kind { return KindBookChapter }

// WebResource is an online resource ([EB/OL] or [DB/OL]). Zero dates mean
// the date is unknown and the corresponding segment is omitted.
type WebResource struct {
	Header        `yaml:",inline"`
	URL           string    `yaml:"url,omitempty" json:"url,omitempty"`
	DatePublished time.Time `yaml:"date_published,omitempty" json:"date_published,omitempty"`
	DateAccessed  time.Time `yaml:"date_accessed,omitempty" json:"date_accessed,omitempty"`
	Org           string    `yaml:"org,omitempty" json:"org,omitempty"`
}

func (WebResource) Kind() Kind { return KindWeb }

// ConferencePaper is a paper in conference proceedings ([C]).
type ConferencePaper struct {
	Header     `yaml:",inline"`
	Conference string `yaml:"conference,omitempty" json:"conference,omitempty"`
	Location   string `yaml:"location,omitempty" json:"location,omitempty"`
	Publisher  string `yaml:"publisher,omitempty" json:"publisher,omitempty"`
	Pages      string `yaml:"pages,omitempty" json:"pages,omitempty"`
	DOI        string `yaml:"doi,omitempty" json:"doi,omitempty"`
	Volume     string `yaml:"volume,omitempty" json:"volume,omitempty"`
	Issue      string `yaml:"issue,omitempty" json:"issue,omitempty"`
}

func (ConferencePaper) Kind() Kind { return KindConference }
