package gbt

import (
	"errors"
	"strings"
	"testing"
	"time"

	"autoquote/src/internal/schema"
)

func mustFormat(t *testing.T, e schema.Entry) string {
	t.Helper()
	s, err := Format(e)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	return s
}

func TestFormatJournalFull(t *testing.T) {
	a := schema.JournalArticle{
		Header: schema.Header{
			Title: "示例标题",
			Authors: []schema.Author{
				{Last: "张", First: "三"}, {Last: "李", First: "四"},
				{Last: "王", First: "五"}, {Last: "赵", First: "六"},
			},
			Year: 2024,
		},
		Journal: "测试期刊",
		Volume:  "10",
		Issue:   "2",
		Pages:   "1-10",
	}
	got := mustFormat(t, a)
	want := "张三, 李四, 王五, 等. 示例标题[J]. 测试期刊, 2024, 10(2): 1-10"
	if got != want {
		t.Fatalf("journal:\nwant %q\ngot  %q", want, got)
	}
}

func TestFormatJournalEnglishEtAl(t *testing.T) {
	a := schema.JournalArticle{
		Header: schema.Header{
			Title: "Intelligent robotics and applications",
			Authors: []schema.Author{
				{Last: "Yu", First: "Hongbo"}, {Last: "Liu", First: "Jinguo"},
				{Last: "Liu", First: "Liqiang"}, {Last: "Wang", First: "Wei"},
			},
			Year: 2023,
		},
		Journal: "Example Journal",
		Volume:  "12",
		Issue:   "1",
		Pages:   "20-30",
	}
	got := mustFormat(t, a)
	if !strings.Contains(got, "et al.") || !strings.Contains(got, "Yu H") {
		t.Fatalf("journal en: %q", got)
	}
	if !strings.Contains(got, ", 2023, 12(1): 20-30") {
		t.Fatalf("journal en tail: %q", got)
	}
}

func TestFormatJournalVariants(t *testing.T) {
	base := schema.JournalArticle{
		Header:  schema.Header{Title: "T", Authors: []schema.Author{{Last: "Smith", First: "J"}}},
		Journal: "J",
	}
	if got := mustFormat(t, base); got != "Smith J. T[J]. J, n.d." {
		t.Fatalf("no year: %q", got)
	}
	vol := base
	vol.Volume = "5"
	if got := mustFormat(t, vol); !strings.HasSuffix(got, "n.d., 5") {
		t.Fatalf("volume only: %q", got)
	}
	iss := base
	iss.Issue = "3"
	if got := mustFormat(t, iss); !strings.HasSuffix(got, "n.d., (3)") {
		t.Fatalf("issue only: %q", got)
	}
	d := base
	d.DOI = "https://doi.org/10.1/x"
	if got := mustFormat(t, d); !strings.HasSuffix(got, ". DOI: 10.1/x") {
		t.Fatalf("doi sanitized: %q", got)
	}
}

func TestFormatBook(t *testing.T) {
	b := schema.Book{
		Header: schema.Header{
			Title:   "Python 编程实践",
			Authors: []schema.Author{{Last: "刘", First: "伟"}},
			Year:    2023,
		},
		Publisher: "机械工业出版社",
		Place:     "北京",
		Edition:   "2",
	}
	got := mustFormat(t, b)
	want := "刘伟. Python 编程实践[M]. 2版. 北京: 机械工业出版社, 2023."
	if got != want {
		t.Fatalf("book:\nwant %q\ngot  %q", want, got)
	}
}

func TestFormatBookEnglishEdition(t *testing.T) {
	b := schema.Book{
		Header: schema.Header{
			Title:    "The Go Programming Language",
			Authors:  []schema.Author{{Last: "Donovan", First: "Alan"}},
			Year:     2015,
			Language: schema.LangEN,
		},
		Publisher: "Addison-Wesley",
		Place:     "Boston",
		Edition:   "1",
	}
	got := mustFormat(t, b)
	if !strings.Contains(got, "[M]. 1 ed. Boston: Addison-Wesley, 2015.") {
		t.Fatalf("book en: %q", got)
	}
}

func TestFormatBookBareYear(t *testing.T) {
	b := schema.Book{Header: schema.Header{Title: "孤本", Year: 1999}}
	got := mustFormat(t, b)
	want := "[无作者]. 孤本[M]. 1999."
	if got != want {
		t.Fatalf("book bare:\nwant %q\ngot  %q", want, got)
	}
}

func TestFormatChapter(t *testing.T) {
	c := schema.BookChapter{
		Header: schema.Header{
			Title:   "Deep topics in context",
			Authors: []schema.Author{{Last: "Brown", First: "T"}},
			Year:    2020,
		},
		BookTitle: "Handbook of Things",
		Place:     "Boston",
		Publisher: "Big Press",
		Pages:     "12-34",
	}
	got := mustFormat(t, c)
	want := "Brown T. Deep topics in context[M]//Handbook of Things. Boston: Big Press, 2020: 12-34."
	if got != want {
		t.Fatalf("chapter:\nwant %q\ngot  %q", want, got)
	}
}

func TestFormatWeb(t *testing.T) {
	w := schema.WebResource{
		Header: schema.Header{
			Title:   "Robots",
			Authors: []schema.Author{{Last: "INNFOS", IsOrganization: true}},
		},
		URL:           "https://innfos.com/",
		DatePublished: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		DateAccessed:  time.Date(2020, 4, 30, 0, 0, 0, 0, time.UTC),
	}
	got := mustFormat(t, w)
	want := "INNFOS. Robots[EB/OL]. (2020-01-01) [2020-04-30]. https://innfos.com/."
	if got != want {
		t.Fatalf("web:\nwant %q\ngot  %q", want, got)
	}
}

func TestFormatWebNoDates(t *testing.T) {
	w := schema.WebResource{
		Header: schema.Header{Title: "Robots", Authors: []schema.Author{{Last: "INNFOS", IsOrganization: true}}},
		URL:    "https://innfos.com/",
	}
	got := mustFormat(t, w)
	// Absent dates omit their segments entirely, no empty brackets.
	want := "INNFOS. Robots[EB/OL]. https://innfos.com/."
	if got != want {
		t.Fatalf("web no dates:\nwant %q\ngot  %q", want, got)
	}
}

func TestFormatConference(t *testing.T) {
	c := schema.ConferencePaper{
		Header: schema.Header{
			Title:   "A study of something",
			Authors: []schema.Author{{Last: "Zhang", First: "S"}},
			Year:    2020,
		},
		Conference: "ICML 2020",
		Location:   "Vienna",
		Publisher:  "ACM",
		Pages:      "100-110",
		DOI:        "10.9/z",
	}
	got := mustFormat(t, c)
	want := "Zhang S. A study of something[C]//ICML 2020. Vienna; ACM, 2020: 100-110. DOI: 10.9/z"
	if got != want {
		t.Fatalf("conference:\nwant %q\ngot  %q", want, got)
	}
}

func TestFormatConferenceMinimal(t *testing.T) {
	c := schema.ConferencePaper{
		Header:     schema.Header{Title: "Attention is All you Need", Authors: []schema.Author{{Last: "Vaswani", First: "Ashish"}}, Year: 2017},
		Conference: "Neural Information Processing Systems",
	}
	got := mustFormat(t, c)
	want := "Vaswani A. Attention is All you Need[C]//Neural Information Processing Systems. 2017"
	if got != want {
		t.Fatalf("conference minimal:\nwant %q\ngot  %q", want, got)
	}
}

// The author segment gains a trailing period only when one is not already
// present.
func TestFormatNoDoubledPeriod(t *testing.T) {
	w := schema.WebResource{
		Header: schema.Header{Title: "Site", Authors: []schema.Author{{Last: "ACME INC.", IsOrganization: true}}},
		URL:    "https://acme.example/",
	}
	got := mustFormat(t, w)
	if strings.Contains(got, "..") {
		t.Fatalf("doubled period: %q", got)
	}
}

// Format is total over directly constructed entries of all five variants.
func TestFormatTotal(t *testing.T) {
	entries := []schema.Entry{
		schema.JournalArticle{Header: schema.Header{Title: "T"}},
		schema.Book{Header: schema.Header{Title: "T"}},
		schema.BookChapter{Header: schema.Header{Title: "T"}, BookTitle: "B"},
		schema.WebResource{Header: schema.Header{Title: "T"}, URL: "https://e.example/"},
		schema.ConferencePaper{Header: schema.Header{Title: "T"}, Conference: "C"},
	}
	for _, e := range entries {
		if _, err := Format(e); err != nil {
			t.Fatalf("Format %T: %v", e, err)
		}
	}
}

type alienEntry struct{ schema.Header }

func (alienEntry) Kind() schema.Kind { return "alien" }

func TestFormatUnsupportedType(t *testing.T) {
	_, err := Format(alienEntry{schema.Header{Title: "X"}})
	if !errors.Is(err, ErrUnsupportedEntryType) {
		t.Fatalf("want ErrUnsupportedEntryType, got %v", err)
	}
}
