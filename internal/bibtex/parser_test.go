package bibtex

import (
	"strings"
	"testing"
)

const sampleBib = `@article{May2013,
  author = {Joseph W. May and X. Li},
  title = {a study of things},
  journal = {J. Chem. Phys.},
  volume = {42},
  year = {2013},
  pages = {45-52},
}

@phdthesis{May2010,
  author = {May, Joseph W.},
  title = {a dissertation},
  school = {University of Washington},
  year = {2010},
}
`

func TestParse_SampleFile(t *testing.T) {
	entries, err := Parse(strings.NewReader(sampleBib))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Parse() returned %d entries, want 2", len(entries))
	}

	article := entries[0]
	if article.Type != "article" {
		t.Errorf("entries[0].Type = %q, want %q", article.Type, "article")
	}
	if article.Key != "May2013" {
		t.Errorf("entries[0].Key = %q, want %q", article.Key, "May2013")
	}
	if article.HeaderLine != 1 {
		t.Errorf("entries[0].HeaderLine = %d, want 1", article.HeaderLine)
	}
	wantFields := map[string]string{
		"author":  "Joseph W. May and X. Li",
		"title":   "a study of things",
		"journal": "J. Chem. Phys.",
		"volume":  "42",
		"year":    "2013",
		"pages":   "45-52",
	}
	for name, want := range wantFields {
		if got, ok := article.Field(name); !ok || got != want {
			t.Errorf("entries[0].Field(%q) = %q, %v, want %q", name, got, ok, want)
		}
	}

	thesis := entries[1]
	if thesis.Type != "phdthesis" {
		t.Errorf("entries[1].Type = %q, want %q", thesis.Type, "phdthesis")
	}
	if thesis.HeaderLine != 10 {
		t.Errorf("entries[1].HeaderLine = %d, want 10", thesis.HeaderLine)
	}
	if !thesis.IsThesis() {
		t.Error("entries[1].IsThesis() = false, want true")
	}
	if school, ok := thesis.Field("school"); !ok || school != "University of Washington" {
		t.Errorf("entries[1].Field(school) = %q, %v", school, ok)
	}
}

func TestParse_NoEntries(t *testing.T) {
	input := "This file has no entries.\n\nJust prose, and a stray }.\n"
	entries, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Parse() returned %d entries, want 0", len(entries))
	}
}

func TestParse_UnsupportedTypeSkipped(t *testing.T) {
	input := `@webpage{W2020,
  author = {A. Nobody},
  title = {ignored},
}

@misc{M2020,
  title = {kept},
}
`
	entries, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Parse() returned %d entries, want 1", len(entries))
	}
	if entries[0].Type != "misc" {
		t.Errorf("entries[0].Type = %q, want %q", entries[0].Type, "misc")
	}
}

func TestParse_BlankLineTerminates(t *testing.T) {
	input := `@article{A,
  year = {2013},

  pages = {1-2},
}
`
	entries, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Parse() returned %d entries, want 1", len(entries))
	}
	// The blank line ends the entry, so pages is never collected.
	if _, ok := entries[0].Field("pages"); ok {
		t.Error("Field(pages) present, want entry terminated at blank line")
	}
}

func TestParse_UnrecognizedFieldIgnored(t *testing.T) {
	input := `@article{A,
  keywords = {spin, transport},
  year = {2013},
}
`
	entries, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Parse() returned %d entries, want 1", len(entries))
	}
	if _, ok := entries[0].Field("keywords"); ok {
		t.Error("Field(keywords) present, want unrecognized field ignored")
	}
	if year, ok := entries[0].Field("year"); !ok || year != "2013" {
		t.Errorf("Field(year) = %q, %v, want 2013", year, ok)
	}
}

func TestParseEntry_StreamPosition(t *testing.T) {
	s := NewLineStream(strings.NewReader(sampleBib))

	first := ParseEntry(s)
	if !first.Found {
		t.Fatal("first ParseEntry() found no entry")
	}

	second := ParseEntry(s)
	if !second.Found {
		t.Fatal("second ParseEntry() found no entry")
	}
	if second.Type != "phdthesis" {
		t.Errorf("second entry Type = %q, want %q", second.Type, "phdthesis")
	}

	third := ParseEntry(s)
	if third.Found {
		t.Error("third ParseEntry() found an entry in exhausted stream")
	}
}
