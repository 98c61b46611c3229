package citekey

import (
	"testing"

	"github.com/jwmay/conbib/internal/bibtex"
	"github.com/jwmay/conbib/internal/missing"
)

// entryWithFields builds a found entry for tests.
func entryWithFields(entryType string, fields map[string]string) *bibtex.Entry {
	return &bibtex.Entry{
		Found:  true,
		Type:   entryType,
		Fields: fields,
	}
}

func TestLastAuthorLastName(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
		opts   Options
		want   string
	}{
		{
			name:   "first-last order",
			fields: map[string]string{"author": "Joseph W. May and X. Li"},
			want:   "Li",
		},
		{
			name:   "comma order",
			fields: map[string]string{"author": "May, Joseph W. and Li, X."},
			want:   "Li",
		},
		{
			name:   "particle dropped in comma form",
			fields: map[string]string{"author": "May, Joseph W. and van Kuiken, Benjamin"},
			want:   "Kuiken",
		},
		{
			name:   "single author",
			fields: map[string]string{"author": "Erin Smith"},
			want:   "Smith",
		},
		{
			name:   "editor fallback",
			fields: map[string]string{"editor": "B. Jones and C. Brown"},
			want:   "Brown",
		},
		{
			name:   "trailing separator dropped",
			fields: map[string]string{"author": "A. Smith and "},
			want:   "Smith",
		},
		{
			name:   "accent escapes stripped",
			fields: map[string]string{"author": `Igor \v{Z}utic`},
			want:   "Zutic",
		},
		{
			name:   "accents kept on request",
			fields: map[string]string{"author": `Igor \v{Z}utic`},
			opts:   Options{KeepAccents: true},
			want:   `\v{Z}utic`,
		},
		{
			name:   "hyphens stripped on request",
			fields: map[string]string{"author": "Marie Curie-Jones"},
			opts:   Options{StripHyphens: true},
			want:   "CurieJones",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := entryWithFields("article", tt.fields)
			got := LastAuthorLastName(entry, nil, tt.opts)
			if got != tt.want {
				t.Errorf("LastAuthorLastName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLastAuthorLastName_Missing(t *testing.T) {
	entry := entryWithFields("article", map[string]string{"title": "no names here"})
	tracker := missing.New()

	got := LastAuthorLastName(entry, tracker, Options{})
	if got != Placeholder {
		t.Errorf("LastAuthorLastName() = %q, want %q", got, Placeholder)
	}

	report := tracker.Report()
	if len(report) != 1 || report[0].Label != LabelLastName || report[0].Count != 1 {
		t.Errorf("tracker report = %+v, want one %q count", report, LabelLastName)
	}
}

func TestStripAccents(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`\v{Z}utic`, "Zutic"},
		{`M\"uller`, `M\"uller`}, // umlaut escape is not in the known class
		{`G\'{o}mez`, "Gomez"},
		{`Fran\c{c}ois`, "Francois"},
		{"Plain", "Plain"},
	}

	for _, tt := range tests {
		if got := StripAccents(tt.input); got != tt.want {
			t.Errorf("StripAccents(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
