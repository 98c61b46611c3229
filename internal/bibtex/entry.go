// Package bibtex parses BibTeX bibliography files line by line.
package bibtex

// EntryTypes is the fixed set of entry types recognized as entry starts.
// A line starting with @ whose type is not listed here is never treated
// as the beginning of an entry.
var EntryTypes = []string{
	"article",
	"book",
	"booklet",
	"conference",
	"inbook",
	"incollection",
	"inproceedings",
	"manual",
	"mastersthesis",
	"misc",
	"phdthesis",
	"proceedings",
	"techreport",
	"unpublished",
}

// Entry represents one bibliographic record parsed from a .bib file.
type Entry struct {
	// Found reports whether an entry header was seen. Parsers that reach
	// the end of the stream without a header leave this false.
	Found bool

	// Type is the entry type from the header (article, book, ...).
	Type string

	// Key is the original citation key from the header line.
	Key string

	// HeaderLine is the 1-based line number of the @type{key, header.
	HeaderLine int

	// Fields maps recognized field names to their extracted contents.
	// Unrecognized field names are never stored.
	Fields map[string]string
}

// Field returns the value of a recognized field and whether it was present.
func (e *Entry) Field(name string) (string, bool) {
	v, ok := e.Fields[name]
	return v, ok
}

// IsThesis reports whether the entry is a PhD or masters thesis.
func (e *Entry) IsThesis() bool {
	return e.Type == "phdthesis" || e.Type == "mastersthesis"
}
