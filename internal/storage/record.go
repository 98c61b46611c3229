// Package storage persists parsed bibliography entries in SQLite and
// JSONL formats.
package storage

import (
	"github.com/jwmay/conbib/internal/bibtex"
	"github.com/jwmay/conbib/internal/citekey"
	"github.com/jwmay/conbib/internal/missing"
)

// Record is one indexed bibliography entry: the commonly queried fields
// are lifted into columns, the full recognized field set is kept as a map.
type Record struct {
	Citekey string            `json:"citekey"`        // derived citation key
	BibKey  string            `json:"bib_key"`        // original key from the .bib file
	Type    string            `json:"type"`           // entry type (article, book, ...)
	Author  string            `json:"author"`         // raw author field
	Title   string            `json:"title"`          // title, or booktitle if no title
	Journal string            `json:"journal"`        // raw journal field
	Volume  string            `json:"volume"`         // raw volume field
	Year    string            `json:"year"`           // raw year field
	Pages   string            `json:"pages"`          // raw pages field
	Fields  map[string]string `json:"fields"`         // all recognized fields
	Line    int               `json:"line,omitempty"` // header line in the source file
}

// NewRecord builds a record from a parsed entry, deriving its citekey.
// Missing fields are recorded on the tracker.
func NewRecord(entry *bibtex.Entry, tracker *missing.Tracker, opts citekey.Options) Record {
	field := func(name string) string {
		v, _ := entry.Field(name)
		return v
	}

	title := field("title")
	if title == "" {
		title = field("booktitle")
	}

	return Record{
		Citekey: citekey.Key(entry, tracker, opts),
		BibKey:  entry.Key,
		Type:    entry.Type,
		Author:  field("author"),
		Title:   title,
		Journal: field("journal"),
		Volume:  field("volume"),
		Year:    field("year"),
		Pages:   field("pages"),
		Fields:  entry.Fields,
		Line:    entry.HeaderLine,
	}
}

// NewRecords converts a batch of parsed entries.
func NewRecords(entries []*bibtex.Entry, tracker *missing.Tracker, opts citekey.Options) []Record {
	records := make([]Record, len(entries))
	for i, entry := range entries {
		records[i] = NewRecord(entry, tracker, opts)
	}
	return records
}
