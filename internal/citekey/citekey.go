package citekey

import (
	"strings"

	"github.com/jwmay/conbib/internal/bibtex"
	"github.com/jwmay/conbib/internal/missing"
)

// TwoDigitYear returns the last two characters of the entry's year field,
// "13" for 2013. A missing year yields the placeholder and a tracker
// entry; a short year string is returned as-is rather than sliced.
func TwoDigitYear(entry *bibtex.Entry, tracker *missing.Tracker) string {
	year, ok := entry.Field("year")
	if !ok || year == "" {
		tracker.Record(LabelYear)
		return Placeholder
	}
	if len(year) <= 2 {
		return year
	}
	return year[len(year)-2:]
}

// FirstPage returns the text before the first hyphen of the entry's pages
// field, the first page of a range like 45-52. A missing pages field
// yields the placeholder and a tracker entry.
func FirstPage(entry *bibtex.Entry, tracker *missing.Tracker) string {
	pages, ok := entry.Field("pages")
	if !ok || pages == "" {
		tracker.Record(LabelPageNumber)
		return Placeholder
	}
	if hyphen := strings.Index(pages, "-"); hyphen >= 0 {
		return pages[:hyphen]
	}
	return pages
}

// Key generates the citation key for an entry:
//
//	<last author's last name><2-digit year>_<suffix>
//
// where the suffix is the first page number for articles, the literal
// "thesis" for PhD and masters theses, and the entry type otherwise.
// Missing fields degrade to placeholder segments; generation never fails.
func Key(entry *bibtex.Entry, tracker *missing.Tracker, opts Options) string {
	name := LastAuthorLastName(entry, tracker, opts)
	year := TwoDigitYear(entry, tracker)

	var suffix string
	switch {
	case entry.Type == "article":
		suffix = FirstPage(entry, tracker)
	case entry.IsThesis():
		suffix = "thesis"
	default:
		suffix = entry.Type
	}

	return name + year + "_" + suffix
}
