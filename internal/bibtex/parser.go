package bibtex

import (
	"bufio"
	"io"
)

// LineStream is a pull-based reader of input lines. It replaces the usual
// shared-file-cursor approach with an explicit "next line or end" operation,
// so parsing one entry never depends on a precomputed line count.
type LineStream struct {
	scanner *bufio.Scanner
	line    int
}

// NewLineStream returns a stream reading lines from r.
func NewLineStream(r io.Reader) *LineStream {
	return &LineStream{scanner: bufio.NewScanner(r)}
}

// Next returns the next line without its terminator, or false at end of
// stream.
func (s *LineStream) Next() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	s.line++
	return s.scanner.Text(), true
}

// Line returns the 1-based number of the most recently returned line.
func (s *LineStream) Line() int {
	return s.line
}

// Err returns the first error encountered while reading.
func (s *LineStream) Err() error {
	return s.scanner.Err()
}

// ParseEntry consumes lines from the stream until one full entry has been
// digested or the stream is exhausted. The stream is left positioned
// immediately after the entry's terminating line. When the stream runs out
// before any entry header is seen, the returned entry has Found false.
func ParseEntry(s *LineStream) *Entry {
	entry := &Entry{Fields: make(map[string]string)}

	for {
		line, ok := s.Next()
		if !ok {
			return entry
		}

		if !entry.Found {
			// Seeking: skip everything until an entry header appears.
			if entryType, key, ok := MatchEntryStart(line); ok {
				entry.Found = true
				entry.Type = entryType
				entry.Key = key
				entry.HeaderLine = s.Line()
			}
			continue
		}

		// Accumulating: classify the line against the field registry,
		// first match wins.
		if name, parts, ok := ClassifyField(line); ok {
			entry.Fields[name] = parts.Contents
			continue
		}

		if IsEntryEnd(line) {
			return entry
		}
		// Unrecognized content inside an entry is skipped.
	}
}

// Parse reads all entries from r. Input with no recognized entries yields
// an empty slice and no error.
func Parse(r io.Reader) ([]*Entry, error) {
	s := NewLineStream(r)
	var entries []*Entry
	for {
		entry := ParseEntry(s)
		if !entry.Found {
			break
		}
		entries = append(entries, entry)
	}
	return entries, s.Err()
}
