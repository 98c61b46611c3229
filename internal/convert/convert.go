// Package convert implements the conversion runs over a BibTeX file:
// title-casing title fields, rewriting citation keys, and dumping parsed
// entries for inspection. Each run reads the input once, forward, and
// writes to a distinct output; the input file is never touched.
package convert

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jwmay/conbib/internal/bibtex"
	"github.com/jwmay/conbib/internal/citekey"
	"github.com/jwmay/conbib/internal/missing"
	"github.com/jwmay/conbib/internal/titlecase"
)

// Titlecase copies r to w, rewriting the contents of every title field
// line to title case. All other lines pass through byte-identical,
// including their line terminators. It returns the number of title lines
// updated.
func Titlecase(r io.Reader, w io.Writer, caser *titlecase.Caser) (int, error) {
	br := bufio.NewReader(r)
	updated := 0

	for {
		line, readErr := br.ReadString('\n')
		if line != "" {
			body, eol := splitLineEnd(line)
			if parts, ok := bibtex.MatchField("title", body); ok {
				converted := parts.Prefix + caser.Convert(parts.Contents) + parts.Suffix + eol
				if _, err := io.WriteString(w, converted); err != nil {
					return updated, fmt.Errorf("writing title line: %w", err)
				}
				updated++
			} else {
				if _, err := io.WriteString(w, line); err != nil {
					return updated, fmt.Errorf("writing line: %w", err)
				}
			}
		}
		if readErr == io.EOF {
			return updated, nil
		}
		if readErr != nil {
			return updated, fmt.Errorf("reading input: %w", readErr)
		}
	}
}

// Citekey copies src to w, rewriting every recognized entry header with a
// newly generated citation key. All other lines pass through
// byte-identical. Missing fields are recorded on the tracker. It returns
// the number of headers rewritten.
func Citekey(src []byte, w io.Writer, tracker *missing.Tracker, opts citekey.Options) (int, error) {
	entries, err := bibtex.Parse(bytes.NewReader(src))
	if err != nil {
		return 0, fmt.Errorf("parsing entries: %w", err)
	}

	headers := make(map[int]string, len(entries))
	for _, entry := range entries {
		key := citekey.Key(entry, tracker, opts)
		headers[entry.HeaderLine] = fmt.Sprintf("@%s{%s,", entry.Type, key)
	}

	br := bufio.NewReader(bytes.NewReader(src))
	lineNum := 0
	for {
		line, readErr := br.ReadString('\n')
		if line != "" {
			lineNum++
			if header, ok := headers[lineNum]; ok {
				_, eol := splitLineEnd(line)
				line = header + eol
			}
			if _, err := io.WriteString(w, line); err != nil {
				return len(headers), fmt.Errorf("writing line: %w", err)
			}
		}
		if readErr == io.EOF {
			return len(headers), nil
		}
		if readErr != nil {
			return len(headers), fmt.Errorf("reading input: %w", readErr)
		}
	}
}

// TitlecaseFile runs the titlecase conversion from inPath to outPath.
func TitlecaseFile(inPath, outPath string, caser *titlecase.Caser) (int, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return 0, fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return 0, fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	return Titlecase(in, out, caser)
}

// CitekeyFile runs the citekey conversion from inPath to outPath and
// returns the run's missing-field tracker alongside the rewrite count.
func CitekeyFile(inPath, outPath string, opts citekey.Options) (int, *missing.Tracker, error) {
	src, err := os.ReadFile(inPath)
	if err != nil {
		return 0, nil, fmt.Errorf("reading input: %w", err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return 0, nil, fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	tracker := missing.New()
	rewritten, err := Citekey(src, out, tracker, opts)
	return rewritten, tracker, err
}

// Debug parses all entries from r and prints every recognized field of
// each entry plus the derived citekey components to w. Nothing is written
// to disk.
func Debug(r io.Reader, w io.Writer, opts citekey.Options) error {
	entries, err := bibtex.Parse(r)
	if err != nil {
		return fmt.Errorf("parsing entries: %w", err)
	}

	fmt.Fprintf(w, "TOTAL NUMBER OF ENTRIES: %d\n", len(entries))
	for i, entry := range entries {
		fmt.Fprintf(w, "<<<>>> ENTRY %d <<<>>>\n", i+1)
		fmt.Fprintf(w, "%-9s %s\n", "TYPE:", entry.Type)
		fmt.Fprintf(w, "%-9s %s\n", "KEY:", entry.Key)
		for _, name := range bibtex.FieldNames {
			if value, ok := entry.Field(name); ok {
				fmt.Fprintf(w, "%-9s %s\n", strings.ToUpper(name)+":", value)
			}
		}
		fmt.Fprintf(w, "%-9s %s\n", "LALN:", citekey.LastAuthorLastName(entry, nil, opts))
		fmt.Fprintf(w, "%-9s %s\n", "2D-YEAR:", citekey.TwoDigitYear(entry, nil))
		fmt.Fprintf(w, "%-9s %s\n", "1ST PG:", citekey.FirstPage(entry, nil))
		fmt.Fprintf(w, "%-9s %s\n", "CITEKEY:", citekey.Key(entry, nil, opts))
		fmt.Fprintln(w)
	}
	return nil
}

// splitLineEnd splits a raw line into its body and terminator, handling
// both LF and CRLF endings.
func splitLineEnd(line string) (body, eol string) {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2], "\r\n"
	}
	if strings.HasSuffix(line, "\n") {
		return line[:len(line)-1], "\n"
	}
	return line, ""
}
