// Package citekey derives citation keys from parsed BibTeX entries.
package citekey

import (
	"regexp"
	"strings"

	"github.com/jwmay/conbib/internal/bibtex"
	"github.com/jwmay/conbib/internal/missing"
)

// Placeholder is substituted whenever a required field cannot be resolved.
const Placeholder = "MISSING"

// Tracker labels for missing-field reporting.
const (
	LabelLastName   = "Last Name"
	LabelYear       = "Year"
	LabelPageNumber = "Page Number"
)

// Options control name resolution.
type Options struct {
	// StripHyphens removes hyphens from resolved last names.
	StripHyphens bool
	// KeepAccents disables LaTeX accent-escape stripping.
	KeepAccents bool
}

// accentEscapes matches the known LaTeX accent commands, e.g. the \v in
// \v{Z}utic. The escape letters are a fixed class; anything else after a
// backslash is left alone.
var accentEscapes = regexp.MustCompile(`\\['^vH~ckl=b.drut]`)

// LastAuthorLastName returns the last name of the final listed author of
// the entry, preferring the author field and falling back to editor.
//
// Two name orders are handled: "Joseph W. May and X. Li" and
// "May, Joseph W. and Li, X.". In the comma form the span before the first
// comma is the name; either way the final whitespace token is taken, so
// name particles are dropped ("van Kuiken" resolves to "Kuiken").
//
// When both author and editor are absent the placeholder is returned and
// the tracker is updated. Resolution never fails fatally.
func LastAuthorLastName(entry *bibtex.Entry, tracker *missing.Tracker, opts Options) string {
	names, ok := entry.Field("author")
	if !ok || names == "" {
		names, ok = entry.Field("editor")
	}
	if !ok || names == "" {
		tracker.Record(LabelLastName)
		return Placeholder
	}

	// Only fragments on this physical line are considered; multi-line
	// author lists beyond the first line are a documented non-goal.
	// Empty fragments from a trailing separator are dropped.
	var authors []string
	for _, fragment := range strings.Split(names, " and ") {
		if strings.TrimSpace(fragment) != "" {
			authors = append(authors, fragment)
		}
	}
	if len(authors) == 0 {
		tracker.Record(LabelLastName)
		return Placeholder
	}

	last := authors[len(authors)-1]
	if comma := strings.Index(last, ","); comma >= 0 {
		last = last[:comma]
	}

	tokens := strings.Fields(last)
	if len(tokens) == 0 {
		tracker.Record(LabelLastName)
		return Placeholder
	}
	name := tokens[len(tokens)-1]

	if !opts.KeepAccents {
		name = StripAccents(name)
	}
	if opts.StripHyphens {
		name = strings.ReplaceAll(name, "-", "")
	}
	return name
}

// StripAccents removes the known LaTeX accent-escape sequences and literal
// braces, leaving the bare letters: \v{Z}utic becomes Zutic.
func StripAccents(name string) string {
	name = accentEscapes.ReplaceAllString(name, "")
	name = strings.ReplaceAll(name, "{", "")
	name = strings.ReplaceAll(name, "}", "")
	return name
}
