package bibtex

import (
	"regexp"
	"strings"
)

// FieldNames lists the recognized field names in match priority order.
// Classification tests each name in this order and the first match wins,
// so the order is part of the parser's contract.
var FieldNames = []string{
	"author",
	"title",
	"booktitle",
	"journal",
	"volume",
	"number",
	"pages",
	"year",
	"editor",
	"publisher",
	"address",
	"edition",
	"month",
	"note",
	"series",
	"chapter",
	"school",
	"institution",
	"organization",
	"howpublished",
	"type",
	"key",
	"crossref",
	"annote",
	"doi",
	"url",
}

// Parts holds the three captured pieces of a matched field line.
type Parts struct {
	Prefix   string // text up to and including the opening brace
	Contents string // the field value
	Suffix   string // trailing brace and/or comma, possibly empty
}

// fieldPatterns maps each recognized field name to its compiled pattern.
//
// The grammar is deliberately loose: the opening brace, closing brace, and
// trailing comma are all optional, so both `year = {2013},` and `year = 2013`
// match. The stricter historical form that required a trailing comma is not
// used; see the parser tests for the cases this is meant to pin down.
var fieldPatterns = compileFieldPatterns()

func compileFieldPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(FieldNames))
	for _, name := range FieldNames {
		patterns[name] = regexp.MustCompile(`(?i)(^\s*` + name + `\s*=\s*\{?)(.+?)(\}?,?$)`)
	}
	return patterns
}

// MatchField tests whether line declares the named field and, if so,
// returns its prefix, contents, and suffix. The second return value is
// false when the line does not declare the field, distinguishing a missing
// field from one with empty surroundings.
func MatchField(name, line string) (Parts, bool) {
	pattern, ok := fieldPatterns[name]
	if !ok {
		return Parts{}, false
	}
	groups := pattern.FindStringSubmatch(line)
	if groups == nil {
		return Parts{}, false
	}
	return Parts{Prefix: groups[1], Contents: groups[2], Suffix: groups[3]}, true
}

// ClassifyField returns the first recognized field the line declares,
// along with its extracted parts.
func ClassifyField(line string) (string, Parts, bool) {
	for _, name := range FieldNames {
		if parts, ok := MatchField(name, line); ok {
			return name, parts, true
		}
	}
	return "", Parts{}, false
}

// entryStartPattern matches an entry header like `@article{May2013,` and
// captures the type and the original citation key.
var entryStartPattern = regexp.MustCompile(`^@(` + strings.Join(EntryTypes, "|") + `)\{([^,]*)`)

// MatchEntryStart tests whether line begins a new entry and returns the
// entry type and original citation key.
func MatchEntryStart(line string) (entryType, key string, ok bool) {
	groups := entryStartPattern.FindStringSubmatch(line)
	if groups == nil {
		return "", "", false
	}
	return groups[1], strings.TrimSpace(groups[2]), true
}

// entryEndPattern matches the end of an entry: a blank line or a line
// containing only whitespace and a closing brace.
var entryEndPattern = regexp.MustCompile(`^\s*\}?\s*$`)

// IsEntryEnd reports whether line terminates an entry.
func IsEntryEnd(line string) bool {
	return entryEndPattern.MatchString(line)
}
