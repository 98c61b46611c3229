// Package titlecase converts strings to bibliographic title case.
package titlecase

import (
	"strings"
	"unicode"
)

// defaultSmallWords are the articles, short conjunctions, and short
// prepositions left lowercase unless they start or end a title, or follow
// a colon.
var defaultSmallWords = []string{
	"a", "an", "and", "as", "at", "but", "by", "en", "for", "if", "in",
	"of", "on", "or", "the", "to", "v", "v.", "via", "vs", "vs.",
}

// Caser converts text to title case with a configurable small-word list.
type Caser struct {
	small map[string]bool
}

// New returns a Caser using the default small-word list plus any extras.
func New(extraSmallWords ...string) *Caser {
	small := make(map[string]bool, len(defaultSmallWords)+len(extraSmallWords))
	for _, w := range defaultSmallWords {
		small[w] = true
	}
	for _, w := range extraSmallWords {
		small[strings.ToLower(w)] = true
	}
	return &Caser{small: small}
}

var defaultCaser = New()

// Convert applies the default title-case rules to s. The conversion is
// idempotent: converting an already converted string is a no-op.
func Convert(s string) string {
	return defaultCaser.Convert(s)
}

// Convert converts s to title case:
//   - the first and last word are always capitalized
//   - small words are lowercased elsewhere
//   - a colon ends a capitalization unit, so the next word is capitalized
//   - words with capitals after their first letter are kept verbatim
//     (acronyms, "McDonald")
//   - each sub-word of a hyphenated compound is capitalized
func (c *Caser) Convert(s string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}

	unitStart := true
	for i, word := range words {
		force := unitStart || i == len(words)-1
		words[i] = c.convertWord(word, force)
		unitStart = strings.HasSuffix(word, ":")
	}
	return strings.Join(words, " ")
}

// convertWord converts a single word, capitalizing unconditionally when
// force is set.
func (c *Caser) convertWord(word string, force bool) string {
	if hasInternalCapital(word) {
		return word
	}

	lower := strings.ToLower(word)
	if !force && c.small[strings.TrimRight(lower, ",.;:!?")] {
		return lower
	}

	if strings.Contains(lower, "-") {
		parts := strings.Split(lower, "-")
		for i, part := range parts {
			parts[i] = capitalizeFirst(part)
		}
		return strings.Join(parts, "-")
	}
	return capitalizeFirst(lower)
}

// hasInternalCapital reports whether word contains an uppercase letter
// after its first rune. Such capitalization is assumed intentional.
func hasInternalCapital(word string) bool {
	for i, r := range word {
		if i > 0 && unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// capitalizeFirst uppercases the first letter of word, skipping any
// leading punctuation such as quotes or parentheses.
func capitalizeFirst(word string) string {
	runes := []rune(word)
	for i, r := range runes {
		if unicode.IsLetter(r) {
			runes[i] = unicode.ToUpper(r)
			break
		}
	}
	return string(runes)
}
