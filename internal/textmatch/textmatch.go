// Package textmatch compares user input against expected option labels.
package textmatch

import (
	"strings"
	"unicode"
)

// Equal reports whether a and b are the same string once case and
// punctuation are ignored. Every rune that is neither alphanumeric nor
// whitespace is stripped before the case-folded comparison, so "Yes!"
// matches "yes" and "No." matches "NO". No other normalization is applied.
func Equal(a, b string) bool {
	return normalize(a) == normalize(b)
}

// EqualAny reports whether text matches any of the candidate labels.
func EqualAny(text string, candidates []string) bool {
	for _, candidate := range candidates {
		if Equal(text, candidate) {
			return true
		}
	}

	return false
}

func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return b.String()
}
