// Package textutil provides the case- and diacritic-insensitive comparison
// and list-parsing helpers shared by the wizard and the access gate.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripDiacritics decomposes and drops combining marks, so "sí" compares
// equal to "si".
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// CollapseSpaces trims the string and collapses every run of whitespace to a
// single space.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Normalize lowercases, strips diacritics and collapses whitespace. Two
// strings are considered equivalent when their Normalize results are equal.
func Normalize(s string) string {
	return strings.ToLower(stripDiacritics(CollapseSpaces(s)))
}

// ParseList splits free text on commas, semicolons, pipes, newlines and runs
// of whitespace. Empty tokens are dropped, order is preserved and duplicates
// are kept.
func ParseList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '|' || unicode.IsSpace(r)
	})
}

var (
	yesTokens = []string{"si", "s", "yes", "y", "ok"}
	noTokens  = []string{"no", "n", "cancel", "cancelar"}
)

// ParseYesNo interprets a locale-aware yes/no answer. ok is false when the
// input matches neither token set.
func ParseYesNo(s string) (value bool, ok bool) {
	t := Normalize(s)
	for _, tok := range yesTokens {
		if t == tok {
			return true, true
		}
	}
	for _, tok := range noTokens {
		if t == tok {
			return false, true
		}
	}
	return false, false
}
