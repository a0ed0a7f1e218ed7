// Package eawidth classifies label text by East Asian Width (UAX #11).
package eawidth

import (
	"unicode/utf8"

	"golang.org/x/text/width"
)

// IsNarrow reports whether r has the East Asian Width property Na.
func IsNarrow(r rune) bool {
	return width.LookupRune(r).Kind() == width.EastAsianNarrow
}

// FullWidth reports whether s is non-empty and contains no narrow runes.
// Ambiguous, neutral and halfwidth runes do not make a line narrow.
func FullWidth(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if IsNarrow(r) {
			return false
		}
	}
	return true
}

// RuneCount returns the number of runes in s.
func RuneCount(s string) int {
	return utf8.RuneCountInString(s)
}
