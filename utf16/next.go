// Package utf16 provides pull-based rune sources over UTF-16 code units for
// the subsequence scanner.
package utf16

import (
	"unicode"
	stdlib "unicode/utf16"
)

// decode returns the first rune of s and the number of code units it
// occupies. An unpaired surrogate decodes to U+FFFD and occupies one unit,
// the same substitution utf16.Decode makes.
func decode(s []uint16) (rune, int) {
	c := rune(s[0])
	if !stdlib.IsSurrogate(c) {
		return c, 1
	}
	// high surrogates come first in a pair
	if c < 0xdc00 && len(s) > 1 {
		if r := stdlib.DecodeRune(c, rune(s[1])); r != unicode.ReplacementChar {
			return r, 2
		}
	}
	return unicode.ReplacementChar, 1
}

// Next returns the first rune of s and the rest of s after it.
// ok is false when s is empty.
func Next(s []uint16) (r rune, rest []uint16, ok bool) {
	if len(s) == 0 {
		return 0, s, false
	}
	r, n := decode(s)
	return r, s[n:], true
}

// NextUpper is Next with the rune mapped through unicode.ToUpper.
func NextUpper(s []uint16) (r rune, rest []uint16, ok bool) {
	if len(s) == 0 {
		return 0, s, false
	}
	r, n := decode(s)
	return unicode.ToUpper(r), s[n:], true
}
