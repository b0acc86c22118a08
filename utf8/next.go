// Package utf8 provides pull-based rune sources over UTF-8 text for the
// subsequence scanner.
//
// Invalid input never stops decoding: each byte that does not start a valid
// encoding yields utf8.RuneError (U+FFFD) and decoding resumes at the next
// byte, exactly like ranging over a string.
package utf8

import (
	"unicode"
	stdlib "unicode/utf8"
)

// Next returns the first rune of s and the rest of s after it.
// ok is false when s is empty.
func Next(s string) (r rune, rest string, ok bool) {
	if len(s) == 0 {
		return 0, s, false
	}
	if c := s[0]; c < stdlib.RuneSelf {
		return rune(c), s[1:], true
	}
	r, n := stdlib.DecodeRuneInString(s)
	return r, s[n:], true
}

// NextUpper is Next with the rune mapped to upper case. The mapping is
// the single-rune unicode.ToUpper; nothing expands to several runes.
func NextUpper(s string) (r rune, rest string, ok bool) {
	if len(s) == 0 {
		return 0, s, false
	}
	if c := s[0]; c < stdlib.RuneSelf {
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		return rune(c), s[1:], true
	}
	r, n := stdlib.DecodeRuneInString(s)
	return unicode.ToUpper(r), s[n:], true
}

// NextBytes is Next for a byte slice.
func NextBytes(s []byte) (r rune, rest []byte, ok bool) {
	if len(s) == 0 {
		return 0, s, false
	}
	if c := s[0]; c < stdlib.RuneSelf {
		return rune(c), s[1:], true
	}
	r, n := stdlib.DecodeRune(s)
	return r, s[n:], true
}

// NextBytesUpper is NextUpper for a byte slice.
func NextBytesUpper(s []byte) (r rune, rest []byte, ok bool) {
	if len(s) == 0 {
		return 0, s, false
	}
	if c := s[0]; c < stdlib.RuneSelf {
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		return rune(c), s[1:], true
	}
	r, n := stdlib.DecodeRune(s)
	return unicode.ToUpper(r), s[n:], true
}
