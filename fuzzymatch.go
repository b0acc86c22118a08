// Package fuzzymatch reports whether a pattern occurs in a haystack as a
// subsequence: every element of the pattern appears in the haystack in the
// same order, not necessarily next to each other.
//
// It is the filter step of fuzzy finders and completion engines. It does no
// scoring, ranking or position reporting; callers rank what passes.
//
// Text entry points decode UTF-8 or UTF-16 into runes and compare runes.
// Case-insensitive matching maps both sides through unicode.ToUpper, one rune
// at a time, so "ß" does not match "SS". Invalid encodings decode to U+FFFD
// and never fail a match.
//
// Basic usage:
//
//	fuzzymatch.Contains("path/to/game.txt", "ptg") // true
//	fuzzymatch.ContainsCS("foo", "Fo")             // false
//
//	ids := []int{1, 2, 3, 4, 5}
//	fuzzymatch.MatchRaw(ids, []int{1, 3, 5}) // true
//
// For filtering many candidates against one pattern, build a Matcher once:
//
//	m := fuzzymatch.NewMatcher("ptg", false)
//	hits := m.Filter(nil, candidates)
//
// Every function runs in time linear in the haystack, reads each haystack
// element at most once, and does not allocate. All of them are safe for
// concurrent use.
package fuzzymatch

import (
	"unicode"

	"github.com/WebFreak001/FuzzyMatch/internal/subseq"
	"github.com/WebFreak001/FuzzyMatch/utf16"
	"github.com/WebFreak001/FuzzyMatch/utf8"
)

// MatchString reports whether pattern is a subsequence of haystack after
// decoding both as UTF-8. Unless caseSensitive is set, runes are compared
// in upper case.
func MatchString(haystack, pattern string, caseSensitive bool) bool {
	if caseSensitive {
		return subseq.Scan(haystack, pattern, utf8.Next)
	}
	return subseq.Scan(haystack, pattern, utf8.NextUpper)
}

// Match is MatchString for UTF-8 held in byte slices.
func Match(haystack, pattern []byte, caseSensitive bool) bool {
	if caseSensitive {
		return subseq.Scan(haystack, pattern, utf8.NextBytes)
	}
	return subseq.Scan(haystack, pattern, utf8.NextBytesUpper)
}

// MatchUTF16 is MatchString for UTF-16 code units. An unpaired surrogate
// decodes to U+FFFD.
func MatchUTF16(haystack, pattern []uint16, caseSensitive bool) bool {
	if caseSensitive {
		return subseq.Scan(haystack, pattern, utf16.Next)
	}
	return subseq.Scan(haystack, pattern, utf16.NextUpper)
}

// MatchRunes is MatchString for already decoded runes. The case-sensitive
// form has nothing to decode and is MatchRaw.
func MatchRunes(haystack, pattern []rune, caseSensitive bool) bool {
	if caseSensitive {
		return subseq.Slice(haystack, pattern)
	}
	return subseq.Scan(haystack, pattern, nextRuneUpper)
}

func nextRuneUpper(s []rune) (rune, []rune, bool) {
	if len(s) == 0 {
		return 0, s, false
	}
	return unicode.ToUpper(s[0]), s[1:], true
}

// MatchRaw reports whether pattern is a subsequence of haystack, comparing
// elements with ==. Nothing is decoded or case folded, whatever E is.
func MatchRaw[S ~[]E, E comparable](haystack, pattern S) bool {
	return subseq.Slice(haystack, pattern)
}

// Contains reports whether pattern fuzzy-matches haystack, ignoring case.
func Contains(haystack, pattern string) bool {
	return MatchString(haystack, pattern, false)
}

// ContainsCS is the case-sensitive form of Contains.
func ContainsCS(haystack, pattern string) bool {
	return MatchString(haystack, pattern, true)
}

// ContainsBytes is Contains for byte slices.
func ContainsBytes(haystack, pattern []byte) bool {
	return Match(haystack, pattern, false)
}

// ContainsBytesCS is ContainsCS for byte slices.
func ContainsBytesCS(haystack, pattern []byte) bool {
	return Match(haystack, pattern, true)
}

// ContainsUTF16 is Contains for UTF-16 code units.
func ContainsUTF16(haystack, pattern []uint16) bool {
	return MatchUTF16(haystack, pattern, false)
}

// ContainsUTF16CS is ContainsCS for UTF-16 code units.
func ContainsUTF16CS(haystack, pattern []uint16) bool {
	return MatchUTF16(haystack, pattern, true)
}

// ContainsRunes is Contains for runes.
func ContainsRunes(haystack, pattern []rune) bool {
	return MatchRunes(haystack, pattern, false)
}

// ContainsRunesCS is ContainsCS for runes.
func ContainsRunesCS(haystack, pattern []rune) bool {
	return MatchRunes(haystack, pattern, true)
}
