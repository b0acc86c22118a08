package fuzzymatch

import (
	stdlib "unicode/utf8"

	"github.com/WebFreak001/FuzzyMatch/ascii"
	"github.com/WebFreak001/FuzzyMatch/internal/subseq"
	"github.com/WebFreak001/FuzzyMatch/utf8"
)

// Matcher tests many haystacks against one pattern.
// Construct once with NewMatcher, then call MatchString on every candidate.
// Results are identical to MatchString and Match with the same pattern.
//
// A Matcher is immutable and safe for concurrent use.
type Matcher struct {
	raw           string // original pattern
	rawBytes      []byte // raw as bytes, for Match
	upper         string // ASCII upper-cased raw, set for case-insensitive ASCII patterns
	runes         int    // runes in raw, counting each invalid byte as one
	ascii         bool   // raw has no byte >= 0x80
	caseSensitive bool
}

// NewMatcher creates a Matcher for pattern.
// If caseSensitive is false, runes are compared in upper case.
func NewMatcher(pattern string, caseSensitive bool) Matcher {
	m := Matcher{
		raw:           pattern,
		rawBytes:      []byte(pattern),
		runes:         stdlib.RuneCountInString(pattern),
		ascii:         ascii.ValidString(pattern),
		caseSensitive: caseSensitive,
	}
	if m.ascii && !caseSensitive {
		m.upper = ascii.UpperString(pattern)
	}
	return m
}

// Pattern returns the pattern the Matcher was built with.
func (m Matcher) Pattern() string {
	return m.raw
}

// CaseSensitive reports whether the Matcher compares runes exactly.
func (m Matcher) CaseSensitive() bool {
	return m.caseSensitive
}

// MatchString reports whether the pattern is a subsequence of haystack.
func (m Matcher) MatchString(haystack string) bool {
	if len(m.raw) == 0 {
		return true
	}
	// every rune takes at least one byte
	if len(haystack) < m.runes {
		return false
	}

	switch {
	case m.ascii && m.caseSensitive:
		// ASCII bytes never belong to a multi-byte sequence, valid or not
		return subseq.Bytes(haystack, m.raw)
	case m.ascii && ascii.ValidString(haystack):
		// non-ASCII runes such as U+0131 upper-case to ASCII, so this
		// shortcut needs an ASCII haystack
		if len(haystack) == len(m.upper) {
			return ascii.EqualFold(haystack, m.upper)
		}
		return ascii.SubseqFold(haystack, m.upper)
	case m.caseSensitive:
		return subseq.Scan(haystack, m.raw, utf8.Next)
	}
	return subseq.Scan(haystack, m.raw, utf8.NextUpper)
}

// Match is MatchString for a haystack held in a byte slice.
func (m Matcher) Match(haystack []byte) bool {
	if len(m.raw) == 0 {
		return true
	}
	if len(haystack) < m.runes {
		return false
	}

	switch {
	case m.ascii && m.caseSensitive:
		return subseq.Bytes(haystack, m.rawBytes)
	case m.ascii && ascii.Valid(haystack):
		return ascii.SubseqFold(haystack, m.upper)
	case m.caseSensitive:
		return subseq.Scan(haystack, m.rawBytes, utf8.NextBytes)
	}
	return subseq.Scan(haystack, m.rawBytes, utf8.NextBytesUpper)
}

// Filter appends every candidate the pattern matches to dst, in input
// order, and returns the extended slice.
func (m Matcher) Filter(dst, candidates []string) []string {
	for _, c := range candidates {
		if m.MatchString(c) {
			dst = append(dst, c)
		}
	}
	return dst
}
