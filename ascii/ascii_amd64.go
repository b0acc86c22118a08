//go:build !noasm

package ascii

import (
	segascii "github.com/segmentio/asm/ascii"
	"golang.org/x/sys/cpu"
)

var hasAVX2 = cpu.X86.HasAVX2

// ValidString reports whether s contains only ASCII bytes.
func ValidString(s string) bool {
	if len(s) < 16 || !hasAVX2 {
		return isAsciiGo(s)
	}
	return segascii.ValidString(s)
}

// Valid reports whether b contains only ASCII bytes.
func Valid(b []byte) bool {
	if len(b) < 16 || !hasAVX2 {
		return isAsciiGo(b)
	}
	return segascii.Valid(b)
}

// EqualFold reports whether a and b are equal under ASCII case folding.
func EqualFold(a, b string) bool {
	if len(a) < 32 || !hasAVX2 {
		return equalFoldGo(a, b)
	}
	return segascii.EqualFoldString(a, b)
}
