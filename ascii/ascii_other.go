//go:build !amd64 || noasm

package ascii

// ValidString reports whether s contains only ASCII bytes.
func ValidString(s string) bool {
	return isAsciiGo(s)
}

// Valid reports whether b contains only ASCII bytes.
func Valid(b []byte) bool {
	return isAsciiGo(b)
}

// EqualFold reports whether a and b are equal under ASCII case folding.
func EqualFold(a, b string) bool {
	return equalFoldGo(a, b)
}
