// Package ascii provides ASCII-only helpers used by the fuzzy matcher's
// fast paths. Bytes >= 0x80 are never folded.
package ascii

import "math/bits"

// toUpper converts ASCII lowercase to uppercase.
func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 0x20
	}
	return b
}

// UpperString returns s with ASCII lowercase letters converted to uppercase.
// s is returned as is when it has nothing to convert.
func UpperString(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'a' && s[i] <= 'z' {
			goto convert
		}
	}
	return s

convert:
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		b[i] = toUpper(s[i])
	}
	return string(b)
}

func load64[T string | []byte](s T) uint64 {
	_ = s[7]
	return uint64(s[0]) | uint64(s[1])<<8 | uint64(s[2])<<16 | uint64(s[3])<<24 |
		uint64(s[4])<<32 | uint64(s[5])<<40 | uint64(s[6])<<48 | uint64(s[7])<<56
}

func indexMaskGo[T string | []byte](s T, mask byte) int {
	mask64 := uint64(mask) * (^uint64(0) / 255)

	pos := 0
	for ; len(s) >= 8; pos, s = pos+8, s[8:] {
		if m := load64(s) & mask64; m != 0 {
			return pos + bits.TrailingZeros64(m)/8
		}
	}

	for i := 0; i < len(s); i++ {
		if s[i]&mask != 0 {
			return pos + i
		}
	}
	return -1
}

func isAsciiGo[T string | []byte](s T) bool {
	return indexMaskGo(s, 0x80) == -1
}

// based on https://graphics.stanford.edu/~seander/bithacks.html#HasBetweenInWord
func hasLowercaseAsciiByte(x uint64) uint64 {
	const mult = ^uint64(0) / 255
	const m, n = 'a' - 1, 'z' + 1

	A := mult * (127 + n)
	B := x & (mult * 127)
	C := ^x
	D := mult * (127 - m)
	return (A - B) & C & (B + D) & (mult * 128)
}

// asciiFoldWord upper-cases every ASCII lowercase byte of x.
func asciiFoldWord(x uint64) uint64 {
	mask := hasLowercaseAsciiByte(x)
	mask >>= 2
	return x - mask
}

func equalFoldGo[T string | []byte](a, b T) bool {
	if len(a) != len(b) {
		return false
	}

	for len(a) >= 8 {
		a64, b64 := load64(a), load64(b)
		if a64 != b64 && asciiFoldWord(a64) != asciiFoldWord(b64) {
			return false
		}
		a, b = a[8:], b[8:]
	}

	for i := 0; i < len(a); i++ {
		if a[i] != b[i] && toUpper(a[i]) != toUpper(b[i]) {
			return false
		}
	}
	return true
}
