package utf16

import (
	"fmt"
	"testing"
	"unicode"
	stdlib "unicode/utf16"

	"github.com/stretchr/testify/assert"
)

func collect(s []uint16, next func([]uint16) (rune, []uint16, bool)) []rune {
	out := []rune{}
	for {
		r, rest, ok := next(s)
		if !ok {
			return out
		}
		out = append(out, r)
		s = rest
	}
}

func encode(s string) []uint16 {
	return stdlib.Encode([]rune(s))
}

var decodeTests = [][]uint16{
	{},
	encode("abc"),
	encode("брэд-ЛГТМ"),
	encode("日本語"),
	encode("straße"),
	encode("\U0001F600 grin"),
	encode("𝔘𝔫𝔦𝔠𝔬𝔡𝔢"),
	{0xd800},                 // lone high surrogate
	{0xdc00},                 // lone low surrogate
	{0xd800, 'a'},            // high surrogate followed by a non-surrogate
	{0xdc00, 0xd800},         // reversed pair
	{0xd800, 0xd800, 0xdc00}, // extra high surrogate before a valid pair
	{'a', 0xdbff, 0xdfff, 'b'},
}

func TestNext(t *testing.T) {
	for _, tt := range decodeTests {
		t.Run(fmt.Sprintf("%x", tt), func(t *testing.T) {
			assert.Equal(t, stdlib.Decode(tt), collect(tt, Next))
		})
	}
}

func TestNextUpper(t *testing.T) {
	for _, tt := range decodeTests {
		t.Run(fmt.Sprintf("%x", tt), func(t *testing.T) {
			want := stdlib.Decode(tt)
			for i, r := range want {
				want[i] = unicode.ToUpper(r)
			}
			assert.Equal(t, want, collect(tt, NextUpper))
		})
	}
}

func TestNextReplacement(t *testing.T) {
	r, rest, ok := Next([]uint16{0xd800, 'a'})
	assert.True(t, ok)
	assert.Equal(t, unicode.ReplacementChar, r)
	assert.Equal(t, []uint16{'a'}, rest)

	r, rest, ok = Next([]uint16{0xd83d, 0xde00})
	assert.True(t, ok)
	assert.Equal(t, '\U0001F600', r)
	assert.Empty(t, rest)

	_, _, ok = Next(nil)
	assert.False(t, ok)
	_, _, ok = NextUpper(nil)
	assert.False(t, ok)
}

func TestNextNoAllocs(t *testing.T) {
	s := encode("päth/tö/gäme\U0001F600.txt")
	allocs := testing.AllocsPerRun(100, func() {
		for rest := s; ; {
			var ok bool
			if _, rest, ok = NextUpper(rest); !ok {
				break
			}
		}
	})
	assert.Zero(t, allocs)
}

func FuzzNext(f *testing.F) {
	f.Add([]byte{0x00, 0xd8, 0x00, 0xdc})
	f.Add([]byte{'a', 0, 0x00, 0xd8})
	f.Add([]byte{0x00, 0xdc, 'b', 0})

	f.Fuzz(func(t *testing.T, b []byte) {
		s := make([]uint16, len(b)/2)
		for i := range s {
			s[i] = uint16(b[2*i]) | uint16(b[2*i+1])<<8
		}
		want := stdlib.Decode(s)
		if got := collect(s, Next); !assert.Equal(t, want, got) {
			t.Fatalf("Next(%x)", s)
		}
	})
}
