// Package subseq implements the linear subsequence scan shared by every
// matching mode.
//
// The scan is greedy and leftmost: each haystack element is inspected once
// and the pattern cursor never moves backwards. Greedy leftmost matching is
// sufficient for subsequence existence, so no alignment search is needed.
//
// This package must not depend on text decoding or on anything that
// allocates.
package subseq

// Scan reports whether the elements produced by pattern form a subsequence
// of the elements produced by haystack.
//
// next pulls the first element off its input and returns it together with
// the input remaining after it, or ok == false once the input is exhausted.
// Both sides are decoded lazily through next; the pattern is only advanced
// after its current element matched. next should be a top-level function so
// that passing it does not allocate.
//
// An empty pattern matches without reading the haystack.
func Scan[S any, E comparable](haystack, pattern S, next func(S) (e E, rest S, ok bool)) bool {
	want, pattern, ok := next(pattern)
	if !ok {
		return true
	}

	var e E
	for {
		e, haystack, ok = next(haystack)
		if !ok {
			return false
		}
		if e != want {
			continue
		}
		want, pattern, ok = next(pattern)
		if !ok {
			return true
		}
	}
}

// Slice reports whether pattern is a subsequence of haystack. It is Scan
// specialized to indexable sequences: the cursor is an index into pattern.
func Slice[S ~[]E, E comparable](haystack, pattern S) bool {
	if len(pattern) == 0 {
		return true
	}
	if len(haystack) < len(pattern) {
		return false
	}

	cursor := 0
	want := pattern[0]
	for _, e := range haystack {
		if e != want {
			continue
		}
		cursor++
		if cursor == len(pattern) {
			return true
		}
		want = pattern[cursor]
	}
	return false
}

// Bytes is Slice for byte sequences held in either a string or a []byte.
func Bytes[T string | []byte](haystack, pattern T) bool {
	if len(pattern) == 0 {
		return true
	}
	if len(haystack) < len(pattern) {
		return false
	}

	cursor := 0
	want := pattern[0]
	for i := 0; i < len(haystack); i++ {
		if haystack[i] != want {
			continue
		}
		cursor++
		if cursor == len(pattern) {
			return true
		}
		want = pattern[cursor]
	}
	return false
}
