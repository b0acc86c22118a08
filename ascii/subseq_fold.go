package ascii

// SubseqFold reports whether upper is an ASCII case-insensitive subsequence
// of s. upper must already be upper-cased (see UpperString); a lowercase
// letter in upper never matches.
func SubseqFold[T string | []byte](s T, upper string) bool {
	if len(upper) == 0 {
		return true
	}
	if len(s) < len(upper) {
		return false
	}

	cursor := 0
	want := upper[0]
	for i := 0; i < len(s); i++ {
		if toUpper(s[i]) != want {
			continue
		}
		cursor++
		if cursor == len(upper) {
			return true
		}
		want = upper[cursor]
	}
	return false
}
