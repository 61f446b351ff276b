package utils

import "strings"

type intner interface {
	IntN(n int) int
}

// RandomString draws n runes uniformly from alphabet.
func RandomString(r intner, n int, alphabet []rune) string {
	if n <= 0 || len(alphabet) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(n)
	for range n {
		sb.WriteRune(alphabet[r.IntN(len(alphabet))])
	}

	return sb.String()
}

// IntBetween returns a uniform draw in [lo, hi), or lo for an empty interval.
func IntBetween(r intner, lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + r.IntN(hi-lo)
}
