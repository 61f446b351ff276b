package match

import (
	"strings"
	"unicode"
)

// Normalize folds a possibly package-qualified type name for comparison:
// case is folded and separators (_, -, space) are dropped. The package
// qualifier is kept so that "store.Address" and "warehouse.Address" differ.
func Normalize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}
		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String()
}

// TypePart returns the part of a qualified name after the last dot.
func TypePart(s string) string {
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return s[i+1:]
	}

	return s
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
