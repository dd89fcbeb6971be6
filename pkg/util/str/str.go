package str

import (
	"strings"
	"unicode"
)

// RemoveSpace drops every unicode whitespace rune from s.
func RemoveSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
