package apperr

import (
	"strings"
	"unicode/utf8"
)

// Snippet bounds s to max bytes for inclusion in an error message,
// collapsing internal whitespace so multi-line JSON stays on one line. The
// cut backs off to a rune boundary so the result is always valid UTF-8.
func Snippet(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "... (truncated)"
}
