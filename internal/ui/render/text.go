// Package render cleans up tag text before it reaches the terminal.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

// Sanitize removes control characters (except tab) and invalid UTF-8 bytes,
// and replaces non-breaking spaces with plain ones. Daemon tags are free-form
// and a stray escape would corrupt the layout.
func Sanitize(s string) string {
	if isClean(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		switch {
		case r == utf8.RuneError && size <= 1:
		case r == '\u00a0':
			b.WriteByte(' ')
		case r != '\t' && unicode.IsControl(r):
		default:
			b.WriteString(s[:size])
		}
		s = s[size:]
	}
	return b.String()
}

func isClean(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool {
		return r == '\u00a0' || (r != '\t' && unicode.IsControl(r))
	}) < 0
}

// Line sanitizes s and cuts it to width cells, marking the cut with "…".
func Line(s string, width int) string {
	return ansi.Truncate(Sanitize(s), width, "…")
}
