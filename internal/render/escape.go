package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// EscapeText makes untrusted text safe to print to a terminal. Escape
// sequences are removed and remaining control characters are dropped, except
// newlines. Tabs become spaces.
func EscapeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = ansi.Strip(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n':
			b.WriteRune(r)
		case r == '\t':
			b.WriteString("    ")
		case unicode.IsControl(r), r == '\u2028', r == '\u2029':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EscapeLines escapes s and splits it into display lines.
func EscapeLines(s string) []string {
	return strings.Split(EscapeText(s), "\n")
}

// EscapeTitle escapes s and folds it onto a single line.
func EscapeTitle(s string) string {
	return strings.Join(strings.Fields(EscapeText(s)), " ")
}
