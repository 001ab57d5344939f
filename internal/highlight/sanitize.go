package highlight

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

const tabWidth = 4

// Terminal makes untrusted text safe to print: escape sequences are
// stripped, tabs expanded, and remaining control characters dropped.
func Terminal(s string) string {
	s = ansi.Strip(s)
	if !strings.ContainsFunc(s, unicode.IsControl) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\t':
			b.WriteString(strings.Repeat(" ", tabWidth))
		case r == '\n':
			b.WriteRune(r)
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TerminalLine is Terminal for text that must stay on one row.
func TerminalLine(s string) string {
	return strings.ReplaceAll(Terminal(s), "\n", " ")
}
