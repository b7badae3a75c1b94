package view

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// SanitizeText makes user content safe to print as literal text.
// Escape sequences are removed and other control characters dropped;
// newlines survive only when keepNewlines is set.
func SanitizeText(s string, keepNewlines bool) string {
	stripped := ansi.Strip(s)
	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		switch {
		case r == '\n':
			if keepNewlines {
				b.WriteRune('\n')
			} else {
				b.WriteRune(' ')
			}
		case r == '\t':
			b.WriteRune(' ')
		case r == '\r':
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
