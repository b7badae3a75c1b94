package utils

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// TruncateString cuts plain text to at most width terminal cells.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "")
}

// TruncateWithEllipsis cuts plain text to width cells, ending in "..." when shortened.
func TruncateWithEllipsis(s string, width int) string {
	if width <= 3 {
		return TruncateString(s, width)
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}

// TruncateStyled cuts a styled line without breaking its escape sequences.
func TruncateStyled(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return ansi.Truncate(s, width, "")
	}
	return ansi.Truncate(s, width, "...")
}

// PadRight pads plain text with spaces up to width cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
