package components

import (
	"strings"

	"statusboard/internal/tui/design"
	"statusboard/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// Header represents the application header
type Header struct {
	Title        string
	Subtitle     string
	SpinnerView  string
	Width        int
	RightContent string
}

// NewHeader creates a new header
func NewHeader(title string) *Header {
	return &Header{
		Title: title,
		Width: 80,
	}
}

// WithSubtitle adds a subtitle
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.Subtitle = subtitle
	return h
}

// WithSpinner shows a spinner before the title
func (h *Header) WithSpinner(spinnerView string) *Header {
	h.SpinnerView = spinnerView
	return h
}

// WithRightContent adds content to the right side
func (h *Header) WithRightContent(content string) *Header {
	h.RightContent = content
	return h
}

// WithWidth sets the header width
func (h *Header) WithWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header
func (h *Header) Render() string {
	var leftParts []string
	if h.SpinnerView != "" {
		leftParts = append(leftParts, h.SpinnerView)
	}
	leftParts = append(leftParts, h.Title)
	if h.Subtitle != "" {
		leftParts = append(leftParts, design.TextSecondaryStyle.Render(h.Subtitle))
	}
	left := strings.Join(leftParts, " ")

	available := h.Width - design.HeaderStyle.GetHorizontalPadding()
	content := left
	if h.RightContent != "" {
		gap := available - lipgloss.Width(left) - lipgloss.Width(h.RightContent)
		if gap >= 2 {
			content = left + strings.Repeat(" ", gap) + h.RightContent
		} else {
			// The right side carries the user badge; keep it and cut the title.
			content = utils.TruncateStyled(left, available-lipgloss.Width(h.RightContent)-1) + " " + h.RightContent
		}
	}

	return design.HeaderStyle.
		Width(h.Width).
		MaxWidth(h.Width).
		Render(utils.TruncateStyled(content, available))
}
