package components

import (
	"statusboard/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// Layout helps organize the dashboard into sections
type Layout struct {
	Width  int
	Height int
}

// NewLayout creates a new layout manager
func NewLayout(width, height int) *Layout {
	return &Layout{
		Width:  width,
		Height: height,
	}
}

// SplitVertical splits the area into a left and right column by percentage.
func (l *Layout) SplitVertical(leftPercent float64) (leftWidth, rightWidth int) {
	if l.Width < design.MinPanelWidth*2 {
		l.Width = design.MinPanelWidth * 2
	}
	if leftPercent <= 0 || leftPercent >= 1 {
		leftPercent = 0.5
	}

	leftWidth = int(float64(l.Width) * leftPercent)
	rightWidth = l.Width - leftWidth

	if leftWidth < design.MinPanelWidth {
		leftWidth = design.MinPanelWidth
		rightWidth = l.Width - leftWidth
	}
	if rightWidth < design.MinPanelWidth {
		rightWidth = design.MinPanelWidth
		leftWidth = l.Width - rightWidth
	}
	return leftWidth, rightWidth
}

// CalculateContentArea returns the height left after the header and status bar.
func (l *Layout) CalculateContentArea(headerHeight, statusBarHeight int) int {
	contentHeight := l.Height - headerHeight - statusBarHeight
	if contentHeight < 0 {
		contentHeight = 0
	}
	return contentHeight
}

// JoinHorizontal joins components side by side, top aligned.
func JoinHorizontal(components ...string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, components...)
}

// JoinVertical joins components vertically
func JoinVertical(components ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, components...)
}
