package view

import (
	"strings"

	"statusboard/internal/tui/design"
	"statusboard/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

func renderHelpOverlay(m *model.Model) string {
	title := design.HelpTitleStyle.Render("KEYBOARD SHORTCUTS")

	h := m.Help
	h.ShowAll = true
	body := h.FullHelpView(m.Keys.FullHelp())

	var notes []string
	if !m.Session.IsAdmin() {
		notes = append(notes, design.DimStyle.Render("Environment changes and deletions require the ADMIN role."))
	}
	notes = append(notes, design.HintStyle.Render("esc or ? to close"))

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", strings.Join(notes, "\n"))
	box := design.CenteredOverlayContainerStyle.Render(content)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
}

func renderLogOverlay(m *model.Model) string {
	style := design.LogOverlayStyle
	title := design.LogPanelTitleStyle.Render("Activity Log  (↑/↓ scroll • esc close)")
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View())
	return style.
		Width(m.Width - style.GetHorizontalFrameSize()).
		Height(m.Height - style.GetVerticalFrameSize()).
		Render(content)
}

// LogOverlaySize returns the viewport dimensions that fit inside the log overlay.
func LogOverlaySize(width, height int) (int, int) {
	w := width - design.LogOverlayStyle.GetHorizontalFrameSize()
	h := height - design.LogOverlayStyle.GetVerticalFrameSize() - 1
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// PrepareLogContent colours activity log lines by level.
func PrepareLogContent(lines []string) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = styleLogLine(l)
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}
