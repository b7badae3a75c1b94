package view

import (
	"fmt"

	"statusboard/internal/tui/components"
	"statusboard/internal/tui/design"
	"statusboard/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

const (
	appTitle = "Status Board"

	// Below this width the environment list and posts stack vertically.
	minWidthForColumns = 70
)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	if m.Width == 0 || m.Height == 0 {
		return design.TextSecondaryStyle.Render("Initializing...")
	}

	var screen string
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return design.TextSecondaryStyle.Render(m.QuittingMessage)
	case model.ModeLogin:
		screen = renderLogin(m)
	case model.ModeDashboard:
		screen = renderDashboard(m)
	case model.ModeHelpOverlay:
		screen = renderHelpOverlay(m)
	case model.ModeLogOverlay:
		screen = renderLogOverlay(m)
	default:
		return design.TextSecondaryStyle.Render(fmt.Sprintf("Unhandled application mode: %s", m.CurrentAppMode.String()))
	}

	// Modals sit above every screen and block input until answered.
	if modal := renderModal(m); modal != "" {
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, modal,
			lipgloss.WithWhitespaceChars(" "))
	}
	return screen
}

func renderModal(m *model.Model) string {
	width := m.Width * 2 / 3
	if width > 70 {
		width = 70
	}
	switch {
	case m.Alert != nil:
		return components.NewModal(components.ModalAlert, SanitizeText(m.Alert.Title, false), SanitizeText(m.Alert.Message, true)).
			WithHint("enter/esc dismiss").
			WithWidth(width).
			Render()
	case m.Confirm != nil:
		return components.NewModal(components.ModalConfirm, "Please confirm", SanitizeText(m.Confirm.Prompt, true)).
			WithHint("y confirm • n/esc cancel").
			WithWidth(width).
			Render()
	}
	return ""
}

func renderStatusBar(m *model.Model, width int) string {
	bar := components.NewStatusBar(width).
		WithRightText(m.Help.ShortHelpView(m.Keys.ShortHelp()))
	if m.Session.LoggedIn {
		bar.WithLeftText(fmt.Sprintf("%s panel", m.Focus.String()))
	}
	if m.StatusBarMessage != "" {
		bar.WithMessage(m.StatusBarMessage, m.StatusBarMessageType)
	}
	return bar.Render()
}
