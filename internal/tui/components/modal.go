package components

import (
	"statusboard/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// ModalKind selects the modal border color.
type ModalKind int

const (
	ModalAlert ModalKind = iota
	ModalConfirm
)

// Modal is a centered dialog with a title, a body and a key hint.
type Modal struct {
	Kind  ModalKind
	Title string
	Body  string
	Hint  string
	Width int
}

// NewModal creates a modal of the given kind.
func NewModal(kind ModalKind, title, body string) *Modal {
	return &Modal{Kind: kind, Title: title, Body: body, Width: 50}
}

// WithHint sets the key hint line.
func (m *Modal) WithHint(hint string) *Modal {
	m.Hint = hint
	return m
}

// WithWidth sets the outer width of the modal.
func (m *Modal) WithWidth(width int) *Modal {
	if width > 0 {
		m.Width = width
	}
	return m
}

// Render returns the styled dialog box.
func (m *Modal) Render() string {
	style := design.AlertOverlayStyle
	titleStyle := design.TextErrorStyle.Bold(true)
	if m.Kind == ModalConfirm {
		style = design.ConfirmOverlayStyle
		titleStyle = design.TextWarningStyle.Bold(true)
	}

	inner := m.Width - style.GetHorizontalFrameSize()
	if inner < 10 {
		inner = 10
	}
	body := lipgloss.NewStyle().Width(inner).Render(m.Body)

	parts := []string{titleStyle.Render(m.Title), "", body}
	if m.Hint != "" {
		parts = append(parts, "", design.HintStyle.Render(m.Hint))
	}
	return style.Width(inner + style.GetHorizontalPadding()).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// StatusDot renders the colored status marker of an environment row.
func StatusDot(status string) string {
	return design.StatusDotStyle(status).Render("●")
}

// StatusPill renders the status pill of the environment header.
func StatusPill(status string) string {
	return design.StatusPillStyle(status).Render(status)
}

// MutedPill renders a grey pill, used when nothing is selected.
func MutedPill(text string) string {
	return design.MutedPillStyle.Render(text)
}
