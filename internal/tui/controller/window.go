package controller

import (
	"statusboard/internal/tui/model"
	"statusboard/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// handleWindowSizeMsg records the terminal size and resizes the widgets that keep their own width.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width

	w, h := view.LogOverlaySize(msg.Width, msg.Height)
	m.LogViewport.Width = w
	m.LogViewport.Height = h

	inputWidth := msg.Width/2 - 4
	if inputWidth < 20 {
		inputWidth = 20
	}
	m.CommentInput.Width = inputWidth

	var cmds []tea.Cmd
	if m.AuthForm != nil {
		form, cmd := m.AuthForm.Update(msg)
		m.AuthForm = asForm(form, m.AuthForm)
		cmds = append(cmds, cmd)
	}
	if m.ActiveForm != nil {
		form, cmd := m.ActiveForm.Update(msg)
		m.ActiveForm = asForm(form, m.ActiveForm)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}
