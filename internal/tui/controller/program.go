package controller

import (
	"statusboard/internal/api"
	"statusboard/internal/tui/model"
	"statusboard/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program, starting at the login screen.
func NewProgram(client api.BoardAPI, opts model.Options, logChannel <-chan logging.LogEntry) *tea.Program {
	m := model.InitialModel(client, opts, logChannel)
	return tea.NewProgram(NewAppModel(m), tea.WithAltScreen())
}
