package model

import (
	"time"

	"statusboard/internal/api"
	"statusboard/internal/tui/design"
	"statusboard/pkg/logging"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev panel"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select/toggle comments"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close/cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "activity log"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		NewEnv: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new environment"),
		),
		CycleStatus: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle status"),
		),
		NewPost: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "new post"),
		),
		AddComment: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "add comment"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy post"),
		),
		Logout: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "log out"),
		),
		ChangePass: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "change password"),
		),
		ShowRegister: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "register"),
		),
		ShowChangePwd: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "change password"),
		),
	}
}

// Options configures a new Model.
type Options struct {
	ServerLogout          bool
	DateFormat            string
	StatusMessageDuration time.Duration
	DebugMode             bool
}

// InitialModel constructs the model shown at startup: the login screen.
func InitialModel(client api.BoardAPI, opts Options, logChannel <-chan logging.LogEntry) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(design.ColorPrimary)

	ci := textinput.New()
	ci.Placeholder = "Write a comment"
	ci.CharLimit = 2000
	ci.Width = 60

	dateFormat := opts.DateFormat
	if dateFormat == "" {
		dateFormat = "2006-01-02 15:04"
	}

	return &Model{
		CurrentAppMode:        ModeLogin,
		DebugMode:             opts.DebugMode,
		API:                   client,
		ServerLogout:          opts.ServerLogout,
		DateFormat:            dateFormat,
		AuthForm:              NewLoginForm(),
		AuthFormKind:          AuthFormLogin,
		CommentInput:          ci,
		LogViewport:           viewport.New(80, 20),
		Spinner:               s,
		Keys:                  DefaultKeyMap(),
		Help:                  help.New(),
		StatusMessageDuration: opts.StatusMessageDuration,
		LogChannel:            logChannel,
		ActivityLog:           []string{},
		Clipboard:             clipboard.WriteAll,
	}
}

// Init starts the login form, the spinner and the log listener.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.Spinner.Tick}
	if m.AuthForm != nil {
		cmds = append(cmds, m.AuthForm.Init())
	}
	if listen := ListenForLogEntriesCmd(m.LogChannel); listen != nil {
		cmds = append(cmds, listen)
	}
	return tea.Batch(cmds...)
}
