package model

import (
	"time"

	"statusboard/internal/api"
	"statusboard/internal/state"
	"statusboard/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeLogin AppMode = iota
	ModeDashboard
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeLogin:
		return "Login"
	case ModeDashboard:
		return "Dashboard"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// FocusZone is the dashboard panel receiving navigation keys.
type FocusZone int

const (
	FocusEnvironments FocusZone = iota
	FocusPosts
	FocusComments
)

func (f FocusZone) String() string {
	switch f {
	case FocusEnvironments:
		return "Environments"
	case FocusPosts:
		return "Posts"
	case FocusComments:
		return "Comments"
	default:
		return "Unknown"
	}
}

// AuthFormKind selects which form the login screen shows.
// Register and change password are mutually exclusive with each other and with login.
type AuthFormKind int

const (
	AuthFormLogin AuthFormKind = iota
	AuthFormRegister
	AuthFormChangePassword
)

// FormKind identifies the form open on the dashboard.
type FormKind int

const (
	FormNone FormKind = iota
	FormEnvironment
	FormPost
	FormChangePassword
)

// LoadState tracks a list fetch.
type LoadState int

const (
	LoadIdle LoadState = iota
	LoadInProgress
	LoadDone
	LoadFailed
)

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// MaxActivityLogLines bounds the in-memory activity log.
const MaxActivityLogLines = 1000

// DefaultStatusMessageDuration is used when no configuration is supplied.
const DefaultStatusMessageDuration = 4 * time.Second

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	Tab           key.Binding
	ShiftTab      key.Binding
	Enter         key.Binding
	Esc           key.Binding
	Quit          key.Binding
	Help          key.Binding
	ToggleLog     key.Binding
	Reload        key.Binding
	NewEnv        key.Binding
	CycleStatus   key.Binding
	NewPost       key.Binding
	AddComment    key.Binding
	Delete        key.Binding
	Copy          key.Binding
	Logout        key.Binding
	ChangePass    key.Binding
	ShowRegister  key.Binding
	ShowChangePwd key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Enter, k.Reload, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Tab, k.ShiftTab, k.Enter, k.Esc},
		{k.NewEnv, k.CycleStatus, k.NewPost, k.AddComment, k.Delete, k.Copy},
		{k.Reload, k.ChangePass, k.Logout, k.ToggleLog, k.Help, k.Quit},
	}
}

// PostCard is a post plus its lazily loaded comment panel.
type PostCard struct {
	Post api.Post

	Expanded     bool
	Loading      bool
	Loaded       bool
	LoadFailed   bool
	Comments     []api.Comment
	CommentIndex int
}

// Alert is a blocking notification dismissed with enter or esc.
type Alert struct {
	Title   string
	Message string
}

// ConfirmAction is the deletion a confirmation prompt guards.
type ConfirmAction int

const (
	ConfirmDeleteEnvironment ConfirmAction = iota
	ConfirmDeletePost
	ConfirmDeleteComment
)

// Confirmation asks a yes/no question before a destructive call.
type Confirmation struct {
	Prompt string
	Action ConfirmAction
	// TargetID is the id of the record to delete.
	TargetID int64
	// ParentID is the post id when deleting a comment.
	ParentID int64
}

// Model represents the state of the TUI application.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	CurrentAppMode  AppMode
	LastAppMode     AppMode
	DebugMode       bool
	QuitApp         bool
	QuittingMessage string

	// Backend and client-side stores
	API          api.BoardAPI
	Session      state.Session
	SessionGen   uint64 // bumped on every sign in and sign out
	Board        state.Board
	ServerLogout bool
	DateFormat   string

	// Login screen
	AuthForm          *huh.Form
	AuthFormKind      AuthFormKind
	AuthNotice        string
	AuthNoticeIsError bool
	AuthPending       bool

	// Dashboard
	Focus             FocusZone
	EnvCursor         int
	PostCursor        int
	EnvironmentsState LoadState
	PostsState        LoadState
	Posts             []PostCard

	// Dashboard forms and drafts kept across a failed submission
	ActiveForm     *huh.Form
	ActiveFormKind FormKind
	EnvDraft       api.EnvironmentPayload
	PostDraft      api.PostPayload
	FormPending    bool

	CommentInput        textinput.Model
	CommentInputActive  bool
	CommentTargetPostID int64
	CommentPending      bool

	// Modals
	Alert   *Alert
	Confirm *Confirmation

	// UI State & Output
	ActivityLog           []string
	ActivityLogDirty      bool
	LogViewport           viewport.Model
	LogViewportLastWidth  int
	Spinner               spinner.Model
	Keys                  KeyMap
	Help                  help.Model
	StatusBarMessage      string
	StatusBarMessageType  MessageType
	StatusBarClearCancel  chan struct{}
	StatusMessageDuration time.Duration

	// Logging
	LogChannel <-chan logging.LogEntry

	// Clipboard writes text to the system clipboard.
	Clipboard func(string) error
}

// SetStatusMessage updates the status bar message and schedules its removal.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}
	if clearAfter <= 0 {
		clearAfter = m.StatusMessageDuration
	}
	if clearAfter <= 0 {
		clearAfter = DefaultStatusMessageDuration
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// ShowAlert raises the blocking alert modal.
func (m *Model) ShowAlert(title, message string) {
	m.Alert = &Alert{Title: title, Message: message}
}

// IsLoading reports whether any request the user waits on is in flight.
func (m *Model) IsLoading() bool {
	if m.AuthPending || m.FormPending || m.CommentPending {
		return true
	}
	if m.EnvironmentsState == LoadInProgress || m.PostsState == LoadInProgress {
		return true
	}
	for _, card := range m.Posts {
		if card.Loading {
			return true
		}
	}
	return false
}

// InputCaptured reports whether key presses belong to a form or text input.
func (m *Model) InputCaptured() bool {
	return m.ActiveForm != nil || m.CommentInputActive || m.CurrentAppMode == ModeLogin
}

// FocusedPost returns the card under the post cursor.
func (m *Model) FocusedPost() (*PostCard, bool) {
	if m.PostCursor < 0 || m.PostCursor >= len(m.Posts) {
		return nil, false
	}
	return &m.Posts[m.PostCursor], true
}

// CardIndex returns the index of the card showing postID, or -1.
func (m *Model) CardIndex(postID int64) int {
	for i := range m.Posts {
		if m.Posts[i].Post.ID == postID {
			return i
		}
	}
	return -1
}

// ClearPosts drops the post cards and their comment caches.
func (m *Model) ClearPosts() {
	m.Posts = nil
	m.PostCursor = 0
	m.PostsState = LoadIdle
}

// CloseForm hides the dashboard form.
func (m *Model) CloseForm() {
	m.ActiveForm = nil
	m.ActiveFormKind = FormNone
	m.FormPending = false
}

// CloseCommentInput hides and resets the comment input.
func (m *Model) CloseCommentInput() {
	m.CommentInput.Reset()
	m.CommentInput.Blur()
	m.CommentInputActive = false
	m.CommentTargetPostID = 0
	m.CommentPending = false
}
