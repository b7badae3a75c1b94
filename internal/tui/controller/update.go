package controller

import (
	"statusboard/internal/tui/model"
	"statusboard/internal/tui/view"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

const controllerDispatchSubsystem = "ControllerDispatch"

// Update is the entry point used by AppModel and by tests.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	return mainControllerDispatch(m, msg)
}

// mainControllerDispatch routes every Bubble Tea message to its handler
// and refreshes the activity log viewport afterwards.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	switch msg.(type) {
	case spinner.TickMsg, tea.MouseMsg, model.NewLogEntryMsg:
	default:
		LogDebug(m, controllerDispatchSubsystem, "Received msg: %T", msg)
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = handleKeyMsg(m, msg)

	case tea.WindowSizeMsg:
		m, cmd = handleWindowSizeMsg(m, msg)

	case tea.MouseMsg:
		if m.CurrentAppMode == model.ModeLogOverlay {
			m.LogViewport, cmd = m.LogViewport.Update(msg)
		}

	case spinner.TickMsg:
		m.Spinner, cmd = m.Spinner.Update(msg)

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		m.StatusBarClearCancel = nil

	case model.NewLogEntryMsg:
		model.AddRawLineToActivityLog(m, msg.Entry.Format())
		cmd = model.ListenForLogEntriesCmd(m.LogChannel)

	// Authentication
	case model.LoginSubmittedMsg:
		m, cmd = handleLoginSubmitted(m, msg)
	case model.LoginResultMsg:
		m, cmd = handleLoginResult(m, msg)
	case model.RegisterSubmittedMsg:
		m, cmd = handleRegisterSubmitted(m, msg)
	case model.RegisterResultMsg:
		m, cmd = handleRegisterResult(m, msg)
	case model.ChangePasswordSubmittedMsg:
		m, cmd = handleChangePasswordSubmitted(m, msg)
	case model.ChangePasswordResultMsg:
		m, cmd = handleChangePasswordResult(m, msg)
	case model.LogoutResultMsg:
		m, cmd = handleLogoutResult(m, msg)

	// Environments
	case model.EnvironmentsLoadedMsg:
		m, cmd = handleEnvironmentsLoaded(m, msg)
	case model.EnvironmentSubmittedMsg:
		m, cmd = handleEnvironmentSubmitted(m, msg)
	case model.EnvironmentCreatedMsg:
		m, cmd = handleEnvironmentCreated(m, msg)
	case model.EnvironmentUpdatedMsg:
		m, cmd = handleEnvironmentUpdated(m, msg)
	case model.EnvironmentDeletedMsg:
		m, cmd = handleEnvironmentDeleted(m, msg)

	// Posts
	case model.PostsLoadedMsg:
		m, cmd = handlePostsLoaded(m, msg)
	case model.PostSubmittedMsg:
		m, cmd = handlePostSubmitted(m, msg)
	case model.PostCreatedMsg:
		m, cmd = handlePostCreated(m, msg)
	case model.PostDeletedMsg:
		m, cmd = handlePostDeleted(m, msg)

	// Comments
	case model.CommentsLoadedMsg:
		m, cmd = handleCommentsLoaded(m, msg)
	case model.CommentSubmittedMsg:
		m, cmd = handleCommentSubmitted(m, msg)
	case model.CommentAddedMsg:
		m, cmd = handleCommentAdded(m, msg)
	case model.CommentDeletedMsg:
		m, cmd = handleCommentDeleted(m, msg)

	default:
		// Forms and text inputs run internal messages (focus moves, cursor blink) through here.
		m, cmd = forwardToInputs(m, msg)
	}

	refreshLogViewport(m)
	return m, cmd
}

func refreshLogViewport(m *model.Model) {
	widthChanged := m.LogViewportLastWidth != m.LogViewport.Width
	if !m.ActivityLogDirty && !widthChanged {
		return
	}
	atBottom := m.LogViewport.AtBottom()
	m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog))
	if atBottom || m.CurrentAppMode != model.ModeLogOverlay {
		m.LogViewport.GotoBottom()
	}
	m.LogViewportLastWidth = m.LogViewport.Width
	m.ActivityLogDirty = false
}

func forwardToInputs(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	switch {
	case m.CurrentAppMode == model.ModeLogin && m.AuthForm != nil:
		return updateAuthForm(m, msg)
	case m.ActiveForm != nil:
		return updateActiveForm(m, msg)
	case m.CommentInputActive:
		var cmd tea.Cmd
		m.CommentInput, cmd = m.CommentInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// asForm keeps the previous form when Update returns something else.
func asForm(updated tea.Model, previous *huh.Form) *huh.Form {
	if f, ok := updated.(*huh.Form); ok {
		return f
	}
	return previous
}
