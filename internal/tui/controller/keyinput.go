package controller

import (
	"strings"

	"statusboard/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// handleKeyMsg decides who owns a key press: modals first, then the
// current screen, then open forms and inputs, then dashboard shortcuts.
func handleKeyMsg(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if keyMsg.String() == "ctrl+c" {
		return quit(m)
	}

	if m.Alert != nil {
		return handleAlertKey(m, keyMsg)
	}
	if m.Confirm != nil {
		return handleConfirmKey(m, keyMsg)
	}

	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return m, nil
	case model.ModeLogin:
		return handleLoginScreenKey(m, keyMsg)
	case model.ModeHelpOverlay:
		return handleHelpOverlayKey(m, keyMsg)
	case model.ModeLogOverlay:
		return handleLogOverlayKey(m, keyMsg)
	}

	if m.ActiveForm != nil {
		return handleActiveFormKey(m, keyMsg)
	}
	if m.CommentInputActive {
		return handleCommentInputKey(m, keyMsg)
	}
	return handleKeyMsgGlobal(m, keyMsg)
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Goodbye."
	m.QuitApp = true
	return m, tea.Quit
}

// ---- Modals ----

func handleAlertKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "enter", "esc":
		m.Alert = nil
	}
	return m, nil
}

func handleConfirmKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch strings.ToLower(keyMsg.String()) {
	case "y", "enter":
		c := *m.Confirm
		m.Confirm = nil
		return runConfirmed(m, c)
	case "n", "esc":
		LogDebug(m, controllerSubsystem, "Confirmation dismissed: %s", m.Confirm.Prompt)
		m.Confirm = nil
	}
	return m, nil
}

func runConfirmed(m *model.Model, c model.Confirmation) (*model.Model, tea.Cmd) {
	id := m.Session.Identity()
	switch c.Action {
	case model.ConfirmDeleteEnvironment:
		LogInfo(envSubsystem, "Deleting environment %d", c.TargetID)
		return m, deleteEnvironmentCmd(m.API, m.SessionGen, id, c.TargetID)
	case model.ConfirmDeletePost:
		LogInfo(postSubsystem, "Deleting post %d", c.TargetID)
		return m, deletePostCmd(m.API, m.SessionGen, id, c.TargetID)
	case model.ConfirmDeleteComment:
		LogInfo(commentSubsystem, "Deleting comment %d on post %d", c.TargetID, c.ParentID)
		return m, deleteCommentCmd(m.API, m.SessionGen, id, c.ParentID, c.TargetID)
	}
	return m, nil
}

// ---- Login screen ----

func handleLoginScreenKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if m.AuthPending {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.Keys.ShowRegister) && m.AuthFormKind != model.AuthFormRegister:
		return showAuthForm(m, model.AuthFormRegister, "", false)
	case key.Matches(keyMsg, m.Keys.ShowChangePwd) && m.AuthFormKind != model.AuthFormChangePassword:
		return showAuthForm(m, model.AuthFormChangePassword, "", false)
	case key.Matches(keyMsg, m.Keys.Esc) && m.AuthFormKind != model.AuthFormLogin:
		return showAuthForm(m, model.AuthFormLogin, "", false)
	}
	return updateAuthForm(m, keyMsg)
}

// showAuthForm swaps the login screen form. Only one of login, register and change password is shown.
func showAuthForm(m *model.Model, kind model.AuthFormKind, notice string, isError bool) (*model.Model, tea.Cmd) {
	switch kind {
	case model.AuthFormRegister:
		m.AuthForm = model.NewRegisterForm()
	case model.AuthFormChangePassword:
		m.AuthForm = model.NewChangePasswordForm("")
	default:
		m.AuthForm = model.NewLoginForm()
	}
	m.AuthFormKind = kind
	m.AuthNotice = notice
	m.AuthNoticeIsError = isError
	m.AuthPending = false
	return m, m.AuthForm.Init()
}

func updateAuthForm(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	if m.AuthForm == nil {
		return m, nil
	}
	form, cmd := m.AuthForm.Update(msg)
	m.AuthForm = asForm(form, m.AuthForm)
	if m.AuthPending || m.AuthForm.State != huh.StateCompleted {
		return m, cmd
	}

	var submitCmd tea.Cmd
	switch m.AuthFormKind {
	case model.AuthFormRegister:
		m, submitCmd = handleRegisterSubmitted(m, model.RegisterFromForm(m.AuthForm))
	case model.AuthFormChangePassword:
		m, submitCmd = handleChangePasswordSubmitted(m, model.ChangePasswordFromForm(m.AuthForm))
	default:
		m, submitCmd = handleLoginSubmitted(m, model.LoginFromForm(m.AuthForm))
	}
	return m, tea.Batch(cmd, submitCmd)
}

// ---- Dashboard forms ----

func handleActiveFormKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if m.FormPending {
		return m, nil
	}
	if key.Matches(keyMsg, m.Keys.Esc) {
		switch m.ActiveFormKind {
		case model.FormEnvironment:
			m.EnvDraft = emptyEnvDraft()
		case model.FormPost:
			m.PostDraft = emptyPostDraft()
		}
		m.CloseForm()
		return m, nil
	}
	return updateActiveForm(m, keyMsg)
}

func updateActiveForm(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	if m.ActiveForm == nil {
		return m, nil
	}
	form, cmd := m.ActiveForm.Update(msg)
	m.ActiveForm = asForm(form, m.ActiveForm)
	if m.FormPending || m.ActiveForm.State != huh.StateCompleted {
		return m, cmd
	}

	var submitCmd tea.Cmd
	switch m.ActiveFormKind {
	case model.FormEnvironment:
		m, submitCmd = handleEnvironmentSubmitted(m, model.EnvironmentFromForm(m.ActiveForm))
	case model.FormPost:
		m, submitCmd = handlePostSubmitted(m, model.PostFromForm(m.ActiveForm))
	case model.FormChangePassword:
		m, submitCmd = handleChangePasswordSubmitted(m, model.ChangePasswordFromForm(m.ActiveForm))
	}
	return m, tea.Batch(cmd, submitCmd)
}

// openForm shows form in the dashboard form area, replacing any other form or comment input.
func openForm(m *model.Model, kind model.FormKind, form *huh.Form) (*model.Model, tea.Cmd) {
	if m.CommentInputActive {
		m.CloseCommentInput()
	}
	m.ActiveForm = form
	m.ActiveFormKind = kind
	m.FormPending = false
	return m, form.Init()
}

// ---- Comment input ----

func handleCommentInputKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if m.CommentPending {
		return m, nil
	}
	switch keyMsg.String() {
	case "esc":
		m.CloseCommentInput()
		return m, nil
	case "enter":
		return handleCommentSubmitted(m, model.CommentSubmittedMsg{
			PostID: m.CommentTargetPostID,
			Text:   m.CommentInput.Value(),
		})
	}
	var cmd tea.Cmd
	m.CommentInput, cmd = m.CommentInput.Update(keyMsg)
	return m, cmd
}

// ---- Overlays ----

func handleHelpOverlayKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Esc), key.Matches(keyMsg, m.Keys.Help):
		m.CurrentAppMode = m.LastAppMode
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m)
	}
	return m, nil
}

func handleLogOverlayKey(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Esc), key.Matches(keyMsg, m.Keys.ToggleLog):
		m.CurrentAppMode = m.LastAppMode
		return m, nil
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m)
	case key.Matches(keyMsg, m.Keys.Copy):
		if err := m.Clipboard(strings.Join(m.ActivityLog, "\n")); err != nil {
			LogError(controllerSubsystem, err, "Failed to copy activity log")
			return m, m.SetStatusMessage("Copy failed", model.StatusBarError, 0)
		}
		return m, m.SetStatusMessage("Activity log copied to clipboard", model.StatusBarSuccess, 0)
	}
	var cmd tea.Cmd
	m.LogViewport, cmd = m.LogViewport.Update(keyMsg)
	return m, cmd
}
