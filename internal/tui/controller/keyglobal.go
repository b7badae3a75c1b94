package controller

import (
	"fmt"
	"strings"

	"statusboard/internal/state"
	"statusboard/internal/tui/model"
	"statusboard/internal/tui/view"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsgGlobal processes dashboard shortcuts when no form, input or modal owns the keyboard.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m)

	case key.Matches(keyMsg, m.Keys.Help):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.GotoBottom()
		return m, nil

	case key.Matches(keyMsg, m.Keys.Tab):
		m.Focus = nextFocus(m, 1)
		return m, nil

	case key.Matches(keyMsg, m.Keys.ShiftTab):
		m.Focus = nextFocus(m, -1)
		return m, nil

	case key.Matches(keyMsg, m.Keys.Up):
		moveCursor(m, -1)
		return m, nil

	case key.Matches(keyMsg, m.Keys.Down):
		moveCursor(m, 1)
		return m, nil

	case key.Matches(keyMsg, m.Keys.Esc):
		if m.Focus == model.FocusComments {
			m.Focus = model.FocusPosts
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.Enter):
		switch m.Focus {
		case model.FocusEnvironments:
			return selectEnvironmentAtCursor(m)
		case model.FocusPosts:
			return toggleComments(m)
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.Reload):
		LogInfo(envSubsystem, "Reloading environments")
		return m, loadEnvironments(m)

	case key.Matches(keyMsg, m.Keys.NewEnv):
		return openEnvironmentForm(m)

	case key.Matches(keyMsg, m.Keys.CycleStatus):
		return cycleStatus(m)

	case key.Matches(keyMsg, m.Keys.NewPost):
		return togglePostForm(m)

	case key.Matches(keyMsg, m.Keys.AddComment):
		return openCommentInput(m)

	case key.Matches(keyMsg, m.Keys.Delete):
		return requestDelete(m)

	case key.Matches(keyMsg, m.Keys.Copy):
		return copyFocusedPost(m)

	case key.Matches(keyMsg, m.Keys.Logout):
		return logout(m)

	case key.Matches(keyMsg, m.Keys.ChangePass):
		return openForm(m, model.FormChangePassword, model.NewChangePasswordForm(m.Session.Username))
	}
	return m, nil
}

// nextFocus cycles environments, posts and comments. Comments are skipped
// unless the focused post shows a non-empty comment list.
func nextFocus(m *model.Model, dir int) model.FocusZone {
	order := []model.FocusZone{model.FocusEnvironments, model.FocusPosts}
	if card, ok := m.FocusedPost(); ok && card.Expanded && len(card.Comments) > 0 {
		order = append(order, model.FocusComments)
	}
	idx := 0
	for i, f := range order {
		if f == m.Focus {
			idx = i
			break
		}
	}
	return order[(idx+dir+len(order))%len(order)]
}

func moveCursor(m *model.Model, delta int) {
	switch m.Focus {
	case model.FocusEnvironments:
		m.EnvCursor = clamp(m.EnvCursor+delta, len(m.Board.Environments))
	case model.FocusPosts:
		m.PostCursor = clamp(m.PostCursor+delta, len(m.Posts))
	case model.FocusComments:
		if card, ok := m.FocusedPost(); ok {
			card.CommentIndex = clamp(card.CommentIndex+delta, len(card.Comments))
		}
	}
}

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func requestDelete(m *model.Model) (*model.Model, tea.Cmd) {
	switch m.Focus {
	case model.FocusEnvironments:
		envs := view.OrderedEnvironments(m.Board.Environments)
		if len(envs) == 0 {
			return m, nil
		}
		if !m.Session.Can(state.CapDeleteEnvironment) {
			return m, notPermitted(m, state.CapDeleteEnvironment)
		}
		env := envs[clamp(m.EnvCursor, len(envs))]
		m.Confirm = &model.Confirmation{
			Prompt:   fmt.Sprintf("Delete environment %q and all of its posts?", view.SanitizeText(env.Name, false)),
			Action:   model.ConfirmDeleteEnvironment,
			TargetID: env.ID,
		}

	case model.FocusPosts:
		card, ok := m.FocusedPost()
		if !ok {
			return m, nil
		}
		if !m.Session.Can(state.CapDeletePost) {
			return m, notPermitted(m, state.CapDeletePost)
		}
		m.Confirm = &model.Confirmation{
			Prompt:   fmt.Sprintf("Delete post %q?", view.SanitizeText(card.Post.Title, false)),
			Action:   model.ConfirmDeletePost,
			TargetID: card.Post.ID,
		}

	case model.FocusComments:
		card, ok := m.FocusedPost()
		if !ok || len(card.Comments) == 0 {
			return m, nil
		}
		if !m.Session.Can(state.CapDeleteComment) {
			return m, notPermitted(m, state.CapDeleteComment)
		}
		c := card.Comments[clamp(card.CommentIndex, len(card.Comments))]
		m.Confirm = &model.Confirmation{
			Prompt:   "Delete this comment?",
			Action:   model.ConfirmDeleteComment,
			TargetID: c.ID,
			ParentID: card.Post.ID,
		}
	}
	return m, nil
}

func copyFocusedPost(m *model.Model) (*model.Model, tea.Cmd) {
	card, ok := m.FocusedPost()
	if !ok || m.Focus == model.FocusEnvironments {
		return m, nil
	}
	text := card.Post.Description
	if strings.TrimSpace(text) == "" {
		text = card.Post.Title
	}
	if err := m.Clipboard(text); err != nil {
		LogError(postSubsystem, err, "Failed to copy post %d", card.Post.ID)
		return m, m.SetStatusMessage("Copy failed", model.StatusBarError, 0)
	}
	return m, m.SetStatusMessage("Post copied to clipboard", model.StatusBarSuccess, 0)
}

// notPermitted reports a role-gated action on the status bar and leaves the UI unchanged.
func notPermitted(m *model.Model, c state.Capability) tea.Cmd {
	LogWarn(controllerSubsystem, "%s (%s) may not %s", m.Session.Username, m.Session.Role, c)
	return m.SetStatusMessage(fmt.Sprintf("Only admins can %s", c), model.StatusBarWarning, 0)
}
