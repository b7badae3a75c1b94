package controller

import (
	"fmt"
	"strings"

	"statusboard/internal/api"
	"statusboard/internal/state"
	"statusboard/internal/tui/model"
	"statusboard/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

func emptyEnvDraft() api.EnvironmentPayload {
	return api.EnvironmentPayload{Status: api.StatusOK}
}

// reportFailure raises the blocking alert and records the error in the activity log.
func reportFailure(m *model.Model, subsystem, title string, err error) {
	LogError(subsystem, err, "%s", title)
	m.ShowAlert(title, err.Error())
}

// fromOtherSession reports whether an async result was requested under a
// session that has since ended.
func fromOtherSession(m *model.Model, gen uint64) bool {
	return !m.Session.LoggedIn || gen != m.SessionGen
}

func loadEnvironments(m *model.Model) tea.Cmd {
	m.EnvironmentsState = model.LoadInProgress
	return fetchEnvironmentsCmd(m.API, m.SessionGen)
}

// loadPosts fetches the posts of the current environment, if any.
func loadPosts(m *model.Model) tea.Cmd {
	env, ok := m.Board.Current()
	if !ok {
		return nil
	}
	m.PostsState = model.LoadInProgress
	return fetchPostsCmd(m.API, m.SessionGen, env.ID)
}

func syncEnvCursor(m *model.Model) {
	if m.Board.CurrentEnvID != nil {
		if idx := view.DisplayIndex(m.Board.Environments, *m.Board.CurrentEnvID); idx >= 0 {
			m.EnvCursor = idx
			return
		}
	}
	m.EnvCursor = clamp(m.EnvCursor, len(m.Board.Environments))
}

func handleEnvironmentsLoaded(m *model.Model, msg model.EnvironmentsLoadedMsg) (*model.Model, tea.Cmd) {
	if fromOtherSession(m, msg.Gen) {
		LogDebug(m, envSubsystem, "Dropping environment list from an ended session")
		return m, nil
	}
	if msg.Err != nil {
		m.EnvironmentsState = model.LoadFailed
		reportFailure(m, envSubsystem, "Failed to load environments", msg.Err)
		return m, nil
	}

	m.EnvironmentsState = model.LoadDone
	if cleared := m.Board.ReplaceEnvironments(msg.Environments); cleared {
		LogInfo(envSubsystem, "Selected environment no longer exists")
		m.ClearPosts()
		if m.ActiveFormKind == model.FormPost {
			m.CloseForm()
		}
	}
	if env, selected := m.Board.AutoSelectFirst(); selected {
		LogDebug(m, envSubsystem, "Auto-selected environment %s", env.Name)
	}
	syncEnvCursor(m)
	LogDebug(m, envSubsystem, "Loaded %d environments", len(msg.Environments))
	return m, loadPosts(m)
}

func selectEnvironmentAtCursor(m *model.Model) (*model.Model, tea.Cmd) {
	envs := view.OrderedEnvironments(m.Board.Environments)
	if len(envs) == 0 {
		return m, nil
	}
	env := envs[clamp(m.EnvCursor, len(envs))]
	if !m.Board.Select(env.ID) {
		return m, nil
	}
	m.ClearPosts()
	if m.ActiveFormKind == model.FormPost {
		m.CloseForm()
	}
	if m.CommentInputActive {
		m.CloseCommentInput()
	}
	LogDebug(m, envSubsystem, "Selected environment %s", env.Name)
	return m, loadPosts(m)
}

func openEnvironmentForm(m *model.Model) (*model.Model, tea.Cmd) {
	if !m.Session.Can(state.CapCreateEnvironment) {
		return m, notPermitted(m, state.CapCreateEnvironment)
	}
	if m.EnvDraft.Status == "" {
		m.EnvDraft = emptyEnvDraft()
	}
	return openForm(m, model.FormEnvironment, model.NewEnvironmentForm(m.EnvDraft))
}

func handleEnvironmentSubmitted(m *model.Model, msg model.EnvironmentSubmittedMsg) (*model.Model, tea.Cmd) {
	if !m.Session.Can(state.CapCreateEnvironment) {
		m.CloseForm()
		return m, notPermitted(m, state.CapCreateEnvironment)
	}
	m.EnvDraft = api.EnvironmentPayload{
		Name:         strings.TrimSpace(msg.Name),
		Status:       msg.Status.Normalize(),
		SolutionName: strings.TrimSpace(msg.SolutionName),
	}
	if m.EnvDraft.Name == "" {
		m.ShowAlert("Missing name", "Name is required.")
		return openForm(m, model.FormEnvironment, model.NewEnvironmentForm(m.EnvDraft))
	}
	m.FormPending = true
	LogInfo(envSubsystem, "Creating environment %s", m.EnvDraft.Name)
	return m, createEnvironmentCmd(m.API, m.SessionGen, m.Session.Identity(), m.EnvDraft)
}

func handleEnvironmentCreated(m *model.Model, msg model.EnvironmentCreatedMsg) (*model.Model, tea.Cmd) {
	if fromOtherSession(m, msg.Gen) {
		return m, nil
	}
	if msg.Err != nil {
		reportFailure(m, envSubsystem, "Failed to create environment", msg.Err)
		if m.ActiveFormKind == model.FormEnvironment {
			return openForm(m, model.FormEnvironment, model.NewEnvironmentForm(m.EnvDraft))
		}
		return m, nil
	}

	env := msg.Environment
	m.Board.Append(env)
	m.Board.Select(env.ID)
	m.ClearPosts()
	if m.ActiveFormKind == model.FormEnvironment {
		m.CloseForm()
	}
	m.EnvDraft = emptyEnvDraft()
	syncEnvCursor(m)

	LogInfo(envSubsystem, "Created environment %s (%d)", env.Name, env.ID)
	statusCmd := m.SetStatusMessage(fmt.Sprintf("Environment %s created", env.Name), model.StatusBarSuccess, 0)
	return m, tea.Batch(statusCmd, loadPosts(m))
}

// cycleStatus sends the full current record with the next status in the cycle.
func cycleStatus(m *model.Model) (*model.Model, tea.Cmd) {
	if !m.Session.Can(state.CapCycleStatus) {
		return m, notPermitted(m, state.CapCycleStatus)
	}
	env, ok := m.Board.Current()
	if !ok {
		return m, m.SetStatusMessage("Select an environment first", model.StatusBarWarning, 0)
	}
	payload := env.Payload()
	payload.Status = env.Status.Next()
	LogInfo(envSubsystem, "Changing %s status %s -> %s", env.Name, env.Status.Normalize(), payload.Status)
	return m, updateEnvironmentCmd(m.API, m.SessionGen, m.Session.Identity(), env.ID, payload)
}

func handleEnvironmentUpdated(m *model.Model, msg model.EnvironmentUpdatedMsg) (*model.Model, tea.Cmd) {
	if fromOtherSession(m, msg.Gen) {
		return m, nil
	}
	if msg.Err != nil {
		reportFailure(m, envSubsystem, "Failed to update environment", msg.Err)
		return m, nil
	}
	env := msg.Environment
	if !m.Board.Replace(env) {
		LogDebug(m, envSubsystem, "Updated environment %d is no longer listed", env.ID)
		return m, nil
	}
	LogInfo(envSubsystem, "%s is now %s", env.Name, env.Status.Normalize())
	return m, m.SetStatusMessage(fmt.Sprintf("%s is now %s", env.Name, env.Status.Normalize()), model.StatusBarSuccess, 0)
}

func handleEnvironmentDeleted(m *model.Model, msg model.EnvironmentDeletedMsg) (*model.Model, tea.Cmd) {
	if fromOtherSession(m, msg.Gen) {
		return m, nil
	}
	if msg.Err != nil {
		reportFailure(m, envSubsystem, "Failed to delete environment", msg.Err)
		return m, nil
	}

	name := fmt.Sprintf("#%d", msg.ID)
	if env, ok := m.Board.Find(msg.ID); ok {
		name = env.Name
	}
	if wasSelected := m.Board.Remove(msg.ID); wasSelected {
		m.ClearPosts()
		if m.ActiveFormKind == model.FormPost {
			m.CloseForm()
		}
		if m.CommentInputActive {
			m.CloseCommentInput()
		}
		if m.Focus != model.FocusEnvironments {
			m.Focus = model.FocusEnvironments
		}
	}
	syncEnvCursor(m)

	LogInfo(envSubsystem, "Deleted environment %s", name)
	return m, m.SetStatusMessage(fmt.Sprintf("Environment %s deleted", name), model.StatusBarSuccess, 0)
}
