package controller

import (
	"errors"
	"testing"
	"time"

	"statusboard/internal/api"
	"statusboard/internal/tui/model"
	"statusboard/internal/tui/view"
	"statusboard/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededAPI() *fakeAPI {
	f := newFakeAPI()
	f.environments = []api.Environment{
		{ID: 1, Name: "prod", Status: api.StatusOK, SolutionName: solution("billing")},
		{ID: 2, Name: "dev", Status: api.StatusIssues},
	}
	f.posts[1] = []api.Post{{ID: 10, Title: "deploy", Description: "rolled out v2", Type: "RELEASE"}}
	f.comments[10] = []api.Comment{{ID: 20, Text: "nice", Author: "bob"}}
	return f
}

func TestLogin_AdminAutoSelectsFirstEnvironment(t *testing.T) {
	f := seededAPI()
	m := signIn(f, "alice")

	assert.Equal(t, model.ModeDashboard, m.CurrentAppMode)
	assert.True(t, m.Session.LoggedIn)
	assert.Equal(t, "alice", m.Session.Username)
	assert.Equal(t, api.RoleAdmin, m.Session.Role)
	assert.True(t, m.Session.IsAdmin())

	require.NotNil(t, m.Board.CurrentEnvID)
	assert.Equal(t, int64(1), *m.Board.CurrentEnvID)
	assert.Len(t, m.Board.Environments, 2)
	assert.Equal(t, model.LoadDone, m.EnvironmentsState)
	assert.Equal(t, 0, m.EnvCursor)

	assert.Equal(t, 1, f.count("ListEnvironments"))
	assert.Equal(t, 1, f.count("ListPostsByEnvironment"))
	require.Len(t, m.Posts, 1)
	assert.Equal(t, "deploy", m.Posts[0].Post.Title)
	assert.Contains(t, m.StatusBarMessage, "Signed in as alice")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := seededAPI()
	m := newTestModel(f)
	m = pump(m, model.LoginSubmittedMsg{Username: "alice", Password: "wrong"})

	assert.Equal(t, model.ModeLogin, m.CurrentAppMode)
	assert.False(t, m.Session.LoggedIn)
	assert.Equal(t, invalidCredentialsText, m.AuthNotice)
	assert.True(t, m.AuthNoticeIsError)
	assert.False(t, m.AuthPending)
	assert.NotNil(t, m.AuthForm)
	assert.Equal(t, 0, f.count("ListEnvironments"))
}

func TestLogin_TransportErrorShownVerbatim(t *testing.T) {
	m := newTestModel(newFakeAPI())
	m, _ = Update(model.LoginResultMsg{Err: errors.New("dial tcp: connection refused")}, m)
	assert.Equal(t, "dial tcp: connection refused", m.AuthNotice)
	assert.False(t, m.Session.LoggedIn)
}

func TestLoginScreen_SwitchesForms(t *testing.T) {
	m := newTestModel(newFakeAPI())

	m, _ = Update(keyPress("ctrl+r"), m)
	assert.Equal(t, model.AuthFormRegister, m.AuthFormKind)

	m, _ = Update(keyPress("ctrl+p"), m)
	assert.Equal(t, model.AuthFormChangePassword, m.AuthFormKind)

	m, _ = Update(keyPress("esc"), m)
	assert.Equal(t, model.AuthFormLogin, m.AuthFormKind)

	// q is text on the login screen, not a quit key.
	m, _ = Update(keyPress("q"), m)
	assert.NotEqual(t, model.ModeQuitting, m.CurrentAppMode)
}

func TestRegister_SuccessReturnsToLogin(t *testing.T) {
	f := newFakeAPI()
	m := newTestModel(f)
	m, _ = Update(keyPress("ctrl+r"), m)
	m = pump(m, model.RegisterSubmittedMsg{Username: "carol", Password: "pw", Role: api.RoleViewer})

	assert.Equal(t, 1, f.count("Register"))
	assert.Equal(t, model.AuthFormLogin, m.AuthFormKind)
	assert.Equal(t, "User registered", m.AuthNotice)
	assert.False(t, m.AuthNoticeIsError)
	assert.False(t, m.Session.LoggedIn)
}

func TestRegister_FailureKeepsRegisterForm(t *testing.T) {
	f := newFakeAPI()
	m := newTestModel(f)
	m, _ = Update(keyPress("ctrl+r"), m)
	m = pump(m, model.RegisterSubmittedMsg{Username: "alice", Password: "pw"})

	assert.Equal(t, model.AuthFormRegister, m.AuthFormKind)
	assert.Equal(t, "Username already exists", m.AuthNotice)
	assert.True(t, m.AuthNoticeIsError)
}

func TestChangePassword_FromLoginScreen(t *testing.T) {
	f := newFakeAPI()
	m := newTestModel(f)
	m, _ = Update(keyPress("ctrl+p"), m)
	m = pump(m, model.ChangePasswordSubmittedMsg{Username: "bob", OldPassword: "pw", NewPassword: "pw2"})

	assert.Equal(t, "pw2", f.passwords["bob"])
	assert.Equal(t, model.AuthFormLogin, m.AuthFormKind)
	assert.Equal(t, "Password updated", m.AuthNotice)
	assert.False(t, m.Session.LoggedIn)
}

func TestChangePassword_FromDashboard(t *testing.T) {
	f := seededAPI()
	m := signIn(f, "bob")

	m, _ = Update(keyPress("P"), m)
	require.NotNil(t, m.ActiveForm)
	assert.Equal(t, model.FormChangePassword, m.ActiveFormKind)

	m = pump(m, model.ChangePasswordSubmittedMsg{Username: "bob", OldPassword: "nope", NewPassword: "x"})
	require.NotNil(t, m.Alert)
	assert.Equal(t, "Password change failed", m.Alert.Message)
	assert.Equal(t, model.FormChangePassword, m.ActiveFormKind)

	m, _ = Update(keyPress("enter"), m)
	m = pump(m, model.ChangePasswordSubmittedMsg{Username: "bob", OldPassword: "pw", NewPassword: "pw2"})
	assert.Nil(t, m.ActiveForm)
	assert.Equal(t, "Password updated", m.StatusBarMessage)
	assert.True(t, m.Session.LoggedIn)
}

func TestCreatePost_WithoutSelectionMakesNoCall(t *testing.T) {
	f := newFakeAPI()
	m := signIn(f, "alice")
	require.Nil(t, m.Board.CurrentEnvID)

	m = pump(m, model.PostSubmittedMsg{Title: "hello", Type: "INFO"})
	assert.Equal(t, 0, f.count("CreatePost"))
	assert.Nil(t, m.Alert)

	m, _ = Update(keyPress("p"), m)
	assert.Nil(t, m.ActiveForm)
	assert.Equal(t, model.StatusBarWarning, m.StatusBarMessageType)
}

func TestCreatePost_TitleRequired(t *testing.T) {
	f := seededAPI()
	m := signIn(f, "bob")

	m, _ = Update(keyPress("p"), m)
	require.Equal(t, model.FormPost, m.ActiveFormKind)

	m = pump(m, model.PostSubmittedMsg{Title: "   ", Description: "body"})
	assert.Equal(t, 0, f.count("CreatePost"))
	require.NotNil(t, m.Alert)
	assert.Equal(t, "Title is required.", m.Alert.Message)
	assert.Equal(t, "body", m.PostDraft.Description)
	assert.Equal(t, model.FormPost, m.ActiveFormKind)
}

func TestCreatePost_SuccessReloadsPosts(t *testing.T) {
	f := seededAPI()
	m := signIn(f, "bob")
	m, _ = Update(keyPress("p"), m)

	m = pump(m, model.PostSubmittedMsg{Title: "incident", Description: "db down", Type: "INCIDENT"})
	assert.Equal(t, 1, f.count("CreatePost"))
	assert.Equal(t, 2, f.count("ListPostsByEnvironment"))
	assert.Nil(t, m.ActiveForm)
	assert.Equal(t, "", m.PostDraft.Title)
	assert.Len(t, m.Posts, 2)
	assert.Equal(t, "bob", *f.posts[1][1].CreatedBy)
}

func TestCreateEnvironment_BlockedForViewer(t *testing.T) {
	f := seededAPI()
	m := signIn(f, "bob")

	m, _ = Update(keyPress("n"), m)
	assert.Nil(t, m.ActiveForm)
	assert.Equal(t, model.FormNone, m.ActiveFormKind)
	assert.Equal(t, model.StatusBarWarning, m.StatusBarMessageType)
	assert.Contains(t, m.StatusBarMessage, "Only admins")

	m = pump(m, model.EnvironmentSubmittedMsg{Name: "sneaky", Status: api.StatusOK})
	assert.Equal(t, 0, f.count("CreateEnvironment"))
}

func TestCreateEnvironment_SuccessSelectsIt(t *testing.T) {
	f := seededAPI()
	m := signIn(f, "alice")

	m, _ = Update(keyPress("n"), m)
	require.Equal(t, model.FormEnvironment, m.ActiveFormKind)

	m = pump(m, model.EnvironmentSubmittedMsg{Name: " qa ", Status: api.StatusFreeze, SolutionName: "billing"})
	assert.Equal(t, 1, f.count("CreateEnvironment"))
	assert.Nil(t, m.ActiveForm)
	require.NotNil(t, m.Board.CurrentEnvID)

	env, ok := m.Board.Current()
	require.True(t, ok)
	assert.Equal(t, "qa", env.Name)
	assert.Len(t, m.Board.Environments, 3)
	assert.Equal(t, view.DisplayIndex(m.Board.Environments, env.ID), m.EnvCursor)
	assert.Equal(t, "", m.EnvDraft.Name)
}

func TestCreateEnvironment_FailureKeepsDraft(t *testing.T) {
	f := seededAPI()
	f.failCreateEnv = &api.RequestError{Op: "create environment", Status: 409, Message: "Environment already exists"}
	m := signIn(f, "alice")

	m, _ = Update(keyPress("n"), m)
	m = pump(m, model.EnvironmentSubmittedMsg{Name: "prod", Status: api.StatusOK})

	require.NotNil(t, m.Alert)
	assert.Equal(t, "Environment already exists", m.Alert.Message)
	assert.Equal(t, model.FormEnvironment, m.ActiveFormKind)
	assert.Equal(t, "prod", m.EnvDraft.Name)
	assert.Len(t, m.Board.Environments, 2)
	assert.Equal(t, int64(1), *m.Board.CurrentEnvID)
}

func TestCycleStatus(t *testing.T) {
	f := seededAPI()
	m := signIn(f, "alice")

	m = pump(m, keyPress("s"))
	assert.Equal(t, 1, f.count("UpdateEnvironment"))
	env, ok := m.Board.Current()
	require.True(t, ok)
	assert.Equal(t, api.StatusIssues, env.Status)
	assert.Equal(t, "prod", env.Name)

	viewer := signIn(f, "bob")
	viewer = pump(viewer, keyPress("s"))
	assert.Equal(t, 1, f.count("UpdateEnvironment"))
	assert.Equal(t, model.StatusBarWarning, viewer.StatusBarMessageType)
}

func TestDeleteSelectedEnvironment(t *testing.T) {
	f := seededAPI()
	m := signIn(f, "alice")
	require.Equal(t, model.FocusEnvironments, m.Focus)
	require.NotEmpty(t, m.Posts)

	m, _ = Update(keyPress("d"), m)
	require.NotNil(t, m.Confirm)
	assert.Equal(t, model.ConfirmDeleteEnvironment, m.Confirm.Action)
	assert.Equal(t, int64(1), m.Confirm.TargetID)
	assert.Equal(t, 0, f.count("DeleteEnvironment"))

	m = pump(m, keyPress("y"))
	assert.Equal(t, 1, f.count("DeleteEnvironment"))
	assert.Nil(t, m.Confirm)
	assert.Nil(t, m.Board.CurrentEnvID)
	assert.Empty(t, m.Posts)
	assert.Len(t, m.Board.Environments, 1)

	out := ansi.Strip(view.Render(m))
	assert.Contains(t, out, "Select an environment to see posts.")
	assert.NotContains(t, out, "No posts for this environment yet.")
}

func TestDeleteEnvironment_Cancelled(t *testing.T) {
	f := seededAPI()
	m := signIn(f, "alice")

	m, _ = Update(keyPress("d"), m)
	m, _ = Update(keyPress("n"), m)
	assert.Nil(t, m.Confirm)
	assert.Nil(t, m.ActiveForm)
	assert.Equal(t, 0, f.count("DeleteEnvironment"))
}

func TestSelectEnvironment_LoadsItsPosts(t *testing.T) {
	f := seededAPI()
	m := signIn(f, "alice")

	m, _ = Update(keyPress("j"), m)
	assert.Equal(t, 1, m.EnvCursor)
	m = pump(m, keyPress("enter"))

	assert.Equal(t, int64(2), *m.Board.CurrentEnvID)
	assert.Equal(t, 2, f.count("ListPostsByEnvironment"))
	assert.Empty(t, m.Posts)
	assert.Equal(t, model.LoadDone, m.PostsState)
}

func TestStalePostsAreDropped(t *testing.T) {
	f := seededAPI()
	m := signIn(f, "alice")

	m, _ = Update(model.PostsLoadedMsg{Gen: m.SessionGen, EnvID: 2, Posts: []api.Post{{ID: 99, Title: "stale"}}}, m)
	require.Len(t, m.Posts, 1)
	assert.Equal(t, "deploy", m.Posts[0].Post.Title)

	m, _ = Update(model.CommentsLoadedMsg{Gen: m.SessionGen, PostID: 99, Comments: []api.Comment{{ID: 1}}}, m)
	assert.Empty(t, m.Posts[0].Comments)
}

func TestResultsAfterLogoutAreDropped(t *testing.T) {
	f := seededAPI()
	m := signIn(f, "alice")
	m, _ = Update(keyPress("o"), m)

	m, _ = Update(model.EnvironmentsLoadedMsg{Environments: f.environments}, m)
	assert.Empty(t, m.Board.Environments)
	m, _ = Update(model.PostsLoadedMsg{EnvID: 1, Posts: f.posts[1]}, m)
	assert.Empty(t, m.Posts)
}

func TestResultsFromEarlierSessionAreDropped(t *testing.T) {
	f := seededAPI()
	m := signIn(f, "alice")
	aliceGen := m.SessionGen

	m, _ = Update(keyPress("o"), m)
	m = pump(m, model.LoginSubmittedMsg{Username: "bob", Password: "pw"})
	require.True(t, m.Session.LoggedIn)
	require.Equal(t, "bob", m.Session.Username)
	require.NotEqual(t, aliceGen, m.SessionGen)
	require.Len(t, m.Board.Environments, 2)
	require.NotNil(t, m.Board.CurrentEnvID)
	selected := *m.Board.CurrentEnvID

	m, _ = Update(model.EnvironmentCreatedMsg{Gen: aliceGen, Environment: api.Environment{ID: 77, Name: "late"}}, m)
	assert.Len(t, m.Board.Environments, 2)
	assert.Equal(t, selected, *m.Board.CurrentEnvID)

	m, _ = Update(model.EnvironmentDeletedMsg{Gen: aliceGen, ID: selected}, m)
	assert.Len(t, m.Board.Environments, 2)

	m, _ = Update(model.PostsLoadedMsg{Gen: aliceGen, EnvID: selected, Posts: []api.Post{{ID: 98, Title: "old"}}}, m)
	for _, card := range m.Posts {
		assert.NotEqual(t, "old", card.Post.Title)
	}

	// The same result under the current generation is applied.
	m, _ = Update(model.EnvironmentCreatedMsg{Gen: m.SessionGen, Environment: api.Environment{ID: 78, Name: "fresh"}}, m)
	assert.Len(t, m.Board.Environments, 3)
}

func TestComments_LoadOnceAndRefetchAfterAdd(t *testing.T) {
	f := seededAPI()
	m := signIn(f, "bob")

	m, _ = Update(keyPress("tab"), m)
	require.Equal(t, model.FocusPosts, m.Focus)

	m = pump(m, keyPress("enter"))
	require.True(t, m.Posts[0].Expanded)
	assert.True(t, m.Posts[0].Loaded)
	assert.Len(t, m.Posts[0].Comments, 1)
	assert.Equal(t, 1, f.count("ListComments"))

	m = pump(m, keyPress("enter"))
	assert.False(t, m.Posts[0].Expanded)
	m = pump(m, keyPress("enter"))
	assert.True(t, m.Posts[0].Expanded)
	assert.Equal(t, 1, f.count("ListComments"))

	m, _ = Update(keyPress("c"), m)
	require.True(t, m.CommentInputActive)
	assert.Equal(t, int64(10), m.CommentTargetPostID)

	m = pump(m, model.CommentSubmittedMsg{PostID: 10, Text: "  thanks  "})
	assert.Equal(t, 1, f.count("AddComment"))
	assert.Equal(t, 2, f.count("ListComments"))
	assert.False(t, m.CommentInputActive)
	require.Len(t, m.Posts[0].Comments, 2)
	assert.Equal(t, "thanks", m.Posts[0].Comments[1].Text)
	assert.Equal(t, "bob", m.Posts[0].Comments[1].Author)
}

func TestComments_AddFailureKeepsInput(t *testing.T) {
	f := seededAPI()
	f.failAddComment = &api.RequestError{Op: "add comment", Status: 500, Message: "Failed to add comment"}
	m := signIn(f, "bob")

	m, _ = Update(keyPress("tab"), m)
	m, _ = Update(keyPress("c"), m)
	require.True(t, m.CommentInputActive)

	m = pump(m, model.CommentSubmittedMsg{PostID: 10, Text: "hi"})
	assert.True(t, m.CommentInputActive)
	assert.False(t, m.CommentPending)
	require.NotNil(t, m.Alert)
	assert.Equal(t, 0, f.count("ListComments"))
}

func TestComments_DeleteRefetches(t *testing.T) {
	f := seededAPI()
	m := signIn(f, "alice")

	m, _ = Update(keyPress("tab"), m)
	m = pump(m, keyPress("enter"))
	m, _ = Update(keyPress("tab"), m)
	require.Equal(t, model.FocusComments, m.Focus)

	m, _ = Update(keyPress("d"), m)
	require.NotNil(t, m.Confirm)
	assert.Equal(t, model.ConfirmDeleteComment, m.Confirm.Action)
	assert.Equal(t, int64(20), m.Confirm.TargetID)
	assert.Equal(t, int64(10), m.Confirm.ParentID)

	m = pump(m, keyPress("y"))
	assert.Equal(t, 1, f.count("DeleteComment"))
	assert.Equal(t, 2, f.count("ListComments"))
	assert.Empty(t, m.Posts[0].Comments)
	assert.Equal(t, model.FocusPosts, m.Focus)
}

func TestDeletePost_ViewerBlocked(t *testing.T) {
	f := seededAPI()
	m := signIn(f, "bob")
	m, _ = Update(keyPress("tab"), m)

	m, _ = Update(keyPress("d"), m)
	assert.Nil(t, m.Confirm)
	assert.Equal(t, model.StatusBarWarning, m.StatusBarMessageType)
}

func TestDeletePost_AdminReloads(t *testing.T) {
	f := seededAPI()
	m := signIn(f, "alice")
	m, _ = Update(keyPress("tab"), m)

	m, _ = Update(keyPress("d"), m)
	require.NotNil(t, m.Confirm)
	m = pump(m, keyPress("enter"))

	assert.Equal(t, 1, f.count("DeletePost"))
	assert.Equal(t, 2, f.count("ListPostsByEnvironment"))
	assert.Empty(t, m.Posts)
}

func TestAlertSwallowsKeysUntilDismissed(t *testing.T) {
	f := seededAPI()
	m := signIn(f, "alice")
	m.ShowAlert("Oops", "something failed")

	m, _ = Update(keyPress("n"), m)
	assert.Nil(t, m.ActiveForm)
	require.NotNil(t, m.Alert)

	m, _ = Update(keyPress("enter"), m)
	assert.Nil(t, m.Alert)
}

func TestCopyPostDescription(t *testing.T) {
	f := seededAPI()
	m := signIn(f, "bob")
	var copied string
	m.Clipboard = func(s string) error {
		copied = s
		return nil
	}

	m, _ = Update(keyPress("tab"), m)
	m, _ = Update(keyPress("y"), m)
	assert.Equal(t, "rolled out v2", copied)
	assert.Equal(t, model.StatusBarSuccess, m.StatusBarMessageType)
}

func TestLogout(t *testing.T) {
	f := seededAPI()
	m := signIn(f, "alice")

	m = pump(m, keyPress("o"))
	assert.Equal(t, model.ModeLogin, m.CurrentAppMode)
	assert.False(t, m.Session.LoggedIn)
	assert.Empty(t, m.Session.Token)
	assert.Empty(t, m.Board.Environments)
	assert.Nil(t, m.Board.CurrentEnvID)
	assert.Empty(t, m.Posts)
	assert.NotNil(t, m.AuthForm)
	assert.Equal(t, model.AuthFormLogin, m.AuthFormKind)
	assert.Equal(t, 0, f.count("Logout"))
}

func TestLogout_ServerCallWhenConfigured(t *testing.T) {
	f := seededAPI()
	m := newTestModel(f)
	m.ServerLogout = true
	m = pump(m, model.LoginSubmittedMsg{Username: "alice", Password: "pw"})

	m = pump(m, keyPress("o"))
	assert.Equal(t, 1, f.count("Logout"))
	assert.False(t, m.Session.LoggedIn)
}

func TestReloadReconcilesSelection(t *testing.T) {
	f := seededAPI()
	m := signIn(f, "alice")

	f.environments = f.environments[1:]
	m = pump(m, keyPress("r"))

	assert.Equal(t, 2, f.count("ListEnvironments"))
	require.NotNil(t, m.Board.CurrentEnvID)
	assert.Equal(t, int64(2), *m.Board.CurrentEnvID)
	assert.Empty(t, m.Posts)
}

func TestOverlays(t *testing.T) {
	m := signIn(seededAPI(), "alice")

	m, _ = Update(keyPress("?"), m)
	assert.Equal(t, model.ModeHelpOverlay, m.CurrentAppMode)
	m, _ = Update(keyPress("esc"), m)
	assert.Equal(t, model.ModeDashboard, m.CurrentAppMode)

	m, _ = Update(keyPress("L"), m)
	assert.Equal(t, model.ModeLogOverlay, m.CurrentAppMode)
	m, _ = Update(keyPress("L"), m)
	assert.Equal(t, model.ModeDashboard, m.CurrentAppMode)
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(newFakeAPI())
	m, cmd := Update(keyPress("ctrl+c"), m)
	assert.Equal(t, model.ModeQuitting, m.CurrentAppMode)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	d := signIn(seededAPI(), "bob")
	d, cmd = Update(keyPress("q"), d)
	assert.Equal(t, model.ModeQuitting, d.CurrentAppMode)
	require.NotNil(t, cmd)
}

func TestNewLogEntryAppendsToActivityLog(t *testing.T) {
	m := newTestModel(newFakeAPI())
	entry := logging.LogEntry{Timestamp: time.Now(), Level: logging.LevelError, Subsystem: "Posts", Message: "boom"}

	m, _ = Update(model.NewLogEntryMsg{Entry: entry}, m)
	require.Len(t, m.ActivityLog, 1)
	assert.Contains(t, m.ActivityLog[0], "boom")
	assert.False(t, m.ActivityLogDirty)
}

func TestWindowSizeResizesWidgets(t *testing.T) {
	m := newTestModel(newFakeAPI())
	m, _ = Update(tea.WindowSizeMsg{Width: 120, Height: 40}, m)

	assert.Equal(t, 120, m.Width)
	assert.Equal(t, 40, m.Height)
	assert.Equal(t, 120, m.Help.Width)
	assert.Greater(t, m.LogViewport.Width, 0)
	assert.Less(t, m.LogViewport.Height, 40)
}

func TestSortPostsNewestFirst(t *testing.T) {
	at := func(h int) *api.Timestamp {
		return &api.Timestamp{Time: time.Date(2024, 1, 1, h, 0, 0, 0, time.UTC)}
	}
	posts := []api.Post{
		{ID: 1, CreatedAt: at(8)},
		{ID: 2},
		{ID: 3, CreatedAt: at(12)},
		{ID: 4},
		{ID: 5, CreatedAt: at(10)},
	}
	sorted := sortPostsNewestFirst(posts)

	var ids []int64
	for _, p := range sorted {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int64{3, 5, 1, 2, 4}, ids)
	assert.Equal(t, int64(1), posts[0].ID)
}
