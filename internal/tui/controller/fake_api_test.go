package controller

import (
	"context"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"statusboard/internal/api"
	"statusboard/internal/tui/model"
	"statusboard/pkg/logging"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func TestMain(m *testing.M) {
	logging.InitForCLI(logging.LevelError, io.Discard)
	os.Exit(m.Run())
}

// fakeAPI is an in-memory BoardAPI that records every call.
type fakeAPI struct {
	mu sync.Mutex

	users        map[string]api.LoginResult
	passwords    map[string]string
	environments []api.Environment
	posts        map[int64][]api.Post
	comments     map[int64][]api.Comment
	nextID       int64

	failCreateEnv  error
	failAddComment error

	calls []string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		users: map[string]api.LoginResult{
			"alice": {Username: "alice", Role: api.RoleAdmin, Token: "tok-alice"},
			"bob":   {Username: "bob", Role: api.RoleViewer, Token: "tok-bob"},
		},
		passwords: map[string]string{"alice": "pw", "bob": "pw"},
		posts:     map[int64][]api.Post{},
		comments:  map[int64][]api.Comment{},
		nextID:    100,
	}
}

func (f *fakeAPI) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeAPI) count(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeAPI) Login(_ context.Context, username, password string) (api.LoginResult, error) {
	f.record("Login")
	res, ok := f.users[username]
	if !ok || f.passwords[username] != password {
		return api.LoginResult{}, api.ErrInvalidCredentials
	}
	return res, nil
}

func (f *fakeAPI) Register(_ context.Context, username, password string, role api.Role) (string, error) {
	f.record("Register")
	if _, exists := f.users[username]; exists {
		return "", &api.RequestError{Op: "register", Status: 409, Message: "Username already exists"}
	}
	f.users[username] = api.LoginResult{Username: username, Role: role, Token: "tok-" + username}
	f.passwords[username] = password
	return "User registered", nil
}

func (f *fakeAPI) ChangePassword(_ context.Context, username, oldPassword, newPassword string) (string, error) {
	f.record("ChangePassword")
	if f.passwords[username] != oldPassword {
		return "", &api.RequestError{Op: "change password", Status: 400, Message: "Password change failed"}
	}
	f.passwords[username] = newPassword
	return "Password updated", nil
}

func (f *fakeAPI) Logout(context.Context, api.Identity, string) error {
	f.record("Logout")
	return nil
}

func (f *fakeAPI) ListEnvironments(context.Context) ([]api.Environment, error) {
	f.record("ListEnvironments")
	return append([]api.Environment(nil), f.environments...), nil
}

func (f *fakeAPI) CreateEnvironment(_ context.Context, _ api.Identity, p api.EnvironmentPayload) (api.Environment, error) {
	f.record("CreateEnvironment")
	if f.failCreateEnv != nil {
		return api.Environment{}, f.failCreateEnv
	}
	f.nextID++
	env := api.Environment{ID: f.nextID, Name: p.Name, Status: p.Status}
	if p.SolutionName != "" {
		s := p.SolutionName
		env.SolutionName = &s
	}
	f.environments = append(f.environments, env)
	return env, nil
}

func (f *fakeAPI) UpdateEnvironment(_ context.Context, _ api.Identity, envID int64, p api.EnvironmentPayload) (api.Environment, error) {
	f.record("UpdateEnvironment")
	for i, env := range f.environments {
		if env.ID == envID {
			env.Name = p.Name
			env.Status = p.Status
			f.environments[i] = env
			return env, nil
		}
	}
	return api.Environment{}, &api.RequestError{Op: "update environment", Status: 404}
}

func (f *fakeAPI) DeleteEnvironment(_ context.Context, _ api.Identity, envID int64) error {
	f.record("DeleteEnvironment")
	for i, env := range f.environments {
		if env.ID == envID {
			f.environments = append(f.environments[:i], f.environments[i+1:]...)
			return nil
		}
	}
	return &api.RequestError{Op: "delete environment", Status: 404, Message: "Failed to delete environment"}
}

func (f *fakeAPI) ListPostsByEnvironment(_ context.Context, envID int64) ([]api.Post, error) {
	f.record("ListPostsByEnvironment")
	return append([]api.Post(nil), f.posts[envID]...), nil
}

func (f *fakeAPI) CreatePost(_ context.Context, _ api.Identity, p api.PostPayload) (api.Post, error) {
	f.record("CreatePost")
	f.nextID++
	author := p.CreatedBy
	post := api.Post{ID: f.nextID, Title: p.Title, Description: p.Description, Type: p.Type, CreatedBy: &author}
	f.posts[p.EnvironmentID] = append(f.posts[p.EnvironmentID], post)
	return post, nil
}

func (f *fakeAPI) DeletePost(_ context.Context, _ api.Identity, postID int64) error {
	f.record("DeletePost")
	for envID, posts := range f.posts {
		for i, p := range posts {
			if p.ID == postID {
				f.posts[envID] = append(posts[:i], posts[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

func (f *fakeAPI) ListComments(_ context.Context, postID int64) ([]api.Comment, error) {
	f.record("ListComments")
	return append([]api.Comment(nil), f.comments[postID]...), nil
}

func (f *fakeAPI) AddComment(_ context.Context, _ api.Identity, postID int64, p api.CommentPayload) (api.Comment, error) {
	f.record("AddComment")
	if f.failAddComment != nil {
		return api.Comment{}, f.failAddComment
	}
	f.nextID++
	c := api.Comment{ID: f.nextID, Text: p.Text, Author: p.Author}
	f.comments[postID] = append(f.comments[postID], c)
	return c, nil
}

func (f *fakeAPI) DeleteComment(_ context.Context, _ api.Identity, commentID int64) error {
	f.record("DeleteComment")
	for postID, comments := range f.comments {
		for i, c := range comments {
			if c.ID == commentID {
				f.comments[postID] = append(comments[:i], comments[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

// runCmd executes cmd and flattens batches. Commands that block (ticks,
// cursor blinks) are abandoned after a short wait.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, runCmd(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

// pump feeds msg to Update and keeps feeding the resulting messages until the queue drains.
func pump(m *model.Model, msg tea.Msg) *model.Model {
	queue := []tea.Msg{msg}
	for i := 0; len(queue) > 0 && i < 100; i++ {
		next := queue[0]
		queue = queue[1:]

		var cmd tea.Cmd
		m, cmd = Update(next, m)
		for _, out := range runCmd(cmd) {
			switch out.(type) {
			case spinner.TickMsg, model.ClearStatusBarMsg:
				continue
			}
			queue = append(queue, out)
		}
	}
	return m
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+p":
		return tea.KeyMsg{Type: tea.KeyCtrlP}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(f *fakeAPI) *model.Model {
	m := model.InitialModel(f, model.Options{}, nil)
	m.Width = 160
	m.Height = 48
	return m
}

// signIn logs in through the controller and drains the resulting loads.
func signIn(f *fakeAPI, username string) *model.Model {
	m := newTestModel(f)
	return pump(m, model.LoginSubmittedMsg{Username: username, Password: "pw"})
}

func solution(s string) *string { return &s }
