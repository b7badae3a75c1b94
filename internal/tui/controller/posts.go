package controller

import (
	"fmt"
	"sort"
	"strings"

	"statusboard/internal/api"
	"statusboard/internal/state"
	"statusboard/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

func emptyPostDraft() api.PostPayload {
	return api.PostPayload{Type: api.PostTypes[0]}
}

// sortPostsNewestFirst orders posts by creation time, newest first.
// Undated posts keep their relative order after the dated ones.
func sortPostsNewestFirst(posts []api.Post) []api.Post {
	out := make([]api.Post, len(posts))
	copy(out, posts)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].CreatedAt, out[j].CreatedAt
		if a == nil || a.IsZero() {
			return false
		}
		if b == nil || b.IsZero() {
			return true
		}
		return a.After(b.Time)
	})
	return out
}

func handlePostsLoaded(m *model.Model, msg model.PostsLoadedMsg) (*model.Model, tea.Cmd) {
	if fromOtherSession(m, msg.Gen) || !m.Board.IsCurrent(msg.EnvID) {
		LogDebug(m, postSubsystem, "Dropping posts for environment %d, no longer selected", msg.EnvID)
		return m, nil
	}
	if msg.Err != nil {
		m.PostsState = model.LoadFailed
		m.Posts = nil
		reportFailure(m, postSubsystem, "Failed to load posts", msg.Err)
		return m, nil
	}

	// Rebuilding the cards drops every cached comment list.
	posts := sortPostsNewestFirst(msg.Posts)
	cards := make([]model.PostCard, len(posts))
	for i, p := range posts {
		cards[i] = model.PostCard{Post: p}
	}
	m.Posts = cards
	m.PostsState = model.LoadDone
	m.PostCursor = clamp(m.PostCursor, len(cards))
	if m.Focus == model.FocusComments {
		m.Focus = model.FocusPosts
	}
	if m.CommentInputActive && m.CardIndex(m.CommentTargetPostID) < 0 {
		m.CloseCommentInput()
	}
	LogDebug(m, postSubsystem, "Loaded %d posts for environment %d", len(cards), msg.EnvID)
	return m, nil
}

// togglePostForm opens the post form for the current environment, or closes it.
func togglePostForm(m *model.Model) (*model.Model, tea.Cmd) {
	if m.ActiveFormKind == model.FormPost {
		m.CloseForm()
		return m, nil
	}
	if _, ok := m.Board.Current(); !ok {
		return m, m.SetStatusMessage("Select an environment first", model.StatusBarWarning, 0)
	}
	if !m.Session.Can(state.CapCreatePost) {
		return m, notPermitted(m, state.CapCreatePost)
	}
	if m.PostDraft.Type == "" {
		m.PostDraft = emptyPostDraft()
	}
	return openForm(m, model.FormPost, model.NewPostForm(m.PostDraft))
}

func handlePostSubmitted(m *model.Model, msg model.PostSubmittedMsg) (*model.Model, tea.Cmd) {
	env, ok := m.Board.Current()
	if !ok {
		LogDebug(m, postSubsystem, "Post submitted without a selected environment, ignoring")
		if m.ActiveFormKind == model.FormPost {
			m.CloseForm()
		}
		return m, nil
	}

	postType := msg.Type
	if postType == "" {
		postType = api.PostTypes[0]
	}
	m.PostDraft = api.PostPayload{
		Title:         strings.TrimSpace(msg.Title),
		Description:   strings.TrimSpace(msg.Description),
		Type:          postType,
		EnvironmentID: env.ID,
		CreatedBy:     m.Session.Username,
	}
	if m.PostDraft.Title == "" {
		m.ShowAlert("Missing title", "Title is required.")
		return openForm(m, model.FormPost, model.NewPostForm(m.PostDraft))
	}

	m.FormPending = true
	LogInfo(postSubsystem, "Creating post %q in %s", m.PostDraft.Title, env.Name)
	return m, createPostCmd(m.API, m.SessionGen, m.Session.Identity(), m.PostDraft)
}

func handlePostCreated(m *model.Model, msg model.PostCreatedMsg) (*model.Model, tea.Cmd) {
	if fromOtherSession(m, msg.Gen) {
		return m, nil
	}
	if msg.Err != nil {
		reportFailure(m, postSubsystem, "Failed to create post", msg.Err)
		if m.ActiveFormKind == model.FormPost {
			return openForm(m, model.FormPost, model.NewPostForm(m.PostDraft))
		}
		return m, nil
	}

	if m.ActiveFormKind == model.FormPost {
		m.CloseForm()
	}
	m.PostDraft = emptyPostDraft()
	LogInfo(postSubsystem, "Created post %d", msg.Post.ID)
	statusCmd := m.SetStatusMessage("Post created", model.StatusBarSuccess, 0)
	if !m.Board.IsCurrent(msg.EnvID) {
		return m, statusCmd
	}
	m.PostCursor = 0
	return m, tea.Batch(statusCmd, loadPosts(m))
}

func handlePostDeleted(m *model.Model, msg model.PostDeletedMsg) (*model.Model, tea.Cmd) {
	if fromOtherSession(m, msg.Gen) {
		return m, nil
	}
	if msg.Err != nil {
		reportFailure(m, postSubsystem, "Failed to delete post", msg.Err)
		return m, nil
	}
	LogInfo(postSubsystem, "Deleted post %d", msg.ID)
	statusCmd := m.SetStatusMessage(fmt.Sprintf("Post #%d deleted", msg.ID), model.StatusBarSuccess, 0)
	return m, tea.Batch(statusCmd, loadPosts(m))
}
