package controller

import (
	"strings"

	"statusboard/internal/api"
	"statusboard/internal/state"
	"statusboard/internal/tui/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// toggleComments expands or collapses the focused card. The first expansion fetches its comments.
func toggleComments(m *model.Model) (*model.Model, tea.Cmd) {
	card, ok := m.FocusedPost()
	if !ok {
		return m, nil
	}
	card.Expanded = !card.Expanded
	if !card.Expanded {
		if m.Focus == model.FocusComments {
			m.Focus = model.FocusPosts
		}
		return m, nil
	}
	if card.Loaded || card.Loading {
		return m, nil
	}
	card.Loading = true
	card.LoadFailed = false
	return m, fetchCommentsCmd(m.API, m.SessionGen, card.Post.ID)
}

func handleCommentsLoaded(m *model.Model, msg model.CommentsLoadedMsg) (*model.Model, tea.Cmd) {
	idx := m.CardIndex(msg.PostID)
	if fromOtherSession(m, msg.Gen) || idx < 0 {
		LogDebug(m, commentSubsystem, "Dropping comments for post %d, card no longer shown", msg.PostID)
		return m, nil
	}
	card := &m.Posts[idx]
	card.Loading = false
	if msg.Err != nil {
		card.LoadFailed = true
		card.Loaded = false
		reportFailure(m, commentSubsystem, "Failed to load comments", msg.Err)
		return m, nil
	}
	card.Comments = msg.Comments
	card.Loaded = true
	card.LoadFailed = false
	card.CommentIndex = clamp(card.CommentIndex, len(card.Comments))
	if len(card.Comments) == 0 && m.Focus == model.FocusComments && idx == m.PostCursor {
		m.Focus = model.FocusPosts
	}
	LogDebug(m, commentSubsystem, "Loaded %d comments for post %d", len(msg.Comments), msg.PostID)
	return m, nil
}

func openCommentInput(m *model.Model) (*model.Model, tea.Cmd) {
	card, ok := m.FocusedPost()
	if !ok || m.Focus == model.FocusEnvironments {
		return m, m.SetStatusMessage("Focus a post to comment on", model.StatusBarWarning, 0)
	}
	if !m.Session.Can(state.CapAddComment) {
		return m, notPermitted(m, state.CapAddComment)
	}
	if m.ActiveForm != nil {
		m.CloseForm()
	}
	m.CommentInput.Reset()
	m.CommentInputActive = true
	m.CommentTargetPostID = card.Post.ID
	m.CommentPending = false
	return m, tea.Batch(m.CommentInput.Focus(), textinput.Blink)
}

func handleCommentSubmitted(m *model.Model, msg model.CommentSubmittedMsg) (*model.Model, tea.Cmd) {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return m, m.SetStatusMessage("Comment is empty", model.StatusBarWarning, 0)
	}
	if m.CardIndex(msg.PostID) < 0 {
		LogDebug(m, commentSubsystem, "Comment target %d no longer shown", msg.PostID)
		m.CloseCommentInput()
		return m, nil
	}
	m.CommentPending = true
	LogInfo(commentSubsystem, "Adding comment to post %d", msg.PostID)
	payload := api.CommentPayload{Text: text, Author: m.Session.Username}
	return m, addCommentCmd(m.API, m.SessionGen, m.Session.Identity(), msg.PostID, payload)
}

func handleCommentAdded(m *model.Model, msg model.CommentAddedMsg) (*model.Model, tea.Cmd) {
	if fromOtherSession(m, msg.Gen) {
		return m, nil
	}
	if msg.Err != nil {
		m.CommentPending = false
		reportFailure(m, commentSubsystem, "Failed to add comment", msg.Err)
		return m, nil
	}
	if m.CommentTargetPostID == msg.PostID {
		m.CloseCommentInput()
	}
	LogInfo(commentSubsystem, "Added comment %d to post %d", msg.Comment.ID, msg.PostID)
	statusCmd := m.SetStatusMessage("Comment added", model.StatusBarSuccess, 0)
	return m, tea.Batch(statusCmd, refetchComments(m, msg.PostID))
}

func handleCommentDeleted(m *model.Model, msg model.CommentDeletedMsg) (*model.Model, tea.Cmd) {
	if fromOtherSession(m, msg.Gen) {
		return m, nil
	}
	if msg.Err != nil {
		reportFailure(m, commentSubsystem, "Failed to delete comment", msg.Err)
		return m, nil
	}
	LogInfo(commentSubsystem, "Deleted comment %d", msg.CommentID)
	statusCmd := m.SetStatusMessage("Comment deleted", model.StatusBarSuccess, 0)
	return m, tea.Batch(statusCmd, refetchComments(m, msg.PostID))
}

// refetchComments reloads a card's comment list from the server and expands it.
func refetchComments(m *model.Model, postID int64) tea.Cmd {
	idx := m.CardIndex(postID)
	if idx < 0 {
		return nil
	}
	card := &m.Posts[idx]
	card.Expanded = true
	card.Loading = true
	card.LoadFailed = false
	return fetchCommentsCmd(m.API, m.SessionGen, postID)
}
