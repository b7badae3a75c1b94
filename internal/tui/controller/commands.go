package controller

import (
	"context"

	"statusboard/internal/api"
	"statusboard/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// The commands below run one API call each off the update loop and report
// back with a result message. None of them touch the model.

func loginCmd(client api.BoardAPI, username, password string) tea.Cmd {
	return func() tea.Msg {
		res, err := client.Login(context.Background(), username, password)
		return model.LoginResultMsg{Result: res, Err: err}
	}
}

func registerCmd(client api.BoardAPI, username, password string, role api.Role) tea.Cmd {
	return func() tea.Msg {
		msg, err := client.Register(context.Background(), username, password, role)
		return model.RegisterResultMsg{Message: msg, Err: err}
	}
}

func changePasswordCmd(client api.BoardAPI, username, oldPassword, newPassword string) tea.Cmd {
	return func() tea.Msg {
		msg, err := client.ChangePassword(context.Background(), username, oldPassword, newPassword)
		return model.ChangePasswordResultMsg{Message: msg, Err: err}
	}
}

func logoutCmd(client api.BoardAPI, id api.Identity, token string) tea.Cmd {
	return func() tea.Msg {
		err := client.Logout(context.Background(), id, token)
		return model.LogoutResultMsg{Username: id.Username, Err: err}
	}
}

func fetchEnvironmentsCmd(client api.BoardAPI, gen uint64) tea.Cmd {
	return func() tea.Msg {
		envs, err := client.ListEnvironments(context.Background())
		return model.EnvironmentsLoadedMsg{Gen: gen, Environments: envs, Err: err}
	}
}

func createEnvironmentCmd(client api.BoardAPI, gen uint64, id api.Identity, payload api.EnvironmentPayload) tea.Cmd {
	return func() tea.Msg {
		env, err := client.CreateEnvironment(context.Background(), id, payload)
		return model.EnvironmentCreatedMsg{Gen: gen, Environment: env, Err: err}
	}
}

func updateEnvironmentCmd(client api.BoardAPI, gen uint64, id api.Identity, envID int64, payload api.EnvironmentPayload) tea.Cmd {
	return func() tea.Msg {
		env, err := client.UpdateEnvironment(context.Background(), id, envID, payload)
		return model.EnvironmentUpdatedMsg{Gen: gen, Environment: env, Err: err}
	}
}

func deleteEnvironmentCmd(client api.BoardAPI, gen uint64, id api.Identity, envID int64) tea.Cmd {
	return func() tea.Msg {
		err := client.DeleteEnvironment(context.Background(), id, envID)
		return model.EnvironmentDeletedMsg{Gen: gen, ID: envID, Err: err}
	}
}

func fetchPostsCmd(client api.BoardAPI, gen uint64, envID int64) tea.Cmd {
	return func() tea.Msg {
		posts, err := client.ListPostsByEnvironment(context.Background(), envID)
		return model.PostsLoadedMsg{Gen: gen, EnvID: envID, Posts: posts, Err: err}
	}
}

func createPostCmd(client api.BoardAPI, gen uint64, id api.Identity, payload api.PostPayload) tea.Cmd {
	return func() tea.Msg {
		post, err := client.CreatePost(context.Background(), id, payload)
		return model.PostCreatedMsg{Gen: gen, EnvID: payload.EnvironmentID, Post: post, Err: err}
	}
}

func deletePostCmd(client api.BoardAPI, gen uint64, id api.Identity, postID int64) tea.Cmd {
	return func() tea.Msg {
		err := client.DeletePost(context.Background(), id, postID)
		return model.PostDeletedMsg{Gen: gen, ID: postID, Err: err}
	}
}

func fetchCommentsCmd(client api.BoardAPI, gen uint64, postID int64) tea.Cmd {
	return func() tea.Msg {
		comments, err := client.ListComments(context.Background(), postID)
		return model.CommentsLoadedMsg{Gen: gen, PostID: postID, Comments: comments, Err: err}
	}
}

func addCommentCmd(client api.BoardAPI, gen uint64, id api.Identity, postID int64, payload api.CommentPayload) tea.Cmd {
	return func() tea.Msg {
		c, err := client.AddComment(context.Background(), id, postID, payload)
		return model.CommentAddedMsg{Gen: gen, PostID: postID, Comment: c, Err: err}
	}
}

func deleteCommentCmd(client api.BoardAPI, gen uint64, id api.Identity, postID, commentID int64) tea.Cmd {
	return func() tea.Msg {
		err := client.DeleteComment(context.Background(), id, commentID)
		return model.CommentDeletedMsg{Gen: gen, PostID: postID, CommentID: commentID, Err: err}
	}
}
