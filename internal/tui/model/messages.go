package model

import (
	"statusboard/internal/api"
	"statusboard/pkg/logging"
)

// ---- Authentication ----

type LoginSubmittedMsg struct {
	Username string
	Password string
}

type LoginResultMsg struct {
	Result api.LoginResult
	Err    error
}

type RegisterSubmittedMsg struct {
	Username string
	Password string
	Role     api.Role
}

type RegisterResultMsg struct {
	Message string
	Err     error
}

type ChangePasswordSubmittedMsg struct {
	Username    string
	OldPassword string
	NewPassword string
}

type ChangePasswordResultMsg struct {
	Message string
	Err     error
}

type LogoutResultMsg struct {
	Username string
	Err      error
}

// ---- Environments ----
//
// Every data result carries Gen, the session generation it was requested
// under. Results from another generation are dropped.

type EnvironmentsLoadedMsg struct {
	Gen uint64

	Environments []api.Environment
	Err          error
}

type EnvironmentSubmittedMsg struct {
	Name         string
	Status       api.Status
	SolutionName string
}

type EnvironmentCreatedMsg struct {
	Gen uint64

	Environment api.Environment
	Err         error
}

type EnvironmentUpdatedMsg struct {
	Gen uint64

	Environment api.Environment
	Err         error
}

type EnvironmentDeletedMsg struct {
	Gen uint64

	ID  int64
	Err error
}

// ---- Posts ----

type PostsLoadedMsg struct {
	Gen uint64

	EnvID int64
	Posts []api.Post
	Err   error
}

type PostSubmittedMsg struct {
	Title       string
	Description string
	Type        string
}

type PostCreatedMsg struct {
	Gen uint64

	EnvID int64
	Post  api.Post
	Err   error
}

type PostDeletedMsg struct {
	Gen uint64

	ID  int64
	Err error
}

// ---- Comments ----

type CommentsLoadedMsg struct {
	Gen uint64

	PostID   int64
	Comments []api.Comment
	Err      error
}

type CommentSubmittedMsg struct {
	PostID int64
	Text   string
}

type CommentAddedMsg struct {
	Gen uint64

	PostID  int64
	Comment api.Comment
	Err     error
}

type CommentDeletedMsg struct {
	Gen uint64

	PostID    int64
	CommentID int64
	Err       error
}

// ---- Log / status bar ----

type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

type ClearStatusBarMsg struct{}
