package model

import (
	"errors"
	"strings"

	"statusboard/internal/api"
	"statusboard/internal/tui/design"

	"github.com/charmbracelet/huh"
)

// Form field keys.
const (
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldRole        = "role"
	FieldOldPassword = "oldPassword"
	FieldNewPassword = "newPassword"
	FieldName        = "name"
	FieldStatus      = "status"
	FieldSolution    = "solution"
	FieldTitle       = "title"
	FieldType        = "type"
	FieldDescription = "description"
)

const formWidth = 50

func required(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(label + " is required")
		}
		return nil
	}
}

func formTheme() *huh.Theme {
	theme := huh.ThemeCharm()
	theme.Focused.Base = theme.Focused.Base.BorderForeground(design.ColorPrimary)
	theme.Focused.Title = theme.Focused.Title.Foreground(design.ColorPrimary)
	theme.Focused.TextInput.Prompt = theme.Focused.TextInput.Prompt.Foreground(design.ColorPrimary)
	return theme
}

func newForm(fields ...huh.Field) *huh.Form {
	return huh.NewForm(huh.NewGroup(fields...)).
		WithWidth(formWidth).
		WithShowHelp(true).
		WithShowErrors(true).
		WithTheme(formTheme())
}

func statusOptions() []huh.Option[string] {
	names := make([]string, 0, len(api.Statuses))
	for _, s := range api.Statuses {
		names = append(names, string(s))
	}
	return huh.NewOptions(names...)
}

func roleOptions() []huh.Option[string] {
	names := make([]string, 0, len(api.Roles))
	for _, r := range api.Roles {
		names = append(names, string(r))
	}
	return huh.NewOptions(names...)
}

// NewLoginForm builds the username/password form shown at startup.
func NewLoginForm() *huh.Form {
	var username, password string
	return newForm(
		huh.NewInput().
			Key(FieldUsername).
			Title("Username").
			Value(&username).
			Validate(required("username")),
		huh.NewInput().
			Key(FieldPassword).
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&password).
			Validate(required("password")),
	)
}

// NewRegisterForm builds the account registration form.
func NewRegisterForm() *huh.Form {
	var username, password string
	role := string(api.RoleViewer)
	return newForm(
		huh.NewInput().
			Key(FieldUsername).
			Title("Username").
			Value(&username).
			Validate(required("username")),
		huh.NewInput().
			Key(FieldPassword).
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&password).
			Validate(required("password")),
		huh.NewSelect[string]().
			Key(FieldRole).
			Title("Role").
			Options(roleOptions()...).
			Value(&role),
	)
}

// NewChangePasswordForm builds the password change form, prefilled with username.
func NewChangePasswordForm(username string) *huh.Form {
	var oldPassword, newPassword string
	return newForm(
		huh.NewInput().
			Key(FieldUsername).
			Title("Username").
			Value(&username).
			Validate(required("username")),
		huh.NewInput().
			Key(FieldOldPassword).
			Title("Current password").
			EchoMode(huh.EchoModePassword).
			Value(&oldPassword).
			Validate(required("current password")),
		huh.NewInput().
			Key(FieldNewPassword).
			Title("New password").
			EchoMode(huh.EchoModePassword).
			Value(&newPassword).
			Validate(required("new password")),
	)
}

// NewEnvironmentForm builds the environment creation form from draft.
func NewEnvironmentForm(draft api.EnvironmentPayload) *huh.Form {
	name := draft.Name
	status := string(draft.Status.Normalize())
	solution := draft.SolutionName
	return newForm(
		huh.NewInput().
			Key(FieldName).
			Title("Environment name").
			Value(&name).
			Validate(required("name")),
		huh.NewSelect[string]().
			Key(FieldStatus).
			Title("Status").
			Options(statusOptions()...).
			Value(&status),
		huh.NewInput().
			Key(FieldSolution).
			Title("Solution").
			Description("Leave blank for " + api.UnassignedSolution).
			Value(&solution),
	)
}

// NewPostForm builds the post creation form from draft.
func NewPostForm(draft api.PostPayload) *huh.Form {
	title := draft.Title
	postType := draft.Type
	if postType == "" {
		postType = api.PostTypes[0]
	}
	description := draft.Description
	return newForm(
		huh.NewInput().
			Key(FieldTitle).
			Title("Title").
			Value(&title).
			Validate(required("title")),
		huh.NewSelect[string]().
			Key(FieldType).
			Title("Type").
			Options(huh.NewOptions(api.PostTypes...)...).
			Value(&postType),
		huh.NewText().
			Key(FieldDescription).
			Title("Description").
			Lines(4).
			Value(&description),
	)
}

// LoginFromForm reads a completed login form.
func LoginFromForm(f *huh.Form) LoginSubmittedMsg {
	return LoginSubmittedMsg{
		Username: strings.TrimSpace(f.GetString(FieldUsername)),
		Password: f.GetString(FieldPassword),
	}
}

// RegisterFromForm reads a completed registration form.
func RegisterFromForm(f *huh.Form) RegisterSubmittedMsg {
	return RegisterSubmittedMsg{
		Username: strings.TrimSpace(f.GetString(FieldUsername)),
		Password: f.GetString(FieldPassword),
		Role:     api.Role(f.GetString(FieldRole)),
	}
}

// ChangePasswordFromForm reads a completed change password form.
func ChangePasswordFromForm(f *huh.Form) ChangePasswordSubmittedMsg {
	return ChangePasswordSubmittedMsg{
		Username:    strings.TrimSpace(f.GetString(FieldUsername)),
		OldPassword: f.GetString(FieldOldPassword),
		NewPassword: f.GetString(FieldNewPassword),
	}
}

// EnvironmentFromForm reads a completed environment form.
func EnvironmentFromForm(f *huh.Form) EnvironmentSubmittedMsg {
	return EnvironmentSubmittedMsg{
		Name:         strings.TrimSpace(f.GetString(FieldName)),
		Status:       api.Status(f.GetString(FieldStatus)).Normalize(),
		SolutionName: strings.TrimSpace(f.GetString(FieldSolution)),
	}
}

// PostFromForm reads a completed post form.
func PostFromForm(f *huh.Form) PostSubmittedMsg {
	return PostSubmittedMsg{
		Title:       strings.TrimSpace(f.GetString(FieldTitle)),
		Description: strings.TrimSpace(f.GetString(FieldDescription)),
		Type:        f.GetString(FieldType),
	}
}
