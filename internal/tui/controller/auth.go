package controller

import (
	"errors"
	"fmt"
	"strings"

	"statusboard/internal/api"
	"statusboard/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	invalidCredentialsText = "Invalid username or password."
	registeredText         = "Registration successful. You can now sign in."
	passwordChangedText    = "Password changed."
)

func handleLoginSubmitted(m *model.Model, msg model.LoginSubmittedMsg) (*model.Model, tea.Cmd) {
	if strings.TrimSpace(msg.Username) == "" || msg.Password == "" {
		return showAuthForm(m, model.AuthFormLogin, "Username and password are required.", true)
	}
	m.AuthPending = true
	m.AuthNotice = ""
	LogInfo(authSubsystem, "Signing in as %s", msg.Username)
	return m, loginCmd(m.API, msg.Username, msg.Password)
}

func handleLoginResult(m *model.Model, msg model.LoginResultMsg) (*model.Model, tea.Cmd) {
	m.AuthPending = false
	if msg.Err != nil {
		notice := msg.Err.Error()
		if errors.Is(msg.Err, api.ErrInvalidCredentials) {
			notice = invalidCredentialsText
		}
		LogError(authSubsystem, msg.Err, "Sign in failed")
		return showAuthForm(m, model.AuthFormLogin, notice, true)
	}

	m.Session.Establish(msg.Result.Username, msg.Result.Role, msg.Result.Token)
	m.SessionGen++
	m.Board.Reset()
	m.ClearPosts()
	m.CloseForm()
	m.CloseCommentInput()
	m.AuthForm = nil
	m.AuthNotice = ""
	m.Focus = model.FocusEnvironments
	m.EnvCursor = 0
	m.CurrentAppMode = model.ModeDashboard
	m.LastAppMode = model.ModeDashboard

	LogInfo(authSubsystem, "Signed in as %s (%s)", m.Session.Username, m.Session.Role)
	statusCmd := m.SetStatusMessage(fmt.Sprintf("Signed in as %s", m.Session.Username), model.StatusBarSuccess, 0)
	return m, tea.Batch(statusCmd, loadEnvironments(m))
}

func handleRegisterSubmitted(m *model.Model, msg model.RegisterSubmittedMsg) (*model.Model, tea.Cmd) {
	if strings.TrimSpace(msg.Username) == "" || msg.Password == "" {
		return showAuthForm(m, model.AuthFormRegister, "Username and password are required.", true)
	}
	role := msg.Role
	if role == "" {
		role = api.RoleViewer
	}
	m.AuthPending = true
	m.AuthNotice = ""
	LogInfo(authSubsystem, "Registering %s as %s", msg.Username, role)
	return m, registerCmd(m.API, msg.Username, msg.Password, role)
}

func handleRegisterResult(m *model.Model, msg model.RegisterResultMsg) (*model.Model, tea.Cmd) {
	if msg.Err != nil {
		LogError(authSubsystem, msg.Err, "Registration failed")
		return showAuthForm(m, model.AuthFormRegister, msg.Err.Error(), true)
	}
	notice := strings.TrimSpace(msg.Message)
	if notice == "" {
		notice = registeredText
	}
	LogInfo(authSubsystem, "Registration succeeded: %s", notice)
	return showAuthForm(m, model.AuthFormLogin, notice, false)
}

// handleChangePasswordSubmitted serves both the login screen and the dashboard form.
func handleChangePasswordSubmitted(m *model.Model, msg model.ChangePasswordSubmittedMsg) (*model.Model, tea.Cmd) {
	if strings.TrimSpace(msg.Username) == "" || msg.OldPassword == "" || msg.NewPassword == "" {
		const text = "Username, current and new password are required."
		if m.CurrentAppMode == model.ModeLogin {
			return showAuthForm(m, model.AuthFormChangePassword, text, true)
		}
		m.ShowAlert("Change password", text)
		return openForm(m, model.FormChangePassword, model.NewChangePasswordForm(m.Session.Username))
	}
	if m.CurrentAppMode == model.ModeLogin {
		m.AuthPending = true
		m.AuthNotice = ""
	} else {
		m.FormPending = true
	}
	LogInfo(authSubsystem, "Changing password for %s", msg.Username)
	return m, changePasswordCmd(m.API, msg.Username, msg.OldPassword, msg.NewPassword)
}

func handleChangePasswordResult(m *model.Model, msg model.ChangePasswordResultMsg) (*model.Model, tea.Cmd) {
	notice := strings.TrimSpace(msg.Message)
	if notice == "" {
		notice = passwordChangedText
	}

	if m.CurrentAppMode == model.ModeLogin {
		if msg.Err != nil {
			LogError(authSubsystem, msg.Err, "Password change failed")
			return showAuthForm(m, model.AuthFormChangePassword, msg.Err.Error(), true)
		}
		LogInfo(authSubsystem, "Password changed")
		return showAuthForm(m, model.AuthFormLogin, notice, false)
	}

	if m.ActiveFormKind != model.FormChangePassword {
		LogDebug(m, authSubsystem, "Dropping password change result, form already closed")
		return m, nil
	}
	if msg.Err != nil {
		LogError(authSubsystem, msg.Err, "Password change failed")
		m.ShowAlert("Password change failed", msg.Err.Error())
		return openForm(m, model.FormChangePassword, model.NewChangePasswordForm(m.Session.Username))
	}
	m.CloseForm()
	LogInfo(authSubsystem, "Password changed")
	return m, m.SetStatusMessage(notice, model.StatusBarSuccess, 0)
}

// logout discards the session client-side and returns to the login screen.
// The server call, when configured, runs in the background and cannot block it.
func logout(m *model.Model) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.ServerLogout && m.Session.Token != "" {
		cmds = append(cmds, logoutCmd(m.API, m.Session.Identity(), m.Session.Token))
	}
	username := m.Session.Username

	m.Session.Clear()
	m.SessionGen++
	m.Board.Reset()
	m.ClearPosts()
	m.CloseForm()
	m.CloseCommentInput()
	m.EnvDraft = emptyEnvDraft()
	m.PostDraft = emptyPostDraft()
	m.EnvironmentsState = model.LoadIdle
	m.EnvCursor = 0
	m.Focus = model.FocusEnvironments
	m.Alert = nil
	m.Confirm = nil
	m.CurrentAppMode = model.ModeLogin
	m.LastAppMode = model.ModeLogin

	LogInfo(authSubsystem, "Signed out %s", username)
	var formCmd tea.Cmd
	m, formCmd = showAuthForm(m, model.AuthFormLogin, "Signed out.", false)
	cmds = append(cmds, formCmd)
	return m, tea.Batch(cmds...)
}

func handleLogoutResult(m *model.Model, msg model.LogoutResultMsg) (*model.Model, tea.Cmd) {
	if msg.Err != nil {
		LogWarn(authSubsystem, "Server logout for %s failed, token discarded locally: %v", msg.Username, msg.Err)
		return m, nil
	}
	LogDebug(m, authSubsystem, "Server logout for %s acknowledged", msg.Username)
	return m, nil
}
