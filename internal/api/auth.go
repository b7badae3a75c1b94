package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

type changePasswordRequest struct {
	Username    string `json:"username"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// Login exchanges credentials for a session. Any non-2xx response is ErrInvalidCredentials.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/login", loginRequest{Username: username, Password: password}, nil)
	if err != nil {
		return LoginResult{}, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return LoginResult{}, fmt.Errorf("login: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return LoginResult{}, ErrInvalidCredentials
	}

	var result LoginResult
	if err := decodeJSON(resp.Body, &result); err != nil {
		return LoginResult{}, fmt.Errorf("login: decode response: %w", err)
	}
	if result.Username == "" {
		result.Username = username
	}
	return result, nil
}

// Register creates a user account and returns the server's confirmation text.
func (c *Client) Register(ctx context.Context, username, password string, role Role) (string, error) {
	return c.doText(ctx, http.MethodPost, "/auth/register",
		registerRequest{Username: username, Password: password, Role: role},
		"register", "Registration failed")
}

// ChangePassword updates a user's password and returns the server's confirmation text.
func (c *Client) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) (string, error) {
	return c.doText(ctx, http.MethodPost, "/auth/change-password",
		changePasswordRequest{Username: username, OldPassword: oldPassword, NewPassword: newPassword},
		"change password", "Password change failed")
}

// Logout asks the server to invalidate token. Only used when server logout is enabled.
func (c *Client) Logout(ctx context.Context, id Identity, token string) error {
	req, err := c.newRequest(ctx, http.MethodPost, c.logoutPath, nil, &id)
	if err != nil {
		return err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := c.send(req, "logout", "Logout failed")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
