package api

import (
	"context"
	"fmt"
	"net/http"
)

// ListEnvironments returns all environments in server order.
func (c *Client) ListEnvironments(ctx context.Context) ([]Environment, error) {
	var envs []Environment
	if err := c.doJSON(ctx, http.MethodGet, "/environments", nil, nil,
		"list environments", "Failed to load environments", &envs); err != nil {
		return nil, err
	}
	return envs, nil
}

// CreateEnvironment creates an environment and returns the stored record.
func (c *Client) CreateEnvironment(ctx context.Context, id Identity, payload EnvironmentPayload) (Environment, error) {
	var env Environment
	err := c.doJSON(ctx, http.MethodPost, "/environments", payload, &id,
		"create environment", "Failed to create environment", &env)
	return env, err
}

// UpdateEnvironment replaces the full environment record.
func (c *Client) UpdateEnvironment(ctx context.Context, id Identity, envID int64, payload EnvironmentPayload) (Environment, error) {
	var env Environment
	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/environments/%d", envID), payload, &id,
		"update environment", "Failed to update environment", &env)
	if err == nil && env.ID == 0 {
		// Some backends answer 200 with an empty body; fall back to what was sent.
		env = Environment{ID: envID, Name: payload.Name, Status: payload.Status}
		if payload.SolutionName != "" {
			solution := payload.SolutionName
			env.SolutionName = &solution
		}
	}
	return env, err
}

// DeleteEnvironment removes an environment. The server cascades to its posts and comments.
func (c *Client) DeleteEnvironment(ctx context.Context, id Identity, envID int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/environments/%d", envID), nil, &id,
		"delete environment", "Failed to delete environment", nil)
}
