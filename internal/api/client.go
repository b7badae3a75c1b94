package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"statusboard/pkg/logging"

	"github.com/google/uuid"
)

const (
	apiSubsystem = "APIClient"

	defaultBaseURL    = "http://localhost:8080/api"
	defaultLogoutPath = "/auth/logout"
	defaultUserAgent  = "statusboard"
)

// BoardAPI is the set of backend operations the client surfaces use.
type BoardAPI interface {
	Login(ctx context.Context, username, password string) (LoginResult, error)
	Register(ctx context.Context, username, password string, role Role) (string, error)
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) (string, error)
	Logout(ctx context.Context, id Identity, token string) error

	ListEnvironments(ctx context.Context) ([]Environment, error)
	CreateEnvironment(ctx context.Context, id Identity, payload EnvironmentPayload) (Environment, error)
	UpdateEnvironment(ctx context.Context, id Identity, envID int64, payload EnvironmentPayload) (Environment, error)
	DeleteEnvironment(ctx context.Context, id Identity, envID int64) error

	ListPostsByEnvironment(ctx context.Context, envID int64) ([]Post, error)
	CreatePost(ctx context.Context, id Identity, payload PostPayload) (Post, error)
	DeletePost(ctx context.Context, id Identity, postID int64) error

	ListComments(ctx context.Context, postID int64) ([]Comment, error)
	AddComment(ctx context.Context, id Identity, postID int64, payload CommentPayload) (Comment, error)
	DeleteComment(ctx context.Context, id Identity, commentID int64) error
}

// Client is the HTTP implementation of BoardAPI.
// After creation it is immutable and safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	logoutPath string
}

var _ BoardAPI = (*Client)(nil)

// Option customises client instantiation.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithTimeout sets the HTTP client timeout. Zero disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogoutPath sets the path used by Logout.
func WithLogoutPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.logoutPath = "/" + strings.TrimLeft(path, "/")
		}
	}
}

// New constructs a Client pointing at the provided API base URL.
func New(base string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "http://" + trimmed
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("invalid api base url %q: missing host", base)
	}

	c := &Client{
		baseURL:    strings.TrimRight(trimmed, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		userAgent:  defaultUserAgent,
		logoutPath: defaultLogoutPath,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalised base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// newRequest builds a request with the default headers. A nil identity means a read-only call.
func (c *Client) newRequest(ctx context.Context, method, path string, body any, id *Identity) (*http.Request, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id != nil {
		req.Header.Set("X-Role", string(id.Role))
		req.Header.Set("X-User", id.Username)
	}
	return req, nil
}

// send performs req and converts non-2xx responses into *RequestError.
// On success the caller owns the response body.
func (c *Client) send(req *http.Request, op, fallback string) (*http.Response, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Debug(apiSubsystem, "%s %s failed after %s: %v", req.Method, req.URL.Path, time.Since(start), err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	logging.Debug(apiSubsystem, "%s %s -> %d (%s, request %s)", req.Method, req.URL.Path, resp.StatusCode, time.Since(start).Round(time.Millisecond), req.Header.Get("X-Request-ID"))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		msg := readErrorBody(resp.Body)
		if msg == "" {
			msg = fallback
		}
		return nil, &RequestError{Op: op, Status: resp.StatusCode, Message: msg}
	}
	return resp, nil
}

func readErrorBody(body io.Reader) string {
	if body == nil {
		return ""
	}
	data, err := io.ReadAll(io.LimitReader(body, 64<<10))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// doJSON sends a request and decodes a JSON response into out when out is non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, id *Identity, op, fallback string, out any) error {
	req, err := c.newRequest(ctx, method, path, body, id)
	if err != nil {
		return err
	}
	resp, err := c.send(req, op, fallback)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := decodeJSON(resp.Body, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

// decodeJSON decodes r into out. An empty body leaves out untouched.
func decodeJSON(r io.Reader, out any) error {
	if err := json.NewDecoder(r).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// doText sends a request and returns the trimmed response body.
func (c *Client) doText(ctx context.Context, method, path string, body any, op, fallback string) (string, error) {
	req, err := c.newRequest(ctx, method, path, body, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "text/plain, application/json")
	resp, err := c.send(req, op, fallback)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%s: read response: %w", op, err)
	}
	return strings.TrimSpace(string(data)), nil
}
