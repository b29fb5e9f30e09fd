package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/dmitrymomot/authkit/core/tokenstore"
)

// maxResponseBody caps how much of a reply body is decoded. Auth replies
// are small; anything larger is garbage.
const maxResponseBody = 1 << 20

// Client talks to the backend's authentication API. Every request is
// credentialed: the session cookie is replayed via an in-process cookie
// jar, and when a token store holds a remembered token it is additionally
// sent as a bearer header (the backend accepts either).
//
// The client never writes to the token store; persisting and clearing the
// token is the controller's job.
type Client struct {
	baseURL    string
	basePath   string
	httpClient *http.Client
	tokens     tokenstore.Store
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The caller is
// responsible for attaching a cookie jar if cookie credentialing is
// wanted.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTokenStore attaches a read-only token source for bearer replay.
func WithTokenStore(store tokenstore.Store) Option {
	return func(c *Client) {
		c.tokens = store
	}
}

// WithLogger configures structured logging. If not set, logging is
// discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Client for the backend described by cfg.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, errors.Join(ErrInvalidBaseURL, err)
	}

	basePath := cfg.BasePath
	if basePath == "" {
		basePath = "/api/auth"
	}

	c := &Client{
		baseURL:  strings.TrimRight(base.String(), "/"),
		basePath: strings.TrimRight(basePath, "/"),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		c.httpClient = &http.Client{
			Timeout: cfg.Timeout,
			Jar:     jar,
		}
	}

	return c, nil
}

// CurrentSession probes the backend for the current session's user.
func (c *Client) CurrentSession(ctx context.Context) (Response, error) {
	return c.do(ctx, http.MethodGet, "/me", nil)
}

// Login submits credentials. The backend sets the session cookie on
// success and may additionally return a token in the body.
func (c *Client) Login(ctx context.Context, username, password string) (Response, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}
	return c.do(ctx, http.MethodPost, "/login", body)
}

// Logout notifies the backend that the session ends. The backend clears
// its cookie; local cleanup is the controller's responsibility.
func (c *Client) Logout(ctx context.Context) (Response, error) {
	return c.do(ctx, http.MethodPost, "/logout", nil)
}

// ListUsers fetches all accounts. Admin-only on the backend.
func (c *Client) ListUsers(ctx context.Context) (Response, error) {
	return c.do(ctx, http.MethodGet, "/users", nil)
}

// CreateUserParams describes a new account.
type CreateUserParams struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	DisplayName string `json:"display_name,omitempty"`
}

// CreateUser creates an account. Admin-only on the backend.
func (c *Client) CreateUser(ctx context.Context, params CreateUserParams) (Response, error) {
	return c.do(ctx, http.MethodPost, "/users", params)
}

// DeleteUser removes an account. Admin-only on the backend; the backend
// refuses to delete the caller's own account.
func (c *Client) DeleteUser(ctx context.Context, username string) (Response, error) {
	return c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(username), nil)
}

// SetUserPassword sets another user's password. Admin-only on the backend.
func (c *Client) SetUserPassword(ctx context.Context, username, newPassword string) (Response, error) {
	body := map[string]string{"new_password": newPassword}
	return c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(username)+"/password", body)
}

// ChangeOwnPassword changes the calling user's password.
func (c *Client) ChangeOwnPassword(ctx context.Context, currentPassword, newPassword string) (Response, error) {
	body := map[string]string{
		"current_password": currentPassword,
		"new_password":     newPassword,
	}
	return c.do(ctx, http.MethodPost, "/change-password", body)
}

func (c *Client) do(ctx context.Context, method, path string, body any) (Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return Response{}, fmt.Errorf("authclient: encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + c.basePath + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return Response{}, fmt.Errorf("authclient: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.attachBearer(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.DebugContext(ctx, "auth request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err))
		return Response{}, errors.Join(ErrUnreachable, err)
	}
	defer resp.Body.Close()

	out := Response{StatusCode: resp.StatusCode}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBody)).Decode(&out); err != nil {
		// A malformed body is a server-side defect, not a transport
		// failure; leave the wire fields empty so callers treat it as a
		// rejection.
		c.logger.DebugContext(ctx, "auth response body not decodable",
			slog.String("path", path),
			slog.Int("status_code", resp.StatusCode),
			slog.Any("error", err))
	}
	return out, nil
}

// attachBearer adds an Authorization header when a remembered token
// exists. Store errors (including "nothing stored") just mean no header.
func (c *Client) attachBearer(ctx context.Context, req *http.Request) {
	if c.tokens == nil {
		return
	}
	token, err := c.tokens.Load(ctx)
	if err != nil || token == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
}
