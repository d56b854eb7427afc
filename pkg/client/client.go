// Package client is the programmatic consumer of the portfolio API:
// the admin panel and the public site embed it instead of talking raw
// HTTP. It carries the session cookie, caches the portfolio record and
// propagates writes to other live views through an invalidation
// channel.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/portfolio/backend/internal/model"
)

// RequestTimeout bounds every outbound call. A fetch that exceeds it is
// aborted and surfaces as an error; no partial results are returned.
const RequestTimeout = 10 * time.Second

// ErrUnauthorized is returned when the server rejects the session
// (missing, invalid or expired). Callers redirect to login on it.
var ErrUnauthorized = errors.New("unauthorized")

// Client talks to the portfolio API. The cookie jar holds the session
// cookie between calls, mirroring a browser.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the API at baseURL (no trailing slash).
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Jar:     jar,
			Timeout: RequestTimeout,
		},
	}, nil
}

// User identifies the logged-in admin.
type User struct {
	Email string `json:"email"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

// Login authenticates and stores the session cookie in the jar.
func (c *Client) Login(ctx context.Context, email, password string) (User, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return User{}, err
	}
	return resp.User, nil
}

type verifyResponse struct {
	Authenticated bool  `json:"authenticated"`
	User          *User `json:"user"`
}

// Verify reports whether the current session is still valid.
func (c *Client) Verify(ctx context.Context) (User, bool, error) {
	var resp verifyResponse
	err := c.do(ctx, http.MethodGet, "/api/auth/verify", nil, &resp)
	if errors.Is(err, ErrUnauthorized) {
		return User{}, false, nil
	}
	if err != nil {
		return User{}, false, err
	}
	if resp.User == nil {
		return User{}, resp.Authenticated, nil
	}
	return *resp.User, resp.Authenticated, nil
}

// Logout discards the session server-side. It succeeds even when no
// session exists.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

// FetchPortfolio reads the portfolio record.
func (c *Client) FetchPortfolio(ctx context.Context) (*model.PortfolioRecord, error) {
	var record model.PortfolioRecord
	if err := c.do(ctx, http.MethodGet, "/api/portfolio", nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// SavePortfolio replaces the whole stored record. The record must be
// complete; fields left out are lost.
func (c *Client) SavePortfolio(ctx context.Context, record *model.PortfolioRecord) error {
	return c.do(ctx, http.MethodPut, "/api/portfolio", record, nil)
}

// FetchMessages reads the inbox (admin only).
func (c *Client) FetchMessages(ctx context.Context) ([]model.Message, error) {
	var messages []model.Message
	if err := c.do(ctx, http.MethodGet, "/api/messages", nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// SaveMessages replaces the whole inbox (admin only).
func (c *Client) SaveMessages(ctx context.Context, msgs []model.Message) error {
	if msgs == nil {
		msgs = []model.Message{}
	}
	return c.do(ctx, http.MethodPut, "/api/messages", msgs, nil)
}

// SubmitMessage sends a public contact-form submission.
func (c *Client) SubmitMessage(ctx context.Context, name, email, message string) error {
	body := map[string]string{"name": name, "email": email, "message": message}
	return c.do(ctx, http.MethodPost, "/api/messages", body, nil)
}

// DeleteMessage removes one message by id (admin only).
func (c *Client) DeleteMessage(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/messages/"+id, nil, nil)
}

// do performs one JSON round trip. 401 maps to ErrUnauthorized; other
// non-2xx statuses surface with the server's error message.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, path, apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
