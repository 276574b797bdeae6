// ABOUTME: HTTP client for the BestChallenges API
// ABOUTME: Attaches bearer tokens from a TokenSource and maps error responses

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// TokenSource supplies the current access token for outgoing requests.
// An empty string means no Authorization header is attached.
type TokenSource interface {
	Token() string
}

// Client is the API client for the BestChallenges backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// New creates a new API client with the given base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetTokenSource installs the source consulted for the bearer token on
// every request. May be nil to send unauthenticated requests.
func (c *Client) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

// APIError is a non-2xx response from the backend with its detail message.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend error: %s", e.Detail)
}

// IsUnauthorized reports whether err is an APIError with status 401.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusUnauthorized
}

// Token represents the login endpoint response
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// User represents the /api/auth/me endpoint response
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

// HealthResponse represents the /health endpoint response
type HealthResponse struct {
	Status string `json:"status"`
}

// Profile holds the profile card numbers on the dashboard
type Profile struct {
	Points            int `json:"points"`
	Perseverance      int `json:"perseverance"`
	Level             int `json:"level"`
	ResistancePoints  int `json:"resistance_points"`
	MindPoints        int `json:"mind_points"`
	ForcePoints       int `json:"force_points"`
	FlexibilityPoints int `json:"flexibility_points"`
}

// Friends holds the friends card numbers on the dashboard
type Friends struct {
	Count int `json:"count"`
}

// Challenges holds the challenges card numbers on the dashboard
type Challenges struct {
	Count int `json:"count"`
}

// DashboardResponse represents the /api/dashboard endpoint response
type DashboardResponse struct {
	Profile    Profile    `json:"profile"`
	Friends    Friends    `json:"friends"`
	Challenges Challenges `json:"challenges"`
}

// loginRequest is the body for POST /api/auth/login/json. Exactly one of
// username/email is set.
type loginRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// Health calls the /health endpoint
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.get(ctx, "/health", &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// LoginJSON calls POST /api/auth/login/json. Identifiers containing "@"
// are sent in the email field, everything else as a username.
func (c *Client) LoginJSON(ctx context.Context, identifier, password string) (*Token, error) {
	reqBody := loginRequest{Password: password}
	if strings.Contains(identifier, "@") {
		reqBody.Email = identifier
	} else {
		reqBody.Username = identifier
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/auth/login/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp)
	}

	var token Token
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, fmt.Errorf("invalid response from backend: %w", err)
	}

	return &token, nil
}

// Me calls GET /api/auth/me
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.get(ctx, "/api/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Dashboard calls GET /api/dashboard
func (c *Client) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	var dash DashboardResponse
	if err := c.get(ctx, "/api/dashboard", &dash); err != nil {
		return nil, err
	}
	return &dash, nil
}

// get performs an authenticated GET and decodes the response into out
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.handleErrorResponse(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}

	return nil
}

// newRequest builds a request with the bearer token attached when present
func (c *Client) newRequest(ctx context.Context, method, path string, body *bytes.Reader) (*http.Request, error) {
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return req, nil
}

// handleRequestError converts context errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return fmt.Errorf("request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
}

// handleErrorResponse parses API error responses into an APIError
func (c *Client) handleErrorResponse(resp *http.Response) error {
	var errBody struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errBody); err != nil || errBody.Detail == "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Detail:     fmt.Sprintf("backend returned status %d", resp.StatusCode),
		}
	}
	return &APIError{StatusCode: resp.StatusCode, Detail: errBody.Detail}
}
