// Package client implements the HTTP client for the attendance backend.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/noritama/dakoku/internal/models"
)

// Client talks to the attendance backend. Token attachment reads the
// configured token but never mutates it; requests without a token go out
// with no Authorization header and are rejected by the server.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a backend client for the given base URL. A zero timeout
// disables the client-side deadline.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SetToken attaches a bearer token to all subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(req *http.Request, form bool) (*http.Response, error) {
	if form {
		req.Header.Set(
			"Content-Type",
			"application/x-www-form-urlencoded;charset=UTF-8",
		)
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return c.httpClient.Do(req)
}

type loginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login authenticates with the backend and returns a new session. Any
// non-success response is reported as an AuthError.
func (c *Client) Login(
	ctx context.Context,
	email, password string,
) (*models.Session, error) {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/auth/login",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.do(req, true)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &AuthError{StatusCode: resp.StatusCode}
	}

	var lr loginResponse

	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return nil, fmt.Errorf("decoding login response: %w", err)
	}

	return &models.Session{Token: lr.Token, User: lr.User}, nil
}

// Me returns the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+"/auth/me",
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.do(req, false)
	if err != nil {
		return nil, fmt.Errorf("profile request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{StatusCode: resp.StatusCode}
	}

	var u models.User

	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, fmt.Errorf("decoding profile response: %w", err)
	}

	return &u, nil
}

// FetchDaily retrieves the daily record for the given YYYY-MM-DD date. Any
// non-success response is reported as a FetchError carrying the HTTP status.
func (c *Client) FetchDaily(
	ctx context.Context,
	date string,
) (*models.DailyRecord, error) {
	endpoint := fmt.Sprintf(
		"%s/v1/attendance/me/daily?date=%s",
		c.baseURL,
		url.QueryEscape(date),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.do(req, false)
	if err != nil {
		return nil, fmt.Errorf("daily record request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{StatusCode: resp.StatusCode}
	}

	var rec models.DailyRecord

	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decoding daily record: %w", err)
	}

	return &rec, nil
}

// SubmitEntry posts a clock event. The backend resolves the user from the
// bearer token. On rejection the response body text is surfaced through
// SubmitError rather than swallowed.
func (c *Client) SubmitEntry(
	ctx context.Context,
	kind models.Kind,
	happenedAt, source string,
) error {
	form := url.Values{}
	form.Set("kind", string(kind))
	form.Set("happened_at", happenedAt)
	form.Set("source", source)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/v1/timeclock/time_entries",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.do(req, true)
	if err != nil {
		return fmt.Errorf("time entry request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return &SubmitError{
			StatusCode: resp.StatusCode,
			Detail:     strings.TrimSpace(string(body)),
		}
	}

	return nil
}
