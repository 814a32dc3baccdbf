// Package client talks to the favorite-food API and holds the signed-in
// session the screens share.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	CodeInvalidCredential = "auth/invalid-credential"
	CodeProfileNotFound   = "profile/not-found"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrNotSignedIn     = errors.New("not signed in")
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Code)
	}
	return fmt.Sprintf("api error %d: %s: %s", e.Status, e.Code, e.Message)
}

// CodeOf returns the API error code carried by err, or "".
func CodeOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ""
}

type Session struct {
	AccessToken string    `json:"accessToken"`
	UserID      string    `json:"userId"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func (s Session) Valid(now time.Time) bool {
	return s.AccessToken != "" && now.Before(s.ExpiresAt)
}

type Profile struct {
	GivenName    string    `json:"givenName"`
	FamilyName   string    `json:"familyName"`
	FavoriteFood string    `json:"favoriteFood"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
}

// AccountEvent is one entry of the signed-in user's account history.
type AccountEvent struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client

	mu      sync.RWMutex
	session Session
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithSession(s Session) Option {
	return func(c *Client) { c.session = s }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Session() Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

func (c *Client) setSession(s Session) {
	c.mu.Lock()
	c.session = s
	c.mu.Unlock()
}

func (c *Client) SignIn(ctx context.Context, email, password string) (Session, error) {
	return c.authenticate(ctx, "/api/auth/signin", email, password)
}

func (c *Client) SignUp(ctx context.Context, email, password string) (Session, error) {
	return c.authenticate(ctx, "/api/auth/signup", email, password)
}

func (c *Client) authenticate(ctx context.Context, path, email, password string) (Session, error) {
	var s Session
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, path, false, body, &s); err != nil {
		return Session{}, err
	}
	c.setSession(s)
	return s, nil
}

// SignOut ends the session on the server and forgets it locally.
func (c *Client) SignOut(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/auth/signout", true, nil, nil); err != nil {
		return err
	}
	c.setSession(Session{})
	return nil
}

func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	var p Profile
	err := c.do(ctx, http.MethodGet, "/api/profile", true, nil, &p)
	if CodeOf(err) == CodeProfileNotFound {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// PutProfile replaces the stored profile with p.
func (c *Client) PutProfile(ctx context.Context, p Profile) (*Profile, error) {
	body := map[string]string{
		"givenName":    p.GivenName,
		"familyName":   p.FamilyName,
		"favoriteFood": p.FavoriteFood,
	}
	var out Profile
	if err := c.do(ctx, http.MethodPut, "/api/profile", true, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListEvents returns up to limit recent account events, newest first. A limit
// of zero lets the server pick.
func (c *Client) ListEvents(ctx context.Context, limit int) ([]AccountEvent, error) {
	path := "/api/account/events"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var out struct {
		Events []AccountEvent `json:"events"`
	}
	if err := c.do(ctx, http.MethodGet, path, true, nil, &out); err != nil {
		return nil, err
	}
	return out.Events, nil
}

func (c *Client) do(ctx context.Context, method, path string, authed bool, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		token := c.Session().AccessToken
		if token == "" {
			return ErrNotSignedIn
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(raw, &body); err == nil {
		apiErr.Code = body.Error
		apiErr.Message = body.Message
	}
	if apiErr.Code == "" {
		apiErr.Code = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
