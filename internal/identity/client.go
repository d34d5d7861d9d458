// Package identity is the client for the hosted identity provider. The
// planner core only needs a stable opaque user identifier and a
// signed-in/signed-out signal; everything else (OAuth redirects, email
// verification) happens on the provider's side.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

// Session identifies a signed-in user.
type Session struct {
	UserID      string
	Email       string
	DisplayName string
	AccessToken string
}

// Provider is the identity collaborator consumed by the session lifecycle.
type Provider interface {
	// SignInWithPassword exchanges credentials for a session.
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)

	// SignUp registers a new account; access is granted after email
	// verification, so no session is returned.
	SignUp(ctx context.Context, email, password, displayName string) error

	// CurrentUser resolves an access token to its session, or ErrNoSession.
	CurrentUser(ctx context.Context, accessToken string) (*Session, error)

	// SignOut invalidates the session behind the token.
	SignOut(ctx context.Context, accessToken string) error
}

// Client implements Provider against a Supabase GoTrue endpoint.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a Provider talking to the configured endpoint.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

type gotrueUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		FullName string `json:"full_name"`
	} `json:"user_metadata"`
}

type tokenResponse struct {
	AccessToken string     `json:"access_token"`
	User        gotrueUser `json:"user"`
}

type authErrorBody struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
}

func (u gotrueUser) session(token string) *Session {
	name := u.UserMetadata.FullName
	if name == "" {
		name = DefaultDisplayName
	}
	return &Session{
		UserID:      u.ID,
		Email:       u.Email,
		DisplayName: name,
		AccessToken: token,
	}
}

func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	var resp tokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", "", body, &resp)
	if err != nil {
		return nil, err
	}
	if resp.AccessToken == "" || resp.User.ID == "" {
		return nil, &AuthError{Message: "resposta de autenticação inválida"}
	}
	return resp.User.session(resp.AccessToken), nil
}

func (c *Client) SignUp(ctx context.Context, email, password, displayName string) error {
	body := map[string]any{
		"email":    email,
		"password": password,
		"data":     map[string]string{"full_name": displayName},
	}
	return c.do(ctx, http.MethodPost, "/auth/v1/signup", "", body, nil)
}

func (c *Client) CurrentUser(ctx context.Context, accessToken string) (*Session, error) {
	if accessToken == "" {
		return nil, ErrNoSession
	}
	var user gotrueUser
	if err := c.do(ctx, http.MethodGet, "/auth/v1/user", accessToken, nil, &user); err != nil {
		var authErr *AuthError
		if errors.As(err, &authErr) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	if user.ID == "" {
		return nil, ErrNoSession
	}
	return user.session(accessToken), nil
}

func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	return c.do(ctx, http.MethodPost, "/auth/v1/logout", accessToken, nil, nil)
}

// RedirectURL builds the provider-redirect sign-in URL (OAuth). The actual
// redirect flow is a front-end concern; the core only exposes the target.
func (c *Client) RedirectURL(provider, redirectTo string) string {
	q := url.Values{}
	q.Set("provider", provider)
	if redirectTo != "" {
		q.Set("redirect_to", redirectTo)
	}
	return c.cfg.URL + "/auth/v1/authorize?" + q.Encode()
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	timeout := time.Duration(c.cfg.TimeoutMs) * time.Millisecond
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.URL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.cfg.AnonKey)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isConnectionError(err) {
			return ErrUnavailable
		}
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return &AuthError{Message: authMessage(respBody, resp.StatusCode)}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// authMessage extracts the provider's error message, trying the field names
// GoTrue uses across versions.
func authMessage(body []byte, status int) string {
	var parsed authErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		for _, msg := range []string{parsed.ErrorDescription, parsed.Msg, parsed.Message} {
			if msg != "" {
				return msg
			}
		}
	}
	return fmt.Sprintf("authentication failed (status %d)", status)
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}
