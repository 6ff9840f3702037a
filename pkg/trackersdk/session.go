package trackersdk

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Session is a signed-in user. Access tokens are refreshed transparently 30
// seconds before they expire.
type Session struct {
	client *Client

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	expiresAt    time.Time
}

func newSession(c *Client, tokens *TokenResponse) *Session {
	s := &Session{client: c}
	s.store(tokens)
	return s
}

func (s *Session) store(tokens *TokenResponse) {
	s.accessToken = tokens.AccessToken
	s.refreshToken = tokens.RefreshToken
	s.expiresAt = time.Now().Add(time.Duration(tokens.ExpiresIn)*time.Second - 30*time.Second)
}

func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// Refresh rotates the tokens now, regardless of expiry.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshLocked(ctx)
}

func (s *Session) refreshLocked(ctx context.Context) error {
	if s.refreshToken == "" {
		return fmt.Errorf("no refresh token available")
	}
	tokens, err := s.client.Refresh(ctx, s.refreshToken)
	if err != nil {
		return fmt.Errorf("failed to refresh token: %w", err)
	}
	s.store(tokens)
	return nil
}

func (s *Session) getValidToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	if time.Now().Before(s.expiresAt) {
		token := s.accessToken
		s.mu.RUnlock()
		return token, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another goroutine may have refreshed while we waited for the lock.
	if time.Now().Before(s.expiresAt) {
		return s.accessToken, nil
	}
	if err := s.refreshLocked(ctx); err != nil {
		return "", err
	}
	return s.accessToken, nil
}

func (s *Session) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	token, err := s.getValidToken(ctx)
	if err != nil {
		return nil, err
	}
	return s.client.doRequest(ctx, method, path, body, token)
}

// call sends body and decodes a response of expectedStatus into target.
func (s *Session) call(ctx context.Context, method, path string, body, target any, expectedStatus int) error {
	resp, err := s.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	return decodeJSON(resp, target, expectedStatus)
}

// Revoke signs the session out everywhere its refresh token reaches.
func (s *Session) Revoke(ctx context.Context) error {
	return s.call(ctx, http.MethodPost, "/v1/sessions/revoke", RefreshRequest{RefreshToken: s.RefreshToken()}, nil, http.StatusNoContent)
}
