package trackersdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client calls the public endpoints of the tracker and creates Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			// The verification link answers with a redirect into the UI.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// NewSession wraps an existing token pair.
func (c *Client) NewSession(tokens *TokenResponse) *Session {
	return newSession(c, tokens)
}

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, token string) (*http.Response, error) {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), r)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// decodeJSON decodes a response of expectedStatus into target, or returns
// the typed error of any other status.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != expectedStatus {
		if err := parseErrorResponse(resp, body); err != nil {
			return err
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if target == nil {
		return nil
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func checkStatusNoContent(resp *http.Response) error {
	return decodeJSON(resp, nil, http.StatusNoContent)
}
