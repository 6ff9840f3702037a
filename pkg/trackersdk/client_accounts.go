package trackersdk

import (
	"context"
	"net/http"
	"net/url"
)

// Register creates an account. Untrusted domains fail with
// ErrorCodeDomainNotAllowed.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Profile, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/accounts", req, "")
	if err != nil {
		return nil, err
	}
	var p Profile
	if err := decodeJSON(resp, &p, http.StatusCreated); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) VerifyEmail(ctx context.Context, token string) (*Profile, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/accounts/verify", VerifyEmailRequest{Token: token}, "")
	if err != nil {
		return nil, err
	}
	var p Profile
	if err := decodeJSON(resp, &p, http.StatusOK); err != nil {
		return nil, err
	}
	return &p, nil
}

// FollowVerificationLink opens a mailed link and returns the redirect target.
func (c *Client) FollowVerificationLink(ctx context.Context, token string) (string, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/accounts/verify?token="+url.QueryEscape(token), nil, "")
	if err != nil {
		return "", err
	}
	loc := resp.Header.Get("Location")
	if err := decodeJSON(resp, nil, http.StatusSeeOther); err != nil {
		return "", err
	}
	return loc, nil
}

func (c *Client) ResendVerification(ctx context.Context, email string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/accounts/verify/resend", ResendVerificationRequest{Email: email}, "")
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusAccepted)
}

// Login signs in with a password. Accounts with two-factor enabled fail with
// a *TwoFactorRequiredError carrying the challenge.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/sessions", LoginRequest{Email: email, Password: password}, "")
	if err != nil {
		return nil, err
	}
	var tokens TokenResponse
	if err := decodeJSON(resp, &tokens, http.StatusOK); err != nil {
		return nil, err
	}
	return newSession(c, &tokens), nil
}

func (c *Client) VerifyTwoFactor(ctx context.Context, challenge, code string) (*Session, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/2fa/verify", TwoFactorVerifyRequest{Challenge: challenge, Code: code}, "")
	if err != nil {
		return nil, err
	}
	var tokens TokenResponse
	if err := decodeJSON(resp, &tokens, http.StatusOK); err != nil {
		return nil, err
	}
	return newSession(c, &tokens), nil
}

func (c *Client) ResendTwoFactor(ctx context.Context, challenge string) (*TwoFactorChallengeResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/2fa/resend", TwoFactorResendRequest{Challenge: challenge}, "")
	if err != nil {
		return nil, err
	}
	var out TwoFactorChallengeResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TwoFactorRemaining(ctx context.Context, challenge string) (int, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/2fa/remaining?challenge="+url.QueryEscape(challenge), nil, "")
	if err != nil {
		return 0, err
	}
	var out TwoFactorRemainingResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return 0, err
	}
	return out.Seconds, nil
}

// Refresh rotates a refresh token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/sessions/refresh", RefreshRequest{RefreshToken: refreshToken}, "")
	if err != nil {
		return nil, err
	}
	var tokens TokenResponse
	if err := decodeJSON(resp, &tokens, http.StatusOK); err != nil {
		return nil, err
	}
	return &tokens, nil
}

func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *Client) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}
	var h HealthResponse
	if err := decodeJSON(resp, &h, http.StatusOK); err != nil {
		return nil, err
	}
	return &h, nil
}

func (c *Client) GetJWKS(ctx context.Context) (*JWKSResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/.well-known/jwks.json", nil, "")
	if err != nil {
		return nil, err
	}
	var jwks JWKSResponse
	if err := decodeJSON(resp, &jwks, http.StatusOK); err != nil {
		return nil, err
	}
	return &jwks, nil
}
