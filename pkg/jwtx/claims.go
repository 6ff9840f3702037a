package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultAccessTokenTTL  = 15 * time.Minute
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// Authentication method references carried in the amr claim.
const (
	AMRPassword = "pwd"
	AMROTP      = "otp"
	AMRRefresh  = "refresh"
)

// Claims are the access token claims issued by the tracker.
type Claims struct {
	jwt.RegisteredClaims

	// Session ID, stable across refresh rotation.
	SID string `json:"sid,omitempty"`

	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`

	// AMR lists how the session was authenticated, e.g. ["pwd","otp"].
	AMR []string `json:"amr,omitempty"`
}

// AccessClaimsParams groups the inputs of NewAccessClaims.
type AccessClaimsParams struct {
	Subject   string
	SessionID string
	Email     string
	Name      string
	AMR       []string
	TTL       time.Duration
	Issuer    string
	Now       time.Time
}

func NewAccessClaims(p AccessClaimsParams) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.Issuer,
			Subject:   p.Subject,
			Audience:  jwt.ClaimStrings{p.Issuer},
			IssuedAt:  jwt.NewNumericDate(p.Now),
			NotBefore: jwt.NewNumericDate(p.Now),
			ExpiresAt: jwt.NewNumericDate(p.Now.Add(p.TTL)),
			ID:        NewJTI(),
		},
		SID:   p.SessionID,
		Email: p.Email,
		Name:  p.Name,
		AMR:   p.AMR,
	}
}

// NewJTI returns a random URL safe identifier for the jti claim.
func NewJTI() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// HasAMR reports whether method was used to authenticate the session.
func (c *Claims) HasAMR(method string) bool {
	for _, m := range c.AMR {
		if m == method {
			return true
		}
	}
	return false
}

func (c *Claims) validate(issuer string, now time.Time) error {
	if issuer != "" && c.Issuer != issuer {
		return ErrIssuer
	}
	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	if c.Subject == "" {
		return ErrInvalidClaim
	}
	return nil
}
