package domain

import "time"

// TokenPair is what a completed login or refresh returns.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"` // seconds
}

// RefreshToken models the stored refresh token record in the DB.
type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string // deterministic fingerprint (base64url SHA-256)
	SessionID string // persists across rotation
	AMR       []string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
