package domain

import "time"

// TwoFactorCodeTTL is how long an issued login code stays valid.
const TwoFactorCodeTTL = 10 * time.Minute

// TwoFactorCode is the single live code of a user. A new issue overwrites it.
type TwoFactorCode struct {
	UserID    string
	Email     string
	CodeHash  string // base64url SHA-256 of the 6 digit code
	CreatedAt time.Time
	ExpiresAt time.Time
	Verified  bool
}

// LoginChallenge is a login that passed the password step and waits on a code.
type LoginChallenge struct {
	ID        string // ULID, handed to the client as the challenge token
	UserID    string
	Attempts  int
	ExpiresAt time.Time
	CreatedAt time.Time
}

// ChallengeResponse is returned by login instead of tokens when a code is due.
type ChallengeResponse struct {
	TwoFactorRequired bool   `json:"two_factor_required"`
	Challenge         string `json:"challenge"`
	ExpiresIn         int    `json:"expires_in"`
}
