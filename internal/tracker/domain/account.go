package domain

import "time"

// Account is the identity record. EmailVerified here is authoritative; the
// profile copy is synchronised on login and verification.
type Account struct {
	ID            string
	Email         string // lower-cased, unique
	PasswordHash  string // argon2id, peppered
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// VerificationToken backs the link sent in a verification email.
type VerificationToken struct {
	ID        string
	TokenHash string // base64url SHA-256 of the opaque token
	UserID    string
	Email     string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}
