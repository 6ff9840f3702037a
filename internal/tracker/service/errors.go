package service

import "errors"

var (
	// ErrValidation wraps every input validation failure. The wrapped message
	// is safe to show to the caller.
	ErrValidation = errors.New("invalid_request")

	ErrForbidden          = errors.New("forbidden")
	ErrDomainNotAllowed   = errors.New("domain_not_allowed")
	ErrEmailTaken         = errors.New("email_taken")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidToken       = errors.New("invalid_token")
	ErrUserNotFound       = errors.New("user_not_found")
	ErrNotVerified        = errors.New("email_not_verified")
)
