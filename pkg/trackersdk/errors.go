package trackersdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/tracker/pkg/httpx"
)

const (
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeUnauthorized      = "unauthorized"
	ErrorCodeInvalidToken      = "invalid_token"
	ErrorCodeInvalidCode       = "invalid_code"
	ErrorCodeForbidden         = "forbidden"
	ErrorCodeAccessBlocked     = "access_blocked"
	ErrorCodeDomainNotAllowed  = "domain_not_allowed"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeConflict          = "conflict"
	ErrorCodeTwoFactorRequired = "two_factor_required"
	ErrorCodeRateLimitExceeded = "rate_limit_exceeded"
	ErrorCodeServerError       = "server_error"
)

// APIError is the error body of every failed request. The server writes it
// with WriteError; the client returns it from every call.
type APIError struct {
	StatusCode int `json:"-"`

	Code        string `json:"error"`
	Description string `json:"error_description,omitempty"`

	// Reason is set on access_blocked denials to the gate reason code.
	Reason string `json:"reason,omitempty"`
}

func (e *APIError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s (%s): %s", e.Code, e.Reason, e.Description)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes e as JSON with its status code.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, e)
}

// WithDescription returns a copy of e carrying desc.
func (e *APIError) WithDescription(desc string) *APIError {
	c := *e
	c.Description = desc
	return &c
}

var (
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeUnauthorized,
		Description: "invalid email or password",
	}

	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "the token is missing, invalid, expired or already used",
	}

	ErrInvalidCode = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCode,
		Description: "the verification code is invalid or expired",
	}

	ErrTooManyAttempts = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCode,
		Description: "too many attempts, please sign in again",
	}

	// ErrForbidden deliberately carries no detail.
	ErrForbidden = &APIError{
		StatusCode: http.StatusForbidden,
		Code:       ErrorCodeForbidden,
	}

	ErrDomainNotAllowed = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeDomainNotAllowed,
		Description: "your email domain is not authorised to use this application",
	}

	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "not found",
	}

	ErrConflict = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeConflict,
		Description: "the resource already exists",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// AccessBlocked is the denial of the access gate.
func AccessBlocked(reason, message string) *APIError {
	return &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeAccessBlocked,
		Description: message,
		Reason:      reason,
	}
}

// TwoFactorRequiredError is returned by Login when the account has two-factor
// enabled. The code has been mailed; complete the login with VerifyTwoFactor.
type TwoFactorRequiredError struct {
	Challenge string `json:"challenge"`
	ExpiresIn int    `json:"expires_in"`
}

func (e *TwoFactorRequiredError) Error() string {
	return "two-factor verification required"
}

// WriteError writes the challenge as a 409 Conflict.
func (e *TwoFactorRequiredError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusConflict, map[string]any{
		"error":             ErrorCodeTwoFactorRequired,
		"error_description": "a verification code has been sent to your email address",
		"challenge":         e.Challenge,
		"expires_in":        e.ExpiresIn,
	})
}

// parseErrorResponse turns a non-2xx response into a typed error.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	if resp.StatusCode == http.StatusConflict {
		var tf struct {
			Error     string `json:"error"`
			Challenge string `json:"challenge"`
			ExpiresIn int    `json:"expires_in"`
		}
		if err := json.Unmarshal(body, &tf); err == nil && tf.Error == ErrorCodeTwoFactorRequired && tf.Challenge != "" {
			return &TwoFactorRequiredError{Challenge: tf.Challenge, ExpiresIn: tf.ExpiresIn}
		}
	}

	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Code != "" {
		apiErr.StatusCode = resp.StatusCode
		return &apiErr
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
