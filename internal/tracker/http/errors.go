package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/tracker/internal/tracker/service"
	"github.com/aussiebroadwan/tracker/internal/tracker/store"
	"github.com/aussiebroadwan/tracker/pkg/slogx"
	"github.com/aussiebroadwan/tracker/pkg/trackersdk"
)

// apiError maps a service error onto the wire error. Unknown errors become
// server_error.
func apiError(err error) *trackersdk.APIError {
	switch {
	case errors.Is(err, service.ErrValidation):
		return trackersdk.ErrInvalidRequest.WithDescription(detail(err, service.ErrValidation))
	case errors.Is(err, service.ErrUnknownColumn):
		return trackersdk.ErrInvalidRequest.WithDescription("unknown column" + suffix(err, service.ErrUnknownColumn))
	case errors.Is(err, service.ErrInvalidCredentials):
		return trackersdk.ErrInvalidCredentials
	case errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrInvalidRefresh),
		errors.Is(err, service.ErrInvalidChallenge):
		return trackersdk.ErrInvalidToken
	case errors.Is(err, service.ErrInvalidCode):
		return trackersdk.ErrInvalidCode
	case errors.Is(err, service.ErrTooManyAttempts):
		return trackersdk.ErrTooManyAttempts
	case errors.Is(err, service.ErrForbidden):
		return trackersdk.ErrForbidden
	case errors.Is(err, service.ErrColumnForbidden):
		return trackersdk.ErrForbidden.WithDescription("you may not edit column" + suffix(err, service.ErrColumnForbidden))
	case errors.Is(err, service.ErrDomainNotAllowed):
		return trackersdk.ErrDomainNotAllowed
	case errors.Is(err, service.ErrEmailTaken):
		return trackersdk.ErrConflict.WithDescription("an account with this email already exists")
	case errors.Is(err, service.ErrNotVerified):
		return trackersdk.ErrConflict.WithDescription("the email address has not been verified")
	case errors.Is(err, service.ErrUserNotFound):
		return trackersdk.ErrNotFound.WithDescription("user not found")
	case errors.Is(err, service.ErrTaskNotFound):
		return trackersdk.ErrNotFound.WithDescription("task not found")
	case errors.Is(err, service.ErrKPINotFound):
		return trackersdk.ErrNotFound.WithDescription("kpi not found")
	case errors.Is(err, service.ErrPermissionNotFound):
		return trackersdk.ErrNotFound.WithDescription("permission not found")
	case errors.Is(err, store.ErrNotFound):
		return trackersdk.ErrNotFound
	}
	return nil
}

// writeError writes the mapped error, logging anything unexpected.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	if e := apiError(err); e != nil {
		e.WriteError(w)
		return
	}
	slogx.FromContext(ctx).Error("request failed", slog.Any("error", err))
	trackersdk.ErrServerError.WriteError(w)
}

// detail is the text after the sentinel, e.g. "invalid_request: title is required".
func detail(err, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error())
	msg = strings.TrimPrefix(msg, ": ")
	if msg == "" {
		return trackersdk.ErrInvalidRequest.Description
	}
	return msg
}

func suffix(err, sentinel error) string {
	if d := strings.TrimPrefix(err.Error(), sentinel.Error()); d != "" {
		return " " + strings.TrimPrefix(d, ": ")
	}
	return ""
}
