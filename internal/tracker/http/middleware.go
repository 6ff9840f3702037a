package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/service"
	"github.com/aussiebroadwan/tracker/pkg/httpx"
	"github.com/aussiebroadwan/tracker/pkg/slogx"
	"github.com/aussiebroadwan/tracker/pkg/trackersdk"
)

// requireAccess denies callers whose profile does not pass CheckAccess. The
// reason code lets the client route to the right screen. Must run after
// httpx.AuthnMiddleware.
func (r *Router) requireAccess() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := req.Context()

			d := r.ApprovalService.CheckAccess(ctx, httpx.UserID(ctx))
			if !d.Allowed {
				slogx.FromContext(ctx).Info("access blocked", slog.String("reason", string(d.Reason)))
				trackersdk.AccessBlocked(string(d.Reason), d.Message).WriteError(w)
				return
			}

			next.ServeHTTP(w, req)
		})
	}
}

// requireAdmin re-checks the administrator against the stored account and
// profile so a token for an unverified registration of the admin address
// grants nothing. Must run after httpx.RequireEmail.
func (r *Router) requireAdmin() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := req.Context()

			if err := r.ApprovalService.AuthorizeAdmin(ctx, actorFrom(ctx, r.Policy)); err != nil {
				if !errors.Is(err, service.ErrForbidden) {
					writeError(ctx, w, err)
					return
				}
				slogx.FromContext(ctx).Warn("forbidden", "path", req.URL.Path)
				trackersdk.ErrForbidden.WriteError(w)
				return
			}

			next.ServeHTTP(w, req)
		})
	}
}

// actorFrom builds the change author from the verified token claims. IsAdmin
// only reflects the email claim; admin operations re-check the stored records.
func actorFrom(ctx context.Context, policy *service.ApprovalPolicy) domain.Actor {
	a := domain.Actor{
		UID:   httpx.UserID(ctx),
		Email: httpx.Email(ctx),
	}
	if c, ok := httpx.ClaimsFromContext(ctx); ok {
		a.Name = c.Name
	}
	a.IsAdmin = policy.IsAdmin(a.Email)
	return a
}
