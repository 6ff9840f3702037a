package httpx

import (
	"net/http"

	"github.com/aussiebroadwan/tracker/pkg/slogx"
)

// RequireEmail lets the request through only when the authenticated email
// satisfies allow. Denials carry no detail. Must run after AuthnMiddleware.
func RequireEmail(allow func(email string) bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			email := Email(ctx)
			if email == "" || !allow(email) {
				slogx.FromContext(ctx).Warn("forbidden", "path", r.URL.Path)
				WriteJSON(w, http.StatusForbidden, map[string]string{
					"error": "forbidden",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
