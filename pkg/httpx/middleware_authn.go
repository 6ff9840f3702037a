package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/tracker/pkg/jwtx"
	"github.com/aussiebroadwan/tracker/pkg/slogx"
)

func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := BearerToken(r)
			if !ok {
				writeBearerError(w, "missing bearer token")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				writeBearerError(w, "token verification failed")
				log.Warn("jwt verify failed", "err", err)
				return
			}

			ctx = ContextWithClaims(ctx, claims)
			ctx = slogx.WithUserID(ctx, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extracts the token from an Authorization: Bearer header.
func BearerToken(r *http.Request) (string, bool) {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return "", false
	}
	raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
	return raw, raw != ""
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"error":             "unauthorized",
		"error_description": desc,
	})
}
