package httpx

import (
	"context"

	"github.com/aussiebroadwan/tracker/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id"
	CtxKeyEmail  ctxKey = "email"
	CtxKeyClaims ctxKey = "claims"
)

// UserID returns the authenticated subject, or "" outside AuthnMiddleware.
func UserID(ctx context.Context) string {
	v, _ := ctx.Value(CtxKeyUserID).(string)
	return v
}

func Email(ctx context.Context) string {
	v, _ := ctx.Value(CtxKeyEmail).(string)
	return v
}

func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(CtxKeyClaims).(jwtx.Claims)
	return c, ok
}

// ContextWithClaims is what AuthnMiddleware stores; handlers under test use it
// to fake an authenticated caller.
func ContextWithClaims(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyEmail, c.Email)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}
