package slogx

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the request logger, or the default logger when none is set.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// WithAttrs returns ctx carrying a logger enriched with args.
func WithAttrs(ctx context.Context, args ...any) context.Context {
	return WithContext(ctx, FromContext(ctx).With(args...))
}

// WithUserID tags every later log line for the request with the caller's uid.
func WithUserID(ctx context.Context, uid string) context.Context {
	return WithAttrs(ctx, "uid", uid)
}
