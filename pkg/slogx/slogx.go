package slogx

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Service string
	Version string
	Env     string // dev, test, prod
	Level   string // debug, info, warn, error
	Format  string // json, text

	// Output defaults to stdout.
	Output io.Writer
}

// New builds the process logger and installs it as the slog default.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{
		AddSource: cfg.Env == "dev",
		Level:     ParseLevel(cfg.Level),
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "text":
		handler = slog.NewTextHandler(out, opts)
	default:
		handler = slog.NewJSONHandler(out, opts)
	}

	logger := slog.New(handler).With(
		"service", cfg.Service,
		"version", cfg.Version,
		"env", cfg.Env,
	)

	slog.SetDefault(logger)
	return logger
}

// Discard returns a logger that drops everything. Used by tests and the CLI.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a level name to slog.Level, defaulting to info.
func ParseLevel(lvl string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
