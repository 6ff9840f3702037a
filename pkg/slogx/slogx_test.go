package slogx_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/tracker/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestNewWritesServiceAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slogx.New(slogx.Config{
		Service: "tracker",
		Version: "v0.0.0",
		Env:     "test",
		Level:   "debug",
		Format:  "json",
		Output:  &buf,
	})

	logger.Debug("hello", "k", "v")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "tracker", line["service"])
	require.Equal(t, "test", line["env"])
	require.Equal(t, "v", line["k"])
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, slogx.ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, slogx.ParseLevel("warning"))
	require.Equal(t, slog.LevelError, slogx.ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, slogx.ParseLevel("nonsense"))
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	require.Equal(t, slog.Default(), slogx.FromContext(context.Background()))
}

func TestHTTPMiddlewareSetsRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	var seen *slog.Logger
	h := slogx.HTTPMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = slogx.FromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/me", nil))

	require.Equal(t, http.StatusTeapot, rec.Code)
	require.NotEmpty(t, rec.Header().Get(slogx.RequestIDHeader))
	require.NotNil(t, seen)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "http_request", line["msg"])
	require.EqualValues(t, http.StatusTeapot, line["status"])
	require.Equal(t, rec.Header().Get(slogx.RequestIDHeader), line["req_id"])
}
