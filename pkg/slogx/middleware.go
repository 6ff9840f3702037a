package slogx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/tracker/pkg/idx"
)

// RequestIDHeader is echoed back on every response.
const RequestIDHeader = "X-Request-ID"

// HTTPMiddleware attaches a request scoped logger to the context and writes
// one access log line per request. Health probes log at debug.
func HTTPMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqID := r.Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = idx.New().String()
			}
			w.Header().Set(RequestIDHeader, reqID)

			logger := base.With(
				"req_id", reqID,
				"method", r.Method,
				"path", r.URL.Path,
			)

			rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rw, r.WithContext(WithContext(r.Context(), logger)))

			level := slog.LevelInfo
			if r.URL.Path == "/livez" || r.URL.Path == "/readyz" {
				level = slog.LevelDebug
			}
			logger.Log(r.Context(), level, "http_request",
				"status", rw.status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter

	status int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
