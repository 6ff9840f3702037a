package httpx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/tracker/pkg/slogx"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines the rate limiting parameters.
type RateLimitConfig struct {
	// RequestsPerWindow is the number of requests allowed in the time window
	RequestsPerWindow int
	// Window is the time window for rate limiting
	Window time.Duration
	// Burst allows for temporary bursts above the rate limit
	Burst int
}

// Rate limit profiles. Each one can be overridden with
// RATELIMIT_{NAME}_REQUESTS, RATELIMIT_{NAME}_WINDOW_SEC and RATELIMIT_{NAME}_BURST.
var (
	// StrictLimit guards registration, login and code entry.
	StrictLimit = RateLimitConfig{RequestsPerWindow: 5, Window: time.Minute, Burst: 5}

	// ModerateLimit for authenticated writes.
	ModerateLimit = RateLimitConfig{RequestsPerWindow: 30, Window: time.Minute, Burst: 30}

	// LenientLimit for authenticated reads.
	LenientLimit = RateLimitConfig{RequestsPerWindow: 120, Window: time.Minute, Burst: 120}

	// PublicLimit for unauthenticated read-only endpoints such as JWKS.
	PublicLimit = RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000}
)

func init() {
	StrictLimit = ParseRateLimitFromEnv("STRICT", StrictLimit)
	ModerateLimit = ParseRateLimitFromEnv("MODERATE", ModerateLimit)
	LenientLimit = ParseRateLimitFromEnv("LENIENT", LenientLimit)
	PublicLimit = ParseRateLimitFromEnv("PUBLIC", PublicLimit)
}

// ParseRateLimitFromEnv reads RATELIMIT_{prefix}_{REQUESTS,WINDOW_SEC,BURST}.
// Invalid or non-positive values keep the default.
func ParseRateLimitFromEnv(prefix string, defaultConfig RateLimitConfig) RateLimitConfig {
	config := defaultConfig

	if n, ok := positiveEnvInt("RATELIMIT_" + prefix + "_REQUESTS"); ok {
		config.RequestsPerWindow = n
	}
	if n, ok := positiveEnvInt("RATELIMIT_" + prefix + "_WINDOW_SEC"); ok {
		config.Window = time.Duration(n) * time.Second
	}
	if n, ok := positiveEnvInt("RATELIMIT_" + prefix + "_BURST"); ok {
		config.Burst = n
	}

	return config
}

func positiveEnvInt(key string) (int, bool) {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// KeyExtractor picks the bucket a request is counted against.
type KeyExtractor func(*http.Request) string

// IPKeyExtractor extracts the client IP address from the request.
// It handles X-Forwarded-For and X-Real-IP headers for proxied requests.
func IPKeyExtractor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// UserIDKeyExtractor extracts the user ID from the request context.
func UserIDKeyExtractor(r *http.Request) string {
	return UserID(r.Context())
}

// CompositeKeyExtractor joins the non-empty keys of extractors with sep.
func CompositeKeyExtractor(sep string, extractors ...KeyExtractor) KeyExtractor {
	return func(r *http.Request) string {
		var parts []string
		for _, extractor := range extractors {
			if key := extractor(r); key != "" {
				parts = append(parts, key)
			}
		}
		return strings.Join(parts, sep)
	}
}

// JSONFieldKeyExtractor reads a top-level string field from a JSON body and
// restores the body for the handler. Values are lower-cased so that email
// buckets are case-insensitive.
func JSONFieldKeyExtractor(field string) KeyExtractor {
	return func(r *http.Request) string {
		if r.Body == nil {
			return ""
		}
		body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes))
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))
		if err != nil {
			return ""
		}

		var fields map[string]any
		if err := json.Unmarshal(body, &fields); err != nil {
			return ""
		}
		v, _ := fields[field].(string)
		return strings.ToLower(strings.TrimSpace(v))
	}
}

// rateLimiter manages rate limiters for different keys
type rateLimiter struct {
	limiters sync.Map // map[string]*rate.Limiter
	rate     rate.Limit
	burst    int

	mu          sync.Mutex
	lastCleanup time.Time
}

func (rl *rateLimiter) getLimiter(key string) *rate.Limiter {
	if limiter, ok := rl.limiters.Load(key); ok {
		return limiter.(*rate.Limiter)
	}

	limiter := rate.NewLimiter(rl.rate, rl.burst)
	actual, _ := rl.limiters.LoadOrStore(key, limiter)

	rl.maybeCleanup()

	return actual.(*rate.Limiter)
}

// maybeCleanup drops idle limiters at most once every five minutes. A limiter
// with a full bucket has not been used recently.
func (rl *rateLimiter) maybeCleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if time.Since(rl.lastCleanup) < 5*time.Minute {
		return
	}
	rl.lastCleanup = time.Now()

	rl.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).Tokens() >= float64(rl.burst) {
			rl.limiters.Delete(key)
		}
		return true
	})
}

// RateLimitMiddleware creates a rate limiting middleware with the given configuration.
func RateLimitMiddleware(config RateLimitConfig, keyExtractor KeyExtractor) Middleware {
	ratePerSecond := float64(config.RequestsPerWindow) / config.Window.Seconds()

	rl := &rateLimiter{
		rate:        rate.Limit(ratePerSecond),
		burst:       config.Burst,
		lastCleanup: time.Now(),
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			key := keyExtractor(r)
			if key == "" {
				log.Warn("rate limit: unable to extract key, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			limiter := rl.getLimiter(key)
			if !limiter.Allow() {
				reservation := limiter.Reserve()
				delay := reservation.Delay()
				reservation.Cancel()

				retryAfter := max(int(delay.Seconds()), 1)

				w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
				w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", config.RequestsPerWindow))
				w.Header().Set("X-RateLimit-Window", config.Window.String())

				log.Warn("rate limit exceeded",
					"endpoint", r.URL.Path,
					"retry_after", retryAfter,
				)

				WriteJSON(w, http.StatusTooManyRequests, map[string]string{
					"error":             "rate_limit_exceeded",
					"error_description": "Too many requests. Please try again later.",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitByIP creates a rate limiter that limits by IP address only.
func RateLimitByIP(config RateLimitConfig) Middleware {
	return RateLimitMiddleware(config, IPKeyExtractor)
}

// RateLimitByUser limits by authenticated user ID and IP.
func RateLimitByUser(config RateLimitConfig) Middleware {
	return RateLimitMiddleware(config, CompositeKeyExtractor(":",
		UserIDKeyExtractor,
		IPKeyExtractor,
	))
}

// RateLimitByIPAndJSONField limits by IP plus a JSON body field, e.g. login
// attempts per IP and email.
func RateLimitByIPAndJSONField(config RateLimitConfig, field string) Middleware {
	return RateLimitMiddleware(config, CompositeKeyExtractor(":",
		IPKeyExtractor,
		JSONFieldKeyExtractor(field),
	))
}
