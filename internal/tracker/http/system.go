package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/tracker/internal/tracker/store"
	"github.com/aussiebroadwan/tracker/pkg/httpx"
	"github.com/aussiebroadwan/tracker/pkg/jwtx"
	"github.com/aussiebroadwan/tracker/pkg/trackersdk"
)

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe endpoint returning basic service health status, uptime, and version information
//	@Description	This endpoint always returns 200 OK if the service is running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	trackersdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, trackersdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint checking the database and the token signer
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	trackersdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	trackersdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store, keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &trackersdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
		}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		if !keys.IsReady() {
			checks.Signer = "error: no keys loaded"
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, trackersdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}

// JWKSHandler exposes the JSON Web Key Set for public key discovery.
//
//	@Summary		Get JWKS
//	@Description	Returns the JSON Web Key Set used to verify access tokens.
//	@Tags			well-known
//	@Produce		json
//	@Success		200	{object}	trackersdk.JWKSResponse	"The JSON Web Key Set"
//	@Router			/.well-known/jwks.json [get].
func JWKSHandler(keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, trackersdk.JWKSResponse(keys.PublicJWKS()))
	}
}
