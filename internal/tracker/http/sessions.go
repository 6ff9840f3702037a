package http

import (
	"net/http"

	"github.com/aussiebroadwan/tracker/internal/tracker/service"
	"github.com/aussiebroadwan/tracker/pkg/httpx"
	"github.com/aussiebroadwan/tracker/pkg/slogx"
	"github.com/aussiebroadwan/tracker/pkg/trackersdk"
)

// SessionsHandler serves password login, refresh rotation and logout.
type SessionsHandler struct {
	AccountService *service.AccountService
	TokenService   *service.TokenService
}

// HandleLogin handles POST /v1/sessions
//
//	@Summary		Sign in
//	@Description	Checks the password and returns a token pair. Accounts with two-factor enabled receive a
//	@Description	409 two_factor_required carrying the challenge; the code is mailed to the account.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trackersdk.LoginRequest					true	"Credentials"
//	@Success		200		{object}	trackersdk.TokenResponse				"Token pair"
//	@Failure		401		{object}	trackersdk.APIError						"Invalid email or password"
//	@Failure		409		{object}	trackersdk.TwoFactorChallengeResponse	"Two-factor code required"
//	@Failure		429		{object}	trackersdk.APIError						"Rate limit exceeded"
//	@Router			/v1/sessions [post].
func (h *SessionsHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req trackersdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.Email == "" || req.Password == "" {
		log.Warn("invalid login request")
		trackersdk.ErrInvalidRequest.WithDescription("email and password are required").WriteError(w)
		return
	}

	res, err := h.AccountService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if res.Challenge != nil {
		(&trackersdk.TwoFactorRequiredError{
			Challenge: res.Challenge.Challenge,
			ExpiresIn: res.Challenge.ExpiresIn,
		}).WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res.Tokens)
}

// HandleRefresh handles POST /v1/sessions/refresh
//
//	@Summary		Rotate a refresh token
//	@Description	Exchanges a refresh token for a new pair. Presenting a rotated token revokes the session.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trackersdk.RefreshRequest	true	"Refresh token"
//	@Success		200		{object}	trackersdk.TokenResponse	"Token pair"
//	@Failure		401		{object}	trackersdk.APIError			"Invalid refresh token"
//	@Router			/v1/sessions/refresh [post].
func (h *SessionsHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req trackersdk.RefreshRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.RefreshToken == "" {
		trackersdk.ErrInvalidRequest.WithDescription("refresh_token is required").WriteError(w)
		return
	}

	pair, err := h.TokenService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pair)
}

// HandleRevoke handles POST /v1/sessions/revoke
//
//	@Summary		Sign out
//	@Description	Revokes the session of the access token, and of the refresh token when one is given.
//	@Tags			Sessions
//	@Security		BearerAuth
//	@Accept			json
//	@Param			request	body	trackersdk.RefreshRequest	false	"Refresh token"
//	@Success		204		"Revoked"
//	@Failure		401		{object}	trackersdk.APIError	"Invalid or missing access token"
//	@Router			/v1/sessions/revoke [post].
func (h *SessionsHandler) HandleRevoke(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req trackersdk.RefreshRequest
	_ = httpx.DecodeJSON(r, &req)

	if req.RefreshToken != "" {
		if err := h.TokenService.RevokeSession(ctx, req.RefreshToken); err != nil {
			writeError(ctx, w, err)
			return
		}
	}
	if c, ok := httpx.ClaimsFromContext(ctx); ok && c.SID != "" {
		if err := h.TokenService.RevokeSessionID(ctx, c.SID); err != nil {
			writeError(ctx, w, err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
