package http

import (
	"net/http"

	"github.com/aussiebroadwan/tracker/internal/tracker/service"
	"github.com/aussiebroadwan/tracker/pkg/httpx"
	"github.com/aussiebroadwan/tracker/pkg/slogx"
	"github.com/aussiebroadwan/tracker/pkg/trackersdk"
)

// TwoFactorHandler serves the emailed code step of a login.
type TwoFactorHandler struct {
	TwoFactorService *service.TwoFactorService
}

// HandleVerify handles POST /v1/2fa/verify
//
//	@Summary		Complete a two-factor login
//	@Description	Exchanges the challenge and the mailed 6 digit code for a token pair. A code works once.
//	@Tags			Two-Factor
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trackersdk.TwoFactorVerifyRequest	true	"Challenge and code"
//	@Success		200		{object}	trackersdk.TokenResponse			"Token pair"
//	@Failure		401		{object}	trackersdk.APIError					"Invalid code or challenge"
//	@Failure		429		{object}	trackersdk.APIError					"Rate limit exceeded"
//	@Router			/v1/2fa/verify [post].
func (h *TwoFactorHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req trackersdk.TwoFactorVerifyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.Challenge == "" || req.Code == "" {
		trackersdk.ErrInvalidRequest.WithDescription("challenge and code are required").WriteError(w)
		return
	}

	pair, err := h.TwoFactorService.VerifyLogin(ctx, req.Challenge, req.Code)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pair)
}

// HandleResend handles POST /v1/2fa/resend
//
//	@Summary		Resend the login code
//	@Description	Mails a new code for the challenge. The previous code stops working.
//	@Tags			Two-Factor
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trackersdk.TwoFactorResendRequest		true	"Challenge"
//	@Success		200		{object}	trackersdk.TwoFactorChallengeResponse	"Challenge"
//	@Failure		401		{object}	trackersdk.APIError						"Invalid challenge"
//	@Router			/v1/2fa/resend [post].
func (h *TwoFactorHandler) HandleResend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req trackersdk.TwoFactorResendRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.Challenge == "" {
		trackersdk.ErrInvalidRequest.WithDescription("challenge is required").WriteError(w)
		return
	}

	ch, err := h.TwoFactorService.ResendChallenge(ctx, req.Challenge)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, ch)
}

// HandleRemaining handles GET /v1/2fa/remaining?challenge=
//
//	@Summary		Seconds left on the login code
//	@Description	Whole seconds until the current code expires, 0 when there is none.
//	@Tags			Two-Factor
//	@Produce		json
//	@Param			challenge	query		string									true	"Challenge"
//	@Success		200			{object}	trackersdk.TwoFactorRemainingResponse	"Seconds remaining"
//	@Failure		401			{object}	trackersdk.APIError						"Invalid challenge"
//	@Router			/v1/2fa/remaining [get].
func (h *TwoFactorHandler) HandleRemaining(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	secs, err := h.TwoFactorService.ChallengeRemaining(ctx, r.URL.Query().Get("challenge"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, trackersdk.TwoFactorRemainingResponse{Seconds: secs})
}

// HandleToggle handles PUT /v1/2fa
//
//	@Summary		Enable or disable two-factor login
//	@Tags			Two-Factor
//	@Security		BearerAuth
//	@Accept			json
//	@Param			request	body	trackersdk.TwoFactorToggleRequest	true	"Desired state"
//	@Success		204		"Updated"
//	@Failure		401		{object}	trackersdk.APIError	"Invalid or missing access token"
//	@Failure		403		{object}	trackersdk.APIError	"Access blocked"
//	@Router			/v1/2fa [put].
func (h *TwoFactorHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req trackersdk.TwoFactorToggleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		trackersdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	if err := h.TwoFactorService.SetEnabled(ctx, httpx.UserID(ctx), req.Enabled); err != nil {
		writeError(ctx, w, err)
		return
	}
	log.Info("two-factor updated", "enabled", req.Enabled)
	w.WriteHeader(http.StatusNoContent)
}
