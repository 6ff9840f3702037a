package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/service"
	"github.com/aussiebroadwan/tracker/internal/tracker/store"
	"github.com/aussiebroadwan/tracker/pkg/httpx"
)

// MeHandler serves the signed-in user's own profile.
type MeHandler struct {
	AccountService  *service.AccountService
	ApprovalService *service.ApprovalService
	store           store.Store
}

type meResponse struct {
	Profile *domain.UserProfile   `json:"profile,omitempty"`
	Access  domain.AccessDecision `json:"access"`
}

// HandleGet handles GET /v1/me
//
//	@Summary		Current profile and access decision
//	@Description	Available to blocked users so the client can show why access is denied.
//	@Tags			Me
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	trackersdk.MeResponse	"Profile and access"
//	@Failure		401	{object}	trackersdk.APIError		"Invalid or missing access token"
//	@Router			/v1/me [get].
func (h *MeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, err := h.store.Profiles().GetProfile(ctx, httpx.UserID(ctx))
	switch {
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteJSON(w, http.StatusOK, meResponse{
			Access: h.ApprovalService.CheckAccess(ctx, httpx.UserID(ctx)),
		})
		return
	case err != nil:
		writeError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, meResponse{
		Profile: &p,
		Access:  h.ApprovalService.Decide(p),
	})
}

// HandleDelete handles DELETE /v1/me
//
//	@Summary		Delete the account
//	@Description	Removes the account. Profile, tasks, codes and stats are cleaned up asynchronously.
//	@Tags			Me
//	@Security		BearerAuth
//	@Success		204	"Deleted"
//	@Failure		401	{object}	trackersdk.APIError	"Invalid or missing access token"
//	@Failure		404	{object}	trackersdk.APIError	"Account not found"
//	@Router			/v1/me [delete].
func (h *MeHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.AccountService.DeleteAccount(ctx, httpx.UserID(ctx)); err != nil {
		writeError(ctx, w, err)
		return
	}
	if c, ok := httpx.ClaimsFromContext(ctx); ok && c.SID != "" {
		if err := h.AccountService.Tokens.RevokeSessionID(ctx, c.SID); err != nil {
			writeError(ctx, w, err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
