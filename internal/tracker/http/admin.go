package http

import (
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/tracker/internal/tracker/service"
	"github.com/aussiebroadwan/tracker/pkg/httpx"
	"github.com/aussiebroadwan/tracker/pkg/slogx"
	"github.com/aussiebroadwan/tracker/pkg/trackersdk"
)

// AdminHandler serves the administrator's endpoints. Every route is behind
// httpx.RequireEmail; the services check the actor again.
type AdminHandler struct {
	Policy              *service.ApprovalPolicy
	ApprovalService     *service.ApprovalService
	CleanupService      *service.CleanupService
	HousekeepingService *service.HousekeepingService
	TaskService         *service.TaskService
}

// HandleListUsers handles GET /v1/admin/users
//
//	@Summary		List every profile
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		trackersdk.Profile	"Profiles, newest first"
//	@Failure		403	{object}	trackersdk.APIError	"Not the administrator"
//	@Router			/v1/admin/users [get].
func (h *AdminHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.ApprovalService.ListUsers(ctx, actorFrom(ctx, h.Policy))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, users)
}

// HandlePending handles GET /v1/admin/approvals
//
//	@Summary		Approval queue
//	@Description	Verified profiles waiting on an admin decision. Unverified profiles never appear.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		trackersdk.Profile	"Pending profiles, oldest first"
//	@Failure		403	{object}	trackersdk.APIError	"Not the administrator"
//	@Router			/v1/admin/approvals [get].
func (h *AdminHandler) HandlePending(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	queue, err := h.ApprovalService.PendingQueue(ctx, actorFrom(ctx, h.Policy))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, queue)
}

// HandleApprove handles POST /v1/admin/users/{uid}/approve
//
//	@Summary		Approve a user
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			uid	path		string				true	"User ID"
//	@Success		200	{object}	trackersdk.Profile	"Updated profile"
//	@Failure		403	{object}	trackersdk.APIError	"Not the administrator or domain not allowed"
//	@Failure		404	{object}	trackersdk.APIError	"User not found"
//	@Failure		409	{object}	trackersdk.APIError	"Email not verified"
//	@Router			/v1/admin/users/{uid}/approve [post].
func (h *AdminHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, err := h.ApprovalService.Approve(ctx, actorFrom(ctx, h.Policy), r.PathValue("uid"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

// HandleReject handles POST /v1/admin/users/{uid}/reject
//
//	@Summary		Reject a user
//	@Description	Final: rejected users stay rejected on later logins and verifications.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			uid	path		string				true	"User ID"
//	@Success		200	{object}	trackersdk.Profile	"Updated profile"
//	@Failure		403	{object}	trackersdk.APIError	"Not the administrator"
//	@Failure		404	{object}	trackersdk.APIError	"User not found"
//	@Router			/v1/admin/users/{uid}/reject [post].
func (h *AdminHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, err := h.ApprovalService.Reject(ctx, actorFrom(ctx, h.Policy), r.PathValue("uid"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

// HandleOrphans handles POST /v1/admin/orphans
//
//	@Summary		Scan for orphaned profiles
//	@Description	Finds profiles whose account no longer exists. With dryRun the profiles are only listed.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trackersdk.OrphanScanRequest	false	"Scan mode"
//	@Success		200		{object}	trackersdk.OrphanReport			"Scan report"
//	@Failure		403		{object}	trackersdk.APIError				"Not the administrator"
//	@Router			/v1/admin/orphans [post].
func (h *AdminHandler) HandleOrphans(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req trackersdk.OrphanScanRequest
	if r.ContentLength != 0 {
		if err := httpx.DecodeJSON(r, &req); err != nil {
			trackersdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
			return
		}
	}

	report, err := h.CleanupService.ScanOrphans(ctx, actorFrom(ctx, h.Policy), req.DryRun)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, report)
}

// HandleHousekeeping handles POST /v1/admin/housekeeping
//
//	@Summary		Sweep expired rows
//	@Description	Removes expired codes, verification links, challenges and refresh tokens.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	trackersdk.SweepReport	"Rows removed"
//	@Failure		403	{object}	trackersdk.APIError		"Not the administrator"
//	@Router			/v1/admin/housekeeping [post].
func (h *AdminHandler) HandleHousekeeping(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	report := h.HousekeepingService.Sweep(ctx)
	slogx.FromContext(ctx).Info("manual sweep", slog.Any("report", report))
	httpx.WriteJSON(w, http.StatusOK, report)
}

// HandleTeamStats handles GET /v1/admin/stats
//
//	@Summary		Team task totals
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	domain.TeamStats	"Team totals"
//	@Failure		403	{object}	trackersdk.APIError	"Not the administrator"
//	@Router			/v1/admin/stats [get].
func (h *AdminHandler) HandleTeamStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.TaskService.TeamStats(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, stats)
}
