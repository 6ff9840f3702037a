package http

import (
	"net/http"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/service"
	"github.com/aussiebroadwan/tracker/pkg/httpx"
	"github.com/aussiebroadwan/tracker/pkg/trackersdk"
)

// KPIsHandler serves the shared KPI table. Column edits are checked against
// the column permissions.
type KPIsHandler struct {
	Policy       *service.ApprovalPolicy
	KPIService   *service.KPIService
	AuditService *service.AuditService
}

// HandleList handles GET /v1/kpis
//
//	@Summary		List KPIs
//	@Tags			KPIs
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		domain.KPI			"KPIs by category and name"
//	@Failure		403	{object}	trackersdk.APIError	"Access blocked"
//	@Router			/v1/kpis [get].
func (h *KPIsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	kpis, err := h.KPIService.List(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, kpis)
}

// HandleCreate handles POST /v1/kpis
//
//	@Summary		Create a KPI
//	@Tags			KPIs
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		domain.KPI			true	"KPI"
//	@Success		201		{object}	domain.KPI			"Created KPI"
//	@Failure		400		{object}	trackersdk.APIError	"Invalid KPI"
//	@Router			/v1/kpis [post].
func (h *KPIsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in domain.KPI
	if err := httpx.DecodeJSON(r, &in); err != nil {
		trackersdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	k, err := h.KPIService.Create(ctx, actorFrom(ctx, h.Policy), in)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, k)
}

// HandleGet handles GET /v1/kpis/{id}
//
//	@Summary		Get a KPI
//	@Tags			KPIs
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string				true	"KPI ID"
//	@Success		200	{object}	domain.KPI			"KPI"
//	@Failure		404	{object}	trackersdk.APIError	"KPI not found"
//	@Router			/v1/kpis/{id} [get].
func (h *KPIsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	k, err := h.KPIService.Get(ctx, r.PathValue("id"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, k)
}

// HandleUpdate handles PATCH /v1/kpis/{id}
//
//	@Summary		Edit KPI columns
//	@Description	Body maps column names to their new text value. Every named column must be editable by the
//	@Description	caller or nothing is written. Each changed column is recorded in the audit log.
//	@Tags			KPIs
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"KPI ID"
//	@Param			request	body		trackersdk.KPIUpdateRequest	true	"Column values"
//	@Success		200		{object}	domain.KPI					"Updated KPI"
//	@Failure		400		{object}	trackersdk.APIError			"Unknown column or invalid value"
//	@Failure		403		{object}	trackersdk.APIError			"Column not editable"
//	@Failure		404		{object}	trackersdk.APIError			"KPI not found"
//	@Router			/v1/kpis/{id} [patch].
func (h *KPIsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req trackersdk.KPIUpdateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		trackersdk.ErrInvalidRequest.WithDescription("body must map column names to string values").WriteError(w)
		return
	}
	changes := make(map[domain.Column]string, len(req))
	for c, v := range req {
		changes[domain.Column(c)] = v
	}

	k, err := h.KPIService.UpdateColumns(ctx, actorFrom(ctx, h.Policy), r.PathValue("id"), changes)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, k)
}

// HandleDelete handles DELETE /v1/kpis/{id}
//
//	@Summary		Delete a KPI
//	@Tags			KPIs
//	@Security		BearerAuth
//	@Param			id	path	string	true	"KPI ID"
//	@Success		204	"Deleted"
//	@Failure		404	{object}	trackersdk.APIError	"KPI not found"
//	@Router			/v1/kpis/{id} [delete].
func (h *KPIsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.KPIService.Delete(ctx, actorFrom(ctx, h.Policy), r.PathValue("id")); err != nil {
		writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSummary handles GET /v1/kpis/summary
//
//	@Summary		KPI progress summary
//	@Tags			KPIs
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	domain.KPISummary	"Counts and average completion"
//	@Router			/v1/kpis/summary [get].
func (h *KPIsHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sum, err := h.KPIService.Summary(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sum)
}

// HandleHistory handles GET /v1/kpis/{id}/history
//
//	@Summary		Change history of a KPI
//	@Tags			KPIs
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string				true	"KPI ID"
//	@Success		200	{array}		trackersdk.AuditLog	"Entries, newest first"
//	@Router			/v1/kpis/{id}/history [get].
func (h *KPIsHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	logs, err := h.AuditService.History(ctx, r.PathValue("id"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, logs)
}
