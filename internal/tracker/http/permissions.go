package http

import (
	"net/http"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/service"
	"github.com/aussiebroadwan/tracker/pkg/httpx"
	"github.com/aussiebroadwan/tracker/pkg/trackersdk"
)

// PermissionsHandler serves the per-column edit permissions.
type PermissionsHandler struct {
	Policy            *service.ApprovalPolicy
	PermissionService *service.PermissionService
}

// HandleList handles GET /v1/permissions
//
//	@Summary		List column permissions
//	@Tags			Permissions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}	domain.ColumnPermission	"Permissions"
//	@Router			/v1/permissions [get].
func (h *PermissionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	perms, err := h.PermissionService.List(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, perms)
}

// HandleEditable handles GET /v1/permissions/editable
//
//	@Summary		Columns I may edit
//	@Tags			Permissions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}	string	"Column names in table order"
//	@Router			/v1/permissions/editable [get].
func (h *PermissionsHandler) HandleEditable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := actorFrom(ctx, h.Policy)

	cols, err := h.PermissionService.EditableColumns(ctx, actor.Email, actor.IsAdmin)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cols)
}

// HandleSet handles PUT /v1/permissions/{column}
//
//	@Summary		Assign editors to a column
//	@Description	Replaces the users allowed to edit the column. The administrator can always edit.
//	@Tags			Permissions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			column	path		string						true	"Column name"
//	@Param			request	body		trackersdk.PermissionRequest	true	"Assigned users"
//	@Success		200		{object}	domain.ColumnPermission		"Permission"
//	@Failure		400		{object}	trackersdk.APIError			"Unknown column"
//	@Failure		403		{object}	trackersdk.APIError			"Not the administrator"
//	@Router			/v1/permissions/{column} [put].
func (h *PermissionsHandler) HandleSet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req trackersdk.PermissionRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		trackersdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	p, err := h.PermissionService.Set(ctx, actorFrom(ctx, h.Policy),
		domain.Column(r.PathValue("column")), req.ColumnDisplayName, req.AssignedUsers)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

// HandleDelete handles DELETE /v1/permissions/{column}
//
//	@Summary		Remove a column permission
//	@Tags			Permissions
//	@Security		BearerAuth
//	@Param			column	path	string	true	"Column name"
//	@Success		204		"Deleted"
//	@Failure		403		{object}	trackersdk.APIError	"Not the administrator"
//	@Failure		404		{object}	trackersdk.APIError	"Permission not found"
//	@Router			/v1/permissions/{column} [delete].
func (h *PermissionsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.PermissionService.Delete(ctx, actorFrom(ctx, h.Policy), domain.Column(r.PathValue("column"))); err != nil {
		writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
