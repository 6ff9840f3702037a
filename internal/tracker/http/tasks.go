package http

import (
	"net/http"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/service"
	"github.com/aussiebroadwan/tracker/pkg/httpx"
	"github.com/aussiebroadwan/tracker/pkg/trackersdk"
)

// TasksHandler serves the signed-in user's own tasks.
type TasksHandler struct {
	TaskService *service.TaskService
}

func decodeTask(r *http.Request) (service.TaskInput, bool) {
	var req trackersdk.TaskRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return service.TaskInput{}, false
	}
	return service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		Date:        req.Date,
	}, true
}

// HandleList handles GET /v1/tasks
//
//	@Summary		List my tasks
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		trackersdk.Task		"Tasks"
//	@Failure		403	{object}	trackersdk.APIError	"Access blocked"
//	@Router			/v1/tasks [get].
func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tasks, err := h.TaskService.List(ctx, httpx.UserID(ctx))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tasks)
}

// HandleCreate handles POST /v1/tasks
//
//	@Summary		Create a task
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trackersdk.TaskRequest	true	"Task"
//	@Success		201		{object}	trackersdk.Task			"Created task"
//	@Failure		400		{object}	trackersdk.APIError		"Invalid task"
//	@Failure		403		{object}	trackersdk.APIError		"Access blocked"
//	@Router			/v1/tasks [post].
func (h *TasksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	in, ok := decodeTask(r)
	if !ok {
		trackersdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	t, err := h.TaskService.Create(ctx, httpx.UserID(ctx), httpx.Email(ctx), in)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, t)
}

// HandleUpdate handles PUT /v1/tasks/{id}
//
//	@Summary		Update a task
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Task ID"
//	@Param			request	body		trackersdk.TaskRequest	true	"Task"
//	@Success		200		{object}	trackersdk.Task			"Updated task"
//	@Failure		400		{object}	trackersdk.APIError		"Invalid task"
//	@Failure		404		{object}	trackersdk.APIError		"Task not found"
//	@Router			/v1/tasks/{id} [put].
func (h *TasksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	in, ok := decodeTask(r)
	if !ok {
		trackersdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	t, err := h.TaskService.Update(ctx, httpx.UserID(ctx), r.PathValue("id"), in)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, t)
}

// HandleDelete handles DELETE /v1/tasks/{id}
//
//	@Summary		Delete a task
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Task ID"
//	@Success		204	"Deleted"
//	@Failure		404	{object}	trackersdk.APIError	"Task not found"
//	@Router			/v1/tasks/{id} [delete].
func (h *TasksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.TaskService.Delete(ctx, httpx.UserID(ctx), r.PathValue("id")); err != nil {
		writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleStats handles GET /v1/tasks/stats
//
//	@Summary		My task totals
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	trackersdk.TaskStats	"Totals"
//	@Router			/v1/tasks/stats [get].
func (h *TasksHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	st, err := h.TaskService.Stats(ctx, httpx.UserID(ctx))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, st)
}
