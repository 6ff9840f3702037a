package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/service"
	"github.com/aussiebroadwan/tracker/pkg/httpx"
	"github.com/aussiebroadwan/tracker/pkg/trackersdk"
)

// AuditHandler serves the KPI change log.
type AuditHandler struct {
	AuditService *service.AuditService
}

// auditFilter reads userEmail, kpiId, field, start, end and limit. Dates
// are RFC 3339 or YYYY-MM-DD; a date-only end covers the whole day.
func auditFilter(q url.Values) (domain.AuditFilter, error) {
	f := domain.AuditFilter{
		UserEmail: q.Get("userEmail"),
		KPIID:     q.Get("kpiId"),
		Field:     q.Get("field"),
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return f, fmt.Errorf("limit must be an integer")
		}
		f.Limit = n
	}
	if v := q.Get("start"); v != "" {
		t, _, err := parseBound(v)
		if err != nil {
			return f, fmt.Errorf("start: %w", err)
		}
		f.Start = &t
	}
	if v := q.Get("end"); v != "" {
		t, dateOnly, err := parseBound(v)
		if err != nil {
			return f, fmt.Errorf("end: %w", err)
		}
		if dateOnly {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		f.End = &t
	}
	return f, nil
}

func parseBound(v string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), false, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("expected RFC 3339 or YYYY-MM-DD")
	}
	return t, true, nil
}

// HandleList handles GET /v1/audit
//
//	@Summary		Search the audit log
//	@Tags			Audit
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userEmail	query		string				false	"Author email"
//	@Param			kpiId		query		string				false	"KPI ID"
//	@Param			field		query		string				false	"Column name"
//	@Param			start		query		string				false	"From (RFC 3339 or YYYY-MM-DD)"
//	@Param			end			query		string				false	"Until (RFC 3339 or YYYY-MM-DD)"
//	@Param			limit		query		int					false	"Maximum entries"
//	@Success		200			{array}		trackersdk.AuditLog	"Entries, newest first"
//	@Failure		400			{object}	trackersdk.APIError	"Invalid filter"
//	@Router			/v1/audit [get].
func (h *AuditHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	f, err := auditFilter(r.URL.Query())
	if err != nil {
		trackersdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		return
	}
	logs, err := h.AuditService.List(ctx, f)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, logs)
}

// HandleStats handles GET /v1/audit/stats
//
//	@Summary		Audit log totals
//	@Tags			Audit
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userEmail	query		string				false	"Author email"
//	@Param			kpiId		query		string				false	"KPI ID"
//	@Param			start		query		string				false	"From"
//	@Param			end			query		string				false	"Until"
//	@Success		200			{object}	domain.AuditStats	"Totals"
//	@Router			/v1/audit/stats [get].
func (h *AuditHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	f, err := auditFilter(r.URL.Query())
	if err != nil {
		trackersdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		return
	}
	st, err := h.AuditService.Stats(ctx, f)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, st)
}

// HandleExport handles GET /v1/audit/export
//
//	@Summary		Export the audit log as CSV
//	@Tags			Audit
//	@Security		BearerAuth
//	@Produce		text/csv
//	@Param			userEmail	query		string	false	"Author email"
//	@Param			kpiId		query		string	false	"KPI ID"
//	@Param			start		query		string	false	"From"
//	@Param			end			query		string	false	"Until"
//	@Success		200			{string}	string	"CSV file"
//	@Router			/v1/audit/export [get].
func (h *AuditHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	f, err := auditFilter(r.URL.Query())
	if err != nil {
		trackersdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		return
	}
	name, body, err := h.AuditService.Export(ctx, f)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	httpx.NoCache(w)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}
