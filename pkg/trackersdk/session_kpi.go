package trackersdk

import (
	"context"
	"net/http"
)

// KPIs are returned as generic JSON objects keyed by column name.

func (s *Session) ListKPIs(ctx context.Context) ([]map[string]any, error) {
	var out []map[string]any
	if err := s.call(ctx, http.MethodGet, "/v1/kpis", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) CreateKPI(ctx context.Context, kpi map[string]any) (map[string]any, error) {
	var out map[string]any
	if err := s.call(ctx, http.MethodPost, "/v1/kpis", kpi, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateKPI changes the named columns. Every column must be editable by the
// caller or nothing is written.
func (s *Session) UpdateKPI(ctx context.Context, id string, changes KPIUpdateRequest) (map[string]any, error) {
	var out map[string]any
	if err := s.call(ctx, http.MethodPatch, "/v1/kpis/"+id, changes, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) DeleteKPI(ctx context.Context, id string) error {
	return s.call(ctx, http.MethodDelete, "/v1/kpis/"+id, nil, nil, http.StatusNoContent)
}

func (s *Session) KPIHistory(ctx context.Context, id string) ([]AuditLog, error) {
	var out []AuditLog
	if err := s.call(ctx, http.MethodGet, "/v1/kpis/"+id+"/history", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) EditableColumns(ctx context.Context) ([]string, error) {
	var out []string
	if err := s.call(ctx, http.MethodGet, "/v1/permissions/editable", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}
