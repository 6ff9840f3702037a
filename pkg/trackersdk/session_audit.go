package trackersdk

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
)

// AuditQuery narrows the audit log. Empty fields do not filter; Start and
// End accept RFC 3339 or YYYY-MM-DD.
type AuditQuery struct {
	UserEmail string
	KPIID     string
	Field     string
	Start     string
	End       string
	Limit     int
}

func (q AuditQuery) encode() string {
	v := url.Values{}
	set := func(k, s string) {
		if s != "" {
			v.Set(k, s)
		}
	}
	set("userEmail", q.UserEmail)
	set("kpiId", q.KPIID)
	set("field", q.Field)
	set("start", q.Start)
	set("end", q.End)
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

type AuditStats struct {
	TotalChanges int            `json:"totalChanges"`
	UniqueUsers  int            `json:"uniqueUsers"`
	UniqueKPIs   int            `json:"uniqueKPIs"`
	Creates      int            `json:"creates"`
	Updates      int            `json:"updates"`
	Deletes      int            `json:"deletes"`
	UserChanges  map[string]int `json:"userChanges"`
}

func (s *Session) ListAudit(ctx context.Context, q AuditQuery) ([]AuditLog, error) {
	var out []AuditLog
	if err := s.call(ctx, http.MethodGet, "/v1/audit"+q.encode(), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) AuditStats(ctx context.Context, q AuditQuery) (*AuditStats, error) {
	var out AuditStats
	if err := s.call(ctx, http.MethodGet, "/v1/audit/stats"+q.encode(), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExportAudit downloads the CSV export and returns the server supplied
// filename with the file contents.
func (s *Session) ExportAudit(ctx context.Context, q AuditQuery) (string, []byte, error) {
	resp, err := s.do(ctx, http.MethodGet, "/v1/audit/export"+q.encode(), nil)
	if err != nil {
		return "", nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return "", nil, decodeJSON(resp, nil, http.StatusOK)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var name string
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		name = params["filename"]
	}
	return name, body, nil
}
