package service

import (
	"context"
	"strings"
	"time"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/store"
)

const (
	DefaultAuditLimit = 100
	MaxAuditLimit     = 1000
)

var csvHeader = []string{"Date", "Time", "User", "KPI", "Category", "Field", "Old Value", "New Value", "Action"}

type AuditService struct {
	Store store.Store
	Now   Clock
}

// List returns matching entries, newest first. The limit defaults to
// DefaultAuditLimit and is capped at MaxAuditLimit.
func (s *AuditService) List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditLog, error) {
	switch {
	case f.Limit <= 0:
		f.Limit = DefaultAuditLimit
	case f.Limit > MaxAuditLimit:
		f.Limit = MaxAuditLimit
	}
	f.UserEmail = normalizeEmail(f.UserEmail)
	return s.Store.AuditLogs().ListAuditLogs(ctx, f)
}

// History is every entry of one KPI, newest first.
func (s *AuditService) History(ctx context.Context, kpiID string) ([]domain.AuditLog, error) {
	return s.Store.AuditLogs().ListKPIAuditLogs(ctx, kpiID)
}

// Stats aggregates every entry matching f, ignoring its limit.
func (s *AuditService) Stats(ctx context.Context, f domain.AuditFilter) (domain.AuditStats, error) {
	f.Limit = -1
	f.UserEmail = normalizeEmail(f.UserEmail)
	logs, err := s.Store.AuditLogs().ListAuditLogs(ctx, f)
	if err != nil {
		return domain.AuditStats{}, err
	}

	st := domain.AuditStats{UserChanges: map[string]int{}}
	kpis := map[string]struct{}{}
	for _, l := range logs {
		st.TotalChanges++
		st.UserChanges[l.ChangedByEmail]++
		kpis[l.KPIID] = struct{}{}
		switch l.ChangeType {
		case domain.ChangeCreate:
			st.Creates++
		case domain.ChangeUpdate:
			st.Updates++
		case domain.ChangeDelete:
			st.Deletes++
		}
	}
	st.UniqueUsers = len(st.UserChanges)
	st.UniqueKPIs = len(kpis)
	return st, nil
}

// Export renders the entries matching f as CSV and names the file after
// today's UTC date.
func (s *AuditService) Export(ctx context.Context, f domain.AuditFilter) (filename string, body string, err error) {
	logs, err := s.List(ctx, f)
	if err != nil {
		return "", "", err
	}
	return CSVFilename(s.Now.now()), RenderCSV(logs), nil
}

// RenderCSV writes a header row and one fully quoted row per entry, joined
// with "\n" and without a trailing newline.
func RenderCSV(logs []domain.AuditLog) string {
	lines := make([]string, 0, len(logs)+1)
	lines = append(lines, strings.Join(csvHeader, ","))
	for _, l := range logs {
		at := l.ChangedAt.UTC()
		lines = append(lines, quoteRow(
			at.Format("2006-01-02"),
			at.Format("15:04:05"),
			l.ChangedByName,
			l.KPIName,
			l.KPICategory,
			l.Field,
			l.OldValue,
			l.NewValue,
			string(l.ChangeType),
		))
	}
	return strings.Join(lines, "\n")
}

func CSVFilename(now time.Time) string {
	return "audit-log-" + now.UTC().Format("2006-01-02") + ".csv"
}

func quoteRow(cells ...string) string {
	quoted := make([]string, len(cells))
	for i, c := range cells {
		quoted[i] = `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
