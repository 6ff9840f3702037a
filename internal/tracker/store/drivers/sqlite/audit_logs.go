package sqlite

import (
	"context"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/store/drivers/sqlite/gen"
)

type auditLogsRepo struct {
	q *gen.Queries
}

func (r *auditLogsRepo) CreateAuditLog(ctx context.Context, a domain.AuditLog) error {
	return r.q.CreateAuditLog(ctx, gen.CreateAuditLogParams{
		ID:             a.ID,
		KpiID:          a.KPIID,
		KpiName:        a.KPIName,
		KpiCategory:    a.KPICategory,
		Field:          a.Field,
		OldValue:       a.OldValue,
		NewValue:       a.NewValue,
		ChangedBy:      a.ChangedBy,
		ChangedByEmail: a.ChangedByEmail,
		ChangedByName:  a.ChangedByName,
		ChangedAt:      a.ChangedAt.UTC(),
		ChangeType:     string(a.ChangeType),
	})
}

func (r *auditLogsRepo) ListAuditLogs(ctx context.Context, f domain.AuditFilter) ([]domain.AuditLog, error) {
	limit := int64(f.Limit)
	if limit < 0 {
		limit = -1 // sqlite: no limit
	}
	rows, err := r.q.ListAuditLogs(ctx, gen.ListAuditLogsParams{
		UserEmail: f.UserEmail,
		KpiID:     f.KPIID,
		Field:     f.Field,
		StartAt:   mapOptionalTime(f.Start),
		EndAt:     mapOptionalTime(f.End),
		RowLimit:  limit,
	})
	if err != nil {
		return nil, err
	}
	return mapAuditLogs(rows), nil
}

func (r *auditLogsRepo) ListKPIAuditLogs(ctx context.Context, kpiID string) ([]domain.AuditLog, error) {
	rows, err := r.q.ListKPIAuditLogs(ctx, kpiID)
	if err != nil {
		return nil, err
	}
	return mapAuditLogs(rows), nil
}

func mapAuditLogs(rows []gen.AuditLog) []domain.AuditLog {
	out := make([]domain.AuditLog, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.AuditLog{
			ID:             row.ID,
			KPIID:          row.KpiID,
			KPIName:        row.KpiName,
			KPICategory:    row.KpiCategory,
			Field:          row.Field,
			OldValue:       row.OldValue,
			NewValue:       row.NewValue,
			ChangedBy:      row.ChangedBy,
			ChangedByEmail: row.ChangedByEmail,
			ChangedByName:  row.ChangedByName,
			ChangedAt:      row.ChangedAt,
			ChangeType:     domain.ChangeType(row.ChangeType),
		})
	}
	return out
}
