package sqlite

import (
	"context"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/store/drivers/sqlite/gen"
)

type kpisRepo struct {
	q *gen.Queries
}

func (r *kpisRepo) CreateKPI(ctx context.Context, k domain.KPI) error {
	err := r.q.CreateKPI(ctx, gen.CreateKPIParams{
		ID:                       k.ID,
		Category:                 k.Category,
		Name:                     k.Name,
		SignoffStatus:            k.SignoffStatus,
		Owner:                    k.Owner,
		DevStatus:                k.DevStatus,
		DevCompletion:            int64(k.DevCompletion),
		Remarks:                  k.Remarks,
		RemarksDate:              k.RemarksDate,
		CustomerDependency:       k.CustomerDependency,
		CustomerDependencyStatus: k.CustomerDependencyStatus,
		CustomerDependencyDate:   k.CustomerDependencyDate,
		RevisedDevStatus:         k.RevisedDevStatus,
		RevisedDevStatusDate:     k.RevisedDevStatusDate,
		SitStatus:                k.SITStatus,
		SitCompletion:            int64(k.SITCompletion),
		UatStatus:                k.UATStatus,
		UatCompletion:            int64(k.UATCompletion),
		ProdStatus:               k.ProdStatus,
		ProdCompletion:           int64(k.ProdCompletion),
		TargetDate:               k.TargetDate,
		SpecificDetails:          k.SpecificDetails,
		JiraTicket:               k.JiraTicket,
		CreatedBy:                k.CreatedBy,
		CreatedAt:                k.CreatedAt.UTC(),
		UpdatedAt:                k.UpdatedAt.UTC(),
	})
	return mapConflict(err)
}

func (r *kpisRepo) GetKPI(ctx context.Context, id string) (domain.KPI, error) {
	row, err := r.q.GetKPI(ctx, id)
	if err != nil {
		return domain.KPI{}, mapNotFound(err)
	}
	return mapKPI(row), nil
}

func (r *kpisRepo) ListKPIs(ctx context.Context) ([]domain.KPI, error) {
	rows, err := r.q.ListKPIs(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.KPI, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapKPI(row))
	}
	return out, nil
}

func (r *kpisRepo) UpdateKPI(ctx context.Context, k domain.KPI) error {
	return mapAffected(r.q.UpdateKPI(ctx, gen.UpdateKPIParams{
		Category:                 k.Category,
		Name:                     k.Name,
		SignoffStatus:            k.SignoffStatus,
		Owner:                    k.Owner,
		DevStatus:                k.DevStatus,
		DevCompletion:            int64(k.DevCompletion),
		Remarks:                  k.Remarks,
		RemarksDate:              k.RemarksDate,
		CustomerDependency:       k.CustomerDependency,
		CustomerDependencyStatus: k.CustomerDependencyStatus,
		CustomerDependencyDate:   k.CustomerDependencyDate,
		RevisedDevStatus:         k.RevisedDevStatus,
		RevisedDevStatusDate:     k.RevisedDevStatusDate,
		SitStatus:                k.SITStatus,
		SitCompletion:            int64(k.SITCompletion),
		UatStatus:                k.UATStatus,
		UatCompletion:            int64(k.UATCompletion),
		ProdStatus:               k.ProdStatus,
		ProdCompletion:           int64(k.ProdCompletion),
		TargetDate:               k.TargetDate,
		SpecificDetails:          k.SpecificDetails,
		JiraTicket:               k.JiraTicket,
		UpdatedAt:                k.UpdatedAt.UTC(),
		ID:                       k.ID,
	}))
}

func (r *kpisRepo) DeleteKPI(ctx context.Context, id string) error {
	return mapAffected(r.q.DeleteKPI(ctx, id))
}

func mapKPI(row gen.Kpi) domain.KPI {
	return domain.KPI{
		ID:                       row.ID,
		Category:                 row.Category,
		Name:                     row.Name,
		SignoffStatus:            row.SignoffStatus,
		Owner:                    row.Owner,
		DevStatus:                row.DevStatus,
		DevCompletion:            int(row.DevCompletion),
		Remarks:                  row.Remarks,
		RemarksDate:              row.RemarksDate,
		CustomerDependency:       row.CustomerDependency,
		CustomerDependencyStatus: row.CustomerDependencyStatus,
		CustomerDependencyDate:   row.CustomerDependencyDate,
		RevisedDevStatus:         row.RevisedDevStatus,
		RevisedDevStatusDate:     row.RevisedDevStatusDate,
		SITStatus:                row.SitStatus,
		SITCompletion:            int(row.SitCompletion),
		UATStatus:                row.UatStatus,
		UATCompletion:            int(row.UatCompletion),
		ProdStatus:               row.ProdStatus,
		ProdCompletion:           int(row.ProdCompletion),
		TargetDate:               row.TargetDate,
		SpecificDetails:          row.SpecificDetails,
		JiraTicket:               row.JiraTicket,
		CreatedBy:                row.CreatedBy,
		CreatedAt:                row.CreatedAt,
		UpdatedAt:                row.UpdatedAt,
	}
}
