package sqlite

import (
	"context"
	"encoding/json"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/store/drivers/sqlite/gen"
)

type permissionsRepo struct {
	q *gen.Queries
}

// assigned_users is stored as a JSON array of emails.
func (r *permissionsRepo) UpsertPermission(ctx context.Context, p domain.ColumnPermission) error {
	users := p.AssignedUsers
	if users == nil {
		users = []string{}
	}
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return r.q.UpsertColumnPermission(ctx, gen.UpsertColumnPermissionParams{
		ID:                p.ID,
		ColumnName:        string(p.ColumnName),
		ColumnDisplayName: p.ColumnDisplayName,
		AssignedUsers:     string(raw),
		CreatedBy:         p.CreatedBy,
		CreatedAt:         p.CreatedAt.UTC(),
		UpdatedAt:         p.UpdatedAt.UTC(),
	})
}

func (r *permissionsRepo) GetPermission(ctx context.Context, column domain.Column) (domain.ColumnPermission, error) {
	row, err := r.q.GetColumnPermission(ctx, string(column))
	if err != nil {
		return domain.ColumnPermission{}, mapNotFound(err)
	}
	return mapPermission(row)
}

func (r *permissionsRepo) ListPermissions(ctx context.Context) ([]domain.ColumnPermission, error) {
	rows, err := r.q.ListColumnPermissions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ColumnPermission, 0, len(rows))
	for _, row := range rows {
		p, err := mapPermission(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *permissionsRepo) DeletePermission(ctx context.Context, column domain.Column) error {
	return mapAffected(r.q.DeleteColumnPermission(ctx, string(column)))
}

func mapPermission(row gen.ColumnPermission) (domain.ColumnPermission, error) {
	users := []string{}
	if row.AssignedUsers != "" {
		if err := json.Unmarshal([]byte(row.AssignedUsers), &users); err != nil {
			return domain.ColumnPermission{}, err
		}
	}
	return domain.ColumnPermission{
		ID:                row.ID,
		ColumnName:        domain.Column(row.ColumnName),
		ColumnDisplayName: row.ColumnDisplayName,
		AssignedUsers:     users,
		CreatedBy:         row.CreatedBy,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}, nil
}
