package sqlite

import (
	"context"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/store/drivers/sqlite/gen"
)

type userStatsRepo struct {
	q *gen.Queries
}

func (r *userStatsRepo) UpsertUserStats(ctx context.Context, s domain.UserStats) error {
	return r.q.UpsertUserStats(ctx, gen.UpsertUserStatsParams{
		UserID:     s.UserID,
		Total:      int64(s.Total),
		Pending:    int64(s.Pending),
		InProgress: int64(s.InProgress),
		Completed:  int64(s.Completed),
		UpdatedAt:  s.UpdatedAt.UTC(),
	})
}

func (r *userStatsRepo) GetUserStats(ctx context.Context, userID string) (domain.UserStats, error) {
	row, err := r.q.GetUserStats(ctx, userID)
	if err != nil {
		return domain.UserStats{}, mapNotFound(err)
	}
	return mapUserStats(row), nil
}

func (r *userStatsRepo) ListUserStats(ctx context.Context) ([]domain.UserStats, error) {
	rows, err := r.q.ListUserStats(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.UserStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapUserStats(row))
	}
	return out, nil
}

func (r *userStatsRepo) DeleteUserStats(ctx context.Context, userID string) (int64, error) {
	return r.q.DeleteUserStats(ctx, userID)
}

func mapUserStats(row gen.UserStat) domain.UserStats {
	return domain.UserStats{
		UserID:     row.UserID,
		Total:      int(row.Total),
		Pending:    int(row.Pending),
		InProgress: int(row.InProgress),
		Completed:  int(row.Completed),
		UpdatedAt:  row.UpdatedAt,
	}
}
