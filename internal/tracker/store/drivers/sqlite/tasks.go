package sqlite

import (
	"context"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/store"
	"github.com/aussiebroadwan/tracker/internal/tracker/store/drivers/sqlite/gen"
)

type tasksRepo struct {
	q *gen.Queries
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	err := r.q.CreateTask(ctx, gen.CreateTaskParams{
		ID:          t.ID,
		UserID:      t.UserID,
		UserEmail:   t.UserEmail,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Date:        t.Date,
		CreatedAt:   t.CreatedAt.UTC(),
		UpdatedAt:   t.UpdatedAt.UTC(),
	})
	return mapConflict(err)
}

func (r *tasksRepo) GetTask(ctx context.Context, id string) (domain.Task, error) {
	row, err := r.q.GetTask(ctx, id)
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return mapTask(row), nil
}

func (r *tasksRepo) ListUserTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	rows, err := r.q.ListUserTasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapTask(row))
	}
	return out, nil
}

func (r *tasksRepo) UpdateTask(ctx context.Context, t domain.Task) error {
	return mapAffected(r.q.UpdateTask(ctx, gen.UpdateTaskParams{
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Date:        t.Date,
		UpdatedAt:   t.UpdatedAt.UTC(),
		ID:          t.ID,
	}))
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id string) error {
	return mapAffected(r.q.DeleteTask(ctx, id))
}

func (r *tasksRepo) DeleteUserTasks(ctx context.Context, userID string) (int64, error) {
	return r.q.DeleteUserTasks(ctx, userID)
}

func (r *tasksRepo) CountUserTasks(ctx context.Context, userID string) (store.TaskCounts, error) {
	row, err := r.q.CountUserTasks(ctx, userID)
	if err != nil {
		return store.TaskCounts{}, err
	}
	return store.TaskCounts{
		Total:      int(row.Total),
		Pending:    int(row.Pending),
		InProgress: int(row.InProgress),
		Completed:  int(row.Completed),
	}, nil
}

func mapTask(row gen.Task) domain.Task {
	return domain.Task{
		ID:          row.ID,
		UserID:      row.UserID,
		UserEmail:   row.UserEmail,
		Title:       row.Title,
		Description: row.Description,
		Status:      domain.TaskStatus(row.Status),
		Date:        row.Date,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
