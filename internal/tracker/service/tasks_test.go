package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
)

func TestTaskLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	task, err := env.tasks.Create(ctx, "u1", "Ann@trusted.test", TaskInput{Title: "  write report ", Date: "2026-05-02"})
	require.NoError(t, err)
	require.Equal(t, "write report", task.Title)
	require.Equal(t, domain.TaskPending, task.Status)
	require.Equal(t, "ann@trusted.test", task.UserEmail)

	_, err = env.tasks.Create(ctx, "u1", "ann@trusted.test", TaskInput{Title: "review", Status: domain.TaskCompleted, Date: "2026-05-01"})
	require.NoError(t, err)

	st, err := env.tasks.Stats(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, 2, st.Total)
	require.Equal(t, 1, st.Pending)
	require.Equal(t, 1, st.Completed)

	task, err = env.tasks.Update(ctx, "u1", task.ID, TaskInput{Title: "write report", Status: domain.TaskInProgress, Date: "2026-05-02"})
	require.NoError(t, err)
	require.Equal(t, domain.TaskInProgress, task.Status)

	st, err = env.tasks.Stats(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, 0, st.Pending)
	require.Equal(t, 1, st.InProgress)

	require.NoError(t, env.tasks.Delete(ctx, "u1", task.ID))
	tasks, err := env.tasks.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	st, err = env.tasks.Stats(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, 1, st.Total)
}

func TestTasksAreOwnerScoped(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	task, err := env.tasks.Create(ctx, "u1", "ann@trusted.test", TaskInput{Title: "mine", Date: "2026-05-01"})
	require.NoError(t, err)

	_, err = env.tasks.Update(ctx, "u2", task.ID, TaskInput{Title: "stolen", Date: "2026-05-01"})
	require.ErrorIs(t, err, ErrTaskNotFound)
	require.ErrorIs(t, env.tasks.Delete(ctx, "u2", task.ID), ErrTaskNotFound)

	tasks, err := env.tasks.List(ctx, "u2")
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestTaskValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   TaskInput
	}{
		{"missing title", TaskInput{Date: "2026-05-01"}},
		{"bad status", TaskInput{Title: "x", Status: "done", Date: "2026-05-01"}},
		{"bad date", TaskInput{Title: "x", Date: "01/05/2026"}},
		{"missing date", TaskInput{Title: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.tasks.Create(ctx, "u1", "ann@trusted.test", tt.in)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestStatsWithoutTasks(t *testing.T) {
	env := newTestEnv(t)
	st, err := env.tasks.Stats(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, domain.UserStats{UserID: "u1"}, st)
}

func TestTeamStats(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ts, err := env.tasks.TeamStats(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.TeamStats{}, ts)

	for _, uid := range []string{"u1", "u2", "u3"} {
		_, err := env.tasks.Create(ctx, uid, uid+"@trusted.test", TaskInput{Title: "a", Date: "2026-05-01"})
		require.NoError(t, err)
	}
	_, err = env.tasks.Create(ctx, "u1", "u1@trusted.test", TaskInput{Title: "b", Status: domain.TaskCompleted, Date: "2026-05-01"})
	require.NoError(t, err)

	// A user whose tasks are all gone keeps a zero row and is not counted.
	gone, err := env.tasks.Create(ctx, "u4", "u4@trusted.test", TaskInput{Title: "c", Date: "2026-05-01"})
	require.NoError(t, err)
	require.NoError(t, env.tasks.Delete(ctx, "u4", gone.ID))

	ts, err = env.tasks.TeamStats(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.TeamStats{
		Total:          4,
		Pending:        3,
		Completed:      1,
		TeamMembers:    3,
		ActiveProjects: 2,
	}, ts)
}
