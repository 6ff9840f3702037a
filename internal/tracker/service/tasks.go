package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/store"
	"github.com/aussiebroadwan/tracker/pkg/idx"
	"github.com/aussiebroadwan/tracker/pkg/slogx"
)

var ErrTaskNotFound = errors.New("task_not_found")

const dateLayout = "2006-01-02"

type TaskInput struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      domain.TaskStatus `json:"status"`
	Date        string            `json:"date"`
}

// TaskService is owner scoped: a task of another user does not exist.
type TaskService struct {
	Store store.Store
	Now   Clock
}

func (s *TaskService) Create(ctx context.Context, uid, email string, in TaskInput) (domain.Task, error) {
	if err := normalizeTaskInput(&in); err != nil {
		return domain.Task{}, err
	}

	now := s.Now.now()
	t := domain.Task{
		ID:          idx.New().String(),
		UserID:      uid,
		UserEmail:   normalizeEmail(email),
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Date:        in.Date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Tasks().CreateTask(ctx, t); err != nil {
		return domain.Task{}, err
	}

	s.refreshStats(ctx, uid)
	return t, nil
}

func (s *TaskService) List(ctx context.Context, uid string) ([]domain.Task, error) {
	return s.Store.Tasks().ListUserTasks(ctx, uid)
}

func (s *TaskService) Update(ctx context.Context, uid, id string, in TaskInput) (domain.Task, error) {
	if err := normalizeTaskInput(&in); err != nil {
		return domain.Task{}, err
	}

	t, err := s.owned(ctx, uid, id)
	if err != nil {
		return domain.Task{}, err
	}

	t.Title = in.Title
	t.Description = in.Description
	t.Status = in.Status
	t.Date = in.Date
	t.UpdatedAt = s.Now.now()
	if err := s.Store.Tasks().UpdateTask(ctx, t); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Task{}, ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	s.refreshStats(ctx, uid)
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, uid, id string) error {
	if _, err := s.owned(ctx, uid, id); err != nil {
		return err
	}
	if err := s.Store.Tasks().DeleteTask(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTaskNotFound
		}
		return err
	}

	s.refreshStats(ctx, uid)
	return nil
}

// Stats returns the stored aggregate of uid, zero when none exists yet.
func (s *TaskService) Stats(ctx context.Context, uid string) (domain.UserStats, error) {
	st, err := s.Store.UserStats().GetUserStats(ctx, uid)
	if errors.Is(err, store.ErrNotFound) {
		return domain.UserStats{UserID: uid}, nil
	}
	return st, err
}

// TeamStats sums the aggregates of every user.
func (s *TaskService) TeamStats(ctx context.Context) (domain.TeamStats, error) {
	all, err := s.Store.UserStats().ListUserStats(ctx)
	if err != nil {
		return domain.TeamStats{}, err
	}

	var ts domain.TeamStats
	for _, st := range all {
		ts.Total += st.Total
		ts.Pending += st.Pending
		ts.InProgress += st.InProgress
		ts.Completed += st.Completed
		if st.Total > 0 {
			ts.TeamMembers++
		}
	}
	ts.ActiveProjects = (ts.TeamMembers + 1) / 2
	return ts, nil
}

func (s *TaskService) owned(ctx context.Context, uid, id string) (domain.Task, error) {
	t, err := s.Store.Tasks().GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Task{}, ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	if t.UserID != uid {
		return domain.Task{}, ErrTaskNotFound
	}
	return t, nil
}

// refreshStats recomputes the aggregate of uid. Failures only cost
// freshness, so they are logged and dropped.
func (s *TaskService) refreshStats(ctx context.Context, uid string) {
	l := slogx.FromContext(ctx)

	c, err := s.Store.Tasks().CountUserTasks(ctx, uid)
	if err != nil {
		l.Warn("failed to count tasks", slog.Any("error", err))
		return
	}
	if err := s.Store.UserStats().UpsertUserStats(ctx, domain.UserStats{
		UserID:     uid,
		Total:      c.Total,
		Pending:    c.Pending,
		InProgress: c.InProgress,
		Completed:  c.Completed,
		UpdatedAt:  s.Now.now(),
	}); err != nil {
		l.Warn("failed to update user stats", slog.Any("error", err))
	}
}

func normalizeTaskInput(in *TaskInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Date = strings.TrimSpace(in.Date)

	if in.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.Status == "" {
		in.Status = domain.TaskPending
	}
	if !in.Status.Valid() {
		return fmt.Errorf("%w: status must be pending, in-progress or completed", ErrValidation)
	}
	if _, err := time.Parse(dateLayout, in.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	return nil
}
