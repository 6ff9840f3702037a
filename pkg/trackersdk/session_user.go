package trackersdk

import (
	"context"
	"net/http"
)

// Me returns the profile and the access decision of the signed-in user.
func (s *Session) Me(ctx context.Context) (*MeResponse, error) {
	var out MeResponse
	if err := s.call(ctx, http.MethodGet, "/v1/me", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAccount deletes the signed-in user. The session is unusable afterwards.
func (s *Session) DeleteAccount(ctx context.Context) error {
	return s.call(ctx, http.MethodDelete, "/v1/me", nil, nil, http.StatusNoContent)
}

func (s *Session) SetTwoFactor(ctx context.Context, enabled bool) error {
	return s.call(ctx, http.MethodPut, "/v1/2fa", TwoFactorToggleRequest{Enabled: enabled}, nil, http.StatusNoContent)
}

func (s *Session) ListTasks(ctx context.Context) ([]Task, error) {
	var out []Task
	if err := s.call(ctx, http.MethodGet, "/v1/tasks", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) CreateTask(ctx context.Context, req TaskRequest) (*Task, error) {
	var out Task
	if err := s.call(ctx, http.MethodPost, "/v1/tasks", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateTask(ctx context.Context, id string, req TaskRequest) (*Task, error) {
	var out Task
	if err := s.call(ctx, http.MethodPut, "/v1/tasks/"+id, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteTask(ctx context.Context, id string) error {
	return s.call(ctx, http.MethodDelete, "/v1/tasks/"+id, nil, nil, http.StatusNoContent)
}

func (s *Session) TaskStats(ctx context.Context) (*TaskStats, error) {
	var out TaskStats
	if err := s.call(ctx, http.MethodGet, "/v1/tasks/stats", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
