package trackersdk

import (
	"context"
	"net/http"
)

// Admin operations. Callers other than the administrator get ErrorCodeForbidden.

func (s *Session) ListUsers(ctx context.Context) ([]Profile, error) {
	var out []Profile
	if err := s.call(ctx, http.MethodGet, "/v1/admin/users", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) PendingApprovals(ctx context.Context) ([]Profile, error) {
	var out []Profile
	if err := s.call(ctx, http.MethodGet, "/v1/admin/approvals", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) Approve(ctx context.Context, uid string) (*Profile, error) {
	var out Profile
	if err := s.call(ctx, http.MethodPost, "/v1/admin/users/"+uid+"/approve", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) Reject(ctx context.Context, uid string) (*Profile, error) {
	var out Profile
	if err := s.call(ctx, http.MethodPost, "/v1/admin/users/"+uid+"/reject", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ScanOrphans(ctx context.Context, dryRun bool) (*OrphanReport, error) {
	var out OrphanReport
	if err := s.call(ctx, http.MethodPost, "/v1/admin/orphans", OrphanScanRequest{DryRun: dryRun}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) Sweep(ctx context.Context) (*SweepReport, error) {
	var out SweepReport
	if err := s.call(ctx, http.MethodPost, "/v1/admin/housekeeping", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) SetPermission(ctx context.Context, column string, req PermissionRequest) error {
	return s.call(ctx, http.MethodPut, "/v1/permissions/"+column, req, nil, http.StatusOK)
}

func (s *Session) DeletePermission(ctx context.Context, column string) error {
	return s.call(ctx, http.MethodDelete, "/v1/permissions/"+column, nil, nil, http.StatusNoContent)
}
