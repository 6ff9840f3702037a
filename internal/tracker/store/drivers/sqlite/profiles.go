package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/store/drivers/sqlite/gen"
)

type profilesRepo struct {
	q *gen.Queries
}

func (r *profilesRepo) CreateProfile(ctx context.Context, p domain.UserProfile) error {
	err := r.q.CreateUser(ctx, gen.CreateUserParams{
		Uid:              p.UID,
		Email:            p.Email,
		DisplayName:      p.DisplayName,
		EmailVerified:    p.EmailVerified,
		ApprovalStatus:   string(p.ApprovalStatus),
		Domain:           p.Domain,
		ApprovedBy:       mapStringNull(p.ApprovedBy),
		ApprovedAt:       mapOptionalTime(p.ApprovedAt),
		RejectedBy:       mapStringNull(p.RejectedBy),
		RejectedAt:       mapOptionalTime(p.RejectedAt),
		TwoFactorEnabled: p.TwoFactorEnabled,
		CreatedAt:        p.CreatedAt.UTC(),
		LastLoginAt:      mapOptionalTime(p.LastLoginAt),
		UpdatedAt:        p.UpdatedAt.UTC(),
	})
	return mapConflict(err)
}

func (r *profilesRepo) GetProfile(ctx context.Context, uid string) (domain.UserProfile, error) {
	row, err := r.q.GetUser(ctx, uid)
	if err != nil {
		return domain.UserProfile{}, mapNotFound(err)
	}
	return mapProfile(row), nil
}

func (r *profilesRepo) SaveApprovalState(ctx context.Context, p domain.UserProfile) error {
	return mapAffected(r.q.SaveUserApprovalState(ctx, gen.SaveUserApprovalStateParams{
		EmailVerified:  p.EmailVerified,
		ApprovalStatus: string(p.ApprovalStatus),
		ApprovedBy:     mapStringNull(p.ApprovedBy),
		ApprovedAt:     mapOptionalTime(p.ApprovedAt),
		RejectedBy:     mapStringNull(p.RejectedBy),
		RejectedAt:     mapOptionalTime(p.RejectedAt),
		UpdatedAt:      p.UpdatedAt.UTC(),
		Uid:            p.UID,
	}))
}

func (r *profilesRepo) ApproveProfile(ctx context.Context, uid, by string, at time.Time) error {
	return mapAffected(r.q.ApproveUser(ctx, gen.ApproveUserParams{
		ApprovedBy: mapStringNull(by),
		ApprovedAt: mapTime(at),
		UpdatedAt:  at.UTC(),
		Uid:        uid,
	}))
}

func (r *profilesRepo) RejectProfile(ctx context.Context, uid, by string, at time.Time) error {
	return mapAffected(r.q.RejectUser(ctx, gen.RejectUserParams{
		RejectedBy: mapStringNull(by),
		RejectedAt: mapTime(at),
		UpdatedAt:  at.UTC(),
		Uid:        uid,
	}))
}

func (r *profilesRepo) TouchLastLogin(ctx context.Context, uid string, at time.Time) error {
	return mapAffected(r.q.TouchUserLastLogin(ctx, gen.TouchUserLastLoginParams{
		LastLoginAt: mapTime(at),
		UpdatedAt:   at.UTC(),
		Uid:         uid,
	}))
}

func (r *profilesRepo) SetTwoFactorEnabled(ctx context.Context, uid string, enabled bool, at time.Time) error {
	return mapAffected(r.q.SetUserTwoFactor(ctx, gen.SetUserTwoFactorParams{
		TwoFactorEnabled: enabled,
		UpdatedAt:        at.UTC(),
		Uid:              uid,
	}))
}

func (r *profilesRepo) ListProfiles(ctx context.Context) ([]domain.UserProfile, error) {
	rows, err := r.q.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return mapProfiles(rows), nil
}

func (r *profilesRepo) ListPendingVerified(ctx context.Context) ([]domain.UserProfile, error) {
	rows, err := r.q.ListPendingVerifiedUsers(ctx)
	if err != nil {
		return nil, err
	}
	return mapProfiles(rows), nil
}

func (r *profilesRepo) ListOrphanUIDs(ctx context.Context) ([]string, error) {
	return r.q.ListOrphanUserIDs(ctx)
}

func (r *profilesRepo) DeleteProfile(ctx context.Context, uid string) (int64, error) {
	return r.q.DeleteUser(ctx, uid)
}

func mapProfiles(rows []gen.User) []domain.UserProfile {
	out := make([]domain.UserProfile, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapProfile(row))
	}
	return out
}

func mapProfile(row gen.User) domain.UserProfile {
	return domain.UserProfile{
		UID:              row.Uid,
		Email:            row.Email,
		DisplayName:      row.DisplayName,
		EmailVerified:    row.EmailVerified,
		ApprovalStatus:   domain.ApprovalStatus(row.ApprovalStatus),
		Domain:           row.Domain,
		ApprovedBy:       mapNullString(row.ApprovedBy),
		ApprovedAt:       mapNullTimePtr(row.ApprovedAt),
		RejectedBy:       mapNullString(row.RejectedBy),
		RejectedAt:       mapNullTimePtr(row.RejectedAt),
		TwoFactorEnabled: row.TwoFactorEnabled,
		CreatedAt:        row.CreatedAt,
		LastLoginAt:      mapNullTimePtr(row.LastLoginAt),
		UpdatedAt:        row.UpdatedAt,
	}
}
