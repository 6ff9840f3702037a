package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/store/drivers/sqlite/gen"
)

type twoFactorCodesRepo struct {
	q *gen.Queries
}

func (r *twoFactorCodesRepo) UpsertCode(ctx context.Context, c domain.TwoFactorCode) error {
	return r.q.UpsertTwoFactorCode(ctx, gen.UpsertTwoFactorCodeParams{
		UserID:    c.UserID,
		Email:     c.Email,
		CodeHash:  c.CodeHash,
		CreatedAt: c.CreatedAt.UTC(),
		ExpiresAt: c.ExpiresAt.UTC(),
	})
}

func (r *twoFactorCodesRepo) GetCode(ctx context.Context, userID string) (domain.TwoFactorCode, error) {
	row, err := r.q.GetTwoFactorCode(ctx, userID)
	if err != nil {
		return domain.TwoFactorCode{}, mapNotFound(err)
	}
	return domain.TwoFactorCode{
		UserID:    row.UserID,
		Email:     row.Email,
		CodeHash:  row.CodeHash,
		CreatedAt: row.CreatedAt,
		ExpiresAt: row.ExpiresAt,
		Verified:  row.Verified,
	}, nil
}

func (r *twoFactorCodesRepo) MarkCodeVerified(ctx context.Context, userID, codeHash string, now time.Time) error {
	return mapAffected(r.q.MarkTwoFactorCodeVerified(ctx, gen.MarkTwoFactorCodeVerifiedParams{
		UserID:    userID,
		CodeHash:  codeHash,
		ExpiresAt: now.UTC(),
	}))
}

func (r *twoFactorCodesRepo) DeleteCode(ctx context.Context, userID string) (int64, error) {
	return r.q.DeleteTwoFactorCode(ctx, userID)
}

func (r *twoFactorCodesRepo) DeleteExpiredCodes(ctx context.Context, now time.Time) (int64, error) {
	return r.q.DeleteExpiredTwoFactorCodes(ctx, now.UTC())
}
