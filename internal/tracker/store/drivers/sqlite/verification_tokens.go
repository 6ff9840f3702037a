package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/store/drivers/sqlite/gen"
)

type verificationTokensRepo struct {
	q *gen.Queries
}

func (r *verificationTokensRepo) CreateVerificationToken(ctx context.Context, t domain.VerificationToken) error {
	err := r.q.CreateVerificationToken(ctx, gen.CreateVerificationTokenParams{
		ID:        t.ID,
		TokenHash: t.TokenHash,
		UserID:    t.UserID,
		Email:     t.Email,
		ExpiresAt: t.ExpiresAt.UTC(),
		CreatedAt: t.CreatedAt.UTC(),
	})
	return mapConflict(err)
}

func (r *verificationTokensRepo) GetVerificationTokenByHash(ctx context.Context, hash string) (domain.VerificationToken, error) {
	row, err := r.q.GetVerificationTokenByHash(ctx, hash)
	if err != nil {
		return domain.VerificationToken{}, mapNotFound(err)
	}
	return domain.VerificationToken{
		ID:        row.ID,
		TokenHash: row.TokenHash,
		UserID:    row.UserID,
		Email:     row.Email,
		ExpiresAt: row.ExpiresAt,
		UsedAt:    mapNullTimePtr(row.UsedAt),
		CreatedAt: row.CreatedAt,
	}, nil
}

// MarkVerificationTokenUsed only succeeds once per token.
func (r *verificationTokensRepo) MarkVerificationTokenUsed(ctx context.Context, id string, at time.Time) error {
	return mapAffected(r.q.MarkVerificationTokenUsed(ctx, gen.MarkVerificationTokenUsedParams{
		UsedAt: mapTime(at),
		ID:     id,
	}))
}

func (r *verificationTokensRepo) DeleteUserVerificationTokens(ctx context.Context, userID string) (int64, error) {
	return r.q.DeleteUserVerificationTokens(ctx, userID)
}

func (r *verificationTokensRepo) DeleteExpiredVerificationTokens(ctx context.Context, now time.Time) (int64, error) {
	return r.q.DeleteExpiredVerificationTokens(ctx, now.UTC())
}
