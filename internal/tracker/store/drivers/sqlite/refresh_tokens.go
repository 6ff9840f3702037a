package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/store/drivers/sqlite/gen"
)

type refreshTokensRepo struct {
	q *gen.Queries
}

func (r *refreshTokensRepo) CreateRefreshToken(ctx context.Context, t domain.RefreshToken) error {
	err := r.q.CreateRefreshToken(ctx, gen.CreateRefreshTokenParams{
		ID:        t.ID,
		UserID:    t.UserID,
		TokenHash: t.TokenHash,
		SessionID: t.SessionID,
		Amr:       strings.Join(t.AMR, " "),
		ExpiresAt: t.ExpiresAt.UTC(),
		CreatedAt: t.CreatedAt.UTC(),
		UpdatedAt: t.UpdatedAt.UTC(),
	})
	return mapConflict(err)
}

func (r *refreshTokensRepo) GetRefreshTokenByHash(ctx context.Context, hash string) (domain.RefreshToken, error) {
	row, err := r.q.GetRefreshTokenByHash(ctx, hash)
	if err != nil {
		return domain.RefreshToken{}, mapNotFound(err)
	}
	return domain.RefreshToken{
		ID:        row.ID,
		UserID:    row.UserID,
		TokenHash: row.TokenHash,
		SessionID: row.SessionID,
		AMR:       splitAndFilter(row.Amr),
		ExpiresAt: row.ExpiresAt,
		Revoked:   row.Revoked,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func (r *refreshTokensRepo) RevokeRefreshToken(ctx context.Context, hash string, at time.Time) error {
	return r.q.RevokeRefreshToken(ctx, gen.RevokeRefreshTokenParams{
		UpdatedAt: at.UTC(),
		TokenHash: hash,
	})
}

func (r *refreshTokensRepo) RevokeSession(ctx context.Context, sessionID string, at time.Time) error {
	return r.q.RevokeSessionRefreshTokens(ctx, gen.RevokeSessionRefreshTokensParams{
		UpdatedAt: at.UTC(),
		SessionID: sessionID,
	})
}

func (r *refreshTokensRepo) DeleteUserRefreshTokens(ctx context.Context, userID string) (int64, error) {
	return r.q.DeleteUserRefreshTokens(ctx, userID)
}

func (r *refreshTokensRepo) DeleteExpiredRefreshTokens(ctx context.Context, now time.Time) (int64, error) {
	return r.q.DeleteExpiredRefreshTokens(ctx, now.UTC())
}
