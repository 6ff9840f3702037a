package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/store/drivers/sqlite/gen"
)

type loginChallengesRepo struct {
	q *gen.Queries
}

func (r *loginChallengesRepo) CreateChallenge(ctx context.Context, c domain.LoginChallenge) error {
	return r.q.CreateLoginChallenge(ctx, gen.CreateLoginChallengeParams{
		ID:        c.ID,
		UserID:    c.UserID,
		ExpiresAt: c.ExpiresAt.UTC(),
		CreatedAt: c.CreatedAt.UTC(),
	})
}

func (r *loginChallengesRepo) GetChallenge(ctx context.Context, id string) (domain.LoginChallenge, error) {
	row, err := r.q.GetLoginChallenge(ctx, id)
	if err != nil {
		return domain.LoginChallenge{}, mapNotFound(err)
	}
	return mapLoginChallenge(row), nil
}

func (r *loginChallengesRepo) IncrementChallengeAttempts(ctx context.Context, id string) (domain.LoginChallenge, error) {
	row, err := r.q.IncrementLoginChallengeAttempts(ctx, id)
	if err != nil {
		return domain.LoginChallenge{}, mapNotFound(err)
	}
	return mapLoginChallenge(row), nil
}

func (r *loginChallengesRepo) DeleteChallenge(ctx context.Context, id string) error {
	return r.q.DeleteLoginChallenge(ctx, id)
}

func (r *loginChallengesRepo) DeleteUserChallenges(ctx context.Context, userID string) (int64, error) {
	return r.q.DeleteUserLoginChallenges(ctx, userID)
}

func (r *loginChallengesRepo) DeleteExpiredChallenges(ctx context.Context, now time.Time) (int64, error) {
	return r.q.DeleteExpiredLoginChallenges(ctx, now.UTC())
}

func mapLoginChallenge(row gen.LoginChallenge) domain.LoginChallenge {
	return domain.LoginChallenge{
		ID:        row.ID,
		UserID:    row.UserID,
		Attempts:  int(row.Attempts),
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
	}
}
