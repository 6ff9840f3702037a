package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/store/drivers/sqlite/gen"
)

type accountsRepo struct {
	q *gen.Queries
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	err := r.q.CreateAccount(ctx, gen.CreateAccountParams{
		ID:            a.ID,
		Email:         a.Email,
		PasswordHash:  a.PasswordHash,
		EmailVerified: a.EmailVerified,
		CreatedAt:     a.CreatedAt.UTC(),
		UpdatedAt:     a.UpdatedAt.UTC(),
	})
	return mapConflict(err)
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	row, err := r.q.GetAccountByID(ctx, id)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return mapAccount(row), nil
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	row, err := r.q.GetAccountByEmail(ctx, email)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return mapAccount(row), nil
}

func (r *accountsRepo) MarkAccountVerified(ctx context.Context, id string, at time.Time) error {
	return mapAffected(r.q.MarkAccountVerified(ctx, gen.MarkAccountVerifiedParams{
		UpdatedAt: at.UTC(),
		ID:        id,
	}))
}

func (r *accountsRepo) DeleteAccount(ctx context.Context, id string) error {
	return mapAffected(r.q.DeleteAccount(ctx, id))
}

func mapAccount(row gen.Account) domain.Account {
	return domain.Account{
		ID:            row.ID,
		Email:         row.Email,
		PasswordHash:  row.PasswordHash,
		EmailVerified: row.EmailVerified,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
