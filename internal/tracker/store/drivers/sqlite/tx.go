package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/tracker/internal/tracker/store"
	"github.com/aussiebroadwan/tracker/internal/tracker/store/drivers/sqlite/gen"
)

type txStore struct {
	tx *sql.Tx
	q  *gen.Queries
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{
		tx: tx,
		q:  gen.New(tx),
	}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // the outer DB stays open

func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Accounts() store.Accounts                     { return &accountsRepo{q: t.q} }
func (t *txStore) Profiles() store.Profiles                     { return &profilesRepo{q: t.q} }
func (t *txStore) TwoFactorCodes() store.TwoFactorCodes         { return &twoFactorCodesRepo{q: t.q} }
func (t *txStore) VerificationTokens() store.VerificationTokens { return &verificationTokensRepo{q: t.q} }
func (t *txStore) LoginChallenges() store.LoginChallenges       { return &loginChallengesRepo{q: t.q} }
func (t *txStore) RefreshTokens() store.RefreshTokens           { return &refreshTokensRepo{q: t.q} }
func (t *txStore) Tasks() store.Tasks                           { return &tasksRepo{q: t.q} }
func (t *txStore) UserStats() store.UserStats                   { return &userStatsRepo{q: t.q} }
func (t *txStore) KPIs() store.KPIs                             { return &kpisRepo{q: t.q} }
func (t *txStore) AuditLogs() store.AuditLogs                   { return &auditLogsRepo{q: t.q} }
func (t *txStore) Permissions() store.Permissions               { return &permissionsRepo{q: t.q} }

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx
