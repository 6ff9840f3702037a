package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/tracker/internal/tracker/store"
	"github.com/aussiebroadwan/tracker/internal/tracker/store/drivers/sqlite/gen"
	_ "modernc.org/sqlite"
)

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// A single connection serialises writers and keeps ":memory:" databases
	// shared across the pool.
	db.SetMaxOpenConns(1)

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		q:   gen.New(db),
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Accounts() store.Accounts                     { return &accountsRepo{q: s.q} }
func (s *Store) Profiles() store.Profiles                     { return &profilesRepo{q: s.q} }
func (s *Store) TwoFactorCodes() store.TwoFactorCodes         { return &twoFactorCodesRepo{q: s.q} }
func (s *Store) VerificationTokens() store.VerificationTokens { return &verificationTokensRepo{q: s.q} }
func (s *Store) LoginChallenges() store.LoginChallenges       { return &loginChallengesRepo{q: s.q} }
func (s *Store) RefreshTokens() store.RefreshTokens           { return &refreshTokensRepo{q: s.q} }
func (s *Store) Tasks() store.Tasks                           { return &tasksRepo{q: s.q} }
func (s *Store) UserStats() store.UserStats                   { return &userStatsRepo{q: s.q} }
func (s *Store) KPIs() store.KPIs                             { return &kpisRepo{q: s.q} }
func (s *Store) AuditLogs() store.AuditLogs                   { return &auditLogsRepo{q: s.q} }
func (s *Store) Permissions() store.Permissions               { return &permissionsRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConflict turns unique constraint violations into store.ErrAlreadyExists.
func mapConflict(err error) error {
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}

// mapAffected reports ErrNotFound when an update or delete touched no rows.
func mapAffected(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		val := nt.Time
		return &val
	}
	return nil
}

func mapOptionalTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func mapTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func splitAndFilter(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Fields(s)
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		if _, ok := seen[part]; ok {
			continue
		}
		seen[part] = struct{}{}
		out = append(out, part)
	}
	return out
}
