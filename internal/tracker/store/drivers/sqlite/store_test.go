package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testProfile(uid, email string, now time.Time) domain.UserProfile {
	return domain.UserProfile{
		UID:            uid,
		Email:          email,
		DisplayName:    "Test",
		ApprovalStatus: domain.StatusPending,
		Domain:         "example.com",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestAccounts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	now := time.Now().UTC()

	a := domain.Account{ID: "u1", Email: "a@example.com", PasswordHash: "h", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, s.Accounts().CreateAccount(ctx, a))

	a.ID = "u2"
	require.ErrorIs(t, s.Accounts().CreateAccount(ctx, a), store.ErrAlreadyExists)

	got, err := s.Accounts().GetAccountByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	require.Equal(t, "u1", got.ID)
	require.False(t, got.EmailVerified)

	require.NoError(t, s.Accounts().MarkAccountVerified(ctx, "u1", now))
	got, err = s.Accounts().GetAccountByID(ctx, "u1")
	require.NoError(t, err)
	require.True(t, got.EmailVerified)

	require.ErrorIs(t, s.Accounts().MarkAccountVerified(ctx, "missing", now), store.ErrNotFound)

	require.NoError(t, s.Accounts().DeleteAccount(ctx, "u1"))
	_, err = s.Accounts().GetAccountByID(ctx, "u1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestProfilesApprovalRequiresVerification(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	now := time.Now().UTC()

	require.NoError(t, s.Profiles().CreateProfile(ctx, testProfile("u1", "a@example.com", now)))

	// approved without a verified email violates the table check
	require.Error(t, s.Profiles().ApproveProfile(ctx, "u1", "admin@example.com", now))

	p, err := s.Profiles().GetProfile(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, p.ApprovalStatus)

	p.EmailVerified = true
	p.UpdatedAt = now
	require.NoError(t, s.Profiles().SaveApprovalState(ctx, p))

	pending, err := s.Profiles().ListPendingVerified(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, s.Profiles().ApproveProfile(ctx, "u1", "admin@example.com", now))
	p, err = s.Profiles().GetProfile(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, domain.StatusApproved, p.ApprovalStatus)
	require.Equal(t, "admin@example.com", p.ApprovedBy)
	require.NotNil(t, p.ApprovedAt)

	pending, err = s.Profiles().ListPendingVerified(ctx)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestProfilesOrphans(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	now := time.Now().UTC()

	require.NoError(t, s.Accounts().CreateAccount(ctx, domain.Account{
		ID: "u1", Email: "a@example.com", PasswordHash: "h", CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, s.Profiles().CreateProfile(ctx, testProfile("u1", "a@example.com", now)))
	require.NoError(t, s.Profiles().CreateProfile(ctx, testProfile("u2", "b@example.com", now)))

	orphans, err := s.Profiles().ListOrphanUIDs(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"u2"}, orphans)

	n, err := s.Profiles().DeleteProfile(ctx, "u2")
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	n, err = s.Profiles().DeleteProfile(ctx, "u2")
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestTwoFactorCodeMarkVerifiedIsConditional(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	now := time.Now().UTC()

	c := domain.TwoFactorCode{UserID: "u1", Email: "a@example.com", CodeHash: "one", CreatedAt: now, ExpiresAt: now.Add(time.Minute)}
	require.NoError(t, s.TwoFactorCodes().UpsertCode(ctx, c))

	t.Run("superseded fingerprint", func(t *testing.T) {
		err := s.TwoFactorCodes().MarkCodeVerified(ctx, "u1", "other", now)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("expired", func(t *testing.T) {
		err := s.TwoFactorCodes().MarkCodeVerified(ctx, "u1", "one", now.Add(time.Minute))
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := s.TwoFactorCodes().MarkCodeVerified(ctx, "u2", "one", now)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	require.NoError(t, s.TwoFactorCodes().MarkCodeVerified(ctx, "u1", "one", now))

	t.Run("already verified", func(t *testing.T) {
		err := s.TwoFactorCodes().MarkCodeVerified(ctx, "u1", "one", now)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestTwoFactorCodeUpsertResetsVerified(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	now := time.Now().UTC()

	c := domain.TwoFactorCode{UserID: "u1", Email: "a@example.com", CodeHash: "one", CreatedAt: now, ExpiresAt: now.Add(time.Minute)}
	require.NoError(t, s.TwoFactorCodes().UpsertCode(ctx, c))
	require.NoError(t, s.TwoFactorCodes().MarkCodeVerified(ctx, "u1", "one", now))

	c.CodeHash = "two"
	require.NoError(t, s.TwoFactorCodes().UpsertCode(ctx, c))

	got, err := s.TwoFactorCodes().GetCode(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, "two", got.CodeHash)
	require.False(t, got.Verified)

	n, err := s.TwoFactorCodes().DeleteExpiredCodes(ctx, now.Add(2*time.Minute))
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	_, err = s.TwoFactorCodes().GetCode(ctx, "u1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestVerificationTokenSingleUse(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	now := time.Now().UTC()

	require.NoError(t, s.VerificationTokens().CreateVerificationToken(ctx, domain.VerificationToken{
		ID: "t1", TokenHash: "hash", UserID: "u1", Email: "a@example.com",
		ExpiresAt: now.Add(time.Hour), CreatedAt: now,
	}))

	tok, err := s.VerificationTokens().GetVerificationTokenByHash(ctx, "hash")
	require.NoError(t, err)
	require.Nil(t, tok.UsedAt)

	require.NoError(t, s.VerificationTokens().MarkVerificationTokenUsed(ctx, "t1", now))
	require.ErrorIs(t, s.VerificationTokens().MarkVerificationTokenUsed(ctx, "t1", now), store.ErrNotFound)

	tok, err = s.VerificationTokens().GetVerificationTokenByHash(ctx, "hash")
	require.NoError(t, err)
	require.NotNil(t, tok.UsedAt)
}

func TestLoginChallengeAttempts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	now := time.Now().UTC()

	require.NoError(t, s.LoginChallenges().CreateChallenge(ctx, domain.LoginChallenge{
		ID: "c1", UserID: "u1", ExpiresAt: now.Add(time.Minute), CreatedAt: now,
	}))
	for i := 1; i <= 3; i++ {
		c, err := s.LoginChallenges().IncrementChallengeAttempts(ctx, "c1")
		require.NoError(t, err)
		require.Equal(t, i, c.Attempts)
	}
	_, err := s.LoginChallenges().IncrementChallengeAttempts(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	n, err := s.LoginChallenges().DeleteUserChallenges(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}

func TestRefreshTokenSessionRevoke(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	now := time.Now().UTC()

	for _, id := range []string{"r1", "r2"} {
		require.NoError(t, s.RefreshTokens().CreateRefreshToken(ctx, domain.RefreshToken{
			ID: id, UserID: "u1", TokenHash: "h-" + id, SessionID: "sid",
			AMR: []string{"pwd", "otp"}, ExpiresAt: now.Add(time.Hour), CreatedAt: now, UpdatedAt: now,
		}))
	}

	tok, err := s.RefreshTokens().GetRefreshTokenByHash(ctx, "h-r1")
	require.NoError(t, err)
	require.Equal(t, []string{"pwd", "otp"}, tok.AMR)
	require.False(t, tok.Revoked)

	require.NoError(t, s.RefreshTokens().RevokeSession(ctx, "sid", now))
	for _, h := range []string{"h-r1", "h-r2"} {
		tok, err := s.RefreshTokens().GetRefreshTokenByHash(ctx, h)
		require.NoError(t, err)
		require.True(t, tok.Revoked)
	}
}

func TestTasksAndCounts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	now := time.Now().UTC()

	statuses := []domain.TaskStatus{domain.TaskPending, domain.TaskPending, domain.TaskInProgress, domain.TaskCompleted}
	for i, st := range statuses {
		require.NoError(t, s.Tasks().CreateTask(ctx, domain.Task{
			ID: string(rune('a' + i)), UserID: "u1", UserEmail: "a@example.com",
			Title: "t", Status: st, Date: "2026-01-0" + string(rune('1'+i)),
			CreatedAt: now, UpdatedAt: now,
		}))
	}

	counts, err := s.Tasks().CountUserTasks(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, store.TaskCounts{Total: 4, Pending: 2, InProgress: 1, Completed: 1}, counts)

	tasks, err := s.Tasks().ListUserTasks(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, tasks, 4)
	require.Equal(t, "2026-01-04", tasks[0].Date)

	empty, err := s.Tasks().CountUserTasks(ctx, "nobody")
	require.NoError(t, err)
	require.Zero(t, empty.Total)

	require.ErrorIs(t, s.Tasks().DeleteTask(ctx, "zzz"), store.ErrNotFound)
}

func TestKPIRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	now := time.Now().UTC()

	k := domain.KPI{ID: "k1", Category: "Finance", Name: "Billing", DevCompletion: 40, CreatedBy: "u1", CreatedAt: now, UpdatedAt: now}
	k.ApplyDefaults()
	require.NoError(t, s.KPIs().CreateKPI(ctx, k))

	k.ProdCompletion = 100
	k.Remarks = "shipped"
	require.NoError(t, s.KPIs().UpdateKPI(ctx, k))

	got, err := s.KPIs().GetKPI(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, 100, got.ProdCompletion)
	require.Equal(t, "shipped", got.Remarks)
	require.Equal(t, domain.DevNotStarted, got.DevStatus)

	k.DevCompletion = 101
	require.Error(t, s.KPIs().UpdateKPI(ctx, k), "completion is range checked by the table")

	require.NoError(t, s.KPIs().DeleteKPI(ctx, "k1"))
	require.ErrorIs(t, s.KPIs().DeleteKPI(ctx, "k1"), store.ErrNotFound)
}

func TestAuditLogFilters(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	entries := []domain.AuditLog{
		{ID: "1", KPIID: "k1", Field: "owner", ChangedByEmail: "a@example.com", ChangedAt: base, ChangeType: domain.ChangeUpdate},
		{ID: "2", KPIID: "k1", Field: "remarks", ChangedByEmail: "b@example.com", ChangedAt: base.Add(time.Hour), ChangeType: domain.ChangeUpdate},
		{ID: "3", KPIID: "k2", Field: "*", ChangedByEmail: "a@example.com", ChangedAt: base.Add(2 * time.Hour), ChangeType: domain.ChangeCreate},
	}
	for _, e := range entries {
		require.NoError(t, s.AuditLogs().CreateAuditLog(ctx, e))
	}

	all, err := s.AuditLogs().ListAuditLogs(ctx, domain.AuditFilter{Limit: -1})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "3", all[0].ID)

	byUser, err := s.AuditLogs().ListAuditLogs(ctx, domain.AuditFilter{UserEmail: "a@example.com", Limit: 10})
	require.NoError(t, err)
	require.Len(t, byUser, 2)

	start := base.Add(30 * time.Minute)
	end := base.Add(90 * time.Minute)
	window, err := s.AuditLogs().ListAuditLogs(ctx, domain.AuditFilter{Start: &start, End: &end, Limit: 10})
	require.NoError(t, err)
	require.Len(t, window, 1)
	require.Equal(t, "2", window[0].ID)

	limited, err := s.AuditLogs().ListAuditLogs(ctx, domain.AuditFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)

	kpi, err := s.AuditLogs().ListKPIAuditLogs(ctx, "k1")
	require.NoError(t, err)
	require.Len(t, kpi, 2)
}

func TestPermissionsUpsert(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	now := time.Now().UTC()

	p := domain.ColumnPermission{ID: "p1", ColumnName: domain.ColOwner, ColumnDisplayName: "Owner", CreatedBy: "admin", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, s.Permissions().UpsertPermission(ctx, p))

	got, err := s.Permissions().GetPermission(ctx, domain.ColOwner)
	require.NoError(t, err)
	require.Empty(t, got.AssignedUsers)

	p.ID = "p2"
	p.AssignedUsers = []string{"a@example.com"}
	require.NoError(t, s.Permissions().UpsertPermission(ctx, p))

	list, err := s.Permissions().ListPermissions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "p1", list[0].ID)
	require.Equal(t, []string{"a@example.com"}, list[0].AssignedUsers)

	require.NoError(t, s.Permissions().DeletePermission(ctx, domain.ColOwner))
	_, err = s.Permissions().GetPermission(ctx, domain.ColOwner)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	now := time.Now().UTC()
	boom := errors.New("boom")

	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Profiles().CreateProfile(ctx, testProfile("u1", "a@example.com", now)); err != nil {
			return err
		}
		require.ErrorIs(t, tx.WithTx(ctx, func(store.Tx) error { return nil }), sql.ErrTxDone)
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Profiles().GetProfile(ctx, "u1")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.WithTx(ctx, func(tx store.Tx) error {
		return tx.Profiles().CreateProfile(ctx, testProfile("u1", "a@example.com", now))
	}))
	_, err = s.Profiles().GetProfile(ctx, "u1")
	require.NoError(t, err)
}
