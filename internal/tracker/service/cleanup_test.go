package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/pkg/eventx"
)

func seedUser(t *testing.T, env *testEnv, email string) domain.UserProfile {
	t.Helper()
	ctx := context.Background()
	p := env.registerVerified(t, email)
	_, err := env.tasks.Create(ctx, p.UID, p.Email, TaskInput{Title: "standup", Date: "2026-05-01"})
	require.NoError(t, err)
	_, err = env.twoFactor.Issue(ctx, p.UID, p.Email)
	require.NoError(t, err)
	login(t, env, email)
	return p
}

func TestHandleUserDeletedReportsBreakdown(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ann := seedUser(t, env, "ann@trusted.test")
	bob := seedUser(t, env, "bob@trusted.test")

	r := env.cleanup.HandleUserDeleted(ctx, eventx.UserDeleted{UID: ann.UID, Email: ann.Email})
	require.True(t, r.Success)
	require.Equal(t, ann.UID, r.UID)
	require.NotNil(t, r.Breakdown)
	require.Equal(t, int64(1), r.Breakdown.Profile)
	require.Equal(t, int64(1), r.Breakdown.Tasks)
	require.Equal(t, int64(1), r.Breakdown.TwoFactorCode)
	require.Equal(t, int64(1), r.Breakdown.UserStats)
	require.Equal(t, int64(1), r.Breakdown.VerificationTokens)
	require.Equal(t, int64(1), r.Breakdown.RefreshTokens)
	require.Equal(t, r.Breakdown.Total(), r.DeletedDocuments)

	// Nothing of bob's was touched.
	r = env.cleanup.HandleUserDeleted(ctx, eventx.UserDeleted{UID: "nobody"})
	require.True(t, r.Success)
	require.Zero(t, r.DeletedDocuments)

	_, err := env.store.Profiles().GetProfile(ctx, bob.UID)
	require.NoError(t, err)
	tasks, err := env.tasks.List(ctx, bob.UID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	_, err = env.store.TwoFactorCodes().GetCode(ctx, bob.UID)
	require.NoError(t, err)
}

func TestHandleUserDeletedKeepsTeamData(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ann := seedUser(t, env, "ann@trusted.test")

	k, err := env.kpis.Create(ctx, actorOf(ann), domain.KPI{Category: "Ops", Name: "Uptime"})
	require.NoError(t, err)

	require.True(t, env.cleanup.HandleUserDeleted(ctx, eventx.UserDeleted{UID: ann.UID}).Success)

	_, err = env.kpis.Get(ctx, k.ID)
	require.NoError(t, err)
	logs, err := env.audit.History(ctx, k.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
}

func orphan(t *testing.T, env *testEnv, email string) domain.UserProfile {
	t.Helper()
	p := seedUser(t, env, email)
	// Deleting the account directly skips the event, as a lost message would.
	require.NoError(t, env.store.Accounts().DeleteAccount(context.Background(), p.UID))
	return p
}

func TestScanOrphansDryRunDeletesNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.admin(t)
	lost := orphan(t, env, "ann@trusted.test")
	seedUser(t, env, "bob@trusted.test")

	r, err := env.cleanup.ScanOrphans(ctx, admin, true)
	require.NoError(t, err)
	require.True(t, r.DryRun)
	require.Equal(t, []string{lost.UID}, r.OrphanedProfiles)
	require.Nil(t, r.DeletedCount)
	require.Equal(t, "Found 1 orphaned profiles. Set dryRun=false to delete them.", r.Message)

	_, err = env.store.Profiles().GetProfile(ctx, lost.UID)
	require.NoError(t, err)
	tasks, err := env.tasks.List(ctx, lost.UID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
}

func TestScanOrphansLiveRun(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.admin(t)
	lost := orphan(t, env, "ann@trusted.test")
	kept := seedUser(t, env, "bob@trusted.test")

	r, err := env.cleanup.ScanOrphans(ctx, admin, false)
	require.NoError(t, err)
	require.False(t, r.DryRun)
	require.True(t, r.Success)
	require.Equal(t, []string{lost.UID}, r.OrphanedProfiles)
	require.NotNil(t, r.DeletedCount)
	require.Equal(t, 1, *r.DeletedCount)

	_, err = env.store.Profiles().GetProfile(ctx, lost.UID)
	require.Error(t, err)
	_, err = env.store.Profiles().GetProfile(ctx, kept.UID)
	require.NoError(t, err)

	r, err = env.cleanup.ScanOrphans(ctx, admin, false)
	require.NoError(t, err)
	require.Empty(t, r.OrphanedProfiles)
	require.Equal(t, 0, *r.DeletedCount)
}

func TestScanOrphansRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	ann := actorOf(env.registerVerified(t, "ann@trusted.test"))

	_, err := env.cleanup.ScanOrphans(context.Background(), ann, true)
	require.ErrorIs(t, err, ErrForbidden)

	// The flag alone grants nothing without the administrator's records.
	ann.IsAdmin = true
	_, err = env.cleanup.ScanOrphans(context.Background(), ann, true)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = env.cleanup.ScanOrphans(context.Background(), env.admin(t), true)
	require.NoError(t, err)
}
