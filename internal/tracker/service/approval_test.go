package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
)

func TestAdminOutsideAllowedDomainsIsRejected(t *testing.T) {
	env := newTestEnv(t)
	env.policy.AdminEmail = "root@nowhere.test"

	_, trust := env.policy.Classify("root@nowhere.test")
	require.Equal(t, domain.TrustNone, trust)

	p, err := env.accounts.Register(context.Background(), RegisterInput{
		Email:           "root@nowhere.test",
		Password:        testPassword,
		ConfirmPassword: testPassword,
	})
	require.ErrorIs(t, err, ErrDomainNotAllowed)
	require.Equal(t, domain.StatusRejected, p.ApprovalStatus)
	require.Zero(t, env.mailer.count())
}

func TestUnverifiedAdminIsForbidden(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := actorOf(env.register(t, adminEmail))
	admin.IsAdmin = true
	bob := env.registerVerified(t, "bob@review.test")

	_, err := env.approvals.ListUsers(ctx, admin)
	require.ErrorIs(t, err, ErrForbidden)
	_, err = env.approvals.PendingQueue(ctx, admin)
	require.ErrorIs(t, err, ErrForbidden)
	_, err = env.approvals.Reject(ctx, admin, bob.UID)
	require.ErrorIs(t, err, ErrForbidden)
	_, err = env.approvals.Approve(ctx, admin, bob.UID)
	require.ErrorIs(t, err, ErrForbidden)
	_, err = env.cleanup.ScanOrphans(ctx, admin, true)
	require.ErrorIs(t, err, ErrForbidden)
	_, err = env.permissions.Set(ctx, admin, domain.ColOwner, "", nil)
	require.ErrorIs(t, err, ErrForbidden)

	p, err := env.store.Profiles().GetProfile(ctx, bob.UID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, p.ApprovalStatus)
}

func TestAdminClaimNeedsMatchingAccount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ann := env.registerVerified(t, "ann@trusted.test")

	// A forged actor pairing the admin email with someone else's uid.
	forged := domain.Actor{UID: ann.UID, Email: adminEmail, IsAdmin: true}
	_, err := env.approvals.ListUsers(ctx, forged)
	require.ErrorIs(t, err, ErrForbidden)

	// No uid at all.
	_, err = env.approvals.ListUsers(ctx, domain.Actor{Email: adminEmail, IsAdmin: true})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestAdminOnReviewedDomainCanActWhilePending(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.policy.AdminEmail = "boss@review.test"

	p := env.registerVerified(t, "boss@review.test")
	require.Equal(t, domain.StatusPending, p.ApprovalStatus)
	admin := actorOf(p)

	approved, err := env.approvals.Approve(ctx, admin, p.UID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusApproved, approved.ApprovalStatus)
}

func TestApproveReviewedProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.admin(t)
	bob := env.registerVerified(t, "bob@review.test")

	queue, err := env.approvals.PendingQueue(ctx, admin)
	require.NoError(t, err)
	require.Len(t, queue, 1)
	require.Equal(t, bob.UID, queue[0].UID)

	p, err := env.approvals.Approve(ctx, admin, bob.UID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusApproved, p.ApprovalStatus)
	require.Equal(t, adminEmail, p.ApprovedBy)
	require.NotNil(t, p.ApprovedAt)
	require.True(t, env.approvals.CheckAccess(ctx, bob.UID).Allowed)

	queue, err = env.approvals.PendingQueue(ctx, admin)
	require.NoError(t, err)
	require.Empty(t, queue)
}

func TestApproveRequiresVerifiedEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.admin(t)
	bob := env.register(t, "bob@review.test")

	// Unverified profiles are not queued and cannot be approved.
	queue, err := env.approvals.PendingQueue(ctx, admin)
	require.NoError(t, err)
	require.Empty(t, queue)

	_, err = env.approvals.Approve(ctx, admin, bob.UID)
	require.ErrorIs(t, err, ErrNotVerified)

	stored, err := env.store.Profiles().GetProfile(ctx, bob.UID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, stored.ApprovalStatus)
}

func TestApproveUntrustedDomain(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.admin(t)

	p, err := env.accounts.Register(ctx, RegisterInput{Email: "eve@other.test", Password: testPassword, ConfirmPassword: testPassword})
	require.ErrorIs(t, err, ErrDomainNotAllowed)

	_, err = env.approvals.Approve(ctx, admin, p.UID)
	require.ErrorIs(t, err, ErrDomainNotAllowed)
}

func TestReject(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.admin(t)
	bob := env.registerVerified(t, "bob@review.test")

	p, err := env.approvals.Reject(ctx, admin, bob.UID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusRejected, p.ApprovalStatus)
	require.Equal(t, adminEmail, p.RejectedBy)
	require.Equal(t, domain.AccessRejected, env.approvals.CheckAccess(ctx, bob.UID).Reason)

	// Logging in again does not undo a rejection.
	_, err = env.accounts.Login(ctx, bob.Email, testPassword)
	require.NoError(t, err)
	require.Equal(t, domain.AccessRejected, env.approvals.CheckAccess(ctx, bob.UID).Reason)
}

func TestApprovalsRequireAdmin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ann := actorOf(env.registerVerified(t, "ann@trusted.test"))
	bob := env.registerVerified(t, "bob@review.test")

	_, err := env.approvals.Approve(ctx, ann, bob.UID)
	require.ErrorIs(t, err, ErrForbidden)
	_, err = env.approvals.Reject(ctx, ann, bob.UID)
	require.ErrorIs(t, err, ErrForbidden)
	_, err = env.approvals.PendingQueue(ctx, ann)
	require.ErrorIs(t, err, ErrForbidden)
	_, err = env.approvals.ListUsers(ctx, ann)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestApproveUnknownUser(t *testing.T) {
	env := newTestEnv(t)
	admin := env.admin(t)
	_, err := env.approvals.Approve(context.Background(), admin, "nobody")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestCheckAccessWithoutProfile(t *testing.T) {
	env := newTestEnv(t)
	d := env.approvals.CheckAccess(context.Background(), "nobody")
	require.False(t, d.Allowed)
	require.Equal(t, domain.AccessNoProfile, d.Reason)
}

func TestListUsers(t *testing.T) {
	env := newTestEnv(t)
	admin := env.admin(t)
	env.register(t, "bob@review.test")

	users, err := env.approvals.ListUsers(context.Background(), admin)
	require.NoError(t, err)
	require.Len(t, users, 2)
}
