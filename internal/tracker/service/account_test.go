package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/store"
)

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   RegisterInput
	}{
		{"bad email", RegisterInput{Email: "not-an-email", Password: testPassword, ConfirmPassword: testPassword}},
		{"display name form", RegisterInput{Email: "Ann <ann@trusted.test>", Password: testPassword, ConfirmPassword: testPassword}},
		{"no dot in domain", RegisterInput{Email: "ann@localhost", Password: testPassword, ConfirmPassword: testPassword}},
		{"short password", RegisterInput{Email: "ann@trusted.test", Password: "12345", ConfirmPassword: "12345"}},
		{"mismatch", RegisterInput{Email: "ann@trusted.test", Password: testPassword, ConfirmPassword: testPassword + "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.accounts.Register(ctx, tt.in)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
	require.Zero(t, env.mailer.count())
}

func TestRegisterUntrustedDomainIsRejectedWithoutMail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.accounts.Register(ctx, RegisterInput{
		Email:           "mallory@other.test",
		Password:        testPassword,
		ConfirmPassword: testPassword,
	})
	require.ErrorIs(t, err, ErrDomainNotAllowed)
	require.Equal(t, domain.StatusRejected, p.ApprovalStatus)
	require.Equal(t, domain.SystemActor, p.RejectedBy)
	require.Zero(t, env.mailer.count())

	stored, err := env.store.Profiles().GetProfile(ctx, p.UID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusRejected, stored.ApprovalStatus)
	require.False(t, stored.EmailVerified)

	require.NoError(t, env.accounts.ResendVerification(ctx, "mallory@other.test"))
	require.Zero(t, env.mailer.count())

	require.Equal(t, domain.AccessDomainDenied, env.approvals.CheckAccess(ctx, p.UID).Reason)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "ann@trusted.test")

	_, err := env.accounts.Register(context.Background(), RegisterInput{
		Email:           "ANN@trusted.test",
		Password:        testPassword,
		ConfirmPassword: testPassword,
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterDefaultsDisplayName(t *testing.T) {
	env := newTestEnv(t)
	p := env.register(t, "ann.smith@trusted.test")
	require.Equal(t, "ann.smith", p.DisplayName)
	require.Equal(t, trustedDomain, p.Domain)
	require.Equal(t, domain.StatusPending, p.ApprovalStatus)
	require.False(t, p.EmailVerified)
}

func TestVerifyEmailTrustedDomainAutoApproves(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	reg := env.register(t, "ann@trusted.test")
	msg := env.mailer.last(t)
	require.Equal(t, "ann@trusted.test", msg.To)
	require.Contains(t, msg.Body, "http://tracker.test/v1/accounts/verify?token=")

	require.Equal(t, domain.AccessVerifyEmail, env.approvals.CheckAccess(ctx, reg.UID).Reason)

	token := env.mailer.lastToken(t)
	p, err := env.accounts.VerifyEmail(ctx, token)
	require.NoError(t, err)
	require.True(t, p.EmailVerified)
	require.Equal(t, domain.StatusApproved, p.ApprovalStatus)
	require.Equal(t, domain.SystemActor, p.ApprovedBy)

	require.True(t, env.approvals.CheckAccess(ctx, reg.UID).Allowed)

	// Links are single use.
	_, err = env.accounts.VerifyEmail(ctx, token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyEmailReviewedDomainWaitsForAdmin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := env.registerVerified(t, "bob@review.test")
	require.True(t, p.EmailVerified)
	require.Equal(t, domain.StatusPending, p.ApprovalStatus)
	require.Equal(t, domain.AccessPendingAdmin, env.approvals.CheckAccess(ctx, p.UID).Reason)
}

func TestVerifyEmailExpiredLink(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "ann@trusted.test")
	token := env.mailer.lastToken(t)

	env.clock.Advance(VerificationTTL)
	_, err := env.accounts.VerifyEmail(context.Background(), token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyEmailUnknownToken(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.accounts.VerifyEmail(context.Background(), "nope")
	require.ErrorIs(t, err, ErrInvalidToken)
	_, err = env.accounts.VerifyEmail(context.Background(), "  ")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestResendVerificationReplacesLink(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.register(t, "ann@trusted.test")
	first := env.mailer.lastToken(t)

	require.NoError(t, env.accounts.ResendVerification(ctx, "ann@trusted.test"))
	require.Equal(t, 2, env.mailer.count())
	second := env.mailer.lastToken(t)
	require.NotEqual(t, first, second)

	_, err := env.accounts.VerifyEmail(ctx, first)
	require.ErrorIs(t, err, ErrInvalidToken)
	_, err = env.accounts.VerifyEmail(ctx, second)
	require.NoError(t, err)

	// Verified and unknown addresses are silent no-ops.
	require.NoError(t, env.accounts.ResendVerification(ctx, "ann@trusted.test"))
	require.NoError(t, env.accounts.ResendVerification(ctx, "ghost@trusted.test"))
	require.Equal(t, 2, env.mailer.count())
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.registerVerified(t, "ann@trusted.test")

	_, err := env.accounts.Login(ctx, "ann@trusted.test", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = env.accounts.Login(ctx, "ghost@trusted.test", testPassword)
	require.ErrorIs(t, err, ErrInvalidCredentials)

	res, err := env.accounts.Login(ctx, " ANN@trusted.test", testPassword)
	require.NoError(t, err)
	require.Nil(t, res.Challenge)
	require.NotNil(t, res.Tokens)
	require.Equal(t, "Bearer", res.Tokens.TokenType)
	require.NotEmpty(t, res.Tokens.AccessToken)
	require.NotEmpty(t, res.Tokens.RefreshToken)

	claims, err := env.keys.Verifier.Verify(res.Tokens.AccessToken)
	require.NoError(t, err)
	require.Equal(t, p.UID, claims.Subject)

	stored, err := env.store.Profiles().GetProfile(ctx, p.UID)
	require.NoError(t, err)
	require.NotNil(t, stored.LastLoginAt)
}

func TestLoginRepairsProfileFromAccount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.register(t, "ann@trusted.test")

	// The account is verified but the profile never heard about it.
	require.NoError(t, env.store.Accounts().MarkAccountVerified(ctx, p.UID, env.clock.Now()))

	_, err := env.accounts.Login(ctx, "ann@trusted.test", testPassword)
	require.NoError(t, err)

	stored, err := env.store.Profiles().GetProfile(ctx, p.UID)
	require.NoError(t, err)
	require.True(t, stored.EmailVerified)
	require.Equal(t, domain.StatusApproved, stored.ApprovalStatus)
}

func TestLoginWithTwoFactorStartsChallenge(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.registerVerified(t, "ann@trusted.test")
	require.NoError(t, env.twoFactor.SetEnabled(ctx, p.UID, true))

	res, err := env.accounts.Login(ctx, "ann@trusted.test", testPassword)
	require.NoError(t, err)
	require.Nil(t, res.Tokens)
	require.NotNil(t, res.Challenge)
	require.True(t, res.Challenge.TwoFactorRequired)
	require.Equal(t, int(domain.TwoFactorCodeTTL/time.Second), res.Challenge.ExpiresIn)

	pair, err := env.twoFactor.VerifyLogin(ctx, res.Challenge.Challenge, env.mailer.lastCode(t))
	require.NoError(t, err)

	claims, err := env.keys.Verifier.Verify(pair.AccessToken)
	require.NoError(t, err)
	require.Contains(t, claims.AMR, "otp")
}

func TestDeleteAccountCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ann := env.registerVerified(t, "ann@trusted.test")
	bob := env.registerVerified(t, "bob@trusted.test")
	for _, p := range []domain.UserProfile{ann, bob} {
		_, err := env.tasks.Create(ctx, p.UID, p.Email, TaskInput{Title: "write report", Date: "2026-05-01"})
		require.NoError(t, err)
	}
	_, err := env.accounts.Login(ctx, ann.Email, testPassword)
	require.NoError(t, err)

	require.NoError(t, env.accounts.DeleteAccount(ctx, ann.UID))

	_, err = env.store.Profiles().GetProfile(ctx, ann.UID)
	require.ErrorIs(t, err, store.ErrNotFound)
	tasks, err := env.tasks.List(ctx, ann.UID)
	require.NoError(t, err)
	require.Empty(t, tasks)
	st, err := env.tasks.Stats(ctx, ann.UID)
	require.NoError(t, err)
	require.Zero(t, st.Total)

	// Another user's data is untouched.
	_, err = env.store.Profiles().GetProfile(ctx, bob.UID)
	require.NoError(t, err)
	tasks, err = env.tasks.List(ctx, bob.UID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	require.ErrorIs(t, env.accounts.DeleteAccount(ctx, ann.UID), ErrUserNotFound)
}

func TestDisplayNameIsTrimmed(t *testing.T) {
	env := newTestEnv(t)
	p, err := env.accounts.Register(context.Background(), RegisterInput{
		Email:           "ann@trusted.test",
		Password:        testPassword,
		ConfirmPassword: testPassword,
		DisplayName:     "  Ann Smith ",
	})
	require.NoError(t, err)
	require.Equal(t, "Ann Smith", p.DisplayName)
}
