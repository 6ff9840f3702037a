package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
)

func TestClassify(t *testing.T) {
	p := NewApprovalPolicy([]string{"Trusted.test", "both.test"}, []string{"@review.test", "both.test"}, "Boss@elsewhere.test")

	tests := []struct {
		email  string
		domain string
		trust  domain.TrustLevel
	}{
		{"ann@trusted.test", "trusted.test", domain.TrustAuto},
		{"  Ann@TRUSTED.test ", "trusted.test", domain.TrustAuto},
		{"bob@review.test", "review.test", domain.TrustReview},
		{"cat@both.test", "both.test", domain.TrustAuto},
		{"dan@other.test", "other.test", domain.TrustNone},
		{"boss@elsewhere.test", "elsewhere.test", domain.TrustNone},
		{"no-at-sign", "", domain.TrustNone},
		{"@trusted.test", "", domain.TrustNone},
		{"eve@", "", domain.TrustNone},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			d, trust := p.Classify(tt.email)
			require.Equal(t, tt.domain, d)
			require.Equal(t, tt.trust, trust)
		})
	}
}

func TestInitialStatus(t *testing.T) {
	p := NewApprovalPolicy(nil, nil, "")
	require.Equal(t, domain.StatusPending, p.InitialStatus(domain.TrustAuto))
	require.Equal(t, domain.StatusPending, p.InitialStatus(domain.TrustReview))
	require.Equal(t, domain.StatusRejected, p.InitialStatus(domain.TrustNone))
}

func TestReconcile(t *testing.T) {
	p := NewApprovalPolicy([]string{trustedDomain}, []string{reviewDomain}, adminEmail)
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	earlier := now.Add(-time.Hour)

	t.Run("verified trusted profile is approved by the system", func(t *testing.T) {
		u := p.Reconcile(domain.UserProfile{
			Email:          "ann@trusted.test",
			EmailVerified:  true,
			ApprovalStatus: domain.StatusPending,
		}, now)
		require.Equal(t, domain.StatusApproved, u.ApprovalStatus)
		require.Equal(t, domain.SystemActor, u.ApprovedBy)
		require.NotNil(t, u.ApprovedAt)
		require.True(t, u.ApprovedAt.Equal(now))
	})

	t.Run("verified reviewed profile stays pending", func(t *testing.T) {
		u := p.Reconcile(domain.UserProfile{
			Email:          "bob@review.test",
			EmailVerified:  true,
			ApprovalStatus: domain.StatusPending,
		}, now)
		require.Equal(t, domain.StatusPending, u.ApprovalStatus)
		require.Empty(t, u.ApprovedBy)
	})

	t.Run("unverified approved profile is demoted", func(t *testing.T) {
		u := p.Reconcile(domain.UserProfile{
			Email:          "bob@review.test",
			ApprovalStatus: domain.StatusApproved,
			ApprovedBy:     adminEmail,
			ApprovedAt:     &earlier,
		}, now)
		require.Equal(t, domain.StatusPending, u.ApprovalStatus)
		require.Empty(t, u.ApprovedBy)
		require.Nil(t, u.ApprovedAt)
	})

	t.Run("rejection is final", func(t *testing.T) {
		in := domain.UserProfile{
			Email:          "ann@trusted.test",
			EmailVerified:  true,
			ApprovalStatus: domain.StatusRejected,
			RejectedBy:     adminEmail,
			RejectedAt:     &earlier,
		}
		require.Equal(t, in, p.Reconcile(in, now))
	})

	t.Run("already approved profile is untouched", func(t *testing.T) {
		in := domain.UserProfile{
			Email:          "bob@review.test",
			EmailVerified:  true,
			ApprovalStatus: domain.StatusApproved,
			ApprovedBy:     adminEmail,
			ApprovedAt:     &earlier,
		}
		require.Equal(t, in, p.Reconcile(in, now))
	})
}

func TestDecide(t *testing.T) {
	s := &ApprovalService{Policy: NewApprovalPolicy([]string{trustedDomain}, []string{reviewDomain}, adminEmail)}

	tests := []struct {
		name    string
		profile domain.UserProfile
		reason  domain.AccessReason
	}{
		{"untrusted domain", domain.UserProfile{Email: "x@other.test", EmailVerified: true, ApprovalStatus: domain.StatusApproved}, domain.AccessDomainDenied},
		{"rejected", domain.UserProfile{Email: "x@review.test", EmailVerified: true, ApprovalStatus: domain.StatusRejected}, domain.AccessRejected},
		{"unverified", domain.UserProfile{Email: "x@review.test", ApprovalStatus: domain.StatusPending}, domain.AccessVerifyEmail},
		{"pending", domain.UserProfile{Email: "x@review.test", EmailVerified: true, ApprovalStatus: domain.StatusPending}, domain.AccessPendingAdmin},
		{"approved", domain.UserProfile{Email: "x@review.test", EmailVerified: true, ApprovalStatus: domain.StatusApproved}, domain.AccessGranted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := s.Decide(tt.profile)
			require.Equal(t, tt.reason, d.Reason)
			require.Equal(t, tt.reason == domain.AccessGranted, d.Allowed)
			require.NotEmpty(t, d.Message)
		})
	}
}
