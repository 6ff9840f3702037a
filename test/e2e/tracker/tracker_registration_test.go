package tracker_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/aussiebroadwan/tracker/pkg/trackersdk"
	"github.com/stretchr/testify/require"
)

func TestUnrecognisedDomainIsRejected(t *testing.T) {
	c := setupTrackerContainer(t)
	admin := c.signup(t, adminEmail)

	_, err := c.client.Register(t.Context(), trackersdk.RegisterRequest{
		Email: "user@example.org", Password: password, ConfirmPassword: password,
	})
	requireAPIError(t, err, http.StatusForbidden, trackersdk.ErrorCodeDomainNotAllowed)

	users, err := admin.ListUsers(t.Context())
	require.NoError(t, err)

	var found *trackersdk.Profile
	for i := range users {
		if users[i].Email == "user@example.org" {
			found = &users[i]
		}
	}
	require.NotNil(t, found, "rejected profile is kept for the admin view")
	require.Equal(t, "rejected", found.ApprovalStatus)
	require.False(t, found.EmailVerified)

	// Give a stray mail time to reach the log before asserting there is none.
	time.Sleep(500 * time.Millisecond)
	require.Empty(t, c.mails(t, "user@example.org"))

	// Signing in is possible but the gate never opens.
	sess, err := c.client.Login(t.Context(), "user@example.org", password)
	require.NoError(t, err)
	_, err = sess.ListTasks(t.Context())
	apiErr := requireAPIError(t, err, http.StatusForbidden, trackersdk.ErrorCodeAccessBlocked)
	require.Equal(t, "domain_denied", apiErr.Reason)
}

func TestTrustedDomainApprovedOnVerification(t *testing.T) {
	c := setupTrackerContainer(t)

	p := c.register(t, "ann@"+trustedDomain)
	require.Equal(t, "pending", p.ApprovalStatus)
	require.False(t, p.EmailVerified)

	// Unverified: signed in but blocked at the gate.
	sess, err := c.client.Login(t.Context(), "ann@"+trustedDomain, password)
	require.NoError(t, err)
	_, err = sess.ListTasks(t.Context())
	apiErr := requireAPIError(t, err, http.StatusForbidden, trackersdk.ErrorCodeAccessBlocked)
	require.Equal(t, "verify_email", apiErr.Reason)

	token := c.lastMatch(t, "ann@"+trustedDomain, linkRe)
	loc, err := c.client.FollowVerificationLink(t.Context(), token)
	require.NoError(t, err)
	require.Contains(t, loc, "verified=true")

	sess, err = c.client.Login(t.Context(), "ann@"+trustedDomain, password)
	require.NoError(t, err)

	me, err := sess.Me(t.Context())
	require.NoError(t, err)
	require.True(t, me.Access.Allowed)
	require.Equal(t, "approved", me.Profile.ApprovalStatus)
	require.True(t, me.Profile.EmailVerified)

	// The link is single use.
	_, err = c.client.VerifyEmail(t.Context(), token)
	requireAPIError(t, err, http.StatusUnauthorized, trackersdk.ErrorCodeInvalidToken)
}
