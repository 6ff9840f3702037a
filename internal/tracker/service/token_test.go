package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/tracker/pkg/jwtx"
)

func login(t *testing.T, env *testEnv, email string) (string, string) {
	t.Helper()
	res, err := env.accounts.Login(context.Background(), email, testPassword)
	require.NoError(t, err)
	require.NotNil(t, res.Tokens)
	return res.Tokens.AccessToken, res.Tokens.RefreshToken
}

func TestRefreshRotatesToken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.registerVerified(t, "ann@trusted.test")
	access, refresh := login(t, env, p.Email)

	first, err := env.keys.Verifier.Verify(access)
	require.NoError(t, err)

	pair, err := env.tokens.Refresh(ctx, refresh)
	require.NoError(t, err)
	require.NotEqual(t, refresh, pair.RefreshToken)

	claims, err := env.keys.Verifier.Verify(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, p.UID, claims.Subject)
	require.Equal(t, first.SID, claims.SID)
	require.Equal(t, []string{jwtx.AMRPassword, jwtx.AMRRefresh}, claims.AMR)
	require.Equal(t, p.Email, claims.Email)
}

func TestRefreshReuseRevokesSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.registerVerified(t, "ann@trusted.test")
	_, refresh := login(t, env, p.Email)

	pair, err := env.tokens.Refresh(ctx, refresh)
	require.NoError(t, err)

	// Replaying the rotated token kills the whole session.
	_, err = env.tokens.Refresh(ctx, refresh)
	require.ErrorIs(t, err, ErrInvalidRefresh)

	_, err = env.tokens.Refresh(ctx, pair.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestRefreshExpired(t *testing.T) {
	env := newTestEnv(t)
	p := env.registerVerified(t, "ann@trusted.test")
	_, refresh := login(t, env, p.Email)

	env.clock.Advance(jwtx.DefaultRefreshTokenTTL)
	_, err := env.tokens.Refresh(context.Background(), refresh)
	require.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestRefreshUnknownToken(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.tokens.Refresh(context.Background(), "garbage")
	require.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestRevokeSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.registerVerified(t, "ann@trusted.test")
	_, refresh := login(t, env, p.Email)

	require.NoError(t, env.tokens.RevokeSession(ctx, refresh))
	_, err := env.tokens.Refresh(ctx, refresh)
	require.ErrorIs(t, err, ErrInvalidRefresh)

	require.NoError(t, env.tokens.RevokeSession(ctx, "unknown"))
}

func TestRevokeSessionID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.registerVerified(t, "ann@trusted.test")
	access, refresh := login(t, env, p.Email)

	claims, err := env.keys.Verifier.Verify(access)
	require.NoError(t, err)
	require.NoError(t, env.tokens.RevokeSessionID(ctx, claims.SID))

	_, err = env.tokens.Refresh(ctx, refresh)
	require.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestRefreshAfterAccountDeletion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.registerVerified(t, "ann@trusted.test")
	_, refresh := login(t, env, p.Email)

	require.NoError(t, env.accounts.DeleteAccount(ctx, p.UID))
	_, err := env.tokens.Refresh(ctx, refresh)
	require.ErrorIs(t, err, ErrInvalidRefresh)
}
