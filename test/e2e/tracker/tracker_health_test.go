package tracker_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	c := setupTrackerContainer(t)

	live, err := c.client.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := c.client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)

	jwks, err := c.client.GetJWKS(t.Context())
	require.NoError(t, err)
	require.NotEmpty(t, jwks.Keys)
}
