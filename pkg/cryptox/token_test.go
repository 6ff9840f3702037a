package cryptox_test

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"testing"

	"github.com/aussiebroadwan/tracker/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	tok, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)
	require.Len(t, tok, 43)

	raw, err := base64.RawURLEncoding.DecodeString(tok)
	require.NoError(t, err)
	require.Len(t, raw, cryptox.TokenSize256)

	_, err = cryptox.GenerateToken(0)
	require.Error(t, err)
}

func TestFingerprintToken(t *testing.T) {
	fp := cryptox.FingerprintToken("abc")
	require.Equal(t, fp, cryptox.FingerprintToken("abc"))
	require.NotEqual(t, fp, cryptox.FingerprintToken("abd"))
	require.True(t, cryptox.MatchesFingerprint("abc", fp))
	require.False(t, cryptox.MatchesFingerprint("abd", fp))
}

func TestGenerateNumericCode(t *testing.T) {
	seen := map[string]struct{}{}
	for range 200 {
		code, err := cryptox.GenerateNumericCode(6)
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, c := range code {
			require.True(t, c >= '0' && c <= '9', code)
		}
		seen[code] = struct{}{}
	}
	// 200 draws from a million values should essentially never collide much.
	require.Greater(t, len(seen), 190)

	_, err := cryptox.GenerateNumericCode(0)
	require.Error(t, err)
}

func TestGenerateKeys(t *testing.T) {
	t.Run("EdDSA", func(t *testing.T) {
		pemBytes, err := cryptox.GenerateEd25519Key()
		require.NoError(t, err)

		block, _ := pem.Decode(pemBytes)
		require.NotNil(t, block)
		require.Equal(t, "PRIVATE KEY", block.Type)

		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		require.NoError(t, err)
		_, ok := key.(ed25519.PrivateKey)
		require.True(t, ok)
	})

	t.Run("ES256", func(t *testing.T) {
		pemBytes, err := cryptox.GenerateES256Key()
		require.NoError(t, err)

		block, _ := pem.Decode(pemBytes)
		require.NotNil(t, block)

		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		require.NoError(t, err)
		ec, ok := key.(*ecdsa.PrivateKey)
		require.True(t, ok)
		require.Equal(t, "P-256", ec.Curve.Params().Name)
	})
}
