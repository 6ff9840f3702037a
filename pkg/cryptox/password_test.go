package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "cryptox-test")
	if err != nil {
		panic(err)
	}
	SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple", "password123"},
		{"symbols", "P@ssw0rd!#$%^&*()"},
		{"long", strings.Repeat("a", 100)},
		{"empty", ""},
		{"unicode", "пароль🔒密码"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))
			require.Len(t, strings.Split(hash, "$"), 6)

			require.NoError(t, VerifyPassword(tt.password, hash))
			require.ErrorIs(t, VerifyPassword(tt.password+"x", hash), ErrPasswordMismatch)
		})
	}
}

func TestHashPasswordUsesFreshSalt(t *testing.T) {
	a, err := HashPassword("same")
	require.NoError(t, err)
	b, err := HashPassword("same")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestVerifyPasswordRejectsMalformedHashes(t *testing.T) {
	for _, h := range []string{
		"",
		"plain",
		"$argon2i$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$garbage$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=1,t=1,p=1$!!!$aGFzaA",
	} {
		require.ErrorIs(t, VerifyPassword("pw", h), ErrInvalidHash, h)
	}
}

func TestPepperIsPersisted(t *testing.T) {
	p1, err := Pepper()
	require.NoError(t, err)
	require.NotEmpty(t, p1)

	// Dropping the cache must read the same value back from disk.
	SetPepperPath(pepperFile)
	p2, err := Pepper()
	require.NoError(t, err)
	require.Equal(t, p1, p2)
}
