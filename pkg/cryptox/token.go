package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"math/big"
	"strings"
)

// Token sizes in bytes before encoding.
const (
	TokenSize128 = 16 // 22 chars base64url
	TokenSize256 = 32 // 43 chars base64url
)

// GenerateToken returns size random bytes encoded as unpadded base64url.
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("cryptox: token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("cryptox: generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// FingerprintToken is the deterministic SHA-256 form stored in place of an
// opaque token, so lookups work without keeping the secret at rest.
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// MatchesFingerprint compares token against a stored fingerprint in constant time.
func MatchesFingerprint(token, fingerprint string) bool {
	got := FingerprintToken(token)
	return subtle.ConstantTimeCompare([]byte(got), []byte(fingerprint)) == 1
}

// GenerateNumericCode returns a uniformly random decimal string of the given
// number of digits. Leading zeros are kept.
func GenerateNumericCode(digits int) (string, error) {
	if digits <= 0 || digits > 18 {
		return "", fmt.Errorf("cryptox: unsupported code length %d", digits)
	}

	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("cryptox: generate code: %w", err)
	}

	s := n.String()
	return strings.Repeat("0", digits-len(s)) + s, nil
}
