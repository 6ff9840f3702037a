package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	ErrPasswordMismatch = errors.New("cryptox: password does not match")
	ErrInvalidHash      = errors.New("cryptox: invalid hash format")
)

// HashPassword returns a PHC formatted argon2id hash of the peppered password.
func HashPassword(password string) (string, error) {
	p, err := Pepper()
	if err != nil {
		return "", err
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password+p), salt, iterations, memory, parallelism, keyLength)

	return fmt.Sprintf(
		"$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		memory,
		iterations,
		parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// VerifyPassword checks password against a hash produced by HashPassword.
// Parameters are read from the hash so older hashes keep verifying after the
// defaults change.
func VerifyPassword(password, encoded string) error {
	// ["", "argon2id", "v=19", "m=X,t=Y,p=Z", salt, hash]
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" || parts[2] != "v=19" {
		return ErrInvalidHash
	}

	var mem, iters uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return fmt.Errorf("%w: parameters: %v", ErrInvalidHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return fmt.Errorf("%w: salt: %v", ErrInvalidHash, err)
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return fmt.Errorf("%w: hash: %v", ErrInvalidHash, err)
	}

	p, err := Pepper()
	if err != nil {
		return err
	}

	computed := argon2.IDKey([]byte(password+p), salt, iters, mem, par, uint32(len(expected))) // #nosec G115
	if subtle.ConstantTimeCompare(computed, expected) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}
