package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrUnknownKID   = errors.New("jwtx: unknown kid")
	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// Verifier validates an access token and returns its claims.
type Verifier interface {
	Verify(token string) (Claims, error)
}

type keySetVerifier struct {
	keys   *KeySet
	alg    string
	issuer string
	now    func() time.Time
}

// NewVerifier checks signatures against keys, accepting only alg.
func NewVerifier(keys *KeySet, alg, issuer string) Verifier {
	return &keySetVerifier{keys: keys, alg: alg, issuer: issuer, now: time.Now}
}

func (v *keySetVerifier) Verify(raw string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{v.alg}),
		jwt.WithoutClaimsValidation(), // expiry is checked below with our clock
	)

	var claims Claims
	token, err := parser.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, ErrUnknownKID
		}
		pub, err := v.keys.Get(kid)
		if err != nil {
			return nil, fmt.Errorf("%w %q", ErrUnknownKID, kid)
		}
		return pub, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if !token.Valid {
		return Claims{}, ErrMalformed
	}

	if err := claims.validate(v.issuer, v.now().UTC()); err != nil {
		return Claims{}, err
	}
	return claims, nil
}
