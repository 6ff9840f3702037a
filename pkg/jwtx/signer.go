package jwtx

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AlgorithmEdDSA = "EdDSA"
	AlgorithmES256 = "ES256"
)

// Signer signs access tokens with one private key.
type Signer interface {
	Alg() string
	KID() string
	Sign(Claims) (string, error)
	PublicJWK() JWK
}

type keySigner struct {
	kid    string
	method jwt.SigningMethod
	key    crypto.Signer
	jwk    JWK
}

// NewSigner loads a PKCS8 PEM private key. The algorithm follows the key type.
func NewSigner(kid string, pemKey []byte) (Signer, error) {
	block, _ := pem.Decode(pemKey)
	if block == nil {
		return nil, errors.New("jwtx: invalid PEM")
	}
	if block.Type != "PRIVATE KEY" {
		return nil, fmt.Errorf("jwtx: expected PRIVATE KEY, got %q", block.Type)
	}

	priv, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("jwtx: parse PKCS8: %w", err)
	}

	switch key := priv.(type) {
	case ed25519.PrivateKey:
		return &keySigner{
			kid:    kid,
			method: jwt.SigningMethodEdDSA,
			key:    key,
			jwk:    newEd25519JWK(kid, key.Public().(ed25519.PublicKey)),
		}, nil
	case *ecdsa.PrivateKey:
		if key.Curve.Params().Name != "P-256" {
			return nil, fmt.Errorf("jwtx: unsupported curve %s", key.Curve.Params().Name)
		}
		return &keySigner{
			kid:    kid,
			method: jwt.SigningMethodES256,
			key:    key,
			jwk:    newES256JWK(kid, &key.PublicKey),
		}, nil
	default:
		return nil, fmt.Errorf("jwtx: unsupported private key type %T", priv)
	}
}

func (s *keySigner) Alg() string    { return s.method.Alg() }
func (s *keySigner) KID() string    { return s.kid }
func (s *keySigner) PublicJWK() JWK { return s.jwk }

func (s *keySigner) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(s.method, claims)
	t.Header["kid"] = s.kid
	return t.SignedString(s.key)
}
