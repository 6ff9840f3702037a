package jwtx

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"encoding/base64"
	"errors"
	"math/big"
)

// JWK is a public key in RFC 7517 form. Only OKP (Ed25519) and EC (P-256)
// keys are produced by this package.
type JWK struct {
	Kty string `json:"kty"`
	Use string `json:"use,omitempty"`
	Alg string `json:"alg,omitempty"`
	Kid string `json:"kid,omitempty"`
	Crv string `json:"crv,omitempty"`
	X   string `json:"x,omitempty"`
	Y   string `json:"y,omitempty"`
}

type JWKS struct {
	Keys []JWK `json:"keys"`
}

func newEd25519JWK(kid string, pub ed25519.PublicKey) JWK {
	return JWK{
		Kty: "OKP",
		Use: "sig",
		Alg: AlgorithmEdDSA,
		Kid: kid,
		Crv: "Ed25519",
		X:   base64.RawURLEncoding.EncodeToString(pub),
	}
}

func newES256JWK(kid string, pub *ecdsa.PublicKey) JWK {
	// Coordinates are left padded to the 32 byte field size.
	x := make([]byte, 32)
	y := make([]byte, 32)
	pub.X.FillBytes(x)
	pub.Y.FillBytes(y)

	return JWK{
		Kty: "EC",
		Use: "sig",
		Alg: AlgorithmES256,
		Kid: kid,
		Crv: "P-256",
		X:   base64.RawURLEncoding.EncodeToString(x),
		Y:   base64.RawURLEncoding.EncodeToString(y),
	}
}

// PublicKey decodes the JWK into an ed25519.PublicKey or *ecdsa.PublicKey.
func (j JWK) PublicKey() (any, error) {
	switch j.Kty {
	case "OKP":
		if j.Crv != "Ed25519" {
			return nil, errors.New("jwtx: unsupported OKP curve " + j.Crv)
		}
		xb, err := base64.RawURLEncoding.DecodeString(j.X)
		if err != nil {
			return nil, err
		}
		if len(xb) != ed25519.PublicKeySize {
			return nil, errors.New("jwtx: invalid Ed25519 public key size")
		}
		return ed25519.PublicKey(xb), nil

	case "EC":
		if j.Crv != "P-256" {
			return nil, errors.New("jwtx: unsupported EC curve " + j.Crv)
		}
		xb, err := base64.RawURLEncoding.DecodeString(j.X)
		if err != nil {
			return nil, err
		}
		yb, err := base64.RawURLEncoding.DecodeString(j.Y)
		if err != nil {
			return nil, err
		}
		return &ecdsa.PublicKey{
			Curve: elliptic.P256(),
			X:     new(big.Int).SetBytes(xb),
			Y:     new(big.Int).SetBytes(yb),
		}, nil

	default:
		return nil, errors.New("jwtx: unsupported kty " + j.Kty)
	}
}
