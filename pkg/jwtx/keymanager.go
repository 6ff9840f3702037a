package jwtx

import (
	"fmt"
	"math/rand/v2"

	"github.com/aussiebroadwan/tracker/pkg/cryptox"
)

// KeyManager owns the in-memory signing keys. Keys are generated at startup
// and never persisted, so a restart invalidates every issued access token.
type KeyManager struct {
	Verifier Verifier
	KeySet   *KeySet

	algorithm string
	signers   []Signer
}

type KeyManagerOptions struct {
	Algorithm string // EdDSA (default) or ES256
	Issuer    string
	NumKeys   int // 1..10, default 1
}

func NewEphemeralKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, fmt.Errorf("jwtx: issuer is required")
	}
	if opts.Algorithm == "" {
		opts.Algorithm = AlgorithmEdDSA
	}

	generate, err := keyGenerator(opts.Algorithm)
	if err != nil {
		return nil, err
	}

	n := min(max(opts.NumKeys, 1), 10)

	keys := NewKeySet()
	signers := make([]Signer, 0, n)
	for i := range n {
		pemKey, err := generate()
		if err != nil {
			return nil, fmt.Errorf("jwtx: generate key %d: %w", i+1, err)
		}

		kid, err := cryptox.GenerateToken(cryptox.TokenSize128)
		if err != nil {
			return nil, fmt.Errorf("jwtx: generate kid: %w", err)
		}

		s, err := NewSigner("tracker-"+kid, pemKey)
		if err != nil {
			return nil, err
		}
		if err := keys.Add(s.PublicJWK()); err != nil {
			return nil, err
		}
		signers = append(signers, s)
	}

	return &KeyManager{
		Verifier:  NewVerifier(keys, opts.Algorithm, opts.Issuer),
		KeySet:    keys,
		algorithm: opts.Algorithm,
		signers:   signers,
	}, nil
}

func keyGenerator(alg string) (func() ([]byte, error), error) {
	switch alg {
	case AlgorithmEdDSA:
		return cryptox.GenerateEd25519Key, nil
	case AlgorithmES256:
		return cryptox.GenerateES256Key, nil
	default:
		return nil, fmt.Errorf("jwtx: unsupported algorithm %q (supported: EdDSA, ES256)", alg)
	}
}

func (km *KeyManager) Algorithm() string { return km.algorithm }
func (km *KeyManager) NumSigners() int   { return len(km.signers) }
func (km *KeyManager) IsReady() bool     { return km.KeySet.IsReady() }

// Signer picks one of the signing keys at random to spread usage.
func (km *KeyManager) Signer() Signer {
	if len(km.signers) == 1 {
		return km.signers[0]
	}
	return km.signers[rand.IntN(len(km.signers))]
}
