package jwtx

import (
	"errors"
	"sync"
)

var ErrNoKey = errors.New("jwtx: key not found")

// KeySet holds the public verification keys, safe for concurrent use by the
// JWKS handler and the verifier.
type KeySet struct {
	mu   sync.RWMutex
	jwks JWKS
	pub  map[string]any
}

func NewKeySet() *KeySet {
	return &KeySet{pub: make(map[string]any)}
}

// Add registers a public JWK.
func (k *KeySet) Add(j JWK) error {
	key, err := j.PublicKey()
	if err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if _, dup := k.pub[j.Kid]; dup {
		return errors.New("jwtx: duplicate kid " + j.Kid)
	}
	k.pub[j.Kid] = key
	k.jwks.Keys = append(k.jwks.Keys, j)
	return nil
}

func (k *KeySet) Get(kid string) (any, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if pk, ok := k.pub[kid]; ok {
		return pk, nil
	}
	return nil, ErrNoKey
}

// PublicJWKS returns a copy suitable for serving.
func (k *KeySet) PublicJWKS() JWKS {
	k.mu.RLock()
	defer k.mu.RUnlock()

	out := JWKS{Keys: make([]JWK, len(k.jwks.Keys))}
	copy(out.Keys, k.jwks.Keys)
	return out
}

func (k *KeySet) IsReady() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.pub) > 0
}
