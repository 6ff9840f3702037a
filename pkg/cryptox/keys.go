package cryptox

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"fmt"
)

// GenerateEd25519Key returns a fresh Ed25519 private key as PKCS8 PEM.
func GenerateEd25519Key() ([]byte, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("cryptox: generate Ed25519 key: %w", err)
	}
	return encodePKCS8(priv)
}

// GenerateES256Key returns a fresh P-256 private key as PKCS8 PEM.
func GenerateES256Key() ([]byte, error) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("cryptox: generate ECDSA key: %w", err)
	}
	return encodePKCS8(priv)
}

func encodePKCS8(key any) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("cryptox: marshal PKCS8 key: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), nil
}
