package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/tracker/pkg/jwtx"
)

// InitKeys generates the ephemeral signing keys. Sessions do not survive a
// restart: access tokens fail verification and clients sign in again.
func InitKeys(cfg Config, logger *slog.Logger) (*jwtx.KeyManager, error) {
	logger.Info("initializing ephemeral key manager",
		"algorithm", cfg.Algorithm,
		"num_keys", cfg.NumKeys,
	)

	keyManager, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Algorithm: cfg.Algorithm,
		Issuer:    cfg.Issuer,
		NumKeys:   cfg.NumKeys,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ephemeral key manager: %w", err)
	}

	logger.Info("generated ephemeral signing keys",
		"algorithm", keyManager.Algorithm(),
		"num_keys", keyManager.NumSigners(),
		"issuer", cfg.Issuer,
	)
	return keyManager, nil
}
