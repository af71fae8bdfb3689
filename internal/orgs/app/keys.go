package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/orgs/pkg/cryptox"
	"github.com/aussiebroadwan/orgs/pkg/jwtx"
)

// LoadKeys builds the process-wide KeyManager. Keys are loaded once and never
// rotated.
//
// HS256 uses ORGS_JWT_SECRET, or a random secret when it is unset. EdDSA
// reads the PEM at ORGS_JWT_KEY_PATH, creating it when missing, or uses an
// in-memory key when no path is set.
func LoadKeys(cfg Config, logger *slog.Logger) (*jwtx.KeyManager, error) {
	opts := jwtx.KeyManagerOptions{
		Algorithm: cfg.JWTAlgorithm,
		Issuer:    cfg.Issuer,
		Audience:  cfg.Audience,
	}

	switch cfg.JWTAlgorithm {
	case jwtx.AlgorithmHS256, "":
		if cfg.JWTSecret == "" {
			logger.Warn("ORGS_JWT_SECRET not set, using an ephemeral secret; tokens will not survive a restart")
		} else {
			opts.Secret = []byte(cfg.JWTSecret)
		}

	case jwtx.AlgorithmEdDSA:
		if cfg.JWTKeyPath == "" {
			logger.Warn("ORGS_JWT_KEY_PATH not set, using an ephemeral Ed25519 key; tokens will not survive a restart")
			break
		}
		priv, err := cryptox.LoadOrCreateEd25519Key(cfg.JWTKeyPath)
		if err != nil {
			return nil, fmt.Errorf("load signing key: %w", err)
		}
		opts.PrivateKey = priv
	}

	km, err := jwtx.NewKeyManager(opts)
	if err != nil {
		return nil, err
	}

	logger.Info("signing key loaded",
		"algorithm", km.Signer.Alg(),
		"kid", km.Signer.KID(),
		"issuer", cfg.Issuer,
	)
	return km, nil
}
