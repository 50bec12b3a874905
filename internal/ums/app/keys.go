package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/ums/pkg/cryptox"
	"github.com/aussiebroadwan/ums/pkg/jwtx"
)

// InitSecrets loads (or generates on first start) the password pepper and
// the session signing key.
//
// Both live in files next to the database rather than in the environment:
//   - the pepper is mixed into every argon2id hash, so losing it invalidates
//     all stored passwords;
//   - the session key signs the ums_session cookie, so rotating it logs every
//     client out.
func InitSecrets(cfg Config, logger *slog.Logger) (*cryptox.PasswordHasher, *jwtx.SessionSigner, error) {
	pepper, err := cryptox.LoadOrGenerateSecret(cfg.PepperFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load pepper: %w", err)
	}

	secret, err := cryptox.LoadOrGenerateSecret(cfg.SessionSecretFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load session secret: %w", err)
	}

	signer, err := jwtx.NewSessionSigner(secret, cfg.SessionIssuer, cfg.SessionTTL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create session signer: %w", err)
	}

	logger.Info("secrets loaded",
		"pepper_file", cfg.PepperFile,
		"session_secret_file", cfg.SessionSecretFile,
		"session_ttl", cfg.SessionTTL,
	)

	return cryptox.NewPasswordHasher(pepper), signer, nil
}
