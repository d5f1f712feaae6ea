package auth

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/customerhub/internal/config"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
)

func newPasswordHasher(cfg *config.Config) PasswordHasher {
	return NewBcryptHasher(cfg.BcryptCost)
}

type strategyParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newTokenStrategy(p strategyParams) Strategy {
	if p.Config.UsesDefaultJWTSecret() {
		p.Logger.Warn("JWT_SECRET is not set, signing tokens with the built-in fallback secret")
	}
	return NewJWTStrategy(p.Config.JWTSecret, Options{TTL: DefaultTTL})
}
