package auth

import (
	"go.uber.org/fx"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/config"
)

// Module provides authentication primitives via fx.
var Module = fx.Provide(
	func() PasswordHasher { return NewBcryptHasher(0) },
	func(cfg *config.Config) Strategy {
		return NewHMACStrategy(cfg.TokenSecret, Options{TTL: cfg.TokenTTL})
	},
)
