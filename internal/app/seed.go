package app

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/config"
)

type seedParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Facade    *StorefrontFacade
	Config    *config.Config
	Logger    *slog.Logger
}

// seedAdmin creates the configured administrator account on startup so a
// fresh deployment is reachable without manual database edits.
func seedAdmin(p seedParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			created, err := p.Facade.EnsureAdmin(ctx, p.Config.AdminName, p.Config.AdminEmail, p.Config.AdminPassword)
			if err != nil {
				return err
			}
			if created {
				p.Logger.Info("administrator account seeded", slog.String("email", p.Config.AdminEmail))
			}
			return nil
		},
	})
}
