package di

import (
	"go.uber.org/fx"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/adapter/mailer"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/adapter/paystack"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/adapter/sms"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/app"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/config"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/logger"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/pkg/auth"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/server/http/router"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/storage/postgres"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/usecase"
)

// Module composes the full application graph. Additional options let tests
// replace infrastructure pieces with stubs.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		paystack.Module,
		mailer.Module,
		sms.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
