package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/app"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/config"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(
	func(facade *app.StorefrontFacade) handlers.StorefrontFacade { return facade },
	newRouter,
)

type routerParams struct {
	fx.In

	Facade handlers.StorefrontFacade
	Config *config.Config
	Logger *slog.Logger
}

func newRouter(p routerParams) *gin.Engine {
	return Setup(p.Facade, p.Config.AllowedOrigins, p.Logger)
}
