package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/config"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewStorefrontFacade,
		newHTTPServer,
	),
	fx.Invoke(seedAdmin),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:              p.Config.RunAddress,
		Handler:           p.Router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       time.Minute,
	}
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("storefront listening", slog.String("addr", p.Server.Addr))
			go serve(p.Server, p.Logger, p.Shutdowner)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return stopServer(ctx, p.Server, p.Logger, p.Config.ShutdownTimeout)
		},
	})
}

// serve blocks on the listener and asks fx to shut the process down when the
// server fails for any reason other than a graceful close.
func serve(server *http.Server, logger *slog.Logger, shutdowner fx.Shutdowner) {
	err := server.ListenAndServe()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return
	}
	logger.Error("http server terminated", slog.String("error", err.Error()))
	_ = shutdowner.Shutdown()
}

func stopServer(ctx context.Context, server *http.Server, logger *slog.Logger, timeout time.Duration) error {
	if _, ok := ctx.Deadline(); !ok && timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := server.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("storefront stopped")
	return nil
}
