package paystack

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/config"
)

// Module exposes the Paystack gateway implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Gateway, error) {
	return NewHTTPClient(p.Config.PaystackBaseURL, p.Config.PaystackSecretKey, p.Logger)
}
