package sms

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/config"
)

// Module exposes the SMS sender implementation to the fx graph. When no
// gateway URL is configured a logging no-op sender is provided so checkout
// notifications stay best-effort.
var Module = fx.Provide(newSender)

type senderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newSender(p senderParams) (Sender, error) {
	if p.Config.SMSGatewayURL == "" {
		return disabledSender{logger: p.Logger}, nil
	}
	return NewHTTPClient(p.Config.SMSGatewayURL, p.Config.SMSAPIKey, p.Config.SMSSenderMask, p.Config.SMSCountryPrefix, p.Logger)
}

type disabledSender struct {
	logger *slog.Logger
}

func (s disabledSender) SendOrderPlaced(ctx context.Context, phone string) error {
	s.logger.Warn("sms gateway not configured, skipping notification", slog.String("phone", phone))
	return nil
}
