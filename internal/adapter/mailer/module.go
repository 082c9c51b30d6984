package mailer

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/config"
)

// Module exposes the SMTP mailer to the fx graph.
var Module = fx.Provide(newMailer)

type mailerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newMailer(p mailerParams) *SMTPMailer {
	return NewSMTPMailer(p.Config.SMTPHost, p.Config.SMTPPort, p.Config.SMTPUsername, p.Config.SMTPPassword, p.Config.SMTPFrom, p.Logger)
}
