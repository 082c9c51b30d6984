package usecase

import (
	"go.uber.org/fx"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/adapter/mailer"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/adapter/sms"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(
		func(m *mailer.SMTPMailer) ConfirmationMailer { return m },
		func(m *mailer.SMTPMailer) CredentialsMailer { return m },
		func(s sms.Sender) PlacementSMSSender { return s },
	),
	fx.Provide(
		NewAuthUseCase,
		NewCatalogUseCase,
		NewProductUseCase,
		NewOrderUseCase,
	),
)
