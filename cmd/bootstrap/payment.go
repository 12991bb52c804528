package bootstrap

import (
	"physio-scheduler/internal/infra/payment"
	"physio-scheduler/internal/pkg/config"
	"physio-scheduler/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			NewWebhookVerifier,
			fx.As(new(commands.PaymentEventVerifier)),
		),
	),
)

func NewPaymentGateway(cfg config.Config) *payment.StripeGateway {
	sc := payment.NewStripeClient(cfg.Payment)
	return payment.NewStripeGateway(sc.CheckoutSessions, cfg.Payment)
}

func NewWebhookVerifier(cfg config.Config) *payment.WebhookVerifier {
	return payment.NewWebhookVerifier(cfg.Payment.StripeWebhookKey)
}
