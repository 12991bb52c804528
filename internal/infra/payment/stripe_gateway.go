package payment

import (
	"context"
	"strconv"

	"physio-scheduler/internal/pkg/config"
	"physio-scheduler/internal/pkg/errs"
	"physio-scheduler/internal/usecase/commands"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

const (
	metaBookingReference = "booking_reference"
	metaBookingID        = "booking_id"
	metaClientID         = "client_id"
	metaProviderID       = "provider_id"
)

// CheckoutSessions is the slice of the Stripe client the gateway needs.
type CheckoutSessions interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type StripeGateway struct {
	sessions   CheckoutSessions
	successURL string
	cancelURL  string
}

func NewStripeClient(cfg config.PaymentConfig) *client.API {
	return client.New(cfg.StripeSecretKey, nil)
}

func NewStripeGateway(sessions CheckoutSessions, cfg config.PaymentConfig) *StripeGateway {
	return &StripeGateway{
		sessions:   sessions,
		successURL: cfg.CheckoutSuccessURL,
		cancelURL:  cfg.CheckoutCancelURL,
	}
}

// CreateCheckout opens a hosted checkout session. The booking id doubles as
// idempotency key so a retried request never opens a second session.
func (g *StripeGateway) CreateCheckout(ctx context.Context, req commands.CheckoutRequest) (*commands.CheckoutSession, error) {
	metadata := map[string]string{
		metaBookingReference: req.Reference,
		metaBookingID:        req.BookingID.String(),
		metaClientID:         strconv.FormatInt(req.ClientID, 10),
		metaProviderID:       strconv.FormatInt(req.ProviderID, 10),
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(g.successURL + "?reference=" + req.Reference),
		CancelURL:         stripe.String(g.cancelURL + "?reference=" + req.Reference),
		ClientReferenceID: stripe.String(req.Reference),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Currency),
					UnitAmount: stripe.Int64(req.AmountCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: metadata,
		},
	}
	params.Context = ctx
	params.SetIdempotencyKey("checkout-" + req.BookingID.String())
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	session, err := g.sessions.New(params)
	if err != nil {
		return nil, errs.Wrapf(err, "stripe checkout for %s", req.Reference)
	}
	return &commands.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}
