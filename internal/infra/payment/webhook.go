package payment

import (
	"encoding/json"

	"physio-scheduler/internal/pkg/errs"
	"physio-scheduler/internal/usecase/commands"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

type WebhookVerifier struct {
	secret string
}

func NewWebhookVerifier(secret string) *WebhookVerifier {
	return &WebhookVerifier{secret: secret}
}

// Verify checks the Stripe-Signature header and maps the event. Types the
// reconciler does not act on come back with an empty Kind. That includes
// payment_intent.payment_failed: a declined card leaves the checkout session
// open for another attempt, so only the session events end a booking.
func (v *WebhookVerifier) Verify(payload []byte, signature string) (commands.PaymentEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return commands.PaymentEvent{}, errs.MarkAll(errs.Wrap(err, "verify stripe webhook"), commands.ErrInvalidSignature, errs.ErrValidation)
	}

	out := commands.PaymentEvent{ID: event.ID, SourceType: string(event.Type)}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted,
		stripe.EventTypeCheckoutSessionAsyncPaymentSucceeded,
		stripe.EventTypeCheckoutSessionAsyncPaymentFailed,
		stripe.EventTypeCheckoutSessionExpired:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return commands.PaymentEvent{}, errs.MarkAll(errs.Wrap(err, "decode checkout session"), commands.ErrInvalidSignature, errs.ErrValidation)
		}
		out.Reference = sessionReference(&session)
		if session.PaymentIntent != nil {
			out.PaymentIntentID = session.PaymentIntent.ID
		}
		out.Kind = checkoutKind(event.Type, session.PaymentStatus)
	}

	return out, nil
}

// checkoutKind treats a completed session as paid only once funds are
// captured; delayed methods settle through the async events.
func checkoutKind(t stripe.EventType, status stripe.CheckoutSessionPaymentStatus) commands.PaymentEventKind {
	switch t {
	case stripe.EventTypeCheckoutSessionCompleted:
		if status == stripe.CheckoutSessionPaymentStatusPaid || status == stripe.CheckoutSessionPaymentStatusNoPaymentRequired {
			return commands.PaymentEventCompleted
		}
		return ""
	case stripe.EventTypeCheckoutSessionAsyncPaymentSucceeded:
		return commands.PaymentEventCompleted
	default:
		return commands.PaymentEventFailed
	}
}

func sessionReference(s *stripe.CheckoutSession) string {
	if s.ClientReferenceID != "" {
		return s.ClientReferenceID
	}
	return s.Metadata[metaBookingReference]
}
