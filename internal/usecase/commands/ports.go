package commands

import (
	"context"

	"physio-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

type CheckoutRequest struct {
	BookingID   uuid.UUID
	Reference   string
	ClientID    int64
	ProviderID  int64
	AmountCents int64
	Currency    string
	Description string
}

type CheckoutSession struct {
	ID  string
	URL string
}

// PaymentGateway creates hosted checkout sessions at the payment provider.
type PaymentGateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
}

type PaymentEventKind string

const (
	PaymentEventCompleted PaymentEventKind = "payment.completed"
	PaymentEventFailed    PaymentEventKind = "payment.failed"
)

// PaymentEvent is a verified gateway notification. Kind is empty for event
// types the reconciler does not act on; SourceType keeps the gateway's name.
type PaymentEvent struct {
	ID              string
	Kind            PaymentEventKind
	SourceType      string
	Reference       string
	PaymentIntentID string
}

var ErrInvalidSignature = errs.New("payment notification signature invalid")

// PaymentEventVerifier authenticates a raw gateway notification and maps it
// onto a PaymentEvent.
type PaymentEventVerifier interface {
	Verify(payload []byte, signature string) (PaymentEvent, error)
}
