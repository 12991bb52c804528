package booking

import (
	"time"

	"physio-scheduler/internal/domain/availability"
	"physio-scheduler/internal/pkg/clock"
	"physio-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrIllegalTransition = errs.New("illegal booking transition")
	ErrInvalidParty      = errs.New("provider and client are required")
	ErrInvalidDuration   = errs.New("duration must be positive")
)

// StatusChange records one transition. Changed is false when the call was a
// no-op on an already-reflected state; PaymentChanged reports a payment status
// update that left the booking status alone.
type StatusChange struct {
	From           Status
	To             Status
	At             time.Time
	Changed        bool
	PaymentChanged bool
}

type Booking struct {
	id               uuid.UUID
	providerID       int64
	clientID         int64
	date             availability.Date
	slot             availability.TimeOfDay
	durationMinutes  int
	status           Status
	paymentStatus    PaymentStatus
	amount           Money
	reference        Reference
	paymentSessionID string
	paymentIntentID  string
	note             Note
	createdAt        time.Time
	updatedAt        time.Time
}

type NewBookingParams struct {
	ProviderID      int64
	ClientID        int64
	Date            availability.Date
	Slot            availability.TimeOfDay
	DurationMinutes int
	Amount          Money
	Note            Note
	Reference       Reference
}

// NewBooking creates a pending, unpaid booking.
func NewBooking(clk clock.Clock, p NewBookingParams) (*Booking, error) {
	if p.ProviderID <= 0 || p.ClientID <= 0 {
		return nil, errs.MarkAll(errs.Newf("provider=%d client=%d", p.ProviderID, p.ClientID), ErrInvalidParty, errs.ErrValidation)
	}
	if p.DurationMinutes <= 0 {
		return nil, errs.MarkAll(errs.Newf("duration=%d", p.DurationMinutes), ErrInvalidDuration, errs.ErrValidation)
	}
	if p.Date.IsZero() {
		return nil, errs.MarkAll(errs.New("missing date"), availability.ErrInvalidDate, errs.ErrValidation)
	}
	if _, err := ParseReference(p.Reference.String()); err != nil {
		return nil, err
	}

	now := clk.Now()
	return &Booking{
		id:              uuid.New(),
		providerID:      p.ProviderID,
		clientID:        p.ClientID,
		date:            p.Date,
		slot:            p.Slot,
		durationMinutes: p.DurationMinutes,
		status:          StatusPending,
		paymentStatus:   PaymentUnpaid,
		amount:          p.Amount,
		reference:       p.Reference,
		note:            p.Note,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

type ReconstructParams struct {
	ID               uuid.UUID
	ProviderID       int64
	ClientID         int64
	Date             availability.Date
	Slot             availability.TimeOfDay
	DurationMinutes  int
	Status           Status
	PaymentStatus    PaymentStatus
	Amount           Money
	Reference        Reference
	PaymentSessionID string
	PaymentIntentID  string
	Note             Note
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func ReconstructBooking(p ReconstructParams) *Booking {
	return &Booking{
		id:               p.ID,
		providerID:       p.ProviderID,
		clientID:         p.ClientID,
		date:             p.Date,
		slot:             p.Slot,
		durationMinutes:  p.DurationMinutes,
		status:           p.Status,
		paymentStatus:    p.PaymentStatus,
		amount:           p.Amount,
		reference:        p.Reference,
		paymentSessionID: p.PaymentSessionID,
		paymentIntentID:  p.PaymentIntentID,
		note:             p.Note,
		createdAt:        p.CreatedAt,
		updatedAt:        p.UpdatedAt,
	}
}

func (b *Booking) illegal(action string, at time.Time) (StatusChange, error) {
	err := errs.Newf("cannot %s booking %s in status %s", action, b.reference, b.status)
	return StatusChange{From: b.status, To: b.status, At: at}, errs.MarkAll(err, ErrIllegalTransition, errs.ErrState)
}

func (b *Booking) moveTo(to Status, at time.Time) StatusChange {
	from := b.status
	b.status = to
	b.updatedAt = at
	return StatusChange{From: from, To: to, At: at, Changed: true}
}

// AttachCheckout records the gateway session once it exists.
func (b *Booking) AttachCheckout(sessionID string, at time.Time) error {
	if b.status != StatusPending || b.paymentStatus != PaymentUnpaid {
		_, err := b.illegal("attach checkout to", at)
		return err
	}
	b.paymentSessionID = sessionID
	b.paymentStatus = PaymentPending
	b.updatedAt = at
	return nil
}

// Confirm is the provider's acceptance.
func (b *Booking) Confirm(at time.Time) (StatusChange, error) {
	if b.status != StatusPending {
		return b.illegal("confirm", at)
	}
	return b.moveTo(StatusConfirmed, at), nil
}

func (b *Booking) Decline(at time.Time) (StatusChange, error) {
	if b.status != StatusPending && b.status != StatusConfirmed {
		return b.illegal("decline", at)
	}
	return b.moveTo(StatusDeclined, at), nil
}

func (b *Booking) Complete(at time.Time) (StatusChange, error) {
	if b.status != StatusConfirmed {
		return b.illegal("complete", at)
	}
	return b.moveTo(StatusCompleted, at), nil
}

// ConfirmPayment applies a successful payment. Redelivery on a booking that
// already reflects the payment is a no-op.
func (b *Booking) ConfirmPayment(paymentIntentID string, at time.Time) (StatusChange, error) {
	switch b.status {
	case StatusPending:
		b.paymentStatus = PaymentCompleted
		b.setIntent(paymentIntentID)
		sc := b.moveTo(StatusConfirmed, at)
		sc.PaymentChanged = true
		return sc, nil
	case StatusConfirmed:
		if b.paymentStatus == PaymentCompleted {
			return StatusChange{From: b.status, To: b.status, At: at}, nil
		}
		b.paymentStatus = PaymentCompleted
		b.setIntent(paymentIntentID)
		b.updatedAt = at
		return StatusChange{From: b.status, To: b.status, At: at, PaymentChanged: true}, nil
	default:
		return b.illegal("confirm payment for", at)
	}
}

// MarkPaymentFailed releases the slot of a pending booking.
func (b *Booking) MarkPaymentFailed(paymentIntentID string, at time.Time) (StatusChange, error) {
	switch b.status {
	case StatusPending:
		b.paymentStatus = PaymentFailed
		b.setIntent(paymentIntentID)
		sc := b.moveTo(StatusPaymentFailed, at)
		sc.PaymentChanged = true
		return sc, nil
	case StatusPaymentFailed:
		return StatusChange{From: b.status, To: b.status, At: at}, nil
	default:
		return b.illegal("fail payment for", at)
	}
}

func (b *Booking) setIntent(id string) {
	if id != "" {
		b.paymentIntentID = id
	}
}

// StartsAt is the slot start in loc.
func (b *Booking) StartsAt(loc *time.Location) time.Time {
	return b.date.At(b.slot, loc)
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) ProviderID() int64            { return b.providerID }
func (b *Booking) ClientID() int64              { return b.clientID }
func (b *Booking) Date() availability.Date      { return b.date }
func (b *Booking) Slot() availability.TimeOfDay { return b.slot }
func (b *Booking) DurationMinutes() int         { return b.durationMinutes }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) Amount() Money                { return b.amount }
func (b *Booking) Reference() Reference         { return b.reference }
func (b *Booking) PaymentSessionID() string     { return b.paymentSessionID }
func (b *Booking) PaymentIntentID() string      { return b.paymentIntentID }
func (b *Booking) Note() Note                   { return b.note }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
