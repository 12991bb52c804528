package commands

import (
	"context"
	"log/slog"
	"time"

	"physio-scheduler/internal/domain/booking"
	"physio-scheduler/internal/pkg/clock"
	"physio-scheduler/internal/pkg/errs"
	"physio-scheduler/internal/usecase/shared"
)

type Outcome string

const (
	OutcomeProcessed Outcome = "processed"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeIgnored   Outcome = "ignored"
)

var ErrMissingEventID = errs.New("payment event has no id")

type PaymentReconciler interface {
	HandleEvent(ctx context.Context, ev PaymentEvent) (Outcome, error)
}

type paymentReconcilerImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	notify notifier
}

func NewPaymentReconciler(uow shared.UnitOfWork, clk clock.Clock, settings BookingSettings) PaymentReconciler {
	return &paymentReconcilerImpl{
		uow:    uow,
		clock:  clk,
		notify: notifier{adminRecipient: settings.AdminRecipient},
	}
}

// HandleEvent is safe under at-least-once delivery: the event id is recorded
// in the same transaction as the transition, and a booking that already
// reflects the event is left alone.
func (r *paymentReconcilerImpl) HandleEvent(ctx context.Context, ev PaymentEvent) (Outcome, error) {
	var apply transitionFunc
	switch ev.Kind {
	case PaymentEventCompleted:
		apply = func(b *booking.Booking, at time.Time) (booking.StatusChange, error) {
			return b.ConfirmPayment(ev.PaymentIntentID, at)
		}
	case PaymentEventFailed:
		apply = func(b *booking.Booking, at time.Time) (booking.StatusChange, error) {
			return b.MarkPaymentFailed(ev.PaymentIntentID, at)
		}
	default:
		slog.Info("ignoring payment event", "event_id", ev.ID, "type", ev.SourceType)
		return OutcomeIgnored, nil
	}

	if ev.ID == "" {
		return "", errs.MarkAll(errs.Newf("type %s", ev.SourceType), ErrMissingEventID, errs.ErrValidation)
	}
	ref, err := booking.ParseReference(ev.Reference)
	if err != nil {
		return "", errs.MarkAll(err, shared.ErrBookingNotFound, errs.ErrNotFound)
	}

	var outcome Outcome
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := r.clock.Now()

		fresh, err := tx.PaymentEvents().TryRecord(ctx, tx.DB(), ev.ID, string(ev.Kind), ref, now)
		if err != nil {
			return err
		}
		if !fresh {
			outcome = OutcomeDuplicate
			return nil
		}

		b, err := tx.Bookings().FindByReferenceForUpdate(ctx, tx.DB(), ref)
		if err != nil {
			return shared.TranslateNotFound(err, shared.ErrBookingNotFound)
		}

		expected := b.Status()
		change, err := apply(b, now)
		if err != nil {
			return err
		}
		if !change.Changed && !change.PaymentChanged {
			outcome = OutcomeDuplicate
			return nil
		}

		if err = persistTransition(ctx, tx, b, expected); err != nil {
			return err
		}
		if err = r.notify.statusChanged(ctx, tx, b, change); err != nil {
			return err
		}
		outcome = OutcomeProcessed
		return nil
	})
	if err != nil {
		return "", err
	}

	slog.Info("payment event reconciled",
		"event_id", ev.ID,
		"kind", string(ev.Kind),
		"reference", ref.String(),
		"outcome", string(outcome))
	return outcome, nil
}
