package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"physio-scheduler/internal/domain/actor"
	"physio-scheduler/internal/domain/availability"
	"physio-scheduler/internal/domain/booking"
	"physio-scheduler/internal/infra"
	"physio-scheduler/internal/pkg/clock"
	"physio-scheduler/internal/pkg/errs"
	"physio-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	referenceConstraint  = "bookings_reference_key"
	maxReferenceAttempts = 3
)

var (
	ErrSlotNotOffered    = errs.New("slot not offered")
	ErrSlotTaken         = errs.New("This time slot is no longer available. Please choose another time.")
	ErrProviderInactive  = errs.New("provider is not accepting bookings")
	ErrOnlyClientsBook   = errs.New("only clients can create bookings")
	ErrNotBookingParty   = errs.New("caller cannot act on this booking")
	ErrCheckoutFailed    = errs.New("payment checkout could not be created")
	ErrConcurrentUpdate  = errs.New("booking changed concurrently")
	ErrReferenceExhausts = errs.New("could not allocate a unique booking reference")
)

type CreateBookingInput struct {
	ProviderID int64
	Date       availability.Date
	Time       availability.TimeOfDay
	Notes      string
}

type CreateBookingResult struct {
	BookingID     uuid.UUID
	Reference     booking.Reference
	Status        booking.Status
	PaymentStatus booking.PaymentStatus
	Checkout      *CheckoutSession
}

type BookingCommands interface {
	Create(ctx context.Context, caller actor.Actor, in CreateBookingInput) (*CreateBookingResult, error)
	Confirm(ctx context.Context, caller actor.Actor, ref booking.Reference) (booking.StatusChange, error)
	Decline(ctx context.Context, caller actor.Actor, ref booking.Reference) (booking.StatusChange, error)
	Complete(ctx context.Context, caller actor.Actor, ref booking.Reference) (booking.StatusChange, error)
}

type BookingSettings struct {
	Currency       string
	AdminRecipient string
}

type bookingUseCaseImpl struct {
	uow       shared.UnitOfWork
	providers shared.ProviderDirectory
	generator *availability.SlotGenerator
	policy    availability.LeadTimePolicy
	gateway   PaymentGateway
	clock     clock.Clock
	settings  BookingSettings
	notify    notifier
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	providers shared.ProviderDirectory,
	generator *availability.SlotGenerator,
	policy availability.LeadTimePolicy,
	gateway PaymentGateway,
	clk clock.Clock,
	settings BookingSettings,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:       uow,
		providers: providers,
		generator: generator,
		policy:    policy,
		gateway:   gateway,
		clock:     clk,
		settings:  settings,
		notify:    notifier{adminRecipient: settings.AdminRecipient},
	}
}

func (uc *bookingUseCaseImpl) Create(ctx context.Context, caller actor.Actor, in CreateBookingInput) (*CreateBookingResult, error) {
	if caller.Role != actor.RoleClient {
		return nil, errs.MarkAll(errs.Newf("role %s", caller.Role), ErrOnlyClientsBook, errs.ErrForbidden)
	}

	provider, err := uc.providers.ProviderByID(ctx, in.ProviderID)
	if err != nil {
		return nil, shared.TranslateNotFound(err, shared.ErrProviderNotFound)
	}
	if !provider.IsActive {
		return nil, errs.MarkAll(errs.Newf("provider %d", in.ProviderID), ErrProviderInactive, errs.ErrValidation)
	}

	if err = uc.ensureOffered(ctx, in); err != nil {
		return nil, err
	}

	amount, err := booking.NewMoney(provider.PriceCents, uc.settings.Currency)
	if err != nil {
		return nil, err
	}
	note, err := booking.NewNote(in.Notes)
	if err != nil {
		return nil, err
	}

	b, err := uc.insertPending(ctx, caller, in, amount, note)
	if err != nil {
		return nil, err
	}

	session, err := uc.gateway.CreateCheckout(ctx, CheckoutRequest{
		BookingID:   b.ID(),
		Reference:   b.Reference().String(),
		ClientID:    b.ClientID(),
		ProviderID:  b.ProviderID(),
		AmountCents: amount.Cents(),
		Currency:    amount.Currency(),
		Description: fmt.Sprintf("Physiotherapy session with %s on %s at %s", provider.DisplayName, in.Date, in.Time),
	})
	if err != nil {
		slog.Error("checkout creation failed; booking left pending",
			"reference", b.Reference().String(),
			"error", err.Error())
		return nil, errs.MarkAll(errs.Wrapf(err, "booking %s", b.Reference()), ErrCheckoutFailed, errs.ErrExternalDependency)
	}

	if err = b.AttachCheckout(session.ID, uc.clock.Now()); err != nil {
		return nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().AttachCheckout(ctx, tx.DB(), b)
	})
	if infra.IsKind(err, infra.KindConflict) {
		return nil, errs.MarkAll(err, ErrConcurrentUpdate, errs.ErrState)
	}
	if err != nil {
		return nil, err
	}

	return &CreateBookingResult{
		BookingID:     b.ID(),
		Reference:     b.Reference(),
		Status:        b.Status(),
		PaymentStatus: b.PaymentStatus(),
		Checkout:      session,
	}, nil
}

// ensureOffered rejects times the slot pipeline would not list. The unique
// index, not this check, settles races between clients.
func (uc *bookingUseCaseImpl) ensureOffered(ctx context.Context, in CreateBookingInput) error {
	candidates, err := uc.generator.Generate(ctx, in.ProviderID, in.Date)
	if err != nil {
		return err
	}
	candidates = uc.policy.Apply(candidates, in.Date, uc.clock.Now())
	if !availability.Contains(candidates, in.Time) {
		return errs.MarkAll(errs.Newf("%s %s for provider %d", in.Date, in.Time, in.ProviderID), ErrSlotNotOffered, errs.ErrValidation)
	}
	return nil
}

func (uc *bookingUseCaseImpl) insertPending(ctx context.Context, caller actor.Actor, in CreateBookingInput, amount booking.Money, note booking.Note) (*booking.Booking, error) {
	for attempt := 1; attempt <= maxReferenceAttempts; attempt++ {
		ref, err := booking.NewReference()
		if err != nil {
			return nil, err
		}
		b, err := booking.NewBooking(uc.clock, booking.NewBookingParams{
			ProviderID:      in.ProviderID,
			ClientID:        caller.ID,
			Date:            in.Date,
			Slot:            in.Time,
			DurationMinutes: int(uc.generator.Width() / time.Minute),
			Amount:          amount,
			Note:            note,
			Reference:       ref,
		})
		if err != nil {
			return nil, err
		}

		err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if _, err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
				return err
			}
			return uc.notify.created(ctx, tx, b)
		})
		switch {
		case err == nil:
			return b, nil
		case infra.IsKind(err, infra.KindConflict):
			return nil, errs.MarkAll(err, ErrSlotTaken, errs.ErrSlotConflict)
		case isReferenceCollision(err):
			slog.Warn("booking reference collision, regenerating", "attempt", attempt)
			continue
		default:
			return nil, err
		}
	}
	return nil, ErrReferenceExhausts
}

func isReferenceCollision(err error) bool {
	var repoErr infra.RepositoryError
	if !errs.As(err, &repoErr) {
		return false
	}
	return repoErr.Kind == infra.KindDuplicateKey && repoErr.Constraint == referenceConstraint
}

func (uc *bookingUseCaseImpl) Confirm(ctx context.Context, caller actor.Actor, ref booking.Reference) (booking.StatusChange, error) {
	return uc.transition(ctx, caller, ref, func(b *booking.Booking, at time.Time) (booking.StatusChange, error) {
		return b.Confirm(at)
	})
}

func (uc *bookingUseCaseImpl) Decline(ctx context.Context, caller actor.Actor, ref booking.Reference) (booking.StatusChange, error) {
	return uc.transition(ctx, caller, ref, func(b *booking.Booking, at time.Time) (booking.StatusChange, error) {
		return b.Decline(at)
	})
}

func (uc *bookingUseCaseImpl) Complete(ctx context.Context, caller actor.Actor, ref booking.Reference) (booking.StatusChange, error) {
	return uc.transition(ctx, caller, ref, func(b *booking.Booking, at time.Time) (booking.StatusChange, error) {
		return b.Complete(at)
	})
}

type transitionFunc func(b *booking.Booking, at time.Time) (booking.StatusChange, error)

// transition locks the row, applies fn and persists with a status guard.
func (uc *bookingUseCaseImpl) transition(ctx context.Context, caller actor.Actor, ref booking.Reference, fn transitionFunc) (booking.StatusChange, error) {
	var change booking.StatusChange
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByReferenceForUpdate(ctx, tx.DB(), ref)
		if err != nil {
			return shared.TranslateNotFound(err, shared.ErrBookingNotFound)
		}
		if !caller.ActsForProvider(b.ProviderID()) {
			return errs.MarkAll(errs.Newf("booking %s", ref), ErrNotBookingParty, errs.ErrForbidden)
		}

		expected := b.Status()
		change, err = fn(b, uc.clock.Now())
		if err != nil {
			return err
		}
		if err = persistTransition(ctx, tx, b, expected); err != nil {
			return err
		}
		return uc.notify.statusChanged(ctx, tx, b, change)
	})
	if err != nil {
		return booking.StatusChange{}, err
	}
	return change, nil
}

func persistTransition(ctx context.Context, tx shared.Tx, b *booking.Booking, expected booking.Status) error {
	err := tx.Bookings().UpdateStatus(ctx, tx.DB(), b, expected)
	if infra.IsKind(err, infra.KindConflict) {
		return errs.MarkAll(err, ErrConcurrentUpdate, errs.ErrState)
	}
	return err
}
