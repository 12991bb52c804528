package queries

import (
	"context"

	"physio-scheduler/internal/domain/actor"
	"physio-scheduler/internal/domain/booking"
	"physio-scheduler/internal/pkg/errs"
	"physio-scheduler/internal/usecase/shared"
)

var ErrBookingNotVisible = errs.New("booking not visible to caller")

type BookingReadStore interface {
	FindByReference(ctx context.Context, ref booking.Reference) (*BookingView, error)
}

type BookingQueries interface {
	GetByReference(ctx context.Context, caller actor.Actor, ref booking.Reference) (*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

// GetByReference is limited to the owning client, the provider and admins.
func (q *bookingQueriesImpl) GetByReference(ctx context.Context, caller actor.Actor, ref booking.Reference) (*BookingView, error) {
	view, err := q.store.FindByReference(ctx, ref)
	if err != nil {
		return nil, shared.TranslateNotFound(err, shared.ErrBookingNotFound)
	}
	if !caller.CanView(view.ClientID, view.ProviderID) {
		return nil, errs.MarkAll(errs.Newf("booking %s", ref), ErrBookingNotVisible, errs.ErrForbidden)
	}
	return view, nil
}
