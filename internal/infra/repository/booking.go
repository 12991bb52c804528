package repository

import (
	"context"

	"physio-scheduler/internal/domain/booking"
	"physio-scheduler/internal/infra"
	"physio-scheduler/internal/infra/repository/converter"
	sqlc "physio-scheduler/internal/infra/sqlc/generated"
	"physio-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (uuid.UUID, error)
	GetBookingByReferenceForUpdate(ctx context.Context, db sqlc.DBTX, reference string) (sqlc.Bookings, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
	AttachBookingCheckout(ctx context.Context, db sqlc.DBTX, arg sqlc.AttachBookingCheckoutParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts a pending booking. A held slot comes back as KindConflict,
// a reference collision as KindDuplicateKey.
func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	params := converter.BookingToCreateParams(b)

	id, err := r.queries.CreateBooking(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

func (r *BookingRepository) FindByReferenceForUpdate(ctx context.Context, tx sqlc.DBTX, ref booking.Reference) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByReferenceForUpdate(ctx, tx, ref.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}

	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err)
	}
	return b, nil
}

// UpdateStatus is guarded by the expected status; zero affected rows means
// another writer moved the booking first.
func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking, expected booking.Status) error {
	params := converter.BookingToStatusParams(b, expected)

	n, err := r.queries.UpdateBookingStatus(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking status changed concurrently", nil, infra.KindConflict)
	}

	return nil
}

func (r *BookingRepository) AttachCheckout(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	params := sqlc.AttachBookingCheckoutParams{
		ID:               b.ID(),
		PaymentSessionID: pgconv.StringToPgtype(b.PaymentSessionID()),
		UpdatedAt:        pgconv.TimeToPgtype(b.UpdatedAt()),
	}

	n, err := r.queries.AttachBookingCheckout(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to attach checkout session", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking no longer awaiting checkout", nil, infra.KindConflict)
	}

	return nil
}
