package readstore

import (
	"context"

	"physio-scheduler/internal/domain/booking"
	"physio-scheduler/internal/infra"
	"physio-scheduler/internal/infra/repository/converter"
	sqlc "physio-scheduler/internal/infra/sqlc/generated"
	"physio-scheduler/internal/pkg/pgconv"
	"physio-scheduler/internal/usecase/queries"
)

type BookingViewQueries interface {
	GetBookingViewByReference(ctx context.Context, db sqlc.DBTX, reference string) (sqlc.GetBookingViewByReferenceRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByReference(ctx context.Context, ref booking.Reference) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByReference(ctx, r.db, ref.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by reference", err)
	}

	slot, err := converter.TimeOfDayFromPg(row.SlotTime)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking slot", err)
	}
	return &queries.BookingView{
		ID:               row.ID,
		Reference:        row.Reference,
		ProviderID:       row.ProviderID,
		ProviderName:     row.ProviderName,
		ClientID:         row.ClientID,
		Date:             converter.DateFromPg(row.BookingDate),
		Time:             slot,
		DurationMinutes:  int(row.DurationMinutes),
		Status:           row.Status,
		PaymentStatus:    row.PaymentStatus,
		AmountCents:      row.AmountCents,
		Currency:         row.Currency,
		PaymentSessionID: pgconv.StringPtrFromPgtype(row.PaymentSessionID),
		Notes:            pgconv.StringPtrFromPgtype(row.Notes),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
