package repository

import (
	"context"
	"time"

	"physio-scheduler/internal/domain/booking"
	"physio-scheduler/internal/infra"
	sqlc "physio-scheduler/internal/infra/sqlc/generated"
	"physio-scheduler/internal/pkg/pgconv"
)

type PaymentEventWriteQueries interface {
	InsertPaymentEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPaymentEventParams) (int64, error)
}

// PaymentEventRepository is the dedupe ledger for gateway notifications.
type PaymentEventRepository struct {
	queries PaymentEventWriteQueries
	db      sqlc.DBTX
}

func NewPaymentEventRepository(queries PaymentEventWriteQueries, db sqlc.DBTX) *PaymentEventRepository {
	return &PaymentEventRepository{
		queries: queries,
		db:      db,
	}
}

// TryRecord inserts with ON CONFLICT DO NOTHING and reports whether the row is new.
func (r *PaymentEventRepository) TryRecord(ctx context.Context, tx sqlc.DBTX, eventID, kind string, ref booking.Reference, at time.Time) (bool, error) {
	params := sqlc.InsertPaymentEventParams{
		EventID:          eventID,
		Kind:             kind,
		BookingReference: ref.String(),
		ProcessedAt:      pgconv.TimeToPgtype(at),
	}

	n, err := r.queries.InsertPaymentEvent(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to record payment event", err)
	}

	return n == 1, nil
}
