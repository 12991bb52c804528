package repository

import (
	"context"
	"time"

	"physio-scheduler/internal/domain/availability"
	"physio-scheduler/internal/infra"
	"physio-scheduler/internal/infra/repository/converter"
	sqlc "physio-scheduler/internal/infra/sqlc/generated"
)

type OverrideWriteQueries interface {
	UpsertOverride(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertOverrideParams) (sqlc.DateOverrides, error)
	DeleteOverride(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteOverrideParams) (int64, error)
}

type OverrideRepository struct {
	queries OverrideWriteQueries
	db      sqlc.DBTX
}

func NewOverrideRepository(queries OverrideWriteQueries, db sqlc.DBTX) *OverrideRepository {
	return &OverrideRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OverrideRepository) Upsert(ctx context.Context, tx sqlc.DBTX, o availability.DateOverride, at time.Time) (availability.DateOverride, error) {
	row, err := r.queries.UpsertOverride(ctx, tx, converter.OverrideToParams(o, at))
	if err != nil {
		return availability.DateOverride{}, infra.WrapRepoErr("failed to upsert override", err)
	}

	saved, err := converter.OverrideFromRow(row)
	if err != nil {
		return availability.DateOverride{}, infra.WrapRepoErr("failed to decode override", err)
	}
	return saved, nil
}

func (r *OverrideRepository) Delete(ctx context.Context, tx sqlc.DBTX, providerID int64, date availability.Date) error {
	n, err := r.queries.DeleteOverride(ctx, tx, sqlc.DeleteOverrideParams{
		ProviderID:   providerID,
		OverrideDate: converter.DateToPg(date),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to delete override", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("override not found", nil, infra.KindNotFound)
	}
	return nil
}
