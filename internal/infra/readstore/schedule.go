package readstore

import (
	"context"

	"physio-scheduler/internal/domain/availability"
	"physio-scheduler/internal/infra"
	"physio-scheduler/internal/infra/repository/converter"
	sqlc "physio-scheduler/internal/infra/sqlc/generated"
	"physio-scheduler/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type ScheduleReadQueries interface {
	ListTemplateRules(ctx context.Context, db sqlc.DBTX, providerID int64) ([]sqlc.AvailabilityTemplates, error)
	GetOverride(ctx context.Context, db sqlc.DBTX, arg sqlc.GetOverrideParams) (sqlc.DateOverrides, error)
	ListOverridesInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOverridesInRangeParams) ([]sqlc.DateOverrides, error)
	ListHeldSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.ListHeldSlotsParams) ([]pgtype.Time, error)
	ListHeldSlotsInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListHeldSlotsInRangeParams) ([]sqlc.ListHeldSlotsInRangeRow, error)
}

// ScheduleReadStore serves templates, overrides and held slots to the slot pipeline.
type ScheduleReadStore struct {
	queries ScheduleReadQueries
	db      sqlc.DBTX
}

func NewScheduleReadStore(queries ScheduleReadQueries, db sqlc.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{
		queries: queries,
		db:      db,
	}
}

// WeeklyTemplate returns nil, nil when the provider never saved one.
func (r *ScheduleReadStore) WeeklyTemplate(ctx context.Context, providerID int64) (*availability.WeeklyTemplate, error) {
	rows, err := r.queries.ListTemplateRules(ctx, r.db, providerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list template rules", err)
	}
	tpl, err := converter.TemplateFromRows(providerID, rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode template", err)
	}
	return tpl, nil
}

// OverrideOn returns nil, nil when the date has no override.
func (r *ScheduleReadStore) OverrideOn(ctx context.Context, providerID int64, date availability.Date) (*availability.DateOverride, error) {
	row, err := r.queries.GetOverride(ctx, r.db, sqlc.GetOverrideParams{
		ProviderID:   providerID,
		OverrideDate: converter.DateToPg(date),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get override", err)
	}
	o, err := converter.OverrideFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode override", err)
	}
	return &o, nil
}

func (r *ScheduleReadStore) OverridesInRange(ctx context.Context, providerID int64, from, to availability.Date) ([]availability.DateOverride, error) {
	rows, err := r.queries.ListOverridesInRange(ctx, r.db, sqlc.ListOverridesInRangeParams{
		ProviderID: providerID,
		FromDate:   converter.DateToPg(from),
		ToDate:     converter.DateToPg(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overrides", err)
	}

	out := make([]availability.DateOverride, 0, len(rows))
	for _, row := range rows {
		o, err := converter.OverrideFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode override", err)
		}
		out = append(out, o)
	}
	return out, nil
}

// HeldSlots lists slot starts taken by pending or confirmed bookings.
func (r *ScheduleReadStore) HeldSlots(ctx context.Context, providerID int64, date availability.Date) ([]availability.TimeOfDay, error) {
	rows, err := r.queries.ListHeldSlots(ctx, r.db, sqlc.ListHeldSlotsParams{
		ProviderID:  providerID,
		BookingDate: converter.DateToPg(date),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list held slots", err)
	}

	held := make([]availability.TimeOfDay, 0, len(rows))
	for _, pt := range rows {
		t, err := converter.TimeOfDayFromPg(pt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode held slot", err)
		}
		held = append(held, t)
	}
	return held, nil
}

func (r *ScheduleReadStore) HeldSlotsInRange(ctx context.Context, providerID int64, from, to availability.Date) (map[availability.Date][]availability.TimeOfDay, error) {
	rows, err := r.queries.ListHeldSlotsInRange(ctx, r.db, sqlc.ListHeldSlotsInRangeParams{
		ProviderID: providerID,
		FromDate:   converter.DateToPg(from),
		ToDate:     converter.DateToPg(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list held slots in range", err)
	}

	held := make(map[availability.Date][]availability.TimeOfDay)
	for _, row := range rows {
		t, err := converter.TimeOfDayFromPg(row.SlotTime)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode held slot", err)
		}
		d := converter.DateFromPg(row.BookingDate)
		held[d] = append(held[d], t)
	}
	return held, nil
}
