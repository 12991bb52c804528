package queries

import (
	"context"
	"time"

	"physio-scheduler/internal/domain/availability"
)

type ScheduleQueries interface {
	WeeklyTemplate(ctx context.Context, providerID int64) (*availability.WeeklyTemplate, error)
	Overrides(ctx context.Context, providerID int64, month availability.Month) ([]availability.DateOverride, error)
}

type scheduleQueriesImpl struct {
	templates availability.TemplateSource
	store     ScheduleReadStore
}

func NewScheduleQueries(templates availability.TemplateSource, store ScheduleReadStore) ScheduleQueries {
	return &scheduleQueriesImpl{templates: templates, store: store}
}

// WeeklyTemplate returns an all-inactive template when none was saved yet.
func (q *scheduleQueriesImpl) WeeklyTemplate(ctx context.Context, providerID int64) (*availability.WeeklyTemplate, error) {
	tpl, err := q.templates.WeeklyTemplate(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		tpl = &availability.WeeklyTemplate{ProviderID: providerID, Rules: map[time.Weekday]availability.DayRule{}}
	}
	return tpl, nil
}

func (q *scheduleQueriesImpl) Overrides(ctx context.Context, providerID int64, month availability.Month) ([]availability.DateOverride, error) {
	return q.store.OverridesInRange(ctx, providerID, month.First(), month.Last())
}
