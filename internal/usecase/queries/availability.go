package queries

import (
	"context"

	"physio-scheduler/internal/domain/availability"
	"physio-scheduler/internal/pkg/clock"
	"physio-scheduler/internal/usecase/shared"
)

// ScheduleReadStore is the read side of overrides and held slots.
type ScheduleReadStore interface {
	availability.OverrideSource
	availability.HeldSlotReader
	OverridesInRange(ctx context.Context, providerID int64, from, to availability.Date) ([]availability.DateOverride, error)
	HeldSlotsInRange(ctx context.Context, providerID int64, from, to availability.Date) (map[availability.Date][]availability.TimeOfDay, error)
}

type AvailabilityQueries interface {
	Slots(ctx context.Context, providerID int64, date availability.Date) (*SlotsView, error)
	AvailableDates(ctx context.Context, providerID int64, month availability.Month) (*AvailableDatesView, error)
}

type availabilityQueriesImpl struct {
	providers shared.ProviderDirectory
	templates availability.TemplateSource
	store     ScheduleReadStore
	generator *availability.SlotGenerator
	policy    availability.LeadTimePolicy
	conflicts *availability.ConflictFilter
	clock     clock.Clock
}

func NewAvailabilityQueries(
	providers shared.ProviderDirectory,
	templates shared.TemplateCache,
	store ScheduleReadStore,
	generator *availability.SlotGenerator,
	policy availability.LeadTimePolicy,
	clk clock.Clock,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		providers: providers,
		templates: templates,
		store:     store,
		generator: generator,
		policy:    policy,
		conflicts: availability.NewConflictFilter(store),
		clock:     clk,
	}
}

// Slots runs generator, lead-time policy and conflict filter for one day.
// An inactive provider simply has no slots.
func (q *availabilityQueriesImpl) Slots(ctx context.Context, providerID int64, date availability.Date) (*SlotsView, error) {
	view := &SlotsView{ProviderID: providerID, Date: date, Slots: []availability.TimeOfDay{}}

	active, err := q.providerActive(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if !active {
		return view, nil
	}

	candidates, err := q.generator.Generate(ctx, providerID, date)
	if err != nil {
		return nil, err
	}
	candidates = q.policy.Apply(candidates, date, q.clock.Now())

	slots, err := q.conflicts.Apply(ctx, candidates, providerID, date)
	if err != nil {
		return nil, err
	}
	view.Slots = slots
	return view, nil
}

// AvailableDates prefetches the month's inputs once and evaluates each day
// with the same pipeline as Slots.
func (q *availabilityQueriesImpl) AvailableDates(ctx context.Context, providerID int64, month availability.Month) (*AvailableDatesView, error) {
	view := &AvailableDatesView{ProviderID: providerID, Month: month, Dates: []availability.Date{}}

	active, err := q.providerActive(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if !active {
		return view, nil
	}

	tpl, err := q.templates.WeeklyTemplate(ctx, providerID)
	if err != nil {
		return nil, err
	}
	overrides, err := q.store.OverridesInRange(ctx, providerID, month.First(), month.Last())
	if err != nil {
		return nil, err
	}
	held, err := q.store.HeldSlotsInRange(ctx, providerID, month.First(), month.Last())
	if err != nil {
		return nil, err
	}

	byDate := make(map[availability.Date]availability.DateOverride, len(overrides))
	for _, o := range overrides {
		byDate[o.Date] = o
	}

	now := q.clock.Now()
	for _, day := range month.Days() {
		var override *availability.DateOverride
		if o, ok := byDate[day]; ok {
			override = &o
		}
		slots := q.generator.FromSources(day, override, tpl)
		slots = q.policy.Apply(slots, day, now)
		slots = availability.ExcludeHeld(slots, held[day])
		if len(slots) > 0 {
			view.Dates = append(view.Dates, day)
		}
	}
	return view, nil
}

func (q *availabilityQueriesImpl) providerActive(ctx context.Context, providerID int64) (bool, error) {
	p, err := q.providers.ProviderByID(ctx, providerID)
	if err != nil {
		return false, shared.TranslateNotFound(err, shared.ErrProviderNotFound)
	}
	return p.IsActive, nil
}
