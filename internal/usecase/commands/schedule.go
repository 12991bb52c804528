package commands

import (
	"context"
	"log/slog"

	"physio-scheduler/internal/domain/actor"
	"physio-scheduler/internal/domain/availability"
	"physio-scheduler/internal/pkg/clock"
	"physio-scheduler/internal/pkg/errs"
	"physio-scheduler/internal/usecase/shared"
)

var (
	ErrNotScheduleOwner = errs.New("caller cannot manage this schedule")
	ErrPastOverride     = errs.New("overrides for past dates can only be changed by an admin")
)

type ScheduleCommands interface {
	ReplaceWeeklyTemplate(ctx context.Context, caller actor.Actor, providerID int64, rules []availability.DayRule) (*availability.WeeklyTemplate, error)
	UpsertOverride(ctx context.Context, caller actor.Actor, override availability.DateOverride) (*availability.DateOverride, error)
	RemoveOverride(ctx context.Context, caller actor.Actor, providerID int64, date availability.Date) error
}

type scheduleUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache shared.TemplateCache
	clock clock.Clock
}

func NewScheduleUseCase(uow shared.UnitOfWork, cache shared.TemplateCache, clk clock.Clock) ScheduleCommands {
	return &scheduleUseCaseImpl{uow: uow, cache: cache, clock: clk}
}

// ReplaceWeeklyTemplate swaps all seven rows in one transaction and drops the
// cached copy afterwards. A failed invalidation only shortens freshness.
func (uc *scheduleUseCaseImpl) ReplaceWeeklyTemplate(ctx context.Context, caller actor.Actor, providerID int64, rules []availability.DayRule) (*availability.WeeklyTemplate, error) {
	if err := uc.authorize(caller, providerID); err != nil {
		return nil, err
	}
	tpl, err := availability.NewWeeklyTemplate(providerID, rules)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Templates().Replace(ctx, tx.DB(), tpl, uc.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	if err = uc.cache.Invalidate(ctx, providerID); err != nil {
		slog.Warn("template cache invalidation failed",
			"provider_id", providerID,
			"error", err.Error())
	}
	return &tpl, nil
}

func (uc *scheduleUseCaseImpl) UpsertOverride(ctx context.Context, caller actor.Actor, override availability.DateOverride) (*availability.DateOverride, error) {
	if err := uc.authorize(caller, override.ProviderID); err != nil {
		return nil, err
	}
	var window *availability.Window
	if override.IsAvailable {
		window = &override.Window
	}
	o, err := availability.NewDateOverride(override.ProviderID, override.Date, override.IsAvailable, window, override.Reason)
	if err != nil {
		return nil, err
	}
	if err = uc.rejectPast(caller, o.Date); err != nil {
		return nil, err
	}

	var saved availability.DateOverride
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		saved, err = tx.Overrides().Upsert(ctx, tx.DB(), o, uc.clock.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (uc *scheduleUseCaseImpl) RemoveOverride(ctx context.Context, caller actor.Actor, providerID int64, date availability.Date) error {
	if err := uc.authorize(caller, providerID); err != nil {
		return err
	}
	if err := uc.rejectPast(caller, date); err != nil {
		return err
	}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Overrides().Delete(ctx, tx.DB(), providerID, date)
	})
	return shared.TranslateNotFound(err, shared.ErrOverrideNotFound)
}

func (uc *scheduleUseCaseImpl) authorize(caller actor.Actor, providerID int64) error {
	if !caller.ActsForProvider(providerID) {
		return errs.MarkAll(errs.Newf("provider %d", providerID), ErrNotScheduleOwner, errs.ErrForbidden)
	}
	return nil
}

func (uc *scheduleUseCaseImpl) rejectPast(caller actor.Actor, date availability.Date) error {
	if caller.IsAdmin() {
		return nil
	}
	if date.Before(availability.DateOf(uc.clock.Now())) {
		return errs.MarkAll(errs.Newf("override %s", date), ErrPastOverride, errs.ErrValidation)
	}
	return nil
}
