package components

import (
	"time"

	"physio-scheduler/internal/domain/availability"
	"physio-scheduler/internal/infra/readstore"
	"physio-scheduler/internal/pkg/clock"
	"physio-scheduler/internal/pkg/config"
	"physio-scheduler/internal/usecase"
	"physio-scheduler/internal/usecase/commands"
	"physio-scheduler/internal/usecase/queries"
	"physio-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewLocation,
	clock.NewRealClockIn,
	NewLeadTimePolicy,
	NewSlotGenerator,
	NewBookingSettings,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewPaymentReconciler,
		commands.NewScheduleUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
		queries.NewScheduleQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Booking.Location()
}

func NewLeadTimePolicy(cfg config.Config, loc *time.Location) (availability.LeadTimePolicy, error) {
	cutoff, err := availability.ParseTimeOfDay(cfg.Booking.SameDayCutoff)
	if err != nil {
		return availability.LeadTimePolicy{}, err
	}
	return availability.NewLeadTimePolicy(cfg.Booking.LeadTime, cutoff, loc), nil
}

// NewSlotGenerator reads templates through the cache and overrides from the store.
func NewSlotGenerator(cfg config.Config, templates shared.TemplateCache, store *readstore.ScheduleReadStore) *availability.SlotGenerator {
	return availability.NewSlotGenerator(templates, store, time.Duration(cfg.Booking.SlotMinutes)*time.Minute)
}

func NewBookingSettings(cfg config.Config) commands.BookingSettings {
	return commands.BookingSettings{
		Currency:       cfg.Booking.Currency,
		AdminRecipient: cfg.Booking.AdminRecipient,
	}
}
