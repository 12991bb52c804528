package components

import (
	"physio-scheduler/internal/infra/readstore"
	sqlc "physio-scheduler/internal/infra/sqlc/generated"
	"physio-scheduler/internal/infra/uow"
	"physio-scheduler/internal/usecase/queries"
	"physio-scheduler/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Repositories are built per transaction by the unit of work, so only the
// read side and the UoW itself are provided here.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Provider
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ProviderReadQueries)),
		),
		fx.Annotate(
			readstore.NewProviderReadStore,
			fx.As(new(shared.ProviderDirectory)),
		),
		// Schedule
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ScheduleReadQueries)),
		),
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(fx.Self()),
			fx.As(new(queries.ScheduleReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
