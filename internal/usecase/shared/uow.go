package shared

import (
	"context"
	"time"

	"physio-scheduler/internal/domain/availability"
	"physio-scheduler/internal/domain/booking"
	sqlc "physio-scheduler/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Templates() TemplateRepository
	Overrides() OverrideRepository
	PaymentEvents() PaymentEventRepository
	Notifications() NotificationRepository
	DB() sqlc.DBTX
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error)
	// FindByReferenceForUpdate locks the row until the transaction ends.
	FindByReferenceForUpdate(ctx context.Context, tx sqlc.DBTX, ref booking.Reference) (*booking.Booking, error)
	// UpdateStatus persists b only if the stored status still equals expected.
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking, expected booking.Status) error
	AttachCheckout(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
}

type TemplateRepository interface {
	Replace(ctx context.Context, tx sqlc.DBTX, tpl availability.WeeklyTemplate, at time.Time) error
}

type OverrideRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, o availability.DateOverride, at time.Time) (availability.DateOverride, error)
	Delete(ctx context.Context, tx sqlc.DBTX, providerID int64, date availability.Date) error
}

type PaymentEventRepository interface {
	// TryRecord returns false when the event id was already recorded.
	TryRecord(ctx context.Context, tx sqlc.DBTX, eventID, kind string, ref booking.Reference, at time.Time) (bool, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
