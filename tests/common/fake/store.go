//go:build unit

// Package fake holds in-memory stand-ins for the persistence ports. Store
// serializes transactions with one mutex and rolls back on error, which is
// enough to reproduce row locking and the active-slot unique index.
package fake

import (
	"context"
	"maps"
	"sync"
	"time"

	"physio-scheduler/internal/domain/availability"
	"physio-scheduler/internal/domain/booking"
	"physio-scheduler/internal/infra"
	sqlc "physio-scheduler/internal/infra/sqlc/generated"
	"physio-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type Job struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type overrideKey struct {
	providerID int64
	date       availability.Date
}

type Store struct {
	mu        sync.Mutex
	bookings  map[booking.Reference]booking.Booking
	events    map[string]string
	templates map[int64]availability.WeeklyTemplate
	overrides map[overrideKey]availability.DateOverride
	jobs      []Job

	// FailNext makes the next transaction fail with this error before fn runs.
	FailNext error
	// Invalidated records providers whose cached template was dropped.
	Invalidated []int64
}

func NewStore() *Store {
	return &Store{
		bookings:  map[booking.Reference]booking.Booking{},
		events:    map[string]string{},
		templates: map[int64]availability.WeeklyTemplate{},
		overrides: map[overrideKey]availability.DateOverride{},
	}
}

// Within implements shared.UnitOfWork.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailNext != nil {
		err := s.FailNext
		s.FailNext = nil
		return err
	}

	snapshot := s.snapshot()
	if err := fn(ctx, &tx{s: s}); err != nil {
		s.restore(snapshot)
		return err
	}
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

type state struct {
	bookings  map[booking.Reference]booking.Booking
	events    map[string]string
	templates map[int64]availability.WeeklyTemplate
	overrides map[overrideKey]availability.DateOverride
	jobs      []Job
}

func (s *Store) snapshot() state {
	return state{
		bookings:  maps.Clone(s.bookings),
		events:    maps.Clone(s.events),
		templates: maps.Clone(s.templates),
		overrides: maps.Clone(s.overrides),
		jobs:      append([]Job(nil), s.jobs...),
	}
}

func (s *Store) restore(st state) {
	s.bookings = st.bookings
	s.events = st.events
	s.templates = st.templates
	s.overrides = st.overrides
	s.jobs = st.jobs
}

// Seeding and inspection helpers. They take the lock themselves.

func (s *Store) PutBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.Reference()] = *b
}

func (s *Store) Booking(ref booking.Reference) (*booking.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[ref]
	if !ok {
		return nil, false
	}
	return &b, true
}

func (s *Store) Bookings() []booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]booking.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b)
	}
	return out
}

func (s *Store) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Job(nil), s.jobs...)
}

func (s *Store) EventCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func (s *Store) PutTemplate(tpl availability.WeeklyTemplate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[tpl.ProviderID] = tpl
}

func (s *Store) PutOverride(o availability.DateOverride) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[overrideKey{o.ProviderID, o.Date}] = o
}

// Read ports for the slot pipeline.

func (s *Store) WeeklyTemplate(_ context.Context, providerID int64) (*availability.WeeklyTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tpl, ok := s.templates[providerID]
	if !ok {
		return nil, nil
	}
	return &tpl, nil
}

func (s *Store) Invalidate(_ context.Context, providerID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Invalidated = append(s.Invalidated, providerID)
	return nil
}

func (s *Store) OverrideOn(_ context.Context, providerID int64, date availability.Date) (*availability.DateOverride, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.overrides[overrideKey{providerID, date}]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (s *Store) OverridesInRange(_ context.Context, providerID int64, from, to availability.Date) ([]availability.DateOverride, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []availability.DateOverride
	for d := from; !d.After(to); d = d.AddDays(1) {
		if o, ok := s.overrides[overrideKey{providerID, d}]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *Store) HeldSlots(_ context.Context, providerID int64, date availability.Date) ([]availability.TimeOfDay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var held []availability.TimeOfDay
	for _, b := range s.bookings {
		if b.ProviderID() == providerID && b.Date() == date && b.Status().HoldsSlot() {
			held = append(held, b.Slot())
		}
	}
	return held, nil
}

func (s *Store) HeldSlotsInRange(_ context.Context, providerID int64, from, to availability.Date) (map[availability.Date][]availability.TimeOfDay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	held := map[availability.Date][]availability.TimeOfDay{}
	for _, b := range s.bookings {
		if b.ProviderID() != providerID || !b.Status().HoldsSlot() {
			continue
		}
		if b.Date().Before(from) || b.Date().After(to) {
			continue
		}
		held[b.Date()] = append(held[b.Date()], b.Slot())
	}
	return held, nil
}

// tx runs with Store.mu held.
type tx struct {
	s *Store
}

func (t *tx) Bookings() shared.BookingRepository           { return bookingRepo{t.s} }
func (t *tx) Templates() shared.TemplateRepository         { return templateRepo{t.s} }
func (t *tx) Overrides() shared.OverrideRepository         { return overrideRepo{t.s} }
func (t *tx) PaymentEvents() shared.PaymentEventRepository { return paymentEventRepo{t.s} }
func (t *tx) Notifications() shared.NotificationRepository { return notificationRepo{t.s} }
func (t *tx) DB() sqlc.DBTX                                { return nil }

type bookingRepo struct{ s *Store }

func (r bookingRepo) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	if _, ok := r.s.bookings[b.Reference()]; ok {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking",
			&pgconn.PgError{Code: "23505", ConstraintName: "bookings_reference_key"})
	}
	for _, other := range r.s.bookings {
		if other.ProviderID() == b.ProviderID() && other.Date() == b.Date() &&
			other.Slot() == b.Slot() && other.Status().HoldsSlot() {
			return uuid.Nil, infra.WrapRepoErr("failed to create booking",
				&pgconn.PgError{Code: "23505", ConstraintName: "bookings_active_slot_uniq"})
		}
	}
	r.s.bookings[b.Reference()] = *b
	return b.ID(), nil
}

func (r bookingRepo) FindByReferenceForUpdate(_ context.Context, _ sqlc.DBTX, ref booking.Reference) (*booking.Booking, error) {
	b, ok := r.s.bookings[ref]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return &b, nil
}

func (r bookingRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, b *booking.Booking, expected booking.Status) error {
	stored, ok := r.s.bookings[b.Reference()]
	if !ok || stored.Status() != expected {
		return infra.WrapRepoErr("booking status changed concurrently", nil, infra.KindConflict)
	}
	r.s.bookings[b.Reference()] = *b
	return nil
}

func (r bookingRepo) AttachCheckout(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	stored, ok := r.s.bookings[b.Reference()]
	if !ok || stored.Status() != booking.StatusPending {
		return infra.WrapRepoErr("booking no longer awaiting checkout", nil, infra.KindConflict)
	}
	r.s.bookings[b.Reference()] = *b
	return nil
}

type templateRepo struct{ s *Store }

func (r templateRepo) Replace(_ context.Context, _ sqlc.DBTX, tpl availability.WeeklyTemplate, _ time.Time) error {
	r.s.templates[tpl.ProviderID] = tpl
	return nil
}

type overrideRepo struct{ s *Store }

func (r overrideRepo) Upsert(_ context.Context, _ sqlc.DBTX, o availability.DateOverride, _ time.Time) (availability.DateOverride, error) {
	r.s.overrides[overrideKey{o.ProviderID, o.Date}] = o
	return o, nil
}

func (r overrideRepo) Delete(_ context.Context, _ sqlc.DBTX, providerID int64, date availability.Date) error {
	k := overrideKey{providerID, date}
	if _, ok := r.s.overrides[k]; !ok {
		return infra.WrapRepoErr("override not found", nil, infra.KindNotFound)
	}
	delete(r.s.overrides, k)
	return nil
}

type paymentEventRepo struct{ s *Store }

func (r paymentEventRepo) TryRecord(_ context.Context, _ sqlc.DBTX, eventID, kind string, _ booking.Reference, _ time.Time) (bool, error) {
	if _, ok := r.s.events[eventID]; ok {
		return false, nil
	}
	r.s.events[eventID] = kind
	return true, nil
}

type notificationRepo struct{ s *Store }

func (r notificationRepo) CreateJob(_ context.Context, _ sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	r.s.jobs = append(r.s.jobs, Job{Kind: kind, Topic: topic, Payload: payload, RunAt: runAt})
	return nil
}

// Providers is a fixed ProviderDirectory.
type Providers map[int64]shared.ProviderSnapshot

func (p Providers) ProviderByID(_ context.Context, id int64) (*shared.ProviderSnapshot, error) {
	snap, ok := p[id]
	if !ok {
		return nil, infra.WrapRepoErr("provider not found", nil, infra.KindNotFound)
	}
	return &snap, nil
}
