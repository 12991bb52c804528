//go:build unit || e2e

package builder

import (
	"time"

	"physio-scheduler/internal/domain/availability"
	"physio-scheduler/internal/domain/booking"
	reqdto "physio-scheduler/internal/handler/dto/request"
	sqlc "physio-scheduler/internal/infra/sqlc/generated"
	"physio-scheduler/internal/pkg/pgconv"
	"physio-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID              uuid.UUID
	ProviderID      int64
	ProviderName    string
	ClientID        int64
	Date            availability.Date
	Slot            availability.TimeOfDay
	DurationMinutes int
	Status          booking.Status
	PaymentStatus   booking.PaymentStatus
	AmountCents     int64
	Currency        string
	Reference       booking.Reference
	SessionID       string
	IntentID        string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:              uuid.New(),
		ProviderID:      7,
		ProviderName:    "Dr. Achieng Otieno",
		ClientID:        42,
		Date:            availability.MustParseDate("2025-03-10"),
		Slot:            availability.MustParseTimeOfDay("10:00"),
		DurationMinutes: 60,
		Status:          booking.StatusPending,
		PaymentStatus:   booking.PaymentPending,
		AmountCents:     350000,
		Currency:        "kes",
		Reference:       booking.Reference("PHY-7K3M9Q2X"),
		SessionID:       "cs_test_123",
		Notes:           "Lower back pain",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status, p booking.PaymentStatus) *BookingBuilder {
	b.Status = s
	b.PaymentStatus = p
	return b
}

func (b *BookingBuilder) WithReference(ref string) *BookingBuilder {
	b.Reference = booking.Reference(ref)
	return b
}

func (b *BookingBuilder) WithSlot(date, slot string) *BookingBuilder {
	b.Date = availability.MustParseDate(date)
	b.Slot = availability.MustParseTimeOfDay(slot)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	amount, _ := booking.NewMoney(b.AmountCents, b.Currency)
	note, _ := booking.NewNote(b.Notes)
	return booking.ReconstructBooking(booking.ReconstructParams{
		ID:               b.ID,
		ProviderID:       b.ProviderID,
		ClientID:         b.ClientID,
		Date:             b.Date,
		Slot:             b.Slot,
		DurationMinutes:  b.DurationMinutes,
		Status:           b.Status,
		PaymentStatus:    b.PaymentStatus,
		Amount:           amount,
		Reference:        b.Reference,
		PaymentSessionID: b.SessionID,
		PaymentIntentID:  b.IntentID,
		Note:             note,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	})
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	return sqlc.Bookings{
		ID:               b.ID,
		ProviderID:       b.ProviderID,
		ClientID:         b.ClientID,
		BookingDate:      pgconv.DateToPgtype(b.Date.Year, b.Date.Month, b.Date.Day),
		SlotTime:         pgconv.MinutesToPgtypeTime(b.Slot.Minutes()),
		DurationMinutes:  int32(b.DurationMinutes),
		Status:           b.Status.String(),
		PaymentStatus:    b.PaymentStatus.String(),
		AmountCents:      b.AmountCents,
		Currency:         b.Currency,
		Reference:        b.Reference.String(),
		PaymentSessionID: pgtype.Text{String: b.SessionID, Valid: b.SessionID != ""},
		PaymentIntentID:  pgtype.Text{String: b.IntentID, Valid: b.IntentID != ""},
		Notes:            pgtype.Text{String: b.Notes, Valid: b.Notes != ""},
		CreatedAt:        pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:        pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildViewRow() sqlc.GetBookingViewByReferenceRow {
	row := b.BuildInfra()
	return sqlc.GetBookingViewByReferenceRow{
		ID:               row.ID,
		ProviderID:       row.ProviderID,
		ProviderName:     b.ProviderName,
		ClientID:         row.ClientID,
		BookingDate:      row.BookingDate,
		SlotTime:         row.SlotTime,
		DurationMinutes:  row.DurationMinutes,
		Status:           row.Status,
		PaymentStatus:    row.PaymentStatus,
		AmountCents:      row.AmountCents,
		Currency:         row.Currency,
		Reference:        row.Reference,
		PaymentSessionID: row.PaymentSessionID,
		Notes:            row.Notes,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ProviderID: b.ProviderID,
		Date:       b.Date.String(),
		Time:       b.Slot.String(),
		Notes:      b.Notes,
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	var notes, session *string
	if b.Notes != "" {
		n := b.Notes
		notes = &n
	}
	if b.SessionID != "" {
		s := b.SessionID
		session = &s
	}
	return &queries.BookingView{
		ID:               b.ID,
		Reference:        b.Reference.String(),
		ProviderID:       b.ProviderID,
		ProviderName:     b.ProviderName,
		ClientID:         b.ClientID,
		Date:             b.Date,
		Time:             b.Slot,
		DurationMinutes:  b.DurationMinutes,
		Status:           b.Status.String(),
		PaymentStatus:    b.PaymentStatus.String(),
		AmountCents:      b.AmountCents,
		Currency:         b.Currency,
		PaymentSessionID: session,
		Notes:            notes,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}
