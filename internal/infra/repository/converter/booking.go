package converter

import (
	"physio-scheduler/internal/domain/booking"
	sqlc "physio-scheduler/internal/infra/sqlc/generated"
	"physio-scheduler/internal/pkg/errs"
	"physio-scheduler/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:              b.ID(),
		ProviderID:      b.ProviderID(),
		ClientID:        b.ClientID(),
		BookingDate:     DateToPg(b.Date()),
		SlotTime:        TimeOfDayToPg(b.Slot()),
		DurationMinutes: int32(b.DurationMinutes()),
		Status:          b.Status().String(),
		PaymentStatus:   b.PaymentStatus().String(),
		AmountCents:     b.Amount().Cents(),
		Currency:        b.Amount().Currency(),
		Reference:       b.Reference().String(),
		Notes:           pgconv.OptionalStringToPgtype(b.Note().String()),
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingToStatusParams(b *booking.Booking, expected booking.Status) sqlc.UpdateBookingStatusParams {
	return sqlc.UpdateBookingStatusParams{
		NewStatus:       b.Status().String(),
		PaymentStatus:   b.PaymentStatus().String(),
		PaymentIntentID: pgconv.OptionalStringToPgtype(b.PaymentIntentID()),
		UpdatedAt:       pgconv.TimeToPgtype(b.UpdatedAt()),
		ID:              b.ID(),
		ExpectedStatus:  expected.String(),
	}
}

// BookingFromRow rebuilds the aggregate. Rows violating the schema's CHECKs
// surface as errors rather than half-built bookings.
func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	slot, err := TimeOfDayFromPg(row.SlotTime)
	if err != nil {
		return nil, err
	}
	status := booking.Status(row.Status)
	if !status.IsValid() {
		return nil, errs.Newf("unknown booking status %q", row.Status)
	}
	payment := booking.PaymentStatus(row.PaymentStatus)
	if !payment.IsValid() {
		return nil, errs.Newf("unknown payment status %q", row.PaymentStatus)
	}
	amount, err := booking.NewMoney(row.AmountCents, row.Currency)
	if err != nil {
		return nil, err
	}
	var note booking.Note
	if row.Notes.Valid {
		if note, err = booking.NewNote(row.Notes.String); err != nil {
			return nil, err
		}
	}

	return booking.ReconstructBooking(booking.ReconstructParams{
		ID:               row.ID,
		ProviderID:       row.ProviderID,
		ClientID:         row.ClientID,
		Date:             DateFromPg(row.BookingDate),
		Slot:             slot,
		DurationMinutes:  int(row.DurationMinutes),
		Status:           status,
		PaymentStatus:    payment,
		Amount:           amount,
		Reference:        booking.Reference(row.Reference),
		PaymentSessionID: row.PaymentSessionID.String,
		PaymentIntentID:  row.PaymentIntentID.String,
		Note:             note,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}
