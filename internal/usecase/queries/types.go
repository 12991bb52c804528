package queries

import (
	"time"

	"physio-scheduler/internal/domain/availability"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID               uuid.UUID              `json:"id"`
	Reference        string                 `json:"reference"`
	ProviderID       int64                  `json:"provider_id"`
	ProviderName     string                 `json:"provider_name"`
	ClientID         int64                  `json:"client_id"`
	Date             availability.Date      `json:"date"`
	Time             availability.TimeOfDay `json:"time"`
	DurationMinutes  int                    `json:"duration_minutes"`
	Status           string                 `json:"status"`
	PaymentStatus    string                 `json:"payment_status"`
	AmountCents      int64                  `json:"amount_cents"`
	Currency         string                 `json:"currency"`
	PaymentSessionID *string                `json:"payment_session_id,omitempty"`
	Notes            *string                `json:"notes,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

type SlotsView struct {
	ProviderID int64
	Date       availability.Date
	Slots      []availability.TimeOfDay
}

type AvailableDatesView struct {
	ProviderID int64
	Month      availability.Month
	Dates      []availability.Date
}
