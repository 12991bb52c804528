package response

import (
	"time"

	"physio-scheduler/internal/usecase/commands"
	"physio-scheduler/internal/usecase/queries"
)

type PaymentResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

type CreateBookingResponse struct {
	BookingID     string           `json:"bookingId"`
	Reference     string           `json:"reference"`
	Status        string           `json:"status"`
	PaymentStatus string           `json:"paymentStatus"`
	Payment       *PaymentResponse `json:"payment,omitempty"`
}

func FromCreateBookingResult(r *commands.CreateBookingResult) *CreateBookingResponse {
	resp := &CreateBookingResponse{
		BookingID:     r.BookingID.String(),
		Reference:     r.Reference.String(),
		Status:        r.Status.String(),
		PaymentStatus: r.PaymentStatus.String(),
	}
	if r.Checkout != nil {
		resp.Payment = &PaymentResponse{SessionID: r.Checkout.ID, URL: r.Checkout.URL}
	}
	return resp
}

type BookingResponse struct {
	ID              string    `json:"id"`
	Reference       string    `json:"reference"`
	ProviderID      int64     `json:"providerId"`
	ProviderName    string    `json:"providerName"`
	ClientID        int64     `json:"clientId"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"paymentStatus"`
	AmountCents     int64     `json:"amountCents"`
	Currency        string    `json:"currency"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              v.ID.String(),
		Reference:       v.Reference,
		ProviderID:      v.ProviderID,
		ProviderName:    v.ProviderName,
		ClientID:        v.ClientID,
		Date:            v.Date.String(),
		Time:            v.Time.String(),
		DurationMinutes: v.DurationMinutes,
		Status:          v.Status,
		PaymentStatus:   v.PaymentStatus,
		AmountCents:     v.AmountCents,
		Currency:        v.Currency,
		Notes:           v.Notes,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}
