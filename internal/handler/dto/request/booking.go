package request

import (
	"physio-scheduler/internal/domain/availability"
	"physio-scheduler/internal/usecase/commands"
)

type CreateBookingRequest struct {
	ProviderID int64  `json:"providerId" binding:"required,min=1"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Notes      string `json:"notes" binding:"max=1000"`
}

func (r *CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	date, err := availability.ParseDate(r.Date)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	t, err := availability.ParseTimeOfDay(r.Time)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	return commands.CreateBookingInput{
		ProviderID: r.ProviderID,
		Date:       date,
		Time:       t,
		Notes:      r.Notes,
	}, nil
}
