package response

import (
	"physio-scheduler/internal/usecase/queries"
)

type SlotsResponse struct {
	ProviderID int64    `json:"providerId"`
	Date       string   `json:"date"`
	Slots      []string `json:"slots"`
}

func FromSlotsView(v *queries.SlotsView) *SlotsResponse {
	slots := make([]string, len(v.Slots))
	for i, s := range v.Slots {
		slots[i] = s.String()
	}
	return &SlotsResponse{
		ProviderID: v.ProviderID,
		Date:       v.Date.String(),
		Slots:      slots,
	}
}

type AvailableDatesResponse struct {
	ProviderID int64    `json:"providerId"`
	Month      string   `json:"month"`
	Dates      []string `json:"dates"`
}

func FromAvailableDatesView(v *queries.AvailableDatesView) *AvailableDatesResponse {
	dates := make([]string, len(v.Dates))
	for i, d := range v.Dates {
		dates[i] = d.String()
	}
	return &AvailableDatesResponse{
		ProviderID: v.ProviderID,
		Month:      v.Month.String(),
		Dates:      dates,
	}
}
