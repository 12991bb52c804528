package response

import (
	"physio-scheduler/internal/domain/availability"
)

type DayRuleResponse struct {
	DayOfWeek int    `json:"dayOfWeek"`
	IsActive  bool   `json:"isActive"`
	Start     string `json:"start,omitempty"`
	End       string `json:"end,omitempty"`
}

type TemplateResponse struct {
	ProviderID int64             `json:"providerId"`
	Rules      []DayRuleResponse `json:"rules"`
}

func FromWeeklyTemplate(t *availability.WeeklyTemplate) *TemplateResponse {
	rules := make([]DayRuleResponse, 0, len(t.Rules))
	for _, r := range t.Ordered() {
		item := DayRuleResponse{DayOfWeek: int(r.Weekday), IsActive: r.IsActive}
		if r.IsActive {
			item.Start = r.Window.Start.String()
			item.End = r.Window.End.String()
		}
		rules = append(rules, item)
	}
	return &TemplateResponse{ProviderID: t.ProviderID, Rules: rules}
}

type OverrideResponse struct {
	ProviderID  int64  `json:"providerId"`
	Date        string `json:"date"`
	IsAvailable bool   `json:"isAvailable"`
	Start       string `json:"start,omitempty"`
	End         string `json:"end,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

func FromOverride(o *availability.DateOverride) *OverrideResponse {
	resp := &OverrideResponse{
		ProviderID:  o.ProviderID,
		Date:        o.Date.String(),
		IsAvailable: o.IsAvailable,
		Reason:      o.Reason,
	}
	if o.IsAvailable {
		resp.Start = o.Window.Start.String()
		resp.End = o.Window.End.String()
	}
	return resp
}

func FromOverrides(items []availability.DateOverride) []*OverrideResponse {
	res := make([]*OverrideResponse, len(items))
	for i := range items {
		res[i] = FromOverride(&items[i])
	}
	return res
}
