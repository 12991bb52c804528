package request

import (
	"time"

	"physio-scheduler/internal/domain/availability"
)

type DayRuleRequest struct {
	DayOfWeek *int   `json:"dayOfWeek" binding:"required,min=0,max=6"`
	IsActive  bool   `json:"isActive"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

type ReplaceTemplateRequest struct {
	Rules []DayRuleRequest `json:"rules" binding:"required,len=7,dive"`
}

// ToDomain parses the rules; weekday uniqueness is checked by the domain.
// Times on inactive days are optional.
func (r *ReplaceTemplateRequest) ToDomain() ([]availability.DayRule, error) {
	rules := make([]availability.DayRule, 0, len(r.Rules))
	for _, in := range r.Rules {
		rule := availability.DayRule{Weekday: time.Weekday(*in.DayOfWeek), IsActive: in.IsActive}
		if in.IsActive || (in.Start != "" && in.End != "") {
			w, err := parseWindow(in.Start, in.End)
			if err != nil {
				return nil, err
			}
			rule.Window = w
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

type UpsertOverrideRequest struct {
	IsAvailable *bool  `json:"isAvailable" binding:"required"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Reason      string `json:"reason" binding:"max=500"`
}

func (r *UpsertOverrideRequest) ToDomain(providerID int64, date availability.Date) (availability.DateOverride, error) {
	o := availability.DateOverride{
		ProviderID:  providerID,
		Date:        date,
		IsAvailable: *r.IsAvailable,
		Reason:      r.Reason,
	}
	if o.IsAvailable {
		w, err := parseWindow(r.Start, r.End)
		if err != nil {
			return availability.DateOverride{}, err
		}
		o.Window = w
	}
	return o, nil
}

func parseWindow(start, end string) (availability.Window, error) {
	s, err := availability.ParseTimeOfDay(start)
	if err != nil {
		return availability.Window{}, err
	}
	e, err := availability.ParseTimeOfDay(end)
	if err != nil {
		return availability.Window{}, err
	}
	return availability.NewWindow(s, e)
}
