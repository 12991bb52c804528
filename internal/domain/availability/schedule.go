package availability

import (
	"time"

	"physio-scheduler/internal/pkg/errs"
)

var (
	ErrInvalidWindow   = errs.New("start time must be before end time")
	ErrInvalidTemplate = errs.New("weekly template must contain exactly one rule per weekday")
	ErrInvalidOverride = errs.New("available override requires a time window")
)

// Window is a half-open wall-clock interval [Start, End).
type Window struct {
	Start TimeOfDay
	End   TimeOfDay
}

func NewWindow(start, end TimeOfDay) (Window, error) {
	if !start.Before(end) {
		return Window{}, errs.MarkAll(errs.Newf("window %s-%s", start, end), ErrInvalidWindow, errs.ErrValidation)
	}
	return Window{Start: start, End: end}, nil
}

// DayRule is one row of a provider's weekly template.
type DayRule struct {
	Weekday  time.Weekday
	IsActive bool
	Window   Window
}

// WeeklyTemplate holds at most one rule per weekday.
type WeeklyTemplate struct {
	ProviderID int64
	Rules      map[time.Weekday]DayRule
}

// NewWeeklyTemplate validates a full replacement set: exactly seven rules,
// one per weekday, and a proper window on every active day.
func NewWeeklyTemplate(providerID int64, rules []DayRule) (WeeklyTemplate, error) {
	if len(rules) != 7 {
		return WeeklyTemplate{}, errs.MarkAll(errs.Newf("got %d rules", len(rules)), ErrInvalidTemplate, errs.ErrValidation)
	}
	byDay := make(map[time.Weekday]DayRule, 7)
	for _, r := range rules {
		if r.Weekday < time.Sunday || r.Weekday > time.Saturday {
			return WeeklyTemplate{}, errs.MarkAll(errs.Newf("weekday %d", r.Weekday), ErrInvalidTemplate, errs.ErrValidation)
		}
		if _, dup := byDay[r.Weekday]; dup {
			return WeeklyTemplate{}, errs.MarkAll(errs.Newf("duplicate %s", r.Weekday), ErrInvalidTemplate, errs.ErrValidation)
		}
		if r.IsActive {
			if _, err := NewWindow(r.Window.Start, r.Window.End); err != nil {
				return WeeklyTemplate{}, errs.Wrapf(err, "%s", r.Weekday)
			}
		}
		byDay[r.Weekday] = r
	}
	return WeeklyTemplate{ProviderID: providerID, Rules: byDay}, nil
}

// Ordered returns the rules Sunday first.
func (t WeeklyTemplate) Ordered() []DayRule {
	out := make([]DayRule, 0, len(t.Rules))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if r, ok := t.Rules[d]; ok {
			out = append(out, r)
		}
	}
	return out
}

func (t WeeklyTemplate) RuleFor(d time.Weekday) (DayRule, bool) {
	r, ok := t.Rules[d]
	return r, ok
}

// DateOverride fully supersedes the template on its date.
type DateOverride struct {
	ProviderID  int64
	Date        Date
	IsAvailable bool
	Window      Window
	Reason      string
}

func NewDateOverride(providerID int64, date Date, isAvailable bool, window *Window, reason string) (DateOverride, error) {
	if date.IsZero() {
		return DateOverride{}, errs.MarkAll(errs.New("missing date"), ErrInvalidDate, errs.ErrValidation)
	}
	o := DateOverride{ProviderID: providerID, Date: date, IsAvailable: isAvailable, Reason: reason}
	if isAvailable {
		if window == nil {
			return DateOverride{}, errs.MarkAll(errs.Newf("override %s", date), ErrInvalidOverride, errs.ErrValidation)
		}
		w, err := NewWindow(window.Start, window.End)
		if err != nil {
			return DateOverride{}, err
		}
		o.Window = w
	}
	return o, nil
}

// ResolveWindow picks the window for date: the override when present,
// otherwise the template rule for the weekday. ok is false when the day
// offers nothing.
func ResolveWindow(date Date, override *DateOverride, template *WeeklyTemplate) (Window, bool) {
	if override != nil {
		if !override.IsAvailable {
			return Window{}, false
		}
		return override.Window, true
	}
	if template == nil {
		return Window{}, false
	}
	rule, found := template.RuleFor(date.Weekday())
	if !found || !rule.IsActive {
		return Window{}, false
	}
	return rule.Window, true
}

// GenerateSlots discretises w into fixed-width starts. A slot is offered
// only when it fits entirely inside the window.
func GenerateSlots(w Window, width time.Duration) []TimeOfDay {
	step := int(width / time.Minute)
	if step <= 0 {
		return nil
	}
	var slots []TimeOfDay
	for m := int(w.Start); m+step <= int(w.End); m += step {
		slots = append(slots, TimeOfDay(m))
	}
	return slots
}
