package availability

import (
	"time"
)

const (
	DefaultSlotWidth = 60 * time.Minute
	DefaultLeadTime  = 3 * time.Hour
)

var DefaultCutoff = TimeOfDay(19 * 60)

// LeadTimePolicy trims same-day slots. It is evaluated against a clock
// reading in the operating location and holds no state.
type LeadTimePolicy struct {
	LeadTime time.Duration
	Cutoff   TimeOfDay
	Location *time.Location
}

func NewLeadTimePolicy(leadTime time.Duration, cutoff TimeOfDay, loc *time.Location) LeadTimePolicy {
	if loc == nil {
		loc = time.Local
	}
	return LeadTimePolicy{LeadTime: leadTime, Cutoff: cutoff, Location: loc}
}

// Apply returns the slots of date still bookable at now.
func (p LeadTimePolicy) Apply(slots []TimeOfDay, date Date, now time.Time) []TimeOfDay {
	local := now.In(p.Location)
	today := DateOf(local)

	switch date.Compare(today) {
	case -1:
		return []TimeOfDay{}
	case 1:
		return slots
	}

	nowTOD := TimeOfDayOf(local)
	if !nowTOD.Before(p.Cutoff) {
		return []TimeOfDay{}
	}

	earliest, ok := nowTOD.Add(p.LeadTime)
	if !ok {
		return []TimeOfDay{}
	}
	// a partially elapsed minute still counts against the lead time
	if local.Second() > 0 || local.Nanosecond() > 0 {
		if earliest, ok = earliest.Add(time.Minute); !ok {
			return []TimeOfDay{}
		}
	}

	out := make([]TimeOfDay, 0, len(slots))
	for _, s := range slots {
		if !s.Before(earliest) {
			out = append(out, s)
		}
	}
	return out
}

// ExcludeHeld drops slots present in held and keeps the input order.
func ExcludeHeld(slots []TimeOfDay, held []TimeOfDay) []TimeOfDay {
	if len(held) == 0 {
		return slots
	}
	taken := make(map[TimeOfDay]struct{}, len(held))
	for _, h := range held {
		taken[h] = struct{}{}
	}
	out := make([]TimeOfDay, 0, len(slots))
	for _, s := range slots {
		if _, ok := taken[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}

func Contains(slots []TimeOfDay, t TimeOfDay) bool {
	for _, s := range slots {
		if s == t {
			return true
		}
	}
	return false
}
