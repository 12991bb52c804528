package availability

import (
	"fmt"
	"strings"
	"time"

	"physio-scheduler/internal/pkg/errs"
)

var ErrInvalidTimeOfDay = errs.New("invalid time of day")

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time at minute precision, stored as minutes since midnight.
type TimeOfDay int

var timeLayouts = []string{"15:04", "15:04:05", "3:04 PM", "3:04PM", "03:04 PM"}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, errs.MarkAll(errs.Newf("hour=%d minute=%d out of range", hour, minute), ErrInvalidTimeOfDay, errs.ErrValidation)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// ParseTimeOfDay accepts 24-hour ("09:30") and 12-hour ("9:30 AM") forms.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, v)
		if err == nil {
			return TimeOfDay(t.Hour()*60 + t.Minute()), nil
		}
	}
	return 0, errs.MarkAll(errs.Newf("cannot parse %q", s), ErrInvalidTimeOfDay, errs.ErrValidation)
}

func MustParseTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TimeOfDayFromMinutes(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return 0, errs.MarkAll(errs.Newf("minutes=%d out of range", minutes), ErrInvalidTimeOfDay, errs.ErrValidation)
	}
	return TimeOfDay(minutes), nil
}

func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

func (t TimeOfDay) Hour() int    { return int(t) / 60 }
func (t TimeOfDay) Minute() int  { return int(t) % 60 }
func (t TimeOfDay) Minutes() int { return int(t) }

func (t TimeOfDay) Before(o TimeOfDay) bool { return t < o }

func (t TimeOfDay) Compare(o TimeOfDay) int {
	switch {
	case t < o:
		return -1
	case t > o:
		return 1
	default:
		return 0
	}
}

// Add returns the shifted time and false when the result leaves the day.
func (t TimeOfDay) Add(d time.Duration) (TimeOfDay, bool) {
	m := int(t) + int(d/time.Minute)
	if m < 0 || m >= minutesPerDay {
		return 0, false
	}
	return TimeOfDay(m), true
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(b []byte) error {
	v, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
