package availability

import (
	"time"

	"physio-scheduler/internal/pkg/errs"
)

var (
	ErrInvalidDate  = errs.New("invalid date")
	ErrInvalidMonth = errs.New("invalid month")
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// Date is a civil calendar date with no zone attached.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, errs.MarkAll(errs.Wrapf(err, "parse date %q", s), ErrInvalidDate, errs.ErrValidation)
	}
	return DateOf(t), nil
}

func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf takes the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) utc() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) Weekday() time.Weekday { return d.utc().Weekday() }

func (d Date) AddDays(n int) Date { return DateOf(d.utc().AddDate(0, 0, n)) }

func (d Date) Compare(o Date) int { return d.utc().Compare(o.utc()) }

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

func (d Date) IsZero() bool { return d == Date{} }

// At returns the instant of the given wall-clock time on d in loc.
func (d Date) At(t TimeOfDay, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, t.Hour(), t.Minute(), 0, 0, loc)
}

func (d Date) CalendarMonth() Month { return Month{Year: d.Year, Month: d.Month} }

func (d Date) String() string { return d.utc().Format(dateLayout) }

func (d Date) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Date) UnmarshalText(b []byte) error {
	v, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Month identifies a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return Month{}, errs.MarkAll(errs.Wrapf(err, "parse month %q", s), ErrInvalidMonth, errs.ErrValidation)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

func (m Month) First() Date { return Date{Year: m.Year, Month: m.Month, Day: 1} }

func (m Month) Last() Date { return Date{Year: m.Year, Month: m.Month, Day: m.DaysIn()} }

func (m Month) DaysIn() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Days lists every date of the month in order.
func (m Month) Days() []Date {
	n := m.DaysIn()
	out := make([]Date, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, Date{Year: m.Year, Month: m.Month, Day: i})
	}
	return out
}

func (m Month) String() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format(monthLayout)
}
