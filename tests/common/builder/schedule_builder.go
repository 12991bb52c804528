//go:build unit || e2e

package builder

import (
	"time"

	"physio-scheduler/internal/domain/availability"
	sqlc "physio-scheduler/internal/infra/sqlc/generated"
	"physio-scheduler/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// ScheduleBuilder describes a provider's week: weekday -> "HH:MM-HH:MM",
// days missing from Hours are inactive.
type ScheduleBuilder struct {
	ProviderID int64
	Hours      map[time.Weekday][2]string
}

func NewScheduleBuilder() *ScheduleBuilder {
	weekday := [2]string{"09:00", "17:00"}
	return &ScheduleBuilder{
		ProviderID: 7,
		Hours: map[time.Weekday][2]string{
			time.Monday:    weekday,
			time.Tuesday:   weekday,
			time.Wednesday: weekday,
			time.Thursday:  weekday,
			time.Friday:    weekday,
		},
	}
}

func (s *ScheduleBuilder) WithDay(d time.Weekday, start, end string) *ScheduleBuilder {
	s.Hours[d] = [2]string{start, end}
	return s
}

func (s *ScheduleBuilder) WithoutDay(d time.Weekday) *ScheduleBuilder {
	delete(s.Hours, d)
	return s
}

func (s *ScheduleBuilder) BuildRules() []availability.DayRule {
	rules := make([]availability.DayRule, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		rule := availability.DayRule{Weekday: d}
		if h, ok := s.Hours[d]; ok {
			rule.IsActive = true
			rule.Window = mustWindow(h[0], h[1])
		}
		rules = append(rules, rule)
	}
	return rules
}

func (s *ScheduleBuilder) BuildDomain() *availability.WeeklyTemplate {
	tpl, err := availability.NewWeeklyTemplate(s.ProviderID, s.BuildRules())
	if err != nil {
		panic(err)
	}
	return &tpl
}

func (s *ScheduleBuilder) BuildInfra() []sqlc.AvailabilityTemplates {
	rows := make([]sqlc.AvailabilityTemplates, 0, 7)
	for _, r := range s.BuildRules() {
		rows = append(rows, sqlc.AvailabilityTemplates{
			ProviderID: s.ProviderID,
			DayOfWeek:  int16(r.Weekday),
			IsActive:   r.IsActive,
			StartTime:  PgTime(r.Window.Start.String()),
			EndTime:    PgTime(r.Window.End.String()),
		})
	}
	return rows
}

func (s *ScheduleBuilder) BuildOverride(date string, available bool, start, end string) availability.DateOverride {
	o := availability.DateOverride{
		ProviderID:  s.ProviderID,
		Date:        availability.MustParseDate(date),
		IsAvailable: available,
	}
	if available {
		o.Window = mustWindow(start, end)
	}
	return o
}

func (s *ScheduleBuilder) BuildOverrideRow(date string, available bool, start, end string) sqlc.DateOverrides {
	d := availability.MustParseDate(date)
	row := sqlc.DateOverrides{
		ProviderID:   s.ProviderID,
		OverrideDate: pgconv.DateToPgtype(d.Year, d.Month, d.Day),
		IsAvailable:  available,
	}
	if available {
		row.StartTime = PgTime(start)
		row.EndTime = PgTime(end)
	}
	return row
}

// PgTime converts "HH:MM" into a TIME column value.
func PgTime(hhmm string) pgtype.Time {
	t := availability.MustParseTimeOfDay(hhmm)
	return pgconv.MinutesToPgtypeTime(t.Minutes())
}

func mustWindow(start, end string) availability.Window {
	w, err := availability.NewWindow(availability.MustParseTimeOfDay(start), availability.MustParseTimeOfDay(end))
	if err != nil {
		panic(err)
	}
	return w
}
