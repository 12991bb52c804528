package converter

import (
	"time"

	"physio-scheduler/internal/domain/availability"
	sqlc "physio-scheduler/internal/infra/sqlc/generated"
	"physio-scheduler/internal/pkg/errs"
	"physio-scheduler/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func DateToPg(d availability.Date) pgtype.Date {
	return pgconv.DateToPgtype(d.Year, d.Month, d.Day)
}

func DateFromPg(pd pgtype.Date) availability.Date {
	return availability.DateOf(pd.Time)
}

func TimeOfDayToPg(t availability.TimeOfDay) pgtype.Time {
	return pgconv.MinutesToPgtypeTime(t.Minutes())
}

// TimeOfDayFromPg rejects NULL; callers with nullable columns check Valid first.
func TimeOfDayFromPg(pt pgtype.Time) (availability.TimeOfDay, error) {
	m, ok := pgconv.MinutesFromPgtypeTime(pt)
	if !ok {
		return 0, errs.New("unexpected NULL time")
	}
	return availability.TimeOfDayFromMinutes(m)
}

// TemplateRuleToParams stores inactive days with whatever window they carry;
// the columns are NOT NULL and only checked on active rows.
func TemplateRuleToParams(providerID int64, r availability.DayRule, at time.Time) sqlc.UpsertTemplateRuleParams {
	return sqlc.UpsertTemplateRuleParams{
		ProviderID: providerID,
		DayOfWeek:  int16(r.Weekday),
		IsActive:   r.IsActive,
		StartTime:  TimeOfDayToPg(r.Window.Start),
		EndTime:    TimeOfDayToPg(r.Window.End),
		UpdatedAt:  pgconv.TimeToPgtype(at),
	}
}

// TemplateFromRows returns nil for a provider with no stored rules.
func TemplateFromRows(providerID int64, rows []sqlc.AvailabilityTemplates) (*availability.WeeklyTemplate, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	tpl := &availability.WeeklyTemplate{
		ProviderID: providerID,
		Rules:      make(map[time.Weekday]availability.DayRule, len(rows)),
	}
	for _, row := range rows {
		rule := availability.DayRule{Weekday: time.Weekday(row.DayOfWeek), IsActive: row.IsActive}
		if row.IsActive {
			w, err := windowFromPg(row.StartTime, row.EndTime)
			if err != nil {
				return nil, errs.Wrapf(err, "template rule %s", rule.Weekday)
			}
			rule.Window = w
		}
		tpl.Rules[rule.Weekday] = rule
	}
	return tpl, nil
}

func OverrideToParams(o availability.DateOverride, at time.Time) sqlc.UpsertOverrideParams {
	params := sqlc.UpsertOverrideParams{
		ProviderID:   o.ProviderID,
		OverrideDate: DateToPg(o.Date),
		IsAvailable:  o.IsAvailable,
		Reason:       pgconv.OptionalStringToPgtype(o.Reason),
		CreatedAt:    pgconv.TimeToPgtype(at),
	}
	if o.IsAvailable {
		params.StartTime = TimeOfDayToPg(o.Window.Start)
		params.EndTime = TimeOfDayToPg(o.Window.End)
	}
	return params
}

func OverrideFromRow(row sqlc.DateOverrides) (availability.DateOverride, error) {
	o := availability.DateOverride{
		ProviderID:  row.ProviderID,
		Date:        DateFromPg(row.OverrideDate),
		IsAvailable: row.IsAvailable,
		Reason:      row.Reason.String,
	}
	if row.IsAvailable {
		w, err := windowFromPg(row.StartTime, row.EndTime)
		if err != nil {
			return availability.DateOverride{}, errs.Wrapf(err, "override %s", o.Date)
		}
		o.Window = w
	}
	return o, nil
}

func windowFromPg(start, end pgtype.Time) (availability.Window, error) {
	s, err := TimeOfDayFromPg(start)
	if err != nil {
		return availability.Window{}, err
	}
	e, err := TimeOfDayFromPg(end)
	if err != nil {
		return availability.Window{}, err
	}
	return availability.NewWindow(s, e)
}
