//go:build unit

package availability_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"physio-scheduler/internal/domain/availability"
	"physio-scheduler/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tods(ss ...string) []availability.TimeOfDay {
	out := make([]availability.TimeOfDay, 0, len(ss))
	for _, s := range ss {
		out = append(out, availability.MustParseTimeOfDay(s))
	}
	return out
}

func window(start, end string) availability.Window {
	return availability.Window{Start: availability.MustParseTimeOfDay(start), End: availability.MustParseTimeOfDay(end)}
}

func weekdayTemplate(t *testing.T, providerID int64, start, end string) *availability.WeeklyTemplate {
	t.Helper()
	rules := make([]availability.DayRule, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		active := d != time.Sunday && d != time.Saturday
		rules = append(rules, availability.DayRule{Weekday: d, IsActive: active, Window: window(start, end)})
	}
	tpl, err := availability.NewWeeklyTemplate(providerID, rules)
	require.NoError(t, err)
	return &tpl
}

func TestTimeOfDay(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  bool
	}{
		{in: "09:00", want: "09:00"},
		{in: "9:30", want: "09:30"},
		{in: "3:30 PM", want: "15:30"},
		{in: "12:00 am", want: "00:00"},
		{in: "12:15 PM", want: "12:15"},
		{in: "17:45:00", want: "17:45"},
		{in: "25:00", err: true},
		{in: "noon", err: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := availability.ParseTimeOfDay(tc.in)
			if tc.err {
				require.Error(t, err)
				assert.True(t, errs.Is(err, availability.ErrInvalidTimeOfDay))
				assert.True(t, errs.Is(err, errs.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}

	t.Run("add past midnight is rejected", func(t *testing.T) {
		_, ok := availability.MustParseTimeOfDay("22:30").Add(3 * time.Hour)
		assert.False(t, ok)
		v, ok := availability.MustParseTimeOfDay("14:00").Add(3 * time.Hour)
		assert.True(t, ok)
		assert.Equal(t, "17:00", v.String())
	})
}

func TestDate(t *testing.T) {
	d := availability.MustParseDate("2025-03-10")
	assert.Equal(t, time.Monday, d.Weekday())
	assert.Equal(t, "2025-03-11", d.AddDays(1).String())
	assert.Equal(t, "2025-02-28", availability.MustParseDate("2025-03-01").AddDays(-1).String())
	assert.True(t, d.Before(d.AddDays(1)))

	m, err := availability.ParseMonth("2024-02")
	require.NoError(t, err)
	assert.Equal(t, 29, m.DaysIn())
	assert.Len(t, m.Days(), 29)
	assert.Equal(t, "2024-02-29", m.Last().String())

	_, err = availability.ParseDate("2025-13-01")
	assert.True(t, errs.Is(err, errs.ErrValidation))
}

func TestNewWeeklyTemplate(t *testing.T) {
	t.Run("requires seven rules", func(t *testing.T) {
		_, err := availability.NewWeeklyTemplate(7, []availability.DayRule{{Weekday: time.Monday, IsActive: true, Window: window("09:00", "17:00")}})
		require.Error(t, err)
		assert.True(t, errs.Is(err, availability.ErrInvalidTemplate))
	})

	t.Run("rejects duplicate weekday", func(t *testing.T) {
		rules := make([]availability.DayRule, 7)
		for i := range rules {
			rules[i] = availability.DayRule{Weekday: time.Monday}
		}
		_, err := availability.NewWeeklyTemplate(7, rules)
		assert.True(t, errs.Is(err, availability.ErrInvalidTemplate))
	})

	t.Run("rejects inverted window on active day", func(t *testing.T) {
		rules := make([]availability.DayRule, 0, 7)
		for d := time.Sunday; d <= time.Saturday; d++ {
			rules = append(rules, availability.DayRule{Weekday: d})
		}
		rules[1] = availability.DayRule{Weekday: time.Monday, IsActive: true, Window: window("17:00", "09:00")}
		_, err := availability.NewWeeklyTemplate(7, rules)
		assert.True(t, errs.Is(err, availability.ErrInvalidWindow))
	})

	t.Run("inactive day ignores window", func(t *testing.T) {
		rules := make([]availability.DayRule, 0, 7)
		for d := time.Sunday; d <= time.Saturday; d++ {
			rules = append(rules, availability.DayRule{Weekday: d})
		}
		tpl, err := availability.NewWeeklyTemplate(7, rules)
		require.NoError(t, err)
		assert.Len(t, tpl.Ordered(), 7)
		assert.Equal(t, time.Sunday, tpl.Ordered()[0].Weekday)
	})
}

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name  string
		w     availability.Window
		width time.Duration
		want  []availability.TimeOfDay
	}{
		{name: "hourly full day", w: window("09:00", "13:00"), width: time.Hour, want: tods("09:00", "10:00", "11:00", "12:00")},
		{name: "last partial unit is dropped", w: window("09:00", "11:30"), width: time.Hour, want: tods("09:00", "10:00")},
		{name: "narrower than one unit", w: window("09:00", "09:45"), width: time.Hour, want: nil},
		{name: "half hour width", w: window("09:30", "11:00"), width: 30 * time.Minute, want: tods("09:30", "10:00", "10:30")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := availability.GenerateSlots(tc.w, tc.width)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("slots mismatch (-want +got):\n%s", diff)
			}
			for _, s := range got {
				assert.False(t, s.Before(tc.w.Start))
				end, ok := s.Add(tc.width)
				require.True(t, ok)
				assert.False(t, tc.w.End.Before(end), "slot %s overruns window end %s", s, tc.w.End)
			}
		})
	}
}

func TestResolveWindow(t *testing.T) {
	monday := availability.MustParseDate("2025-03-10")
	tpl := weekdayTemplate(t, 7, "09:00", "17:00")

	t.Run("unavailable override wins over active template", func(t *testing.T) {
		o, err := availability.NewDateOverride(7, monday, false, nil, "holiday")
		require.NoError(t, err)
		_, ok := availability.ResolveWindow(monday, &o, tpl)
		assert.False(t, ok)
	})

	t.Run("available override replaces template window", func(t *testing.T) {
		w := window("12:00", "14:00")
		o, err := availability.NewDateOverride(7, monday, true, &w, "")
		require.NoError(t, err)
		got, ok := availability.ResolveWindow(monday, &o, tpl)
		require.True(t, ok)
		assert.Equal(t, w, got)
	})

	t.Run("weekend uses inactive template rule", func(t *testing.T) {
		_, ok := availability.ResolveWindow(availability.MustParseDate("2025-03-09"), nil, tpl)
		assert.False(t, ok)
	})

	t.Run("missing template", func(t *testing.T) {
		_, ok := availability.ResolveWindow(monday, nil, nil)
		assert.False(t, ok)
	})

	t.Run("available override requires window", func(t *testing.T) {
		_, err := availability.NewDateOverride(7, monday, true, nil, "")
		assert.True(t, errs.Is(err, availability.ErrInvalidOverride))
	})
}

func TestLeadTimePolicy(t *testing.T) {
	policy := availability.NewLeadTimePolicy(3*time.Hour, availability.MustParseTimeOfDay("19:00"), time.UTC)
	day := tods("09:00", "10:00", "14:30", "17:00", "17:30", "18:00", "20:00")
	today := availability.MustParseDate("2025-03-10")

	tests := []struct {
		name string
		date availability.Date
		now  time.Time
		want []availability.TimeOfDay
	}{
		{
			name: "14:00 with 3h lead keeps 17:00 onward",
			date: today,
			now:  time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC),
			want: tods("17:00", "17:30", "18:00", "20:00"),
		},
		{
			name: "after cutoff today is empty",
			date: today,
			now:  time.Date(2025, 3, 10, 19, 5, 0, 0, time.UTC),
			want: []availability.TimeOfDay{},
		},
		{
			name: "exactly at cutoff today is empty",
			date: today,
			now:  time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC),
			want: []availability.TimeOfDay{},
		},
		{
			name: "tomorrow untouched after cutoff",
			date: today.AddDays(1),
			now:  time.Date(2025, 3, 10, 19, 5, 0, 0, time.UTC),
			want: day,
		},
		{
			name: "past date is empty",
			date: today.AddDays(-1),
			now:  time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
			want: []availability.TimeOfDay{},
		},
		{
			name: "seconds past the minute push the boundary",
			date: today,
			now:  time.Date(2025, 3, 10, 14, 0, 30, 0, time.UTC),
			want: tods("17:30", "18:00", "20:00"),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := policy.Apply(day, tc.date, tc.now)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("slots mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("lead time crossing midnight empties today", func(t *testing.T) {
		late := availability.NewLeadTimePolicy(3*time.Hour, availability.MustParseTimeOfDay("23:30"), time.UTC)
		got := late.Apply(tods("23:00"), today, time.Date(2025, 3, 10, 21, 30, 0, 0, time.UTC))
		assert.Empty(t, got)
	})

	t.Run("today is judged in the operating location", func(t *testing.T) {
		nairobi := time.FixedZone("EAT", 3*60*60)
		p := availability.NewLeadTimePolicy(3*time.Hour, availability.MustParseTimeOfDay("19:00"), nairobi)
		// 22:00 UTC on the 9th is 01:00 on the 10th in EAT
		now := time.Date(2025, 3, 9, 22, 0, 0, 0, time.UTC)
		got := p.Apply(tods("09:00"), today, now)
		assert.Equal(t, tods("09:00"), got)
		assert.Empty(t, p.Apply(tods("09:00"), today.AddDays(-1), now))
	})
}

func TestExcludeHeld(t *testing.T) {
	got := availability.ExcludeHeld(tods("09:00", "10:00", "11:00", "12:00"), tods("12:00", "10:00", "15:00"))
	assert.Equal(t, tods("09:00", "11:00"), got)
	assert.Equal(t, tods("09:00"), availability.ExcludeHeld(tods("09:00"), nil))
}

type fakeTemplates struct {
	tpl   *availability.WeeklyTemplate
	calls int
	err   error
}

func (f *fakeTemplates) WeeklyTemplate(_ context.Context, _ int64) (*availability.WeeklyTemplate, error) {
	f.calls++
	return f.tpl, f.err
}

type fakeOverrides struct {
	byDate map[availability.Date]availability.DateOverride
}

func (f *fakeOverrides) OverrideOn(_ context.Context, _ int64, date availability.Date) (*availability.DateOverride, error) {
	o, ok := f.byDate[date]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

type fakeHeld struct {
	held []availability.TimeOfDay
}

func (f *fakeHeld) HeldSlots(_ context.Context, _ int64, _ availability.Date) ([]availability.TimeOfDay, error) {
	return f.held, nil
}

func TestSlotGenerator_Generate(t *testing.T) {
	ctx := context.Background()
	monday := availability.MustParseDate("2025-03-10")

	t.Run("override never consults template", func(t *testing.T) {
		o, err := availability.NewDateOverride(7, monday, false, nil, "")
		require.NoError(t, err)
		templates := &fakeTemplates{tpl: weekdayTemplate(t, 7, "09:00", "17:00")}
		gen := availability.NewSlotGenerator(templates, &fakeOverrides{byDate: map[availability.Date]availability.DateOverride{monday: o}}, time.Hour)

		got, err := gen.Generate(ctx, 7, monday)
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NotNil(t, got)
		assert.Zero(t, templates.calls)
	})

	t.Run("template used when no override", func(t *testing.T) {
		templates := &fakeTemplates{tpl: weekdayTemplate(t, 7, "09:00", "12:00")}
		gen := availability.NewSlotGenerator(templates, &fakeOverrides{}, time.Hour)

		got, err := gen.Generate(ctx, 7, monday)
		require.NoError(t, err)
		assert.Equal(t, tods("09:00", "10:00", "11:00"), got)
		assert.Equal(t, 1, templates.calls)
	})

	t.Run("template store failure propagates", func(t *testing.T) {
		boom := errors.New("boom")
		gen := availability.NewSlotGenerator(&fakeTemplates{err: boom}, &fakeOverrides{}, time.Hour)
		_, err := gen.Generate(ctx, 7, monday)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("conflict filter removes held slots in order", func(t *testing.T) {
		f := availability.NewConflictFilter(&fakeHeld{held: tods("10:00")})
		got, err := f.Apply(ctx, tods("09:00", "10:00", "11:00"), 7, monday)
		require.NoError(t, err)
		assert.Equal(t, tods("09:00", "11:00"), got)
	})
}
