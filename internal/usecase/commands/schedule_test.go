//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"physio-scheduler/internal/domain/actor"
	"physio-scheduler/internal/domain/availability"
	"physio-scheduler/internal/pkg/clock"
	"physio-scheduler/internal/pkg/errs"
	"physio-scheduler/internal/usecase/commands"
	"physio-scheduler/internal/usecase/shared"
	"physio-scheduler/tests/common/builder"
	"physio-scheduler/tests/common/fake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScheduleUseCase() (commands.ScheduleCommands, *fake.Store) {
	store := fake.NewStore()
	clk := clock.NewMockClock(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
	return commands.NewScheduleUseCase(store, store, clk), store
}

func TestReplaceWeeklyTemplate(t *testing.T) {
	ctx := context.Background()
	rules := builder.NewScheduleBuilder().WithDay(time.Saturday, "09:00", "12:00").BuildRules()

	t.Run("success: provider replaces own template and cache is dropped", func(t *testing.T) {
		uc, store := newScheduleUseCase()

		tpl, err := uc.ReplaceWeeklyTemplate(ctx, provider, 7, rules)
		require.NoError(t, err)
		assert.Len(t, tpl.Rules, 7)

		saved, err := store.WeeklyTemplate(ctx, 7)
		require.NoError(t, err)
		sat, _ := saved.RuleFor(time.Saturday)
		assert.True(t, sat.IsActive)
		assert.Equal(t, []int64{7}, store.Invalidated)
	})

	t.Run("success: admin manages any provider", func(t *testing.T) {
		uc, _ := newScheduleUseCase()
		_, err := uc.ReplaceWeeklyTemplate(ctx, admin, 7, rules)
		assert.NoError(t, err)
	})

	t.Run("error: provider cannot edit another schedule", func(t *testing.T) {
		uc, store := newScheduleUseCase()
		_, err := uc.ReplaceWeeklyTemplate(ctx, provider, 8, rules)
		assert.True(t, errs.Is(err, commands.ErrNotScheduleOwner))
		assert.True(t, errs.Is(err, errs.ErrForbidden))
		assert.Empty(t, store.Invalidated)
	})

	t.Run("error: six rules", func(t *testing.T) {
		uc, _ := newScheduleUseCase()
		_, err := uc.ReplaceWeeklyTemplate(ctx, provider, 7, rules[:6])
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("error: storage failure leaves cache untouched", func(t *testing.T) {
		uc, store := newScheduleUseCase()
		store.FailNext = errs.New("connection refused")
		_, err := uc.ReplaceWeeklyTemplate(ctx, provider, 7, rules)
		assert.Error(t, err)
		assert.Empty(t, store.Invalidated)
	})
}

func TestUpsertOverride(t *testing.T) {
	ctx := context.Background()
	sb := builder.NewScheduleBuilder()

	testCases := []struct {
		name      string
		caller    actor.Actor
		override  availability.DateOverride
		expectErr error
	}{
		{
			name:     "success: closes a future day",
			caller:   provider,
			override: sb.BuildOverride("2025-03-12", false, "", ""),
		},
		{
			name:     "success: today is not in the past",
			caller:   provider,
			override: sb.BuildOverride("2025-03-10", true, "13:00", "15:00"),
		},
		{
			name:      "error: past date for provider",
			caller:    provider,
			override:  sb.BuildOverride("2025-03-09", false, "", ""),
			expectErr: commands.ErrPastOverride,
		},
		{
			name:     "success: past date for admin",
			caller:   admin,
			override: sb.BuildOverride("2025-03-09", false, "", ""),
		},
		{
			name:   "error: available without window",
			caller: provider,
			override: availability.DateOverride{
				ProviderID: 7, Date: availability.MustParseDate("2025-03-12"), IsAvailable: true,
			},
			expectErr: errs.ErrValidation,
		},
		{
			name:      "error: another provider",
			caller:    actor.Actor{ID: 8, Role: actor.RoleProvider},
			override:  sb.BuildOverride("2025-03-12", false, "", ""),
			expectErr: errs.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, store := newScheduleUseCase()

			saved, err := uc.UpsertOverride(ctx, tc.caller, tc.override)

			stored, _ := store.OverrideOn(ctx, 7, tc.override.Date)
			if tc.expectErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectErr), "expected %v, got %v", tc.expectErr, err)
				assert.Nil(t, stored)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.override.IsAvailable, saved.IsAvailable)
			require.NotNil(t, stored)
			assert.Equal(t, tc.override.Date, stored.Date)
		})
	}
}

func TestRemoveOverride(t *testing.T) {
	ctx := context.Background()
	date := availability.MustParseDate("2025-03-12")

	t.Run("success: removes existing override", func(t *testing.T) {
		uc, store := newScheduleUseCase()
		store.PutOverride(builder.NewScheduleBuilder().BuildOverride("2025-03-12", false, "", ""))

		require.NoError(t, uc.RemoveOverride(ctx, provider, 7, date))
		o, _ := store.OverrideOn(ctx, 7, date)
		assert.Nil(t, o)
	})

	t.Run("error: nothing to remove", func(t *testing.T) {
		uc, _ := newScheduleUseCase()
		err := uc.RemoveOverride(ctx, provider, 7, date)
		assert.True(t, errs.Is(err, shared.ErrOverrideNotFound))
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("error: past date for provider", func(t *testing.T) {
		uc, _ := newScheduleUseCase()
		err := uc.RemoveOverride(ctx, provider, 7, availability.MustParseDate("2025-03-01"))
		assert.True(t, errs.Is(err, commands.ErrPastOverride))
	})
}
