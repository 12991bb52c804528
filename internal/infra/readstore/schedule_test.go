//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"physio-scheduler/internal/domain/availability"
	"physio-scheduler/internal/infra"
	"physio-scheduler/internal/infra/readstore"
	sqlc "physio-scheduler/internal/infra/sqlc/generated"
	"physio-scheduler/internal/pkg/pgconv"
	"physio-scheduler/tests/common/builder"
	readstoremock "physio-scheduler/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newScheduleStore(t *testing.T) (*readstore.ScheduleReadStore, *readstoremock.MockScheduleReadQueries) {
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockScheduleReadQueries(ctrl)
	return readstore.NewScheduleReadStore(mockQueries, &mockDBTX{}), mockQueries
}

// =============================================================================
// WeeklyTemplate Tests
// =============================================================================

func TestScheduleReadStore_WeeklyTemplate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: seven rules decoded", func(t *testing.T) {
		store, mockQueries := newScheduleStore(t)
		sb := builder.NewScheduleBuilder().WithoutDay(time.Friday)
		mockQueries.EXPECT().ListTemplateRules(ctx, gomock.Any(), int64(7)).Return(sb.BuildInfra(), nil)

		tpl, err := store.WeeklyTemplate(ctx, 7)
		require.NoError(t, err)
		require.NotNil(t, tpl)
		assert.Len(t, tpl.Rules, 7)

		monday, ok := tpl.RuleFor(time.Monday)
		require.True(t, ok)
		assert.True(t, monday.IsActive)
		assert.Equal(t, "09:00", monday.Window.Start.String())
		assert.Equal(t, "17:00", monday.Window.End.String())

		friday, ok := tpl.RuleFor(time.Friday)
		require.True(t, ok)
		assert.False(t, friday.IsActive)
	})

	t.Run("success: provider without template", func(t *testing.T) {
		store, mockQueries := newScheduleStore(t)
		mockQueries.EXPECT().ListTemplateRules(ctx, gomock.Any(), int64(7)).Return(nil, nil)

		tpl, err := store.WeeklyTemplate(ctx, 7)
		require.NoError(t, err)
		assert.Nil(t, tpl)
	})

	t.Run("error: active rule with NULL time", func(t *testing.T) {
		store, mockQueries := newScheduleStore(t)
		rows := builder.NewScheduleBuilder().BuildInfra()
		rows[1].StartTime = pgtype.Time{}
		mockQueries.EXPECT().ListTemplateRules(ctx, gomock.Any(), int64(7)).Return(rows, nil)

		tpl, err := store.WeeklyTemplate(ctx, 7)
		require.Error(t, err)
		assert.Nil(t, tpl)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("error: database error", func(t *testing.T) {
		store, mockQueries := newScheduleStore(t)
		mockQueries.EXPECT().ListTemplateRules(ctx, gomock.Any(), int64(7)).Return(nil, errDBConnectionLost)

		_, err := store.WeeklyTemplate(ctx, 7)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Override Tests
// =============================================================================

func TestScheduleReadStore_OverrideOn(t *testing.T) {
	ctx := context.Background()
	sb := builder.NewScheduleBuilder()
	date := availability.MustParseDate("2025-03-12")

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockScheduleReadQueries)
		expectNil     bool
		expectedError bool
	}{
		{
			name: "success: override present",
			setupMock: func(mock *readstoremock.MockScheduleReadQueries) {
				mock.EXPECT().GetOverride(ctx, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.GetOverrideParams) (sqlc.DateOverrides, error) {
						assert.Equal(t, int64(7), arg.ProviderID)
						assert.Equal(t, pgconv.DateToPgtype(2025, time.March, 12), arg.OverrideDate)
						return sb.BuildOverrideRow("2025-03-12", false, "", ""), nil
					})
			},
		},
		{
			name: "success: no override is not an error",
			setupMock: func(mock *readstoremock.MockScheduleReadQueries) {
				mock.EXPECT().GetOverride(ctx, gomock.Any(), gomock.Any()).Return(sqlc.DateOverrides{}, pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockScheduleReadQueries) {
				mock.EXPECT().GetOverride(ctx, gomock.Any(), gomock.Any()).Return(sqlc.DateOverrides{}, errDBConnectionLost)
			},
			expectNil:     true,
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, mockQueries := newScheduleStore(t)
			tc.setupMock(mockQueries)

			o, err := store.OverrideOn(ctx, 7, date)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				require.NoError(t, err)
			}
			if tc.expectNil {
				assert.Nil(t, o)
				return
			}
			require.NotNil(t, o)
			assert.False(t, o.IsAvailable)
			assert.Equal(t, date, o.Date)
		})
	}
}

func TestScheduleReadStore_OverridesInRange(t *testing.T) {
	ctx := context.Background()
	sb := builder.NewScheduleBuilder()
	from := availability.MustParseDate("2025-03-01")
	to := availability.MustParseDate("2025-03-31")

	store, mockQueries := newScheduleStore(t)
	mockQueries.EXPECT().ListOverridesInRange(ctx, gomock.Any(), sqlc.ListOverridesInRangeParams{
		ProviderID: 7,
		FromDate:   pgconv.DateToPgtype(2025, time.March, 1),
		ToDate:     pgconv.DateToPgtype(2025, time.March, 31),
	}).Return([]sqlc.DateOverrides{
		sb.BuildOverrideRow("2025-03-12", false, "", ""),
		sb.BuildOverrideRow("2025-03-15", true, "10:00", "13:00"),
	}, nil)

	got, err := store.OverridesInRange(ctx, 7, from, to)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2025-03-12", got[0].Date.String())
	assert.True(t, got[1].IsAvailable)
	assert.Equal(t, "13:00", got[1].Window.End.String())
}

// =============================================================================
// Held Slot Tests
// =============================================================================

func TestScheduleReadStore_HeldSlots(t *testing.T) {
	ctx := context.Background()
	date := availability.MustParseDate("2025-03-10")

	t.Run("success: times decoded", func(t *testing.T) {
		store, mockQueries := newScheduleStore(t)
		mockQueries.EXPECT().ListHeldSlots(ctx, gomock.Any(), gomock.Any()).
			Return([]pgtype.Time{builder.PgTime("10:00"), builder.PgTime("14:00")}, nil)

		held, err := store.HeldSlots(ctx, 7, date)
		require.NoError(t, err)
		assert.Equal(t, []availability.TimeOfDay{
			availability.MustParseTimeOfDay("10:00"),
			availability.MustParseTimeOfDay("14:00"),
		}, held)
	})

	t.Run("error: database error", func(t *testing.T) {
		store, mockQueries := newScheduleStore(t)
		mockQueries.EXPECT().ListHeldSlots(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		held, err := store.HeldSlots(ctx, 7, date)
		require.Error(t, err)
		assert.Nil(t, held)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestScheduleReadStore_HeldSlotsInRange(t *testing.T) {
	ctx := context.Background()
	mon := availability.MustParseDate("2025-03-10")
	tue := availability.MustParseDate("2025-03-11")

	store, mockQueries := newScheduleStore(t)
	mockQueries.EXPECT().ListHeldSlotsInRange(ctx, gomock.Any(), gomock.Any()).Return([]sqlc.ListHeldSlotsInRangeRow{
		{BookingDate: pgconv.DateToPgtype(2025, time.March, 10), SlotTime: builder.PgTime("09:00")},
		{BookingDate: pgconv.DateToPgtype(2025, time.March, 10), SlotTime: builder.PgTime("11:00")},
		{BookingDate: pgconv.DateToPgtype(2025, time.March, 11), SlotTime: builder.PgTime("16:00")},
	}, nil)

	held, err := store.HeldSlotsInRange(ctx, 7, mon, availability.MustParseDate("2025-03-16"))
	require.NoError(t, err)
	assert.Len(t, held, 2)
	assert.Len(t, held[mon], 2)
	assert.Equal(t, []availability.TimeOfDay{availability.MustParseTimeOfDay("16:00")}, held[tue])
}
