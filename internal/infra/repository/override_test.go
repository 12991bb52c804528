//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"physio-scheduler/internal/domain/availability"
	"physio-scheduler/internal/infra"
	"physio-scheduler/internal/infra/repository"
	sqlc "physio-scheduler/internal/infra/sqlc/generated"
	"physio-scheduler/tests/common/builder"
	repositorymock "physio-scheduler/tests/mock/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOverrideRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	sb := builder.NewScheduleBuilder()

	testCases := []struct {
		name          string
		override      availability.DateOverride
		setupMock     func(*repositorymock.MockOverrideWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
		verify        func(*testing.T, availability.DateOverride)
	}{
		{
			name:     "success: closed day stored without window",
			override: sb.BuildOverride("2025-03-12", false, "", ""),
			setupMock: func(mock *repositorymock.MockOverrideWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpsertOverride(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpsertOverrideParams) (sqlc.DateOverrides, error) {
						assert.False(t, arg.IsAvailable)
						assert.False(t, arg.StartTime.Valid)
						assert.False(t, arg.EndTime.Valid)
						return sb.BuildOverrideRow("2025-03-12", false, "", ""), nil
					})
			},
			verify: func(t *testing.T, o availability.DateOverride) {
				assert.False(t, o.IsAvailable)
				assert.Equal(t, "2025-03-12", o.Date.String())
			},
		},
		{
			name:     "success: custom hours stored",
			override: sb.BuildOverride("2025-03-15", true, "10:00", "13:00"),
			setupMock: func(mock *repositorymock.MockOverrideWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpsertOverride(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpsertOverrideParams) (sqlc.DateOverrides, error) {
						assert.True(t, arg.IsAvailable)
						assert.Equal(t, builder.PgTime("10:00"), arg.StartTime)
						assert.Equal(t, builder.PgTime("13:00"), arg.EndTime)
						return sb.BuildOverrideRow("2025-03-15", true, "10:00", "13:00"), nil
					})
			},
			verify: func(t *testing.T, o availability.DateOverride) {
				assert.True(t, o.IsAvailable)
				assert.Equal(t, "10:00", o.Window.Start.String())
				assert.Equal(t, "13:00", o.Window.End.String())
			},
		},
		{
			name:     "error: stored row has inverted window",
			override: sb.BuildOverride("2025-03-15", true, "10:00", "13:00"),
			setupMock: func(mock *repositorymock.MockOverrideWriteQueries, tx sqlc.DBTX) {
				row := sb.BuildOverrideRow("2025-03-15", true, "13:00", "10:00")
				mock.EXPECT().UpsertOverride(ctx, tx, gomock.Any()).Return(row, nil)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name:     "error: unknown provider",
			override: sb.BuildOverride("2025-03-12", false, "", ""),
			setupMock: func(mock *repositorymock.MockOverrideWriteQueries, tx sqlc.DBTX) {
				pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "date_overrides_provider_id_fkey"}
				mock.EXPECT().UpsertOverride(ctx, tx, gomock.Any()).Return(sqlc.DateOverrides{}, pgErr)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockOverrideWriteQueries(ctrl)
			mockTx := &mockDBTX{}
			repo := repository.NewOverrideRepository(mockQueries, mockTx)
			tc.setupMock(mockQueries, mockTx)

			saved, err := repo.Upsert(ctx, mockTx, tc.override, at)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			tc.verify(t, saved)
		})
	}
}

func TestOverrideRepository_Delete(t *testing.T) {
	ctx := context.Background()
	date := availability.MustParseDate("2025-03-12")

	testCases := []struct {
		name          string
		affected      int64
		dbErr         error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: override removed", affected: 1},
		{name: "error: nothing to remove", affected: 0, expectedError: true, expectKind: infra.KindNotFound},
		{name: "error: database failure", dbErr: errDBConnectionLost, expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockOverrideWriteQueries(ctrl)
			mockTx := &mockDBTX{}
			repo := repository.NewOverrideRepository(mockQueries, mockTx)

			mockQueries.EXPECT().DeleteOverride(ctx, mockTx, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.DeleteOverrideParams) (int64, error) {
					assert.Equal(t, int64(7), arg.ProviderID)
					assert.Equal(t, 12, arg.OverrideDate.Time.Day())
					return tc.affected, tc.dbErr
				})

			err := repo.Delete(ctx, mockTx, 7, date)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
