//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"physio-scheduler/internal/infra"
	"physio-scheduler/internal/infra/readstore"
	sqlc "physio-scheduler/internal/infra/sqlc/generated"
	"physio-scheduler/internal/usecase/shared"
	readstoremock "physio-scheduler/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProviderReadStore_ProviderByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		row           sqlc.Providers
		dbErr         error
		expected      *shared.ProviderSnapshot
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name:     "success: provider found",
			row:      sqlc.Providers{ID: 7, DisplayName: "Dr. Achieng Otieno", PriceCents: 350000, IsActive: true},
			expected: &shared.ProviderSnapshot{ID: 7, DisplayName: "Dr. Achieng Otieno", PriceCents: 350000, IsActive: true},
		},
		{
			name:          "error: provider not found",
			dbErr:         pgx.ErrNoRows,
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name:          "error: database error",
			dbErr:         errDBConnectionLost,
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockProviderReadQueries(ctrl)
			store := readstore.NewProviderReadStore(mockQueries, &mockDBTX{})
			mockQueries.EXPECT().GetProvider(ctx, gomock.Any(), int64(7)).Return(tc.row, tc.dbErr)

			got, err := store.ProviderByID(ctx, 7)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
