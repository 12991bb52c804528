//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"physio-scheduler/internal/domain/booking"
	"physio-scheduler/internal/infra"
	"physio-scheduler/internal/infra/repository"
	sqlc "physio-scheduler/internal/infra/sqlc/generated"
	"physio-scheduler/tests/common/builder"
	repositorymock "physio-scheduler/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

// =============================================================================
// Create Booking Tests
// =============================================================================

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, *booking.Booking, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
		expectConstr  string
	}{
		{
			name: "success: booking created",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) (uuid.UUID, error) {
						assert.Equal(t, b.Reference().String(), arg.Reference)
						assert.Equal(t, "pending", arg.Status)
						assert.Equal(t, int64(7), arg.ProviderID)
						return b.ID(), nil
					})
			},
		},
		{
			name: "error: active slot already held",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "bookings_active_slot_uniq"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(uuid.Nil, pgErr)
			},
			expectedError: true,
			expectKind:    infra.KindConflict,
			expectConstr:  "bookings_active_slot_uniq",
		},
		{
			name: "error: reference collision",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "bookings_reference_key"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(uuid.Nil, pgErr)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
			expectConstr:  "bookings_reference_key",
		},
		{
			name: "error: unknown provider",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "bookings_provider_id_fkey"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(uuid.Nil, pgErr)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name: "error: database failure",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(uuid.Nil, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockTx := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockTx)

			b := builder.NewBookingBuilder().WithStatus(booking.StatusPending, booking.PaymentUnpaid).BuildDomain()
			tc.setupMock(mockQueries, b, mockTx)

			id, err := repo.Create(ctx, mockTx, b)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				if tc.expectConstr != "" {
					var repoErr infra.RepositoryError
					require.True(t, errors.As(err, &repoErr))
					assert.Equal(t, tc.expectConstr, repoErr.Constraint)
				}
				assert.Equal(t, uuid.Nil, id)
			} else {
				require.NoError(t, err)
				assert.Equal(t, b.ID(), id)
			}
		})
	}
}

// =============================================================================
// FindByReferenceForUpdate Tests
// =============================================================================

func TestBookingRepository_FindByReferenceForUpdate(t *testing.T) {
	ctx := context.Background()
	b := builder.NewBookingBuilder()
	ref := b.Reference

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking locked and decoded",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries) {
				mock.EXPECT().GetBookingByReferenceForUpdate(ctx, gomock.Any(), ref.String()).Return(b.BuildInfra(), nil)
			},
		},
		{
			name: "error: booking not found",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries) {
				mock.EXPECT().GetBookingByReferenceForUpdate(ctx, gomock.Any(), ref.String()).Return(sqlc.Bookings{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: corrupt status in row",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries) {
				row := b.BuildInfra()
				row.Status = "archived"
				mock.EXPECT().GetBookingByReferenceForUpdate(ctx, gomock.Any(), ref.String()).Return(row, nil)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: database failure",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries) {
				mock.EXPECT().GetBookingByReferenceForUpdate(ctx, gomock.Any(), ref.String()).Return(sqlc.Bookings{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockTx := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockTx)
			tc.setupMock(mockQueries)

			got, err := repo.FindByReferenceForUpdate(ctx, mockTx, ref)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, b.ID, got.ID())
				assert.Equal(t, booking.StatusPending, got.Status())
				assert.Equal(t, "10:00", got.Slot().String())
				assert.Equal(t, "2025-03-10", got.Date().String())
			}
		})
	}
}

// =============================================================================
// UpdateStatus / AttachCheckout Tests
// =============================================================================

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		affected      int64
		dbErr         error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: guarded update applied", affected: 1},
		{name: "error: status changed concurrently", affected: 0, expectedError: true, expectKind: infra.KindConflict},
		{name: "error: database failure", dbErr: errDBConnectionLost, expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockTx := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockTx)

			b := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed, booking.PaymentCompleted).BuildDomain()
			mockQueries.EXPECT().UpdateBookingStatus(ctx, mockTx, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error) {
					assert.Equal(t, "pending", arg.ExpectedStatus)
					assert.Equal(t, "confirmed", arg.NewStatus)
					assert.Equal(t, "completed", arg.PaymentStatus)
					return tc.affected, tc.dbErr
				})

			err := repo.UpdateStatus(ctx, mockTx, b, booking.StatusPending)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingRepository_AttachCheckout(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		affected      int64
		dbErr         error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: session stored", affected: 1},
		{name: "error: booking left pending state", affected: 0, expectedError: true, expectKind: infra.KindConflict},
		{name: "error: database failure", dbErr: errDBConnectionLost, expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockTx := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockTx)

			b := builder.NewBookingBuilder().BuildDomain()
			mockQueries.EXPECT().AttachBookingCheckout(ctx, mockTx, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.AttachBookingCheckoutParams) (int64, error) {
					assert.Equal(t, b.ID(), arg.ID)
					assert.Equal(t, "cs_test_123", arg.PaymentSessionID.String)
					return tc.affected, tc.dbErr
				})

			err := repo.AttachCheckout(ctx, mockTx, b)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("QueryRow should not be called in repository tests")
}
