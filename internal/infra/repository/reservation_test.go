//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fleet-booking/internal/domain/reservation"
	"fleet-booking/internal/infra"
	"fleet-booking/internal/infra/pgquery"
	"fleet-booking/internal/infra/repository"
	"fleet-booking/internal/pkg/pgconv"
	repositorymock "fleet-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		returnErr  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: reservation created"},
		{
			name:       "error: exclusion constraint maps to conflict",
			returnErr:  &pgconn.PgError{Code: "23P01", Message: "conflicting key value violates exclusion constraint"},
			expectKind: infra.KindConflict,
		},
		{
			name:       "error: unique violation maps to conflict",
			returnErr:  &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectKind: infra.KindConflict,
		},
		{
			name:       "error: missing car",
			returnErr:  &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name:       "error: database error occurs",
			returnErr:  errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			res, err := reservation.NewReservation(7, "user-1", start, start.Add(-time.Hour))
			require.NoError(t, err)

			mockQueries.EXPECT().CreateReservation(ctx, mockDB, pgquery.CreateReservationParams{
				ReservationID:   pgconv.UUIDToPgtype(res.ID()),
				CarID:           7,
				UserID:          "user-1",
				ReservationDate: pgconv.TimestampToPgtype(start),
				CreatedAt:       pgconv.TimeToPgtype(res.CreatedAt()),
			}).Return(tc.returnErr)

			actualErr := repo.Create(ctx, res)

			if tc.expectKind != "" {
				require.Error(t, actualErr)
				assert.True(t, infra.IsKind(actualErr, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualErr)
				return
			}
			assert.NoError(t, actualErr)
		})
	}
}

func TestReservationRepository_ListBetween(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockReservationQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewReservationRepository(mockQueries, mockDB)

	from := time.Date(2024, 6, 1, 6, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC)
	id := uuid.New()

	mockQueries.EXPECT().ListReservationsBetween(ctx, mockDB, pgquery.ListReservationsBetweenParams{
		CarID: 7,
		From:  pgconv.TimestampToPgtype(from),
		To:    pgconv.TimestampToPgtype(to),
	}).Return([]pgquery.Reservation{{
		ReservationID:   pgconv.UUIDToPgtype(id),
		CarID:           7,
		UserID:          "user-1",
		ReservationDate: pgconv.TimestampToPgtype(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)),
		CreatedAt:       pgconv.TimeToPgtype(from),
	}}, nil)

	got, err := repo.ListBetween(ctx, 7, from, to)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, id, got[0].ID())
	assert.Equal(t, time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC), got[0].Start())

	mockQueries.EXPECT().ListReservationsBetween(ctx, mockDB, gomock.Any()).Return(nil, errors.New("timeout"))
	_, err = repo.ListBetween(ctx, 7, from, to)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestReservationRepository_LockDay(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockReservationQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewReservationRepository(mockQueries, mockDB)

	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	mockQueries.EXPECT().LockCarDay(ctx, mockDB, repository.DayLockKey(7, day)).Return(nil)

	require.NoError(t, repo.LockDay(ctx, 7, day))
}

func TestDayLockKey(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	next := day.AddDate(0, 0, 1)

	assert.NotEqual(t, repository.DayLockKey(7, day), repository.DayLockKey(7, next))
	assert.NotEqual(t, repository.DayLockKey(7, day), repository.DayLockKey(8, day))
	assert.Equal(t, repository.DayLockKey(7, day), repository.DayLockKey(7, day.Add(23*time.Hour)))
}
