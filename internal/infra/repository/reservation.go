package repository

import (
	"context"
	"time"

	"fleet-booking/internal/domain/reservation"
	"fleet-booking/internal/infra"
	"fleet-booking/internal/infra/pgquery"
	"fleet-booking/internal/pkg/pgconv"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/repository/reservation.go -package=repositorymock

// dayBits is the width of the day component of an advisory lock key.
const dayBits = 20

type ReservationQueries interface {
	ListReservationsBetween(ctx context.Context, db pgquery.DBTX, arg pgquery.ListReservationsBetweenParams) ([]pgquery.Reservation, error)
	CreateReservation(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateReservationParams) error
	LockCarDay(ctx context.Context, db pgquery.DBTX, key int64) error
}

type ReservationRepository struct {
	queries ReservationQueries
	db      pgquery.DBTX
}

func NewReservationRepository(queries ReservationQueries, db pgquery.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) ListBetween(ctx context.Context, resourceID int64, from, to time.Time) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListReservationsBetween(ctx, r.db, pgquery.ListReservationsBetweenParams{
		CarID: resourceID,
		From:  pgconv.TimestampToPgtype(from),
		To:    pgconv.TimestampToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	result := make([]*reservation.Reservation, len(rows))
	for i, row := range rows {
		result[i] = reservation.ReconstructReservation(
			pgconv.UUIDFromPgtype(row.ReservationID),
			row.CarID,
			row.UserID,
			pgconv.TimestampFromPgtype(row.ReservationDate),
			pgconv.TimeFromPgtype(row.CreatedAt),
		)
	}
	return result, nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	err := r.queries.CreateReservation(ctx, r.db, pgquery.CreateReservationParams{
		ReservationID:   pgconv.UUIDToPgtype(res.ID()),
		CarID:           res.ResourceID(),
		UserID:          res.PrincipalID(),
		ReservationDate: pgconv.TimestampToPgtype(res.Start()),
		CreatedAt:       pgconv.TimeToPgtype(res.CreatedAt()),
	})
	if err != nil {
		switch {
		case pgconv.IsExclusionViolation(err), pgconv.IsUniqueViolation(err):
			return infra.WrapRepoErr("reservation overlaps an existing one", err, infra.KindConflict)
		case pgconv.IsForeignKeyViolation(err):
			return infra.WrapRepoErr("car does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

// LockDay takes the transaction-scoped advisory lock of one car's calendar day.
func (r *ReservationRepository) LockDay(ctx context.Context, resourceID int64, day time.Time) error {
	if err := r.queries.LockCarDay(ctx, r.db, DayLockKey(resourceID, day)); err != nil {
		return infra.WrapRepoErr("failed to lock car day", err)
	}
	return nil
}

// DayLockKey packs a car id and a day number into one advisory lock key.
func DayLockKey(resourceID int64, day time.Time) int64 {
	days := day.UTC().Unix() / int64(24*time.Hour/time.Second)
	return resourceID<<dayBits | (days & (1<<dayBits - 1))
}
