package pgquery

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const listReservationsBetween = `
SELECT reservation_id, car_id, user_id, reservation_date, created_at
FROM reservations
WHERE car_id = $1
  AND reservation_date >= $2
  AND reservation_date < $3
ORDER BY reservation_date
`

type ListReservationsBetweenParams struct {
	CarID int64
	From  pgtype.Timestamp
	To    pgtype.Timestamp
}

func (q *Queries) ListReservationsBetween(ctx context.Context, db DBTX, arg ListReservationsBetweenParams) ([]Reservation, error) {
	rows, err := db.Query(ctx, listReservationsBetween, arg.CarID, arg.From, arg.To)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Reservation, error) {
		var r Reservation
		err := row.Scan(&r.ReservationID, &r.CarID, &r.UserID, &r.ReservationDate, &r.CreatedAt)
		return r, err
	})
}

const createReservation = `
INSERT INTO reservations (reservation_id, car_id, user_id, reservation_date, created_at)
VALUES ($1, $2, $3, $4, $5)
`

type CreateReservationParams struct {
	ReservationID   pgtype.UUID
	CarID           int64
	UserID          string
	ReservationDate pgtype.Timestamp
	CreatedAt       pgtype.Timestamptz
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) error {
	_, err := db.Exec(ctx, createReservation,
		arg.ReservationID,
		arg.CarID,
		arg.UserID,
		arg.ReservationDate,
		arg.CreatedAt,
	)
	return err
}

// lockCarDay holds a transaction-scoped advisory lock; it is released on commit or rollback.
const lockCarDay = `SELECT pg_advisory_xact_lock($1)`

func (q *Queries) LockCarDay(ctx context.Context, db DBTX, key int64) error {
	_, err := db.Exec(ctx, lockCarDay, key)
	return err
}
