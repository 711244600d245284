package pgquery

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Car struct {
	CarID        int64
	Model        string
	LicensePlate string
}

type Reservation struct {
	ReservationID   pgtype.UUID
	CarID           int64
	UserID          string
	ReservationDate pgtype.Timestamp
	CreatedAt       pgtype.Timestamptz
}
