package pgquery

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const getCarByID = `
SELECT car_id, model, license_plate
FROM cars
WHERE car_id = $1
`

func (q *Queries) GetCarByID(ctx context.Context, db DBTX, carID int64) (Car, error) {
	row := db.QueryRow(ctx, getCarByID, carID)
	var c Car
	err := row.Scan(&c.CarID, &c.Model, &c.LicensePlate)
	return c, err
}

const getCarByLicensePlate = `
SELECT car_id, model, license_plate
FROM cars
WHERE license_plate = $1
`

func (q *Queries) GetCarByLicensePlate(ctx context.Context, db DBTX, licensePlate string) (Car, error) {
	row := db.QueryRow(ctx, getCarByLicensePlate, licensePlate)
	var c Car
	err := row.Scan(&c.CarID, &c.Model, &c.LicensePlate)
	return c, err
}

const listCars = `
SELECT car_id, model, license_plate
FROM cars
ORDER BY car_id
`

func (q *Queries) ListCars(ctx context.Context, db DBTX) ([]Car, error) {
	rows, err := db.Query(ctx, listCars)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Car, error) {
		var c Car
		err := row.Scan(&c.CarID, &c.Model, &c.LicensePlate)
		return c, err
	})
}

// insertCarIfAbsent returns no row when another transaction owns the plate.
const insertCarIfAbsent = `
INSERT INTO cars (model, license_plate)
VALUES ($1, $2)
ON CONFLICT (license_plate) DO NOTHING
RETURNING car_id
`

type InsertCarParams struct {
	Model        string
	LicensePlate string
}

func (q *Queries) InsertCarIfAbsent(ctx context.Context, db DBTX, arg InsertCarParams) (int64, error) {
	row := db.QueryRow(ctx, insertCarIfAbsent, arg.Model, arg.LicensePlate)
	var carID int64
	err := row.Scan(&carID)
	return carID, err
}
