//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"fleet-booking/internal/infra/pgquery"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestCar(t *testing.T, db pgquery.DBTX, model, licensePlate string) int64 {
	t.Helper()

	var carID int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO cars (model, license_plate) VALUES ($1, $2) RETURNING car_id",
		model, licensePlate).Scan(&carID)
	require.NoError(t, err)
	return carID
}

func CreateTestReservation(t *testing.T, db pgquery.DBTX, carID int64, userID string, start time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO reservations (reservation_id, car_id, user_id, reservation_date) VALUES ($1, $2, $3, $4)",
		id, carID, userID, start)
	require.NoError(t, err)
	return id
}

func CountReservations(t *testing.T, db pgquery.DBTX, carID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM reservations WHERE car_id = $1", carID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountCars(t *testing.T, db pgquery.DBTX) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM cars").Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and restarts identities
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
