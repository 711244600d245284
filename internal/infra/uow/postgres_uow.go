package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"fleet-booking/internal/infra/pgquery"
	"fleet-booking/internal/infra/repository"
	"fleet-booking/internal/pkg/errs"
	"fleet-booking/internal/pkg/pgconv"
	"fleet-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *pgquery.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *pgquery.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted is enough: writers of one car day are serialized by advisory
// locks, and each statement after the lock sees every committed reservation.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.ReadTx) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := u.attempt(ctx, options, fn)
		if err == nil {
			return nil
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && pgconv.IsRetryable(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, shared.ErrMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return shared.ErrMaxRetriesExceeded
}

// attempt runs fn once. Rollback is deferred so a panic in fn still releases
// the connection and the advisory locks.
func (u *PostgresUoW) attempt(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) (err error) {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, shared.ErrTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(context.WithoutCancel(ctx)); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "error", rollbackErr.Error())
			}
		}
	}()

	if err = fn(ctx, newPgTx(u.q, pgxTx)); err != nil {
		return err
	}

	if err = pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, shared.ErrTransactionCommit)
	}
	return nil
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.ReadTx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, shared.ErrTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(context.WithoutCancel(ctx)); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgReadTx{tx: newPgTx(u.q, pgxTx)}); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return pgconv.IsRetryable(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

type pgTx struct {
	dbtx pgquery.DBTX
	q    *pgquery.Queries

	// Lazy-initialized repositories
	resourceRepo    *repository.ResourceRepository
	reservationRepo *repository.ReservationRepository
}

func newPgTx(q *pgquery.Queries, dbtx pgquery.DBTX) *pgTx {
	return &pgTx{dbtx: dbtx, q: q}
}

func (t *pgTx) resources() *repository.ResourceRepository {
	if t.resourceRepo == nil {
		t.resourceRepo = repository.NewResourceRepository(t.q, t.dbtx)
	}
	return t.resourceRepo
}

func (t *pgTx) reservations() *repository.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.q, t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Resources() shared.ResourceRegistry {
	return t.resources()
}

func (t *pgTx) Reservations() shared.ReservationStore {
	return t.reservations()
}

func (t *pgTx) LockResourceDay(ctx context.Context, resourceID int64, day time.Time) error {
	return t.reservations().LockDay(ctx, resourceID, day)
}

// pgReadTx narrows pgTx to the read-only view.
type pgReadTx struct {
	tx *pgTx
}

func (t pgReadTx) Resources() shared.ResourceReader {
	return t.tx.resources()
}

func (t pgReadTx) Reservations() shared.ReservationReader {
	return t.tx.reservations()
}
