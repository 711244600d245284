package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// PostgreSQL SQLSTATE codes the repositories react to.
const (
	CodeUniqueViolation      = "23505"
	CodeForeignKeyViolation  = "23503"
	CodeExclusionViolation   = "23P01"
	CodeSerializationFailure = "40001"
	CodeDeadlockDetected     = "40P01"
)

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func UUIDFromPgtype(pu pgtype.UUID) uuid.UUID {
	if !pu.Valid {
		return uuid.Nil
	}
	return uuid.UUID(pu.Bytes)
}

// TimestampToPgtype drops the zone and keeps the wall clock, matching
// a `timestamp without time zone` column.
func TimestampToPgtype(t time.Time) pgtype.Timestamp {
	return pgtype.Timestamp{
		Time:  time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC),
		Valid: true,
	}
}

func TimestampFromPgtype(pt pgtype.Timestamp) time.Time {
	if !pt.Valid {
		return time.Time{}
	}
	return pt.Time.UTC()
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

// ErrorCode returns the SQLSTATE of a PostgreSQL error, or "" for anything else.
func ErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func IsUniqueViolation(err error) bool {
	return ErrorCode(err) == CodeUniqueViolation
}

func IsExclusionViolation(err error) bool {
	return ErrorCode(err) == CodeExclusionViolation
}

func IsForeignKeyViolation(err error) bool {
	return ErrorCode(err) == CodeForeignKeyViolation
}

func IsRetryable(err error) bool {
	switch ErrorCode(err) {
	case CodeSerializationFailure, CodeDeadlockDetected:
		return true
	default:
		return false
	}
}
