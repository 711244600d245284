//go:build unit

package pgconv

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestTimestampToPgtype(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	in := time.Date(2024, 6, 1, 10, 0, 0, 0, tokyo)

	got := TimestampToPgtype(in)

	assert.True(t, got.Valid)
	assert.Equal(t, time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC), got.Time)
	assert.Equal(t, got.Time, TimestampFromPgtype(got))
	assert.True(t, TimestampFromPgtype(pgtype.Timestamp{}).IsZero())
}

func TestUUIDConversion(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, id, UUIDFromPgtype(UUIDToPgtype(id)))
	assert.Equal(t, uuid.Nil, UUIDFromPgtype(pgtype.UUID{}))
}

func TestErrorClassification(t *testing.T) {
	wrapped := func(code string) error {
		return fmt.Errorf("insert: %w", &pgconn.PgError{Code: code})
	}

	assert.True(t, IsUniqueViolation(wrapped(CodeUniqueViolation)))
	assert.True(t, IsExclusionViolation(wrapped(CodeExclusionViolation)))
	assert.True(t, IsForeignKeyViolation(wrapped(CodeForeignKeyViolation)))
	assert.True(t, IsRetryable(wrapped(CodeSerializationFailure)))
	assert.True(t, IsRetryable(wrapped(CodeDeadlockDetected)))
	assert.False(t, IsRetryable(wrapped(CodeUniqueViolation)))
	assert.Equal(t, "", ErrorCode(errors.New("plain")))

	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(fmt.Errorf("scan: %w", sql.ErrNoRows)))
	assert.False(t, IsNoRows(errors.New("other")))
}
