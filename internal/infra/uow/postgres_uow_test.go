//go:build unit

package uow

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := 0; attempt < 3; attempt++ {
		floor := time.Duration(1<<attempt) * base
		got := calculateBackoff(attempt, base)
		assert.GreaterOrEqual(t, got, floor)
		assert.Less(t, got, floor+floor/5+time.Nanosecond)
	}
}

func TestShouldRetry(t *testing.T) {
	serialization := &pgconn.PgError{Code: "40001"}
	deadlock := &pgconn.PgError{Code: "40P01"}
	exclusion := &pgconn.PgError{Code: "23P01"}

	assert.True(t, shouldRetry(serialization, 0, 3))
	assert.True(t, shouldRetry(deadlock, 2, 3))
	assert.False(t, shouldRetry(deadlock, 3, 3))
	assert.False(t, shouldRetry(exclusion, 0, 3))
	assert.False(t, shouldRetry(errors.New("boom"), 0, 3))
}
