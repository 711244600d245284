//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"fleet-booking/internal/infra"

	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	cause := errors.New("connection reset")

	err := infra.WrapRepoErr("insert reservation", cause)

	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	assert.False(t, infra.IsKind(err, infra.KindConflict))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "DB_FAILURE: insert reservation")

	conflict := infra.WrapRepoErr("slot taken", cause, infra.KindConflict)
	assert.True(t, infra.IsKind(conflict, infra.KindConflict))

	notFound := infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	assert.Equal(t, "NOT_FOUND: car not found", notFound.Error())
	assert.False(t, infra.IsKind(cause, infra.KindNotFound))
}
