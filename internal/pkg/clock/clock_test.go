//go:build unit

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_IsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, NewRealClock().Now().Location())
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	c := NewFixedClock(at)

	assert.Equal(t, at, c.Now())
	c.Add(90 * time.Minute)
	assert.Equal(t, at.Add(90*time.Minute), c.Now())
	c.Set(at)
	assert.Equal(t, at, c.Now())
}
