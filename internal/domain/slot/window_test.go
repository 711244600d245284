//go:build unit

package slot_test

import (
	"testing"
	"time"

	"fleet-booking/internal/domain/slot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d, err := slot.ParseDay("2024-06-01")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), d)
	})

	for _, in := range []string{"2024-13-40", "2024-02-30", "06/01/2024", "", "2024-6-1", "tomorrow"} {
		t.Run("invalid "+in, func(t *testing.T) {
			_, err := slot.ParseDay(in)
			assert.ErrorIs(t, err, slot.ErrInvalidDay)
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"08:00", 8 * time.Hour},
		{"10:00", 10 * time.Hour},
		{"09:13", 9*time.Hour + 13*time.Minute},
		{"23:59", 23*time.Hour + 59*time.Minute},
	}
	for _, tt := range tests {
		got, err := slot.ParseClock(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, in := range []string{"24:00", "10:60", "10", "ten", "", "10:00:00"} {
		_, err := slot.ParseClock(in)
		assert.ErrorIs(t, err, slot.ErrInvalidClock, in)
	}
}

func TestAt(t *testing.T) {
	ts, err := slot.At("2024-06-01", "10:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC), ts)
	assert.Equal(t, "10:00", slot.FormatClock(ts))
	assert.Equal(t, "2024-06-01", slot.FormatDay(ts))

	_, err = slot.At("2024-13-40", "10:00")
	assert.ErrorIs(t, err, slot.ErrInvalidDay)

	_, err = slot.At("2024-06-01", "25:00")
	assert.ErrorIs(t, err, slot.ErrInvalidClock)
}

func TestWindow_Scopes(t *testing.T) {
	w := slot.DefaultWindow
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, slot.Interval{Start: at(8, 0), End: at(18, 0)}, w.Bounds(day))
	assert.Equal(t, slot.Interval{Start: at(6, 0), End: at(18, 0)}, w.Scope(day))
	assert.Equal(t, slot.Interval{Start: at(8, 0), End: at(12, 0)}, w.ConflictScope(at(10, 0)))
}

func TestWindow_Validate(t *testing.T) {
	require.NoError(t, slot.DefaultWindow.Validate())

	bad := []slot.Window{
		{Opening: 8 * time.Hour, Closing: 18 * time.Hour},
		{Opening: 18 * time.Hour, Closing: 8 * time.Hour, SlotDuration: time.Hour},
		{Opening: 0, Closing: 25 * time.Hour, SlotDuration: time.Hour},
	}
	for _, w := range bad {
		assert.ErrorIs(t, w.Validate(), slot.ErrInvalidWindow)
	}
}
