//go:build unit

package slot_test

import (
	"math/rand"
	"testing"
	"time"

	"fleet-booking/internal/domain/slot"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

var day = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func clocks(slots []slot.Interval) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, slot.FormatClock(s.Start)+"-"+slot.FormatClock(s.End))
	}
	return out
}

func TestGenerate(t *testing.T) {
	two := 2 * time.Hour

	tests := []struct {
		name     string
		window   slot.Window
		reserved []slot.Interval
		want     []string
	}{
		{
			name:   "empty day yields full grid",
			window: slot.DefaultWindow,
			want:   []string{"08:00-10:00", "10:00-12:00", "12:00-14:00", "14:00-16:00", "16:00-18:00"},
		},
		{
			name:     "reservation removes its slot only",
			window:   slot.DefaultWindow,
			reserved: []slot.Interval{slot.NewInterval(at(10, 0), two)},
			want:     []string{"08:00-10:00", "12:00-14:00", "14:00-16:00", "16:00-18:00"},
		},
		{
			name:     "off grid reservation blocks both neighbours",
			window:   slot.DefaultWindow,
			reserved: []slot.Interval{slot.NewInterval(at(9, 13), two)},
			want:     []string{"12:00-14:00", "14:00-16:00", "16:00-18:00"},
		},
		{
			name:     "reservation before opening still participates",
			window:   slot.DefaultWindow,
			reserved: []slot.Interval{slot.NewInterval(at(7, 0), two)},
			want:     []string{"10:00-12:00", "12:00-14:00", "14:00-16:00", "16:00-18:00"},
		},
		{
			name:     "reservation ending at opening does not block",
			window:   slot.DefaultWindow,
			reserved: []slot.Interval{slot.NewInterval(at(6, 0), two)},
			want:     []string{"08:00-10:00", "10:00-12:00", "12:00-14:00", "14:00-16:00", "16:00-18:00"},
		},
		{
			name:     "reservation past closing still participates",
			window:   slot.DefaultWindow,
			reserved: []slot.Interval{slot.NewInterval(at(17, 0), two)},
			want:     []string{"08:00-10:00", "10:00-12:00", "12:00-14:00", "14:00-16:00"},
		},
		{
			name:   "window shorter than one slot",
			window: slot.Window{Opening: 8 * time.Hour, Closing: 9 * time.Hour, SlotDuration: two},
			want:   []string{},
		},
		{
			name:   "trailing remainder is dropped",
			window: slot.Window{Opening: 8 * time.Hour, Closing: 13 * time.Hour, SlotDuration: two},
			want:   []string{"08:00-10:00", "10:00-12:00"},
		},
		{
			name:   "non-positive duration",
			window: slot.Window{Opening: 8 * time.Hour, Closing: 18 * time.Hour},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clocks(slot.Generate(tt.window, day, tt.reserved))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Generate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	reserved := []slot.Interval{slot.NewInterval(at(12, 0), 2*time.Hour)}
	first := slot.Generate(slot.DefaultWindow, day, reserved)
	second := slot.Generate(slot.DefaultWindow, day, reserved)
	assert.Equal(t, first, second)
}

func TestGenerate_Properties(t *testing.T) {
	w := slot.DefaultWindow
	bounds := w.Bounds(day)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		var reserved []slot.Interval
		for cur := bounds.Start.Add(-w.SlotDuration); cur.Before(bounds.End); {
			cur = cur.Add(time.Duration(rng.Intn(240)) * time.Minute)
			if !cur.Before(bounds.End) {
				break
			}
			reserved = append(reserved, w.Slot(cur))
			cur = cur.Add(w.SlotDuration)
		}

		slots := slot.Generate(w, day, reserved)
		for j, s := range slots {
			assert.True(t, bounds.Contains(s), "slot %v outside window", s)
			assert.False(t, slot.OverlapsAny(s, reserved), "slot %v overlaps a reservation", s)
			if j > 0 {
				assert.False(t, s.Overlaps(slots[j-1]), "slots %d and %d overlap", j-1, j)
				assert.True(t, slots[j-1].Start.Before(s.Start), "slots out of order")
			}
		}
	}
}
