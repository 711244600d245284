package slot

import "time"

// Generate returns the free slots of day in ascending order. Reserved intervals
// may be off-grid and may extend past the window; they are never clipped.
func Generate(w Window, day time.Time, reserved []Interval) []Interval {
	if w.SlotDuration <= 0 {
		return nil
	}
	bounds := w.Bounds(day)

	var slots []Interval
	if w.Closing > w.Opening {
		slots = make([]Interval, 0, int((w.Closing-w.Opening)/w.SlotDuration))
	}
	for cur := bounds.Start; !cur.Add(w.SlotDuration).After(bounds.End); cur = cur.Add(w.SlotDuration) {
		candidate := NewInterval(cur, w.SlotDuration)
		if OverlapsAny(candidate, reserved) {
			continue
		}
		slots = append(slots, candidate)
	}
	return slots
}
