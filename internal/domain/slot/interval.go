package slot

import "time"

// Interval is the half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start time.Time, d time.Duration) Interval {
	return Interval{Start: start, End: start.Add(d)}
}

func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

func (iv Interval) IsEmpty() bool {
	return !iv.Start.Before(iv.End)
}

// Overlaps reports whether iv and other share any instant.
// Touching intervals (iv.End == other.Start) do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && iv.End.After(other.Start)
}

func (iv Interval) Contains(other Interval) bool {
	return !other.Start.Before(iv.Start) && !other.End.After(iv.End)
}

// OverlapsAny is the single conflict predicate shared by slot generation and
// reservation commit.
func OverlapsAny(candidate Interval, existing []Interval) bool {
	for _, e := range existing {
		if candidate.Overlaps(e) {
			return true
		}
	}
	return false
}

// Days returns the UTC calendar days touched by iv in ascending order.
func Days(iv Interval) []time.Time {
	if iv.IsEmpty() {
		return nil
	}
	first := truncateDay(iv.Start)
	last := truncateDay(iv.End.Add(-time.Nanosecond))

	var days []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
