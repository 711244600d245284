package clock

import "time"

// Clock stamps reservation creation times.
type Clock interface {
	Now() time.Time
}

// RealClock reports wall-clock time in UTC, the zone reservations are stored in.
type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock returns the same instant until a test moves it with Set or Add.
// It is not safe for concurrent Set/Add.
type FixedClock struct {
	at time.Time
}

func NewFixedClock(at time.Time) *FixedClock {
	return &FixedClock{at: at}
}

func (c *FixedClock) Now() time.Time { return c.at }

func (c *FixedClock) Set(at time.Time) { c.at = at }

func (c *FixedClock) Add(d time.Duration) { c.at = c.at.Add(d) }
