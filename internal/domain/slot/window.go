package slot

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	DayLayout   = "2006-01-02"
	ClockLayout = "15:04"
)

var (
	ErrInvalidDay    = errors.New("day must be formatted as YYYY-MM-DD")
	ErrInvalidClock  = errors.New("time must be formatted as HH:MM")
	ErrInvalidWindow = errors.New("invalid operating window")
)

// Window is the daily operating window. Opening and Closing are offsets from midnight.
type Window struct {
	Opening      time.Duration
	Closing      time.Duration
	SlotDuration time.Duration
}

var DefaultWindow = Window{
	Opening:      8 * time.Hour,
	Closing:      18 * time.Hour,
	SlotDuration: 2 * time.Hour,
}

func (w Window) Validate() error {
	if w.SlotDuration <= 0 {
		return fmt.Errorf("%w: slot duration must be positive", ErrInvalidWindow)
	}
	if w.Opening < 0 || w.Closing > 24*time.Hour || w.Closing < w.Opening {
		return fmt.Errorf("%w: opening %s, closing %s", ErrInvalidWindow, w.Opening, w.Closing)
	}
	return nil
}

// Bounds returns [day@opening, day@closing).
func (w Window) Bounds(day time.Time) Interval {
	day = truncateDay(day)
	return Interval{Start: day.Add(w.Opening), End: day.Add(w.Closing)}
}

// Scope is the range of reservation start times that can overlap any slot of day.
func (w Window) Scope(day time.Time) Interval {
	b := w.Bounds(day)
	return Interval{Start: b.Start.Add(-w.SlotDuration), End: b.End}
}

// ConflictScope is the range of reservation start times that can overlap a
// reservation starting at start.
func (w Window) ConflictScope(start time.Time) Interval {
	return Interval{Start: start.Add(-w.SlotDuration), End: start.Add(w.SlotDuration)}
}

func (w Window) Slot(start time.Time) Interval {
	return NewInterval(start, w.SlotDuration)
}

// ParseDay parses YYYY-MM-DD into midnight UTC of that day.
func ParseDay(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DayLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}
	return d, nil
}

// ParseClock parses HH:MM into an offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// At resolves a day and HH:MM string to an absolute UTC timestamp.
func At(day string, clock string) (time.Time, error) {
	d, err := ParseDay(day)
	if err != nil {
		return time.Time{}, err
	}
	offset, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return d.Add(offset), nil
}

func FormatClock(t time.Time) string {
	return t.UTC().Format(ClockLayout)
}

func FormatDay(t time.Time) string {
	return t.UTC().Format(DayLayout)
}
