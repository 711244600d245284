package reservation

import (
	"errors"
	"strings"
	"time"

	"fleet-booking/internal/domain/slot"

	"github.com/google/uuid"
)

var (
	ErrEmptyPrincipal     = errors.New("principal id cannot be empty")
	ErrUnassignedResource = errors.New("reservation requires a persisted resource")
	ErrZeroStart          = errors.New("reservation start cannot be zero")
)

// Reservation is exclusive occupancy of one resource for [start, start+duration).
// The duration is the operating window's slot duration and is not stored.
type Reservation struct {
	id          uuid.UUID
	resourceID  int64
	principalID string
	start       time.Time
	createdAt   time.Time
}

func NewReservation(resourceID int64, principalID string, start, now time.Time) (*Reservation, error) {
	principalID = strings.TrimSpace(principalID)
	if principalID == "" {
		return nil, ErrEmptyPrincipal
	}
	if resourceID <= 0 {
		return nil, ErrUnassignedResource
	}
	if start.IsZero() {
		return nil, ErrZeroStart
	}

	return &Reservation{
		id:          uuid.New(),
		resourceID:  resourceID,
		principalID: principalID,
		start:       start.UTC(),
		createdAt:   now.UTC(),
	}, nil
}

func ReconstructReservation(id uuid.UUID, resourceID int64, principalID string, start, createdAt time.Time) *Reservation {
	return &Reservation{
		id:          id,
		resourceID:  resourceID,
		principalID: principalID,
		start:       start.UTC(),
		createdAt:   createdAt,
	}
}

func (r *Reservation) Interval(d time.Duration) slot.Interval {
	return slot.NewInterval(r.start, d)
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) ResourceID() int64    { return r.resourceID }
func (r *Reservation) PrincipalID() string  { return r.principalID }
func (r *Reservation) Start() time.Time     { return r.start }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }

// Intervals maps reservations to their occupied intervals.
func Intervals(rs []*Reservation, d time.Duration) []slot.Interval {
	out := make([]slot.Interval, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Interval(d))
	}
	return out
}
