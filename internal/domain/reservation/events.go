package reservation

import (
	"time"

	"github.com/google/uuid"
)

const EventConfirmed = "reservation.confirmed"

// ConfirmedEvent is published after a reservation commits.
type ConfirmedEvent struct {
	Type          string    `json:"type"`
	ReservationID uuid.UUID `json:"reservation_id"`
	ResourceID    int64     `json:"car_id"`
	NaturalKey    string    `json:"license_plate"`
	PrincipalID   string    `json:"user_id"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func NewConfirmedEvent(r *Reservation, naturalKey string, d time.Duration, now time.Time) ConfirmedEvent {
	iv := r.Interval(d)
	return ConfirmedEvent{
		Type:          EventConfirmed,
		ReservationID: r.ID(),
		ResourceID:    r.ResourceID(),
		NaturalKey:    naturalKey,
		PrincipalID:   r.PrincipalID(),
		Start:         iv.Start,
		End:           iv.End,
		OccurredAt:    now.UTC(),
	}
}
