package response

import (
	"fleet-booking/internal/domain/slot"
	"fleet-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

const reservationSuccessMessage = "Reservation successful"

type ReserveResponse struct {
	Message         string    `json:"message"`
	ReservationID   uuid.UUID `json:"reservation_id"`
	CarID           int64     `json:"car_id"`
	ReservationTime string    `json:"reservation_time"`
	Day             string    `json:"day"`
}

func FromReserveResult(r *commands.ReserveResult) *ReserveResponse {
	return &ReserveResponse{
		Message:         reservationSuccessMessage,
		ReservationID:   r.ReservationID,
		CarID:           r.ResourceID,
		ReservationTime: slot.FormatClock(r.Start),
		Day:             slot.FormatDay(r.Start),
	}
}
