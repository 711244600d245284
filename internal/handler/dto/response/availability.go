package response

import (
	"fleet-booking/internal/domain/slot"
)

type SlotResponse struct {
	StartTime string `json:"start_time" example:"08:00"`
	EndTime   string `json:"end_time" example:"10:00"`
}

func FromIntervals(slots []slot.Interval) []SlotResponse {
	out := make([]SlotResponse, len(slots))
	for i, s := range slots {
		out[i] = SlotResponse{
			StartTime: slot.FormatClock(s.Start),
			EndTime:   slot.FormatClock(s.End),
		}
	}
	return out
}
