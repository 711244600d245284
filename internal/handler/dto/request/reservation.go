package request

import (
	"fleet-booking/internal/usecase/commands"
)

// ReserveRequest keeps the field names of the original booking API.
type ReserveRequest struct {
	StartTime       string `json:"start_time" binding:"required" example:"10:00"`
	Day             string `json:"day" binding:"required" example:"2024-06-01"`
	CarModel        string `json:"car_model" binding:"required,max=255" example:"Civic"`
	CarLicensePlate string `json:"car_license_plate" binding:"required,max=255" example:"ABC-123"`
}

func (r ReserveRequest) ToInput(principalID string) commands.ReserveInput {
	return commands.ReserveInput{
		Day:         r.Day,
		StartTime:   r.StartTime,
		Label:       r.CarModel,
		NaturalKey:  r.CarLicensePlate,
		PrincipalID: principalID,
	}
}
