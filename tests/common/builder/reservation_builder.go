//go:build unit || e2e

package builder

import (
	"time"

	reqdto "fleet-booking/internal/handler/dto/request"
	"fleet-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ReservationID uuid.UUID
	CarID         int64
	Model         string
	LicensePlate  string
	Day           string
	StartTime     string
	SlotDuration  time.Duration
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ReservationID: uuid.New(),
		CarID:         1,
		Model:         "Civic",
		LicensePlate:  "ABC-123",
		Day:           "2024-06-01",
		StartTime:     "10:00",
		SlotDuration:  2 * time.Hour,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildRequestDTO() reqdto.ReserveRequest {
	return reqdto.ReserveRequest{
		StartTime:       b.StartTime,
		Day:             b.Day,
		CarModel:        b.Model,
		CarLicensePlate: b.LicensePlate,
	}
}

func (b *ReservationBuilder) BuildInput(principalID string) commands.ReserveInput {
	return b.BuildRequestDTO().ToInput(principalID)
}

// BuildResult panics on malformed Day or StartTime; builders are test-only.
func (b *ReservationBuilder) BuildResult() *commands.ReserveResult {
	start, err := time.ParseInLocation("2006-01-02 15:04", b.Day+" "+b.StartTime, time.UTC)
	if err != nil {
		panic(err)
	}
	return &commands.ReserveResult{
		ReservationID: b.ReservationID,
		ResourceID:    b.CarID,
		NaturalKey:    b.LicensePlate,
		Start:         start,
		End:           start.Add(b.SlotDuration),
	}
}
