package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"fleet-booking/internal/domain/reservation"
	"fleet-booking/internal/domain/resource"
	"fleet-booking/internal/domain/slot"
	"fleet-booking/internal/infra"
	"fleet-booking/internal/pkg/clock"
	"fleet-booking/internal/pkg/errs"
	"fleet-booking/internal/pkg/metrics"
	"fleet-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commandsmock

var tracer = otel.Tracer("fleet-booking/usecase/commands")

// EventPublisher receives confirmed reservations after commit. Delivery is best effort.
type EventPublisher interface {
	PublishReservationConfirmed(ctx context.Context, ev reservation.ConfirmedEvent) error
}

type ReserveInput struct {
	Day         string
	StartTime   string
	Label       string
	NaturalKey  string
	PrincipalID string
}

type ReserveResult struct {
	ReservationID uuid.UUID
	ResourceID    int64
	NaturalKey    string
	Start         time.Time
	End           time.Time
}

type ReservationCommands interface {
	Reserve(ctx context.Context, in ReserveInput) (*ReserveResult, error)
}

type reservationCommandsImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	window    slot.Window
	publisher EventPublisher
	metrics   *metrics.Metrics
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	clk clock.Clock,
	publisher EventPublisher,
	m *metrics.Metrics,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:       uow,
		clock:     clk,
		window:    slot.DefaultWindow,
		publisher: publisher,
		metrics:   m,
	}
}

func (uc *reservationCommandsImpl) Reserve(ctx context.Context, in ReserveInput) (*ReserveResult, error) {
	ctx, span := tracer.Start(ctx, "ReservationCommands.Reserve")
	defer span.End()
	span.SetAttributes(
		attribute.String("reservation.day", in.Day),
		attribute.String("reservation.start_time", in.StartTime),
	)

	result, err := uc.reserve(ctx, in)
	uc.metrics.ReservationOutcome(metrics.Outcome(err))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, metrics.Outcome(err))
		return nil, err
	}

	span.SetAttributes(
		attribute.Int64("reservation.car_id", result.ResourceID),
		attribute.String("reservation.id", result.ReservationID.String()),
	)
	return result, nil
}

func (uc *reservationCommandsImpl) reserve(ctx context.Context, in ReserveInput) (*ReserveResult, error) {
	principalID := strings.TrimSpace(in.PrincipalID)
	if principalID == "" {
		return nil, errs.Mark(errs.New("principal id is required"), errs.ErrUnauthenticated)
	}

	start, err := slot.At(in.Day, in.StartTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	candidate, err := resource.NewResource(in.Label, in.NaturalKey)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	interval := uc.window.Slot(start)
	scope := uc.window.ConflictScope(start)

	var (
		car     *resource.Resource
		created *reservation.Reservation
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, txErr := tx.Resources().ResolveOrCreate(ctx, candidate)
		if txErr != nil {
			return txErr
		}

		// Ascending order keeps concurrent reservers from deadlocking.
		for _, day := range slot.Days(scope) {
			if txErr = tx.LockResourceDay(ctx, r.ID(), day); txErr != nil {
				return txErr
			}
		}

		existing, txErr := tx.Reservations().ListBetween(ctx, r.ID(), scope.Start, scope.End)
		if txErr != nil {
			return txErr
		}
		if slot.OverlapsAny(interval, reservation.Intervals(existing, uc.window.SlotDuration)) {
			return errs.Wrapf(errs.ErrSlotConflict, "car %d at %s", r.ID(), start.Format(time.DateTime))
		}

		rsv, txErr := reservation.NewReservation(r.ID(), principalID, start, uc.clock.Now())
		if txErr != nil {
			return errs.Mark(txErr, errs.ErrInvalidInput)
		}
		if txErr = tx.Reservations().Create(ctx, rsv); txErr != nil {
			return txErr
		}

		car, created = r, rsv
		return nil
	})
	if err != nil {
		return nil, translateError(err)
	}

	uc.publish(ctx, created, car)

	return &ReserveResult{
		ReservationID: created.ID(),
		ResourceID:    car.ID(),
		NaturalKey:    car.NaturalKey(),
		Start:         interval.Start,
		End:           interval.End,
	}, nil
}

func (uc *reservationCommandsImpl) publish(ctx context.Context, rsv *reservation.Reservation, car *resource.Resource) {
	if uc.publisher == nil {
		return
	}
	ev := reservation.NewConfirmedEvent(rsv, car.NaturalKey(), uc.window.SlotDuration, uc.clock.Now())
	if err := uc.publisher.PublishReservationConfirmed(ctx, ev); err != nil {
		slog.WarnContext(ctx, "failed to publish reservation event",
			"reservation_id", rsv.ID().String(),
			"error", err)
	}
}

// translateError maps storage failures onto the usecase error taxonomy.
func translateError(err error) error {
	switch {
	case errors.Is(err, errs.ErrSlotConflict),
		errors.Is(err, errs.ErrInvalidInput),
		errors.Is(err, errs.ErrResourceNotFound):
		return err
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrSlotConflict)
	case infra.IsKind(err, infra.KindNotFound), infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, errs.ErrResourceNotFound)
	default:
		return errs.Mark(err, errs.ErrStorageUnavailable)
	}
}
