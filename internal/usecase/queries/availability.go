package queries

import (
	"context"
	"errors"
	"strings"

	"fleet-booking/internal/domain/reservation"
	"fleet-booking/internal/domain/resource"
	"fleet-booking/internal/domain/slot"
	"fleet-booking/internal/infra"
	"fleet-booking/internal/pkg/errs"
	"fleet-booking/internal/pkg/metrics"
	"fleet-booking/internal/usecase/shared"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock

var tracer = otel.Tracer("fleet-booking/usecase/queries")

// ResourceRef addresses a resource either by numeric id or by natural key.
// ID takes precedence when set.
type ResourceRef struct {
	ID         int64
	NaturalKey string
}

type AvailabilityQueries interface {
	ListAvailability(ctx context.Context, ref ResourceRef, day string) ([]slot.Interval, error)
}

type availabilityQueriesImpl struct {
	uow     shared.UnitOfWork
	window  slot.Window
	metrics *metrics.Metrics
}

func NewAvailabilityQueries(uow shared.UnitOfWork, m *metrics.Metrics) AvailabilityQueries {
	return &availabilityQueriesImpl{
		uow:     uow,
		window:  slot.DefaultWindow,
		metrics: m,
	}
}

func (q *availabilityQueriesImpl) ListAvailability(ctx context.Context, ref ResourceRef, day string) ([]slot.Interval, error) {
	ctx, span := tracer.Start(ctx, "AvailabilityQueries.ListAvailability")
	defer span.End()
	span.SetAttributes(attribute.String("availability.day", day))

	slots, err := q.listAvailability(ctx, ref, day)
	q.metrics.AvailabilityOutcome(metrics.Outcome(err))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, metrics.Outcome(err))
		return nil, err
	}
	span.SetAttributes(attribute.Int("availability.free_slots", len(slots)))
	return slots, nil
}

func (q *availabilityQueriesImpl) listAvailability(ctx context.Context, ref ResourceRef, day string) ([]slot.Interval, error) {
	d, err := slot.ParseDay(day)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidInput)
	}

	naturalKey := strings.TrimSpace(ref.NaturalKey)
	if ref.ID <= 0 {
		if verr := resource.ValidateNaturalKey(naturalKey); verr != nil {
			return nil, errs.Mark(verr, errs.ErrInvalidInput)
		}
	}

	scope := q.window.Scope(d)
	var reserved []slot.Interval
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		car, lookupErr := q.lookup(ctx, tx, ref.ID, naturalKey)
		if lookupErr != nil {
			return lookupErr
		}
		if car == nil {
			// An unseen natural key has no reservations yet.
			return nil
		}

		existing, listErr := tx.Reservations().ListBetween(ctx, car.ID(), scope.Start, scope.End)
		if listErr != nil {
			return listErr
		}
		reserved = reservation.Intervals(existing, q.window.SlotDuration)
		return nil
	})
	if err != nil {
		if errors.Is(err, errs.ErrResourceNotFound) {
			return nil, err
		}
		return nil, errs.Mark(err, errs.ErrStorageUnavailable)
	}

	return slot.Generate(q.window, d, reserved), nil
}

func (q *availabilityQueriesImpl) lookup(ctx context.Context, tx shared.ReadTx, id int64, naturalKey string) (*resource.Resource, error) {
	if id > 0 {
		car, err := tx.Resources().FindByID(ctx, id)
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrResourceNotFound)
		}
		return car, err
	}

	car, err := tx.Resources().FindByNaturalKey(ctx, naturalKey)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, nil
	}
	return car, err
}
