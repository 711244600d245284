package queries

import (
	"context"

	"fleet-booking/internal/pkg/errs"
	"fleet-booking/internal/usecase/shared"
)

//go:generate mockgen -source=resource.go -destination=../../../tests/mock/queries/resource.go -package=queriesmock

// ResourceView is the read model of a bookable car.
type ResourceView struct {
	ID         int64
	Label      string
	NaturalKey string
}

type ResourceQueries interface {
	ListResources(ctx context.Context) ([]ResourceView, error)
}

type resourceQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewResourceQueries(uow shared.UnitOfWork) ResourceQueries {
	return &resourceQueriesImpl{uow: uow}
}

func (q *resourceQueriesImpl) ListResources(ctx context.Context) ([]ResourceView, error) {
	var views []ResourceView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		cars, err := tx.Resources().List(ctx)
		if err != nil {
			return err
		}
		views = make([]ResourceView, 0, len(cars))
		for _, c := range cars {
			views = append(views, ResourceView{
				ID:         c.ID(),
				Label:      c.Label(),
				NaturalKey: c.NaturalKey(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageUnavailable)
	}
	return views, nil
}
