package repository

import (
	"context"

	"fleet-booking/internal/domain/resource"
	"fleet-booking/internal/infra"
	"fleet-booking/internal/infra/pgquery"
	"fleet-booking/internal/pkg/pgconv"
)

//go:generate mockgen -source=resource.go -destination=../../../tests/mock/repository/resource.go -package=repositorymock

type ResourceQueries interface {
	GetCarByID(ctx context.Context, db pgquery.DBTX, carID int64) (pgquery.Car, error)
	GetCarByLicensePlate(ctx context.Context, db pgquery.DBTX, licensePlate string) (pgquery.Car, error)
	ListCars(ctx context.Context, db pgquery.DBTX) ([]pgquery.Car, error)
	InsertCarIfAbsent(ctx context.Context, db pgquery.DBTX, arg pgquery.InsertCarParams) (int64, error)
}

type ResourceRepository struct {
	queries ResourceQueries
	db      pgquery.DBTX
}

func NewResourceRepository(queries ResourceQueries, db pgquery.DBTX) *ResourceRepository {
	return &ResourceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ResourceRepository) FindByID(ctx context.Context, id int64) (*resource.Resource, error) {
	row, err := r.queries.GetCarByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car by ID", err)
	}
	return toResource(row), nil
}

func (r *ResourceRepository) FindByNaturalKey(ctx context.Context, naturalKey string) (*resource.Resource, error) {
	row, err := r.queries.GetCarByLicensePlate(ctx, r.db, naturalKey)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car by license plate", err)
	}
	return toResource(row), nil
}

func (r *ResourceRepository) List(ctx context.Context) ([]*resource.Resource, error) {
	rows, err := r.queries.ListCars(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cars", err)
	}

	result := make([]*resource.Resource, len(rows))
	for i, row := range rows {
		result[i] = toResource(row)
	}
	return result, nil
}

func (r *ResourceRepository) ResolveOrCreate(ctx context.Context, res *resource.Resource) (*resource.Resource, error) {
	existing, err := r.FindByNaturalKey(ctx, res.NaturalKey())
	if err == nil {
		return existing, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	id, err := r.queries.InsertCarIfAbsent(ctx, r.db, pgquery.InsertCarParams{
		Model:        res.Label(),
		LicensePlate: res.NaturalKey(),
	})
	switch {
	case err == nil:
		return res.Assign(id), nil
	case pgconv.IsNoRows(err), pgconv.IsUniqueViolation(err):
		// Lost the insert race; the winner's row is committed by now.
		return r.FindByNaturalKey(ctx, res.NaturalKey())
	default:
		return nil, infra.WrapRepoErr("failed to create car", err)
	}
}

func toResource(row pgquery.Car) *resource.Resource {
	return resource.ReconstructResource(row.CarID, row.Model, row.LicensePlate)
}
