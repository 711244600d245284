package shared

import (
	"context"
	"time"

	"fleet-booking/internal/domain/reservation"
	"fleet-booking/internal/domain/resource"
	"fleet-booking/internal/pkg/errs"
)

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// UnitOfWork scopes storage access to a single transaction. fn's error rolls the
// transaction back; a nil return commits it. Rollback also happens on panic and
// context cancellation.
type UnitOfWork interface {
	// Within: read-write transaction, retried on serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: consistent snapshot for multi-read queries
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx ReadTx) error) error
}

type Tx interface {
	Resources() ResourceRegistry
	Reservations() ReservationStore
	// LockResourceDay serializes writers of one resource's calendar day until
	// the transaction ends.
	LockResourceDay(ctx context.Context, resourceID int64, day time.Time) error
}

type ReadTx interface {
	Resources() ResourceReader
	Reservations() ReservationReader
}

type ResourceReader interface {
	FindByID(ctx context.Context, id int64) (*resource.Resource, error)
	FindByNaturalKey(ctx context.Context, naturalKey string) (*resource.Resource, error)
	List(ctx context.Context) ([]*resource.Resource, error)
}

type ResourceRegistry interface {
	ResourceReader
	// ResolveOrCreate returns the resource with res's natural key, inserting res
	// when absent. Losing a concurrent insert re-resolves instead of failing.
	ResolveOrCreate(ctx context.Context, res *resource.Resource) (*resource.Resource, error)
}

type ReservationReader interface {
	// ListBetween returns the resource's reservations starting in [from, to), ordered by start.
	ListBetween(ctx context.Context, resourceID int64, from, to time.Time) ([]*reservation.Reservation, error)
}

type ReservationStore interface {
	ReservationReader
	Create(ctx context.Context, res *reservation.Reservation) error
}
