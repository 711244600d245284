//go:build unit

package badgerstore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"fleet-booking/internal/domain/reservation"
	"fleet-booking/internal/domain/resource"
	"fleet-booking/internal/infra"
	"fleet-booking/internal/infra/badgerstore"
	"fleet-booking/internal/pkg/config"
	"fleet-booking/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *badgerstore.Store {
	t.Helper()
	store, err := badgerstore.Open(config.StoreConfig{Driver: config.StoreDriverBadger, BadgerInMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newCar(t *testing.T, label, plate string) *resource.Resource {
	t.Helper()
	r, err := resource.NewResource(label, plate)
	require.NoError(t, err)
	return r
}

func TestBadgerUoW_ResolveOrCreate(t *testing.T) {
	ctx := context.Background()
	uow := badgerstore.NewBadgerUoW(openStore(t))

	var first, second *resource.Resource
	require.NoError(t, uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		first, err = tx.Resources().ResolveOrCreate(ctx, newCar(t, "Civic", "ABC-123"))
		return err
	}))
	require.NoError(t, uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		second, err = tx.Resources().ResolveOrCreate(ctx, newCar(t, "Renamed", "ABC-123"))
		return err
	}))

	assert.Equal(t, int64(1), first.ID())
	assert.Equal(t, first.ID(), second.ID())
	assert.Equal(t, "Civic", second.Label(), "existing car keeps its label")

	require.NoError(t, uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		byID, err := tx.Resources().FindByID(ctx, first.ID())
		require.NoError(t, err)
		assert.Equal(t, "ABC-123", byID.NaturalKey())

		_, err = tx.Resources().FindByNaturalKey(ctx, "NOPE-1")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))

		_, err = tx.Resources().FindByID(ctx, 99)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		return nil
	}))
}

func TestBadgerUoW_ResolveOrCreateConcurrent(t *testing.T) {
	ctx := context.Background()
	uow := badgerstore.NewBadgerUoW(openStore(t))

	const n = 8
	ids := make([]int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				car, err := tx.Resources().ResolveOrCreate(ctx, newCar(t, "Civic", "RACE-1"))
				if err != nil {
					return err
				}
				ids[i] = car.ID()
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}

	require.NoError(t, uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		cars, err := tx.Resources().List(ctx)
		require.NoError(t, err)
		assert.Len(t, cars, 1)
		return nil
	}))
}

func TestBadgerUoW_ReservationsBetween(t *testing.T) {
	ctx := context.Background()
	uow := badgerstore.NewBadgerUoW(openStore(t))
	at := func(hh int) time.Time { return time.Date(2024, 6, 1, hh, 0, 0, 0, time.UTC) }

	var carID int64
	require.NoError(t, uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		car, err := tx.Resources().ResolveOrCreate(ctx, newCar(t, "Civic", "ABC-123"))
		if err != nil {
			return err
		}
		carID = car.ID()
		for _, hh := range []int{6, 10, 12, 18} {
			r, err := reservation.NewReservation(carID, "user-1", at(hh), at(0))
			require.NoError(t, err)
			if err := tx.Reservations().Create(ctx, r); err != nil {
				return err
			}
		}
		return nil
	}))

	require.NoError(t, uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		got, err := tx.Reservations().ListBetween(ctx, carID, at(6), at(18))
		require.NoError(t, err)
		require.Len(t, got, 3, "from is inclusive and to is exclusive")
		assert.Equal(t, at(6), got[0].Start())
		assert.Equal(t, at(10), got[1].Start())
		assert.Equal(t, at(12), got[2].Start())

		other, err := tx.Reservations().ListBetween(ctx, carID+1, at(0), at(23))
		require.NoError(t, err)
		assert.Empty(t, other)
		return nil
	}))
}

func TestBadgerUoW_RollbackOnError(t *testing.T) {
	ctx := context.Background()
	uow := badgerstore.NewBadgerUoW(openStore(t))

	err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Resources().ResolveOrCreate(ctx, newCar(t, "Civic", "ROLL-1")); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	require.NoError(t, uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.ReadTx) error {
		_, err := tx.Resources().FindByNaturalKey(ctx, "ROLL-1")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		return nil
	}))
}

func TestBadgerUoW_CreateRequiresCar(t *testing.T) {
	ctx := context.Background()
	uow := badgerstore.NewBadgerUoW(openStore(t))

	err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := reservation.NewReservation(42, "user-1", time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC), time.Now())
		require.NoError(t, err)
		return tx.Reservations().Create(ctx, r)
	})
	assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
}

func TestBadgerUoW_DayLockSerializesWriters(t *testing.T) {
	ctx := context.Background()
	uow := badgerstore.NewBadgerUoW(openStore(t))
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		_ = uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := tx.LockResourceDay(ctx, 1, day); err != nil {
				return err
			}
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	waitCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	err := uow.Within(waitCtx, func(ctx context.Context, tx shared.Tx) error {
		return tx.LockResourceDay(ctx, 1, day)
	})
	assert.Error(t, err, "second writer must block while the first holds the day")

	require.NoError(t, uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.LockResourceDay(ctx, 2, day)
	}), "other cars are not blocked")

	close(release)
	<-done

	require.NoError(t, uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.LockResourceDay(ctx, 1, day)
	}))
}

func TestBadgerUoW_QueuedWriterCommits(t *testing.T) {
	ctx := context.Background()
	uow := badgerstore.NewBadgerUoW(openStore(t))
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	at := func(hh int) time.Time { return day.Add(time.Duration(hh) * time.Hour) }

	var carID int64
	require.NoError(t, uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		car, err := tx.Resources().ResolveOrCreate(ctx, newCar(t, "Civic", "ABC-123"))
		carID = car.ID()
		return err
	}))

	writeAt := func(hh int, seen *int) func(ctx context.Context, tx shared.Tx) error {
		return func(ctx context.Context, tx shared.Tx) error {
			if err := tx.LockResourceDay(ctx, carID, day); err != nil {
				return err
			}
			existing, err := tx.Reservations().ListBetween(ctx, carID, day, day.AddDate(0, 0, 1))
			if err != nil {
				return err
			}
			*seen = len(existing)
			r, err := reservation.NewReservation(carID, "user-1", at(hh), day)
			require.NoError(t, err)
			return tx.Reservations().Create(ctx, r)
		}
	}

	entered := make(chan struct{})
	release := make(chan struct{})
	firstDone := make(chan error, 1)
	go func() {
		var seen int
		write := writeAt(10, &seen)
		firstDone <- uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := write(ctx, tx); err != nil {
				return err
			}
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	// Each queued writer opens its transaction before the holder commits.
	const queued = 6
	var wg sync.WaitGroup
	errsCh := make(chan error, queued)
	for i := 0; i < queued; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var seen int
			errsCh <- uow.Within(ctx, writeAt(12+i*2, &seen))
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)

	require.NoError(t, <-firstDone)
	wg.Wait()
	close(errsCh)
	for err := range errsCh {
		assert.NoError(t, err, "a writer queued behind commits must still commit")
	}

	var last int
	require.NoError(t, uow.Within(ctx, writeAt(2, &last)))
	assert.Equal(t, queued+1, last, "the retried transaction reads every earlier commit")
}
