package badgerstore

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"fleet-booking/internal/infra"
	"fleet-booking/internal/pkg/errs"
	"fleet-booking/internal/usecase/shared"

	badger "github.com/dgraph-io/badger/v4"
)

const (
	conflictBackoffBase = 5 * time.Millisecond
	conflictBackoffMax  = 250 * time.Millisecond
)

type BadgerUoW struct {
	store *Store
}

func NewBadgerUoW(store *Store) shared.UnitOfWork {
	return &BadgerUoW{store: store}
}

// Within runs fn in a read-write Badger transaction and retries commits that
// lose Badger's optimistic conflict check until ctx is done.
//
// In-process locks taken by fn stay held across retries. A writer that queued
// behind another one read its keys at a stale timestamp and fails its first
// commit; the retry starts a fresh transaction while still owning the keys,
// so nothing in this process can invalidate it again.
func (u *BadgerUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	locks := &lockSet{locks: u.store.locks}
	defer locks.release()

	for attempt := 0; ; attempt++ {
		err := u.attempt(ctx, locks, fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
		if attempt == 0 {
			continue
		}

		waitTime := conflictBackoff(attempt)
		slog.Warn("retrying transaction due to write conflict",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds())

		select {
		case <-ctx.Done():
			slog.Error("transaction abandoned after write conflicts",
				"attempts", attempt+1,
				"error", ctx.Err().Error())
			return errs.Mark(errs.Wrap(err, ctx.Err().Error()), shared.ErrMaxRetriesExceeded)
		case <-time.After(waitTime):
		}
	}
}

func (u *BadgerUoW) attempt(ctx context.Context, locks *lockSet, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	txn := u.store.db.NewTransaction(true)
	defer txn.Discard()

	if err := fn(ctx, &badgerTx{txn: txn, locks: locks, store: u.store}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := txn.Commit(); err != nil {
		if errors.Is(err, badger.ErrConflict) {
			return err
		}
		return errs.Mark(err, shared.ErrTransactionCommit)
	}
	return nil
}

// conflictBackoff doubles from conflictBackoffBase up to conflictBackoffMax
// and adds up to 20% jitter.
func conflictBackoff(attempt int) time.Duration {
	waitTime := conflictBackoffBase << min(attempt, 10)
	waitTime = min(waitTime, conflictBackoffMax)
	return waitTime + rand.N(waitTime/5+1)
}

func (u *BadgerUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.ReadTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return u.store.db.View(func(txn *badger.Txn) error {
		return fn(ctx, badgerReadTx{txn: txn, store: u.store})
	})
}

type badgerTx struct {
	txn   *badger.Txn
	locks *lockSet
	store *Store
}

func (t *badgerTx) Resources() shared.ResourceRegistry {
	return &resourceRepository{txn: t.txn, store: t.store, lock: t.locks.hold}
}

func (t *badgerTx) Reservations() shared.ReservationStore {
	return &reservationRepository{txn: t.txn}
}

// LockResourceDay takes the in-process day lock and also reads and writes the
// day's lock key, so a writer that slipped past the mutex fails its commit
// with ErrConflict.
func (t *badgerTx) LockResourceDay(ctx context.Context, resourceID int64, day time.Time) error {
	key := dayLockKey(resourceID, day)
	if err := t.locks.hold(ctx, key); err != nil {
		return infra.WrapRepoErr("failed to lock car day", err)
	}

	if _, err := t.txn.Get([]byte(key)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
		return infra.WrapRepoErr("failed to read car day lock", err)
	}
	stamp := time.Now().UTC().AppendFormat(nil, time.RFC3339Nano)
	if err := t.txn.Set([]byte(key), stamp); err != nil {
		return infra.WrapRepoErr("failed to write car day lock", err)
	}
	return nil
}

// lockSet tracks the in-process locks of one Within call.
type lockSet struct {
	locks *keyedLocks
	keys  []string
}

// hold takes key unless this Within call already owns it.
func (l *lockSet) hold(ctx context.Context, key string) error {
	if slices.Contains(l.keys, key) {
		return nil
	}
	if err := l.locks.Lock(ctx, key); err != nil {
		return err
	}
	l.keys = append(l.keys, key)
	return nil
}

func (l *lockSet) release() {
	for i := len(l.keys) - 1; i >= 0; i-- {
		l.locks.Unlock(l.keys[i])
	}
	l.keys = nil
}

type badgerReadTx struct {
	txn   *badger.Txn
	store *Store
}

func (t badgerReadTx) Resources() shared.ResourceReader {
	return &resourceRepository{txn: t.txn, store: t.store, lock: noLock}
}

func (t badgerReadTx) Reservations() shared.ReservationReader {
	return &reservationRepository{txn: t.txn}
}

func noLock(context.Context, string) error { return nil }
