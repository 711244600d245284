package badgerstore

import (
	"fmt"
	"path/filepath"

	"fleet-booking/internal/pkg/config"

	badger "github.com/dgraph-io/badger/v4"
)

// Store is an embedded Badger database holding cars and reservations.
// A Badger directory can only be opened by one process at a time.
type Store struct {
	db    *badger.DB
	seq   *badger.Sequence
	locks *keyedLocks
}

func Open(cfg config.StoreConfig) (*Store, error) {
	var opts badger.Options
	if cfg.BadgerInMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(filepath.Clean(cfg.BadgerDir))
		opts = opts.WithValueLogFileSize(1 << 26)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}

	seq, err := db.GetSequence(carSequenceKey, 100)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open car id sequence: %w", err)
	}

	return &Store{
		db:    db,
		seq:   seq,
		locks: newKeyedLocks(),
	}, nil
}

func (s *Store) Close() error {
	if err := s.seq.Release(); err != nil {
		_ = s.db.Close()
		return fmt.Errorf("failed to release car id sequence: %w", err)
	}
	return s.db.Close()
}

// nextCarID hands out ids starting at 1. Ids burnt by aborted transactions are not reused.
func (s *Store) nextCarID() (int64, error) {
	n, err := s.seq.Next()
	if err != nil {
		return 0, err
	}
	return int64(n) + 1, nil
}
