package badgerstore

import (
	"context"
	"sync"
)

// keyedLocks is a set of context-aware mutexes addressed by string keys.
// Entries are dropped once nobody holds or waits on them.
type keyedLocks struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
}

type lockEntry struct {
	ch   chan struct{}
	refs int
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{entries: make(map[string]*lockEntry)}
}

func (l *keyedLocks) Lock(ctx context.Context, key string) error {
	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &lockEntry{ch: make(chan struct{}, 1)}
		l.entries[key] = e
	}
	e.refs++
	l.mu.Unlock()

	select {
	case e.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		l.drop(key, e)
		return ctx.Err()
	}
}

func (l *keyedLocks) Unlock(key string) {
	l.mu.Lock()
	e, ok := l.entries[key]
	l.mu.Unlock()
	if !ok {
		return
	}
	<-e.ch
	l.drop(key, e)
}

func (l *keyedLocks) drop(key string, e *lockEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
}
