package cache

import (
	"context"
	"sync"
	"time"
)

// InMemoryClient is a process-local cache keyed by string. Entries expire
// lazily on read; there is no background eviction, callers are expected to
// hold a small, bounded key set (chart-of-accounts lookups).
type InMemoryClient[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
}

type entry[T any] struct {
	value T
	expAt time.Time
}

func (e entry[T]) expired() bool {
	return !e.expAt.IsZero() && e.expAt.Before(time.Now())
}

func NewInMemoryClient[T any]() *InMemoryClient[T] {
	return &InMemoryClient[T]{
		entries: make(map[string]entry[T]),
	}
}

func (m *InMemoryClient[T]) Get(ctx context.Context, key string) (result T, err error) {
	m.mu.RLock()
	e, found := m.entries[key]
	m.mu.RUnlock()

	if !found {
		return result, ErrNotExists
	}

	if e.expired() {
		m.Delete(ctx, key)
		return result, ErrNotExists
	}

	return e.value, nil
}

func (m *InMemoryClient[T]) Set(ctx context.Context, key string, object T, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = entry[T]{
		value: object,
		expAt: time.Now().Add(ttl),
	}
	return nil
}

func (m *InMemoryClient[T]) Delete(ctx context.Context, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
}

func (m *InMemoryClient[T]) GetOrSet(ctx context.Context, opts GetOrSetOpts[T]) (result T, err error) {
	if opts.Callback == nil {
		return result, ErrCallbackNotProvided
	}

	obj, err := m.Get(ctx, opts.Key)
	if err == nil {
		return obj, nil
	}
	if err != ErrNotExists {
		return result, err
	}

	obj, err = opts.Callback()
	if err != nil {
		return result, err
	}

	if err = m.Set(ctx, opts.Key, obj, opts.TTL); err != nil {
		return result, err
	}

	return obj, nil
}
