package persistence

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"closing_table/internal/domain"
)

type memoryEntry[T any] struct {
	value   T
	evictAt time.Time
}

// MemoryBackend keeps entries in process memory. go-cache runs without its own
// janitor; eviction is driven by Sweep so that every removal shares one lock
// with Take.
type MemoryBackend[T any] struct {
	mu    sync.RWMutex
	cache *cache.Cache
}

func NewMemoryBackend[T any]() *MemoryBackend[T] {
	return &MemoryBackend[T]{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (b *MemoryBackend[T]) Put(_ context.Context, key string, value T, evictAt time.Time) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cache.Set(key, memoryEntry[T]{value: value, evictAt: evictAt}, cache.NoExpiration)

	return nil
}

func (b *MemoryBackend[T]) Get(_ context.Context, key string) (T, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	entry, ok := b.lookup(key)
	if !ok {
		var zero T
		return zero, domain.ErrNotFound
	}

	return entry.value, nil
}

// Take returns the entry and removes it in one step. Of any number of
// concurrent callers for the same key, exactly one gets the value.
func (b *MemoryBackend[T]) Take(_ context.Context, key string) (T, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.lookup(key)
	if !ok {
		var zero T
		return zero, domain.ErrNotFound
	}

	b.cache.Delete(key)

	return entry.value, nil
}

// Sweep removes every entry whose eviction time is strictly before now.
func (b *MemoryBackend[T]) Sweep(ctx context.Context, now time.Time) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var removed int

	for key, item := range b.cache.Items() {
		if err := ctx.Err(); err != nil {
			return removed, err
		}

		entry, ok := item.Object.(memoryEntry[T])
		if !ok || entry.evictAt.Before(now) {
			b.cache.Delete(key)
			removed++
		}
	}

	return removed, nil
}

func (b *MemoryBackend[T]) Len() int {
	return b.cache.ItemCount()
}

func (b *MemoryBackend[T]) lookup(key string) (memoryEntry[T], bool) {
	raw, ok := b.cache.Get(key)
	if !ok {
		return memoryEntry[T]{}, false
	}

	entry, ok := raw.(memoryEntry[T])

	return entry, ok
}
