// Package cache implements the bounded in-memory cache tiers for the
// scrub engine.
package cache

import (
	"container/list"
	"sync"

	"go.trai.ch/transit/internal/core/domain"
)

// LRU is a fixed-capacity key-value store with least-recently-used
// eviction. Capacity is set at construction and never grows. Every key
// touched by Get or Put moves to the most-recent end of the order list;
// when the map exceeds capacity, entries are evicted from the
// least-recent end until the cache is back within bounds.
//
// Background fetches hand results back from other goroutines, so both
// the map and the order list are guarded by a mutex.
type LRU[V any] struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	entries  map[domain.CacheKey]*list.Element
}

type lruEntry[V any] struct {
	key   domain.CacheKey
	value V
}

// NewLRU creates an LRU with the given capacity. Panics on capacity < 1.
func NewLRU[V any](capacity int) *LRU[V] {
	if capacity < 1 {
		panic("cache: capacity must be at least 1")
	}
	return &LRU[V]{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[domain.CacheKey]*list.Element, capacity),
	}
}

// Get returns the value for key if present and marks it most-recently-used.
func (c *LRU[V]) Get(key domain.CacheKey) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(lruEntry[V]).value, true
	}
	var zero V
	return zero, false
}

// Put inserts or replaces the value for key, marks it most-recently-used
// and evicts least-recently-used entries until the cache is within capacity.
func (c *LRU[V]) Put(key domain.CacheKey, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		elem.Value = lruEntry[V]{key: key, value: value}
		c.order.MoveToFront(elem)
		return
	}

	c.entries[key] = c.order.PushFront(lruEntry[V]{key: key, value: value})
	c.evictUntilWithinCapacity()
}

// evictUntilWithinCapacity removes entries from the least-recent end until
// len(entries) <= capacity. Entries inserted in one batch evict in FIFO
// order since the list position breaks the tie.
func (c *LRU[V]) evictUntilWithinCapacity() {
	for len(c.entries) > c.capacity {
		oldest := c.order.Back()
		if oldest == nil {
			return
		}
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(lruEntry[V]).key)
	}
}

// Len returns the number of cached entries.
func (c *LRU[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the configured capacity.
func (c *LRU[V]) Capacity() int {
	return c.capacity
}

// Clear removes all entries. Capacity is unchanged.
func (c *LRU[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	clear(c.entries)
}

// Keys returns the cached keys from most to least recently used.
// Used by tests to assert the recency order.
func (c *LRU[V]) Keys() []domain.CacheKey {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]domain.CacheKey, 0, len(c.entries))
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		keys = append(keys, elem.Value.(lruEntry[V]).key)
	}
	return keys
}
