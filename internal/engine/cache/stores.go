package cache

import "go.trai.ch/transit/internal/core/domain"

// PositionStore is the light cache tier: raw per-body positions only,
// cheap to compute and therefore cached liberally (prefetch writes here).
type PositionStore struct {
	lru *LRU[domain.PositionSet]
}

// NewPositionStore creates a PositionStore with the given capacity.
func NewPositionStore(capacity int) *PositionStore {
	return &PositionStore{lru: NewLRU[domain.PositionSet](capacity)}
}

// Cached returns the cached position set for key, if present.
func (s *PositionStore) Cached(key domain.CacheKey) (domain.PositionSet, bool) {
	return s.lru.Get(key)
}

// Store caches the position set under key.
func (s *PositionStore) Store(key domain.CacheKey, ps domain.PositionSet) {
	s.lru.Put(key, ps)
}

// Reset clears the tier. Called when the profile inputs change: old keys
// belong to a dead keyspace and are never patched.
func (s *PositionStore) Reset() {
	s.lru.Clear()
}

// Len returns the number of cached position sets.
func (s *PositionStore) Len() int {
	return s.lru.Len()
}

// SnapshotStore is the heavy cache tier: fully derived snapshots from real
// fetches only. Synthesized approximations are never written here.
type SnapshotStore struct {
	lru *LRU[domain.Snapshot]
}

// NewSnapshotStore creates a SnapshotStore with the given capacity.
func NewSnapshotStore(capacity int) *SnapshotStore {
	return &SnapshotStore{lru: NewLRU[domain.Snapshot](capacity)}
}

// Cached returns the cached snapshot for key, if present.
func (s *SnapshotStore) Cached(key domain.CacheKey) (domain.Snapshot, bool) {
	return s.lru.Get(key)
}

// Store caches a real-fetch snapshot under key, overwriting whatever was
// there. A real fetch result is always fresher than any approximation.
func (s *SnapshotStore) Store(key domain.CacheKey, snap domain.Snapshot) {
	s.lru.Put(key, snap)
}

// Reset clears the tier.
func (s *SnapshotStore) Reset() {
	s.lru.Clear()
}

// Len returns the number of cached snapshots.
func (s *SnapshotStore) Len() int {
	return s.lru.Len()
}
