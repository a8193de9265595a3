package cache_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/transit/internal/core/domain"
	"go.trai.ch/transit/internal/engine/cache"
)

func TestNewLRU_PanicsOnInvalidCapacity(t *testing.T) {
	assert.Panics(t, func() { cache.NewLRU[int](0) })
	assert.Panics(t, func() { cache.NewLRU[int](-1) })
}

func TestLRU_GetMiss(t *testing.T) {
	c := cache.NewLRU[int](2)

	v, ok := c.Get("absent")

	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestLRU_PutGet(t *testing.T) {
	c := cache.NewLRU[string](4)

	c.Put("a", "one")
	c.Put("b", "two")

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "one", v)
	assert.Equal(t, 2, c.Len())
}

func TestLRU_PutReplaces(t *testing.T) {
	c := cache.NewLRU[int](2)

	c.Put("a", 1)
	c.Put("a", 2)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())
}

func TestLRU_EvictionSequence(t *testing.T) {
	// Capacity 2: put A, B, C leaves exactly {B, C}. Refreshing B via Get
	// and putting D then evicts C, leaving {B, D}.
	c := cache.NewLRU[int](2)

	c.Put("A", 1)
	c.Put("B", 2)
	c.Put("C", 3)

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("A")
	assert.False(t, ok)
	_, ok = c.Get("B")
	assert.True(t, ok)
	_, ok = c.Get("C")
	assert.True(t, ok)

	// Refresh B, then insert D: C is now the least recently used.
	_, ok = c.Get("B")
	require.True(t, ok)
	c.Put("D", 4)

	assert.Equal(t, 2, c.Len())
	_, ok = c.Get("C")
	assert.False(t, ok)
	_, ok = c.Get("B")
	assert.True(t, ok)
	_, ok = c.Get("D")
	assert.True(t, ok)
}

func TestLRU_NeverExceedsCapacity(t *testing.T) {
	const capacity = 24
	c := cache.NewLRU[int](capacity)

	for i := 0; i < 200; i++ {
		c.Put(domain.CacheKey(fmt.Sprintf("key-%d", i)), i)
		assert.LessOrEqual(t, c.Len(), capacity)
	}

	// The survivors are exactly the most recently touched capacity keys.
	keys := c.Keys()
	require.Len(t, keys, capacity)
	for i, key := range keys {
		assert.Equal(t, domain.CacheKey(fmt.Sprintf("key-%d", 199-i)), key)
	}
}

func TestLRU_Clear(t *testing.T) {
	c := cache.NewLRU[int](4)
	c.Put("a", 1)
	c.Put("b", 2)

	c.Clear()

	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)

	// Still usable after clearing.
	c.Put("c", 3)
	v, ok := c.Get("c")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}
