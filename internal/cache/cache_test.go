package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is an adjustable time source for TTL tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func TestQueryCache_TTL(t *testing.T) {
	t.Run("get before expiry returns value", func(t *testing.T) {
		clock := newFakeClock()
		c := NewQueryCache(10)
		c.SetClock(clock.Now)

		c.Set("k", "v", time.Minute)

		got, ok := c.Get("k")
		require.True(t, ok)
		assert.Equal(t, "v", got)
	})

	t.Run("get after expiry returns absent", func(t *testing.T) {
		clock := newFakeClock()
		c := NewQueryCache(10)
		c.SetClock(clock.Now)

		c.Set("k", "v", time.Minute)
		clock.Advance(time.Minute + time.Second)

		_, ok := c.Get("k")
		assert.False(t, ok)
	})

	t.Run("expiry boundary is exclusive", func(t *testing.T) {
		clock := newFakeClock()
		c := NewQueryCache(10)
		c.SetClock(clock.Now)

		c.Set("k", "v", time.Minute)
		clock.Advance(time.Minute)

		// now == expiresAt counts as expired
		_, ok := c.Get("k")
		assert.False(t, ok)
	})

	t.Run("expired entry is lazily evicted", func(t *testing.T) {
		clock := newFakeClock()
		c := NewQueryCache(10)
		c.SetClock(clock.Now)

		c.Set("k", "v", time.Minute)
		clock.Advance(2 * time.Minute)

		require.Equal(t, 1, c.Len())
		c.Get("k")
		assert.Equal(t, 0, c.Len())
	})
}

func TestQueryCache_Overwrite(t *testing.T) {
	clock := newFakeClock()
	c := NewQueryCache(10)
	c.SetClock(clock.Now)

	c.Set("k", "v1", time.Minute)
	c.Set("k", "v2", time.Minute)

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v2", got)
	assert.Equal(t, 1, c.Len())
}

func TestQueryCache_OverwriteRefreshesTTL(t *testing.T) {
	clock := newFakeClock()
	c := NewQueryCache(10)
	c.SetClock(clock.Now)

	c.Set("k", "v1", time.Minute)
	clock.Advance(45 * time.Second)
	c.Set("k", "v2", time.Minute)
	clock.Advance(45 * time.Second)

	// 90s after the first set, but only 45s after the overwrite
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v2", got)
}

func TestQueryCache_DeleteAndClear(t *testing.T) {
	c := NewQueryCache(10)

	c.Set("a", "1", time.Minute)
	c.Set("b", "2", time.Minute)

	c.Delete("a")
	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.True(t, ok)

	c.Clear()
	assert.Equal(t, 0, c.Len())
	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestQueryCache_LRUEviction(t *testing.T) {
	t.Run("least recently used entry is evicted first", func(t *testing.T) {
		c := NewQueryCache(3)

		c.Set("a", "1", time.Minute)
		c.Set("b", "2", time.Minute)
		c.Set("c", "3", time.Minute)

		// Touch "a" so "b" becomes the LRU entry.
		c.Get("a")

		c.Set("d", "4", time.Minute)

		_, ok := c.Get("b")
		assert.False(t, ok, "b should have been evicted as LRU")
		for _, k := range []string{"a", "c", "d"} {
			_, ok := c.Get(k)
			assert.True(t, ok, "%s should still be present", k)
		}
	})

	t.Run("eviction counter tracks evictions", func(t *testing.T) {
		c := NewQueryCache(2)
		for i := 0; i < 5; i++ {
			c.Set(fmt.Sprintf("k%d", i), "v", time.Minute)
		}
		_, _, _, evictions := c.Stats()
		assert.Equal(t, int64(3), evictions)
	})
}

func TestQueryCache_Stats(t *testing.T) {
	c := NewQueryCache(10)

	c.Set("k", "v", time.Minute)
	c.Get("k")
	c.Get("missing")

	hits, misses, sets, _ := c.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
	assert.Equal(t, int64(1), sets)
	assert.InDelta(t, 0.5, c.HitRate(), 0.001)
}

func TestQueryCache_ConcurrentAccess(t *testing.T) {
	c := NewQueryCache(100)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("k%d", j%20)
				c.Set(key, fmt.Sprintf("v%d-%d", n, j), time.Minute)
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 20)
}
