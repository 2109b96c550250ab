// Package cache provides a process-wide query result cache with per-entry
// TTL expiry and LRU eviction.
package cache

import (
	"sync"
	"sync/atomic"
	"time"
)

// QueryCache caches rendered query results. Entries expire after their TTL
// and are evicted least-recently-used first when the entry limit is reached.
// Expired entries are removed lazily on access; no background sweep runs.
type QueryCache struct {
	entries    map[string]*entry
	mutex      sync.Mutex
	maxEntries int
	// LRU doubly-linked list with dummy head and tail
	head *entry
	tail *entry
	// Statistics tracking (atomic for thread safety)
	hits      int64
	misses    int64
	sets      int64
	evictions int64
	// now is replaceable in tests
	now func() time.Time
}

type entry struct {
	key       string
	value     string
	expiresAt time.Time
	prev      *entry
	next      *entry
}

// DefaultMaxEntries bounds the cache when the caller passes a non-positive
// limit. The catalog is small, so the cap only matters for search queries.
const DefaultMaxEntries = 1024

// NewQueryCache creates a new query cache holding at most maxEntries entries.
func NewQueryCache(maxEntries int) *QueryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	c := &QueryCache{
		entries:    make(map[string]*entry),
		maxEntries: maxEntries,
		now:        time.Now,
	}

	c.head = &entry{}
	c.tail = &entry{}
	c.head.next = c.tail
	c.tail.prev = c.head

	return c
}

// Get retrieves a value from the cache. The second return value is false if
// the key was never set or its entry has expired.
func (c *QueryCache) Get(key string) (string, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	e, exists := c.entries[key]
	if !exists {
		atomic.AddInt64(&c.misses, 1)
		return "", false
	}

	if !c.now().Before(e.expiresAt) {
		c.removeFromList(e)
		delete(c.entries, key)
		atomic.AddInt64(&c.misses, 1)
		return "", false
	}

	c.moveToFront(e)
	atomic.AddInt64(&c.hits, 1)
	return e.value, true
}

// Set stores a value with the given TTL, overwriting any prior entry for the
// key. Callers are responsible for supplying a positive TTL.
func (c *QueryCache) Set(key, value string, ttl time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if e, exists := c.entries[key]; exists {
		e.value = value
		e.expiresAt = c.now().Add(ttl)
		c.moveToFront(e)
		atomic.AddInt64(&c.sets, 1)
		return
	}

	c.evictIfNeeded()

	e := &entry{
		key:       key,
		value:     value,
		expiresAt: c.now().Add(ttl),
	}

	c.entries[key] = e
	c.addToFront(e)
	atomic.AddInt64(&c.sets, 1)
}

// Delete removes a single entry.
func (c *QueryCache) Delete(key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if e, exists := c.entries[key]; exists {
		c.removeFromList(e)
		delete(c.entries, key)
	}
}

// Clear removes all entries and resets statistics.
func (c *QueryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries = make(map[string]*entry)
	c.head.next = c.tail
	c.tail.prev = c.head

	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.sets, 0)
	atomic.StoreInt64(&c.evictions, 0)
}

// Len returns the number of live entries, counting any that have expired but
// not yet been lazily evicted.
func (c *QueryCache) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return len(c.entries)
}

// Stats returns hit, miss, set, and eviction counts.
func (c *QueryCache) Stats() (hits, misses, sets, evictions int64) {
	return atomic.LoadInt64(&c.hits),
		atomic.LoadInt64(&c.misses),
		atomic.LoadInt64(&c.sets),
		atomic.LoadInt64(&c.evictions)
}

// HitRate returns the cache hit rate (0.0 to 1.0).
func (c *QueryCache) HitRate() float64 {
	hits := atomic.LoadInt64(&c.hits)
	misses := atomic.LoadInt64(&c.misses)
	total := hits + misses
	if total == 0 {
		return 0.0
	}
	return float64(hits) / float64(total)
}

// SetClock replaces the cache's time source. Test use only.
func (c *QueryCache) SetClock(now func() time.Time) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.now = now
}

// evictIfNeeded evicts the least recently used entry when the cache is full.
// Caller must hold the mutex.
func (c *QueryCache) evictIfNeeded() {
	for len(c.entries) >= c.maxEntries && c.tail.prev != c.head {
		lru := c.tail.prev
		c.removeFromList(lru)
		delete(c.entries, lru.key)
		atomic.AddInt64(&c.evictions, 1)
	}
}

// LRU doubly-linked list operations

func (c *QueryCache) addToFront(e *entry) {
	e.prev = c.head
	e.next = c.head.next
	c.head.next.prev = e
	c.head.next = e
}

func (c *QueryCache) removeFromList(e *entry) {
	e.prev.next = e.next
	e.next.prev = e.prev
}

func (c *QueryCache) moveToFront(e *entry) {
	c.removeFromList(e)
	c.addToFront(e)
}
