// Package cache provides a generic thread-safe LRU cache used to memoize
// expensive render computations (style escape prefixes, display widths).
package cache

import (
	"sync"
	"sync/atomic"
	"time"
)

// Cache is a generic thread-safe cache with optional LRU eviction.
// A capacity <= 0 means unbounded: the cache never evicts and entries only
// leave via Delete or Clear.
//
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*cacheEntry[K, V]
	lru      *lruList[K]
	capacity int

	// Statistics (atomic for zero-allocation reads)
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// cacheEntry holds a cached value with its LRU node and metadata.
type cacheEntry[K comparable, V any] struct {
	value    V
	node     *lruNode[K]
	accesses uint64
	created  time.Time
}

// Stats is a point-in-time snapshot of cache state and counters.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
	HitRate   float64
}

// EntryInfo describes one cached entry's metadata.
type EntryInfo struct {
	Accesses uint64
	Created  time.Time
}

// New creates a cache with the given capacity.
// A capacity <= 0 creates an unbounded cache.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:  make(map[K]*cacheEntry[K, V]),
		lru:      newLRUList[K](),
		capacity: capacity,
	}
}

// Get retrieves a cached value by key.
// Returns (value, true) if found, (zero, false) otherwise.
// On a hit the entry becomes the most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	entry, ok := c.entries[key]
	if !ok {
		c.mu.Unlock()
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	c.lru.MoveToFront(entry.node)
	entry.accesses++
	value := entry.value
	c.mu.Unlock()

	c.hits.Add(1)
	return value, true
}

// Set stores a value in the cache. If a bounded cache exceeds its capacity
// after insertion, least-recently-used entries are evicted.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[key]; ok {
		existing.value = value
		c.lru.MoveToFront(existing.node)
		return
	}

	c.evictForCapacity()

	node := c.lru.PushFront(key)
	c.entries[key] = &cacheEntry[K, V]{
		value:   value,
		node:    node,
		created: time.Now(),
	}
}

// GetOrCompute returns the cached value for key, computing and storing it
// on the first miss. The compute function is called at most once per
// distinct key until the entry is evicted or the cache is cleared; it runs
// under the cache lock, so keep it fast.
func (c *Cache[K, V]) GetOrCompute(key K, compute func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		c.lru.MoveToFront(entry.node)
		entry.accesses++
		c.hits.Add(1)
		return entry.value
	}

	c.misses.Add(1)
	value := compute()

	c.evictForCapacity()

	node := c.lru.PushFront(key)
	c.entries[key] = &cacheEntry[K, V]{
		value:   value,
		node:    node,
		created: time.Now(),
	}

	return value
}

// evictForCapacity removes least-recently-used entries until an insertion
// fits the capacity. Unbounded caches never evict.
// Callers must hold the lock.
func (c *Cache[K, V]) evictForCapacity() {
	if c.capacity <= 0 {
		return
	}
	for c.lru.Len() >= c.capacity {
		oldest, ok := c.lru.RemoveOldest()
		if !ok {
			break
		}
		delete(c.entries, oldest)
		c.evictions.Add(1)
	}
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return false
	}

	c.lru.Remove(entry.node)
	delete(c.entries, key)
	return true
}

// Clear removes all entries from the cache immediately.
// Statistics counters are preserved; use ResetStats to zero them.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*cacheEntry[K, V])
	c.lru.Clear()
}

// Len returns the number of entries currently cached.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the configured capacity; <= 0 means unbounded.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Info returns metadata for one entry without counting as an access.
func (c *Cache[K, V]) Info(key K) (EntryInfo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return EntryInfo{}, false
	}
	return EntryInfo{Accesses: entry.accesses, Created: entry.created}, true
}

// Stats returns current cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      hits,
		Misses:    misses,
		Evictions: c.evictions.Load(),
		HitRate:   hitRate,
	}
}

// ResetStats resets all statistics counters to zero.
func (c *Cache[K, V]) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}
