package cache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

const (
	// ShardCount is the number of shards. Must be a power of 2.
	ShardCount = 16

	// DefaultCapacity is the default maximum entries per shard.
	DefaultCapacity = 64

	shardMask = ShardCount - 1
)

// Hasher computes the hash used for shard selection.
type Hasher[K any] func(K) uint64

// StringHasher computes the FNV-1a hash of a string key.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// Stats holds cache statistics.
type Stats struct {
	Len       int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Sharded is a thread-safe LRU cache split into ShardCount shards.
type Sharded[K comparable, V any] struct {
	shards   [ShardCount]shard[K, V]
	hasher   Hasher[K]
	capacity int // per shard

	onEvict func(K, V)

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*node[K, V]
	lru     lru[K, V]
}

// NewSharded creates a cache holding at most capacity entries per shard.
// If capacity <= 0, DefaultCapacity is used.
func NewSharded[K comparable, V any](capacity int, hasher Hasher[K]) *Sharded[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Sharded[K, V]{
		hasher:   hasher,
		capacity: capacity,
	}
	for i := range c.shards {
		c.shards[i].entries = make(map[K]*node[K, V])
	}
	return c
}

// OnEvict registers fn to be called, with the shard lock held, for every
// entry dropped to make room. Clear does not trigger it.
func (c *Sharded[K, V]) OnEvict(fn func(K, V)) {
	c.onEvict = fn
}

func (c *Sharded[K, V]) shard(key K) *shard[K, V] {
	return &c.shards[c.hasher(key)&shardMask]
}

// GetOrCreate returns the cached value for key, or calls create and caches
// its result. A failed create caches nothing. create runs with the shard
// lock held, so concurrent callers for the same key wait for one creation.
func (c *Sharded[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	s := c.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if n, ok := s.entries[key]; ok {
		s.lru.touch(n)
		c.hits.Add(1)
		return n.value, nil
	}
	c.misses.Add(1)

	value, err := create()
	if err != nil {
		var zero V
		return zero, err
	}
	c.insert(s, key, value)
	return value, nil
}

// Clear removes all entries.
func (c *Sharded[K, V]) Clear() {
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		s.entries = make(map[K]*node[K, V])
		s.lru = lru[K, V]{}
		s.mu.Unlock()
	}
}

// Len returns the total number of entries across all shards.
func (c *Sharded[K, V]) Len() int {
	total := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		total += len(s.entries)
		s.mu.Unlock()
	}
	return total
}

// Stats returns current cache statistics. It locks every shard in turn, so
// it must not be called from an OnEvict callback.
func (c *Sharded[K, V]) Stats() Stats {
	return Stats{
		Len:       c.Len(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

// insert adds a new entry to s. The caller holds s.mu.
func (c *Sharded[K, V]) insert(s *shard[K, V], key K, value V) {
	for s.lru.Len() >= c.capacity {
		old := s.lru.pop()
		if old == nil {
			break
		}
		delete(s.entries, old.key)
		c.evictions.Add(1)
		if c.onEvict != nil {
			c.onEvict(old.key, old.value)
		}
	}
	s.entries[key] = s.lru.push(key, value)
}
