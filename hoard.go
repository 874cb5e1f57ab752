package hoard

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Cache is a generic, thread-safe, policy-composable in-memory cache.
// On a miss, a configured producer computes and stores the value;
// entries are then served from memory until they expire or are evicted.
//
// One lock guards all storage mutations and consistency-sensitive reads.
// Producing calls run with the lock released, so a slow or re-entrant
// producer never blocks access to unrelated keys.
type Cache[K comparable, V any] struct {
	mu       sync.RWMutex
	data     *store[K, V]
	policies []policy[K, V]
	cfg      config[K, V]
	stats    Stats
}

// New creates a Cache with the given options.
func New[K comparable, V any](opts ...Option[K, V]) *Cache[K, V] {
	cfg := defaultConfig[K, V]()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Cache[K, V]{
		data: newStore[K, V](),
		cfg:  cfg,
	}
	// Fixed precedence regardless of which options were supplied:
	// liveness is ruled on before any eviction bookkeeping.
	c.policies = []policy[K, V]{
		&expiryPolicy[K, V]{ttl: &c.cfg.expiry},
		newEvictionPolicy[K, V](cfg.strategy),
	}
	return c
}

// Get returns the value for key, producing and storing it on a miss
// (absent or expired). The producing call runs outside the lock; its
// error propagates unchanged and leaves prior state untouched. Under
// concurrent misses on the same key the producer may run more than once
// and the last store wins. Returns ErrNoProducer when a miss occurs and
// no producer is configured.
func (c *Cache[K, V]) Get(ctx context.Context, key K) (V, error) {
	if v, ok := c.lookup(key); ok {
		return v, nil
	}
	return c.produce(ctx, key)
}

// Peek returns the value for key without producing on a miss. Absent and
// expired entries report false; this is never an error. Peek does not
// update access metadata or recency.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero V
	ent, ok := c.data.get(key)
	if !ok || !c.alive(ent, c.cfg.clock.Now()) {
		return zero, false
	}
	return ent.value, true
}

// lookup serves a live entry and updates its access metadata.
func (c *Cache[K, V]) lookup(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	ent, ok := c.data.get(key)
	if !ok || !c.alive(ent, c.cfg.clock.Now()) {
		// Expired entries stay physically present until purged.
		c.stats.miss()
		if c.cfg.onMiss != nil {
			c.cfg.onMiss(key)
		}
		return zero, false
	}

	ent.touch(c.cfg.clock.Now())
	for _, p := range c.policies {
		p.accessed(key)
	}
	c.stats.hit()
	if c.cfg.onHit != nil {
		c.cfg.onHit(key, ent.value)
	}
	return ent.value, true
}

// produce runs the miss pipeline: the producing call executes with the
// lock released, then the result is stored under the lock.
func (c *Cache[K, V]) produce(ctx context.Context, key K) (V, error) {
	var zero V
	switch {
	case c.cfg.bulk != nil:
		batch, err := c.cfg.bulk(ctx, key)
		if err != nil {
			return zero, err
		}
		v, ok := batch[key]
		if !ok {
			return zero, fmt.Errorf("%w: %v", ErrKeyNotInBulkResult, key)
		}
		c.storeBatch(batch)
		c.stats.refresh()
		if c.cfg.logger != nil {
			c.cfg.logger.Debug("bulk refresh", "key", key, "stored", len(batch))
		}
		return v, nil

	case c.cfg.producer != nil:
		v, err := c.cfg.producer(ctx, key)
		if err != nil {
			return zero, err
		}
		c.Set(key, v)
		c.stats.refresh()
		if c.cfg.logger != nil {
			c.cfg.logger.Debug("refresh", "key", key)
		}
		return v, nil

	default:
		return zero, ErrNoProducer
	}
}

// Set inserts or overwrites the entry for key, refreshing its creation
// timestamp, then runs eviction maintenance synchronously.
func (c *Cache[K, V]) Set(key K, value V) {
	c.setWithTTL(key, value, 0)
}

// SetWithTTL stores value with a per-entry time-to-live overriding the
// cache-wide expiry. Zero ttl falls back to the cache-wide value.
func (c *Cache[K, V]) SetWithTTL(key K, value V, ttl time.Duration) {
	c.setWithTTL(key, value, ttl)
}

func (c *Cache[K, V]) setWithTTL(key K, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.set(key, value, ttl, c.cfg.clock.Now())
	c.evictOver()
}

// storeBatch stores every pair from one bulk-producing call under a
// single lock acquisition and a single timestamp, then runs eviction
// maintenance once.
func (c *Cache[K, V]) storeBatch(batch map[K]V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.cfg.clock.Now()
	for k, v := range batch {
		c.set(k, v, 0, now)
	}
	c.evictOver()
}

// set writes one entry. Callers hold the lock.
func (c *Cache[K, V]) set(key K, value V, ttl time.Duration, now time.Time) {
	c.data.set(key, &entry[V]{
		value:      value,
		createdAt:  now,
		accessedAt: now,
		ttl:        ttl,
	})
	for _, p := range c.policies {
		p.stored(key)
	}
}

// evictOver trims the cache back to its maximum size. Eviction is a side
// effect of the store path only; reads never evict. Callers hold the lock.
func (c *Cache[K, V]) evictOver() {
	if c.cfg.maxSize <= 0 {
		return
	}
	over := c.data.len() - c.cfg.maxSize
	if over <= 0 {
		return
	}
	for _, p := range c.policies {
		for _, key := range p.victims(over) {
			c.evict(key)
		}
	}
}

// evict removes one key on behalf of the eviction policy. Callers hold
// the lock.
func (c *Cache[K, V]) evict(key K) {
	ent, ok := c.data.get(key)
	if !ok {
		return
	}
	c.data.delete(key)
	for _, p := range c.policies {
		p.removed(key)
	}
	c.stats.evict()
	if c.cfg.logger != nil {
		c.cfg.logger.Debug("evicted", "key", key)
	}
	if c.cfg.onEvict != nil {
		c.cfg.onEvict(key, ent.value)
	}
}

// Delete removes the entry for key, reporting whether one was present.
// Deleting an absent key is not an error.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.data.delete(key) {
		return false
	}
	for _, p := range c.policies {
		p.removed(key)
	}
	return true
}

// Exists reports whether key is physically present, counting entries
// that have expired but not yet been purged.
func (c *Cache[K, V]) Exists(key K) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.data.get(key)
	return ok
}

// Has reports whether key is present and live under the expiry policy.
func (c *Cache[K, V]) Has(key K) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ent, ok := c.data.get(key)
	return ok && c.alive(ent, c.cfg.clock.Now())
}

// Clean scans all entries and removes every expired one, returning the
// count removed. O(n); intended for periodic maintenance.
func (c *Cache[K, V]) Clean() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.cfg.clock.Now()
	removed := 0
	for _, key := range c.data.keys() {
		ent, ok := c.data.get(key)
		if !ok || c.alive(ent, now) {
			continue
		}
		c.data.delete(key)
		for _, p := range c.policies {
			p.removed(key)
		}
		removed++
	}
	c.stats.purge(removed)
	if c.cfg.logger != nil && removed > 0 {
		c.cfg.logger.Debug("clean", "removed", removed)
	}
	return removed
}

// TTL returns the remaining time-to-live for key. Returns 0 when the key
// is absent, expired, or has no expiry configured.
func (c *Cache[K, V]) TTL(key K) time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ent, ok := c.data.get(key)
	if !ok {
		return 0
	}
	return ent.remaining(c.cfg.clock.Now(), c.cfg.expiry)
}

// Expired reports whether key is absent or past its time-to-live.
func (c *Cache[K, V]) Expired(key K) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ent, ok := c.data.get(key)
	if !ok {
		return true
	}
	return !c.alive(ent, c.cfg.clock.Now())
}

// Len returns the number of live entries.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := c.cfg.clock.Now()
	n := 0
	for _, ent := range c.data.entries {
		if c.alive(ent, now) {
			n++
		}
	}
	return n
}

// Keys returns the live keys in insertion order.
func (c *Cache[K, V]) Keys() []K {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := c.cfg.clock.Now()
	keys := make([]K, 0, c.data.len())
	for _, key := range c.data.keys() {
		if ent, ok := c.data.get(key); ok && c.alive(ent, now) {
			keys = append(keys, key)
		}
	}
	return keys
}

// Range calls fn for each live (key, value) pair in insertion order,
// stopping early if fn returns false. Recency is not updated. fn must
// not call back into the cache.
func (c *Cache[K, V]) Range(fn func(key K, value V) bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := c.cfg.clock.Now()
	for _, key := range c.data.keys() {
		ent, ok := c.data.get(key)
		if !ok || !c.alive(ent, now) {
			continue
		}
		if !fn(key, ent.value) {
			return
		}
	}
}

// Clear removes all entries and resets policy bookkeeping. Statistics
// are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data.reset()
	for _, p := range c.policies {
		p.reset()
	}
}

// Expiry returns the current cache-wide expiry.
func (c *Cache[K, V]) Expiry() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg.expiry
}

// SetExpiry changes the cache-wide expiry at runtime. Entry ages are
// evaluated live, so the change applies to existing entries on their
// next read or Clean. Zero disables expiry; negative values are ignored.
func (c *Cache[K, V]) SetExpiry(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d >= 0 {
		c.cfg.expiry = d
	}
}

// MaxSize returns the current entry cap. Zero means unlimited.
func (c *Cache[K, V]) MaxSize() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg.maxSize
}

// SetMaxSize changes the entry cap at runtime, effective on the next
// store. Zero disables the cap; negative values are ignored.
func (c *Cache[K, V]) SetMaxSize(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n >= 0 {
		c.cfg.maxSize = n
	}
}

// EntryInfo is a snapshot of one entry's metadata.
type EntryInfo struct {
	CreatedAt      time.Time
	LastAccessedAt time.Time
	AccessCount    int64
	Expired        bool
}

// Info returns a metadata snapshot for key, including entries that have
// expired but not yet been purged. Reports false when key is absent.
func (c *Cache[K, V]) Info(key K) (EntryInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ent, ok := c.data.get(key)
	if !ok {
		return EntryInfo{}, false
	}
	return EntryInfo{
		CreatedAt:      ent.createdAt,
		LastAccessedAt: ent.accessedAt,
		AccessCount:    ent.accessCount,
		Expired:        !c.alive(ent, c.cfg.clock.Now()),
	}, true
}

// Stats returns a point-in-time copy of cache statistics.
func (c *Cache[K, V]) Stats() Snapshot {
	return c.stats.snapshot()
}

// alive applies the policy chain's liveness verdicts. Callers hold the
// lock.
func (c *Cache[K, V]) alive(ent *entry[V], now time.Time) bool {
	for _, p := range c.policies {
		if !p.alive(ent, now) {
			return false
		}
	}
	return true
}
