package hoard

import (
	"log/slog"
	"time"
)

type config[K comparable, V any] struct {
	expiry   time.Duration
	maxSize  int
	strategy Strategy
	clock    Clock
	logger   *slog.Logger
	producer ProducerFunc[K, V]
	bulk     BulkProducerFunc[K, V]
	onHit    func(K, V)
	onMiss   func(K)
	onEvict  func(K, V)
}

func defaultConfig[K comparable, V any]() config[K, V] {
	return config[K, V]{
		strategy: LRU,
		clock:    realClock{},
	}
}

// Option configures a Cache.
type Option[K comparable, V any] func(*config[K, V])

// WithExpiry sets the cache-wide time-to-live for entries. Zero, the
// default, means entries never expire. The value can be changed later
// with SetExpiry.
func WithExpiry[K comparable, V any](d time.Duration) Option[K, V] {
	return func(c *config[K, V]) {
		if d > 0 {
			c.expiry = d
		}
	}
}

// WithMaxSize caps the number of entries. Zero, the default, means
// unlimited. When a store pushes the count over the cap, entries are
// evicted in Strategy order until the count is back at the cap.
func WithMaxSize[K comparable, V any](n int) Option[K, V] {
	return func(c *config[K, V]) {
		if n > 0 {
			c.maxSize = n
		}
	}
}

// WithStrategy sets the eviction strategy. The default is LRU.
func WithStrategy[K comparable, V any](s Strategy) Option[K, V] {
	return func(c *config[K, V]) {
		c.strategy = s
	}
}

// WithClock sets a custom clock. Useful for testing expiry behavior.
func WithClock[K comparable, V any](clk Clock) Option[K, V] {
	return func(c *config[K, V]) {
		if clk != nil {
			c.clock = clk
		}
	}
}

// WithLogger sets a logger for debug-level refresh, eviction, and clean
// events. No logger is configured by default.
func WithLogger[K comparable, V any](l *slog.Logger) Option[K, V] {
	return func(c *config[K, V]) {
		c.logger = l
	}
}

// OnHit sets a callback invoked on cache hits, under the cache lock.
func OnHit[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *config[K, V]) {
		c.onHit = fn
	}
}

// OnMiss sets a callback invoked on cache misses, under the cache lock.
func OnMiss[K comparable, V any](fn func(K)) Option[K, V] {
	return func(c *config[K, V]) {
		c.onMiss = fn
	}
}

// OnEvict sets a callback invoked when an entry is evicted, under the
// cache lock.
func OnEvict[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *config[K, V]) {
		c.onEvict = fn
	}
}
