package hoard

import "time"

// entry is a single stored record. The cache owns its entries; values
// handed back to callers are shared by reference, not copied.
type entry[V any] struct {
	value       V
	createdAt   time.Time
	accessedAt  time.Time
	accessCount int64
	ttl         time.Duration // per-entry override; zero means use the cache-wide expiry
}

// effectiveTTL resolves the per-entry override against the cache-wide
// expiry. Zero means the entry never expires.
func (e *entry[V]) effectiveTTL(cacheTTL time.Duration) time.Duration {
	if e.ttl > 0 {
		return e.ttl
	}
	return cacheTTL
}

// expired is evaluated live from createdAt, so mutating the cache-wide
// expiry affects existing entries on their next read.
func (e *entry[V]) expired(now time.Time, cacheTTL time.Duration) bool {
	ttl := e.effectiveTTL(cacheTTL)
	if ttl <= 0 {
		return false
	}
	return now.Sub(e.createdAt) >= ttl
}

// remaining returns the time left before expiry, 0 when already expired
// or when no expiry applies.
func (e *entry[V]) remaining(now time.Time, cacheTTL time.Duration) time.Duration {
	ttl := e.effectiveTTL(cacheTTL)
	if ttl <= 0 {
		return 0
	}
	left := ttl - now.Sub(e.createdAt)
	if left < 0 {
		return 0
	}
	return left
}

func (e *entry[V]) touch(now time.Time) {
	e.accessedAt = now
	e.accessCount++
}
