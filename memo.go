package hoard

import (
	"context"
	"time"
)

// Args2 is the canonical cache key for two-argument memoized functions.
type Args2[A, B comparable] struct {
	A A
	B B
}

// Memo wraps a one-argument function as a callable cache keyed by the
// argument itself. Every cache option (expiry, max size, strategy)
// composes with it, and the container surface of the backing cache stays
// available through the forwarding methods.
type Memo[A comparable, V any] struct {
	cache *Cache[A, V]
}

// Memoize wraps fn so repeated calls with the same argument are served
// from the cache until the entry expires or is evicted. fn should be
// idempotent enough that recomputing a value is acceptable.
func Memoize[A comparable, V any](fn func(A) (V, error), opts ...Option[A, V]) *Memo[A, V] {
	opts = append(opts, WithProducer[A, V](func(_ context.Context, a A) (V, error) {
		return fn(a)
	}))
	return &Memo[A, V]{cache: New(opts...)}
}

// Call invokes the memoized function.
func (m *Memo[A, V]) Call(ctx context.Context, a A) (V, error) {
	return m.cache.Get(ctx, a)
}

func (m *Memo[A, V]) Delete(a A) bool { return m.cache.Delete(a) }

func (m *Memo[A, V]) Exists(a A) bool { return m.cache.Exists(a) }

func (m *Memo[A, V]) Has(a A) bool { return m.cache.Has(a) }

func (m *Memo[A, V]) Expired(a A) bool { return m.cache.Expired(a) }

func (m *Memo[A, V]) TTL(a A) time.Duration { return m.cache.TTL(a) }

func (m *Memo[A, V]) Len() int { return m.cache.Len() }

func (m *Memo[A, V]) Clear() { m.cache.Clear() }

func (m *Memo[A, V]) Stats() Snapshot { return m.cache.Stats() }

// Cache exposes the backing cache for container-style access.
func (m *Memo[A, V]) Cache() *Cache[A, V] { return m.cache }

// Memo2 wraps a two-argument function as a callable cache keyed by the
// canonical argument pair.
type Memo2[A, B comparable, V any] struct {
	cache *Cache[Args2[A, B], V]
}

// Memoize2 wraps a two-argument function. Functions of higher arity can
// be memoized by defining a comparable key struct and using New with
// WithProducer directly.
func Memoize2[A, B comparable, V any](fn func(A, B) (V, error), opts ...Option[Args2[A, B], V]) *Memo2[A, B, V] {
	opts = append(opts, WithProducer[Args2[A, B], V](func(_ context.Context, k Args2[A, B]) (V, error) {
		return fn(k.A, k.B)
	}))
	return &Memo2[A, B, V]{cache: New(opts...)}
}

// Call invokes the memoized function.
func (m *Memo2[A, B, V]) Call(ctx context.Context, a A, b B) (V, error) {
	return m.cache.Get(ctx, Args2[A, B]{A: a, B: b})
}

func (m *Memo2[A, B, V]) Delete(a A, b B) bool { return m.cache.Delete(Args2[A, B]{A: a, B: b}) }

func (m *Memo2[A, B, V]) Exists(a A, b B) bool { return m.cache.Exists(Args2[A, B]{A: a, B: b}) }

func (m *Memo2[A, B, V]) Has(a A, b B) bool { return m.cache.Has(Args2[A, B]{A: a, B: b}) }

func (m *Memo2[A, B, V]) Expired(a A, b B) bool { return m.cache.Expired(Args2[A, B]{A: a, B: b}) }

func (m *Memo2[A, B, V]) TTL(a A, b B) time.Duration { return m.cache.TTL(Args2[A, B]{A: a, B: b}) }

func (m *Memo2[A, B, V]) Len() int { return m.cache.Len() }

func (m *Memo2[A, B, V]) Clear() { m.cache.Clear() }

func (m *Memo2[A, B, V]) Stats() Snapshot { return m.cache.Stats() }

// Cache exposes the backing cache for container-style access.
func (m *Memo2[A, B, V]) Cache() *Cache[Args2[A, B], V] { return m.cache }
