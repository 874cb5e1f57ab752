package hoard

import (
	"context"
	"errors"
)

// ErrNoProducer is returned by Get when a miss occurs and the cache was
// built without a producer or bulk producer.
var ErrNoProducer = errors.New("hoard: no producer configured")

// ErrKeyNotInBulkResult is returned when a bulk producer's result does
// not contain the key that triggered the refresh. It signals a contract
// violation by the bulk producer, distinct from a producer failure, and
// nothing is stored when it occurs.
var ErrKeyNotInBulkResult = errors.New("hoard: bulk result missing requested key")

// ProducerFunc computes the value for a single key on a cache miss.
// It runs with the cache lock released, so it may take as long as it
// needs and may even re-enter the cache without deadlocking. An error
// propagates unchanged to the Get caller and nothing is stored.
type ProducerFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

// BulkProducerFunc repopulates many keys from one producing call,
// amortizing expensive batch fetches across many misses. The result must
// contain the key that triggered the refresh; every returned pair is
// stored. Like ProducerFunc it runs with the cache lock released.
type BulkProducerFunc[K comparable, V any] func(ctx context.Context, key K) (map[K]V, error)

// WithProducer sets the function called on a miss to compute the value
// for the requested key.
func WithProducer[K comparable, V any](fn ProducerFunc[K, V]) Option[K, V] {
	return func(c *config[K, V]) {
		c.producer = fn
	}
}

// WithBulkProducer sets the function called on a miss to repopulate many
// keys at once. When both a producer and a bulk producer are configured,
// the bulk producer wins.
func WithBulkProducer[K comparable, V any](fn BulkProducerFunc[K, V]) Option[K, V] {
	return func(c *config[K, V]) {
		c.bulk = fn
	}
}
