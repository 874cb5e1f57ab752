// Package hoard provides a generic, thread-safe, policy-composable cache
// and memoization core.
//
// # Overview
//
// A Cache serves values from memory; on a miss a pluggable producer
// computes and stores the value, and subsequent reads hit memory until
// the entry expires or is evicted. Expiry, count-based eviction, and
// bulk refresh are independent policies that layer onto the same core in
// a fixed precedence order, so any combination behaves the same way.
//
// # Basic Usage
//
// Create a cache and perform basic operations:
//
//	cache := hoard.New[string, int](
//		hoard.WithMaxSize[string, int](1000),
//		hoard.WithExpiry[string, int](5*time.Minute),
//	)
//
//	cache.Set("answer", 42)
//
//	if v, ok := cache.Peek("answer"); ok {
//		fmt.Println(v)
//	}
//
//	cache.Delete("answer")
//
// # Producing Values on Miss
//
// Configure a producer and use Get; the producer runs with the cache
// lock released, so it can be slow or re-enter the cache safely:
//
//	cache := hoard.New[string, *User](
//		hoard.WithProducer(func(ctx context.Context, id string) (*User, error) {
//			return db.GetUser(ctx, id)
//		}),
//	)
//
//	user, err := cache.Get(ctx, "user:123")
//
// Under concurrent misses on the same key the producer may run more than
// once; the last store wins. Use Peek to read without producing.
//
// # Bulk Refresh
//
// When one producing call can service many keys (a batch query, a file,
// an FTP listing), configure a bulk producer instead. A miss triggers
// one call, every returned pair is stored, and the requested key's value
// is returned. The result must contain the requested key.
//
//	cache := hoard.New[int, string](
//		hoard.WithBulkProducer(func(ctx context.Context, key int) (map[int]string, error) {
//			return fetchBatchContaining(ctx, key)
//		}),
//	)
//
// Combined with expiry, a full refresh happens only when the requested
// key is missing or expired, not on every call.
//
// # Expiry
//
// Entries expire a fixed duration after they were stored. The duration
// is evaluated live, so changing it with SetExpiry affects existing
// entries on their next read or Clean. Expired entries stay physically
// present (Exists reports them) until purged by Clean or overwritten;
// Get treats them like misses.
//
// # Eviction
//
// WithMaxSize caps the number of entries. Eviction runs synchronously
// after every store, never during a read; reads only update recency.
// Three strategies are available: LRU (default), LFU, and FIFO.
//
//	cache := hoard.New[string, int](
//		hoard.WithMaxSize[string, int](128),
//		hoard.WithStrategy[string, int](hoard.FIFO),
//	)
//
// # Memoization
//
// Memoize and Memoize2 wrap plain functions as callable caches keyed by
// the argument tuple. The wrapped function keeps the full cache surface
// (Delete, Exists, TTL, Len) addressed by the same arguments:
//
//	add := hoard.Memoize2(func(x, y int) (int, error) { return x + y, nil })
//
//	sum, err := add.Call(ctx, 1, 2) // computes
//	sum, err = add.Call(ctx, 1, 2)  // cached
//	add.Delete(1, 2)                // forget one result
//
// # Testing
//
// Inject a clock to control expiry in tests:
//
//	clock := &fakeClock{now: time.Now()}
//	cache := hoard.New[string, int](
//		hoard.WithExpiry[string, int](time.Minute),
//		hoard.WithClock[string, int](clock),
//	)
//
// # Thread Safety
//
// All methods are safe for concurrent use. Each cache owns a single
// sync.RWMutex; critical sections are bounded and never include the
// producing call.
package hoard
