package hoard

import (
	"container/list"
	"time"
)

// Strategy selects the order entries are evicted in when the cache
// exceeds its maximum size.
type Strategy int

const (
	// LRU evicts the least recently accessed entry first.
	LRU Strategy = iota
	// LFU evicts the least frequently accessed entry first.
	LFU
	// FIFO evicts the oldest inserted entry first.
	FIFO
)

// policy is the hook surface the cache consults at fixed lifecycle
// points. The chain order is configuration-independent: the expiry
// policy rules on liveness before the eviction policy does any
// bookkeeping. Every hook runs under the cache lock, so implementations
// must not block or re-enter the cache.
type policy[K comparable, V any] interface {
	// alive reports whether the entry may still be served.
	alive(ent *entry[V], now time.Time) bool
	// accessed runs after a successful read of key.
	accessed(key K)
	// stored runs after key is inserted or overwritten.
	stored(key K)
	// removed runs when key leaves the storage map for any reason.
	removed(key K)
	// reset runs when the cache is cleared.
	reset()
	// victims nominates up to n keys to evict, best candidate first.
	victims(n int) []K
}

// nopPolicy supplies cooperative defaults so each policy overrides only
// the hooks it needs.
type nopPolicy[K comparable, V any] struct{}

func (nopPolicy[K, V]) alive(*entry[V], time.Time) bool { return true }

func (nopPolicy[K, V]) accessed(K) {}

func (nopPolicy[K, V]) stored(K) {}

func (nopPolicy[K, V]) removed(K) {}

func (nopPolicy[K, V]) reset() {}

func (nopPolicy[K, V]) victims(int) []K { return nil }

// expiryPolicy rules on liveness from entry age. It reads the expiry
// through a pointer so SetExpiry takes effect without rebuilding the
// chain; the formula is always evaluated live.
type expiryPolicy[K comparable, V any] struct {
	nopPolicy[K, V]
	ttl *time.Duration
}

func (p *expiryPolicy[K, V]) alive(ent *entry[V], now time.Time) bool {
	return !ent.expired(now, *p.ttl)
}

// evictionPolicy tracks access and insertion order so the cache can trim
// itself after a store. It never rules on liveness and never evicts on
// the read path.
type evictionPolicy[K comparable, V any] struct {
	nopPolicy[K, V]
	strategy Strategy
	ev       evictor[K]
}

func newEvictionPolicy[K comparable, V any](strategy Strategy) *evictionPolicy[K, V] {
	return &evictionPolicy[K, V]{
		strategy: strategy,
		ev:       newEvictor[K](strategy),
	}
}

func (p *evictionPolicy[K, V]) accessed(key K) { p.ev.onAccess(key) }

func (p *evictionPolicy[K, V]) stored(key K) { p.ev.onInsert(key) }

func (p *evictionPolicy[K, V]) removed(key K) { p.ev.remove(key) }

func (p *evictionPolicy[K, V]) reset() { p.ev = newEvictor[K](p.strategy) }

func (p *evictionPolicy[K, V]) victims(n int) []K {
	keys := make([]K, 0, n)
	for i := 0; i < n; i++ {
		key, ok := p.ev.evict()
		if !ok {
			break
		}
		keys = append(keys, key)
	}
	return keys
}

// evictor maintains the eviction order for one strategy.
type evictor[K comparable] interface {
	onAccess(key K)
	onInsert(key K)
	evict() (K, bool)
	remove(key K)
}

// Compile-time interface assertions.
var (
	_ evictor[string] = (*lruEvictor[string])(nil)
	_ evictor[string] = (*lfuEvictor[string])(nil)
	_ evictor[string] = (*fifoEvictor[string])(nil)
)

func newEvictor[K comparable](s Strategy) evictor[K] {
	switch s {
	case LFU:
		return newLFUEvictor[K]()
	case FIFO:
		return newFIFOEvictor[K]()
	default:
		return newLRUEvictor[K]()
	}
}

// lruEvictor keeps a recency list; the back of the list is the least
// recently touched key. Entries touched at the same instant keep their
// relative insertion order, so eviction order is deterministic.
type lruEvictor[K comparable] struct {
	order *list.List
	items map[K]*list.Element
}

func newLRUEvictor[K comparable]() *lruEvictor[K] {
	return &lruEvictor[K]{
		order: list.New(),
		items: make(map[K]*list.Element),
	}
}

func (e *lruEvictor[K]) onAccess(key K) {
	if elem, ok := e.items[key]; ok {
		e.order.MoveToFront(elem)
	}
}

func (e *lruEvictor[K]) onInsert(key K) {
	if elem, ok := e.items[key]; ok {
		e.order.MoveToFront(elem)
		return
	}
	e.items[key] = e.order.PushFront(key)
}

func (e *lruEvictor[K]) evict() (K, bool) {
	elem := e.order.Back()
	if elem == nil {
		var zero K
		return zero, false
	}
	key := elem.Value.(K)
	e.order.Remove(elem)
	delete(e.items, key)
	return key, true
}

func (e *lruEvictor[K]) remove(key K) {
	if elem, ok := e.items[key]; ok {
		e.order.Remove(elem)
		delete(e.items, key)
	}
}

// lfuEvictor keeps frequency buckets; ties within a bucket evict in
// ascending insertion order.
type lfuEvictor[K comparable] struct {
	freqs   map[int64]*list.List
	items   map[K]*list.Element
	keyFreq map[K]int64
	minFreq int64
}

func newLFUEvictor[K comparable]() *lfuEvictor[K] {
	return &lfuEvictor[K]{
		freqs:   make(map[int64]*list.List),
		items:   make(map[K]*list.Element),
		keyFreq: make(map[K]int64),
	}
}

func (e *lfuEvictor[K]) onAccess(key K) {
	freq, ok := e.keyFreq[key]
	if !ok {
		return
	}

	elem := e.items[key]
	e.freqs[freq].Remove(elem)
	if e.freqs[freq].Len() == 0 {
		delete(e.freqs, freq)
		if e.minFreq == freq {
			e.minFreq++
		}
	}

	freq++
	e.keyFreq[key] = freq
	if e.freqs[freq] == nil {
		e.freqs[freq] = list.New()
	}
	e.items[key] = e.freqs[freq].PushFront(key)
}

func (e *lfuEvictor[K]) onInsert(key K) {
	if _, ok := e.keyFreq[key]; ok {
		e.onAccess(key)
		return
	}

	e.keyFreq[key] = 1
	if e.freqs[1] == nil {
		e.freqs[1] = list.New()
	}
	e.items[key] = e.freqs[1].PushFront(key)
	e.minFreq = 1
}

func (e *lfuEvictor[K]) evict() (K, bool) {
	if len(e.keyFreq) == 0 {
		var zero K
		return zero, false
	}

	freqList := e.freqs[e.minFreq]
	elem := freqList.Back()
	key := elem.Value.(K)

	freqList.Remove(elem)
	delete(e.items, key)
	delete(e.keyFreq, key)
	if freqList.Len() == 0 {
		delete(e.freqs, e.minFreq)
		e.advanceMinFreq()
	}

	return key, true
}

// advanceMinFreq repoints minFreq after the minimum bucket drains.
// Buckets only exist at or above minFreq, so the scan moves upward and
// terminates at the lowest surviving bucket.
func (e *lfuEvictor[K]) advanceMinFreq() {
	if len(e.keyFreq) == 0 {
		e.minFreq = 0
		return
	}
	for e.freqs[e.minFreq] == nil {
		e.minFreq++
	}
}

func (e *lfuEvictor[K]) remove(key K) {
	freq, ok := e.keyFreq[key]
	if !ok {
		return
	}

	elem := e.items[key]
	e.freqs[freq].Remove(elem)
	delete(e.items, key)
	delete(e.keyFreq, key)
	if e.freqs[freq].Len() == 0 {
		delete(e.freqs, freq)
		if freq == e.minFreq {
			e.advanceMinFreq()
		}
	}
}

// fifoEvictor evicts in insertion order; access never reorders.
type fifoEvictor[K comparable] struct {
	order *list.List
	items map[K]*list.Element
}

func newFIFOEvictor[K comparable]() *fifoEvictor[K] {
	return &fifoEvictor[K]{
		order: list.New(),
		items: make(map[K]*list.Element),
	}
}

func (e *fifoEvictor[K]) onAccess(key K) {}

func (e *fifoEvictor[K]) onInsert(key K) {
	if _, ok := e.items[key]; ok {
		return // overwrites keep their original slot
	}
	e.items[key] = e.order.PushFront(key)
}

func (e *fifoEvictor[K]) evict() (K, bool) {
	elem := e.order.Back()
	if elem == nil {
		var zero K
		return zero, false
	}
	key := elem.Value.(K)
	e.order.Remove(elem)
	delete(e.items, key)
	return key, true
}

func (e *fifoEvictor[K]) remove(key K) {
	if elem, ok := e.items[key]; ok {
		e.order.Remove(elem)
		delete(e.items, key)
	}
}
