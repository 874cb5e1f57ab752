package hoard

import "container/list"

// store is the cache's storage map: O(1) key lookup plus stable
// insertion-order iteration for the container surface. Overwriting a key
// keeps its original insertion slot; new keys append at the end.
// Callers are responsible for locking.
type store[K comparable, V any] struct {
	entries map[K]*entry[V]
	order   *list.List // insertion order, oldest at front
	index   map[K]*list.Element
}

func newStore[K comparable, V any]() *store[K, V] {
	return &store[K, V]{
		entries: make(map[K]*entry[V]),
		order:   list.New(),
		index:   make(map[K]*list.Element),
	}
}

func (s *store[K, V]) get(key K) (*entry[V], bool) {
	ent, ok := s.entries[key]
	return ent, ok
}

func (s *store[K, V]) set(key K, ent *entry[V]) {
	if _, ok := s.entries[key]; ok {
		s.entries[key] = ent
		return
	}
	s.entries[key] = ent
	s.index[key] = s.order.PushBack(key)
}

func (s *store[K, V]) delete(key K) bool {
	if _, ok := s.entries[key]; !ok {
		return false
	}
	delete(s.entries, key)
	s.order.Remove(s.index[key])
	delete(s.index, key)
	return true
}

func (s *store[K, V]) len() int {
	return len(s.entries)
}

// keys returns every physically present key in insertion order.
func (s *store[K, V]) keys() []K {
	out := make([]K, 0, s.order.Len())
	for el := s.order.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(K))
	}
	return out
}

func (s *store[K, V]) reset() {
	s.entries = make(map[K]*entry[V])
	s.order = list.New()
	s.index = make(map[K]*list.Element)
}
