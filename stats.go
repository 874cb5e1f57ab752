package hoard

import "sync/atomic"

// Stats holds cache counters using atomics so hooks and snapshots never
// contend with the cache lock.
type Stats struct {
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
	purged    atomic.Int64
	refreshes atomic.Int64
}

func (s *Stats) hit() { s.hits.Add(1) }

func (s *Stats) miss() { s.misses.Add(1) }

func (s *Stats) evict() { s.evictions.Add(1) }

func (s *Stats) purge(n int) { s.purged.Add(int64(n)) }

func (s *Stats) refresh() { s.refreshes.Add(1) }

// Snapshot is a point-in-time copy of cache statistics.
type Snapshot struct {
	Hits      int64 // reads served from a live entry
	Misses    int64 // reads that found no live entry
	Evictions int64 // entries removed by the eviction policy
	Purged    int64 // expired entries removed by Clean
	Refreshes int64 // producing calls whose result was stored
}

// HitRate returns the hit rate as a value between 0 and 1.
// Returns 0 if there have been no accesses.
func (s Snapshot) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

func (s *Stats) snapshot() Snapshot {
	return Snapshot{
		Hits:      s.hits.Load(),
		Misses:    s.misses.Load(),
		Evictions: s.evictions.Load(),
		Purged:    s.purged.Load(),
		Refreshes: s.refreshes.Load(),
	}
}
