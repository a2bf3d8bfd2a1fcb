package ratelimiter

import (
	"sync"
	"time"
)

type bucket struct {
	tokens     int
	lastRefill time.Time
	lastAccess time.Time
}

// memoryStore keeps buckets in a map. Buckets idle for longer than staleAfter
// are dropped on the next sweep.
type memoryStore struct {
	mu         sync.Mutex
	buckets    map[string]*bucket
	staleAfter time.Duration
	lastSweep  time.Time
}

func newMemoryStore(staleAfter time.Duration) *memoryStore {
	return &memoryStore{
		buckets:    make(map[string]*bucket),
		staleAfter: staleAfter,
	}
}

// consume refills the bucket for the intervals elapsed since its last refill
// and takes n tokens. A negative remainder means the request is denied and
// nothing was taken.
func (s *memoryStore) consume(key string, n int, cfg Config, now time.Time) (int, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep(now)

	b, ok := s.buckets[key]
	if !ok {
		b = &bucket{tokens: cfg.Capacity, lastRefill: now}
		s.buckets[key] = b
	}
	b.lastAccess = now

	maxIntervals := int64(cfg.Capacity/cfg.RefillRate + 1)
	intervals := int(min(int64(now.Sub(b.lastRefill)/cfg.RefillInterval), maxIntervals))
	if intervals > 0 {
		b.tokens = min(b.tokens+intervals*cfg.RefillRate, cfg.Capacity)
		b.lastRefill = b.lastRefill.Add(time.Duration(intervals) * cfg.RefillInterval)
		if now.Sub(b.lastRefill) >= cfg.RefillInterval {
			b.lastRefill = now
		}
	}

	remaining := b.tokens - n
	if remaining >= 0 {
		b.tokens = remaining
	}
	return remaining, b.lastRefill.Add(cfg.RefillInterval)
}

func (s *memoryStore) reset(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.buckets, key)
}

func (s *memoryStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buckets)
}

// sweep must be called with mu held.
func (s *memoryStore) sweep(now time.Time) {
	if s.staleAfter <= 0 || now.Sub(s.lastSweep) < s.staleAfter {
		return
	}
	s.lastSweep = now
	for key, b := range s.buckets {
		if now.Sub(b.lastAccess) > s.staleAfter {
			delete(s.buckets, key)
		}
	}
}
