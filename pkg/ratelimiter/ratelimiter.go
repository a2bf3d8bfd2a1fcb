package ratelimiter

import (
	"fmt"
	"time"
)

// Limiter is an in-memory token bucket limiter keyed by caller.
type Limiter struct {
	cfg   Config
	store *memoryStore
	now   func() time.Time
}

type Option func(*Limiter)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		if now != nil {
			l.now = now
		}
	}
}

// WithStaleAfter drops buckets unused for d. Zero keeps them forever.
func WithStaleAfter(d time.Duration) Option {
	return func(l *Limiter) {
		l.store.staleAfter = d
	}
}

func New(cfg Config, opts ...Option) (*Limiter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	l := &Limiter{
		cfg:   cfg,
		store: newMemoryStore(time.Hour),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

func (l *Limiter) Allow(key string) Result {
	res, _ := l.AllowN(key, 1)
	return res
}

// AllowN takes n tokens from key's bucket.
func (l *Limiter) AllowN(key string, n int) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: must be positive, got %d", ErrInvalidTokenCount, n)
	}

	now := l.now()
	remaining, resetAt := l.store.consume(key, n, l.cfg, now)
	res := Result{
		Limit:     l.cfg.Capacity,
		Remaining: remaining,
		ResetAt:   resetAt,
	}
	if !res.Allowed() {
		res.RetryAfter = max(resetAt.Sub(now), 0)
	}
	return res, nil
}

// Reset forgets key's bucket.
func (l *Limiter) Reset(key string) {
	l.store.reset(key)
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	return l.store.len()
}
