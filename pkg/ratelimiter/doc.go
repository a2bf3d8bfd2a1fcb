// Package ratelimiter throttles registration submissions per client with an
// in-memory token bucket.
//
// # Usage
//
//	limiter, err := ratelimiter.New(ratelimiter.Config{
//		Capacity:       5,
//		RefillRate:     1,
//		RefillInterval: time.Minute,
//	})
//	if err != nil {
//		return err
//	}
//	r.With(ratelimiter.Middleware(limiter, ratelimiter.ByClientIP, nil)).Post("/register", h)
//
// Config carries env tags (RATE_LIMIT_CAPACITY, RATE_LIMIT_REFILL_RATE,
// RATE_LIMIT_REFILL_INTERVAL) so it can be loaded with pkg/config.
//
// Buckets live in process memory and are dropped after an hour without use
// (WithStaleAfter). Replicas each keep their own buckets.
//
// # Error Handling
//
// New returns ErrInvalidConfig for non-positive settings; AllowN returns
// ErrInvalidTokenCount for n <= 0.
package ratelimiter
