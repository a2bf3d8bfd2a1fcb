package webhook

import (
	"net/http"
	"time"
)

type Option func(*Sender)

// WithSecret signs every payload with HMAC-SHA256.
func WithSecret(secret string) Option {
	return func(s *Sender) { s.secret = secret }
}

// WithMaxRetries sets how many times a failed delivery is retried.
func WithMaxRetries(n int) Option {
	return func(s *Sender) {
		if n >= 0 {
			s.maxRetries = n
		}
	}
}

// WithBackoff sets the first retry delay and the cap it doubles up to.
func WithBackoff(initial, maxDelay time.Duration) Option {
	return func(s *Sender) {
		if initial >= 0 && maxDelay >= initial {
			s.initialDelay = initial
			s.maxDelay = maxDelay
		}
	}
}

// WithTimeout bounds each attempt.
func WithTimeout(d time.Duration) Option {
	return func(s *Sender) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithHTTPClient(c *http.Client) Option {
	return func(s *Sender) {
		if c != nil {
			s.client = c
		}
	}
}

// WithHeader adds a static header to every request.
func WithHeader(key, value string) Option {
	return func(s *Sender) { s.headers[key] = value }
}

// WithClock replaces time.Now for signature timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Sender) {
		if now != nil {
			s.now = now
		}
	}
}
