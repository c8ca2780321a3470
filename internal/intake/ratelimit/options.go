package ratelimit

import "time"

// Option applies a configuration option to the limiter.
type Option func(*inMemoryLimiter)

// WithMaxPerDay sets the per-email daily submission cap.
func WithMaxPerDay(n int) Option {
	return func(l *inMemoryLimiter) {
		if n > 0 {
			l.maxPerDay = n
		}
	}
}

// WithRetention sets how long day buckets are kept.
func WithRetention(d time.Duration) Option {
	return func(l *inMemoryLimiter) {
		if d > 0 {
			l.retention = d
		}
	}
}

// WithClock overrides the time source, used in tests.
func WithClock(now func() time.Time) Option {
	return func(l *inMemoryLimiter) {
		if now != nil {
			l.now = now
		}
	}
}
