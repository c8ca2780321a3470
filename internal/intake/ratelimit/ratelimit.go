// Package ratelimit caps intake submissions per email per calendar day.
package ratelimit

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Limiter tracks submissions and enforces the per-day cap.
type Limiter interface {
	// AllowAndRecord atomically checks whether email may submit today and
	// records the submission if so. Returns false when the cap is hit.
	AllowAndRecord(ctx context.Context, email string) bool

	// Remaining reports how many submissions email has left today.
	Remaining(ctx context.Context, email string) int

	Size() int
}

// inMemoryLimiter implements Limiter with day-bucketed counters. Buckets
// older than the retention window are dropped on write.
type inMemoryLimiter struct {
	mu        sync.Mutex
	counts    map[string]map[string]int // email -> day -> submissions
	maxPerDay int
	retention time.Duration
	now       func() time.Time
	lastSweep time.Time
}

// New creates an in-memory limiter with configuration options.
func New(opts ...Option) Limiter {
	l := &inMemoryLimiter{
		counts:    make(map[string]map[string]int),
		maxPerDay: 5,
		retention: 7 * 24 * time.Hour,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *inMemoryLimiter) day() string {
	return l.now().Format("2006-01-02")
}

func (l *inMemoryLimiter) AllowAndRecord(ctx context.Context, email string) bool {
	key := strings.ToLower(strings.TrimSpace(email))
	day := l.day()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweepLocked()

	days, ok := l.counts[key]
	if !ok {
		days = make(map[string]int)
		l.counts[key] = days
	}
	if days[day] >= l.maxPerDay {
		return false
	}
	days[day]++
	return true
}

func (l *inMemoryLimiter) Remaining(ctx context.Context, email string) int {
	key := strings.ToLower(strings.TrimSpace(email))

	l.mu.Lock()
	defer l.mu.Unlock()

	left := l.maxPerDay - l.counts[key][l.day()]
	if left < 0 {
		return 0
	}
	return left
}

func (l *inMemoryLimiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.counts)
}

// sweepLocked drops day buckets past the retention window. Runs at most
// once per hour; callers hold the mutex.
func (l *inMemoryLimiter) sweepLocked() {
	now := l.now()
	if now.Sub(l.lastSweep) < time.Hour && !l.lastSweep.IsZero() {
		return
	}
	l.lastSweep = now
	cutoff := now.Add(-l.retention).Format("2006-01-02")
	for email, days := range l.counts {
		for day := range days {
			if day < cutoff {
				delete(days, day)
			}
		}
		if len(days) == 0 {
			delete(l.counts, email)
		}
	}
}
