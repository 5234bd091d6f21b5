// Package ratelimit bounds how many itineraries a client can request per window.
//
// State lives in process memory only. Every replica keeps its own counters, so
// the "N requests per window" guarantee holds per instance.
package ratelimit

import (
	"errors"
	"sync"
	"time"
)

const (
	DefaultLimit         = 5
	DefaultWindow        = 24 * time.Hour
	DefaultHighWaterMark = 10000
)

// ErrLimitExceeded is reported when a client has used up its quota.
var ErrLimitExceeded = errors.New("rate limit exceeded")

// RateRecord is the per-key counter.
type RateRecord struct {
	Count   int
	ResetAt time.Time
}

// Decision is the outcome of a single Check.
type Decision struct {
	Allowed   bool
	Remaining int
	Limit     int
	ResetAt   time.Time
}

// RetryAfter is the time left until the window resets, never negative.
func (d Decision) RetryAfter(now time.Time) time.Duration {
	if d.ResetAt.Before(now) {
		return 0
	}
	return d.ResetAt.Sub(now)
}

// Limiter is the gate in front of itinerary generation.
type Limiter interface {
	Check(key string) Decision
	CheckAt(key string, now time.Time) Decision
	Limit() int
	Window() time.Duration
}

// Ensure implementation satisfies the interface
var _ Limiter = (*FixedWindowLimiter)(nil)

// FixedWindowLimiter counts requests per key in a window that starts at the
// key's first request. Expired records are swept lazily once the number of
// tracked keys goes over the high-water mark.
type FixedWindowLimiter struct {
	mu            sync.Mutex
	store         Store
	limit         int
	window        time.Duration
	highWaterMark int
	now           func() time.Time
}

type Option func(*FixedWindowLimiter)

// WithStore swaps the backing store. The default is an in-memory map.
func WithStore(s Store) Option {
	return func(l *FixedWindowLimiter) {
		if s != nil {
			l.store = s
		}
	}
}

func WithHighWaterMark(n int) Option {
	return func(l *FixedWindowLimiter) {
		if n > 0 {
			l.highWaterMark = n
		}
	}
}

// WithClock replaces time.Now for Check.
func WithClock(now func() time.Time) Option {
	return func(l *FixedWindowLimiter) {
		if now != nil {
			l.now = now
		}
	}
}

// NewFixedWindowLimiter creates a limiter allowing limit requests per window.
// Non-positive values fall back to the defaults.
func NewFixedWindowLimiter(limit int, window time.Duration, opts ...Option) *FixedWindowLimiter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}
	l := &FixedWindowLimiter{
		store:         NewMemoryStore(),
		limit:         limit,
		window:        window,
		highWaterMark: DefaultHighWaterMark,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *FixedWindowLimiter) Limit() int            { return l.limit }
func (l *FixedWindowLimiter) Window() time.Duration { return l.window }

func (l *FixedWindowLimiter) Check(key string) Decision {
	return l.CheckAt(key, l.now())
}

// CheckAt records a request for key at now and reports whether it is allowed.
// A rejected request does not touch the stored record.
func (l *FixedWindowLimiter) CheckAt(key string, now time.Time) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.store.Len() > l.highWaterMark {
		l.store.DeleteExpired(now)
	}

	rec, ok := l.store.Get(key)
	if !ok || now.After(rec.ResetAt) {
		rec = RateRecord{Count: 1, ResetAt: now.Add(l.window)}
		l.store.Set(key, rec)
		return Decision{Allowed: true, Remaining: l.limit - 1, Limit: l.limit, ResetAt: rec.ResetAt}
	}

	if rec.Count >= l.limit {
		return Decision{Allowed: false, Remaining: 0, Limit: l.limit, ResetAt: rec.ResetAt}
	}

	rec.Count++
	l.store.Set(key, rec)
	return Decision{Allowed: true, Remaining: l.limit - rec.Count, Limit: l.limit, ResetAt: rec.ResetAt}
}
