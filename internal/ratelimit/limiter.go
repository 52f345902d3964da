// Package ratelimit implements a fixed-window request limiter for public
// endpoints. It is an abuse deterrent, not a security boundary.
package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// DefaultSweepThreshold is the bucket count above which expired buckets are
// swept on the next check.
const DefaultSweepThreshold = 2000

// Bucket is the state of one key's current window.
type Bucket struct {
	Count   int
	ResetAt time.Time
}

func (b Bucket) expired(now time.Time) bool {
	return !now.Before(b.ResetAt)
}

// Store keeps buckets. Implementations must be safe for concurrent use and
// Increment must be atomic per key.
type Store interface {
	// Increment counts one hit on key and returns the bucket after it. A
	// missing or expired bucket restarts at 1 and resets at now+window.
	Increment(ctx context.Context, key string, now time.Time, window time.Duration) (Bucket, error)
	Sweep(ctx context.Context, now time.Time) error
	Len(ctx context.Context) (int, error)
}

type Decision struct {
	Allowed bool
	// RetryAfter is the number of whole seconds until the window resets.
	RetryAfter int
}

type Option func(*Limiter)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

func WithSweepThreshold(n int) Option {
	return func(l *Limiter) {
		l.sweepThreshold = n
	}
}

type Limiter struct {
	store          Store
	now            func() time.Time
	sweepThreshold int
}

func New(store Store, opts ...Option) *Limiter {
	l := &Limiter{
		store:          store,
		now:            time.Now,
		sweepThreshold: DefaultSweepThreshold,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Check counts one hit against key. The first hit of a window is always
// allowed and the hit that brings the count to exactly limit is the last
// one allowed.
func (l *Limiter) Check(ctx context.Context, key string, limit int, window time.Duration) (Decision, error) {
	now := l.now()

	if err := l.maybeSweep(ctx, now); err != nil {
		return Decision{}, err
	}

	bucket, err := l.store.Increment(ctx, key, now, window)
	if err != nil {
		return Decision{}, fmt.Errorf("failed to count rate limit hit: %w", err)
	}

	allowed := bucket.Count <= limit

	return Decision{
		Allowed:    allowed,
		RetryAfter: retryAfter(bucket.ResetAt.Sub(now), allowed),
	}, nil
}

func (l *Limiter) maybeSweep(ctx context.Context, now time.Time) error {
	n, err := l.store.Len(ctx)
	if err != nil {
		return fmt.Errorf("failed to count rate limit buckets: %w", err)
	}

	if n <= l.sweepThreshold {
		return nil
	}

	if err := l.store.Sweep(ctx, now); err != nil {
		return fmt.Errorf("failed to sweep rate limit buckets: %w", err)
	}

	return nil
}

func retryAfter(remaining time.Duration, allowed bool) int {
	secs := int((remaining + time.Second - 1) / time.Second)
	if secs < 0 {
		secs = 0
	}
	if !allowed && secs < 1 {
		secs = 1
	}

	return secs
}
