package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps buckets in process memory. Counts are not shared between
// instances.
type MemoryStore struct {
	mu      sync.RWMutex
	buckets map[string]Bucket
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{buckets: make(map[string]Bucket)}
}

func (s *MemoryStore) Increment(_ context.Context, key string, now time.Time, window time.Duration) (Bucket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.buckets[key]
	if !ok || b.expired(now) {
		b = Bucket{Count: 1, ResetAt: now.Add(window)}
	} else {
		b.Count++
	}

	s.buckets[key] = b
	return b, nil
}

func (s *MemoryStore) Sweep(_ context.Context, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, b := range s.buckets {
		if b.expired(now) {
			delete(s.buckets, key)
		}
	}

	return nil
}

func (s *MemoryStore) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.buckets), nil
}
