// Package cache provides the in-memory caches used between the HTTP
// handlers and the upstream market-data APIs.
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Snapshot caches the most recent value of a single dataset together with
// the time it was fetched. A value is "fresh" within the configured
// window; after that it is stale but kept around, because the dashboard
// keeps serving the last good dataset when an upstream call fails.
type Snapshot[T any] struct {
	freshFor time.Duration

	mu  sync.RWMutex
	val T
	at  time.Time
	set bool

	group singleflight.Group
}

// NewSnapshot returns an empty snapshot whose values stay fresh for the
// given window.
func NewSnapshot[T any](freshFor time.Duration) *Snapshot[T] {
	return &Snapshot[T]{freshFor: freshFor}
}

// Fresh returns the stored value if it was fetched within the freshness
// window relative to now.
func (s *Snapshot[T]) Fresh(now time.Time) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.set || now.Sub(s.at) >= s.freshFor {
		var zero T
		return zero, false
	}
	return s.val, true
}

// Last returns the stored value regardless of age. Used as the stale
// fallback when a refresh fails.
func (s *Snapshot[T]) Last() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.val, s.set
}

// Store records a freshly fetched value.
func (s *Snapshot[T]) Store(v T, now time.Time) {
	s.mu.Lock()
	s.val = v
	s.at = now
	s.set = true
	s.mu.Unlock()
}

// GetOrRefresh returns the cached value while it is fresh; otherwise it
// runs fetch and stores the result. Concurrent callers refreshing the
// same snapshot collapse into a single upstream call. On fetch failure
// the zero value and the error are returned; callers fall back to Last.
func (s *Snapshot[T]) GetOrRefresh(ctx context.Context, fetch func(ctx context.Context) (T, error)) (T, error) {
	if v, ok := s.Fresh(time.Now()); ok {
		return v, nil
	}

	v, err, _ := s.group.Do("refresh", func() (interface{}, error) {
		// Another caller may have completed the refresh while this one
		// waited to join the flight.
		if v, ok := s.Fresh(time.Now()); ok {
			return v, nil
		}
		fetched, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		s.Store(fetched, time.Now())
		return fetched, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
