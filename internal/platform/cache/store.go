package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/clubpulse/matchday/internal/platform/resilience"
)

type cachedValue struct {
	value    any
	deadline time.Time
}

func (c cachedValue) expired(now time.Time) bool {
	return !c.deadline.After(now)
}

// Store is an in-process TTL cache with singleflight-protected loading.
type Store struct {
	mu      sync.RWMutex
	byKey   map[string]cachedValue
	ttl     time.Duration
	loaders resilience.SingleFlight
}

// NewStore builds an in-process TTL cache. A non-positive ttl disables
// storage entirely while GetOrLoad keeps deduplicating concurrent loads.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		byKey: make(map[string]cachedValue),
		ttl:   ttl,
	}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" || s.ttl <= 0 {
		return nil, false
	}

	s.mu.RLock()
	cached, ok := s.byKey[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if cached.expired(time.Now()) {
		s.mu.Lock()
		delete(s.byKey, key)
		s.mu.Unlock()
		return nil, false
	}
	return cached.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" || s.ttl <= 0 {
		return
	}

	s.mu.Lock()
	s.byKey[key] = cachedValue{value: value, deadline: time.Now().Add(s.ttl)}
	s.mu.Unlock()
}

func (s *Store) Delete(_ context.Context, key string) {
	if key == "" {
		return
	}

	s.mu.Lock()
	delete(s.byKey, key)
	s.mu.Unlock()
}

func (s *Store) DeletePrefix(_ context.Context, prefix string) {
	if prefix == "" {
		return
	}

	s.mu.Lock()
	for key := range s.byKey {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(s.byKey, key)
		}
	}
	s.mu.Unlock()
}

// GetOrLoad returns the cached value for key or runs loader once across
// concurrent callers. An empty key bypasses caching and deduplication.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	value, err, _ := s.loaders.Do(key, func() (any, error) {
		// A follower that lost the singleflight race may find the
		// leader's freshly stored value here.
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.Set(ctx, key, loaded)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}
