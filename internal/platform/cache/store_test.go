package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_DeduplicatesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var loads atomic.Int32

	loader := func(context.Context) (any, error) {
		loads.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "club-season-club-1", nil
	}

	const readers = 24
	gate := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(readers)
	failures := make(chan error, readers)

	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			<-gate
			v, err := store.GetOrLoad(context.Background(), "season:club-1", loader)
			if err != nil {
				failures <- err
				return
			}
			if got, _ := v.(string); got != "club-season-club-1" {
				failures <- fmt.Errorf("unexpected loaded value: %v", v)
			}
		}()
	}

	close(gate)
	wg.Wait()
	close(failures)
	for err := range failures {
		t.Fatalf("GetOrLoad failed: %v", err)
	}

	if got := loads.Load(); got != 1 {
		t.Fatalf("loader ran %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_ServesCachedValue(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var loads atomic.Int32

	loader := func(context.Context) (any, error) {
		loads.Add(1)
		return "stats", nil
	}

	for i := 0; i < 3; i++ {
		v, err := store.GetOrLoad(context.Background(), "stats:mtch-1", loader)
		if err != nil {
			t.Fatalf("GetOrLoad call %d failed: %v", i, err)
		}
		if v != "stats" {
			t.Fatalf("GetOrLoad call %d returned %v", i, v)
		}
	}

	if got := loads.Load(); got != 1 {
		t.Fatalf("loader ran %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_LoaderErrorIsNotCached(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	wantErr := errors.New("store unavailable")
	var loads atomic.Int32

	failing := func(context.Context) (any, error) {
		loads.Add(1)
		return nil, wantErr
	}

	if _, err := store.GetOrLoad(context.Background(), "k", failing); !errors.Is(err, wantErr) {
		t.Fatalf("expected loader error, got %v", err)
	}

	v, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (any, error) {
		loads.Add(1)
		return "recovered", nil
	})
	if err != nil {
		t.Fatalf("retry after error failed: %v", err)
	}
	if v != "recovered" {
		t.Fatalf("unexpected value after retry: %v", v)
	}
	if got := loads.Load(); got != 2 {
		t.Fatalf("loader ran %d times, want 2", got)
	}
}

func TestStore_DeletePrefixEvictsMatchingKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	store.Set(ctx, "match:mtch-1:stats", 1)
	store.Set(ctx, "match:mtch-1:goals", 2)
	store.Set(ctx, "season:club-1", 3)

	store.DeletePrefix(ctx, "match:mtch-1")

	if _, ok := store.Get(ctx, "match:mtch-1:stats"); ok {
		t.Fatal("expected match stats entry to be evicted")
	}
	if _, ok := store.Get(ctx, "match:mtch-1:goals"); ok {
		t.Fatal("expected match goals entry to be evicted")
	}
	if v, ok := store.Get(ctx, "season:club-1"); !ok || v != 3 {
		t.Fatal("expected season entry to survive prefix eviction")
	}
}

func TestStore_ZeroTTLBypassesCaching(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	ctx := context.Background()

	store.Set(ctx, "k", "v")
	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatal("expected zero TTL store to skip caching")
	}

	var loads atomic.Int32
	loader := func(context.Context) (any, error) {
		loads.Add(1)
		return "fresh", nil
	}
	for i := 0; i < 2; i++ {
		v, err := store.GetOrLoad(ctx, "k", loader)
		if err != nil {
			t.Fatalf("GetOrLoad call %d failed: %v", i, err)
		}
		if v != "fresh" {
			t.Fatalf("GetOrLoad call %d returned %v", i, v)
		}
	}
	if got := loads.Load(); got != 2 {
		t.Fatalf("loader ran %d times, want 2", got)
	}
}
