package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewStore(time.Minute)

	store.Set(ctx, "k", "v")
	if got, ok := store.Get(ctx, "k"); !ok || got != "v" {
		t.Fatalf("get after set: %v %v", got, ok)
	}

	store.Delete(ctx, "k")
	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatal("get after delete must miss")
	}
}

func TestStore_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewStore(10 * time.Millisecond)

	store.Set(ctx, "k", "v")
	time.Sleep(20 * time.Millisecond)

	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatal("expired entry must miss")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	ctx := context.Background()
	store := NewStore(time.Minute)

	store.Set(ctx, "drills:club-1:a", 1)
	store.Set(ctx, "drills:club-1:b", 2)
	store.Set(ctx, "drills:club-2:a", 3)

	store.DeletePrefix(ctx, "drills:club-1:")

	if _, ok := store.Get(ctx, "drills:club-1:a"); ok {
		t.Fatal("prefixed key survived invalidation")
	}
	if _, ok := store.Get(ctx, "drills:club-2:a"); !ok {
		t.Fatal("unrelated key was invalidated")
	}
}

func TestStore_GetOrLoadSingleLoad(t *testing.T) {
	ctx := context.Background()
	store := NewStore(time.Minute)
	var loads atomic.Int32

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := store.GetOrLoad(ctx, "k", func(context.Context) (any, error) {
				loads.Add(1)
				time.Sleep(5 * time.Millisecond)
				return "loaded", nil
			})
			if err != nil || got != "loaded" {
				t.Errorf("unexpected result: %v %v", got, err)
			}
		}()
	}
	wg.Wait()

	if got := loads.Load(); got != 1 {
		t.Fatalf("expected one load, got %d", got)
	}
}

func TestStore_GetOrLoadErrorNotCached(t *testing.T) {
	ctx := context.Background()
	store := NewStore(time.Minute)
	sentinel := errors.New("load failed")

	if _, err := store.GetOrLoad(ctx, "k", func(context.Context) (any, error) {
		return nil, sentinel
	}); !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel, got %v", err)
	}

	got, err := store.GetOrLoad(ctx, "k", func(context.Context) (any, error) {
		return "ok", nil
	})
	if err != nil || got != "ok" {
		t.Fatalf("failed load must not be cached: %v %v", got, err)
	}
}
