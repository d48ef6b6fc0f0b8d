package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestSingleFlight_DeduplicatesConcurrentCalls(t *testing.T) {
	var flight SingleFlight
	var loads atomic.Int32
	release := make(chan struct{})

	var wg sync.WaitGroup
	results := make([]any, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			val, err, _ := flight.Do("key", func() (any, error) {
				loads.Add(1)
				<-release
				return "loaded", nil
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			results[i] = val
		}(i)
	}

	close(release)
	wg.Wait()

	if got := loads.Load(); got != 1 {
		t.Fatalf("expected a single load, got %d", got)
	}
	for i, val := range results {
		if val != "loaded" {
			t.Fatalf("caller %d got %v", i, val)
		}
	}
}

func TestSingleFlight_KeysAreIndependent(t *testing.T) {
	var flight SingleFlight

	a, _, _ := flight.Do("a", func() (any, error) { return 1, nil })
	b, _, _ := flight.Do("b", func() (any, error) { return 2, nil })

	if a != 1 || b != 2 {
		t.Fatalf("unexpected values: a=%v b=%v", a, b)
	}
}
