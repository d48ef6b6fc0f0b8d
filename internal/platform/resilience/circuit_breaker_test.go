package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	b := NewCircuitBreaker(2, time.Minute, 1)

	if err := b.Allow(); err != nil {
		t.Fatalf("closed breaker must allow: %v", err)
	}
	b.RecordFailure()
	b.RecordFailure()

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
	if b.State() != CircuitStateOpen {
		t.Fatalf("unexpected state: %s", b.State())
	}
}

func TestCircuitBreaker_HalfOpenProbeThenClose(t *testing.T) {
	b := NewCircuitBreaker(1, 10*time.Millisecond, 1)
	current := time.Now()
	b.now = func() time.Time { return current }

	b.RecordFailure()
	current = current.Add(20 * time.Millisecond)

	if err := b.Allow(); err != nil {
		t.Fatalf("probe after open timeout must be allowed: %v", err)
	}
	b.RecordSuccess()

	if b.State() != CircuitStateClosed {
		t.Fatalf("breaker should close after successful probe, state=%s", b.State())
	}
}

func TestCircuitBreaker_FailedProbeReopens(t *testing.T) {
	b := NewCircuitBreaker(1, 10*time.Millisecond, 1)
	current := time.Now()
	b.now = func() time.Time { return current }

	b.RecordFailure()
	current = current.Add(20 * time.Millisecond)

	if err := b.Allow(); err != nil {
		t.Fatalf("probe must be allowed: %v", err)
	}
	b.RecordFailure()

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("breaker must reopen after failed probe, got %v", err)
	}
}
