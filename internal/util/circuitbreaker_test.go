package util

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestCircuitBreakerOpensAfterThreshold(t *testing.T) {
	cb := NewCircuitBreaker(3, time.Hour, time.Hour, nil, zap.NewNop())

	if !cb.CanExecute() {
		t.Fatal("new breaker should start closed")
	}

	cb.RecordFailure(0)
	cb.RecordFailure(0)
	if !cb.CanExecute() {
		t.Fatal("breaker opened before the threshold")
	}

	cb.RecordFailure(0)
	if cb.CanExecute() {
		t.Fatal("breaker should be open after reaching the threshold")
	}

	status := cb.GetStatus()
	if status.State != CircuitStateOpen || status.FailureCount != 3 {
		t.Errorf("status = %+v, want OPEN with 3 failures", status)
	}
	if status.NextRetryTime == nil {
		t.Error("open breaker should expose the next retry time")
	}
}

func TestCircuitBreakerHalfOpenAndRecovery(t *testing.T) {
	cb := NewCircuitBreaker(1, time.Nanosecond, time.Hour, nil, zap.NewNop())

	cb.RecordFailure(time.Nanosecond)
	time.Sleep(time.Millisecond)

	// Without a health check the breaker probes via half-open after the
	// reset window elapses.
	if got := cb.GetState(); got != CircuitStateHalfOpen {
		t.Fatalf("state = %s, want HALF_OPEN", got)
	}

	cb.RecordSuccess()
	if got := cb.GetState(); got != CircuitStateClosed {
		t.Errorf("state after recovery = %s, want CLOSED", got)
	}
}

func TestCircuitBreakerReopensFromHalfOpen(t *testing.T) {
	cb := NewCircuitBreaker(5, time.Nanosecond, time.Hour, nil, zap.NewNop())

	// Force open regardless of threshold by failing from half-open.
	cb.RecordFailure(time.Nanosecond)
	cb.RecordFailure(time.Nanosecond)
	cb.RecordFailure(time.Nanosecond)
	cb.RecordFailure(time.Nanosecond)
	cb.RecordFailure(time.Nanosecond)
	time.Sleep(time.Millisecond)

	if got := cb.GetState(); got != CircuitStateHalfOpen {
		t.Fatalf("state = %s, want HALF_OPEN", got)
	}

	cb.RecordFailure(time.Hour)
	if cb.CanExecute() {
		t.Error("failure in half-open should reopen the circuit")
	}
}

func TestCircuitBreakerReset(t *testing.T) {
	cb := NewCircuitBreaker(1, time.Hour, time.Hour, nil, zap.NewNop())

	cb.RecordFailure(0)
	if cb.CanExecute() {
		t.Fatal("breaker should be open")
	}

	cb.Reset()
	if !cb.CanExecute() {
		t.Error("reset breaker should execute again")
	}
	if status := cb.GetStatus(); status.FailureCount != 0 {
		t.Errorf("failure count after reset = %d, want 0", status.FailureCount)
	}
}
