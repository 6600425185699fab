package discord

import (
	"errors"
	"sync"
	"time"

	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/adapter"
)

// ErrBreakerOpen is returned while the circuit breaker rejects deliveries
var ErrBreakerOpen = errors.New("circuit breaker is open")

// BreakerState is the circuit breaker position
type BreakerState string

const (
	// BreakerClosed passes all deliveries through
	BreakerClosed BreakerState = "closed"
	// BreakerOpen rejects deliveries until the recovery timeout passes
	BreakerOpen BreakerState = "open"
	// BreakerHalfOpen lets probe deliveries through after recovery; the
	// first success closes the breaker, the first failure reopens it
	BreakerHalfOpen BreakerState = "half_open"
)

// CircuitBreaker stops hammering Discord after consecutive delivery
// failures. It opens at the failure threshold, rejects everything for the
// recovery timeout, then half-opens to probe.
type CircuitBreaker struct {
	failureThreshold int
	recoveryTimeout  time.Duration
	clock            adapter.Clock

	mu           sync.Mutex
	state        BreakerState
	failureCount int
	lastFailure  time.Time
}

// NewCircuitBreaker creates a breaker. Non-positive arguments fall back to
// 5 failures and a 60 second recovery.
func NewCircuitBreaker(failureThreshold int, recoveryTimeout time.Duration, clock adapter.Clock) *CircuitBreaker {
	if failureThreshold <= 0 {
		failureThreshold = 5
	}
	if recoveryTimeout <= 0 {
		recoveryTimeout = 60 * time.Second
	}
	return &CircuitBreaker{
		failureThreshold: failureThreshold,
		recoveryTimeout:  recoveryTimeout,
		clock:            clock,
		state:            BreakerClosed,
	}
}

// Allow reports whether a delivery may proceed, returning ErrBreakerOpen
// inside the recovery window. An open breaker whose recovery timeout has
// elapsed transitions to half-open and lets the call through.
func (b *CircuitBreaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == BreakerOpen {
		if b.clock.Since(b.lastFailure) < b.recoveryTimeout {
			return ErrBreakerOpen
		}
		b.state = BreakerHalfOpen
	}
	return nil
}

// RecordSuccess closes the breaker and clears the failure count
func (b *CircuitBreaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failureCount = 0
	b.state = BreakerClosed
}

// RecordFailure counts a failure and opens the breaker once the threshold
// is reached. A half-open probe failure lands here with the count still at
// or above the threshold, so it reopens immediately.
func (b *CircuitBreaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failureCount++
	b.lastFailure = b.clock.Now()
	if b.failureCount >= b.failureThreshold {
		b.state = BreakerOpen
	}
}

// State returns the current breaker position
func (b *CircuitBreaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}
