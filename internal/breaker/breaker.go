// Package breaker implements a circuit breaker around the lookup handler
// boundary. A single instance guards all handler invocations: the handlers
// share one failure budget because they sit behind one logical dependency.
package breaker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yeshsurya/React-Flow-MCP-Server/internal/errors"
)

// State captures circuit breaker states.
type State int

const (
	// StateClosed indicates normal operation.
	StateClosed State = iota
	// StateOpen indicates the breaker is rejecting calls.
	StateOpen
	// StateHalfOpen indicates a single trial call is permitted.
	StateHalfOpen
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Config controls the thresholds for state transitions. Both values are
// fixed per breaker instance at construction.
type Config struct {
	FailureThreshold int
	ResetTimeout     time.Duration
}

// DefaultConfig returns the default breaker configuration.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		ResetTimeout:     30 * time.Second,
	}
}

// CircuitBreaker wraps a unit of work with failure counting and
// open/half-open/closed state. Safe for concurrent use.
type CircuitBreaker struct {
	config Config

	mutex               sync.Mutex
	state               State
	consecutiveFailures int
	lastFailureTime     time.Time

	// now is replaceable in tests
	now func() time.Time
}

// New creates a circuit breaker in the closed state.
func New(config Config) *CircuitBreaker {
	if config.FailureThreshold <= 0 {
		config.FailureThreshold = DefaultConfig().FailureThreshold
	}
	if config.ResetTimeout <= 0 {
		config.ResetTimeout = DefaultConfig().ResetTimeout
	}

	return &CircuitBreaker{
		config: config,
		state:  StateClosed,
		now:    time.Now,
	}
}

// Execute runs work under the breaker's protection.
//
// In the closed state, and for the half-open trial call, work is invoked and
// its error (if any) drives the state transitions. When the breaker is open
// and the cooldown has not elapsed, Execute fails fast with a circuit-open
// error without invoking work. The open to half-open transition only happens
// here, on an invocation attempt, never spontaneously.
func (cb *CircuitBreaker) Execute(ctx context.Context, work func(ctx context.Context) error) error {
	if err := cb.beforeCall(); err != nil {
		return err
	}

	err := work(ctx)
	cb.afterCall(err)
	return err
}

// beforeCall decides whether the invocation may proceed.
func (cb *CircuitBreaker) beforeCall() error {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()

	switch cb.state {
	case StateOpen:
		if cb.now().Sub(cb.lastFailureTime) < cb.config.ResetTimeout {
			return errors.NewCircuitOpenError(fmt.Sprintf(
				"circuit breaker is open; retry after %s", cb.config.ResetTimeout))
		}
		// The caller that observes the elapsed cooldown becomes the trial.
		cb.state = StateHalfOpen
	case StateHalfOpen:
		// A trial call is already in flight.
		return errors.NewCircuitOpenError("circuit breaker is half-open; trial call in progress")
	}

	return nil
}

// afterCall records the outcome of an invocation that was allowed through.
func (cb *CircuitBreaker) afterCall(err error) {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()

	if err == nil {
		cb.state = StateClosed
		cb.consecutiveFailures = 0
		return
	}

	cb.consecutiveFailures++
	cb.lastFailureTime = cb.now()

	if cb.state == StateHalfOpen || cb.consecutiveFailures >= cb.config.FailureThreshold {
		cb.state = StateOpen
	}
}

// State returns the breaker's current state.
func (cb *CircuitBreaker) State() State {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()
	return cb.state
}

// ConsecutiveFailures returns the current consecutive failure count.
func (cb *CircuitBreaker) ConsecutiveFailures() int {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()
	return cb.consecutiveFailures
}

// SetClock replaces the breaker's time source. Test use only.
func (cb *CircuitBreaker) SetClock(now func() time.Time) {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()
	cb.now = now
}
