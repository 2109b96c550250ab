//go:build property

package breaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestCircuitBreakerProperties validates the state machine invariants over
// generated call sequences.
func TestCircuitBreakerProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1234) // For reproducible results
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	errFail := errors.New("induced failure")
	ctx := context.Background()

	properties.Property("open implies failures reached the threshold", prop.ForAll(
		func(outcomes []bool, threshold int) bool {
			if threshold < 1 || threshold > 20 {
				return true // Skip invalid inputs
			}

			cb, _ := newTestBreaker(threshold, time.Hour)

			peak := 0
			for _, ok := range outcomes {
				work := func(ctx context.Context) error {
					if ok {
						return nil
					}
					return errFail
				}
				cb.Execute(ctx, work)
				if f := cb.ConsecutiveFailures(); f > peak {
					peak = f
				}
			}

			if cb.State() == StateOpen {
				return peak >= threshold
			}
			return true
		},
		gen.SliceOf(gen.Bool()),
		gen.IntRange(1, 20),
	))

	properties.Property("a success always leaves the breaker closed with zero failures", prop.ForAll(
		func(outcomes []bool, threshold int) bool {
			if threshold < 1 || threshold > 20 {
				return true
			}

			cb, clock := newTestBreaker(threshold, time.Minute)

			for _, ok := range outcomes {
				work := func(ctx context.Context) error {
					if ok {
						return nil
					}
					return errFail
				}
				cb.Execute(ctx, work)
				// Keep the breaker eligible for a trial on the next call.
				clock.Advance(time.Minute)
			}

			err := cb.Execute(ctx, func(ctx context.Context) error { return nil })
			return err == nil && cb.State() == StateClosed && cb.ConsecutiveFailures() == 0
		},
		gen.SliceOf(gen.Bool()),
		gen.IntRange(1, 20),
	))

	properties.Property("while open within the cooldown, work is never invoked", prop.ForAll(
		func(threshold int, attempts int) bool {
			if threshold < 1 || threshold > 20 || attempts < 1 || attempts > 50 {
				return true
			}

			cb, _ := newTestBreaker(threshold, time.Hour)

			for i := 0; i < threshold; i++ {
				cb.Execute(ctx, func(ctx context.Context) error { return errFail })
			}
			if cb.State() != StateOpen {
				return false
			}

			invoked := false
			for i := 0; i < attempts; i++ {
				cb.Execute(ctx, func(ctx context.Context) error {
					invoked = true
					return nil
				})
			}
			return !invoked
		},
		gen.IntRange(1, 20),
		gen.IntRange(1, 50),
	))

	properties.TestingRun(t)
}
