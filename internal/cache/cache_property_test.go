//go:build property

package cache

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestQueryCacheProperties validates the cache contract over generated inputs.
func TestQueryCacheProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1234) // For reproducible results
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("set then get returns the value before expiry", prop.ForAll(
		func(key, value string, ttlSeconds int) bool {
			if key == "" || ttlSeconds < 1 {
				return true // Skip invalid inputs
			}

			clock := newFakeClock()
			c := NewQueryCache(0)
			c.SetClock(clock.Now)

			c.Set(key, value, time.Duration(ttlSeconds)*time.Second)
			got, ok := c.Get(key)
			return ok && got == value
		},
		gen.AlphaString(),
		gen.AnyString(),
		gen.IntRange(1, 3600),
	))

	properties.Property("get after TTL elapsed is always absent", prop.ForAll(
		func(key, value string, ttlSeconds int) bool {
			if key == "" || ttlSeconds < 1 {
				return true
			}

			clock := newFakeClock()
			c := NewQueryCache(0)
			c.SetClock(clock.Now)

			c.Set(key, value, time.Duration(ttlSeconds)*time.Second)
			clock.Advance(time.Duration(ttlSeconds)*time.Second + time.Millisecond)
			_, ok := c.Get(key)
			return !ok
		},
		gen.AlphaString(),
		gen.AnyString(),
		gen.IntRange(1, 3600),
	))

	properties.Property("last write wins", prop.ForAll(
		func(key string, values []string) bool {
			if key == "" || len(values) == 0 {
				return true
			}

			c := NewQueryCache(0)
			for _, v := range values {
				c.Set(key, v, time.Minute)
			}

			got, ok := c.Get(key)
			return ok && got == values[len(values)-1]
		},
		gen.AlphaString(),
		gen.SliceOf(gen.AnyString()),
	))

	properties.Property("entry count never exceeds the configured limit", prop.ForAll(
		func(keys []string, maxEntries int) bool {
			if maxEntries < 1 {
				return true
			}

			c := NewQueryCache(maxEntries)
			for _, k := range keys {
				if k == "" {
					continue
				}
				c.Set(k, "v", time.Minute)
			}
			return c.Len() <= maxEntries
		},
		gen.SliceOf(gen.AlphaString()),
		gen.IntRange(1, 50),
	))

	properties.TestingRun(t)
}
