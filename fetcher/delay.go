package fetcher

import (
	"context"
	"math/rand/v2"
	"time"
)

// Delay is a throttle applied before each request: a duration drawn
// uniformly from [Min, Max]. The zero value never waits.
type Delay struct {
	Min time.Duration
	Max time.Duration
}

// DefaultDelay returns the 1-3 second delay used when nothing is configured
func DefaultDelay() Delay {
	return Delay{Min: 1 * time.Second, Max: 3 * time.Second}
}

// Next picks the next wait duration
func (d Delay) Next() time.Duration {
	lo := max(d.Min, 0)
	if d.Max <= lo {
		return lo
	}
	return lo + rand.N(d.Max-lo+1)
}

// Wait blocks for Next() or until ctx is done
func (d Delay) Wait(ctx context.Context) error {
	wait := d.Next()
	if wait <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
