package internal

import (
	"context"
	"fmt"
	"time"
)

// RetryPolicy is a fixed-backoff retry budget
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration
}

// Sleeper waits for d or until ctx is done
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepContext is the default Sleeper
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Retry calls fn until it succeeds or the policy is exhausted, sleeping
// p.Delay between attempts (never after the last one). fn receives the
// 1-based attempt number. A cancelled context during a sleep stops retrying
// and returns the context error wrapped with the last failure.
func Retry(ctx context.Context, p RetryPolicy, sleep Sleeper, fn func(attempt int) error) error {
	if p.Attempts < 1 {
		p.Attempts = 1
	}
	if sleep == nil {
		sleep = SleepContext
	}

	var lastErr error
	for attempt := 1; attempt <= p.Attempts; attempt++ {
		err := fn(attempt)
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == p.Attempts {
			break
		}

		LogDebug("Attempt %d/%d failed, retrying in %s: %v", attempt, p.Attempts, p.Delay, err)
		if err := sleep(ctx, p.Delay); err != nil {
			return fmt.Errorf("retry cancelled after attempt %d (%v): %w", attempt, lastErr, err)
		}
	}

	return &RetryError{Attempts: p.Attempts, Err: lastErr}
}
