// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	return WaitWithSignal(ctx, d, nil)
}

// WaitWithSignal waits for d, returning early when signal fires or ctx is done.
// A nil signal never fires.
func WaitWithSignal(ctx context.Context, d time.Duration, signal <-chan struct{}) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-signal:
		return nil
	case <-timer.C:
		return nil
	}
}

// SignalSleeper returns a SleepFunc that also wakes on signal.
func SignalSleeper(signal <-chan struct{}) SleepFunc {
	return func(ctx context.Context, d time.Duration) error {
		return WaitWithSignal(ctx, d, signal)
	}
}
