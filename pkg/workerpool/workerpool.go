// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"errors"
	"sync"
)

// ErrNoWorkers is returned when Process is called without workers.
var ErrNoWorkers = errors.New("workerpool: no workers")

// Process fans items out over one goroutine per worker. Each goroutine owns its
// worker value exclusively for the whole call, so non thread-safe handles can be
// passed as workers. Items are taken in order but complete in any order.
// If process returns an error, the pool cancels the context and stops further work.
func Process[W, T any](
	ctx context.Context,
	workers []W,
	items []T,
	process func(context.Context, W, T) error,
	onCancel func(),
) error {
	if len(workers) == 0 {
		return ErrNoWorkers
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan T, len(workers))
	errs := make(chan error, len(workers))
	wg := sync.WaitGroup{}
	for _, worker := range workers {
		wg.Add(1)
		go func(worker W) {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-tasks:
					if !ok {
						return
					}
					if err := process(ctx, worker, item); err != nil {
						select {
						case errs <- err:
						default:
						}
						if onCancel != nil {
							onCancel()
						}
						cancel()
						return
					}
				}
			}
		}(worker)
	}

	go func() {
		defer close(tasks)
		for _, item := range items {
			select {
			case <-ctx.Done():
				return
			case tasks <- item:
			}
		}
	}()

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return err
		}
	}

	return ctx.Err()
}
