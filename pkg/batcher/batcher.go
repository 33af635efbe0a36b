// Package batcher buffers items and hands them to a flush function in batches.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
)

// ErrStopped is returned by Add once Stop has been called or the loop's context is done.
var ErrStopped = errors.New("batcher: stopped")

// Config tunes a Batcher. RPS <= 0 disables flush rate limiting.
type Config struct {
	Size     int
	Interval time.Duration
	RPS      int
}

// Batcher collects items and flushes them when Size is reached, when Interval elapses,
// and once more on shutdown. Flush failures are reported to onError and the batch is dropped.
type Batcher[T any] struct {
	flush    func(context.Context, []T) error
	onError  func(err error, dropped int)
	items    chan T
	size     int
	interval time.Duration
	limiter  ratelimit.Limiter

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// New constructs a Batcher. onError may be nil.
func New[T any](cfg Config, flush func(context.Context, []T) error, onError func(err error, dropped int)) *Batcher[T] {
	if cfg.Size <= 0 {
		cfg.Size = 1
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}
	if onError == nil {
		onError = func(error, int) {}
	}
	return &Batcher[T]{
		flush:    flush,
		onError:  onError,
		items:    make(chan T, cfg.Size*2),
		size:     cfg.Size,
		interval: cfg.Interval,
		limiter:  limiter,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes what is queued and waits for the loop to exit. It is safe to call more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() { close(b.stop) })
	b.wg.Wait()
}

// Add queues items, blocking while the queue is full.
func (b *Batcher[T]) Add(ctx context.Context, items ...T) error {
	for _, item := range items {
		if b.stopped() {
			return ErrStopped
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-b.stop:
			return ErrStopped
		case <-b.done:
			return ErrStopped
		case b.items <- item:
		}
	}
	return nil
}

// TryAdd queues items without blocking and returns how many were dropped on a full queue.
func (b *Batcher[T]) TryAdd(items ...T) (int, error) {
	if b.stopped() {
		return len(items), ErrStopped
	}
	for i, item := range items {
		select {
		case b.items <- item:
		default:
			return len(items) - i, nil
		}
	}
	return 0, nil
}

func (b *Batcher[T]) stopped() bool {
	select {
	case <-b.stop:
		return true
	case <-b.done:
		return true
	default:
		return false
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()
	defer close(b.done)

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	buf := make([]T, 0, b.size)
	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}
		b.limiter.Take()
		batch := buf
		buf = make([]T, 0, b.size)
		if err := b.flush(ctx, batch); err != nil {
			b.onError(err, len(batch))
		}
	}
	drain := func() {
		final := context.WithoutCancel(ctx)
		for {
			select {
			case item := <-b.items:
				buf = append(buf, item)
				if len(buf) >= b.size {
					flush(final)
				}
			default:
				flush(final)
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return
		case <-b.stop:
			drain()
			return
		case item := <-b.items:
			buf = append(buf, item)
			if len(buf) >= b.size {
				flush(ctx)
			}
		case <-ticker.C:
			flush(ctx)
		}
	}
}
