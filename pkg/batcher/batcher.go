// Package batcher provides a generic buffered batch processor with rate limiting.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add once the batcher has been stopped.
var ErrStopped = errors.New("batcher stopped")

// Batcher buffers items and flushes them either by size or interval. Items still queued
// when the batcher stops are flushed before Stop returns. Once the flushing loop exits,
// through Stop or cancellation of the Start context, Add returns ErrStopped.
type Batcher[T any] struct {
	flushCallback func(context.Context, []T) error
	itemsCh       chan T
	flushSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter
	logger        *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once

	mu       sync.Mutex
	closed   bool
	inflight sync.WaitGroup
}

// New constructs a Batcher. rps limits flush calls per second.
func New[T any](logger *zap.Logger, flushCallback func(context.Context, []T) error, flushSize int, flushInterval time.Duration, rps int) *Batcher[T] {
	if flushSize <= 0 {
		flushSize = 1
	}
	return &Batcher[T]{
		logger:        logger,
		flushCallback: flushCallback,
		itemsCh:       make(chan T, flushSize*2),
		flushSize:     flushSize,
		flushInterval: flushInterval,
		rl:            ratelimit.New(rps),
		stop:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop ends the flushing loop after draining queued items. It is safe to call twice.
func (b *Batcher[T]) Stop() {
	b.close()
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
}

// Add queues an item for batching, respecting context cancellation. On a started
// batcher an item accepted by Add is always flushed, even when it stops concurrently.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrStopped
	}
	b.inflight.Add(1)
	b.mu.Unlock()
	defer b.inflight.Done()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case b.itemsCh <- item:
		return nil
	}
}

func (b *Batcher[T]) close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)

	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		if err := b.flushCallback(ctx, buf); err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}

	// drain rejects new items, keeps consuming until in-flight Add calls return, then
	// flushes whatever is left.
	drain := func() {
		b.close()
		addsDone := make(chan struct{})
		go func() {
			b.inflight.Wait()
			close(addsDone)
		}()

		final := context.WithoutCancel(ctx)
		take := func(item T) {
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				flush(final)
			}
		}
		for {
			select {
			case item := <-b.itemsCh:
				take(item)
			case <-addsDone:
				for {
					select {
					case item := <-b.itemsCh:
						take(item)
					default:
						flush(final)
						return
					}
				}
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

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)
		}
	}
}
