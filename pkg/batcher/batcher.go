// Package batcher provides a generic buffered batch processor with rate limiting.
package batcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Flush receives the buffered items when the batcher drains its buffer. The
// slice is reused between flushes and must not be retained.
type Flush[T any] func(context.Context, []T) error

// Batcher buffers items and flushes them either when the buffer reaches
// flushSize or when flushInterval elapses, whichever comes first. Flushes are
// rate limited.
type Batcher[T any] struct {
	logger        *zap.Logger
	flush         Flush[T]
	flushSize     int
	flushInterval time.Duration
	limiter       ratelimit.Limiter

	queue    chan T
	stop     chan struct{}
	stopOnce sync.Once
	done     sync.WaitGroup
}

// New constructs a Batcher flushing at most rps batches per second.
func New[T any](logger *zap.Logger, flush Flush[T], flushSize int, flushInterval time.Duration, rps int) *Batcher[T] {
	if flushSize < 1 {
		flushSize = 1
	}
	return &Batcher[T]{
		logger:        logger,
		flush:         flush,
		flushSize:     flushSize,
		flushInterval: flushInterval,
		limiter:       ratelimit.New(rps),
		queue:         make(chan T, flushSize*2),
		stop:          make(chan struct{}),
	}
}

// Start begins the background flush loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.done.Add(1)
	go b.run(ctx)
}

// Stop drains the buffer and stops the flush loop. Safe to call more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.done.Wait()
}

// Add queues an item, blocking until the queue accepts it or ctx ends. Adding
// to a stopped batcher returns context.Canceled.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case b.queue <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.done.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)

	drain := func() {
		if len(buf) == 0 {
			return
		}
		b.limiter.Take()
		if err := b.flush(ctx, buf); err != nil {
			b.logger.Error("batch not flushed", zap.Error(err), zap.Int("size", len(buf)))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return
		case <-b.stop:
			drain()
			return
		case item := <-b.queue:
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				drain()
			}
		case <-ticker.C:
			drain()
		}
	}
}
