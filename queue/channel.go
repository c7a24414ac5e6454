package queue

import (
	"context"
	"sync"
)

// ChannelQueue bounds the queue with native channels instead of condition
// variables. A token in free represents a spare slot and a token in filled
// represents a buffered element, so the runtime supplies both blocking edges
// and no signaling code crosses between producers and consumers. The
// elements themselves sit behind a short mutex that is never held while
// blocking, which keeps Peek exact and lets a producer and a consumer make
// progress at the same time when the queue is neither full nor empty.
//
// Token conservation is the core invariant: at any instant the free tokens,
// the filled tokens, and the operations between their channel sections sum
// to the capacity. The token sends in Put and Take therefore never block.
type ChannelQueue[T any] struct {
	free   chan struct{} // one token per spare slot
	filled chan struct{} // one token per buffered element

	mu    sync.Mutex // guards items only
	items []T
}

// NewChannel creates a ChannelQueue with the given fixed capacity.
func NewChannel[T any](capacity int) (*ChannelQueue[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	q := &ChannelQueue[T]{
		free:   make(chan struct{}, capacity),
		filled: make(chan struct{}, capacity),
		items:  make([]T, 0, capacity),
	}
	for i := 0; i < capacity; i++ {
		q.free <- struct{}{}
	}
	return q, nil
}

// Put appends item at the tail, blocking while the queue is full.
func (q *ChannelQueue[T]) Put(ctx context.Context, item T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-q.free:
	case <-ctx.Done():
		return ctx.Err()
	}

	q.mu.Lock()
	q.items = append(q.items, item)
	q.mu.Unlock()

	q.filled <- struct{}{}
	return nil
}

// Take removes and returns the head element, blocking while the queue is
// empty.
func (q *ChannelQueue[T]) Take(ctx context.Context) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	select {
	case <-q.filled:
	case <-ctx.Done():
		return zero, ctx.Err()
	}

	q.mu.Lock()
	head, rest := popHead(q.items)
	q.items = rest
	q.mu.Unlock()

	q.free <- struct{}{}
	return head, nil
}

// Peek returns the head element without removing it.
func (q *ChannelQueue[T]) Peek() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.items[0], true
}

// Len returns the number of buffered elements.
func (q *ChannelQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Cap returns the fixed capacity.
func (q *ChannelQueue[T]) Cap() int {
	return cap(q.free)
}
