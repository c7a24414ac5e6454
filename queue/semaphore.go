package queue

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// SemaphoreQueue is the counting-semaphore strategy: free admits producers
// one spare slot at a time and filled admits consumers one buffered element
// at a time, with a short mutex around the buffer itself. Acquire carries
// the caller's context, so a blocked operation cancels without any extra
// wakeup machinery.
type SemaphoreQueue[T any] struct {
	free   *semaphore.Weighted // permits = spare slots
	filled *semaphore.Weighted // permits = buffered elements

	mu       sync.Mutex
	items    []T
	capacity int
}

// NewSemaphore creates a SemaphoreQueue with the given fixed capacity.
func NewSemaphore[T any](capacity int) (*SemaphoreQueue[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	q := &SemaphoreQueue[T]{
		free:     semaphore.NewWeighted(int64(capacity)),
		filled:   semaphore.NewWeighted(int64(capacity)),
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}
	// filled must start with zero permits; a weighted semaphore starts
	// full, so drain it up front.
	if err := q.filled.Acquire(context.Background(), int64(capacity)); err != nil {
		return nil, err
	}
	return q, nil
}

// Put appends item at the tail, blocking while the queue is full.
func (q *SemaphoreQueue[T]) Put(ctx context.Context, item T) error {
	if err := q.free.Acquire(ctx, 1); err != nil {
		return err
	}

	q.mu.Lock()
	q.items = append(q.items, item)
	q.mu.Unlock()

	q.filled.Release(1)
	return nil
}

// Take removes and returns the head element, blocking while the queue is
// empty.
func (q *SemaphoreQueue[T]) Take(ctx context.Context) (T, error) {
	if err := q.filled.Acquire(ctx, 1); err != nil {
		var zero T
		return zero, err
	}

	q.mu.Lock()
	head, rest := popHead(q.items)
	q.items = rest
	q.mu.Unlock()

	q.free.Release(1)
	return head, nil
}

// Peek returns the head element without removing it.
func (q *SemaphoreQueue[T]) Peek() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.items[0], true
}

// Len returns the number of buffered elements.
func (q *SemaphoreQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Cap returns the fixed capacity.
func (q *SemaphoreQueue[T]) Cap() int {
	return q.capacity
}
