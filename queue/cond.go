package queue

import (
	"context"
	"sync"
)

// CondQueue is the single-lock monitor strategy: one mutex guards the buffer
// and blocked producers and consumers park on condition variables tied to
// it. Producers wait on notFull, consumers on notEmpty, and every successful
// operation signals the opposite side, so a wakeup is never lost even with
// many waiters on both conditions. The price of the single lock is that a
// producer and a consumer never run their critical sections at the same
// time.
type CondQueue[T any] struct {
	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond
	items    []T
	capacity int
}

// NewCond creates a CondQueue with the given fixed capacity.
func NewCond[T any](capacity int) (*CondQueue[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	q := &CondQueue[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}
	q.notFull = sync.NewCond(&q.mu)
	q.notEmpty = sync.NewCond(&q.mu)
	return q, nil
}

// Put appends item at the tail, blocking while the queue is full.
func (q *CondQueue[T]) Put(ctx context.Context, item T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stop := context.AfterFunc(ctx, q.wakeAll)
	defer stop()

	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == q.capacity {
		if err := ctx.Err(); err != nil {
			return err
		}
		q.notFull.Wait()
	}
	q.items = append(q.items, item)
	q.notEmpty.Signal()
	return nil
}

// Take removes and returns the head element, blocking while the queue is
// empty.
func (q *CondQueue[T]) Take(ctx context.Context) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	stop := context.AfterFunc(ctx, q.wakeAll)
	defer stop()

	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == 0 {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		q.notEmpty.Wait()
	}
	head, rest := popHead(q.items)
	q.items = rest
	q.notFull.Signal()
	return head, nil
}

// Peek returns the head element without removing it.
func (q *CondQueue[T]) Peek() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.items[0], true
}

// Len returns the number of buffered elements.
func (q *CondQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Cap returns the fixed capacity.
func (q *CondQueue[T]) Cap() int {
	return q.capacity
}

// wakeAll runs on context cancellation and broadcasts both conditions so
// every waiter re-checks its context. Taking the mutex first closes the race
// with a waiter that has checked its context but not yet parked.
func (q *CondQueue[T]) wakeAll() {
	q.mu.Lock()
	q.notFull.Broadcast()
	q.notEmpty.Broadcast()
	q.mu.Unlock()
}
