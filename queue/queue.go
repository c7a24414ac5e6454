package queue

import (
	"context"
	"errors"
)

// ErrInvalidCapacity is returned by constructors when the requested capacity
// is zero or negative.
var ErrInvalidCapacity = errors.New("queue: capacity must be positive")

// Queue is a bounded FIFO queue safe for any number of concurrent producers
// and consumers. Put blocks while the queue is full and Take blocks while it
// is empty; both return the context error without touching the buffer when
// their context is canceled. Peek never blocks.
type Queue[T any] interface {
	// Put appends item at the tail, blocking while the queue is full.
	Put(ctx context.Context, item T) error

	// Take removes and returns the head element, blocking while the queue
	// is empty.
	Take(ctx context.Context) (T, error)

	// Peek returns the head element without removing it. The boolean is
	// false when the queue is empty at the time of the call.
	Peek() (T, bool)

	// Len returns the number of buffered elements.
	Len() int

	// Cap returns the fixed capacity.
	Cap() int
}

// popHead removes the first element of items, zeroing the vacated slot so
// pointer elements do not linger past their removal.
func popHead[T any](items []T) (T, []T) {
	head := items[0]
	var zero T
	copy(items, items[1:])
	items[len(items)-1] = zero
	return head, items[:len(items)-1]
}
