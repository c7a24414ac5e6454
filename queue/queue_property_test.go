package queue

import (
	"context"
	"sync"
	"testing"
	"time"
)

// TestQueue_Property_CapacityNeverExceeded tests that Len stays within
// [0, Cap] while producers and consumers hammer the queue
func TestQueue_Property_CapacityNeverExceeded(t *testing.T) {
	for _, c := range constructors {
		t.Run(c.name, func(t *testing.T) {
			q := mustQueue(t, c.make, 4)

			ctx, cancel := context.WithCancel(context.Background())
			var wg sync.WaitGroup
			for w := 0; w < 3; w++ {
				wg.Add(2)
				go func() {
					defer wg.Done()
					for i := 0; ctx.Err() == nil; i++ {
						_ = q.Put(ctx, i)
					}
				}()
				go func() {
					defer wg.Done()
					for ctx.Err() == nil {
						_, _ = q.Take(ctx)
					}
				}()
			}

			deadline := time.After(200 * time.Millisecond)
			for sampling := true; sampling; {
				select {
				case <-deadline:
					sampling = false
				default:
					if n := q.Len(); n < 0 || n > q.Cap() {
						t.Errorf("Length %d outside [0, %d]", n, q.Cap())
						sampling = false
					}
				}
			}

			cancel()
			wg.Wait()

			if n := q.Len(); n < 0 || n > q.Cap() {
				t.Errorf("Length %d outside [0, %d] after shutdown", n, q.Cap())
			}
		})
	}
}

// TestQueue_Property_DrainReturnsExactlyWhatWasPut tests that a fill and
// drain cycle loses and invents nothing
func TestQueue_Property_DrainReturnsExactlyWhatWasPut(t *testing.T) {
	ctx := context.Background()
	for _, c := range constructors {
		t.Run(c.name, func(t *testing.T) {
			q := mustQueue(t, c.make, 5)
			for round := 0; round < 3; round++ {
				base := round * 100
				for i := 0; i < 5; i++ {
					if err := q.Put(ctx, base+i); err != nil {
						t.Fatalf("Put failed: %v", err)
					}
				}
				for i := 0; i < 5; i++ {
					got, err := q.Take(ctx)
					if err != nil {
						t.Fatalf("Take failed: %v", err)
					}
					if got != base+i {
						t.Errorf("Round %d: expected %d, got %d", round, base+i, got)
					}
				}
				if q.Len() != 0 {
					t.Fatalf("Round %d: expected empty queue, got length %d", round, q.Len())
				}
			}
		})
	}
}

// TestQueue_Property_CancellationPreservesContents tests that canceling
// blocked operations never corrupts the buffered elements
func TestQueue_Property_CancellationPreservesContents(t *testing.T) {
	bg := context.Background()
	for _, c := range constructors {
		t.Run(c.name, func(t *testing.T) {
			q := mustQueue(t, c.make, 3)
			for i := 1; i <= 3; i++ {
				_ = q.Put(bg, i)
			}

			// Park several producers, then cancel them all.
			ctx, cancel := context.WithCancel(bg)
			var wg sync.WaitGroup
			for i := 0; i < 4; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					_ = q.Put(ctx, 100+i)
				}(i)
			}
			time.Sleep(50 * time.Millisecond)
			cancel()
			wg.Wait()

			if q.Len() != 3 {
				t.Fatalf("Expected 3 elements after canceled puts, got %d", q.Len())
			}
			for want := 1; want <= 3; want++ {
				got, err := q.Take(bg)
				if err != nil || got != want {
					t.Errorf("Expected %d, got %d (err=%v)", want, got, err)
				}
			}
		})
	}
}

// TestQueue_Property_PeekAgreesWithTake tests that a successful peek always
// predicts the next take when no other consumer intervenes
func TestQueue_Property_PeekAgreesWithTake(t *testing.T) {
	ctx := context.Background()
	for _, c := range constructors {
		t.Run(c.name, func(t *testing.T) {
			q := mustQueue(t, c.make, 8)
			for i := 0; i < 8; i++ {
				_ = q.Put(ctx, i*i)
			}
			for i := 0; i < 8; i++ {
				head, ok := q.Peek()
				if !ok {
					t.Fatalf("Expected a head at step %d", i)
				}
				got, err := q.Take(ctx)
				if err != nil {
					t.Fatalf("Take failed: %v", err)
				}
				if got != head {
					t.Errorf("Peek promised %d but Take returned %d", head, got)
				}
			}
		})
	}
}
