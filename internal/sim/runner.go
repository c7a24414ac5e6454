package sim

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"synckit/heartbeat"
	"synckit/queue"
)

// item is one unit of work flowing from a producer to a consumer.
type item struct {
	producer string
	seq      int
}

// Stats summarizes a completed run.
type Stats struct {
	Produced  int
	Consumed  int
	Sweeps    int
	DeadAtEnd []string
}

// Runner pushes the configured workload through a bounded queue. Consumers
// advance a logical clock by one tick per consumed item and ping the
// producing peer's tracker entry at that tick, so a producer whose items
// stop arriving eventually shows up in the dead sweep.
type Runner struct {
	cfg     Config
	logger  *zap.Logger
	queue   queue.Queue[item]
	tracker *heartbeat.Tracker
	clock   atomic.Int64
	reg     *prometheus.Registry
}

// NewRunner validates cfg and assembles the queue, tracker and metrics.
func NewRunner(cfg Config, logger *zap.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	base, err := buildQueue(cfg.QueueImpl, cfg.Capacity)
	if err != nil {
		return nil, err
	}

	tracker, err := heartbeat.New(cfg.Producers, cfg.Interval, heartbeat.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	r := &Runner{
		cfg:     cfg,
		logger:  logger,
		tracker: tracker,
		reg:     prometheus.NewRegistry(),
	}
	r.queue = queue.Instrument[item](base, r.reg, cfg.QueueImpl)
	r.reg.MustRegister(queue.NewCollector(cfg.QueueImpl, base))
	r.reg.MustRegister(heartbeat.NewCollector(tracker, r.clock.Load))
	return r, nil
}

// Registry returns the metrics registry assembled for this run.
func (r *Runner) Registry() *prometheus.Registry {
	return r.reg
}

// Run drives the workload to completion and returns its stats. It stops at
// the first failed operation or when ctx is canceled.
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	total := len(r.cfg.Producers) * r.cfg.Items
	var produced, consumed, sweeps atomic.Int64

	// Consumers claim one pending item each before taking, so exactly
	// total takes happen and nobody blocks on an empty queue at the end.
	var remaining atomic.Int64
	remaining.Store(int64(total))

	g, ctx := errgroup.WithContext(ctx)

	for _, id := range r.cfg.Producers {
		id := id
		g.Go(func() error {
			for seq := 0; seq < r.cfg.Items; seq++ {
				if err := r.queue.Put(ctx, item{producer: id, seq: seq}); err != nil {
					return fmt.Errorf("producer %s: %w", id, err)
				}
				produced.Add(1)
			}
			return nil
		})
	}

	for w := 0; w < r.cfg.Consumers; w++ {
		g.Go(func() error {
			for remaining.Add(-1) >= 0 {
				it, err := r.queue.Take(ctx)
				if err != nil {
					return fmt.Errorf("consumer: %w", err)
				}
				tick := r.clock.Add(1)
				r.tracker.Ping(tick, it.producer)
				consumed.Add(1)

				if tick%r.cfg.Interval == 0 {
					sweeps.Add(1)
					if dead := r.tracker.DeadPeers(tick); len(dead) > 0 {
						r.logger.Warn("producers silent past dead window",
							zap.Int64("tick", tick),
							zap.Strings("peers", dead))
					}
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	final := r.clock.Load()
	stats := Stats{
		Produced:  int(produced.Load()),
		Consumed:  int(consumed.Load()),
		Sweeps:    int(sweeps.Load()),
		DeadAtEnd: r.tracker.DeadPeers(final),
	}
	r.logger.Info("run complete",
		zap.Int("produced", stats.Produced),
		zap.Int("consumed", stats.Consumed),
		zap.Int("sweeps", stats.Sweeps),
		zap.Strings("dead_at_end", stats.DeadAtEnd))
	return stats, nil
}

func buildQueue(impl string, capacity int) (queue.Queue[item], error) {
	switch impl {
	case ImplChannel:
		return queue.NewChannel[item](capacity)
	case ImplCond:
		return queue.NewCond[item](capacity)
	case ImplSemaphore:
		return queue.NewSemaphore[item](capacity)
	default:
		return nil, fmt.Errorf("unknown queue implementation: %q", impl)
	}
}
