package queue

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "synckit"

// Sizer is the read-only view of a queue that the depth collector needs.
type Sizer interface {
	Len() int
	Cap() int
}

// Collector exports depth and capacity gauges for one queue, sampled at
// scrape time. Register it on the same registry as the Instrument metrics.
type Collector struct {
	sizer    Sizer
	depth    *prometheus.Desc
	capacity *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector for q labeled with the queue name.
func NewCollector(name string, q Sizer) *Collector {
	labels := prometheus.Labels{"queue": name}
	return &Collector{
		sizer: q,
		depth: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "queue", "depth"),
			"Current number of buffered elements.",
			nil, labels,
		),
		capacity: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "queue", "capacity"),
			"Fixed queue capacity.",
			nil, labels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.depth
	ch <- c.capacity
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.depth, prometheus.GaugeValue, float64(c.sizer.Len()))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(c.sizer.Cap()))
}

// InstrumentedQueue decorates a Queue with operation counters and blocking
// latency histograms. The wrapper is transparent: ordering, blocking, and
// errors all pass through unchanged.
type InstrumentedQueue[T any] struct {
	inner Queue[T]
	ops   *prometheus.CounterVec
	block *prometheus.HistogramVec
}

var _ Queue[int] = (*InstrumentedQueue[int])(nil)

// Instrument wraps q with metrics registered on reg under the provided queue
// name. Each name may be registered once per registry.
func Instrument[T any](q Queue[T], reg prometheus.Registerer, name string) *InstrumentedQueue[T] {
	labels := prometheus.Labels{"queue": name}
	ops := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "queue_ops_total",
			Help:        "Total queue operations by outcome.",
			ConstLabels: labels,
		},
		[]string{"op", "outcome"},
	)
	block := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "queue_block_seconds",
			Help:        "Time spent inside blocking queue operations.",
			ConstLabels: labels,
			// Covers 1ms .. ~4s of blocking; uncontended calls land in
			// the first bucket.
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 13),
		},
		[]string{"op"},
	)
	reg.MustRegister(ops, block)
	return &InstrumentedQueue[T]{inner: q, ops: ops, block: block}
}

// Put records the outcome and blocking time of the wrapped Put.
func (iq *InstrumentedQueue[T]) Put(ctx context.Context, item T) error {
	start := time.Now()
	err := iq.inner.Put(ctx, item)
	iq.block.WithLabelValues("put").Observe(time.Since(start).Seconds())
	iq.ops.WithLabelValues("put", outcome(err)).Inc()
	return err
}

// Take records the outcome and blocking time of the wrapped Take.
func (iq *InstrumentedQueue[T]) Take(ctx context.Context) (T, error) {
	start := time.Now()
	item, err := iq.inner.Take(ctx)
	iq.block.WithLabelValues("take").Observe(time.Since(start).Seconds())
	iq.ops.WithLabelValues("take", outcome(err)).Inc()
	return item, err
}

// Peek records whether the head was present.
func (iq *InstrumentedQueue[T]) Peek() (T, bool) {
	item, ok := iq.inner.Peek()
	if ok {
		iq.ops.WithLabelValues("peek", "ok").Inc()
	} else {
		iq.ops.WithLabelValues("peek", "empty").Inc()
	}
	return item, ok
}

// Len returns the wrapped queue's length.
func (iq *InstrumentedQueue[T]) Len() int { return iq.inner.Len() }

// Cap returns the wrapped queue's capacity.
func (iq *InstrumentedQueue[T]) Cap() int { return iq.inner.Cap() }

func outcome(err error) string {
	if err != nil {
		return "canceled"
	}
	return "ok"
}
