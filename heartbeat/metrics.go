package heartbeat

import "github.com/prometheus/client_golang/prometheus"

// Collector exports liveness gauges for one Tracker, classified at scrape
// time. The caller supplies the clock function because tracker time is
// logical: whatever drives Ping timestamps should drive now.
type Collector struct {
	tracker *Tracker
	now     func() int64

	peers   *prometheus.Desc
	alive   *prometheus.Desc
	dead    *prometheus.Desc
	unknown *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector that classifies t's peers with timestamps
// from now.
func NewCollector(t *Tracker, now func() int64) *Collector {
	return &Collector{
		tracker: t,
		now:     now,
		peers: prometheus.NewDesc(
			"synckit_heartbeat_peers",
			"Number of registered peers.",
			nil, nil,
		),
		alive: prometheus.NewDesc(
			"synckit_heartbeat_alive",
			"Peers currently classified alive.",
			nil, nil,
		),
		dead: prometheus.NewDesc(
			"synckit_heartbeat_dead",
			"Peers currently classified dead.",
			nil, nil,
		),
		unknown: prometheus.NewDesc(
			"synckit_heartbeat_unknown_pings_total",
			"Pings dropped because the sender was never registered.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.peers
	ch <- c.alive
	ch <- c.dead
	ch <- c.unknown
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	now := c.now()
	total := c.tracker.Len()
	dead := len(c.tracker.DeadPeers(now))

	ch <- prometheus.MustNewConstMetric(c.peers, prometheus.GaugeValue, float64(total))
	ch <- prometheus.MustNewConstMetric(c.alive, prometheus.GaugeValue, float64(total-dead))
	ch <- prometheus.MustNewConstMetric(c.dead, prometheus.GaugeValue, float64(dead))
	ch <- prometheus.MustNewConstMetric(c.unknown, prometheus.CounterValue, float64(c.tracker.UnknownPings()))
}
