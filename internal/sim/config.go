package sim

import (
	"errors"
	"fmt"
	"strings"
)

// Queue implementation names accepted by Config.
const (
	ImplChannel   = "channel"
	ImplCond      = "cond"
	ImplSemaphore = "semaphore"
)

// Config holds the knobs for one workload run.
type Config struct {
	QueueImpl   string   // one of the Impl constants
	Capacity    int      // queue capacity
	Producers   []string // producer IDs, doubling as heartbeat peers
	Consumers   int      // number of consumer goroutines
	Items       int      // items each producer contributes
	Interval    int64    // heartbeat interval in consumption ticks
	MetricsAddr string   // optional prometheus listen address, empty disables
}

// ParseProducerList parses a comma-separated list of producer IDs:
// "alpha,beta,gamma". Blank entries are skipped, duplicates rejected.
func ParseProducerList(producersStr string) ([]string, error) {
	if producersStr == "" {
		return []string{}, nil
	}

	parts := strings.Split(producersStr, ",")
	ids := make([]string, 0, len(parts))
	seen := make(map[string]bool, len(parts))

	for _, part := range parts {
		id := strings.TrimSpace(part)
		if id == "" {
			continue
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate producer id: %s", id)
		}
		seen[id] = true
		ids = append(ids, id)
	}

	return ids, nil
}

// Validate checks that the configuration describes a runnable workload.
func (c *Config) Validate() error {
	switch c.QueueImpl {
	case ImplChannel, ImplCond, ImplSemaphore:
	default:
		return fmt.Errorf("unknown queue implementation: %q", c.QueueImpl)
	}
	if c.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive, got %d", c.Capacity)
	}
	if len(c.Producers) == 0 {
		return errors.New("at least one producer is required")
	}
	if c.Consumers <= 0 {
		return fmt.Errorf("consumers must be positive, got %d", c.Consumers)
	}
	if c.Items <= 0 {
		return fmt.Errorf("items per producer must be positive, got %d", c.Items)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("heartbeat interval must be positive, got %d", c.Interval)
	}
	return nil
}
