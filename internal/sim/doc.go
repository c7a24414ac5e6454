// Package sim drives configurable producer/consumer workloads through the
// bounded queues while a heartbeat tracker watches producer liveness. The
// logical clock is the count of consumed items, so a run's liveness
// classifications depend only on the consumption order, not on wall time.
package sim
