// Package heartbeat provides a failure detector driven by a logical clock.
// Registered peers report liveness through timestamped pings and are
// classified dead once they stay silent for two heartbeat intervals. The
// caller supplies every timestamp, so the tracker never reads wall time and
// a fixed call sequence always replays to the same classifications.
package heartbeat
