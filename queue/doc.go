// Package queue provides bounded FIFO queues with blocking
// producer/consumer semantics. Three interchangeable implementations cover
// the classic strategies: a single-lock monitor (CondQueue), token channels
// that let a producer and a consumer proceed at the same time
// (ChannelQueue), and weighted semaphores (SemaphoreQueue). Blocking calls
// take a context, so a stuck Put or Take cancels the usual Go way.
package queue
