package heartbeat

import (
	"errors"
	"sync"

	"go.uber.org/zap"
)

// deadIntervals is the number of heartbeat intervals a peer may stay silent
// before it is classified dead.
const deadIntervals = 2

// ErrInvalidInterval is returned by New when the heartbeat interval is zero
// or negative.
var ErrInvalidInterval = errors.New("heartbeat: interval must be positive")

// Status represents the liveness classification of a peer.
type Status int

const (
	Alive Status = iota
	Dead
)

// String returns the string representation of Status.
func (s Status) String() string {
	switch s {
	case Alive:
		return "ALIVE"
	case Dead:
		return "DEAD"
	default:
		return "UNKNOWN"
	}
}

// PeerState is a point-in-time view of one registered peer.
type PeerState struct {
	ID       string
	LastSeen int64
	Status   Status
}

// Tracker classifies registered peers as alive or dead from the logical
// timestamps of their heartbeat pings. The peer set is fixed at
// construction; pings from anyone else are counted and dropped.
type Tracker struct {
	mu       sync.RWMutex
	order    []string         // registration order, drives result ordering
	lastSeen map[string]int64 // id -> newest ping timestamp
	interval int64            // expected gap between pings
	logger   *zap.Logger

	unknownPings uint64
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger attaches a logger for dropped pings. The default discards
// everything.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Tracker) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// New creates a Tracker for the given peers and heartbeat interval. Every
// peer starts with a last-seen timestamp of zero, so peers that never ping
// are reported dead once the clock passes twice the interval. Duplicate IDs
// collapse into a single entry at their first position.
func New(peerIDs []string, interval int64, opts ...Option) (*Tracker, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	t := &Tracker{
		order:    make([]string, 0, len(peerIDs)),
		lastSeen: make(map[string]int64, len(peerIDs)),
		interval: interval,
		logger:   zap.NewNop(),
	}
	for _, id := range peerIDs {
		if _, exists := t.lastSeen[id]; exists {
			continue
		}
		t.lastSeen[id] = 0
		t.order = append(t.order, id)
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Ping records a heartbeat from the peer at the given timestamp. Pings from
// unregistered peers are dropped, as are pings older than the stored
// last-seen timestamp, so last-seen never moves backwards.
func (t *Tracker) Ping(timestamp int64, id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	last, exists := t.lastSeen[id]
	if !exists {
		t.unknownPings++
		t.logger.Debug("dropping ping from unregistered peer",
			zap.String("peer", id),
			zap.Int64("timestamp", timestamp))
		return
	}
	if timestamp < last {
		t.logger.Debug("dropping stale ping",
			zap.String("peer", id),
			zap.Int64("timestamp", timestamp),
			zap.Int64("last_seen", last))
		return
	}
	t.lastSeen[id] = timestamp
}

// DeadPeers returns the peers that have been silent for at least two
// heartbeat intervals as of the given timestamp, in registration order.
func (t *Tracker) DeadPeers(timestamp int64) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	dead := make([]string, 0)
	for _, id := range t.order {
		if t.deadAt(id, timestamp) {
			dead = append(dead, id)
		}
	}
	return dead
}

// AlivePeers returns the peers not classified dead as of the given
// timestamp, in registration order.
func (t *Tracker) AlivePeers(timestamp int64) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	alive := make([]string, 0)
	for _, id := range t.order {
		if !t.deadAt(id, timestamp) {
			alive = append(alive, id)
		}
	}
	return alive
}

// Snapshot returns the classification of every registered peer as of the
// given timestamp, in registration order.
func (t *Tracker) Snapshot(timestamp int64) []PeerState {
	t.mu.RLock()
	defer t.mu.RUnlock()

	states := make([]PeerState, 0, len(t.order))
	for _, id := range t.order {
		status := Alive
		if t.deadAt(id, timestamp) {
			status = Dead
		}
		states = append(states, PeerState{
			ID:       id,
			LastSeen: t.lastSeen[id],
			Status:   status,
		})
	}
	return states
}

// LastSeen returns the newest recorded ping timestamp for the peer. The
// boolean is false for unregistered peers.
func (t *Tracker) LastSeen(id string) (int64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	last, exists := t.lastSeen[id]
	return last, exists
}

// Len returns the number of registered peers.
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.order)
}

// Interval returns the heartbeat interval the tracker was built with.
func (t *Tracker) Interval() int64 {
	return t.interval
}

// UnknownPings returns how many pings were dropped because the sender was
// never registered.
func (t *Tracker) UnknownPings() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.unknownPings
}

// deadAt reports whether the peer is past the dead window at the given
// timestamp (must be called with lock held).
func (t *Tracker) deadAt(id string, timestamp int64) bool {
	return timestamp-t.lastSeen[id] >= deadIntervals*t.interval
}
