package sink

import (
	"sync/atomic"

	"github.com/philipp01105/streamlogger/core"
)

// Stats tracks entries per level
type Stats struct {
	// Separate atomic counters per level
	WrittenInfo    uint64
	WrittenWarn    uint64
	WrittenError   uint64
	DiscardedInfo  uint64
	DiscardedWarn  uint64
	DiscardedError uint64
	// OpenFailures counts failed attempts to open the file sink
	OpenFailures uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) writtenCounter(level core.Level) *uint64 {
	switch level {
	case core.InfoLevel:
		return &s.WrittenInfo
	case core.WarnLevel:
		return &s.WrittenWarn
	default:
		return &s.WrittenError
	}
}

func (s *Stats) discardedCounter(level core.Level) *uint64 {
	switch level {
	case core.InfoLevel:
		return &s.DiscardedInfo
	case core.WarnLevel:
		return &s.DiscardedWarn
	default:
		return &s.DiscardedError
	}
}

// IncrementWritten atomically increments the written counter for a level
func (s *Stats) IncrementWritten(level core.Level) {
	atomic.AddUint64(s.writtenCounter(level), 1)
}

// IncrementDiscarded atomically increments the discarded counter for a level
func (s *Stats) IncrementDiscarded(level core.Level) {
	atomic.AddUint64(s.discardedCounter(level), 1)
}

// IncrementOpenFailures atomically increments the open failure counter
func (s *Stats) IncrementOpenFailures() {
	atomic.AddUint64(&s.OpenFailures, 1)
}

// GetWritten returns the written count for a level
func (s *Stats) GetWritten(level core.Level) uint64 {
	return atomic.LoadUint64(s.writtenCounter(level))
}

// GetDiscarded returns the discarded count for a level
func (s *Stats) GetDiscarded(level core.Level) uint64 {
	return atomic.LoadUint64(s.discardedCounter(level))
}

// GetOpenFailures returns the open failure count
func (s *Stats) GetOpenFailures() uint64 {
	return atomic.LoadUint64(&s.OpenFailures)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.WrittenInfo, 0)
	atomic.StoreUint64(&s.WrittenWarn, 0)
	atomic.StoreUint64(&s.WrittenError, 0)
	atomic.StoreUint64(&s.DiscardedInfo, 0)
	atomic.StoreUint64(&s.DiscardedWarn, 0)
	atomic.StoreUint64(&s.DiscardedError, 0)
	atomic.StoreUint64(&s.OpenFailures, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Written      map[core.Level]uint64
	Discarded    map[core.Level]uint64
	OpenFailures uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Written:      make(map[core.Level]uint64, 3),
		Discarded:    make(map[core.Level]uint64, 3),
		OpenFailures: s.GetOpenFailures(),
	}
	for _, l := range core.Levels() {
		snap.Written[l] = s.GetWritten(l)
		snap.Discarded[l] = s.GetDiscarded(l)
	}
	return snap
}

// TotalWritten returns the written count across all levels
func (s Snapshot) TotalWritten() uint64 {
	var n uint64
	for _, v := range s.Written {
		n += v
	}
	return n
}

// TotalDiscarded returns the discarded count across all levels
func (s Snapshot) TotalDiscarded() uint64 {
	var n uint64
	for _, v := range s.Discarded {
		n += v
	}
	return n
}
