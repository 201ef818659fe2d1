package obs

import (
	"sync/atomic"
	"time"

	"main/internal/opra"
)

const maxAnomalyKind = int(opra.AnomalyUnexpectedIndicator)

// Metrics collects lightweight counters and latency stats for the decode
// pipeline. All methods are safe for concurrent use and tolerate a nil
// receiver.
type Metrics struct {
	blocks        uint64
	truncations   uint64
	queueDrops    uint64
	queueClosed   uint64
	messageCounts [256]uint64 // indexed by category byte
	anomalyCounts [maxAnomalyKind + 1]uint64

	decodeLatency LatencyStats
}

// LatencyStats aggregates duration samples in nanoseconds.
type LatencyStats struct {
	count uint64
	sum   uint64
	min   uint64
	max   uint64
}

// LatencySnapshot is a point-in-time view of latency stats.
type LatencySnapshot struct {
	Count uint64
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
}

// Snapshot captures the current metrics values.
type Snapshot struct {
	Blocks        uint64
	Truncations   uint64
	QueueDrops    uint64
	QueueClosed   uint64
	MessageCounts map[opra.Category]uint64
	AnomalyCounts map[opra.AnomalyKind]uint64
	DecodeLatency LatencySnapshot
}

// NewMetrics allocates a metrics container.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// ObserveBlock records one decode result: the block, its messages by
// category, and its anomalies by kind.
func (m *Metrics) ObserveBlock(blk *opra.Block, anomalies []opra.Anomaly, elapsed time.Duration) {
	if m == nil || blk == nil {
		return
	}
	atomic.AddUint64(&m.blocks, 1)
	for _, msg := range blk.Messages {
		atomic.AddUint64(&m.messageCounts[byte(msg.Category)], 1)
	}
	for _, a := range anomalies {
		idx := int(a.Kind)
		if idx >= 0 && idx < len(m.anomalyCounts) {
			atomic.AddUint64(&m.anomalyCounts[idx], 1)
		}
	}
	m.decodeLatency.Observe(elapsed)
}

// IncTruncation records a decode that failed on a truncated buffer.
func (m *Metrics) IncTruncation() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.truncations, 1)
}

// IncQueueDrop records a queue drop.
func (m *Metrics) IncQueueDrop() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.queueDrops, 1)
}

// IncQueueClosed records a closed-queue publish attempt.
func (m *Metrics) IncQueueClosed() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.queueClosed, 1)
}

// Snapshot returns a copy of the current metrics values.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	messageCounts := make(map[opra.Category]uint64)
	for i := range m.messageCounts {
		if v := atomic.LoadUint64(&m.messageCounts[i]); v > 0 {
			messageCounts[opra.Category(i)] = v
		}
	}
	anomalyCounts := make(map[opra.AnomalyKind]uint64)
	for i := range m.anomalyCounts {
		if v := atomic.LoadUint64(&m.anomalyCounts[i]); v > 0 {
			anomalyCounts[opra.AnomalyKind(i)] = v
		}
	}
	return Snapshot{
		Blocks:        atomic.LoadUint64(&m.blocks),
		Truncations:   atomic.LoadUint64(&m.truncations),
		QueueDrops:    atomic.LoadUint64(&m.queueDrops),
		QueueClosed:   atomic.LoadUint64(&m.queueClosed),
		MessageCounts: messageCounts,
		AnomalyCounts: anomalyCounts,
		DecodeLatency: m.decodeLatency.Snapshot(),
	}
}

// Observe records a duration sample.
func (l *LatencyStats) Observe(d time.Duration) {
	if d < 0 {
		return
	}
	nanos := uint64(d)
	atomic.AddUint64(&l.count, 1)
	atomic.AddUint64(&l.sum, nanos)

	for {
		min := atomic.LoadUint64(&l.min)
		if min != 0 && nanos >= min {
			break
		}
		if atomic.CompareAndSwapUint64(&l.min, min, nanos) {
			break
		}
	}

	for {
		max := atomic.LoadUint64(&l.max)
		if nanos <= max {
			break
		}
		if atomic.CompareAndSwapUint64(&l.max, max, nanos) {
			break
		}
	}
}

// Snapshot returns the aggregated latency stats.
func (l *LatencyStats) Snapshot() LatencySnapshot {
	count := atomic.LoadUint64(&l.count)
	if count == 0 {
		return LatencySnapshot{}
	}
	sum := atomic.LoadUint64(&l.sum)
	min := atomic.LoadUint64(&l.min)
	max := atomic.LoadUint64(&l.max)
	return LatencySnapshot{
		Count: count,
		Min:   time.Duration(min),
		Max:   time.Duration(max),
		Avg:   time.Duration(sum / count),
	}
}
