package obs

import (
	"testing"
	"time"

	"main/internal/opra"
)

func TestMetricsObserveBlock(t *testing.T) {
	m := NewMetrics()

	blk := &opra.Block{Messages: []opra.Message{
		{Category: opra.CategoryShortQuote},
		{Category: opra.CategoryShortQuote},
		{Category: opra.CategoryControl},
	}}
	anomalies := []opra.Anomaly{
		{Kind: opra.AnomalyLengthMismatch},
		{Kind: opra.AnomalyUnknownDenomCode},
		{Kind: opra.AnomalyUnknownDenomCode},
	}

	m.ObserveBlock(blk, anomalies, 20*time.Microsecond)
	m.ObserveBlock(&opra.Block{}, nil, 10*time.Microsecond)
	m.IncTruncation()
	m.IncQueueDrop()

	s := m.Snapshot()
	if s.Blocks != 2 {
		t.Fatalf("blocks: got %d, want 2", s.Blocks)
	}
	if s.MessageCounts[opra.CategoryShortQuote] != 2 || s.MessageCounts[opra.CategoryControl] != 1 {
		t.Fatalf("message counts: %v", s.MessageCounts)
	}
	if s.AnomalyCounts[opra.AnomalyUnknownDenomCode] != 2 {
		t.Fatalf("anomaly counts: %v", s.AnomalyCounts)
	}
	if s.Truncations != 1 || s.QueueDrops != 1 {
		t.Fatalf("truncations %d drops %d", s.Truncations, s.QueueDrops)
	}
	if s.DecodeLatency.Count != 2 ||
		s.DecodeLatency.Min != 10*time.Microsecond ||
		s.DecodeLatency.Max != 20*time.Microsecond ||
		s.DecodeLatency.Avg != 15*time.Microsecond {
		t.Fatalf("latency: %+v", s.DecodeLatency)
	}
}

func TestMetricsNilReceiver(t *testing.T) {
	var m *Metrics
	m.ObserveBlock(&opra.Block{}, nil, time.Millisecond)
	m.IncTruncation()
	m.IncQueueDrop()
	m.IncQueueClosed()
	if s := m.Snapshot(); s.Blocks != 0 {
		t.Fatalf("nil metrics snapshot: %+v", s)
	}
}
