package pipeline

import (
	"context"
	"encoding/binary"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/bus"
	"main/internal/obs"
	"main/internal/opra"
)

// emptyBlock builds a valid 21-byte block carrying zero messages.
func emptyBlock(seq uint32) []byte {
	b := []byte{1}
	b = binary.BigEndian.AppendUint16(b, 21)
	b = append(b, 'O', ' ', 0)
	b = binary.BigEndian.AppendUint32(b, seq)
	b = append(b, 0)
	b = binary.BigEndian.AppendUint32(b, 1700000000)
	b = binary.BigEndian.AppendUint32(b, 0)
	return binary.BigEndian.AppendUint16(b, 0xBEEF)
}

func TestPoolDecodesAllDatagrams(t *testing.T) {
	q := bus.NewQueue(16)
	for i := uint32(0); i < 5; i++ {
		require.NoError(t, q.TryPublish(bus.Datagram{Source: i, Payload: emptyBlock(i)}))
	}
	require.NoError(t, q.TryPublish(bus.Datagram{Source: 99, Payload: emptyBlock(99)[:10]}))
	q.Close()

	metrics := obs.NewMetrics()
	pool := &Pool{Workers: 3, Metrics: metrics}

	var mu sync.Mutex
	var results []Result
	pool.Run(context.Background(), q, func(r Result) {
		mu.Lock()
		results = append(results, r)
		mu.Unlock()
	})

	require.Len(t, results, 6)

	truncated := 0
	for _, r := range results {
		require.NotNil(t, r.Block)
		if r.Err != nil {
			truncated++
			assert.True(t, errors.Is(r.Err, opra.ErrTruncated))
			assert.Equal(t, uint32(99), r.Source)
		} else {
			assert.Equal(t, r.Source, r.Block.SequenceNumber)
		}
	}
	assert.Equal(t, 1, truncated)

	s := metrics.Snapshot()
	assert.Equal(t, uint64(6), s.Blocks)
	assert.Equal(t, uint64(1), s.Truncations)
	assert.Equal(t, uint64(6), s.DecodeLatency.Count)
}

func TestPoolDefaultsToOneWorker(t *testing.T) {
	q := bus.NewQueue(1)
	require.NoError(t, q.TryPublish(bus.Datagram{Source: 1, Payload: emptyBlock(1)}))
	q.Close()

	pool := &Pool{Metrics: obs.NewMetrics()}
	var got int
	pool.Run(context.Background(), q, func(Result) { got++ })
	assert.Equal(t, 1, got)
}
