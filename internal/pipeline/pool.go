// Package pipeline runs the decode stage: a fixed set of workers pulling
// captured buffers from the datagram queue, one DecodeBlock call each.
// Decoding is stateless, so workers need no coordination beyond the queue.
package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/yanun0323/logs"

	"main/internal/bus"
	"main/internal/obs"
	"main/internal/opra"
)

// Result is one decoded datagram handed to the sink. Block is always
// non-nil; on a truncated buffer it holds everything decoded before the
// failure.
type Result struct {
	Source    uint32
	Block     *opra.Block
	Anomalies []opra.Anomaly
	Err       error
}

// Pool decodes datagrams from a queue on Workers goroutines.
type Pool struct {
	Workers int
	Metrics *obs.Metrics
}

// Run blocks until the queue is drained or the context is done. sink may be
// nil; when set it is called once per datagram and must be safe for
// concurrent use.
func (p *Pool) Run(ctx context.Context, q *bus.Queue, sink func(Result)) {
	workers := p.Workers
	if workers <= 0 {
		workers = 1
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			q.Run(ctx, func(d bus.Datagram) {
				p.decode(d, sink)
			})
		}()
	}
	wg.Wait()
}

func (p *Pool) decode(d bus.Datagram, sink func(Result)) {
	start := time.Now()
	blk, anomalies, err := opra.DecodeBlock(d.Payload)
	p.Metrics.ObserveBlock(blk, anomalies, time.Since(start))

	if err != nil {
		p.Metrics.IncTruncation()
		logs.Errorf("decode block from source %d, err: %+v", d.Source, err)
	}
	for _, a := range anomalies {
		logs.Infof("source %d: %s at offset %d: %s", d.Source, a.Kind, a.Offset, a.Detail)
	}

	if sink != nil {
		sink(Result{Source: d.Source, Block: blk, Anomalies: anomalies, Err: err})
	}
}
