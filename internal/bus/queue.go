package bus

import (
	"context"
	"errors"
	"sync/atomic"
)

var (
	ErrQueueFull   = errors.New("datagram queue full")
	ErrQueueClosed = errors.New("datagram queue closed")
)

// Datagram is one captured feed buffer awaiting decode. Source identifies
// where the buffer came from (record ordinal for file input).
type Datagram struct {
	Source  uint32
	Payload []byte
}

// Queue is a bounded, non-blocking datagram queue.
type Queue struct {
	ch     chan Datagram
	closed uint32
}

// NewQueue allocates a queue with the given capacity.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = 1
	}
	return &Queue{ch: make(chan Datagram, capacity)}
}

// TryPublish enqueues a datagram without blocking. A full queue drops the
// datagram and reports ErrQueueFull; feed data is time-critical and stale
// buffers are worth less than fresh ones.
func (q *Queue) TryPublish(d Datagram) error {
	if atomic.LoadUint32(&q.closed) != 0 {
		return ErrQueueClosed
	}
	select {
	case q.ch <- d:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops the queue from accepting new datagrams. Buffered datagrams are
// still delivered to consumers.
func (q *Queue) Close() {
	if atomic.CompareAndSwapUint32(&q.closed, 0, 1) {
		close(q.ch)
	}
}

// Run consumes datagrams until the context is done or the queue is closed
// and drained.
func (q *Queue) Run(ctx context.Context, handler func(Datagram)) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-q.ch:
			if !ok {
				return
			}
			handler(d)
		}
	}
}
