package bus

import (
	"context"
	"errors"
	"testing"
)

func TestQueuePublishAndDrain(t *testing.T) {
	q := NewQueue(4)
	for i := 0; i < 3; i++ {
		if err := q.TryPublish(Datagram{Source: uint32(i), Payload: []byte{byte(i)}}); err != nil {
			t.Fatal(err)
		}
	}
	q.Close()

	var got []uint32
	q.Run(context.Background(), func(d Datagram) {
		got = append(got, d.Source)
	})

	if len(got) != 3 {
		t.Fatalf("drained %d datagrams, want 3", len(got))
	}
	for i, src := range got {
		if src != uint32(i) {
			t.Fatalf("datagram %d has source %d, order not preserved", i, src)
		}
	}
}

func TestQueueFull(t *testing.T) {
	q := NewQueue(1)
	if err := q.TryPublish(Datagram{}); err != nil {
		t.Fatal(err)
	}
	if err := q.TryPublish(Datagram{}); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("got %v, want ErrQueueFull", err)
	}
}

func TestQueueClosed(t *testing.T) {
	q := NewQueue(1)
	q.Close()
	q.Close() // idempotent
	if err := q.TryPublish(Datagram{}); !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("got %v, want ErrQueueClosed", err)
	}
}

func TestQueueRunStopsOnContext(t *testing.T) {
	q := NewQueue(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	q.Run(ctx, func(Datagram) { t.Fatal("handler must not run after cancel") })
}
