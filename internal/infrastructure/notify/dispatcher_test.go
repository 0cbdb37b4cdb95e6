package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/monsterwith/monstermedia/internal/core/ports"
)

type captureSink struct {
	mu        sync.Mutex
	delivered []ports.Notification
	done      chan struct{}
	want      int
}

func newCaptureSink(want int) *captureSink {
	return &captureSink{done: make(chan struct{}), want: want}
}

func (s *captureSink) Deliver(_ context.Context, n ports.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delivered = append(s.delivered, n)
	if len(s.delivered) == s.want {
		close(s.done)
	}
	return nil
}

func TestDispatcher_DeliversAll(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := newCaptureSink(3)
	d := NewDispatcher(2, sink, zerolog.Nop())
	d.Start(ctx)

	d.Notify(ctx, ports.Notification{Kind: ports.NotifyVipRequestReceived, Email: "a@example.com", RequestID: 1})
	d.Notify(ctx, ports.Notification{Kind: ports.NotifyVipRequestApproved, Email: "b@example.com", RequestID: 2})
	d.Notify(ctx, ports.Notification{Kind: ports.NotifyVipRequestRejected, Email: "a@example.com", RequestID: 3})

	select {
	case <-sink.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for deliveries")
	}

	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.delivered) != 3 {
		t.Fatalf("expected 3 deliveries, got %d", len(sink.delivered))
	}
}

func TestDispatcher_SameRecipientKeepsOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	const n = 20
	sink := newCaptureSink(n)
	d := NewDispatcher(4, sink, zerolog.Nop())
	d.Start(ctx)

	for i := 1; i <= n; i++ {
		d.Notify(ctx, ports.Notification{Kind: ports.NotifyVipRequestReceived, Email: "same@example.com", RequestID: int64(i)})
	}

	select {
	case <-sink.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for deliveries")
	}

	sink.mu.Lock()
	defer sink.mu.Unlock()
	for i, got := range sink.delivered {
		if got.RequestID != int64(i+1) {
			t.Fatalf("delivery %d out of order: got request %d", i, got.RequestID)
		}
	}
}
