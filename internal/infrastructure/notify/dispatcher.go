// Package notify implements the asynchronous notification dispatcher.
package notify

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/monsterwith/monstermedia/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Sink delivers a single notification. Implementations may talk to an email
// gateway, a push service, or just the log.
type Sink interface {
	Deliver(ctx context.Context, n ports.Notification) error
}

// Dispatcher fans notifications out to a fixed set of workers, sharded by
// recipient email so notifications to one address keep their order. Notify
// never blocks: when a worker's buffer is full the notification is dropped
// and logged.
type Dispatcher struct {
	workers []chan ports.Notification
	sink    Sink
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink Sink, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.Notification, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.Notification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Notify enqueues a notification for delivery. Fire-and-forget: the caller is
// never blocked and never sees a delivery error.
func (d *Dispatcher) Notify(_ context.Context, n ports.Notification) {
	select {
	case d.workers[d.shardIndex(n.Email)] <- n:
	default:
		d.log.Warn().
			Str("kind", string(n.Kind)).
			Str("email", n.Email).
			Msg("notification dropped: worker buffer full")
	}
}

// shardIndex maps a recipient email deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.Notification) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			if err := d.sink.Deliver(ctx, n); err != nil {
				d.log.Error().Err(err).
					Str("kind", string(n.Kind)).
					Str("email", n.Email).
					Int("worker_id", id).
					Msg("notification delivery failed")
			}
		}
	}
}

// LogSink writes notifications to the structured log. Stands in until a real
// delivery channel is wired up.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Deliver(_ context.Context, n ports.Notification) error {
	s.log.Info().
		Str("kind", string(n.Kind)).
		Str("email", n.Email).
		Int64("request_id", n.RequestID).
		Msg("notification dispatched")
	return nil
}
