// Package notify delivers inquiry notifications asynchronously so the
// contact-form request never waits on a downstream channel (email, CRM
// webhook). Notifications for the same lead email always land on the same
// worker, keeping per-contact delivery ordered.
package notify

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/terravista/realty-api/internal/api/metrics"
	"github.com/terravista/realty-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Sink is a notification delivery target.
type Sink interface {
	Deliver(ctx context.Context, n ports.InquiryNotification) error
}

// Dispatcher fans inquiry notifications out to a fixed set of workers,
// sharded by contact email.
type Dispatcher struct {
	workers []chan ports.InquiryNotification
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
		workers: make([]chan ports.InquiryNotification, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.InquiryNotification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a notification to the worker responsible for its contact
// email. The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(n ports.InquiryNotification) {
	i := d.shardIndex(n.Email)
	d.workers[i] <- n
	metrics.NotifyQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps a contact email deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.InquiryNotification) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			metrics.NotifyQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			if err := d.sink.Deliver(ctx, n); err != nil {
				metrics.NotifyProcessedTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("inquiry_id", n.InquiryID).
					Int("worker_id", id).
					Msg("notification delivery failed")
				continue
			}
			metrics.NotifyProcessedTotal.WithLabelValues("ok").Inc()
		}
	}
}

// LogSink records notifications in the structured log. It stands in until a
// real delivery channel (SMTP, CRM webhook) is configured.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Deliver(_ context.Context, n ports.InquiryNotification) error {
	s.log.Info().
		Str("inquiry_id", n.InquiryID).
		Str("name", n.Name).
		Str("email", n.Email).
		Str("property_id", n.PropertyID).
		Msg("new inquiry notification")
	return nil
}
