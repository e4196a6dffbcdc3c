package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/lamsaclean/backoffice-api/internal/api/metrics"
	"github.com/lamsaclean/backoffice-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Dispatcher writes dashboard notifications off the request path. Events
// are routed to a fixed set of workers by consistent hashing on the
// category, so notifications of one category are written in the order they
// were produced.
type Dispatcher struct {
	workers []chan ports.CreateNotificationInput
	service ports.NotificationService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.NotificationService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.CreateNotificationInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.CreateNotificationInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Notify queues a notification for its category worker. The call is
// non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Notify(input ports.CreateNotificationInput) {
	i := d.shardIndex(input.Category)
	d.workers[i] <- input
	metrics.NotificationQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps a category deterministically to a worker index.
func (d *Dispatcher) shardIndex(category string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(category))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.CreateNotificationInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case input, ok := <-ch:
			if !ok {
				return
			}
			metrics.NotificationQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
			if _, err := d.service.Create(ctx, input); err != nil {
				metrics.NotificationsFanoutTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("category", input.Category).
					Int("worker_id", id).
					Msg("notification fan-out failed")
				continue
			}
			metrics.NotificationsFanoutTotal.WithLabelValues("ok").Inc()
		}
	}
}
