// Package eventbus is the in-process fan-out between telemetry producers and
// the notification and push subscribers.
package eventbus

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"tracker/config"
	"tracker/internal/domain/entity"
	"tracker/internal/domain/service"
	"tracker/internal/errors"
	"tracker/internal/infra/metrics"
)

// ErrBusClosed is returned by Publish after Close.
var ErrBusClosed = errors.New("event bus closed")

// ErrBusStarted is returned by Subscribe once the bus is running; the subscriber
// set is fixed at wiring time.
var ErrBusStarted = errors.New("event bus already started")

type subscriber struct {
	name   string
	kinds  []entity.EventKind
	handle service.EventHandler
	queue  chan entity.Event
}

// Bus delivers every published event to each subscriber of its kind. Each
// subscriber owns a FIFO queue drained by one goroutine, so per-subscriber
// order matches publish order.
type Bus struct {
	logger    *slog.Logger
	metrics   *metrics.Metrics
	queueSize int

	mu          sync.RWMutex
	subscribers []*subscriber
	started     bool
	closed      bool
	wg          sync.WaitGroup
}

// New returns an idle bus. Register subscribers, then call Start.
func New(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) *Bus {
	queueSize := 1024
	if cfg != nil && cfg.EventBus != nil && cfg.EventBus.QueueSize > 0 {
		queueSize = cfg.EventBus.QueueSize
	}

	return &Bus{
		logger:    logger,
		metrics:   m,
		queueSize: queueSize,
	}
}

// Subscribe registers handle for the given kinds.
func (b *Bus) Subscribe(name string, handle service.EventHandler, kinds ...entity.EventKind) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.started || b.closed {
		return ErrBusStarted
	}

	b.subscribers = append(b.subscribers, &subscriber{
		name:   name,
		kinds:  kinds,
		handle: handle,
		queue:  make(chan entity.Event, b.queueSize),
	})

	return nil
}

// Start launches one worker per subscriber.
func (b *Bus) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.started {
		return
	}
	b.started = true

	for _, sub := range b.subscribers {
		b.wg.Add(1)
		go b.run(sub)
	}

	b.logger.Info("[EventBus] Started", slog.Int("subscribers", len(b.subscribers)))
}

// Publish enqueues the event for every interested subscriber. It blocks only
// when a subscriber queue is full, and gives up when ctx is done.
func (b *Bus) Publish(ctx context.Context, event entity.Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}

	b.metrics.EventPublished(string(event.Kind))

	for _, sub := range b.subscribers {
		if !slices.Contains(sub.kinds, event.Kind) {
			continue
		}

		select {
		case sub.queue <- event:
		case <-ctx.Done():
			b.metrics.EventDropped(sub.name)
			b.logger.Warn("[EventBus] Dropped event, subscriber queue full",
				slog.String("subscriber", sub.name),
				slog.String("kind", string(event.Kind)),
				slog.String("user_id", event.UserID.String()),
			)

			return errors.Wrap(ctx.Err(), "publish event")
		}
	}

	return nil
}

// Close stops accepting events and waits until queued events are handled or ctx ends.
func (b *Bus) Close(ctx context.Context) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()

		return nil
	}
	b.closed = true
	for _, sub := range b.subscribers {
		close(sub.queue)
	}
	started := b.started
	b.mu.Unlock()

	if !started {
		return nil
	}

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		b.logger.Info("[EventBus] Drained")

		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "drain event bus")
	}
}

func (b *Bus) run(sub *subscriber) {
	defer b.wg.Done()

	for event := range sub.queue {
		b.dispatch(sub, event)
	}
}

func (b *Bus) dispatch(sub *subscriber, event entity.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("[EventBus] Subscriber panicked",
				slog.String("subscriber", sub.name),
				slog.String("kind", string(event.Kind)),
				slog.Any("panic", r),
			)
		}
	}()

	sub.handle(context.Background(), event)
}

var _ service.EventBus = (*Bus)(nil)
