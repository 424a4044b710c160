package eventbus

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"tracker/config"
	"tracker/internal/domain/entity"
	"tracker/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	events []entity.Event
}

func (r *recorder) handle(_ context.Context, event entity.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) snapshot() []entity.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]entity.Event(nil), r.events...)
}

func newTestBus(queueSize int) *Bus {
	cfg := &config.Config{EventBus: &config.EventBusConfig{QueueSize: queueSize}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return New(cfg, logger, metrics.New())
}

func TestBus_RoutesByKindInOrder(t *testing.T) {
	bus := newTestBus(16)
	all := &recorder{}
	danger := &recorder{}

	require.NoError(t, bus.Subscribe("push", all.handle,
		entity.EventDeviceChange, entity.EventDeviceStatusUpdate, entity.EventDangerAlert, entity.EventNewNotification))
	require.NoError(t, bus.Subscribe("dispatcher", danger.handle, entity.EventDangerAlert))
	bus.Start()

	ctx := context.Background()
	userID := uuid.New()
	kinds := []entity.EventKind{
		entity.EventDeviceChange,
		entity.EventDangerAlert,
		entity.EventDeviceStatusUpdate,
		entity.EventNewNotification,
	}
	for _, kind := range kinds {
		require.NoError(t, bus.Publish(ctx, entity.Event{Kind: kind, UserID: userID}))
	}

	require.NoError(t, bus.Close(ctx))

	got := all.snapshot()
	require.Len(t, got, len(kinds))
	for i, kind := range kinds {
		assert.Equal(t, kind, got[i].Kind)
		assert.Equal(t, userID, got[i].UserID)
	}

	dangerEvents := danger.snapshot()
	require.Len(t, dangerEvents, 1)
	assert.Equal(t, entity.EventDangerAlert, dangerEvents[0].Kind)
}

func TestBus_SubscribeAfterStart(t *testing.T) {
	bus := newTestBus(1)
	bus.Start()

	err := bus.Subscribe("late", func(context.Context, entity.Event) {}, entity.EventDangerAlert)
	assert.ErrorIs(t, err, ErrBusStarted)
	require.NoError(t, bus.Close(context.Background()))
}

func TestBus_PublishAfterClose(t *testing.T) {
	bus := newTestBus(1)
	bus.Start()
	require.NoError(t, bus.Close(context.Background()))

	err := bus.Publish(context.Background(), entity.Event{Kind: entity.EventDangerAlert})
	assert.ErrorIs(t, err, ErrBusClosed)
}

func TestBus_FullQueueGivesUpOnContext(t *testing.T) {
	bus := newTestBus(1)
	release := make(chan struct{})
	started := make(chan struct{}, 1)

	require.NoError(t, bus.Subscribe("slow", func(context.Context, entity.Event) {
		select {
		case started <- struct{}{}:
		default:
		}
		<-release
	}, entity.EventDeviceStatusUpdate))
	bus.Start()

	ctx := context.Background()
	event := entity.Event{Kind: entity.EventDeviceStatusUpdate, UserID: uuid.New()}

	require.NoError(t, bus.Publish(ctx, event))
	<-started
	require.NoError(t, bus.Publish(ctx, event))

	timeoutCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	err := bus.Publish(timeoutCtx, event)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	require.NoError(t, bus.Close(ctx))
}

func TestBus_HandlerPanicDoesNotStopWorker(t *testing.T) {
	bus := newTestBus(4)
	rec := &recorder{}
	calls := 0

	require.NoError(t, bus.Subscribe("flaky", func(ctx context.Context, event entity.Event) {
		calls++
		if calls == 1 {
			panic("boom")
		}
		rec.handle(ctx, event)
	}, entity.EventNewNotification))
	bus.Start()

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, entity.Event{Kind: entity.EventNewNotification}))
	require.NoError(t, bus.Publish(ctx, entity.Event{Kind: entity.EventNewNotification}))
	require.NoError(t, bus.Close(ctx))

	assert.Len(t, rec.snapshot(), 1)
}

func TestBus_DefaultQueueSize(t *testing.T) {
	bus := New(nil, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	assert.Equal(t, 1024, bus.queueSize)
}
