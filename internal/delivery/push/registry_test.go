package push

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"tracker/internal/domain/entity"
	"tracker/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu     sync.Mutex
	frames []Frame
	full   bool
	closed bool
}

func (c *fakeConn) Send(frame Frame) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.full {
		return false
	}
	c.frames = append(c.frames, frame)

	return true
}

func (c *fakeConn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
}

func (c *fakeConn) received() []Frame {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]Frame(nil), c.frames...)
}

func newTestRegistry() (*Registry, *metrics.Metrics) {
	m := metrics.New()

	return NewRegistry(slog.New(slog.NewTextHandler(io.Discard, nil)), m), m
}

func TestRegistry_DeliverToRegisteredUser(t *testing.T) {
	registry, _ := newTestRegistry()
	userID := uuid.New()
	conn := &fakeConn{}
	registry.Register(userID, conn)

	ok := registry.Deliver(userID, "deviceStatusUpdate", map[string]any{"status": 1})

	assert.True(t, ok)
	require.Len(t, conn.received(), 1)
	assert.Equal(t, "deviceStatusUpdate", conn.received()[0].Event)
}

func TestRegistry_OfflineUserDropped(t *testing.T) {
	registry, _ := newTestRegistry()

	assert.False(t, registry.Deliver(uuid.New(), "deviceChange", nil))
}

func TestRegistry_LastRegistrationWins(t *testing.T) {
	registry, m := newTestRegistry()
	userID := uuid.New()
	first, second := &fakeConn{}, &fakeConn{}

	registry.Register(userID, first)
	registry.Register(userID, second)
	registry.Deliver(userID, "deviceChange", nil)

	assert.Empty(t, first.received())
	assert.Len(t, second.received(), 1)
	assert.False(t, first.closed)

	// The stale connection going away must not unbind the new one.
	registry.Unregister(first)
	assert.True(t, registry.Connected(userID))
	assert.InDelta(t, 1.0, gaugeValue(t, m, "tracker_push_clients"), 1e-9)
}

func TestRegistry_Unregister(t *testing.T) {
	registry, m := newTestRegistry()
	userID := uuid.New()
	conn := &fakeConn{}
	registry.Register(userID, conn)

	registry.Unregister(conn)
	registry.Unregister(conn)

	assert.False(t, registry.Connected(userID))
	assert.False(t, registry.Deliver(userID, "deviceChange", nil))
	assert.InDelta(t, 0.0, gaugeValue(t, m, "tracker_push_clients"), 1e-9)
}

func TestRegistry_FullBufferCountsDrop(t *testing.T) {
	registry, m := newTestRegistry()
	userID := uuid.New()
	registry.Register(userID, &fakeConn{full: true})

	assert.False(t, registry.Deliver(userID, "newNotification", nil))
	assert.InDelta(t, 1.0, gaugeValue(t, m, "tracker_push_frames_dropped_total"), 1e-9)
}

func TestRegistry_HandleUsesEventKind(t *testing.T) {
	registry, _ := newTestRegistry()
	userID := uuid.New()
	conn := &fakeConn{}
	registry.Register(userID, conn)
	payload := entity.DeviceChangePayload{Action: entity.DeviceChangeAdded, DeviceID: uuid.New()}

	registry.Handle(context.Background(), entity.Event{
		Kind:    entity.EventDeviceChange,
		UserID:  userID,
		Payload: payload,
	})

	require.Len(t, conn.received(), 1)
	assert.Equal(t, Frame{Event: "deviceChange", Data: payload}, conn.received()[0])
}

func TestRegistry_CloseClosesConnections(t *testing.T) {
	registry, _ := newTestRegistry()
	a, b := &fakeConn{}, &fakeConn{}
	registry.Register(uuid.New(), a)
	registry.Register(uuid.New(), b)

	registry.Close()

	assert.True(t, a.closed)
	assert.True(t, b.closed)
}

func gaugeValue(t *testing.T, m *metrics.Metrics, name string) float64 {
	t.Helper()

	families, err := m.Gatherer().Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		metric := family.GetMetric()[0]
		if metric.GetGauge() != nil {
			return metric.GetGauge().GetValue()
		}

		return metric.GetCounter().GetValue()
	}

	return 0
}

