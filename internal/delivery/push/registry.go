// Package push delivers bus events to connected websocket clients.
package push

import (
	"context"
	"log/slog"
	"sync"

	"tracker/internal/domain/entity"
	"tracker/internal/infra/metrics"

	"github.com/google/uuid"
)

// Frame is the JSON envelope written to clients.
type Frame struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Conn is one live client connection.
type Conn interface {
	// Send enqueues a frame without blocking. It reports false when the
	// frame was dropped.
	Send(frame Frame) bool
	Close()
}

// Registry maps each user to its most recent connection. Events for users
// without a connection are dropped.
type Registry struct {
	logger  *slog.Logger
	metrics *metrics.Metrics

	mu     sync.RWMutex
	byUser map[uuid.UUID]Conn
	byConn map[Conn]uuid.UUID
}

func NewRegistry(logger *slog.Logger, m *metrics.Metrics) *Registry {
	return &Registry{
		logger:  logger,
		metrics: m,
		byUser:  make(map[uuid.UUID]Conn),
		byConn:  make(map[Conn]uuid.UUID),
	}
}

// Register binds conn to userID, replacing any earlier connection of that
// user. The replaced connection stays open but no longer receives events.
func (r *Registry) Register(userID uuid.UUID, conn Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prevUser, ok := r.byConn[conn]; ok {
		if prevUser == userID {
			return
		}
		delete(r.byUser, prevUser)
		r.metrics.PushClientUnregistered()
	}

	if prev, ok := r.byUser[userID]; ok {
		delete(r.byConn, prev)
		r.metrics.PushClientUnregistered()
	}

	r.byUser[userID] = conn
	r.byConn[conn] = userID
	r.metrics.PushClientRegistered()

	r.logger.Debug("[Push] Client registered", slog.String("user_id", userID.String()))
}

// Unregister forgets conn. It is a no-op for replaced or unknown connections.
func (r *Registry) Unregister(conn Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userID, ok := r.byConn[conn]
	if !ok {
		return
	}

	delete(r.byConn, conn)
	if r.byUser[userID] == conn {
		delete(r.byUser, userID)
	}
	r.metrics.PushClientUnregistered()

	r.logger.Debug("[Push] Client unregistered", slog.String("user_id", userID.String()))
}

// Deliver sends one event to userID. It reports whether the frame was enqueued.
func (r *Registry) Deliver(userID uuid.UUID, event string, payload any) bool {
	r.mu.RLock()
	conn, ok := r.byUser[userID]
	r.mu.RUnlock()

	if !ok {
		return false
	}

	if !conn.Send(Frame{Event: event, Data: payload}) {
		r.metrics.PushFrameDropped()
		r.logger.Warn("[Push] Frame dropped",
			slog.String("user_id", userID.String()),
			slog.String("event", event),
		)

		return false
	}

	return true
}

// Handle adapts Deliver to the event bus.
func (r *Registry) Handle(_ context.Context, event entity.Event) {
	r.Deliver(event.UserID, string(event.Kind), event.Payload)
}

// Connected reports whether userID has a live connection.
func (r *Registry) Connected(userID uuid.UUID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byUser[userID]

	return ok
}

// Close closes every registered connection.
func (r *Registry) Close() {
	r.mu.Lock()
	conns := make([]Conn, 0, len(r.byConn))
	for conn := range r.byConn {
		conns = append(conns, conn)
	}
	r.byUser = make(map[uuid.UUID]Conn)
	r.byConn = make(map[Conn]uuid.UUID)
	r.mu.Unlock()

	for _, conn := range conns {
		conn.Close()
	}
}
