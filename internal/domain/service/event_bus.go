package service

import (
	"context"

	"tracker/internal/domain/entity"
)

// EventHandler consumes events delivered by the bus.
type EventHandler func(ctx context.Context, event entity.Event)

// EventBus is the producer side of the in-process fan-out.
type EventBus interface {
	// Publish enqueues the event for every subscriber of its kind.
	Publish(ctx context.Context, event entity.Event) error
}
