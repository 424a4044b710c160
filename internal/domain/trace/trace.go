// Package trace carries a correlation ID from an HTTP request or a telemetry
// message through to the notifications it produces.
package trace

import (
	"context"

	"github.com/google/uuid"
)

type idKey struct{}

// WithID returns ctx carrying id.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, idKey{}, id)
}

// Ensure returns ctx unchanged when it already carries an ID, otherwise it
// attaches a fresh one.
func Ensure(ctx context.Context) context.Context {
	if ID(ctx) != "" {
		return ctx
	}

	return WithID(ctx, uuid.NewString())
}

// ID returns the correlation ID in ctx, or "".
func ID(ctx context.Context) string {
	id, _ := ctx.Value(idKey{}).(string)

	return id
}
