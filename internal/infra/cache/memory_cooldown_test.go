package cache

import (
	"context"
	"testing"
	"time"

	"tracker/internal/infra/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemoryCooldown(t *testing.T) (*memoryCooldown, *clock.Fake) {
	t.Helper()
	fake := clock.NewFake(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC))
	cooldown := NewMemoryCooldown(fake, 5*time.Minute).(*memoryCooldown)
	t.Cleanup(func() { _ = cooldown.Close() })

	return cooldown, fake
}

func TestMemoryCooldown_SuppressesSameDeviceWithinWindow(t *testing.T) {
	ctx := context.Background()
	cooldown, fake := newTestMemoryCooldown(t)
	user, device := uuid.New(), uuid.New()

	suppressed, err := cooldown.Suppressed(ctx, user, device)
	require.NoError(t, err)
	assert.False(t, suppressed)

	require.NoError(t, cooldown.Mark(ctx, user, device))

	fake.Advance(4 * time.Minute)
	suppressed, err = cooldown.Suppressed(ctx, user, device)
	require.NoError(t, err)
	assert.True(t, suppressed)

	fake.Advance(time.Minute)
	suppressed, err = cooldown.Suppressed(ctx, user, device)
	require.NoError(t, err)
	assert.False(t, suppressed)
}

func TestMemoryCooldown_DifferentDeviceIsNotSuppressed(t *testing.T) {
	ctx := context.Background()
	cooldown, _ := newTestMemoryCooldown(t)
	user := uuid.New()

	require.NoError(t, cooldown.Mark(ctx, user, uuid.New()))

	suppressed, err := cooldown.Suppressed(ctx, user, uuid.New())
	require.NoError(t, err)
	assert.False(t, suppressed)
}

func TestMemoryCooldown_MarkOverwritesDeviceForUser(t *testing.T) {
	ctx := context.Background()
	cooldown, _ := newTestMemoryCooldown(t)
	user, first, second := uuid.New(), uuid.New(), uuid.New()

	require.NoError(t, cooldown.Mark(ctx, user, first))
	require.NoError(t, cooldown.Mark(ctx, user, second))

	suppressedFirst, _ := cooldown.Suppressed(ctx, user, first)
	suppressedSecond, _ := cooldown.Suppressed(ctx, user, second)
	assert.False(t, suppressedFirst)
	assert.True(t, suppressedSecond)
	assert.Equal(t, 1, cooldown.Len())
}

func TestMemoryCooldown_EvictsWithoutReads(t *testing.T) {
	ctx := context.Background()
	cooldown, fake := newTestMemoryCooldown(t)

	for range 10 {
		require.NoError(t, cooldown.Mark(ctx, uuid.New(), uuid.New()))
		fake.Advance(10 * time.Second)
	}
	assert.Equal(t, 10, cooldown.Len())
	assert.Equal(t, 1, fake.Pending())

	fake.Advance(5*time.Minute - 100*time.Second)
	assert.Equal(t, 9, cooldown.Len())

	fake.Advance(2 * time.Minute)
	assert.Equal(t, 0, cooldown.Len())
	assert.Equal(t, 0, fake.Pending())
}

func TestMemoryCooldown_RemarkExtendsWindow(t *testing.T) {
	ctx := context.Background()
	cooldown, fake := newTestMemoryCooldown(t)
	user, device := uuid.New(), uuid.New()

	require.NoError(t, cooldown.Mark(ctx, user, device))
	fake.Advance(4 * time.Minute)
	require.NoError(t, cooldown.Mark(ctx, user, device))
	fake.Advance(4 * time.Minute)

	suppressed, err := cooldown.Suppressed(ctx, user, device)
	require.NoError(t, err)
	assert.True(t, suppressed)
	assert.Equal(t, 1, cooldown.Len())
}

func TestMemoryCooldown_CloseStopsTimer(t *testing.T) {
	ctx := context.Background()
	cooldown, fake := newTestMemoryCooldown(t)

	require.NoError(t, cooldown.Mark(ctx, uuid.New(), uuid.New()))
	require.Equal(t, 1, fake.Pending())

	require.NoError(t, cooldown.Close())

	assert.Equal(t, 0, fake.Pending())
	assert.Equal(t, 0, cooldown.Len())
	require.NoError(t, cooldown.Mark(ctx, uuid.New(), uuid.New()))
	assert.Equal(t, 0, cooldown.Len())
}
