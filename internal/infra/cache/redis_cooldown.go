package cache

import (
	"context"
	"time"

	"tracker/internal/domain/service"
	"tracker/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const cooldownKeyPrefix = "tracker:alert-cooldown:"

// redisCooldown stores one key per user holding the last alerted device; the
// key's TTL is the cooldown window.
type redisCooldown struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCooldown returns a cooldown cache backed by Redis key expiry.
func NewRedisCooldown(client *redis.Client, ttl time.Duration) service.AlertCooldown {
	return &redisCooldown{client: client, ttl: ttl}
}

func (c *redisCooldown) Suppressed(ctx context.Context, userID, deviceID uuid.UUID) (bool, error) {
	value, err := c.client.Get(ctx, cooldownKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to read alert cooldown")
	}

	return value == deviceID.String(), nil
}

func (c *redisCooldown) Mark(ctx context.Context, userID, deviceID uuid.UUID) error {
	if err := c.client.Set(ctx, cooldownKey(userID), deviceID.String(), c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write alert cooldown")
	}

	return nil
}

func (c *redisCooldown) Close() error {
	return errors.WithStack(c.client.Close())
}

func cooldownKey(userID uuid.UUID) string {
	return cooldownKeyPrefix + userID.String()
}
