package cache

import (
	"context"
	"log/slog"

	"tracker/config"
	"tracker/internal/domain/lifecycle"
	"tracker/internal/domain/service"
	"tracker/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// CooldownParams holds dependencies for the alert cooldown, injected by Fx
type CooldownParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	Clock  service.Clock
}

// NewAlertCooldown picks the cooldown backend from alert.backend.
func NewAlertCooldown(params CooldownParams) (service.AlertCooldown, error) {
	cfg := params.Config.Alert
	logger := params.Logger

	var cooldown service.AlertCooldown

	switch cfg.Backend {
	case config.CooldownBackendMemory:
		logger.Info("Using in-memory alert cooldown", slog.Duration("ttl", cfg.Cooldown))

		cooldown = NewMemoryCooldown(params.Clock, cfg.Cooldown)

	case config.CooldownBackendRedis:
		if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis cooldown backend")
		}
		client := redis.NewClient(&redis.Options{
			Addr:     params.Config.Redis.Addr,
			Password: params.Config.Redis.Password,
			DB:       params.Config.Redis.DB,
		})
		logger.Info("Using Redis alert cooldown",
			slog.String("addr", params.Config.Redis.Addr),
			slog.Duration("ttl", cfg.Cooldown),
		)

		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return errors.Wrap(client.Ping(ctx).Err(), "failed to ping Redis")
			},
		})

		cooldown = NewRedisCooldown(client, cfg.Cooldown)

	default:
		return nil, errors.Errorf("unknown alert cooldown backend: %s", cfg.Backend)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing alert cooldown")

			return cooldown.Close()
		},
	})

	return cooldown, nil
}
