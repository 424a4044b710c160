package main

import (
	"context"
	"log/slog"

	"tracker/internal/delivery/push"
	"tracker/internal/domain/entity"
	"tracker/internal/domain/lifecycle"
	"tracker/internal/errors"
	"tracker/internal/infra/eventbus"
	"tracker/internal/usecase"

	"go.uber.org/fx"
)

type pipelineParams struct {
	fx.In
	fx.Lifecycle

	Bus           *eventbus.Bus
	Sessions      usecase.SessionUsecase
	Liveness      usecase.LivenessUsecase
	Notifications usecase.NotificationUsecase
	Registry      *push.Registry
	Logger        *slog.Logger
}

// startPipeline wires the bus subscribers and opens the device sessions.
// Its stop hook runs before the stores it depends on are closed.
func startPipeline(params pipelineParams) error {
	if err := params.Bus.Subscribe("notifications", params.Notifications.HandleDangerAlert,
		entity.EventDangerAlert,
	); err != nil {
		return errors.Wrap(err, "subscribe notification dispatcher")
	}

	if err := params.Bus.Subscribe("push", params.Registry.Handle,
		entity.EventDeviceChange,
		entity.EventDeviceStatusUpdate,
		entity.EventDangerAlert,
		entity.EventNewNotification,
	); err != nil {
		return errors.Wrap(err, "subscribe push registry")
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			params.Bus.Start()

			return params.Sessions.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			var errs []error
			if err := params.Sessions.Shutdown(stopCtx); err != nil {
				errs = append(errs, errors.Wrap(err, "shutdown sessions"))
			}
			params.Liveness.Close()
			if err := params.Bus.Close(stopCtx); err != nil {
				errs = append(errs, err)
			}
			params.Registry.Close()

			params.Logger.Info("[Pipeline] Stopped")

			return errors.Join(errs...)
		},
	})

	return nil
}
