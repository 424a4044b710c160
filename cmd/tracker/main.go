package main

import (
	"context"
	"log/slog"
	"os"

	"tracker/config"
	"tracker/internal/delivery"
	"tracker/internal/delivery/api"
	"tracker/internal/delivery/api/middleware"
	"tracker/internal/delivery/api/router/handler"
	"tracker/internal/delivery/push"
	"tracker/internal/domain/service"
	"tracker/internal/infra/auth"
	"tracker/internal/infra/broker"
	"tracker/internal/infra/cache"
	"tracker/internal/infra/clock"
	"tracker/internal/infra/eventbus"
	"tracker/internal/infra/geo"
	logs "tracker/internal/infra/log"
	"tracker/internal/infra/metrics"
	"tracker/internal/infra/persistence/postgres"
	"tracker/internal/infra/pubsub"
	"tracker/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startPipeline,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
		clock.New,
		postgres.New,
		fx.Annotate(
			eventbus.New,
			fx.As(fx.Self()),
			fx.As(new(service.EventBus)),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewDeviceRepository,
			postgres.NewLocationRepository,
			postgres.NewGeofenceRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			geo.NewGeofenceService,
			cache.NewAlertCooldown,
			fx.Annotate(
				broker.NewConnector,
				fx.As(new(service.TelemetryConnector)),
			),
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLivenessService,
			impl.NewNotificationService,
			impl.NewSessionService,
			impl.NewGeofenceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			push.NewRegistry,
			handler.NewHealthHandler,
			handler.NewSessionHandler,
			handler.NewGeofenceHandler,
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
