package impl

import (
	"context"
	"log/slog"

	"tracker/internal/domain/entity"
	"tracker/internal/domain/lifecycle"
	"tracker/internal/domain/repository"
	"tracker/internal/domain/service"
	"tracker/internal/domain/trace"
	"tracker/internal/errors"
	"tracker/internal/infra/metrics"
	"tracker/internal/usecase"

	"github.com/google/uuid"
)

type notificationService struct {
	userRepo         repository.UserRepository
	deviceRepo       repository.DeviceRepository
	notificationRepo repository.NotificationRepository
	bus              service.EventBus
	publisher        service.EventPublisher
	clock            service.Clock
	logger           *slog.Logger
	metrics          *metrics.Metrics
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	userRepo repository.UserRepository,
	deviceRepo repository.DeviceRepository,
	notificationRepo repository.NotificationRepository,
	bus service.EventBus,
	publisher service.EventPublisher,
	clock service.Clock,
	logger *slog.Logger,
	m *metrics.Metrics,
) usecase.NotificationUsecase {
	return &notificationService{
		userRepo:         userRepo,
		deviceRepo:       deviceRepo,
		notificationRepo: notificationRepo,
		bus:              bus,
		publisher:        publisher,
		clock:            clock,
		logger:           logger,
		metrics:          m,
	}
}

func (s *notificationService) Dispatch(ctx context.Context, req usecase.NotificationRequest) error {
	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if errors.Is(err, repository.ErrUserNotFound) || (err == nil && user == nil) {
		s.logger.Debug("[Notification] User not found, skipping",
			slog.String("user_id", req.UserID.String()),
			slog.String("type", req.Type),
		)

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "find notification recipient")
	}

	notification := &entity.Notification{
		ID:        uuid.New(),
		UserID:    req.UserID,
		Type:      req.Type,
		Data:      req.Data,
		CreatedAt: s.clock.Now(),
	}
	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return errors.Wrap(err, "save notification")
	}
	s.metrics.NotificationSaved()

	event := entity.Event{
		Kind:   entity.EventNewNotification,
		UserID: req.UserID,
		Payload: entity.NewNotificationPayload{
			Type:         req.Type,
			Data:         req.Data,
			Notification: notification,
		},
	}
	if err := s.bus.Publish(ctx, event); err != nil {
		s.logger.Warn("[Notification] Failed to publish newNotification",
			slog.String("notification_id", notification.ID.String()),
			slog.Any("error", err),
		)
	}

	s.export(ctx, notification)

	return nil
}

// export is best effort; the stored row is the source of truth.
func (s *notificationService) export(ctx context.Context, notification *entity.Notification) {
	if s.publisher == nil {
		return
	}

	event := &service.NotificationEvent{
		RequestID:      trace.ID(ctx),
		NotificationID: notification.ID.String(),
		UserID:         notification.UserID.String(),
		Type:           notification.Type,
		Data:           notification.Data,
		CreatedAt:      notification.CreatedAt,
	}
	if err := s.publisher.PublishNotificationEvent(ctx, event); err != nil {
		s.logger.Warn("[Notification] Failed to export notification",
			slog.String("notification_id", event.NotificationID),
			slog.Any("error", err),
		)
	}
}

func (s *notificationService) HandleDangerAlert(ctx context.Context, event entity.Event) {
	payload, ok := event.Payload.(entity.DangerAlertPayload)
	if !ok {
		s.logger.Warn("[Notification] Unexpected danger alert payload", slog.String("kind", string(event.Kind)))

		return
	}

	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	logger := s.logger.With(
		slog.String("device_id", payload.DeviceID.String()),
		slog.String("user_id", event.UserID.String()),
	)

	device, err := s.deviceRepo.FindDeviceByID(ctx, payload.DeviceID)
	if errors.Is(err, repository.ErrDeviceNotFound) {
		logger.Debug("[Notification] Device gone, dropping danger alert")

		return
	}
	if err != nil {
		logger.Error("[Notification] Failed to load device for danger alert", slog.Any("error", err))
		s.metrics.Alert(entity.NotificationTypeDangerAlert, metrics.AlertFailed)

		return
	}
	if device.UserID == nil {
		logger.Debug("[Notification] Device has no owner, dropping danger alert")

		return
	}

	childID := payload.ChildID
	if childID == nil {
		childID = device.UserID
	}

	err = s.Dispatch(ctx, usecase.NotificationRequest{
		UserID: event.UserID,
		Type:   entity.NotificationTypeDangerAlert,
		Data: map[string]any{
			"childId":  childID.String(),
			"deviceId": payload.DeviceID.String(),
			"location": payload.Location,
		},
	})
	if err != nil {
		logger.Error("[Notification] Failed to dispatch danger alert", slog.Any("error", err))
		s.metrics.Alert(entity.NotificationTypeDangerAlert, metrics.AlertFailed)

		return
	}
	s.metrics.Alert(entity.NotificationTypeDangerAlert, metrics.AlertDispatched)
}
