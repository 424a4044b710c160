package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/lifecycle"
	"tracker/internal/domain/repository"
	"tracker/internal/domain/service"
	"tracker/internal/domain/trace"
	"tracker/internal/errors"
	"tracker/internal/infra/metrics"
	"tracker/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// deviceSession is the runtime state of one device connection. mu serializes
// message handling; closed is set under mu on deactivation so late messages
// from the old connection are ignored.
type deviceSession struct {
	deviceID    uuid.UUID
	name        string
	childID     *uuid.UUID
	audience    []uuid.UUID
	activatedAt time.Time
	conn        service.TelemetryConnection
	logger      *slog.Logger

	mu     sync.Mutex
	closed bool
}

// SessionServiceParams holds the collaborators of the session manager, injected by Fx.
type SessionServiceParams struct {
	fx.In

	DeviceRepo    repository.DeviceRepository
	UserRepo      repository.UserRepository
	LocationRepo  repository.LocationRepository
	GeofenceRepo  repository.GeofenceRepository
	Geofences     service.GeofenceService
	Cooldown      service.AlertCooldown
	Connector     service.TelemetryConnector
	Bus           service.EventBus
	Clock         service.Clock
	Liveness      usecase.LivenessUsecase
	Notifications usecase.NotificationUsecase
	Logger        *slog.Logger
	Metrics       *metrics.Metrics `optional:"true"`
}

type sessionService struct {
	deviceRepo    repository.DeviceRepository
	userRepo      repository.UserRepository
	locationRepo  repository.LocationRepository
	geofenceRepo  repository.GeofenceRepository
	geofences     service.GeofenceService
	cooldown      service.AlertCooldown
	connector     service.TelemetryConnector
	bus           service.EventBus
	clock         service.Clock
	liveness      usecase.LivenessUsecase
	notifications usecase.NotificationUsecase
	logger        *slog.Logger
	metrics       *metrics.Metrics
	validate      *validator.Validate

	locks    *keyedMutex
	mu       sync.RWMutex
	sessions map[string]*deviceSession
}

// NewSessionService creates the device session manager.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		deviceRepo:    params.DeviceRepo,
		userRepo:      params.UserRepo,
		locationRepo:  params.LocationRepo,
		geofenceRepo:  params.GeofenceRepo,
		geofences:     params.Geofences,
		cooldown:      params.Cooldown,
		connector:     params.Connector,
		bus:           params.Bus,
		clock:         params.Clock,
		liveness:      params.Liveness,
		notifications: params.Notifications,
		logger:        params.Logger,
		metrics:       params.Metrics,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		locks:         newKeyedMutex(),
		sessions:      make(map[string]*deviceSession),
	}
}

func (s *sessionService) Activate(ctx context.Context, deviceName string) error {
	deviceName = strings.TrimSpace(deviceName)
	if deviceName == "" {
		return domainerrors.ErrValidationFailed.WithDetails("device name is required")
	}

	unlock := s.locks.Lock(deviceName)
	defer unlock()

	err := s.activate(ctx, deviceName)
	if errors.Is(err, domainerrors.ErrDuplicateSession) {
		s.logger.Debug("[Session] Device already active", slog.String("device", deviceName))

		return nil
	}

	return err
}

// activate runs with the device name locked.
func (s *sessionService) activate(ctx context.Context, deviceName string) error {
	if s.lookup(deviceName) != nil {
		return domainerrors.ErrDuplicateSession
	}

	device, err := s.deviceRepo.FindDeviceByName(ctx, deviceName)
	if errors.Is(err, repository.ErrDeviceNotFound) {
		s.logger.Warn("[Session] Device not found", slog.String("device", deviceName))

		return domainerrors.ErrDeviceNotFound.WithDetails(deviceName)
	}
	if err != nil {
		return errors.Wrapf(err, "load device %s", deviceName)
	}

	audience, err := s.resolveAudience(ctx, device)
	if err != nil {
		return err
	}

	sess := &deviceSession{
		deviceID:    device.ID,
		name:        device.Name,
		childID:     device.UserID,
		audience:    audience,
		activatedAt: s.clock.Now(),
		logger: s.logger.With(
			slog.String("device", device.Name),
			slog.String("device_id", device.ID.String()),
		),
	}

	// Read before connecting: a message handled right after Connect would
	// register the device with the liveness tracker first.
	known := s.liveness.Known(device.ID)

	creds := service.DeviceCredentials{DeviceName: device.Name, Password: device.Password}
	conn, err := s.connector.Connect(ctx, creds, func(msg service.TelemetryMessage) {
		s.handleMessage(sess, msg)
	})
	if err != nil {
		sess.logger.Error("[Session] Failed to open broker connection", slog.Any("error", err))

		return domainerrors.ErrConnectionFailure.WithDetails(err.Error())
	}
	sess.conn = conn

	s.mu.Lock()
	s.sessions[deviceName] = sess
	s.mu.Unlock()
	s.metrics.SessionOpened()

	if !known {
		s.announce(ctx, sess, entity.DeviceChangeAdded)
	}

	sess.logger.Info("[Session] Activated", slog.Int("audience", len(audience)))

	return nil
}

// resolveAudience returns the owning child and the child's guardian, driver
// and admin. It is computed once per activation.
func (s *sessionService) resolveAudience(ctx context.Context, device *entity.Device) ([]uuid.UUID, error) {
	if device.UserID == nil {
		return nil, nil
	}

	child, err := s.userRepo.FindByID(ctx, *device.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return []uuid.UUID{*device.UserID}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "load device owner")
	}

	return child.AssociatedUsers(), nil
}

func (s *sessionService) Deactivate(ctx context.Context, deviceName string) error {
	deviceName = strings.TrimSpace(deviceName)

	unlock := s.locks.Lock(deviceName)
	defer unlock()

	s.mu.Lock()
	sess, ok := s.sessions[deviceName]
	delete(s.sessions, deviceName)
	s.mu.Unlock()

	if !ok {
		s.logger.Debug("[Session] Device was not active", slog.String("device", deviceName))

		return nil
	}

	sess.mu.Lock()
	sess.closed = true
	sess.mu.Unlock()

	sess.conn.Close()
	s.liveness.Clear(sess.deviceID)
	s.metrics.SessionClosed()
	s.announce(ctx, sess, entity.DeviceChangeRemoved)

	sess.logger.Info("[Session] Deactivated")

	return nil
}

func (s *sessionService) announce(ctx context.Context, sess *deviceSession, action entity.DeviceChangeAction) {
	for _, userID := range sess.audience {
		event := entity.Event{
			Kind:    entity.EventDeviceChange,
			UserID:  userID,
			Payload: entity.DeviceChangePayload{Action: action, DeviceID: sess.deviceID},
		}
		if err := s.bus.Publish(ctx, event); err != nil {
			sess.logger.Warn("[Session] Failed to publish device change",
				slog.String("action", string(action)),
				slog.String("user_id", userID.String()),
				slog.Any("error", err),
			)
		}
	}
}

func (s *sessionService) Start(ctx context.Context) error {
	reset, err := s.deviceRepo.ResetActiveDevices(ctx)
	if err != nil {
		return errors.Wrap(err, "reset active devices")
	}
	s.logger.Info("[Session] Reset active devices to inactive", slog.Int64("count", reset))

	devices, err := s.deviceRepo.FindMonitorableDevices(ctx)
	if err != nil {
		return errors.Wrap(err, "list monitorable devices")
	}

	activated := 0
	for _, device := range devices {
		if !device.Monitorable() {
			continue
		}
		if err := s.Activate(ctx, device.Name); err != nil {
			s.logger.Error("[Session] Failed to activate device at startup",
				slog.String("device", device.Name),
				slog.Any("error", err),
			)

			continue
		}
		activated++
	}

	s.logger.Info("[Session] Startup activation finished",
		slog.Int("devices", len(devices)),
		slog.Int("activated", activated),
	)

	return nil
}

func (s *sessionService) Shutdown(ctx context.Context) error {
	s.mu.RLock()
	names := make([]string, 0, len(s.sessions))
	for name := range s.sessions {
		names = append(names, name)
	}
	s.mu.RUnlock()

	var errs []error
	for _, name := range names {
		if err := s.Deactivate(ctx, name); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (s *sessionService) Sessions() []usecase.SessionInfo {
	s.mu.RLock()
	infos := make([]usecase.SessionInfo, 0, len(s.sessions))
	for _, sess := range s.sessions {
		infos = append(infos, usecase.SessionInfo{
			DeviceID:    sess.deviceID,
			DeviceName:  sess.name,
			ChildID:     sess.childID,
			Audience:    slices.Clone(sess.audience),
			ActivatedAt: sess.activatedAt,
		})
	}
	s.mu.RUnlock()

	slices.SortFunc(infos, func(a, b usecase.SessionInfo) int {
		return strings.Compare(a.DeviceName, b.DeviceName)
	})

	return infos
}

func (s *sessionService) lookup(deviceName string) *deviceSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sessions[deviceName]
}

func (s *sessionService) handleMessage(sess *deviceSession, msg service.TelemetryMessage) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.closed {
		s.metrics.TelemetryMessage(msg.Kind.String(), metrics.ResultIgnored)

		return
	}

	ctx, cancel := context.WithTimeout(trace.Ensure(context.Background()), lifecycle.DefaultTimeout)
	defer cancel()

	report, err := s.decode(msg.Payload)
	if err != nil {
		sess.logger.Warn("[Session] Dropping malformed telemetry",
			slog.String("topic", msg.Topic),
			slog.Any("error", err),
		)
		s.metrics.TelemetryMessage(msg.Kind.String(), metrics.ResultMalformed)

		return
	}

	switch msg.Kind {
	case service.TelemetryLocation:
		err = s.handleLocation(ctx, sess, report.Point())
	case service.TelemetryDanger:
		err = s.handleDanger(ctx, sess, report.Point())
	default:
		s.metrics.TelemetryMessage(msg.Kind.String(), metrics.ResultIgnored)

		return
	}

	if err != nil {
		sess.logger.Error("[Session] Failed to process telemetry",
			slog.String("topic", msg.Topic),
			slog.Any("error", err),
		)
		s.metrics.TelemetryMessage(msg.Kind.String(), metrics.ResultFailed)

		return
	}
	s.metrics.TelemetryMessage(msg.Kind.String(), metrics.ResultProcessed)
}

func (s *sessionService) decode(payload []byte) (*entity.PositionReport, error) {
	var report entity.PositionReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, domainerrors.ErrMalformedPayload.WithDetails(err.Error())
	}
	if err := s.validate.Struct(&report); err != nil {
		return nil, domainerrors.ErrMalformedPayload.WithDetails(err.Error())
	}

	return &report, nil
}

// handleLocation classifies the position, raises geofence alerts when it is
// outside every assigned geofence, stores it and refreshes liveness. A store
// outage never suppresses alerts or liveness; the first store error is
// returned after both have run.
func (s *sessionService) handleLocation(ctx context.Context, sess *deviceSession, point entity.GeoPoint) error {
	var storeErr error

	fences, err := s.geofenceRepo.FindGeofencesByDevice(ctx, sess.deviceID)
	if err != nil {
		sess.logger.Error("[Session] Failed to load assigned geofences, skipping evaluation", slog.Any("error", err))
		storeErr = errors.Wrap(err, "load assigned geofences")
	}

	location := &entity.Location{
		ID:        uuid.New(),
		DeviceID:  sess.deviceID,
		Point:     point,
		Status:    entity.LocationStatusSafe,
		CreatedAt: s.clock.Now(),
	}
	if err == nil {
		location.Status = s.geofences.Evaluate(point, fences)
	}

	if location.Status == entity.LocationStatusDanger {
		s.raiseGeofenceAlerts(ctx, sess, location)
	}

	if err := s.locationRepo.CreateLocation(ctx, location); err != nil {
		sess.logger.Error("[Session] Failed to save location", slog.Any("error", err))
		if storeErr == nil {
			storeErr = errors.Wrap(err, "save location")
		}
	}

	if err := s.liveness.MarkSeen(ctx, sess.deviceID, sess.audience); err != nil {
		sess.logger.Warn("[Session] Failed to update liveness", slog.Any("error", err))
	}

	return storeErr
}

func (s *sessionService) raiseGeofenceAlerts(ctx context.Context, sess *deviceSession, location *entity.Location) {
	for _, userID := range sess.audience {
		logger := sess.logger.With(slog.String("user_id", userID.String()))

		suppressed, err := s.cooldown.Suppressed(ctx, userID, sess.deviceID)
		if err != nil {
			logger.Warn("[Session] Cooldown lookup failed, alerting anyway", slog.Any("error", err))
		}
		if suppressed {
			logger.Debug("[Session] Geofence alert suppressed by cooldown")
			s.metrics.Alert(entity.NotificationTypeGeofenceAlert, metrics.AlertSuppressed)

			continue
		}

		err = s.notifications.Dispatch(ctx, usecase.NotificationRequest{
			UserID: userID,
			Type:   entity.NotificationTypeGeofenceAlert,
			Data: map[string]any{
				"deviceId": sess.deviceID.String(),
				"location": location.Point,
			},
		})
		if err != nil {
			logger.Error("[Session] Failed to dispatch geofence alert", slog.Any("error", err))
			s.metrics.Alert(entity.NotificationTypeGeofenceAlert, metrics.AlertFailed)

			continue
		}
		s.metrics.Alert(entity.NotificationTypeGeofenceAlert, metrics.AlertDispatched)

		if err := s.cooldown.Mark(ctx, userID, sess.deviceID); err != nil {
			logger.Warn("[Session] Failed to record alert cooldown", slog.Any("error", err))
		}
	}
}

// handleDanger stores the position as Danger and fans a dangerAlert out to
// every associated user. Danger signals never consult the cooldown.
func (s *sessionService) handleDanger(ctx context.Context, sess *deviceSession, point entity.GeoPoint) error {
	location := &entity.Location{
		ID:        uuid.New(),
		DeviceID:  sess.deviceID,
		Point:     point,
		Status:    entity.LocationStatusDanger,
		CreatedAt: s.clock.Now(),
	}
	saveErr := s.locationRepo.CreateLocation(ctx, location)
	if saveErr != nil {
		sess.logger.Error("[Session] Failed to save danger location, alerting anyway", slog.Any("error", saveErr))
	}

	sess.logger.Warn("[Session] Danger signal received")

	for _, userID := range sess.audience {
		event := entity.Event{
			Kind:   entity.EventDangerAlert,
			UserID: userID,
			Payload: entity.DangerAlertPayload{
				ChildID:  sess.childID,
				DeviceID: sess.deviceID,
				Location: point,
			},
		}
		if err := s.bus.Publish(ctx, event); err != nil {
			sess.logger.Warn("[Session] Failed to publish danger alert",
				slog.String("user_id", userID.String()),
				slog.Any("error", err),
			)
		}
	}

	return errors.Wrap(saveErr, "save danger location")
}
