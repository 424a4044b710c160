package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tracker/config"
	"tracker/internal/domain/entity"
	"tracker/internal/domain/lifecycle"
	"tracker/internal/domain/repository"
	"tracker/internal/domain/service"
	"tracker/internal/errors"
	"tracker/internal/infra/metrics"
	"tracker/internal/usecase"

	"github.com/google/uuid"
)

const defaultInactivityTimeout = 30 * time.Second

// livenessEntry is the per-device state. generation increases whenever the
// pending timer is replaced or cancelled, so a fire that lost the race can
// tell it is stale.
type livenessEntry struct {
	mu         sync.Mutex
	status     entity.DeviceStatus
	audience   []uuid.UUID
	timer      service.Timer
	generation uint64
	removed    bool
}

type livenessService struct {
	deviceRepo repository.DeviceRepository
	bus        service.EventBus
	clock      service.Clock
	timeout    time.Duration
	logger     *slog.Logger
	metrics    *metrics.Metrics

	mu      sync.Mutex
	entries map[uuid.UUID]*livenessEntry
}

// NewLivenessService creates the liveness tracker.
func NewLivenessService(
	cfg *config.Config,
	deviceRepo repository.DeviceRepository,
	bus service.EventBus,
	clock service.Clock,
	logger *slog.Logger,
	m *metrics.Metrics,
) usecase.LivenessUsecase {
	timeout := defaultInactivityTimeout
	if cfg != nil && cfg.Liveness != nil && cfg.Liveness.InactivityTimeout > 0 {
		timeout = cfg.Liveness.InactivityTimeout
	}

	return &livenessService{
		deviceRepo: deviceRepo,
		bus:        bus,
		clock:      clock,
		timeout:    timeout,
		logger:     logger,
		metrics:    m,
		entries:    make(map[uuid.UUID]*livenessEntry),
	}
}

func (s *livenessService) MarkSeen(ctx context.Context, deviceID uuid.UUID, audience []uuid.UUID) error {
	entry := s.lockEntry(deviceID)
	defer entry.mu.Unlock()

	entry.audience = audience

	var err error
	if entry.status != entity.DeviceStatusActive {
		err = s.transition(ctx, deviceID, entry, entity.DeviceStatusActive)
	}

	entry.generation++
	if entry.timer != nil {
		entry.timer.Stop()
	}
	generation := entry.generation
	entry.timer = s.clock.AfterFunc(s.timeout, func() {
		s.expire(deviceID, entry, generation)
	})

	return err
}

// lockEntry returns the live entry for the device with its mutex held,
// creating it when absent.
func (s *livenessService) lockEntry(deviceID uuid.UUID) *livenessEntry {
	for {
		s.mu.Lock()
		entry, ok := s.entries[deviceID]
		if !ok {
			entry = &livenessEntry{}
			s.entries[deviceID] = entry
		}
		s.mu.Unlock()

		entry.mu.Lock()
		if !entry.removed {
			return entry
		}
		entry.mu.Unlock()
	}
}

func (s *livenessService) expire(deviceID uuid.UUID, entry *livenessEntry, generation uint64) {
	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.removed || entry.generation != generation {
		return
	}
	entry.timer = nil

	if entry.status == entity.DeviceStatusInactive {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := s.transition(ctx, deviceID, entry, entity.DeviceStatusInactive); err != nil {
		s.logger.Error("[Liveness] Failed to mark device inactive",
			slog.String("device_id", deviceID.String()),
			slog.Any("error", err),
		)

		return
	}

	s.logger.Info("[Liveness] Device inactive",
		slog.String("device_id", deviceID.String()),
		slog.Duration("timeout", s.timeout),
	)
}

// transition persists the new status first; the cache and the audience only
// see it once it is stored. Caller holds entry.mu.
func (s *livenessService) transition(ctx context.Context, deviceID uuid.UUID, entry *livenessEntry, status entity.DeviceStatus) error {
	if err := s.deviceRepo.UpdateDeviceStatus(ctx, deviceID, status); err != nil {
		return errors.Wrapf(err, "persist device status %s", status)
	}
	entry.status = status
	s.metrics.StatusTransition(status.String())

	for _, userID := range entry.audience {
		event := entity.Event{
			Kind:    entity.EventDeviceStatusUpdate,
			UserID:  userID,
			Payload: entity.DeviceStatusPayload{DeviceID: deviceID, Status: status},
		}
		if err := s.bus.Publish(ctx, event); err != nil {
			s.logger.Warn("[Liveness] Failed to publish status update",
				slog.String("device_id", deviceID.String()),
				slog.String("user_id", userID.String()),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

func (s *livenessService) Clear(deviceID uuid.UUID) {
	s.mu.Lock()
	entry, ok := s.entries[deviceID]
	delete(s.entries, deviceID)
	s.mu.Unlock()

	if ok {
		s.retire(entry)
	}
}

func (s *livenessService) retire(entry *livenessEntry) {
	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.removed = true
	entry.generation++
	if entry.timer != nil {
		entry.timer.Stop()
		entry.timer = nil
	}
}

func (s *livenessService) Known(deviceID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.entries[deviceID]

	return ok
}

func (s *livenessService) Status(deviceID uuid.UUID) (entity.DeviceStatus, bool) {
	s.mu.Lock()
	entry, ok := s.entries[deviceID]
	s.mu.Unlock()
	if !ok {
		return entity.DeviceStatusUnknown, false
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	return entry.status, !entry.removed
}

func (s *livenessService) Close() {
	s.mu.Lock()
	entries := s.entries
	s.entries = make(map[uuid.UUID]*livenessEntry)
	s.mu.Unlock()

	for _, entry := range entries {
		s.retire(entry)
	}
}
