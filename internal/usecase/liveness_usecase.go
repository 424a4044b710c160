package usecase

import (
	"context"

	"tracker/internal/domain/entity"

	"github.com/google/uuid"
)

// LivenessUsecase tracks whether each device is reporting. A device becomes
// Active on any location message and Inactive once it stays silent for the
// inactivity timeout. Only transitions are persisted and announced.
type LivenessUsecase interface {
	// MarkSeen records activity and re-arms the inactivity timer. The audience
	// receives deviceStatusUpdate events for this and the next transition.
	MarkSeen(ctx context.Context, deviceID uuid.UUID, audience []uuid.UUID) error

	// Clear cancels the timer and forgets the cached status.
	Clear(deviceID uuid.UUID)

	// Known reports whether the device has a cached status.
	Known(deviceID uuid.UUID) bool

	// Status returns the cached status.
	Status(deviceID uuid.UUID) (entity.DeviceStatus, bool)

	// Close stops every pending timer.
	Close()
}
