package repository

import (
	"context"

	"tracker/internal/domain/entity"
)

// LocationRepository appends location records. Locations are never updated.
type LocationRepository interface {
	CreateLocation(ctx context.Context, location *entity.Location) error
}
