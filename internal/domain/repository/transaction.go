package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
type TransactionManager interface {
	// Execute runs fn within a database transaction, rolling back if fn returns an error.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repositories bound to a single transaction.
type RepositoryFactory interface {
	DeviceRepo() DeviceRepository
	GeofenceRepo() GeofenceRepository
}
