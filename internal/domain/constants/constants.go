package constants

// Pub/Sub providers for the notification exporter.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// ContextKeyUserID is set on echo.Context by the HTTP auth middleware.
const ContextKeyUserID = "userID"
