package pubsub

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"tracker/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewPublisher_NoopWhenUnconfigured(t *testing.T) {
	publisher, err := newPublisher(context.Background(), nil, discardLogger())
	require.NoError(t, err)

	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishNotificationEvent(context.Background(), testEvent()))
	assert.NoError(t, publisher.Close())
}

func TestNewPublisher_Local(t *testing.T) {
	publisher, err := newPublisher(context.Background(), &config.PubSubConfig{
		Provider:      "local",
		LocalEndpoint: "http://localhost:9999/push",
	}, discardLogger())
	require.NoError(t, err)

	assert.IsType(t, &localHTTPPublisher{}, publisher)
}

func TestNewPublisher_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.PubSubConfig
	}{
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "p"}},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newPublisher(context.Background(), tt.cfg, discardLogger())

			assert.Error(t, err)
		})
	}
}
