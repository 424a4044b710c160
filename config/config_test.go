package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Broker   BrokerConfig   `yaml:"broker"`
	Liveness LivenessConfig `yaml:"liveness"`
}

func TestLoadWithEnv_OverridesFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
broker:
  url: tcp://localhost:1883
  topicPrefix: tracking/
liveness:
  inactivityTimeout: 30s
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sample.yaml"), content, 0o600))
	t.Chdir(dir)
	t.Setenv("BROKER_TOPICPREFIX", "fleet/")
	t.Setenv("LIVENESS_INACTIVITYTIMEOUT", "45s")

	cfg, err := LoadWithEnv[testConfig]("sample")

	require.NoError(t, err)
	assert.Equal(t, "tcp://localhost:1883", cfg.Broker.URL)
	assert.Equal(t, "fleet/", cfg.Broker.TopicPrefix)
	assert.Equal(t, 45*time.Second, cfg.Liveness.InactivityTimeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[testConfig]("absent")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	cfg.ApplyDefaults()

	assert.Equal(t, 30*time.Second, cfg.Liveness.InactivityTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Alert.Cooldown)
	assert.Equal(t, CooldownBackendMemory, cfg.Alert.Backend)
	assert.InDelta(t, 20.0, cfg.Geofence.RouteToleranceMeters, 1e-9)
	assert.False(t, cfg.Geofence.SkipDisabled)
	assert.Equal(t, "tracking/", cfg.Broker.TopicPrefix)
	assert.Equal(t, 1, cfg.Broker.QoS)
	assert.Equal(t, time.Second, cfg.Broker.Backoff.Initial)
	assert.Equal(t, 30*time.Second, cfg.Broker.Backoff.Max)
	assert.Equal(t, 256, cfg.Push.SendBuffer)
	assert.Equal(t, 1024, cfg.EventBus.QueueSize)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowQueryThreshold)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Liveness: &LivenessConfig{InactivityTimeout: time.Minute},
		Alert:    &AlertConfig{Cooldown: time.Second, Backend: CooldownBackendRedis},
		Broker:   &BrokerConfig{TopicPrefix: "fleet/", QoS: 0},
	}

	cfg.ApplyDefaults()

	assert.Equal(t, time.Minute, cfg.Liveness.InactivityTimeout)
	assert.Equal(t, time.Second, cfg.Alert.Cooldown)
	assert.Equal(t, CooldownBackendRedis, cfg.Alert.Backend)
	assert.Equal(t, "fleet/", cfg.Broker.TopicPrefix)
	assert.Equal(t, 0, cfg.Broker.QoS)
}
