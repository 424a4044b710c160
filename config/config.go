package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath = "."

	defaultInactivityTimeout    = 30 * time.Second
	defaultAlertCooldown        = 5 * time.Minute
	defaultRouteToleranceMeters = 20.0
	defaultTopicPrefix          = "tracking/"
	defaultBrokerQoS            = 1
	defaultConnectTimeout       = 10 * time.Second
	defaultKeepAlive            = 60 * time.Second
	defaultBackoffInitial       = time.Second
	defaultBackoffMax           = 30 * time.Second
	defaultBackoffMultiplier    = 2.0
	defaultBackoffJitter        = 0.5
	defaultEventQueueSize       = 1024
	defaultPushSendBuffer       = 256
	defaultPushWriteWait        = 10 * time.Second
	defaultPushPongWait         = 60 * time.Second
	defaultSlowQueryThreshold   = 200 * time.Millisecond
	defaultPoolMonitorInterval  = 5 * time.Second
	defaultMaxRequestBodySize   = "1M"
)

// Cooldown backends.
const (
	CooldownBackendMemory = "memory"
	CooldownBackendRedis  = "redis"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		// MaxRequestBodySize uses echo's BodyLimit notation, e.g. "1M".
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// InternalToken guards the device assignment hooks. Empty disables the check.
		InternalToken string `json:"internalToken" yaml:"internalToken"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Database tunes query logging and pool monitoring on top of Postgres
	Database *DatabaseConfig `json:"database" yaml:"database"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Broker configuration for the device telemetry connection
	Broker *BrokerConfig `json:"broker" yaml:"broker"`

	// Liveness configuration for the inactivity state machine
	Liveness *LivenessConfig `json:"liveness" yaml:"liveness"`

	// Alert configuration for geofence alert deduplication
	Alert *AlertConfig `json:"alert" yaml:"alert"`

	// Redis configuration, used when alert.backend is "redis"
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Geofence evaluation settings
	Geofence *GeofenceConfig `json:"geofence" yaml:"geofence"`

	// Push configuration for websocket clients
	Push *PushConfig `json:"push" yaml:"push"`

	// EventBus configuration for the in-process fan-out
	EventBus *EventBusConfig `json:"eventBus" yaml:"eventBus"`

	// PubSub configuration for exporting notifications
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

type DatabaseConfig struct {
	SlowQueryThreshold  time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
	PoolMonitorInterval time.Duration `json:"poolMonitorInterval" yaml:"poolMonitorInterval"`
}

// BrokerConfig defines the MQTT broker connection used by every device session.
type BrokerConfig struct {
	URL            string        `json:"url" yaml:"url"`
	TopicPrefix    string        `json:"topicPrefix" yaml:"topicPrefix"`
	QoS            int           `json:"qos" yaml:"qos"`
	KeepAlive      time.Duration `json:"keepAlive" yaml:"keepAlive"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
	Backoff        BackoffConfig `json:"backoff" yaml:"backoff"`
}

// BackoffConfig controls reconnect pacing after a broker link drops.
type BackoffConfig struct {
	Initial    time.Duration `json:"initial" yaml:"initial"`
	Max        time.Duration `json:"max" yaml:"max"`
	Multiplier float64       `json:"multiplier" yaml:"multiplier"`
	Jitter     float64       `json:"jitter" yaml:"jitter"`
}

// LivenessConfig defines the inactivity window after which a device is marked inactive.
type LivenessConfig struct {
	InactivityTimeout time.Duration `json:"inactivityTimeout" yaml:"inactivityTimeout"`
}

// AlertConfig defines geofence alert deduplication.
type AlertConfig struct {
	Cooldown time.Duration `json:"cooldown" yaml:"cooldown"`
	// Backend is "memory" or "redis"
	Backend string `json:"backend" yaml:"backend"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// GeofenceConfig defines geofence evaluation behavior.
type GeofenceConfig struct {
	RouteToleranceMeters float64 `json:"routeToleranceMeters" yaml:"routeToleranceMeters"`
	// SkipDisabled excludes disabled geofences from evaluation.
	SkipDisabled bool `json:"skipDisabled" yaml:"skipDisabled"`
}

type PushConfig struct {
	SendBuffer     int           `json:"sendBuffer" yaml:"sendBuffer"`
	WriteWait      time.Duration `json:"writeWait" yaml:"writeWait"`
	PongWait       time.Duration `json:"pongWait" yaml:"pongWait"`
	AllowedOrigins []string      `json:"allowedOrigins" yaml:"allowedOrigins"`
}

type EventBusConfig struct {
	QueueSize int `json:"queueSize" yaml:"queueSize"`
}

// PubSubConfig defines Pub/Sub configuration for exporting notifications
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Example: BROKER_TOPICPREFIX -> broker.topicPrefix (not broker.topicprefix)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills every optional section so consumers never see a nil section.
func (cfg *Config) ApplyDefaults() {
	if cfg.HTTP.MaxRequestBodySize == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}
	if cfg.Database.SlowQueryThreshold <= 0 {
		cfg.Database.SlowQueryThreshold = defaultSlowQueryThreshold
	}
	if cfg.Database.PoolMonitorInterval <= 0 {
		cfg.Database.PoolMonitorInterval = defaultPoolMonitorInterval
	}

	if cfg.Broker == nil {
		cfg.Broker = &BrokerConfig{}
	}
	if cfg.Broker.TopicPrefix == "" {
		cfg.Broker.TopicPrefix = defaultTopicPrefix
	}
	if cfg.Broker.QoS < 0 || cfg.Broker.QoS > 2 {
		cfg.Broker.QoS = defaultBrokerQoS
	}
	if cfg.Broker.KeepAlive <= 0 {
		cfg.Broker.KeepAlive = defaultKeepAlive
	}
	if cfg.Broker.ConnectTimeout <= 0 {
		cfg.Broker.ConnectTimeout = defaultConnectTimeout
	}
	if cfg.Broker.Backoff.Initial <= 0 {
		cfg.Broker.Backoff.Initial = defaultBackoffInitial
	}
	if cfg.Broker.Backoff.Max <= 0 {
		cfg.Broker.Backoff.Max = defaultBackoffMax
	}
	if cfg.Broker.Backoff.Multiplier < 1 {
		cfg.Broker.Backoff.Multiplier = defaultBackoffMultiplier
	}
	if cfg.Broker.Backoff.Jitter <= 0 || cfg.Broker.Backoff.Jitter > 1 {
		cfg.Broker.Backoff.Jitter = defaultBackoffJitter
	}

	if cfg.Liveness == nil {
		cfg.Liveness = &LivenessConfig{}
	}
	if cfg.Liveness.InactivityTimeout <= 0 {
		cfg.Liveness.InactivityTimeout = defaultInactivityTimeout
	}

	if cfg.Alert == nil {
		cfg.Alert = &AlertConfig{}
	}
	if cfg.Alert.Cooldown <= 0 {
		cfg.Alert.Cooldown = defaultAlertCooldown
	}
	if cfg.Alert.Backend == "" {
		cfg.Alert.Backend = CooldownBackendMemory
	}

	if cfg.Geofence == nil {
		cfg.Geofence = &GeofenceConfig{}
	}
	if cfg.Geofence.RouteToleranceMeters <= 0 {
		cfg.Geofence.RouteToleranceMeters = defaultRouteToleranceMeters
	}

	if cfg.Push == nil {
		cfg.Push = &PushConfig{}
	}
	if cfg.Push.SendBuffer <= 0 {
		cfg.Push.SendBuffer = defaultPushSendBuffer
	}
	if cfg.Push.WriteWait <= 0 {
		cfg.Push.WriteWait = defaultPushWriteWait
	}
	if cfg.Push.PongWait <= 0 {
		cfg.Push.PongWait = defaultPushPongWait
	}

	if cfg.EventBus == nil {
		cfg.EventBus = &EventBusConfig{}
	}
	if cfg.EventBus.QueueSize <= 0 {
		cfg.EventBus.QueueSize = defaultEventQueueSize
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
