// Package broker connects device sessions to the MQTT broker. Each device gets
// its own client authenticated with the device's credentials.
package broker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tracker/config"
	"tracker/internal/domain/service"
	"tracker/internal/errors"
	"tracker/internal/infra/metrics"

	"github.com/cenkalti/backoff/v4"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

const (
	disconnectQuiesceMillis = 250
	clientIDPrefix          = "tracker-"
)

// errConnectTimeout is returned when the broker does not acknowledge in time.
var errConnectTimeout = errors.New("broker connect timed out")

type clientFactory func(opts *mqtt.ClientOptions) mqtt.Client

// Connector opens per-device MQTT connections.
type Connector struct {
	cfg       config.BrokerConfig
	logger    *slog.Logger
	metrics   *metrics.Metrics
	newClient clientFactory
}

// NewConnector builds a connector from the broker section of the config.
func NewConnector(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) *Connector {
	var brokerCfg config.BrokerConfig
	if cfg != nil && cfg.Broker != nil {
		brokerCfg = *cfg.Broker
	}

	return &Connector{
		cfg:       brokerCfg,
		logger:    logger,
		metrics:   m,
		newClient: mqtt.NewClient,
	}
}

// Connect returns immediately; the first connection attempt and every
// reconnect run in the background with exponential backoff.
func (c *Connector) Connect(ctx context.Context, creds service.DeviceCredentials, handler service.TelemetryHandler) (service.TelemetryConnection, error) {
	if creds.DeviceName == "" {
		return nil, errors.New("device name is required")
	}
	if handler == nil {
		return nil, errors.New("telemetry handler is required")
	}
	if c.cfg.URL == "" {
		return nil, errors.New("broker url is not configured")
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	conn := &connection{
		connector: c,
		creds:     creds,
		handler:   handler,
		logger:    c.logger.With(slog.String("device", creds.DeviceName)),
		ctx:       runCtx,
		cancel:    cancel,
		lost:      make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
	conn.client = c.newClient(c.clientOptions(conn))

	go conn.run()

	return conn, nil
}

func (c *Connector) clientOptions(conn *connection) *mqtt.ClientOptions {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(c.cfg.URL)
	opts.SetClientID(clientIDPrefix + conn.creds.DeviceName + "-" + uuid.NewString()[:8])
	opts.SetUsername(conn.creds.DeviceName)
	opts.SetPassword(conn.creds.Password)
	opts.SetCleanSession(true)
	opts.SetOrderMatters(true)
	opts.SetAutoReconnect(false)
	opts.SetConnectRetry(false)
	if c.cfg.KeepAlive > 0 {
		opts.SetKeepAlive(c.cfg.KeepAlive)
	}
	if c.cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(c.cfg.ConnectTimeout)
	}
	opts.SetOnConnectHandler(conn.onConnect)
	opts.SetConnectionLostHandler(conn.onConnectionLost)

	return opts
}

func (c *Connector) newBackOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.cfg.Backoff.Initial
	b.MaxInterval = c.cfg.Backoff.Max
	b.Multiplier = c.cfg.Backoff.Multiplier
	b.RandomizationFactor = c.cfg.Backoff.Jitter
	b.MaxElapsedTime = 0
	b.Reset()

	return backoff.WithContext(b, ctx)
}

type connection struct {
	connector *Connector
	creds     service.DeviceCredentials
	handler   service.TelemetryHandler
	logger    *slog.Logger
	client    mqtt.Client

	ctx    context.Context
	cancel context.CancelFunc
	lost   chan struct{}
	done   chan struct{}

	// mu serializes handler calls and guards closed.
	mu     sync.Mutex
	closed bool
}

func (c *connection) run() {
	defer close(c.done)

	for {
		err := c.connectWithRetry()
		if c.ctx.Err() != nil {
			// A connect that completed while closing must not stay open.
			if c.client.IsConnectionOpen() {
				c.client.Disconnect(0)
			}

			return
		}
		if err != nil {
			c.logger.Error("[Broker] Giving up on connection", slog.Any("error", err))

			return
		}

		select {
		case <-c.ctx.Done():
			return
		case <-c.lost:
		}
	}
}

func (c *connection) connectWithRetry() error {
	attempt := 0
	operation := func() error {
		attempt++
		if attempt > 1 {
			c.connector.metrics.BrokerReconnect()
		}

		token := c.client.Connect()
		if !token.WaitTimeout(c.connectTimeout()) {
			return errConnectTimeout
		}

		return token.Error()
	}
	notify := func(err error, wait time.Duration) {
		c.logger.Warn("[Broker] Connect failed, retrying",
			slog.Any("error", err),
			slog.Duration("retry_in", wait),
		)
	}

	if err := backoff.RetryNotify(operation, c.connector.newBackOff(c.ctx), notify); err != nil {
		return errors.Wrap(err, "connect broker")
	}

	return nil
}

func (c *connection) connectTimeout() time.Duration {
	if c.connector.cfg.ConnectTimeout > 0 {
		return c.connector.cfg.ConnectTimeout
	}

	return 10 * time.Second
}

func (c *connection) onConnect(client mqtt.Client) {
	prefix := c.connector.cfg.TopicPrefix
	qos := byte(c.connector.cfg.QoS)
	topics := []string{
		LocationTopic(prefix, c.creds.DeviceName),
		DangerTopic(prefix, c.creds.DeviceName),
	}

	for _, topic := range topics {
		token := client.Subscribe(topic, qos, c.onMessage)
		if token.WaitTimeout(c.connectTimeout()) && token.Error() == nil {
			continue
		}
		c.logger.Error("[Broker] Subscribe failed",
			slog.String("topic", topic),
			slog.Any("error", token.Error()),
		)
		client.Disconnect(0)
		c.signalLost()

		return
	}

	c.logger.Info("[Broker] Connected", slog.Any("topics", topics))
}

func (c *connection) onConnectionLost(_ mqtt.Client, err error) {
	c.logger.Warn("[Broker] Connection lost", slog.Any("error", err))
	c.signalLost()
}

func (c *connection) signalLost() {
	select {
	case c.lost <- struct{}{}:
	default:
	}
}

func (c *connection) onMessage(_ mqtt.Client, msg mqtt.Message) {
	kind := KindOf(c.connector.cfg.TopicPrefix, msg.Topic())
	if kind == 0 {
		c.logger.Debug("[Broker] Ignoring message on unexpected topic", slog.String("topic", msg.Topic()))

		return
	}

	c.deliver(service.TelemetryMessage{
		Kind:    kind,
		Topic:   msg.Topic(),
		Payload: msg.Payload(),
	})
}

func (c *connection) deliver(msg service.TelemetryMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.handler(msg)
}

// Close stops the reconnect loop and disconnects the client.
func (c *connection) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()

		return
	}
	c.closed = true
	c.mu.Unlock()

	c.cancel()
	if c.client.IsConnectionOpen() {
		c.client.Disconnect(disconnectQuiesceMillis)
	}
	c.logger.Info("[Broker] Disconnected")
}

var _ service.TelemetryConnector = (*Connector)(nil)
