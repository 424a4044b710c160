package broker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"tracker/config"
	"tracker/internal/domain/service"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeToken struct {
	err error
}

func (t *fakeToken) Wait() bool                     { return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Error() error                   { return t.err }
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)

	return ch
}

type fakeMessage struct {
	topic   string
	payload []byte
}

func (m *fakeMessage) Duplicate() bool   { return false }
func (m *fakeMessage) Qos() byte         { return 1 }
func (m *fakeMessage) Retained() bool    { return false }
func (m *fakeMessage) Topic() string     { return m.topic }
func (m *fakeMessage) MessageID() uint16 { return 1 }
func (m *fakeMessage) Payload() []byte   { return m.payload }
func (m *fakeMessage) Ack()              {}

// fakeClient fails the first failures connects, then succeeds and runs the OnConnect handler.
type fakeClient struct {
	opts     *mqtt.ClientOptions
	failures int

	mu           sync.Mutex
	connects     int
	connected    bool
	disconnects  int
	subscription map[string]mqtt.MessageHandler
}

func (c *fakeClient) Connect() mqtt.Token {
	c.mu.Lock()
	c.connects++
	if c.connects <= c.failures {
		c.mu.Unlock()

		return &fakeToken{err: errors.New("connection refused")}
	}
	c.connected = true
	c.mu.Unlock()

	c.opts.OnConnect(c)

	return &fakeToken{}
}

func (c *fakeClient) Subscribe(topic string, _ byte, callback mqtt.MessageHandler) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscription[topic] = callback

	return &fakeToken{}
}

func (c *fakeClient) Disconnect(uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connected = false
	c.disconnects++
}

func (c *fakeClient) IsConnected() bool {
	return c.IsConnectionOpen()
}

func (c *fakeClient) IsConnectionOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.connected
}

func (c *fakeClient) Publish(string, byte, bool, interface{}) mqtt.Token {
	return &fakeToken{}
}

func (c *fakeClient) SubscribeMultiple(map[string]byte, mqtt.MessageHandler) mqtt.Token {
	return &fakeToken{}
}

func (c *fakeClient) Unsubscribe(...string) mqtt.Token {
	return &fakeToken{}
}

func (c *fakeClient) AddRoute(string, mqtt.MessageHandler) {}

func (c *fakeClient) OptionsReader() mqtt.ClientOptionsReader {
	return mqtt.ClientOptionsReader{}
}

func (c *fakeClient) connectCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.connects
}

func (c *fakeClient) handlerFor(topic string) mqtt.MessageHandler {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.subscription[topic]
}

type collected struct {
	mu   sync.Mutex
	msgs []service.TelemetryMessage
}

func (c *collected) handle(msg service.TelemetryMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, msg)
}

func (c *collected) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.msgs)
}

func newTestConnector(failures int) (*Connector, func() *fakeClient) {
	cfg := &config.Config{Broker: &config.BrokerConfig{
		URL:            "tcp://localhost:1883",
		TopicPrefix:    "tracking/",
		QoS:            1,
		ConnectTimeout: time.Second,
		Backoff: config.BackoffConfig{
			Initial:    time.Millisecond,
			Max:        5 * time.Millisecond,
			Multiplier: 2,
			Jitter:     0.1,
		},
	}}
	connector := NewConnector(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)

	var mu sync.Mutex
	var client *fakeClient
	connector.newClient = func(opts *mqtt.ClientOptions) mqtt.Client {
		mu.Lock()
		defer mu.Unlock()
		client = &fakeClient{opts: opts, failures: failures, subscription: map[string]mqtt.MessageHandler{}}

		return client
	}

	return connector, func() *fakeClient {
		mu.Lock()
		defer mu.Unlock()

		return client
	}
}

func TestConnector_ConnectsWithDeviceCredentials(t *testing.T) {
	connector, client := newTestConnector(0)
	got := &collected{}

	conn, err := connector.Connect(context.Background(), service.DeviceCredentials{DeviceName: "kid-1", Password: "secret"}, got.handle)
	require.NoError(t, err)
	defer conn.Close()

	opts := client().opts
	assert.Equal(t, "kid-1", opts.Username)
	assert.Equal(t, "secret", opts.Password)
	assert.False(t, opts.AutoReconnect)
	assert.Contains(t, opts.ClientID, "tracker-kid-1-")

	require.Eventually(t, func() bool {
		return client().handlerFor("tracking/location/kid-1") != nil &&
			client().handlerFor("tracking/danger/kid-1") != nil
	}, time.Second, time.Millisecond)

	client().handlerFor("tracking/danger/kid-1")(client(), &fakeMessage{topic: "tracking/danger/kid-1", payload: []byte(`{}`)})
	require.Equal(t, 1, got.len())
	assert.Equal(t, service.TelemetryDanger, got.msgs[0].Kind)
}

func TestConnector_RetriesUntilConnected(t *testing.T) {
	connector, client := newTestConnector(3)

	conn, err := connector.Connect(context.Background(), service.DeviceCredentials{DeviceName: "kid-2"}, func(service.TelemetryMessage) {})
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		return client().IsConnectionOpen()
	}, time.Second, time.Millisecond)
	assert.Equal(t, 4, client().connectCount())
}

func TestConnector_ReconnectsAfterConnectionLost(t *testing.T) {
	connector, client := newTestConnector(0)

	conn, err := connector.Connect(context.Background(), service.DeviceCredentials{DeviceName: "kid-3"}, func(service.TelemetryMessage) {})
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return client().connectCount() == 1 }, time.Second, time.Millisecond)

	client().opts.OnConnectionLost(client(), errors.New("link down"))

	require.Eventually(t, func() bool { return client().connectCount() == 2 }, time.Second, time.Millisecond)
}

func TestConnector_NoDeliveryAfterClose(t *testing.T) {
	connector, client := newTestConnector(0)
	got := &collected{}

	conn, err := connector.Connect(context.Background(), service.DeviceCredentials{DeviceName: "kid-4"}, got.handle)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return client().handlerFor("tracking/location/kid-4") != nil
	}, time.Second, time.Millisecond)
	handler := client().handlerFor("tracking/location/kid-4")

	conn.Close()
	handler(client(), &fakeMessage{topic: "tracking/location/kid-4", payload: []byte(`{}`)})

	assert.Equal(t, 0, got.len())
	assert.False(t, client().IsConnectionOpen())
}

func TestConnector_IgnoresForeignTopics(t *testing.T) {
	connector, client := newTestConnector(0)
	got := &collected{}

	conn, err := connector.Connect(context.Background(), service.DeviceCredentials{DeviceName: "kid-5"}, got.handle)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		return client().handlerFor("tracking/location/kid-5") != nil
	}, time.Second, time.Millisecond)

	client().handlerFor("tracking/location/kid-5")(client(), &fakeMessage{topic: "elsewhere/location/kid-5"})
	assert.Equal(t, 0, got.len())
}

func TestConnector_RejectsInvalidInput(t *testing.T) {
	connector, _ := newTestConnector(0)

	_, err := connector.Connect(context.Background(), service.DeviceCredentials{}, func(service.TelemetryMessage) {})
	require.Error(t, err)

	_, err = connector.Connect(context.Background(), service.DeviceCredentials{DeviceName: "kid"}, nil)
	require.Error(t, err)

	connector.cfg.URL = ""
	_, err = connector.Connect(context.Background(), service.DeviceCredentials{DeviceName: "kid"}, func(service.TelemetryMessage) {})
	assert.Error(t, err)
}
