package push

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tracker/config"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPushConfig() *config.PushConfig {
	return &config.PushConfig{
		SendBuffer: 1,
		WriteWait:  time.Second,
		PongWait:   time.Minute,
	}
}

// startClientServer upgrades each request into a registered Client.
func startClientServer(t *testing.T, registry *Registry, userID uuid.UUID, clients chan<- *Client) *httptest.Server {
	t.Helper()

	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := NewClient(conn, registry, testPushConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
		registry.Register(userID, client)
		client.Start()
		clients <- client
	}))
	t.Cleanup(server.Close)

	return server
}

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()

	conn, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func TestClient_WritesFrames(t *testing.T) {
	registry, _ := newTestRegistry()
	userID := uuid.New()
	clients := make(chan *Client, 1)
	server := startClientServer(t, registry, userID, clients)

	conn := dial(t, server)
	<-clients

	require.True(t, registry.Deliver(userID, "deviceStatusUpdate", map[string]any{"status": 1}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var frame struct {
		Event string         `json:"event"`
		Data  map[string]any `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "deviceStatusUpdate", frame.Event)
	assert.InDelta(t, 1.0, frame.Data["status"], 1e-9)
}

func TestClient_PeerCloseUnregisters(t *testing.T) {
	registry, _ := newTestRegistry()
	userID := uuid.New()
	clients := make(chan *Client, 1)
	server := startClientServer(t, registry, userID, clients)

	conn := dial(t, server)
	<-clients
	require.True(t, registry.Connected(userID))

	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool {
		return !registry.Connected(userID)
	}, 5*time.Second, 10*time.Millisecond)
}

func TestClient_SendAfterCloseFails(t *testing.T) {
	registry, _ := newTestRegistry()
	clients := make(chan *Client, 1)
	server := startClientServer(t, registry, uuid.New(), clients)

	dial(t, server)
	client := <-clients

	client.Close()
	client.Close()

	assert.False(t, client.Send(Frame{Event: "deviceChange"}))
}

func TestClient_FullBufferDrops(t *testing.T) {
	client := &Client{
		send: make(chan Frame, 1),
		done: make(chan struct{}),
	}

	assert.True(t, client.Send(Frame{Event: "a"}))
	assert.False(t, client.Send(Frame{Event: "b"}))
}
