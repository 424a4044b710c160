package push

import (
	"log/slog"
	"sync"
	"time"

	"tracker/config"

	"github.com/gorilla/websocket"
)

const maxMessageSize = 4 * 1024

// Client pumps frames from its send buffer to one websocket. Inbound
// messages are read only to service control frames.
type Client struct {
	conn      *websocket.Conn
	registry  *Registry
	logger    *slog.Logger
	send      chan Frame
	done      chan struct{}
	closeOnce sync.Once
	writeWait time.Duration
	pongWait  time.Duration
}

func NewClient(conn *websocket.Conn, registry *Registry, cfg *config.PushConfig, logger *slog.Logger) *Client {
	return &Client{
		conn:      conn,
		registry:  registry,
		logger:    logger,
		send:      make(chan Frame, cfg.SendBuffer),
		done:      make(chan struct{}),
		writeWait: cfg.WriteWait,
		pongWait:  cfg.PongWait,
	}
}

// Send never blocks. A full buffer drops the frame.
func (c *Client) Send(frame Frame) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

// Close stops both pumps. Safe to call more than once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

// Start runs the pumps until the peer goes away or Close is called.
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.registry.Unregister(c)
		c.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(c.pongWait)); err != nil {
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("[Push] Client read failed", slog.Any("error", err))
			}

			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(c.pongWait * 9 / 10)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case frame := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(c.writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteJSON(frame); err != nil {
				c.logger.Debug("[Push] Client write failed", slog.Any("error", err))
				c.Close()

				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(c.writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.Close()

				return
			}

		case <-c.done:
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(c.writeWait))

			return
		}
	}
}
