package handler

import (
	"log/slog"
	"net/http"
	"slices"

	"tracker/config"
	"tracker/internal/delivery/api/middleware"
	"tracker/internal/delivery/api/response"
	"tracker/internal/delivery/push"
	domainerrors "tracker/internal/domain/errors"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PushHandlerParams holds dependencies for PushHandler, injected by Fx.
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Registry *push.Registry
	Logger   *slog.Logger
}

// PushHandler upgrades authenticated requests into push clients.
type PushHandler struct {
	cfg      *config.PushConfig
	registry *push.Registry
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		cfg:      params.Config.Push,
		registry: params.Registry,
		logger:   params.Logger,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}

	return h
}

// Connect must run behind AuthMiddleware.Authenticate.
func (h *PushHandler) Connect(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		h.logger.Debug("[Push] Upgrade failed", slog.Any("error", err))

		return nil
	}

	client := push.NewClient(conn, h.registry, h.cfg, h.logger.With(slog.String("user_id", userID.String())))
	h.registry.Register(userID, client)
	client.Start()

	return nil
}

// checkOrigin allows every origin when none are configured, since native
// clients send no Origin header.
func (h *PushHandler) checkOrigin(r *http.Request) bool {
	if len(h.cfg.AllowedOrigins) == 0 {
		return true
	}

	origin := r.Header.Get("Origin")

	return origin == "" || slices.Contains(h.cfg.AllowedOrigins, origin)
}
