package handler

import (
	"log/slog"
	"net/http"

	"tracker/internal/delivery/api/response"
	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler exposes the device assignment hooks.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// Activate is called when a device is assigned to a child.
func (h *SessionHandler) Activate(c echo.Context) error {
	name := c.Param("name")
	ctx := c.Request().Context()

	if err := h.sessionUC.Activate(ctx, name); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("[Session] Activation hook failed",
			slog.String("device", name),
			slog.Any("error", err),
		)

		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Deactivate is called when a device is unassigned.
func (h *SessionHandler) Deactivate(c echo.Context) error {
	if err := h.sessionUC.Deactivate(c.Request().Context(), c.Param("name")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// List returns the open sessions ordered by device name.
func (h *SessionHandler) List(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.sessionUC.Sessions())
}
