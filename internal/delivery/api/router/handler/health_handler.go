package handler

import (
	"net/http"

	"tracker/internal/delivery/api/response"
	"tracker/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports process liveness.
type HealthHandler struct {
	sessionUC usecase.SessionUsecase
}

func NewHealthHandler(sessionUC usecase.SessionUsecase) *HealthHandler {
	return &HealthHandler{sessionUC: sessionUC}
}

type healthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, healthResponse{
		Status:   "ok",
		Sessions: len(h.sessionUC.Sessions()),
	})
}
