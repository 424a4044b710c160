package handler

import (
	"net/http"
	"time"

	"tracker/internal/delivery/api/response"
	"tracker/internal/domain/entity"
	"tracker/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
)

// GeofenceHandler creates geofences and assigns them to devices.
type GeofenceHandler struct {
	geofenceUC usecase.GeofenceUsecase
}

func NewGeofenceHandler(geofenceUC usecase.GeofenceUsecase) *GeofenceHandler {
	return &GeofenceHandler{geofenceUC: geofenceUC}
}

// CreateGeofenceRequest is a geofence spec plus the devices it starts assigned to.
type CreateGeofenceRequest struct {
	entity.GeofenceSpec
	DeviceIDs []uuid.UUID `json:"deviceIds" validate:"dive,required"`
}

type AssignDeviceRequest struct {
	DeviceID uuid.UUID `json:"deviceId" validate:"required"`
}

// GeofenceResponse uses [longitude, latitude] pairs like the request.
type GeofenceResponse struct {
	ID        uuid.UUID           `json:"id"`
	Name      string              `json:"name"`
	Type      entity.GeofenceType `json:"type"`
	Center    *orb.Point          `json:"center,omitempty"`
	Radius    float64             `json:"radius,omitempty"`
	Path      orb.LineString      `json:"path,omitempty"`
	Area      orb.Polygon         `json:"area,omitempty"`
	Enabled   bool                `json:"enabled"`
	CreatedAt time.Time           `json:"createdAt"`
}

func (h *GeofenceHandler) CreateGeofence(c echo.Context) error {
	var req CreateGeofenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid geofence input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	geofence, err := h.geofenceUC.CreateGeofence(c.Request().Context(), &req.GeofenceSpec, req.DeviceIDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toGeofenceResponse(geofence))
}

func (h *GeofenceHandler) AssignDevice(c echo.Context) error {
	geofenceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_GEOFENCE_ID", "Geofence id must be a UUID")
	}

	var req AssignDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid assignment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.geofenceUC.AssignDevice(c.Request().Context(), geofenceID, req.DeviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func toGeofenceResponse(geofence *entity.Geofence) GeofenceResponse {
	resp := GeofenceResponse{
		ID:        geofence.ID,
		Name:      geofence.Name,
		Type:      geofence.Type,
		Enabled:   geofence.Enabled,
		CreatedAt: geofence.CreatedAt,
	}

	switch geofence.Type {
	case entity.GeofenceTypeCircle:
		center := geofence.Center
		resp.Center = &center
		resp.Radius = geofence.Radius
	case entity.GeofenceTypeRoute:
		resp.Path = geofence.Path
	case entity.GeofenceTypeArea:
		resp.Area = geofence.Area
	}

	return resp
}
