// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tracker/internal/delivery/api/middleware"
	"tracker/internal/delivery/api/router/handler"
	"tracker/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler   *handler.HealthHandler
	SessionHandler  *handler.SessionHandler
	GeofenceHandler *handler.GeofenceHandler
	PushHandler     *handler.PushHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Metrics         *metrics.Metrics `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler   *handler.HealthHandler
	sessionHandler  *handler.SessionHandler
	geofenceHandler *handler.GeofenceHandler
	pushHandler     *handler.PushHandler
	authMiddleware  *middleware.AuthMiddleware
	metrics         *metrics.Metrics
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:   params.HealthHandler,
		sessionHandler:  params.SessionHandler,
		geofenceHandler: params.GeofenceHandler,
		pushHandler:     params.PushHandler,
		authMiddleware:  params.AuthMiddleware,
		metrics:         params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// Push clients authenticate with a bearer token or ?token=
	e.GET("/ws", r.pushHandler.Connect, r.authMiddleware.Authenticate)

	// Hooks called by the device CRUD flows
	internalGroup := e.Group("/internal")
	internalGroup.Use(r.authMiddleware.RequireInternalToken)
	{
		internalGroup.POST("/devices/:name/session", r.sessionHandler.Activate)
		internalGroup.DELETE("/devices/:name/session", r.sessionHandler.Deactivate)
		internalGroup.GET("/sessions", r.sessionHandler.List)

		internalGroup.POST("/geofences", r.geofenceHandler.CreateGeofence)
		internalGroup.POST("/geofences/:id/devices", r.geofenceHandler.AssignDevice)
	}
}
