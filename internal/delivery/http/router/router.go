// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"latch/internal/delivery/http/middleware"
	"latch/internal/delivery/http/router/handler"
)

// RouterParams holds the handlers to register, injected by Fx.
type RouterParams struct {
	fx.In

	PinHandler     *handler.PinHandler
	DoorHandler    *handler.DoorHandler
	DeviceHandler  *handler.DeviceHandler
	SessionHandler *handler.SessionHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	pinHandler     *handler.PinHandler
	doorHandler    *handler.DoorHandler
	deviceHandler  *handler.DeviceHandler
	sessionHandler *handler.SessionHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		pinHandler:     params.PinHandler,
		doorHandler:    params.DoorHandler,
		deviceHandler:  params.DeviceHandler,
		sessionHandler: params.SessionHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Everything else requires an authenticated account
	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)

	// Synchronization session
	api.POST("/session", r.sessionHandler.Start)
	api.DELETE("/session", r.sessionHandler.Stop)

	// PIN management
	api.GET("/pins", r.pinHandler.ListPins)
	api.POST("/pins", r.pinHandler.CreatePin)
	api.DELETE("/pins/:id", r.pinHandler.DeletePin)

	// Device mirror
	api.GET("/devices", r.deviceHandler.ListDevices)
	api.POST("/devices", r.deviceHandler.CreateDevice)
	api.GET("/devices/:id", r.deviceHandler.GetDevice)
	api.PUT("/devices/:id/status", r.deviceHandler.SetStatus)

	// Door access flow
	api.GET("/door", r.doorHandler.State)
	api.POST("/door/open", r.doorHandler.Open)
	api.POST("/door/biometric", r.doorHandler.Biometric)
	api.POST("/door/pin", r.doorHandler.Pin)
	api.POST("/door/pin/submit", r.doorHandler.SubmitPin)
	api.POST("/door/cancel", r.doorHandler.Cancel)
	api.POST("/door/close", r.doorHandler.Close)
}
