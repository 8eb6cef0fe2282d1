// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	SessionHandler   *handler.SessionHandler
	AuthMiddleware   *middleware.AuthMiddleware
	DeviceMiddleware *middleware.DeviceMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	sessionHandler   *handler.SessionHandler
	authMiddleware   *middleware.AuthMiddleware
	deviceMiddleware *middleware.DeviceMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		sessionHandler:   params.SessionHandler,
		authMiddleware:   params.AuthMiddleware,
		deviceMiddleware: params.DeviceMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Every auth flow depends on the device fingerprint.
	authGroup := e.Group("/auth", r.deviceMiddleware.Handle)
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/activate", r.authHandler.Activate)
		authGroup.POST("/activation-pin", r.authHandler.ResendActivationPin)
		authGroup.POST("/login-pin", r.authHandler.RequestLoginPin)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)

		// Session management requires a valid, device-bound access token.
		authGroup.POST("/logout", r.sessionHandler.Logout, r.authMiddleware.Authenticate)
		authGroup.POST("/logout-all", r.sessionHandler.LogoutAll, r.authMiddleware.Authenticate)
		authGroup.GET("/sessions", r.sessionHandler.ListSessions, r.authMiddleware.Authenticate)

		// Per-user session administration. Listing is owner-or-admin,
		// force logout needs the manage-users capability.
		authGroup.GET("/users/:id/sessions", r.sessionHandler.ListUserSessions, r.authMiddleware.Authenticate)
		authGroup.POST("/users/:id/logout-all", r.sessionHandler.LogoutUserEverywhere,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireCapability(entity.CapManageUsers))
	}
}
