// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/router/handler"
	"quill/internal/infra/observability"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	PostHandler    *handler.PostHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *observability.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	postHandler    *handler.PostHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *observability.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		postHandler:    params.PostHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Operational endpoints, not part of the API surface
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", r.metrics.Handler())

	api := e.Group("/api")

	// Public account routes
	userGroup := api.Group("/users")
	{
		userGroup.POST("", r.userHandler.Register)
		userGroup.POST("/login", r.userHandler.Login)
	}

	// Account routes that require authentication
	protectedUsers := api.Group("/users")
	protectedUsers.Use(r.authMiddleware.Authenticate)
	{
		protectedUsers.GET("", r.userHandler.List)
		protectedUsers.GET("/me", r.userHandler.Profile)
		protectedUsers.GET("/:id", r.userHandler.GetByID)
		protectedUsers.PUT("/:id", r.userHandler.Update)
		protectedUsers.DELETE("/:id", r.userHandler.Delete)
	}

	// Post routes, all behind authentication
	postGroup := api.Group("/posts")
	postGroup.Use(r.authMiddleware.Authenticate)
	{
		postGroup.POST("", r.postHandler.Create)
		postGroup.GET("", r.postHandler.List)
		postGroup.GET("/:id", r.postHandler.GetByID)
		postGroup.PUT("/:id", r.postHandler.Update)
		postGroup.DELETE("/:id", r.postHandler.Delete)
	}
}
