// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"saaskit/config"
	"saaskit/internal/delivery/http/middleware"
	"saaskit/internal/delivery/http/router/handler"
	"saaskit/internal/domain/entity"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// APIPrefix is the version prefix of every API route.
const APIPrefix = "/api/v1"

// WebhookPath receives provider events and carries its own body limit.
const WebhookPath = APIPrefix + "/subscriptions/webhook"

type RouterParams struct {
	fx.In

	Config              *config.Config
	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	ProjectHandler      *handler.ProjectHandler
	SubscriptionHandler *handler.SubscriptionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	projectHandler      *handler.ProjectHandler
	subscriptionHandler *handler.SubscriptionHandler
	authMiddleware      *middleware.AuthMiddleware
	webhookBodyLimit    string
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		userHandler:         params.UserHandler,
		projectHandler:      params.ProjectHandler,
		subscriptionHandler: params.SubscriptionHandler,
		authMiddleware:      params.AuthMiddleware,
		webhookBodyLimit:    params.Config.Stripe.MaxWebhookBodySize,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group(APIPrefix)
	authenticated := r.authMiddleware.Authenticate
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password/:token", r.authHandler.ResetPassword)
		authGroup.POST("/logout", r.authHandler.Logout, authenticated)
		authGroup.GET("/me", r.authHandler.Me, authenticated)
	}

	userGroup := api.Group("/users", authenticated)
	{
		userGroup.PUT("/profile", r.userHandler.UpdateProfile)
		userGroup.PUT("/change-password", r.userHandler.ChangePassword)
		userGroup.DELETE("/account", r.userHandler.DeleteAccount)

		userGroup.GET("", r.userHandler.ListUsers, adminOnly)
		userGroup.GET("/:id", r.userHandler.GetUser, adminOnly)
		userGroup.PUT("/:id", r.userHandler.UpdateUser, adminOnly)
		userGroup.DELETE("/:id", r.userHandler.DeleteUser, adminOnly)
	}

	projectGroup := api.Group("/projects", authenticated)
	{
		projectGroup.GET("", r.projectHandler.ListProjects)
		projectGroup.POST("", r.projectHandler.CreateProject)
		projectGroup.GET("/all", r.projectHandler.ListAllProjects, adminOnly)
		projectGroup.GET("/:id", r.projectHandler.GetProject)
		projectGroup.PUT("/:id", r.projectHandler.UpdateProject)
		projectGroup.DELETE("/:id", r.projectHandler.DeleteProject)
	}

	// The webhook is authenticated by its signature, not by a bearer token.
	e.POST(WebhookPath, r.subscriptionHandler.Webhook, echomiddleware.BodyLimit(r.webhookBodyLimit))

	subscriptionGroup := api.Group("/subscriptions", authenticated)
	{
		subscriptionGroup.POST("/create", r.subscriptionHandler.CreateCheckout)
		subscriptionGroup.GET("/status", r.subscriptionHandler.Status)
		subscriptionGroup.POST("/cancel", r.subscriptionHandler.Cancel)
	}
}
