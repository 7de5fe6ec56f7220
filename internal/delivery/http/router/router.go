// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	JobHandler          *handler.JobHandler
	SubscriptionHandler *handler.SubscriptionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	jobHandler          *handler.JobHandler
	subscriptionHandler *handler.SubscriptionHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		jobHandler:          params.JobHandler,
		subscriptionHandler: params.SubscriptionHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. The paths
// are a compatibility contract with the existing frontend and keep their
// original, uneven naming.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account routes
	e.POST("/register", r.accountHandler.Register)
	e.POST("/login", r.accountHandler.Login)

	// Job alert subscription
	e.POST("/subscribe", r.subscriptionHandler.Subscribe)

	// Public job reads
	e.GET("/all-jobs", r.jobHandler.List)
	e.GET("/all-jobs/:id", r.jobHandler.GetByID)
	e.GET("/all-jobs/:id/qr", r.jobHandler.ShareQR)
	e.GET("/myJobs/:email", r.jobHandler.ListByOwner)

	// Job mutations require authentication; ownership is enforced below the
	// handlers, in the use case layer.
	e.POST("/post-job", r.jobHandler.Create, r.authMiddleware.Authenticate)
	e.PATCH("/update-job/:id", r.jobHandler.Update, r.authMiddleware.Authenticate)
	e.DELETE("/job/:id", r.jobHandler.Delete, r.authMiddleware.Authenticate)
}
