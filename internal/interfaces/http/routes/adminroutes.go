package routes

import (
	"github.com/gin-gonic/gin"

	"licensehub/internal/interfaces/http/handlers"
)

// AdminRouteConfig holds dependencies for the admin API. Guards run before
// every admin route except the token endpoint; nil entries are skipped.
type AdminRouteConfig struct {
	AccountHandler           *handlers.AccountHandler
	ProductHandler           *handlers.ProductHandler
	UserHandler              *handlers.UserHandler
	SubscriptionHandler      *handlers.SubscriptionHandler
	LicenseAssignmentHandler *handlers.LicenseAssignmentHandler
	Guards                   []gin.HandlerFunc
}

// SetupAdminRoutes configures the /admin resource routes.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/admin")
	for _, guard := range cfg.Guards {
		if guard != nil {
			admin.Use(guard)
		}
	}

	accounts := admin.Group("/accounts")
	{
		accounts.POST("", cfg.AccountHandler.Create)
		accounts.GET("", cfg.AccountHandler.List)
		accounts.GET("/:id", cfg.AccountHandler.Get)
		accounts.PATCH("/:id", cfg.AccountHandler.Update)
		accounts.DELETE("/:id", cfg.AccountHandler.Delete)

		accounts.GET("/:id/subscriptions", cfg.SubscriptionHandler.List)
		accounts.POST("/:id/subscriptions", cfg.SubscriptionHandler.Create)

		accounts.GET("/:id/license-assignments", cfg.LicenseAssignmentHandler.Index)
		accounts.POST("/:id/license-assignments", cfg.LicenseAssignmentHandler.Create)
		accounts.DELETE("/:id/license-assignments", cfg.LicenseAssignmentHandler.DestroyBatch)
		accounts.DELETE("/:id/license-assignments/:assignment_id", cfg.LicenseAssignmentHandler.DestroySingle)
	}

	products := admin.Group("/products")
	{
		products.POST("", cfg.ProductHandler.Create)
		products.GET("", cfg.ProductHandler.List)
		products.GET("/:id", cfg.ProductHandler.Get)
		products.PATCH("/:id", cfg.ProductHandler.Update)
		products.DELETE("/:id", cfg.ProductHandler.Delete)
	}

	users := admin.Group("/users")
	{
		users.POST("", cfg.UserHandler.Create)
		users.GET("", cfg.UserHandler.List)
		users.GET("/:id", cfg.UserHandler.Get)
		users.PATCH("/:id", cfg.UserHandler.Update)
		users.DELETE("/:id", cfg.UserHandler.Delete)
	}

	subscriptions := admin.Group("/subscriptions")
	{
		subscriptions.GET("/:id", cfg.SubscriptionHandler.Get)
		subscriptions.PATCH("/:id", cfg.SubscriptionHandler.Update)
		subscriptions.DELETE("/:id", cfg.SubscriptionHandler.Delete)
	}
}
