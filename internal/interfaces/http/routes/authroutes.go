package routes

import (
	"github.com/gin-gonic/gin"

	"licensehub/internal/interfaces/http/handlers"
)

type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	// RateLimit throttles token requests; nil disables it.
	RateLimit gin.HandlerFunc
}

func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	handlersChain := []gin.HandlerFunc{}
	if cfg.RateLimit != nil {
		handlersChain = append(handlersChain, cfg.RateLimit)
	}
	handlersChain = append(handlersChain, cfg.AuthHandler.Token)

	engine.POST("/admin/auth/token", handlersChain...)
}
