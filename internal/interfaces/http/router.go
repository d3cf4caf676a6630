package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"licensehub/internal/infrastructure/config"
	"licensehub/internal/interfaces/http/middleware"
	"licensehub/internal/interfaces/http/routes"
	"licensehub/internal/shared/logger"

	_ "licensehub/docs"
)

type Router struct {
	*Container
}

func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	return &Router{Container: NewContainer(db, cfg, log)}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	cfg := r.cfg

	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/up", r.hdlrs.healthHandler.Up)

	var rateLimit gin.HandlerFunc
	if r.rateLimitMiddleware != nil {
		rateLimit = r.rateLimitMiddleware.Limit()
	}

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.hdlrs.authHandler,
		RateLimit:   rateLimit,
	})

	guards := []gin.HandlerFunc{rateLimit}
	if cfg.Auth.Enabled {
		guards = append(guards, r.authMiddleware.RequireAuth())
	} else {
		r.log.Warnw("admin API authentication is disabled")
	}

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		AccountHandler:           r.hdlrs.accountHandler,
		ProductHandler:           r.hdlrs.productHandler,
		UserHandler:              r.hdlrs.userHandler,
		SubscriptionHandler:      r.hdlrs.subscriptionHandler,
		LicenseAssignmentHandler: r.hdlrs.licenseAssignmentHandler,
		Guards:                   guards,
	})

	if cfg.Server.EnableSwagger && cfg.Server.Mode != gin.ReleaseMode {
		r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
