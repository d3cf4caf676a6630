package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"licensehub/internal/infrastructure/auth"
	"licensehub/internal/infrastructure/config"
	"licensehub/internal/interfaces/http/middleware"
	"licensehub/internal/shared/logger"
)

// Container wires infrastructure, repositories, use cases, handlers and
// middlewares together and releases them on Shutdown.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	jwtSvc              *auth.JWTService
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	c.initInfrastructure()
	c.ucs = newUseCases(c.repos, c.db, log)
	c.hdlrs = c.newHandlers()

	return c
}

// Shutdown closes the Redis client. The database is owned by the caller.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close Redis client", "error", err)
		}
	}
}
