package http

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"licensehub/internal/infrastructure/auth"
	"licensehub/internal/infrastructure/config"
	"licensehub/internal/infrastructure/ratelimit"
	"licensehub/internal/interfaces/http/middleware"
	"licensehub/internal/shared/logger"
)

// initInfrastructure sets up Redis, repositories, auth services and the
// middlewares that depend on them.
func (c *Container) initInfrastructure() {
	cfg := c.cfg
	log := c.log

	c.repos = newRepositories(c.db, log)

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, cfg.Auth.JWT.AccessTTL())
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)

	if cfg.RateLimit.Enabled {
		c.redis = initRedis(cfg, log)
		if c.redis != nil {
			limiter := ratelimit.NewRedisRateLimiter(c.redis, cfg.RateLimit.Limit, cfg.RateLimit.Window())
			c.rateLimitMiddleware = middleware.NewRateLimitMiddleware(limiter, log)
		}
	}
}

// initRedis connects to Redis. Rate limiting is optional, so an unreachable
// server disables it instead of stopping startup.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warnw("failed to connect to Redis, rate limiting disabled", "addr", cfg.Redis.GetAddr(), "error", err)
		_ = redisClient.Close()
		return nil
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return redisClient
}
