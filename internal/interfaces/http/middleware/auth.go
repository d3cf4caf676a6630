package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"licensehub/internal/infrastructure/auth"
	"licensehub/internal/shared/constants"
	"licensehub/internal/shared/errors"
	"licensehub/internal/shared/logger"
	"licensehub/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth accepts only requests carrying a valid admin bearer token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			m.reject(c, "missing authorization token")
			return
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			m.reject(c, "invalid authorization header format")
			return
		}

		claims, err := m.jwtService.Verify(strings.TrimSpace(token))
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			m.reject(c, "invalid or expired token")
			return
		}

		c.Set(constants.ContextKeyAdmin, claims.Subject)
		c.Next()
	}
}

func (m *AuthMiddleware) reject(c *gin.Context, message string) {
	utils.ErrorResponseWithError(c, errors.NewUnauthorizedError(message))
	c.Abort()
}
