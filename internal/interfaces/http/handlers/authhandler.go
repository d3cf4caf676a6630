package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"licensehub/internal/infrastructure/auth"
	"licensehub/internal/shared/errors"
	"licensehub/internal/shared/logger"
	"licensehub/internal/shared/utils"
)

type TokenRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type AuthHandler struct {
	authenticator *auth.AdminAuthenticator
	logger        logger.Interface
}

func NewAuthHandler(authenticator *auth.AdminAuthenticator, log logger.Interface) *AuthHandler {
	return &AuthHandler{authenticator: authenticator, logger: log}
}

// Token handles POST /admin/auth/token
// @Summary Issue an admin access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=TokenResponse}
// @Failure 401 {object} utils.APIResponse
// @Router /admin/auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req TokenRequest
	if !bindJSON(c, &req, h.logger, "issue token") {
		return
	}

	token, err := h.authenticator.Login(req.Username, req.Password)
	if err != nil {
		if stderrors.Is(err, auth.ErrInvalidCredentials) {
			h.logger.Warnw("admin login rejected", "username", req.Username, "client_ip", c.ClientIP())
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid username or password"))
			return
		}
		h.logger.Errorw("failed to issue admin token", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   token.ExpiresIn,
	})
}
