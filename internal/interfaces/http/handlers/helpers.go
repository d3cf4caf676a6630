// Package handlers translates admin HTTP requests into use case calls.
package handlers

import (
	"github.com/gin-gonic/gin"

	"licensehub/internal/shared/errors"
	"licensehub/internal/shared/logger"
	"licensehub/internal/shared/utils"
)

// bindJSON decodes the request body into req. A malformed body answers 400
// and returns false.
func bindJSON(c *gin.Context, req interface{}, log logger.Interface, operation string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		log.Warnw("invalid request body", "operation", operation, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, req interface{}, log logger.Interface, operation string) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		log.Warnw("invalid query parameters", "operation", operation, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid query parameters", err.Error()))
		return false
	}
	return true
}

func parseID(c *gin.Context) (uint, bool) {
	return parseNamedID(c, "id")
}

func parseNamedID(c *gin.Context, name string) (uint, bool) {
	id, err := utils.ParseIDParam(c, name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, false
	}
	return id, true
}
