package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"licensehub/internal/application/subscription/dto"
	"licensehub/internal/application/subscription/usecases"
	"licensehub/internal/shared/logger"
	"licensehub/internal/shared/utils"
)

type SubscriptionHandler struct {
	createUC *usecases.CreateSubscriptionUseCase
	getUC    *usecases.GetSubscriptionUseCase
	listUC   *usecases.ListSubscriptionsUseCase
	updateUC *usecases.UpdateSubscriptionUseCase
	deleteUC *usecases.DeleteSubscriptionUseCase
	logger   logger.Interface
}

func NewSubscriptionHandler(
	createUC *usecases.CreateSubscriptionUseCase,
	getUC *usecases.GetSubscriptionUseCase,
	listUC *usecases.ListSubscriptionsUseCase,
	updateUC *usecases.UpdateSubscriptionUseCase,
	deleteUC *usecases.DeleteSubscriptionUseCase,
	log logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   log,
	}
}

// Create handles POST /admin/accounts/:id/subscriptions
// @Summary Subscribe an account to a product
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body dto.CreateSubscriptionRequest true "Subscription"
// @Success 201 {object} utils.APIResponse{data=dto.SubscriptionResponse}
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /admin/accounts/{id}/subscriptions [post]
func (h *SubscriptionHandler) Create(c *gin.Context) {
	accountID, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.CreateSubscriptionRequest
	if !bindJSON(c, &req, h.logger, "create subscription") {
		return
	}

	resp, err := h.createUC.Execute(c.Request.Context(), accountID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, resp, "Subscription created successfully")
}

// List handles GET /admin/accounts/:id/subscriptions
// @Summary List account subscriptions with usage
// @Tags Subscriptions
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.SubscriptionResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /admin/accounts/{id}/subscriptions [get]
func (h *SubscriptionHandler) List(c *gin.Context) {
	accountID, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.listUC.Execute(c.Request.Context(), accountID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// Get handles GET /admin/subscriptions/:id
func (h *SubscriptionHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// Update handles PATCH /admin/subscriptions/:id. Shrinking the pool below
// the licenses in use answers 409.
func (h *SubscriptionHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateSubscriptionRequest
	if !bindJSON(c, &req, h.logger, "update subscription") {
		return
	}

	resp, err := h.updateUC.Execute(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription updated successfully", resp)
}

// Delete handles DELETE /admin/subscriptions/:id
func (h *SubscriptionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
