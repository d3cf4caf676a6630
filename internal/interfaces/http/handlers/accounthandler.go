package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"licensehub/internal/application/account/dto"
	"licensehub/internal/application/account/usecases"
	"licensehub/internal/shared/logger"
	"licensehub/internal/shared/utils"
)

type AccountHandler struct {
	createUC *usecases.CreateAccountUseCase
	getUC    *usecases.GetAccountUseCase
	listUC   *usecases.ListAccountsUseCase
	updateUC *usecases.UpdateAccountUseCase
	deleteUC *usecases.DeleteAccountUseCase
	logger   logger.Interface
}

func NewAccountHandler(
	createUC *usecases.CreateAccountUseCase,
	getUC *usecases.GetAccountUseCase,
	listUC *usecases.ListAccountsUseCase,
	updateUC *usecases.UpdateAccountUseCase,
	deleteUC *usecases.DeleteAccountUseCase,
	log logger.Interface,
) *AccountHandler {
	return &AccountHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   log,
	}
}

// Create handles POST /admin/accounts
// @Summary Create account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Account"
// @Success 201 {object} utils.APIResponse{data=dto.AccountResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /admin/accounts [post]
func (h *AccountHandler) Create(c *gin.Context) {
	var req dto.CreateAccountRequest
	if !bindJSON(c, &req, h.logger, "create account") {
		return
	}

	resp, err := h.createUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, resp, "Account created successfully")
}

// Get handles GET /admin/accounts/:id
// @Summary Get account
// @Tags Accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} utils.APIResponse{data=dto.AccountResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /admin/accounts/{id} [get]
func (h *AccountHandler) Get(c *gin.Context) {
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

// List handles GET /admin/accounts
// @Summary List accounts
// @Tags Accounts
// @Produce json
// @Param name query string false "Name filter"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /admin/accounts [get]
func (h *AccountHandler) List(c *gin.Context) {
	var req dto.ListAccountsRequest
	if !bindQuery(c, &req, h.logger, "list accounts") {
		return
	}

	resp, err := h.listUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, resp.Items, resp.Total, resp.Page, resp.PageSize)
}

// Update handles PATCH /admin/accounts/:id
// @Summary Rename account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body dto.UpdateAccountRequest true "Account"
// @Success 200 {object} utils.APIResponse{data=dto.AccountResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /admin/accounts/{id} [patch]
func (h *AccountHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if !bindJSON(c, &req, h.logger, "update account") {
		return
	}

	resp, err := h.updateUC.Execute(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Account updated successfully", resp)
}

// Delete handles DELETE /admin/accounts/:id. Users, subscriptions and
// license assignments of the account go with it.
// @Summary Delete account
// @Tags Accounts
// @Param id path int true "Account ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /admin/accounts/{id} [delete]
func (h *AccountHandler) Delete(c *gin.Context) {
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
