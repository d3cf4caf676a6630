package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"licensehub/internal/application/user/dto"
	"licensehub/internal/application/user/usecases"
	"licensehub/internal/shared/logger"
	"licensehub/internal/shared/utils"
)

type UserHandler struct {
	createUC *usecases.CreateUserUseCase
	getUC    *usecases.GetUserUseCase
	listUC   *usecases.ListUsersUseCase
	updateUC *usecases.UpdateUserUseCase
	deleteUC *usecases.DeleteUserUseCase
	logger   logger.Interface
}

func NewUserHandler(
	createUC *usecases.CreateUserUseCase,
	getUC *usecases.GetUserUseCase,
	listUC *usecases.ListUsersUseCase,
	updateUC *usecases.UpdateUserUseCase,
	deleteUC *usecases.DeleteUserUseCase,
	log logger.Interface,
) *UserHandler {
	return &UserHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   log,
	}
}

// Create handles POST /admin/users
// @Summary Create user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User"
// @Success 201 {object} utils.APIResponse{data=dto.UserResponse}
// @Failure 409 {object} utils.APIResponse
// @Router /admin/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, &req, h.logger, "create user") {
		return
	}

	resp, err := h.createUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, resp, "User created successfully")
}

// Get handles GET /admin/users/:id
func (h *UserHandler) Get(c *gin.Context) {
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

// List handles GET /admin/users
// @Summary List users
// @Tags Users
// @Produce json
// @Param account_id query int false "Account ID"
// @Param search query string false "Name or email fragment"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /admin/users [get]
func (h *UserHandler) List(c *gin.Context) {
	var req dto.ListUsersRequest
	if !bindQuery(c, &req, h.logger, "list users") {
		return
	}

	resp, err := h.listUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, resp.Items, resp.Total, resp.Page, resp.PageSize)
}

// Update handles PATCH /admin/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !bindJSON(c, &req, h.logger, "update user") {
		return
	}

	resp, err := h.updateUC.Execute(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", resp)
}

// Delete handles DELETE /admin/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
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
