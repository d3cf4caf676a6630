package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"licensehub/internal/application/product/dto"
	"licensehub/internal/application/product/usecases"
	"licensehub/internal/shared/logger"
	"licensehub/internal/shared/utils"
)

type ProductHandler struct {
	createUC *usecases.CreateProductUseCase
	getUC    *usecases.GetProductUseCase
	listUC   *usecases.ListProductsUseCase
	updateUC *usecases.UpdateProductUseCase
	deleteUC *usecases.DeleteProductUseCase
	logger   logger.Interface
}

func NewProductHandler(
	createUC *usecases.CreateProductUseCase,
	getUC *usecases.GetProductUseCase,
	listUC *usecases.ListProductsUseCase,
	updateUC *usecases.UpdateProductUseCase,
	deleteUC *usecases.DeleteProductUseCase,
	log logger.Interface,
) *ProductHandler {
	return &ProductHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   log,
	}
}

// Create handles POST /admin/products
// @Summary Create product
// @Tags Products
// @Accept json
// @Produce json
// @Param request body dto.CreateProductRequest true "Product"
// @Success 201 {object} utils.APIResponse{data=dto.ProductResponse}
// @Router /admin/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindJSON(c, &req, h.logger, "create product") {
		return
	}

	resp, err := h.createUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, resp, "Product created successfully")
}

// Get handles GET /admin/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
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

// List handles GET /admin/products
func (h *ProductHandler) List(c *gin.Context) {
	var req dto.ListProductsRequest
	if !bindQuery(c, &req, h.logger, "list products") {
		return
	}

	resp, err := h.listUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, resp.Items, resp.Total, resp.Page, resp.PageSize)
}

// Update handles PATCH /admin/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if !bindJSON(c, &req, h.logger, "update product") {
		return
	}

	resp, err := h.updateUC.Execute(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Product updated successfully", resp)
}

// Delete handles DELETE /admin/products/:id. A product that is still
// subscribed answers 409.
// @Summary Delete product
// @Tags Products
// @Param id path int true "Product ID"
// @Success 204
// @Failure 409 {object} utils.APIResponse
// @Router /admin/products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
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
