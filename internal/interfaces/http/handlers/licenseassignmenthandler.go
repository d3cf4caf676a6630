package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"licensehub/internal/application/licensing/usecases"
	"licensehub/internal/shared/errors"
	"licensehub/internal/shared/logger"
	"licensehub/internal/shared/utils"
)

type LicenseAssignmentHandler struct {
	listUC          *usecases.ListAssignmentsUseCase
	formUC          *usecases.AssignmentFormUseCase
	createUC        *usecases.CreateAssignmentsUseCase
	destroyBatchUC  *usecases.DestroyAssignmentsUseCase
	destroySingleUC *usecases.DeleteAssignmentUseCase
	logger          logger.Interface
}

func NewLicenseAssignmentHandler(
	listUC *usecases.ListAssignmentsUseCase,
	formUC *usecases.AssignmentFormUseCase,
	createUC *usecases.CreateAssignmentsUseCase,
	destroyBatchUC *usecases.DestroyAssignmentsUseCase,
	destroySingleUC *usecases.DeleteAssignmentUseCase,
	log logger.Interface,
) *LicenseAssignmentHandler {
	return &LicenseAssignmentHandler{
		listUC:          listUC,
		formUC:          formUC,
		createUC:        createUC,
		destroyBatchUC:  destroyBatchUC,
		destroySingleUC: destroySingleUC,
		logger:          log,
	}
}

// Index handles GET /admin/accounts/:id/license-assignments
// @Summary List license assignments of an account
// @Description Current assignments plus the account's users and license pools with usage.
// @Tags License Assignments
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} utils.APIResponse{data=AssignmentsIndexResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /admin/accounts/{id}/license-assignments [get]
func (h *LicenseAssignmentHandler) Index(c *gin.Context) {
	accountID, ok := parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	assignments, err := h.listUC.Execute(ctx, accountID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	form, err := h.formUC.Execute(ctx, accountID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", AssignmentsIndexResponse{
		Assignments:   assignments,
		Users:         form.Users,
		Subscriptions: form.Subscriptions,
	})
}

// Create handles POST /admin/accounts/:id/license-assignments. Every
// requested pair is attempted; when any is rejected the answer is 422 with
// the distinct reasons and the assignments that were created.
// @Summary Assign licenses in batch
// @Tags License Assignments
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body CreateAssignmentsRequest true "Assignments"
// @Success 201 {object} utils.APIResponse{data=dto.BatchResult}
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse{data=dto.BatchResult}
// @Failure 500 {object} utils.APIResponse{data=dto.BatchResult}
// @Router /admin/accounts/{id}/license-assignments [post]
func (h *LicenseAssignmentHandler) Create(c *gin.Context) {
	accountID, ok := parseID(c)
	if !ok {
		return
	}

	var req CreateAssignmentsRequest
	if !bindJSON(c, &req, h.logger, "create license assignments") {
		return
	}

	ctx := c.Request.Context()
	requests := req.toApplicationRequests()
	if len(requests) == 0 {
		// an unknown account still answers 404
		if _, err := h.listUC.Execute(ctx, accountID); err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.ErrorResponseWithError(c, errors.NewUnprocessableError("assignments are required"))
		return
	}

	result, err := h.createUC.Execute(ctx, accountID, requests)
	if err != nil {
		if result != nil && len(result.Created) > 0 {
			utils.ErrorResponseWithData(c,
				errors.NewInternalError("license assignment batch interrupted", "created assignments were kept"),
				result)
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	if !result.Success {
		h.logger.Infow("license assignment batch partially rejected",
			"account_id", accountID,
			"created", len(result.Created),
			"errors", result.Errors)
		utils.ErrorResponseWithData(c,
			errors.NewUnprocessableError("some license assignments could not be created", strings.Join(result.Errors, "; ")),
			result)
		return
	}

	utils.CreatedResponse(c, result, "License assignments created successfully")
}

// DestroyBatch handles DELETE /admin/accounts/:id/license-assignments.
// Ids come from the JSON body or from user_ids/product_ids query
// parameters. Nothing is removed when either list is empty.
// @Summary Remove licenses in batch
// @Tags License Assignments
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param user_ids query []int false "User IDs"
// @Param product_ids query []int false "Product IDs"
// @Param request body DestroyAssignmentsRequest false "Ids"
// @Success 200 {object} utils.APIResponse{data=dto.DestroyResult}
// @Failure 404 {object} utils.APIResponse
// @Router /admin/accounts/{id}/license-assignments [delete]
func (h *LicenseAssignmentHandler) DestroyBatch(c *gin.Context) {
	accountID, ok := parseID(c)
	if !ok {
		return
	}

	userIDs, productIDs, ok := h.destroyIDs(c)
	if !ok {
		return
	}

	result, err := h.destroyBatchUC.Execute(c.Request.Context(), accountID, userIDs, productIDs)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "License assignments removed", result)
}

func (h *LicenseAssignmentHandler) destroyIDs(c *gin.Context) ([]uint, []uint, bool) {
	userIDs, err := utils.ParseIDQuery(c, "user_ids")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return nil, nil, false
	}
	productIDs, err := utils.ParseIDQuery(c, "product_ids")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return nil, nil, false
	}

	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		var req DestroyAssignmentsRequest
		if !bindJSON(c, &req, h.logger, "destroy license assignments") {
			return nil, nil, false
		}
		userIDs = append(userIDs, utils.FlexibleIDs(req.UserIDs)...)
		productIDs = append(productIDs, utils.FlexibleIDs(req.ProductIDs)...)
	}

	return userIDs, productIDs, true
}

// DestroySingle handles DELETE /admin/accounts/:id/license-assignments/:assignment_id
// @Summary Remove one license assignment
// @Tags License Assignments
// @Param id path int true "Account ID"
// @Param assignment_id path int true "Assignment ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /admin/accounts/{id}/license-assignments/{assignment_id} [delete]
func (h *LicenseAssignmentHandler) DestroySingle(c *gin.Context) {
	accountID, ok := parseID(c)
	if !ok {
		return
	}
	assignmentID, ok := parseNamedID(c, "assignment_id")
	if !ok {
		return
	}

	if err := h.destroySingleUC.Execute(c.Request.Context(), accountID, assignmentID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

