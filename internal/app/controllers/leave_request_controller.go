package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/devansh/hostelhub/internal/app/models/dto"
	"github.com/devansh/hostelhub/internal/app/services"
	"github.com/devansh/hostelhub/internal/middleware"
	"github.com/devansh/hostelhub/internal/pkg/apperrors"
	"github.com/devansh/hostelhub/internal/pkg/helpers"
)

// LeaveRequestController handles leave applications
type LeaveRequestController struct {
	leaveService services.ILeaveRequestService
	logger       zerolog.Logger
}

// NewLeaveRequestController creates a new LeaveRequestController
func NewLeaveRequestController(leaveService services.ILeaveRequestService, logger zerolog.Logger) *LeaveRequestController {
	return &LeaveRequestController{leaveService: leaveService, logger: logger}
}

// Create files a leave application
// @Summary Apply for leave
// @Tags leaves
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateLeaveRequest true "Leave details"
// @Success 201 {object} dto.APIResponse{data=models.LeaveRequest}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 409 {object} dto.ErrorResponse "Overlapping leave request"
// @Router /leaves [post]
func (ctrl *LeaveRequestController) Create(c *gin.Context) {
	var req dto.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}

	leave, err := ctrl.leaveService.Create(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(leave, "Leave request filed"))
}

// List returns leave requests
// @Summary List leave requests
// @Description Admin and staff see all requests; students see their own.
// @Tags leaves
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param status query string false "pending, approved or rejected"
// @Success 200 {object} dto.APIResponse{data=[]models.LeaveRequest}
// @Router /leaves [get]
func (ctrl *LeaveRequestController) List(c *gin.Context) {
	page, limit := helpers.ParsePaginationParams(c)
	filter := dto.LeaveFilter{
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	}

	leaves, total, err := ctrl.leaveService.List(c.Request.Context(), middleware.CurrentUser(c), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(leaves, helpers.NewPaginationInfo(total, page, limit), ""))
}

// Get returns one leave request
// @Summary Get a leave request
// @Tags leaves
// @Produce json
// @Security BearerAuth
// @Param id path int true "Leave request ID"
// @Success 200 {object} dto.APIResponse{data=models.LeaveRequest}
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Leave request not found"
// @Router /leaves/{id} [get]
func (ctrl *LeaveRequestController) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	leave, err := ctrl.leaveService.GetByID(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(leave, ""))
}

// UpdateStatus approves or rejects a request
// @Summary Decide a leave request
// @Tags leaves
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Leave request ID"
// @Param request body dto.UpdateLeaveStatusRequest true "approved or rejected"
// @Success 200 {object} dto.APIResponse{data=models.LeaveRequest}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Leave request not found"
// @Failure 409 {object} dto.ErrorResponse "Already decided"
// @Router /leaves/{id}/status [patch]
func (ctrl *LeaveRequestController) UpdateStatus(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateLeaveStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}

	leave, err := ctrl.leaveService.UpdateStatus(c.Request.Context(), middleware.CurrentUser(c), id, req.Status)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(leave, "Leave request decided"))
}

// Delete withdraws or removes a leave request
// @Summary Delete a leave request
// @Tags leaves
// @Produce json
// @Security BearerAuth
// @Param id path int true "Leave request ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Leave request not found"
// @Router /leaves/{id} [delete]
func (ctrl *LeaveRequestController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.leaveService.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Leave request deleted"))
}
