package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/devansh/hostelhub/internal/app/models/dto"
	"github.com/devansh/hostelhub/internal/app/services"
	"github.com/devansh/hostelhub/internal/middleware"
	"github.com/devansh/hostelhub/internal/pkg/apperrors"
	"github.com/devansh/hostelhub/internal/pkg/helpers"
)

// PaymentController handles the payment ledger
type PaymentController struct {
	paymentService services.IPaymentService
	logger         zerolog.Logger
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(paymentService services.IPaymentService, logger zerolog.Logger) *PaymentController {
	return &PaymentController{paymentService: paymentService, logger: logger}
}

func paymentFilterFromQuery(c *gin.Context) (dto.PaymentFilter, error) {
	page, limit := helpers.ParsePaginationParams(c)
	filter := dto.PaymentFilter{
		Status:    c.Query("status"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Page:      page,
		Limit:     limit,
	}
	if v := c.Query("user_id"); v != "" {
		userID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, apperrors.NewValidationError("user_id", "user_id must be an integer")
		}
		filter.UserID = userID
	}
	return filter, nil
}

// Create records a payment
// @Summary Record a payment
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.APIResponse{data=models.Payment}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /payments [post]
func (ctrl *PaymentController) Create(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}

	payment, err := ctrl.paymentService.Create(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(payment, "Payment recorded"))
}

// List returns payments
// @Summary List payments
// @Description Admin and staff see all payments; other callers see their own.
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param status query string false "success or failed"
// @Param user_id query int false "User filter (admin/staff)"
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]models.Payment}
// @Router /payments [get]
func (ctrl *PaymentController) List(c *gin.Context) {
	filter, err := paymentFilterFromQuery(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	payments, total, err := ctrl.paymentService.List(c.Request.Context(), middleware.CurrentUser(c), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(payments, helpers.NewPaginationInfo(total, filter.Page, filter.Limit), ""))
}

// Stats summarizes the ledger
// @Summary Payment statistics
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=dto.PaymentStats}
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /payments/stats [get]
func (ctrl *PaymentController) Stats(c *gin.Context) {
	filter := dto.PaymentFilter{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}

	stats, err := ctrl.paymentService.Stats(c.Request.Context(), middleware.CurrentUser(c), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(stats, ""))
}

// Get returns one payment
// @Summary Get a payment
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID"
// @Success 200 {object} dto.APIResponse{data=models.Payment}
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Payment not found"
// @Router /payments/{id} [get]
func (ctrl *PaymentController) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	payment, err := ctrl.paymentService.GetByID(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(payment, ""))
}

// Update edits a payment
// @Summary Update a payment
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID"
// @Param request body dto.UpdatePaymentRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Payment}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Payment not found"
// @Router /payments/{id} [put]
func (ctrl *PaymentController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}

	payment, err := ctrl.paymentService.Update(c.Request.Context(), middleware.CurrentUser(c), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(payment, "Payment updated"))
}

// Delete removes a payment
// @Summary Delete a payment
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Payment not found"
// @Router /payments/{id} [delete]
func (ctrl *PaymentController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.paymentService.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Payment deleted"))
}
