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

// DisciplinaryController handles disciplinary cases
type DisciplinaryController struct {
	caseService services.IDisciplinaryService
	logger      zerolog.Logger
}

// NewDisciplinaryController creates a new DisciplinaryController
func NewDisciplinaryController(caseService services.IDisciplinaryService, logger zerolog.Logger) *DisciplinaryController {
	return &DisciplinaryController{caseService: caseService, logger: logger}
}

// Create opens a case
// @Summary Open a disciplinary case
// @Tags disciplinary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCaseRequest true "Case details"
// @Success 201 {object} dto.APIResponse{data=models.DisciplinaryCase}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /disciplinary [post]
func (ctrl *DisciplinaryController) Create(c *gin.Context) {
	var req dto.CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}

	dcase, err := ctrl.caseService.Create(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(dcase, "Disciplinary case opened"))
}

// List returns cases
// @Summary List disciplinary cases
// @Description Admin and staff see all cases; students see their own.
// @Tags disciplinary
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param status query string false "open or closed"
// @Param student_id query int false "Student filter (admin/staff)"
// @Success 200 {object} dto.APIResponse{data=[]models.DisciplinaryCase}
// @Router /disciplinary [get]
func (ctrl *DisciplinaryController) List(c *gin.Context) {
	page, limit := helpers.ParsePaginationParams(c)
	filter := dto.CaseFilter{
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	}
	if v := c.Query("student_id"); v != "" {
		studentID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			middleware.HandleAPIError(c, apperrors.NewValidationError("student_id", "student_id must be an integer"))
			return
		}
		filter.StudentID = studentID
	}

	cases, total, err := ctrl.caseService.List(c.Request.Context(), middleware.CurrentUser(c), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(cases, helpers.NewPaginationInfo(total, page, limit), ""))
}

// Get returns one case
// @Summary Get a disciplinary case
// @Tags disciplinary
// @Produce json
// @Security BearerAuth
// @Param id path int true "Case ID"
// @Success 200 {object} dto.APIResponse{data=models.DisciplinaryCase}
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Case not found"
// @Router /disciplinary/{id} [get]
func (ctrl *DisciplinaryController) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	dcase, err := ctrl.caseService.GetByID(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dcase, ""))
}

// Update edits a case
// @Summary Update a disciplinary case
// @Tags disciplinary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Case ID"
// @Param request body dto.UpdateCaseRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.DisciplinaryCase}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Case not found"
// @Router /disciplinary/{id} [put]
func (ctrl *DisciplinaryController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}

	dcase, err := ctrl.caseService.Update(c.Request.Context(), middleware.CurrentUser(c), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dcase, "Disciplinary case updated"))
}

// Delete removes a case
// @Summary Delete a disciplinary case
// @Tags disciplinary
// @Produce json
// @Security BearerAuth
// @Param id path int true "Case ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Case not found"
// @Router /disciplinary/{id} [delete]
func (ctrl *DisciplinaryController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.caseService.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Disciplinary case deleted"))
}
