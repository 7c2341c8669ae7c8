package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/devansh/hostelhub/internal/app/models/dto"
	"github.com/devansh/hostelhub/internal/app/services"
	"github.com/devansh/hostelhub/internal/middleware"
	"github.com/devansh/hostelhub/internal/pkg/apperrors"
)

// HostelController handles hostel buildings
type HostelController struct {
	hostelService services.IHostelService
	logger        zerolog.Logger
}

// NewHostelController creates a new HostelController
func NewHostelController(hostelService services.IHostelService, logger zerolog.Logger) *HostelController {
	return &HostelController{hostelService: hostelService, logger: logger}
}

// Create registers a hostel
// @Summary Create a hostel
// @Tags hostels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateHostelRequest true "Hostel details"
// @Success 201 {object} dto.APIResponse{data=models.Hostel}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 409 {object} dto.ErrorResponse "Code already exists"
// @Router /hostels [post]
func (ctrl *HostelController) Create(c *gin.Context) {
	var req dto.CreateHostelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}

	hostel, err := ctrl.hostelService.Create(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(hostel, "Hostel created successfully"))
}

// List returns all hostels
// @Summary List hostels
// @Tags hostels
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Hostel}
// @Router /hostels [get]
func (ctrl *HostelController) List(c *gin.Context) {
	hostels, err := ctrl.hostelService.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	count := len(hostels)
	resp := dto.NewSuccessResponse(hostels, "")
	resp.Count = &count
	c.JSON(http.StatusOK, resp)
}

// Get returns one hostel
// @Summary Get a hostel
// @Tags hostels
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hostel ID"
// @Success 200 {object} dto.APIResponse{data=models.Hostel}
// @Failure 404 {object} dto.ErrorResponse "Hostel not found"
// @Router /hostels/{id} [get]
func (ctrl *HostelController) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	hostel, err := ctrl.hostelService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(hostel, ""))
}

// Update edits a hostel
// @Summary Update a hostel
// @Tags hostels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hostel ID"
// @Param request body dto.UpdateHostelRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Hostel}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Hostel not found"
// @Router /hostels/{id} [put]
func (ctrl *HostelController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateHostelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}

	hostel, err := ctrl.hostelService.Update(c.Request.Context(), middleware.CurrentUser(c), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(hostel, "Hostel updated"))
}

// ToggleActive flips a hostel's active flag
// @Summary Toggle hostel availability
// @Tags hostels
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hostel ID"
// @Success 200 {object} dto.APIResponse{data=models.Hostel}
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Hostel not found"
// @Router /hostels/{id}/toggle [patch]
func (ctrl *HostelController) ToggleActive(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	hostel, err := ctrl.hostelService.ToggleActive(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(hostel, "Hostel availability toggled"))
}

// Delete removes a hostel
// @Summary Delete a hostel
// @Tags hostels
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hostel ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Hostel not found"
// @Router /hostels/{id} [delete]
func (ctrl *HostelController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.hostelService.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Hostel deleted"))
}
