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

// AnnouncementController handles notices
type AnnouncementController struct {
	announcementService services.IAnnouncementService
	logger              zerolog.Logger
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(announcementService services.IAnnouncementService, logger zerolog.Logger) *AnnouncementController {
	return &AnnouncementController{announcementService: announcementService, logger: logger}
}

// Create publishes an announcement
// @Summary Publish an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAnnouncementRequest true "Announcement details"
// @Success 201 {object} dto.APIResponse{data=models.Announcement}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /announcements [post]
func (ctrl *AnnouncementController) Create(c *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}

	a, err := ctrl.announcementService.Create(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(a, "Announcement published"))
}

// List returns announcements, newest first
// @Summary List announcements
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param category query string false "Category filter"
// @Success 200 {object} dto.APIResponse{data=[]models.Announcement}
// @Router /announcements [get]
func (ctrl *AnnouncementController) List(c *gin.Context) {
	page, limit := helpers.ParsePaginationParams(c)
	filter := dto.AnnouncementFilter{
		Category: c.Query("category"),
		Page:     page,
		Limit:    limit,
	}

	announcements, total, err := ctrl.announcementService.List(c.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(announcements, helpers.NewPaginationInfo(total, page, limit), ""))
}

// Get returns one announcement
// @Summary Get an announcement
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Success 200 {object} dto.APIResponse{data=models.Announcement}
// @Failure 404 {object} dto.ErrorResponse "Announcement not found"
// @Router /announcements/{id} [get]
func (ctrl *AnnouncementController) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	a, err := ctrl.announcementService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(a, ""))
}

// Update edits an announcement
// @Summary Update an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Param request body dto.UpdateAnnouncementRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Announcement}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Announcement not found"
// @Router /announcements/{id} [put]
func (ctrl *AnnouncementController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}

	a, err := ctrl.announcementService.Update(c.Request.Context(), middleware.CurrentUser(c), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(a, "Announcement updated"))
}

// Delete removes an announcement
// @Summary Delete an announcement
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Announcement not found"
// @Router /announcements/{id} [delete]
func (ctrl *AnnouncementController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.announcementService.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Announcement deleted"))
}
