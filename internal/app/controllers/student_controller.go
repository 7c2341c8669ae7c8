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

// StudentController handles enrollment and the student registry
type StudentController struct {
	enrollmentService services.IEnrollmentService
	studentService    services.IStudentService
	logger            zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(
	enrollmentService services.IEnrollmentService,
	studentService services.IStudentService,
	logger zerolog.Logger,
) *StudentController {
	return &StudentController{
		enrollmentService: enrollmentService,
		studentService:    studentService,
		logger:            logger,
	}
}

// Enroll admits a new student
// @Summary Enroll a student
// @Description Creates the user account, allocates a room slot and creates the student profile in one transaction. A nonexistent room is created on the fly.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EnrollStudentRequest true "Enrollment details"
// @Success 201 {object} dto.APIResponse{data=dto.EnrollStudentResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 409 {object} dto.ErrorResponse "Duplicate email/phone/sid or room full"
// @Router /students/create [post]
func (ctrl *StudentController) Enroll(c *gin.Context) {
	var req dto.EnrollStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}

	result, err := ctrl.enrollmentService.Enroll(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(result, "Student enrolled successfully"))
}

// List returns a page of the student registry
// @Summary List students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param block query string false "Block code filter"
// @Param branch query string false "Branch substring filter"
// @Param search query string false "Matches full name, email or SID"
// @Success 200 {object} dto.APIResponse{data=[]models.Student}
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /students [get]
func (ctrl *StudentController) List(c *gin.Context) {
	page, limit := helpers.ParsePaginationParams(c)
	filter := dto.StudentFilter{
		Block:  c.Query("block"),
		Branch: c.Query("branch"),
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}

	students, total, err := ctrl.studentService.List(c.Request.Context(), middleware.CurrentUser(c), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(students, helpers.NewPaginationInfo(total, page, limit), ""))
}

// GetOwn returns the calling student's profile
// @Summary Own profile
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /students/me [get]
func (ctrl *StudentController) GetOwn(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		middleware.HandleAPIError(c, apperrors.ErrPermissionDenied)
		return
	}

	student, err := ctrl.studentService.GetProfile(c.Request.Context(), actor, actor.ID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(student, ""))
}

// GetByUserID returns a student profile by user id
// @Summary Get a student profile
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /students/{userId} [get]
func (ctrl *StudentController) GetByUserID(c *gin.Context) {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	student, err := ctrl.studentService.GetProfile(c.Request.Context(), middleware.CurrentUser(c), userID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(student, ""))
}

// Update edits a student profile
// @Summary Update a student profile
// @Description Students may change their own address and guardian name; admin and staff may change everything. A room change reallocates the slot atomically.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param request body dto.UpdateStudentRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Failure 409 {object} dto.ErrorResponse "Target room full"
// @Router /students/{userId} [put]
func (ctrl *StudentController) Update(c *gin.Context) {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}

	student, err := ctrl.studentService.Update(c.Request.Context(), middleware.CurrentUser(c), userID, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Student profile updated"))
}

// Delete removes a student profile and frees its room slot
// @Summary Delete a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /students/{userId} [delete]
func (ctrl *StudentController) Delete(c *gin.Context) {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.studentService.Delete(c.Request.Context(), middleware.CurrentUser(c), userID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Student removed"))
}
