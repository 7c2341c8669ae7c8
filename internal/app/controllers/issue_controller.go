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

// IssueController handles maintenance issues and their comment threads
type IssueController struct {
	issueService   services.IIssueService
	commentService services.IIssueCommentService
	logger         zerolog.Logger
}

// NewIssueController creates a new IssueController
func NewIssueController(
	issueService services.IIssueService,
	commentService services.IIssueCommentService,
	logger zerolog.Logger,
) *IssueController {
	return &IssueController{
		issueService:   issueService,
		commentService: commentService,
		logger:         logger,
	}
}

// Create raises an issue
// @Summary Raise an issue
// @Tags issues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateIssueRequest true "Issue details"
// @Success 201 {object} dto.APIResponse{data=models.Issue}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Router /issues [post]
func (ctrl *IssueController) Create(c *gin.Context) {
	var req dto.CreateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}

	issue, err := ctrl.issueService.Create(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(issue, "Issue raised"))
}

// List returns issues
// @Summary List issues
// @Description Admin and staff see all issues; students see their own.
// @Tags issues
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param status query string false "pending or resolved"
// @Param category query string false "Issue category"
// @Success 200 {object} dto.APIResponse{data=[]models.Issue}
// @Router /issues [get]
func (ctrl *IssueController) List(c *gin.Context) {
	page, limit := helpers.ParsePaginationParams(c)
	filter := dto.IssueFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Page:     page,
		Limit:    limit,
	}

	issues, total, err := ctrl.issueService.List(c.Request.Context(), middleware.CurrentUser(c), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(issues, helpers.NewPaginationInfo(total, page, limit), ""))
}

// Get returns one issue
// @Summary Get an issue
// @Tags issues
// @Produce json
// @Security BearerAuth
// @Param id path int true "Issue ID"
// @Success 200 {object} dto.APIResponse{data=models.Issue}
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Issue not found"
// @Router /issues/{id} [get]
func (ctrl *IssueController) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	issue, err := ctrl.issueService.GetByID(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(issue, ""))
}

// Update edits a pending issue
// @Summary Update an issue
// @Tags issues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Issue ID"
// @Param request body dto.UpdateIssueRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Issue}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Issue not found"
// @Failure 409 {object} dto.ErrorResponse "Issue already resolved"
// @Router /issues/{id} [put]
func (ctrl *IssueController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}

	issue, err := ctrl.issueService.Update(c.Request.Context(), middleware.CurrentUser(c), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(issue, "Issue updated"))
}

// UpdateStatus resolves or reopens an issue
// @Summary Change issue status
// @Tags issues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Issue ID"
// @Param request body dto.UpdateIssueStatusRequest true "pending or resolved"
// @Success 200 {object} dto.APIResponse{data=models.Issue}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Issue not found"
// @Router /issues/{id}/status [patch]
func (ctrl *IssueController) UpdateStatus(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateIssueStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}

	issue, err := ctrl.issueService.UpdateStatus(c.Request.Context(), middleware.CurrentUser(c), id, req.Status)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(issue, "Issue status changed"))
}

// Delete removes an issue
// @Summary Delete an issue
// @Tags issues
// @Produce json
// @Security BearerAuth
// @Param id path int true "Issue ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Issue not found"
// @Router /issues/{id} [delete]
func (ctrl *IssueController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.issueService.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Issue deleted"))
}

// AddComment appends to an issue's thread
// @Summary Comment on an issue
// @Tags issues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Issue ID"
// @Param request body dto.CreateCommentRequest true "Comment text"
// @Success 201 {object} dto.APIResponse{data=models.IssueComment}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Issue not found"
// @Router /issues/{id}/comments [post]
func (ctrl *IssueController) AddComment(c *gin.Context) {
	issueID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}

	comment, err := ctrl.commentService.Create(c.Request.Context(), middleware.CurrentUser(c), issueID, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(comment, "Comment added"))
}

// ListComments returns an issue's thread
// @Summary List issue comments
// @Tags issues
// @Produce json
// @Security BearerAuth
// @Param id path int true "Issue ID"
// @Success 200 {object} dto.APIResponse{data=[]models.IssueComment}
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Issue not found"
// @Router /issues/{id}/comments [get]
func (ctrl *IssueController) ListComments(c *gin.Context) {
	issueID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	comments, err := ctrl.commentService.ListByIssue(c.Request.Context(), middleware.CurrentUser(c), issueID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	count := len(comments)
	resp := dto.NewSuccessResponse(comments, "")
	resp.Count = &count
	c.JSON(http.StatusOK, resp)
}

// UpdateComment edits a comment
// @Summary Edit a comment
// @Tags issues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param commentId path int true "Comment ID"
// @Param request body dto.UpdateCommentRequest true "New text"
// @Success 200 {object} dto.APIResponse{data=models.IssueComment}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Comment not found"
// @Router /issues/comments/{commentId} [put]
func (ctrl *IssueController) UpdateComment(c *gin.Context) {
	commentID, err := parseIDParam(c, "commentId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}

	comment, err := ctrl.commentService.Update(c.Request.Context(), middleware.CurrentUser(c), commentID, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(comment, "Comment updated"))
}

// DeleteComment removes a comment
// @Summary Delete a comment
// @Tags issues
// @Produce json
// @Security BearerAuth
// @Param commentId path int true "Comment ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Comment not found"
// @Router /issues/comments/{commentId} [delete]
func (ctrl *IssueController) DeleteComment(c *gin.Context) {
	commentID, err := parseIDParam(c, "commentId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.commentService.Delete(c.Request.Context(), middleware.CurrentUser(c), commentID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Comment deleted"))
}
