// Package controllers handles HTTP request handling
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
)

// parseIDParam reads a positive integer path parameter
func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.NewValidationError(name, name+" must be a positive integer")
	}
	return id, nil
}

// UserController handles account and session operations
type UserController struct {
	authService services.IAuthService
	userService services.IUserService
	cookieTTL   int
	logger      zerolog.Logger
}

// NewUserController creates a new UserController. cookieTTL is the
// access token lifetime in seconds, used for the login cookie.
func NewUserController(authService services.IAuthService, userService services.IUserService, cookieTTL int, logger zerolog.Logger) *UserController {
	return &UserController{
		authService: authService,
		userService: userService,
		cookieTTL:   cookieTTL,
		logger:      logger,
	}
}

// Login handles user authentication
// @Summary Log in
// @Description Verifies credentials and returns an access token. The token is also set as an httpOnly cookie.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 403 {object} dto.ErrorResponse "Account inactive"
// @Router /users/login [post]
func (ctrl *UserController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}

	result, err := ctrl.authService.Login(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.SetCookie(middleware.AccessTokenCookie, result.AccessToken, ctrl.cookieTTL, "/", "", false, true)
	c.JSON(http.StatusOK, dto.NewSuccessResponse(result, "Logged in successfully"))
}

// Logout clears the session cookie
// @Summary Log out
// @Description Clears the access token cookie.
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /users/logout [post]
func (ctrl *UserController) Logout(c *gin.Context) {
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Logged out successfully"))
}

// Register creates an admin or staff account
// @Summary Register a user account
// @Description Creates a bare account. Student accounts are created through enrollment instead.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterUserRequest true "Account details"
// @Success 201 {object} dto.APIResponse{data=models.User}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 409 {object} dto.ErrorResponse "Email or phone already exists"
// @Router /users/register [post]
func (ctrl *UserController) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}

	user, err := ctrl.userService.Register(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(user, "User created successfully"))
}

// Me returns the authenticated account
// @Summary Current account
// @Description Returns the authenticated user; students include their profile.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /users/me [get]
func (ctrl *UserController) Me(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		middleware.HandleAPIError(c, apperrors.ErrPermissionDenied)
		return
	}

	user, err := ctrl.authService.GetCurrentUser(c.Request.Context(), actor.ID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(user, ""))
}

// UpdateStatus activates or deactivates an account
// @Summary Change account status
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.UpdateUserStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id}/status [patch]
func (ctrl *UserController) UpdateStatus(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}

	if err := ctrl.userService.UpdateStatus(c.Request.Context(), middleware.CurrentUser(c), id, req.Status); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "User status updated"))
}
