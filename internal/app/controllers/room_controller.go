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

// RoomController handles the room inventory
type RoomController struct {
	roomService services.IRoomService
	logger      zerolog.Logger
}

// NewRoomController creates a new RoomController
func NewRoomController(roomService services.IRoomService, logger zerolog.Logger) *RoomController {
	return &RoomController{roomService: roomService, logger: logger}
}

// Create adds a room
// @Summary Create a room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRoomRequest true "Room details"
// @Success 201 {object} dto.APIResponse{data=models.Room}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 409 {object} dto.ErrorResponse "Room already exists"
// @Router /rooms [post]
func (ctrl *RoomController) Create(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}

	room, err := ctrl.roomService.Create(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(room, "Room created successfully"))
}

// List returns rooms matching the filters
// @Summary List rooms
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param block query string false "Block code filter"
// @Param floor query int false "Floor filter"
// @Param is_active query bool false "Active flag filter"
// @Success 200 {object} dto.APIResponse{data=[]models.Room}
// @Router /rooms [get]
func (ctrl *RoomController) List(c *gin.Context) {
	filter := dto.RoomFilter{Block: c.Query("block")}
	if v := c.Query("floor"); v != "" {
		floor, err := strconv.Atoi(v)
		if err != nil {
			middleware.HandleAPIError(c, apperrors.NewValidationError("floor", "floor must be an integer"))
			return
		}
		filter.Floor = &floor
	}
	if v := c.Query("is_active"); v != "" {
		isActive, err := strconv.ParseBool(v)
		if err != nil {
			middleware.HandleAPIError(c, apperrors.NewValidationError("is_active", "is_active must be a boolean"))
			return
		}
		filter.IsActive = &isActive
	}

	rooms, err := ctrl.roomService.List(c.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	count := len(rooms)
	resp := dto.NewSuccessResponse(rooms, "")
	resp.Count = &count
	c.JSON(http.StatusOK, resp)
}

// Get returns one room
// @Summary Get a room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} dto.APIResponse{data=models.Room}
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Router /rooms/{id} [get]
func (ctrl *RoomController) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	room, err := ctrl.roomService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(room, ""))
}

// Update edits a room's floor, capacity or rent
// @Summary Update a room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param request body dto.UpdateRoomRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Room}
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Router /rooms/{id} [put]
func (ctrl *RoomController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("body", "invalid request body"))
		return
	}

	room, err := ctrl.roomService.Update(c.Request.Context(), middleware.CurrentUser(c), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(room, "Room updated"))
}

// ToggleActive flips a room's availability
// @Summary Toggle room availability
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} dto.APIResponse{data=models.Room}
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Router /rooms/{id}/toggle [patch]
func (ctrl *RoomController) ToggleActive(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	room, err := ctrl.roomService.ToggleActive(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(room, "Room availability toggled"))
}

// Delete removes an empty room
// @Summary Delete a room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 409 {object} dto.ErrorResponse "Room still has residents"
// @Router /rooms/{id} [delete]
func (ctrl *RoomController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.roomService.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Room deleted"))
}
