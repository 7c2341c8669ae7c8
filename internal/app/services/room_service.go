package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/devansh/hostelhub/internal/app/models"
	"github.com/devansh/hostelhub/internal/app/models/dto"
	"github.com/devansh/hostelhub/internal/app/repositories"
	"github.com/devansh/hostelhub/internal/pkg/apperrors"
)

// IRoomService handles room inventory management
type IRoomService interface {
	Create(ctx context.Context, actor *models.User, req dto.CreateRoomRequest) (*models.Room, error)
	GetByID(ctx context.Context, id int64) (*models.Room, error)
	List(ctx context.Context, filter dto.RoomFilter) ([]*models.Room, error)
	Update(ctx context.Context, actor *models.User, id int64, req dto.UpdateRoomRequest) (*models.Room, error)
	ToggleActive(ctx context.Context, actor *models.User, id int64) (*models.Room, error)
	Delete(ctx context.Context, actor *models.User, id int64) error
}

// RoomService handles room inventory operations
type RoomService struct {
	roomRepo        repositories.IRoomRepository
	defaultCapacity int
	defaultRent     int64
	logger          zerolog.Logger
}

// NewRoomService creates a new RoomService
func NewRoomService(roomRepo repositories.IRoomRepository, defaultCapacity int, defaultRent int64, logger zerolog.Logger) *RoomService {
	return &RoomService{
		roomRepo:        roomRepo,
		defaultCapacity: defaultCapacity,
		defaultRent:     defaultRent,
		logger:          logger,
	}
}

// Create adds a room to the inventory (admin only)
func (s *RoomService) Create(ctx context.Context, actor *models.User, req dto.CreateRoomRequest) (*models.Room, error) {
	if actor == nil || actor.Role != models.RoleAdmin {
		return nil, apperrors.ErrPermissionDenied
	}

	block := strings.ToLower(strings.TrimSpace(req.Block))
	roomNumber := strings.TrimSpace(req.RoomNumber)
	if block == "" {
		return nil, apperrors.NewValidationError("block", "block is required")
	}
	if roomNumber == "" {
		return nil, apperrors.NewValidationError("room_number", "room_number is required")
	}
	if req.Floor == nil || *req.Floor < 0 {
		return nil, apperrors.NewValidationError("floor", "floor must be zero or positive")
	}
	if req.Capacity < 0 {
		return nil, apperrors.NewValidationError("capacity", "capacity cannot be negative")
	}

	capacity := req.Capacity
	if capacity == 0 {
		capacity = s.defaultCapacity
	}
	rent := req.YearlyRent
	if rent == 0 {
		rent = s.defaultRent
	}

	room := &models.Room{
		RoomNumber: roomNumber,
		BlockCode:  block,
		Floor:      *req.Floor,
		Capacity:   capacity,
		YearlyRent: rent,
		IsActive:   true,
	}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}

	s.logger.Info().Str("block", block).Str("room", roomNumber).Int("capacity", capacity).Msg("Room created")
	return room, nil
}

// GetByID retrieves a room
func (s *RoomService) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	return s.roomRepo.GetByID(ctx, id)
}

// List retrieves rooms matching the filter
func (s *RoomService) List(ctx context.Context, filter dto.RoomFilter) ([]*models.Room, error) {
	filter.Block = strings.ToLower(strings.TrimSpace(filter.Block))
	return s.roomRepo.GetAll(ctx, filter)
}

// Update edits a room's floor, capacity or rent (admin only). Occupancy
// is never written here; it only moves through allocate and release.
func (s *RoomService) Update(ctx context.Context, actor *models.User, id int64, req dto.UpdateRoomRequest) (*models.Room, error) {
	if actor == nil || actor.Role != models.RoleAdmin {
		return nil, apperrors.ErrPermissionDenied
	}
	if req.Floor == nil && req.Capacity == nil && req.YearlyRent == nil {
		return nil, apperrors.NewValidationError("body", "no fields to update")
	}
	if req.Capacity != nil && *req.Capacity < 1 {
		return nil, apperrors.NewValidationError("capacity", "capacity must be at least 1")
	}
	if req.YearlyRent != nil && *req.YearlyRent < 0 {
		return nil, apperrors.NewValidationError("yearly_rent", "yearly_rent cannot be negative")
	}
	if req.Capacity != nil {
		current, err := s.roomRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if *req.Capacity < current.Occupancy {
			return nil, apperrors.NewConflictError("capacity cannot be lower than current occupancy")
		}
	}

	room, err := s.roomRepo.Update(ctx, id, &req)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("roomId", id).Msg("Room updated")
	return room, nil
}

// ToggleActive flips a room's availability flag (admin only). Inactive
// rooms reject new allocations but keep their current residents.
func (s *RoomService) ToggleActive(ctx context.Context, actor *models.User, id int64) (*models.Room, error) {
	if actor == nil || actor.Role != models.RoleAdmin {
		return nil, apperrors.ErrPermissionDenied
	}

	room, err := s.roomRepo.ToggleActive(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("roomId", id).Bool("isActive", room.IsActive).Msg("Room availability toggled")
	return room, nil
}

// Delete removes an empty room (admin only)
func (s *RoomService) Delete(ctx context.Context, actor *models.User, id int64) error {
	if actor == nil || actor.Role != models.RoleAdmin {
		return apperrors.ErrPermissionDenied
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if room.Occupancy > 0 {
		return apperrors.NewConflictError("room still has residents")
	}

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("roomId", id).Msg("Room deleted")
	return nil
}
