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

// IHostelService handles hostel buildings
type IHostelService interface {
	Create(ctx context.Context, actor *models.User, req dto.CreateHostelRequest) (*models.Hostel, error)
	GetByID(ctx context.Context, id int64) (*models.Hostel, error)
	List(ctx context.Context) ([]*models.Hostel, error)
	Update(ctx context.Context, actor *models.User, id int64, req dto.UpdateHostelRequest) (*models.Hostel, error)
	ToggleActive(ctx context.Context, actor *models.User, id int64) (*models.Hostel, error)
	Delete(ctx context.Context, actor *models.User, id int64) error
}

// HostelService handles hostel operations
type HostelService struct {
	hostelRepo *repositories.HostelRepository
	logger     zerolog.Logger
}

// NewHostelService creates a new HostelService
func NewHostelService(hostelRepo *repositories.HostelRepository, logger zerolog.Logger) *HostelService {
	return &HostelService{hostelRepo: hostelRepo, logger: logger}
}

func normalizeBlocks(blocks []string) []string {
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		b = strings.ToLower(strings.TrimSpace(b))
		if b != "" {
			out = append(out, b)
		}
	}
	return out
}

// Create registers a hostel building (admin only). Codes are stored
// uppercased, block codes lowercased.
func (s *HostelService) Create(ctx context.Context, actor *models.User, req dto.CreateHostelRequest) (*models.Hostel, error) {
	if actor == nil || actor.Role != models.RoleAdmin {
		return nil, apperrors.ErrPermissionDenied
	}

	blocks := normalizeBlocks(req.Blocks)
	if len(blocks) == 0 {
		return nil, apperrors.NewValidationError("blocks", "at least one block is required")
	}

	hostel := &models.Hostel{
		Name:           strings.TrimSpace(req.Name),
		Code:           strings.ToUpper(strings.TrimSpace(req.Code)),
		Blocks:         blocks,
		FloorsPerBlock: req.FloorsPerBlock,
		RoomsPerFloor:  req.RoomsPerFloor,
		TotalRooms:     req.TotalRooms,
	}
	if err := s.hostelRepo.Create(ctx, hostel); err != nil {
		return nil, err
	}

	s.logger.Info().Str("code", hostel.Code).Msg("Hostel created")
	return hostel, nil
}

// GetByID retrieves a hostel
func (s *HostelService) GetByID(ctx context.Context, id int64) (*models.Hostel, error) {
	return s.hostelRepo.GetByID(ctx, id)
}

// List retrieves all hostels
func (s *HostelService) List(ctx context.Context) ([]*models.Hostel, error) {
	return s.hostelRepo.GetAll(ctx)
}

// Update edits a hostel (admin only)
func (s *HostelService) Update(ctx context.Context, actor *models.User, id int64, req dto.UpdateHostelRequest) (*models.Hostel, error) {
	if actor == nil || actor.Role != models.RoleAdmin {
		return nil, apperrors.ErrPermissionDenied
	}

	hostel, err := s.hostelRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		hostel.Name = strings.TrimSpace(*req.Name)
	}
	if req.Blocks != nil {
		blocks := normalizeBlocks(req.Blocks)
		if len(blocks) == 0 {
			return nil, apperrors.NewValidationError("blocks", "at least one block is required")
		}
		hostel.Blocks = blocks
	}
	if req.FloorsPerBlock != nil {
		hostel.FloorsPerBlock = *req.FloorsPerBlock
	}
	if req.RoomsPerFloor != nil {
		hostel.RoomsPerFloor = *req.RoomsPerFloor
	}
	if hostel.FloorsPerBlock < 1 || hostel.RoomsPerFloor < 1 {
		return nil, apperrors.NewValidationError("floors_per_block", "floors and rooms per floor must be at least 1")
	}
	hostel.TotalRooms = len(hostel.Blocks) * hostel.FloorsPerBlock * hostel.RoomsPerFloor

	if err := s.hostelRepo.Update(ctx, hostel); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("hostelId", id).Msg("Hostel updated")
	return hostel, nil
}

// ToggleActive flips a hostel's active flag (admin only)
func (s *HostelService) ToggleActive(ctx context.Context, actor *models.User, id int64) (*models.Hostel, error) {
	if actor == nil || actor.Role != models.RoleAdmin {
		return nil, apperrors.ErrPermissionDenied
	}

	isActive, err := s.hostelRepo.ToggleActive(ctx, id)
	if err != nil {
		return nil, err
	}

	hostel, err := s.hostelRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	hostel.IsActive = isActive

	s.logger.Info().Int64("hostelId", id).Bool("isActive", isActive).Msg("Hostel availability toggled")
	return hostel, nil
}

// Delete removes a hostel (admin only)
func (s *HostelService) Delete(ctx context.Context, actor *models.User, id int64) error {
	if actor == nil || actor.Role != models.RoleAdmin {
		return apperrors.ErrPermissionDenied
	}
	if err := s.hostelRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("hostelId", id).Msg("Hostel deleted")
	return nil
}
