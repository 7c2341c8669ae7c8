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

// IAnnouncementService handles notices
type IAnnouncementService interface {
	Create(ctx context.Context, actor *models.User, req dto.CreateAnnouncementRequest) (*models.Announcement, error)
	GetByID(ctx context.Context, id int64) (*models.Announcement, error)
	List(ctx context.Context, filter dto.AnnouncementFilter) ([]*models.Announcement, int64, error)
	Update(ctx context.Context, actor *models.User, id int64, req dto.UpdateAnnouncementRequest) (*models.Announcement, error)
	Delete(ctx context.Context, actor *models.User, id int64) error
}

// AnnouncementService handles announcement operations
type AnnouncementService struct {
	announcementRepo *repositories.AnnouncementRepository
	logger           zerolog.Logger
}

// NewAnnouncementService creates a new AnnouncementService
func NewAnnouncementService(announcementRepo *repositories.AnnouncementRepository, logger zerolog.Logger) *AnnouncementService {
	return &AnnouncementService{announcementRepo: announcementRepo, logger: logger}
}

// Create publishes a notice (admin/staff)
func (s *AnnouncementService) Create(ctx context.Context, actor *models.User, req dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	if !isStaffOrAdmin(actor) {
		return nil, apperrors.ErrPermissionDenied
	}

	title := strings.TrimSpace(req.Title)
	message := strings.TrimSpace(req.Message)
	category := strings.ToLower(strings.TrimSpace(req.Category))
	if title == "" {
		return nil, apperrors.NewValidationError("title", "title is required")
	}
	if message == "" {
		return nil, apperrors.NewValidationError("message", "message is required")
	}
	if category == "" {
		return nil, apperrors.NewValidationError("category", "category is required")
	}

	a := &models.Announcement{
		Title:     title,
		Message:   message,
		Category:  category,
		NoticeURL: strings.TrimSpace(req.NoticeURL),
		CreatedBy: actor.ID,
	}
	if err := s.announcementRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("announcementId", a.ID).Str("category", category).Msg("Announcement published")
	return a, nil
}

// GetByID retrieves an announcement
func (s *AnnouncementService) GetByID(ctx context.Context, id int64) (*models.Announcement, error) {
	return s.announcementRepo.GetByID(ctx, id)
}

// List retrieves announcements, newest first
func (s *AnnouncementService) List(ctx context.Context, filter dto.AnnouncementFilter) ([]*models.Announcement, int64, error) {
	filter.Category = strings.ToLower(strings.TrimSpace(filter.Category))
	return s.announcementRepo.GetAll(ctx, filter)
}

// Update edits an announcement (admin/staff)
func (s *AnnouncementService) Update(ctx context.Context, actor *models.User, id int64, req dto.UpdateAnnouncementRequest) (*models.Announcement, error) {
	if !isStaffOrAdmin(actor) {
		return nil, apperrors.ErrPermissionDenied
	}

	a, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperrors.NewValidationError("title", "title cannot be empty")
		}
		a.Title = title
	}
	if req.Message != nil {
		message := strings.TrimSpace(*req.Message)
		if message == "" {
			return nil, apperrors.NewValidationError("message", "message cannot be empty")
		}
		a.Message = message
	}
	if req.Category != nil {
		category := strings.ToLower(strings.TrimSpace(*req.Category))
		if category == "" {
			return nil, apperrors.NewValidationError("category", "category cannot be empty")
		}
		a.Category = category
	}
	if req.NoticeURL != nil {
		a.NoticeURL = strings.TrimSpace(*req.NoticeURL)
	}

	if err := s.announcementRepo.Update(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("announcementId", id).Msg("Announcement updated")
	return a, nil
}

// Delete removes an announcement (admin/staff)
func (s *AnnouncementService) Delete(ctx context.Context, actor *models.User, id int64) error {
	if !isStaffOrAdmin(actor) {
		return apperrors.ErrPermissionDenied
	}
	if err := s.announcementRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("announcementId", id).Msg("Announcement deleted")
	return nil
}
