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

// IDisciplinaryService handles disciplinary cases
type IDisciplinaryService interface {
	Create(ctx context.Context, actor *models.User, req dto.CreateCaseRequest) (*models.DisciplinaryCase, error)
	GetByID(ctx context.Context, actor *models.User, id int64) (*models.DisciplinaryCase, error)
	List(ctx context.Context, actor *models.User, filter dto.CaseFilter) ([]*models.DisciplinaryCase, int64, error)
	Update(ctx context.Context, actor *models.User, id int64, req dto.UpdateCaseRequest) (*models.DisciplinaryCase, error)
	Delete(ctx context.Context, actor *models.User, id int64) error
}

// DisciplinaryService handles disciplinary case operations
type DisciplinaryService struct {
	caseRepo    *repositories.DisciplinaryRepository
	studentRepo *repositories.StudentRepository
	logger      zerolog.Logger
}

// NewDisciplinaryService creates a new DisciplinaryService
func NewDisciplinaryService(
	caseRepo *repositories.DisciplinaryRepository,
	studentRepo *repositories.StudentRepository,
	logger zerolog.Logger,
) *DisciplinaryService {
	return &DisciplinaryService{
		caseRepo:    caseRepo,
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// Create opens a case against a student (admin/staff)
func (s *DisciplinaryService) Create(ctx context.Context, actor *models.User, req dto.CreateCaseRequest) (*models.DisciplinaryCase, error) {
	if !isStaffOrAdmin(actor) {
		return nil, apperrors.ErrPermissionDenied
	}

	if strings.TrimSpace(req.Reason) == "" {
		return nil, apperrors.NewValidationError("reason", "reason is required")
	}
	if req.FineAmount < 0 {
		return nil, apperrors.NewValidationError("fine_amount", "fine_amount cannot be negative")
	}

	// The case must reference an existing student
	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	dcase := &models.DisciplinaryCase{
		StudentID:  req.StudentID,
		Reason:     strings.TrimSpace(req.Reason),
		FineAmount: req.FineAmount,
		DecidedBy:  actor.ID,
	}
	if err := s.caseRepo.Create(ctx, dcase); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("caseId", dcase.ID).Int64("studentId", req.StudentID).
		Int64("fine", req.FineAmount).Msg("Disciplinary case opened")
	return dcase, nil
}

// GetByID retrieves a case; students can only read their own
func (s *DisciplinaryService) GetByID(ctx context.Context, actor *models.User, id int64) (*models.DisciplinaryCase, error) {
	if actor == nil {
		return nil, apperrors.ErrPermissionDenied
	}

	dcase, err := s.caseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isStaffOrAdmin(actor) {
		student, err := s.studentRepo.GetByUserID(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		if dcase.StudentID != student.ID {
			return nil, apperrors.ErrPermissionDenied
		}
	}
	return dcase, nil
}

// List retrieves cases. Admin and staff see all; students see their own.
func (s *DisciplinaryService) List(ctx context.Context, actor *models.User, filter dto.CaseFilter) ([]*models.DisciplinaryCase, int64, error) {
	if actor == nil {
		return nil, 0, apperrors.ErrPermissionDenied
	}

	if !isStaffOrAdmin(actor) {
		student, err := s.studentRepo.GetByUserID(ctx, actor.ID)
		if err != nil {
			return nil, 0, err
		}
		filter.StudentID = student.ID
	}
	return s.caseRepo.GetAll(ctx, filter)
}

// Update edits a case's reason, fine or status (admin/staff)
func (s *DisciplinaryService) Update(ctx context.Context, actor *models.User, id int64, req dto.UpdateCaseRequest) (*models.DisciplinaryCase, error) {
	if !isStaffOrAdmin(actor) {
		return nil, apperrors.ErrPermissionDenied
	}

	dcase, err := s.caseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Reason != nil {
		reason := strings.TrimSpace(*req.Reason)
		if reason == "" {
			return nil, apperrors.NewValidationError("reason", "reason cannot be empty")
		}
		dcase.Reason = reason
	}
	if req.FineAmount != nil {
		if *req.FineAmount < 0 {
			return nil, apperrors.NewValidationError("fine_amount", "fine_amount cannot be negative")
		}
		dcase.FineAmount = *req.FineAmount
	}
	if req.Status != nil {
		st := models.CaseStatus(strings.ToLower(strings.TrimSpace(*req.Status)))
		if st != models.CaseOpen && st != models.CaseClosed {
			return nil, apperrors.NewValidationError("status", "status must be open or closed")
		}
		dcase.Status = st
	}

	if err := s.caseRepo.Update(ctx, dcase); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("caseId", id).Str("status", string(dcase.Status)).Msg("Disciplinary case updated")
	return dcase, nil
}

// Delete removes a case (admin only)
func (s *DisciplinaryService) Delete(ctx context.Context, actor *models.User, id int64) error {
	if actor == nil || actor.Role != models.RoleAdmin {
		return apperrors.ErrPermissionDenied
	}
	if err := s.caseRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("caseId", id).Msg("Disciplinary case deleted")
	return nil
}
