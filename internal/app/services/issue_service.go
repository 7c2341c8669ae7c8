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

const (
	issueDescriptionMin = 10
	issueDescriptionMax = 500
)

// IIssueService handles maintenance issue tickets
type IIssueService interface {
	Create(ctx context.Context, actor *models.User, req dto.CreateIssueRequest) (*models.Issue, error)
	GetByID(ctx context.Context, actor *models.User, id int64) (*models.Issue, error)
	List(ctx context.Context, actor *models.User, filter dto.IssueFilter) ([]*models.Issue, int64, error)
	Update(ctx context.Context, actor *models.User, id int64, req dto.UpdateIssueRequest) (*models.Issue, error)
	UpdateStatus(ctx context.Context, actor *models.User, id int64, status string) (*models.Issue, error)
	Delete(ctx context.Context, actor *models.User, id int64) error
}

// IssueService handles issue ticket operations
type IssueService struct {
	issueRepo   *repositories.IssueRepository
	studentRepo *repositories.StudentRepository
	logger      zerolog.Logger
}

// NewIssueService creates a new IssueService
func NewIssueService(
	issueRepo *repositories.IssueRepository,
	studentRepo *repositories.StudentRepository,
	logger zerolog.Logger,
) *IssueService {
	return &IssueService{
		issueRepo:   issueRepo,
		studentRepo: studentRepo,
		logger:      logger,
	}
}

func validateIssueFields(title, description string, category models.IssueCategory) error {
	if strings.TrimSpace(title) == "" {
		return apperrors.NewValidationError("title", "title is required")
	}
	n := len(strings.TrimSpace(description))
	if n < issueDescriptionMin || n > issueDescriptionMax {
		return apperrors.NewValidationError("description", "description must be between 10 and 500 characters")
	}
	if !models.ValidIssueCategory(category) {
		return apperrors.NewValidationError("category", "unknown issue category")
	}
	return nil
}

// Create raises an issue ticket for the calling student
func (s *IssueService) Create(ctx context.Context, actor *models.User, req dto.CreateIssueRequest) (*models.Issue, error) {
	if actor == nil || actor.Role != models.RoleStudent {
		return nil, apperrors.ErrPermissionDenied
	}

	category := models.IssueCategory(strings.ToLower(strings.TrimSpace(req.Category)))
	if category == "" {
		category = models.CategoryOther
	}
	if err := validateIssueFields(req.Title, req.Description, category); err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	issue := &models.Issue{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Category:    category,
		RaisedBy:    student.ID,
	}
	if err := s.issueRepo.Create(ctx, issue); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("issueId", issue.ID).Int64("studentId", student.ID).
		Str("category", string(category)).Msg("Issue raised")
	return issue, nil
}

// GetByID retrieves an issue; students can only read their own
func (s *IssueService) GetByID(ctx context.Context, actor *models.User, id int64) (*models.Issue, error) {
	if actor == nil {
		return nil, apperrors.ErrPermissionDenied
	}

	issue, err := s.issueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isStaffOrAdmin(actor) {
		student, err := s.studentRepo.GetByUserID(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		if issue.RaisedBy != student.ID {
			return nil, apperrors.ErrPermissionDenied
		}
	}
	return issue, nil
}

// List retrieves issues. Admin and staff see all; students see their own.
func (s *IssueService) List(ctx context.Context, actor *models.User, filter dto.IssueFilter) ([]*models.Issue, int64, error) {
	if actor == nil {
		return nil, 0, apperrors.ErrPermissionDenied
	}

	if !isStaffOrAdmin(actor) {
		student, err := s.studentRepo.GetByUserID(ctx, actor.ID)
		if err != nil {
			return nil, 0, err
		}
		filter.RaisedBy = student.ID
	}
	return s.issueRepo.GetAll(ctx, filter)
}

// Update edits a pending issue. Only the raising student may edit, and
// only while the issue is still pending.
func (s *IssueService) Update(ctx context.Context, actor *models.User, id int64, req dto.UpdateIssueRequest) (*models.Issue, error) {
	if actor == nil || actor.Role != models.RoleStudent {
		return nil, apperrors.ErrPermissionDenied
	}

	issue, err := s.issueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if issue.RaisedBy != student.ID {
		return nil, apperrors.ErrPermissionDenied
	}
	if issue.Status != models.IssuePending {
		return nil, apperrors.NewConflictError("resolved issues cannot be edited")
	}

	if req.Title != nil {
		issue.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		issue.Description = strings.TrimSpace(*req.Description)
	}
	if req.Category != nil {
		issue.Category = models.IssueCategory(strings.ToLower(strings.TrimSpace(*req.Category)))
	}
	if err := validateIssueFields(issue.Title, issue.Description, issue.Category); err != nil {
		return nil, err
	}

	if err := s.issueRepo.Update(ctx, issue); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("issueId", id).Msg("Issue updated")
	return issue, nil
}

// UpdateStatus moves an issue between pending and resolved (admin/staff)
func (s *IssueService) UpdateStatus(ctx context.Context, actor *models.User, id int64, status string) (*models.Issue, error) {
	if !isStaffOrAdmin(actor) {
		return nil, apperrors.ErrPermissionDenied
	}

	st := models.IssueStatus(strings.ToLower(strings.TrimSpace(status)))
	if st != models.IssuePending && st != models.IssueResolved {
		return nil, apperrors.NewValidationError("status", "status must be pending or resolved")
	}

	issue, err := s.issueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	issue.Status = st
	if err := s.issueRepo.Update(ctx, issue); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("issueId", id).Str("status", string(st)).Msg("Issue status changed")
	return issue, nil
}

// Delete removes an issue. The raising student may delete it while
// pending; admins may delete anything.
func (s *IssueService) Delete(ctx context.Context, actor *models.User, id int64) error {
	if actor == nil {
		return apperrors.ErrPermissionDenied
	}

	issue, err := s.issueRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if actor.Role != models.RoleAdmin {
		if actor.Role != models.RoleStudent {
			return apperrors.ErrPermissionDenied
		}
		student, err := s.studentRepo.GetByUserID(ctx, actor.ID)
		if err != nil {
			return err
		}
		if issue.RaisedBy != student.ID {
			return apperrors.ErrPermissionDenied
		}
		if issue.Status != models.IssuePending {
			return apperrors.NewConflictError("resolved issues cannot be deleted")
		}
	}

	if err := s.issueRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("issueId", id).Int64("deletedBy", actor.ID).Msg("Issue deleted")
	return nil
}
