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

// IIssueCommentService handles the comment thread under an issue
type IIssueCommentService interface {
	Create(ctx context.Context, actor *models.User, issueID int64, req dto.CreateCommentRequest) (*models.IssueComment, error)
	ListByIssue(ctx context.Context, actor *models.User, issueID int64) ([]*models.IssueComment, error)
	Update(ctx context.Context, actor *models.User, id int64, req dto.UpdateCommentRequest) (*models.IssueComment, error)
	Delete(ctx context.Context, actor *models.User, id int64) error
}

// IssueCommentService handles issue comment operations
type IssueCommentService struct {
	commentRepo *repositories.IssueCommentRepository
	issueRepo   *repositories.IssueRepository
	studentRepo *repositories.StudentRepository
	logger      zerolog.Logger
}

// NewIssueCommentService creates a new IssueCommentService
func NewIssueCommentService(
	commentRepo *repositories.IssueCommentRepository,
	issueRepo *repositories.IssueRepository,
	studentRepo *repositories.StudentRepository,
	logger zerolog.Logger,
) *IssueCommentService {
	return &IssueCommentService{
		commentRepo: commentRepo,
		issueRepo:   issueRepo,
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// canAccessIssue reports whether the actor may participate in the
// issue's thread: admin and staff always, the raising student otherwise.
func (s *IssueCommentService) canAccessIssue(ctx context.Context, actor *models.User, issue *models.Issue) (bool, error) {
	if isStaffOrAdmin(actor) {
		return true, nil
	}
	if actor.Role != models.RoleStudent {
		return false, nil
	}
	student, err := s.studentRepo.GetByUserID(ctx, actor.ID)
	if err != nil {
		return false, err
	}
	return issue.RaisedBy == student.ID, nil
}

// Create adds a comment to an issue's thread
func (s *IssueCommentService) Create(ctx context.Context, actor *models.User, issueID int64, req dto.CreateCommentRequest) (*models.IssueComment, error) {
	if actor == nil {
		return nil, apperrors.ErrPermissionDenied
	}

	text := strings.TrimSpace(req.CommentText)
	if text == "" {
		return nil, apperrors.NewValidationError("comment_text", "comment_text is required")
	}

	issue, err := s.issueRepo.GetByID(ctx, issueID)
	if err != nil {
		return nil, err
	}

	ok, err := s.canAccessIssue(ctx, actor, issue)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrPermissionDenied
	}

	comment := &models.IssueComment{
		IssueID:     issueID,
		CommentedBy: actor.ID,
		CommentText: text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("issueId", issueID).Int64("commentId", comment.ID).Msg("Comment added")
	return comment, nil
}

// ListByIssue returns an issue's thread in chronological order
func (s *IssueCommentService) ListByIssue(ctx context.Context, actor *models.User, issueID int64) ([]*models.IssueComment, error) {
	if actor == nil {
		return nil, apperrors.ErrPermissionDenied
	}

	issue, err := s.issueRepo.GetByID(ctx, issueID)
	if err != nil {
		return nil, err
	}

	ok, err := s.canAccessIssue(ctx, actor, issue)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrPermissionDenied
	}

	return s.commentRepo.GetByIssue(ctx, issueID)
}

// Update edits a comment; only its author may do so
func (s *IssueCommentService) Update(ctx context.Context, actor *models.User, id int64, req dto.UpdateCommentRequest) (*models.IssueComment, error) {
	if actor == nil {
		return nil, apperrors.ErrPermissionDenied
	}

	text := strings.TrimSpace(req.CommentText)
	if text == "" {
		return nil, apperrors.NewValidationError("comment_text", "comment_text is required")
	}

	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.CommentedBy != actor.ID {
		return nil, apperrors.ErrPermissionDenied
	}

	updated, err := s.commentRepo.UpdateText(ctx, id, text)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("commentId", id).Msg("Comment edited")
	return updated, nil
}

// Delete removes a comment; its author or an admin may do so
func (s *IssueCommentService) Delete(ctx context.Context, actor *models.User, id int64) error {
	if actor == nil {
		return apperrors.ErrPermissionDenied
	}

	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment.CommentedBy != actor.ID && actor.Role != models.RoleAdmin {
		return apperrors.ErrPermissionDenied
	}

	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("commentId", id).Int64("deletedBy", actor.ID).Msg("Comment deleted")
	return nil
}
