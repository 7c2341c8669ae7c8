package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/devansh/hostelhub/internal/app/models"
	"github.com/devansh/hostelhub/internal/app/models/dto"
	"github.com/devansh/hostelhub/internal/app/repositories"
	"github.com/devansh/hostelhub/internal/pkg/apperrors"
)

const leaveDateLayout = "2006-01-02"

// ILeaveRequestService handles leave applications and decisions
type ILeaveRequestService interface {
	Create(ctx context.Context, actor *models.User, req dto.CreateLeaveRequest) (*models.LeaveRequest, error)
	GetByID(ctx context.Context, actor *models.User, id int64) (*models.LeaveRequest, error)
	List(ctx context.Context, actor *models.User, filter dto.LeaveFilter) ([]*models.LeaveRequest, int64, error)
	UpdateStatus(ctx context.Context, actor *models.User, id int64, status string) (*models.LeaveRequest, error)
	Delete(ctx context.Context, actor *models.User, id int64) error
}

// LeaveRequestService handles leave request operations
type LeaveRequestService struct {
	leaveRepo   *repositories.LeaveRequestRepository
	studentRepo *repositories.StudentRepository
	logger      zerolog.Logger
}

// NewLeaveRequestService creates a new LeaveRequestService
func NewLeaveRequestService(
	leaveRepo *repositories.LeaveRequestRepository,
	studentRepo *repositories.StudentRepository,
	logger zerolog.Logger,
) *LeaveRequestService {
	return &LeaveRequestService{
		leaveRepo:   leaveRepo,
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// Create files a leave application for the calling student. Requests
// overlapping a pending or approved one are rejected.
func (s *LeaveRequestService) Create(ctx context.Context, actor *models.User, req dto.CreateLeaveRequest) (*models.LeaveRequest, error) {
	if actor == nil || actor.Role != models.RoleStudent {
		return nil, apperrors.ErrPermissionDenied
	}

	from, err := time.Parse(leaveDateLayout, req.FromDate)
	if err != nil {
		return nil, apperrors.NewValidationError("from_date", "from_date must be YYYY-MM-DD")
	}
	to, err := time.Parse(leaveDateLayout, req.ToDate)
	if err != nil {
		return nil, apperrors.NewValidationError("to_date", "to_date must be YYYY-MM-DD")
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if from.Before(today) {
		return nil, apperrors.NewValidationError("from_date", "from_date cannot be in the past")
	}
	if to.Before(from) {
		return nil, apperrors.NewValidationError("to_date", "to_date cannot be before from_date")
	}
	if strings.TrimSpace(req.Destination) == "" {
		return nil, apperrors.NewValidationError("destination", "destination is required")
	}
	if strings.TrimSpace(req.Reason) == "" {
		return nil, apperrors.NewValidationError("reason", "reason is required")
	}

	student, err := s.studentRepo.GetByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	leave := &models.LeaveRequest{
		StudentID:   student.ID,
		FromDate:    from,
		ToDate:      to,
		Destination: strings.TrimSpace(req.Destination),
		Reason:      strings.TrimSpace(req.Reason),
	}

	overlaps, err := s.leaveRepo.HasOverlapping(ctx, student.ID, leave)
	if err != nil {
		return nil, err
	}
	if overlaps {
		return nil, apperrors.ErrLeaveOverlap
	}

	if err := s.leaveRepo.Create(ctx, leave); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", student.ID).Int64("leaveId", leave.ID).
		Str("from", req.FromDate).Str("to", req.ToDate).Msg("Leave request filed")
	return leave, nil
}

// GetByID retrieves a leave request; students can only read their own
func (s *LeaveRequestService) GetByID(ctx context.Context, actor *models.User, id int64) (*models.LeaveRequest, error) {
	if actor == nil {
		return nil, apperrors.ErrPermissionDenied
	}

	leave, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isStaffOrAdmin(actor) {
		student, err := s.studentRepo.GetByUserID(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		if leave.StudentID != student.ID {
			return nil, apperrors.ErrPermissionDenied
		}
	}
	return leave, nil
}

// List retrieves leave requests. Admin and staff see all; students are
// restricted to their own.
func (s *LeaveRequestService) List(ctx context.Context, actor *models.User, filter dto.LeaveFilter) ([]*models.LeaveRequest, int64, error) {
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
	return s.leaveRepo.GetAll(ctx, filter)
}

// UpdateStatus approves or rejects a pending request (admin/staff)
func (s *LeaveRequestService) UpdateStatus(ctx context.Context, actor *models.User, id int64, status string) (*models.LeaveRequest, error) {
	if !isStaffOrAdmin(actor) {
		return nil, apperrors.ErrPermissionDenied
	}

	st := models.LeaveStatus(strings.ToLower(strings.TrimSpace(status)))
	if st != models.LeaveApproved && st != models.LeaveRejected {
		return nil, apperrors.NewValidationError("status", "status must be approved or rejected")
	}

	current, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != models.LeavePending {
		return nil, apperrors.NewConflictError("leave request has already been decided")
	}

	leave, err := s.leaveRepo.UpdateStatus(ctx, id, st, actor.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("leaveId", id).Str("status", string(st)).Int64("decidedBy", actor.ID).
		Msg("Leave request decided")
	return leave, nil
}

// Delete withdraws a leave request. Students may withdraw their own
// pending requests; admins may delete anything.
func (s *LeaveRequestService) Delete(ctx context.Context, actor *models.User, id int64) error {
	if actor == nil {
		return apperrors.ErrPermissionDenied
	}

	leave, err := s.leaveRepo.GetByID(ctx, id)
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
		if leave.StudentID != student.ID {
			return apperrors.ErrPermissionDenied
		}
		if leave.Status != models.LeavePending {
			return apperrors.NewConflictError("only pending requests can be withdrawn")
		}
	}

	if err := s.leaveRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("leaveId", id).Int64("deletedBy", actor.ID).Msg("Leave request deleted")
	return nil
}
