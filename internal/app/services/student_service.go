package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/devansh/hostelhub/internal/app/models"
	"github.com/devansh/hostelhub/internal/app/models/dto"
	"github.com/devansh/hostelhub/internal/app/repositories"
	"github.com/devansh/hostelhub/internal/pkg/apperrors"
	"github.com/devansh/hostelhub/internal/pkg/validation"
)

// IStudentService handles the student registry
type IStudentService interface {
	GetProfile(ctx context.Context, actor *models.User, userID int64) (*models.Student, error)
	List(ctx context.Context, actor *models.User, filter dto.StudentFilter) ([]*models.Student, int64, error)
	Update(ctx context.Context, actor *models.User, userID int64, req dto.UpdateStudentRequest) (*models.Student, error)
	Delete(ctx context.Context, actor *models.User, userID int64) error
}

// StudentService handles student profile operations
type StudentService struct {
	tx              TxManager
	studentRepo     repositories.IStudentRepository
	roomRepo        repositories.IRoomRepository
	defaultCapacity int
	defaultRent     int64
	logger          zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	tx TxManager,
	studentRepo repositories.IStudentRepository,
	roomRepo repositories.IRoomRepository,
	defaultCapacity int,
	defaultRent int64,
	logger zerolog.Logger,
) *StudentService {
	return &StudentService{
		tx:              tx,
		studentRepo:     studentRepo,
		roomRepo:        roomRepo,
		defaultCapacity: defaultCapacity,
		defaultRent:     defaultRent,
		logger:          logger,
	}
}

func isStaffOrAdmin(u *models.User) bool {
	return u != nil && (u.Role == models.RoleAdmin || u.Role == models.RoleStaff)
}

// GetProfile returns a student profile. Students can only read their
// own; admin and staff can address any user.
func (s *StudentService) GetProfile(ctx context.Context, actor *models.User, userID int64) (*models.Student, error) {
	if actor == nil {
		return nil, apperrors.ErrPermissionDenied
	}
	if !isStaffOrAdmin(actor) && actor.ID != userID {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.studentRepo.GetByUserID(ctx, userID)
}

// List returns a page of the student registry (admin/staff only)
func (s *StudentService) List(ctx context.Context, actor *models.User, filter dto.StudentFilter) ([]*models.Student, int64, error) {
	if !isStaffOrAdmin(actor) {
		return nil, 0, apperrors.ErrPermissionDenied
	}
	filter.Block = strings.ToLower(strings.TrimSpace(filter.Block))
	return s.studentRepo.GetAll(ctx, filter)
}

// Update edits a student profile. Students may change their own address
// and guardian name; admin and staff may change everything including the
// room assignment. On a room change the target slot is allocated and the
// old one released inside one transaction, and the persisted block and
// room number are taken from the allocated room.
func (s *StudentService) Update(ctx context.Context, actor *models.User, userID int64, req dto.UpdateStudentRequest) (*models.Student, error) {
	if actor == nil {
		return nil, apperrors.ErrPermissionDenied
	}

	ownEdit := actor.ID == userID && actor.Role == models.RoleStudent
	if !ownEdit && !isStaffOrAdmin(actor) {
		return nil, apperrors.ErrPermissionDenied
	}
	if ownEdit && (req.GuardianContact != nil || req.Branch != nil || req.RoomNumber != nil || req.Block != nil) {
		return nil, apperrors.NewForbiddenError("students may only change their address and guardian name")
	}

	if !req.HasChanges() {
		return nil, apperrors.NewValidationError("body", "no fields to update")
	}
	if req.GuardianContact != nil && !validation.IsValidPhone(*req.GuardianContact) {
		return nil, apperrors.NewValidationError("guardian_contact", "guardian_contact must be exactly 10 digits")
	}

	current, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Snapshot before any mutation
	snapshot := *current
	snapshot.User = nil
	oldData, err := json.Marshal(snapshot)
	if err != nil {
		return nil, err
	}

	updated := snapshot
	if req.PermanentAddress != nil {
		updated.PermanentAddress = strings.TrimSpace(*req.PermanentAddress)
	}
	if req.GuardianName != nil {
		updated.GuardianName = strings.TrimSpace(*req.GuardianName)
	}
	if req.GuardianContact != nil {
		updated.GuardianContact = strings.TrimSpace(*req.GuardianContact)
	}
	if req.Branch != nil {
		updated.Branch = strings.TrimSpace(*req.Branch)
	}

	targetBlock := current.BlockCode
	if req.Block != nil {
		targetBlock = strings.ToLower(strings.TrimSpace(*req.Block))
	}
	targetRoom := current.RoomNumber
	if req.RoomNumber != nil {
		targetRoom = strings.TrimSpace(*req.RoomNumber)
	}
	roomChanged := targetBlock != current.BlockCode || targetRoom != current.RoomNumber
	if roomChanged && (targetBlock == "" || targetRoom == "") {
		return nil, apperrors.NewValidationError("room_number", "block and room_number are required to move rooms")
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		sTx := s.studentRepo.WithTx(tx)

		if roomChanged {
			rTx := s.roomRepo.WithTx(tx)
			room, err := rTx.Allocate(ctx, targetBlock, targetRoom, s.defaultCapacity, s.defaultRent)
			if err != nil {
				return err
			}
			if err := rTx.Release(ctx, current.RoomID); err != nil {
				return err
			}
			updated.RoomID = room.ID
			updated.BlockCode = room.BlockCode
			updated.RoomNumber = room.RoomNumber
		}

		if err := sTx.UpdateProfile(ctx, &updated); err != nil {
			return err
		}
		return sTx.InsertHistory(ctx, &models.StudentHistory{
			StudentID: current.ID,
			UpdatedBy: actor.ID,
			OldData:   oldData,
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", updated.ID).Int64("updatedBy", actor.ID).
		Bool("roomChanged", roomChanged).Msg("Student profile updated")

	updated.User = current.User
	return &updated, nil
}

// Delete removes a student profile and releases its room slot (admin only)
func (s *StudentService) Delete(ctx context.Context, actor *models.User, userID int64) error {
	if actor == nil || actor.Role != models.RoleAdmin {
		return apperrors.ErrPermissionDenied
	}

	var removed *models.Student
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		student, err := s.studentRepo.WithTx(tx).DeleteByUserID(ctx, userID)
		if err != nil {
			return err
		}
		removed = student
		return s.roomRepo.WithTx(tx).Release(ctx, student.RoomID)
	})
	if err != nil {
		return err
	}

	s.logger.Info().Int64("studentId", removed.ID).Int64("userId", userID).
		Str("block", removed.BlockCode).Str("room", removed.RoomNumber).
		Msg("Student removed, room slot released")
	return nil
}
