package services

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/devansh/hostelhub/internal/app/models"
	"github.com/devansh/hostelhub/internal/app/models/dto"
	"github.com/devansh/hostelhub/internal/app/repositories"
	"github.com/devansh/hostelhub/internal/pkg/apperrors"
	"github.com/devansh/hostelhub/internal/pkg/auth"
	"github.com/devansh/hostelhub/internal/pkg/validation"
)

// IEnrollmentService admits a student in one atomic transaction
type IEnrollmentService interface {
	Enroll(ctx context.Context, actor *models.User, req dto.EnrollStudentRequest) (*dto.EnrollStudentResponse, error)
}

// EnrollmentService creates the user account, allocates a room slot and
// creates the student profile as a single unit of work. If any step
// fails, nothing is persisted.
type EnrollmentService struct {
	tx              TxManager
	userRepo        repositories.IUserRepository
	studentRepo     repositories.IStudentRepository
	roomRepo        repositories.IRoomRepository
	defaultCapacity int
	defaultRent     int64
	logger          zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService. The capacity and
// rent defaults apply to rooms created on the fly during enrollment.
func NewEnrollmentService(
	tx TxManager,
	userRepo repositories.IUserRepository,
	studentRepo repositories.IStudentRepository,
	roomRepo repositories.IRoomRepository,
	defaultCapacity int,
	defaultRent int64,
	logger zerolog.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		tx:              tx,
		userRepo:        userRepo,
		studentRepo:     studentRepo,
		roomRepo:        roomRepo,
		defaultCapacity: defaultCapacity,
		defaultRent:     defaultRent,
		logger:          logger,
	}
}

// normalizeEnrollRequest trims the inputs and lowercases email and block
func normalizeEnrollRequest(req *dto.EnrollStudentRequest) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Role = strings.ToLower(strings.TrimSpace(req.Role))
	req.Phone = strings.TrimSpace(req.Phone)
	req.SID = strings.TrimSpace(req.SID)
	req.PermanentAddress = strings.TrimSpace(req.PermanentAddress)
	req.GuardianName = strings.TrimSpace(req.GuardianName)
	req.GuardianContact = strings.TrimSpace(req.GuardianContact)
	req.Branch = strings.TrimSpace(req.Branch)
	req.Block = strings.ToLower(strings.TrimSpace(req.Block))
	req.RoomNumber = strings.TrimSpace(req.RoomNumber)
}

// validateEnrollRequest applies the enrollment checks in a fixed order so
// the first failing field is the one reported.
func validateEnrollRequest(req dto.EnrollStudentRequest) error {
	required := []struct {
		field string
		value string
	}{
		{"full_name", req.FullName},
		{"email", req.Email},
		{"phone", req.Phone},
		{"password", req.Password},
		{"sid", req.SID},
		{"permanent_address", req.PermanentAddress},
		{"guardian_name", req.GuardianName},
		{"guardian_contact", req.GuardianContact},
		{"branch", req.Branch},
		{"block", req.Block},
		{"room_number", req.RoomNumber},
	}
	for _, f := range required {
		if f.value == "" {
			return apperrors.NewValidationError(f.field, f.field+" is required")
		}
	}

	if !validation.IsValidSID(req.SID) {
		return apperrors.NewValidationError("sid", "sid must be exactly 8 digits")
	}
	if !validation.IsValidPhone(req.GuardianContact) {
		return apperrors.NewValidationError("guardian_contact", "guardian_contact must be exactly 10 digits")
	}
	if !validation.IsValidEmail(req.Email) {
		return apperrors.NewValidationError("email", "email format is invalid")
	}
	if !validation.IsValidPhone(req.Phone) {
		return apperrors.NewValidationError("phone", "phone must be exactly 10 digits")
	}
	if !validation.IsValidPassword(req.Password) {
		return apperrors.NewValidationError("password", "password must be at least 6 characters")
	}
	// Enrollment always produces a student account; any other role is a
	// caller mistake, not something to silently override.
	if req.Role != "" && req.Role != string(models.RoleStudent) {
		return apperrors.NewValidationError("role", "role must be student")
	}
	return nil
}

// Enroll admits a new student. Only admins may call it. The user account,
// the room slot and the student profile are created inside one database
// transaction; the room's occupancy is raised with a guarded update so
// two concurrent enrollments can never oversubscribe a room.
func (s *EnrollmentService) Enroll(ctx context.Context, actor *models.User, req dto.EnrollStudentRequest) (*dto.EnrollStudentResponse, error) {
	if actor == nil || actor.Role != models.RoleAdmin {
		return nil, apperrors.ErrPermissionDenied
	}

	normalizeEnrollRequest(&req)
	if err := validateEnrollRequest(req); err != nil {
		return nil, err
	}

	emailTaken, phoneTaken, err := s.userRepo.EmailOrPhoneExists(ctx, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return nil, apperrors.ErrEmailAlreadyExists
	}
	if phoneTaken {
		return nil, apperrors.ErrPhoneAlreadyExists
	}

	sidTaken, err := s.studentRepo.SIDExists(ctx, req.SID)
	if err != nil {
		return nil, err
	}
	if sidTaken {
		return nil, apperrors.ErrSIDAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: hashed,
		Role:     models.RoleStudent,
		Status:   models.StatusActive,
	}
	student := &models.Student{
		SID:              req.SID,
		PermanentAddress: req.PermanentAddress,
		GuardianName:     req.GuardianName,
		GuardianContact:  req.GuardianContact,
		Branch:           req.Branch,
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.userRepo.WithTx(tx).Create(ctx, user); err != nil {
			return err
		}

		room, err := s.roomRepo.WithTx(tx).Allocate(ctx, req.Block, req.RoomNumber,
			s.defaultCapacity, s.defaultRent)
		if err != nil {
			return err
		}

		student.UserID = user.ID
		student.RoomID = room.ID
		student.BlockCode = room.BlockCode
		student.RoomNumber = room.RoomNumber
		return s.studentRepo.WithTx(tx).Create(ctx, student)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("userId", user.ID).
		Str("sid", student.SID).
		Str("block", student.BlockCode).
		Str("room", student.RoomNumber).
		Msg("Student enrolled")

	return &dto.EnrollStudentResponse{User: user, Student: student}, nil
}
