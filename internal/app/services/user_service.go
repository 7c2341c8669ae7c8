package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/devansh/hostelhub/internal/app/models"
	"github.com/devansh/hostelhub/internal/app/models/dto"
	"github.com/devansh/hostelhub/internal/app/repositories"
	"github.com/devansh/hostelhub/internal/pkg/apperrors"
	"github.com/devansh/hostelhub/internal/pkg/auth"
	"github.com/devansh/hostelhub/internal/pkg/validation"
)

// IUserService handles admin-driven account management
type IUserService interface {
	Register(ctx context.Context, actor *models.User, req dto.RegisterUserRequest) (*models.User, error)
	UpdateStatus(ctx context.Context, actor *models.User, userID int64, status string) error
}

// UserService handles user account operations
type UserService struct {
	userRepo *repositories.UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repositories.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{userRepo: userRepo, logger: logger}
}

// Register creates a bare user account. Students get their account
// through enrollment; this path exists for admin and staff accounts.
func (s *UserService) Register(ctx context.Context, actor *models.User, req dto.RegisterUserRequest) (*models.User, error) {
	if actor == nil || (actor.Role != models.RoleAdmin && actor.Role != models.RoleStaff) {
		return nil, apperrors.ErrPermissionDenied
	}

	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)

	if req.FullName == "" {
		return nil, apperrors.NewValidationError("full_name", "full_name is required")
	}
	if !validation.IsValidEmail(req.Email) {
		return nil, apperrors.NewValidationError("email", "email format is invalid")
	}
	if !validation.IsValidPhone(req.Phone) {
		return nil, apperrors.NewValidationError("phone", "phone must be exactly 10 digits")
	}
	if !validation.IsValidPassword(req.Password) {
		return nil, apperrors.NewValidationError("password", "password must be at least 6 characters")
	}

	role := req.Role
	if role == "" {
		role = models.RoleStaff
	}
	if !models.ValidRole(role) {
		return nil, apperrors.NewValidationError("role", "role must be one of student, admin, staff")
	}
	// Only admins may mint other admins
	if role == models.RoleAdmin && actor.Role != models.RoleAdmin {
		return nil, apperrors.ErrPermissionDenied
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

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: hashed,
		Role:     role,
		Status:   models.StatusActive,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", user.ID).Str("role", string(role)).Msg("User account created")
	return user, nil
}

// UpdateStatus activates or deactivates an account (admin only)
func (s *UserService) UpdateStatus(ctx context.Context, actor *models.User, userID int64, status string) error {
	if actor == nil || actor.Role != models.RoleAdmin {
		return apperrors.ErrPermissionDenied
	}

	st := models.UserStatus(strings.ToLower(strings.TrimSpace(status)))
	if st != models.StatusActive && st != models.StatusInactive {
		return apperrors.NewValidationError("status", "status must be active or inactive")
	}

	if err := s.userRepo.UpdateStatus(ctx, userID, st); err != nil {
		return err
	}

	s.logger.Info().Int64("userId", userID).Str("status", string(st)).Msg("User status changed")
	return nil
}
