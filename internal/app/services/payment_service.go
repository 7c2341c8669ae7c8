package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devansh/hostelhub/internal/app/models"
	"github.com/devansh/hostelhub/internal/app/models/dto"
	"github.com/devansh/hostelhub/internal/app/repositories"
	"github.com/devansh/hostelhub/internal/pkg/apperrors"
)

// IPaymentService handles the payment ledger
type IPaymentService interface {
	Create(ctx context.Context, actor *models.User, req dto.CreatePaymentRequest) (*models.Payment, error)
	GetByID(ctx context.Context, actor *models.User, id int64) (*models.Payment, error)
	List(ctx context.Context, actor *models.User, filter dto.PaymentFilter) ([]*models.Payment, int64, error)
	Stats(ctx context.Context, actor *models.User, filter dto.PaymentFilter) (*dto.PaymentStats, error)
	Update(ctx context.Context, actor *models.User, id int64, req dto.UpdatePaymentRequest) (*models.Payment, error)
	Delete(ctx context.Context, actor *models.User, id int64) error
}

// PaymentService handles payment ledger operations
type PaymentService struct {
	paymentRepo *repositories.PaymentRepository
	userRepo    *repositories.UserRepository
	logger      zerolog.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	paymentRepo *repositories.PaymentRepository,
	userRepo *repositories.UserRepository,
	logger zerolog.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func validPaymentStatus(status string) (models.PaymentStatus, bool) {
	st := models.PaymentStatus(strings.ToLower(strings.TrimSpace(status)))
	return st, st == models.PaymentSuccess || st == models.PaymentFailed
}

func validateDateFilter(filter dto.PaymentFilter) error {
	for _, d := range []struct {
		field string
		value string
	}{{"start_date", filter.StartDate}, {"end_date", filter.EndDate}} {
		if d.value == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d.value); err != nil {
			return apperrors.NewValidationError(d.field, d.field+" must be YYYY-MM-DD")
		}
	}
	return nil
}

// Create records a payment (admin/staff). A missing transaction id is
// filled with a generated one.
func (s *PaymentService) Create(ctx context.Context, actor *models.User, req dto.CreatePaymentRequest) (*models.Payment, error) {
	if !isStaffOrAdmin(actor) {
		return nil, apperrors.ErrPermissionDenied
	}

	if req.Amount <= 0 {
		return nil, apperrors.NewValidationError("amount", "amount must be positive")
	}
	status, ok := validPaymentStatus(req.Status)
	if !ok {
		return nil, apperrors.NewValidationError("status", "status must be success or failed")
	}

	// The ledger entry must reference an existing user
	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	txID := strings.TrimSpace(req.TransactionID)
	if txID == "" {
		txID = uuid.New().String()
	}

	payment := &models.Payment{
		UserID:        req.UserID,
		Amount:        req.Amount,
		Status:        status,
		TransactionID: txID,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("paymentId", payment.ID).Int64("userId", req.UserID).
		Int64("amount", req.Amount).Str("status", string(status)).Msg("Payment recorded")
	return payment, nil
}

// GetByID retrieves a payment; non-staff callers only see their own
func (s *PaymentService) GetByID(ctx context.Context, actor *models.User, id int64) (*models.Payment, error) {
	if actor == nil {
		return nil, apperrors.ErrPermissionDenied
	}

	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isStaffOrAdmin(actor) && payment.UserID != actor.ID {
		return nil, apperrors.ErrPermissionDenied
	}
	return payment, nil
}

// List retrieves payments. Admin and staff see all; other callers are
// restricted to their own entries.
func (s *PaymentService) List(ctx context.Context, actor *models.User, filter dto.PaymentFilter) ([]*models.Payment, int64, error) {
	if actor == nil {
		return nil, 0, apperrors.ErrPermissionDenied
	}
	if err := validateDateFilter(filter); err != nil {
		return nil, 0, err
	}
	if !isStaffOrAdmin(actor) {
		filter.UserID = actor.ID
	}
	return s.paymentRepo.GetAll(ctx, filter)
}

// Stats summarizes the ledger over an optional date range (admin/staff)
func (s *PaymentService) Stats(ctx context.Context, actor *models.User, filter dto.PaymentFilter) (*dto.PaymentStats, error) {
	if !isStaffOrAdmin(actor) {
		return nil, apperrors.ErrPermissionDenied
	}
	if err := validateDateFilter(filter); err != nil {
		return nil, err
	}
	return s.paymentRepo.GetStats(ctx, filter)
}

// Update edits a payment (admin/staff)
func (s *PaymentService) Update(ctx context.Context, actor *models.User, id int64, req dto.UpdatePaymentRequest) (*models.Payment, error) {
	if !isStaffOrAdmin(actor) {
		return nil, apperrors.ErrPermissionDenied
	}

	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, apperrors.NewValidationError("amount", "amount must be positive")
		}
		payment.Amount = *req.Amount
	}
	if req.Status != nil {
		status, ok := validPaymentStatus(*req.Status)
		if !ok {
			return nil, apperrors.NewValidationError("status", "status must be success or failed")
		}
		payment.Status = status
	}
	if req.TransactionID != nil {
		txID := strings.TrimSpace(*req.TransactionID)
		if txID == "" {
			return nil, apperrors.NewValidationError("transaction_id", "transaction_id cannot be empty")
		}
		payment.TransactionID = txID
	}

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("paymentId", id).Msg("Payment updated")
	return payment, nil
}

// Delete removes a payment (admin only)
func (s *PaymentService) Delete(ctx context.Context, actor *models.User, id int64) error {
	if actor == nil || actor.Role != models.RoleAdmin {
		return apperrors.ErrPermissionDenied
	}
	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("paymentId", id).Msg("Payment deleted")
	return nil
}
