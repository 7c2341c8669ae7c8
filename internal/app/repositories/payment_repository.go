package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devansh/hostelhub/internal/app/models"
	"github.com/devansh/hostelhub/internal/app/models/dto"
	"github.com/devansh/hostelhub/internal/db"
	"github.com/devansh/hostelhub/internal/pkg/apperrors"
	"github.com/devansh/hostelhub/internal/pkg/dberrors"
	"github.com/devansh/hostelhub/internal/pkg/helpers"
)

const paymentColumns = `p.id, p.user_id, p.amount, p.status, p.transaction_id, p.created_at, p.updated_at`

// PaymentRepository handles database operations for the payment ledger
type PaymentRepository struct {
	q db.Querier
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{q: pool}
}

func scanPayment(row pgx.Row) (*models.Payment, error) {
	p := &models.Payment{}
	err := row.Scan(&p.ID, &p.UserID, &p.Amount, &p.Status, &p.TransactionID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a new ledger entry
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO payments (user_id, amount, status, transaction_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		payment.UserID, payment.Amount, payment.Status, payment.TransactionID).
		Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "payments_transaction_id_key") {
			return apperrors.NewConflictError("transaction id already recorded")
		}
		return fmt.Errorf("error creating payment: %w", err)
	}
	return nil
}

// GetByID retrieves a payment by ID
func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*models.Payment, error) {
	payment, err := scanPayment(r.q.QueryRow(ctx, `
		SELECT `+paymentColumns+` FROM payments p WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("error retrieving payment: %w", err)
	}
	return payment, nil
}

func paymentWhere(filter dto.PaymentFilter) (string, []any) {
	where := ` FROM payments p JOIN users u ON u.id = p.user_id WHERE 1=1`
	args := []any{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND p.status = $%d", len(args))
	}
	if filter.UserID > 0 {
		args = append(args, filter.UserID)
		where += fmt.Sprintf(" AND p.user_id = $%d", len(args))
	}
	if filter.StartDate != "" {
		args = append(args, filter.StartDate)
		where += fmt.Sprintf(" AND p.created_at >= $%d::date", len(args))
	}
	if filter.EndDate != "" {
		args = append(args, filter.EndDate)
		where += fmt.Sprintf(" AND p.created_at < $%d::date + INTERVAL '1 day'", len(args))
	}
	return where, args
}

// GetAll retrieves payments matching the filter, newest first, with the
// paying user joined in, plus the total count.
func (r *PaymentRepository) GetAll(ctx context.Context, filter dto.PaymentFilter) ([]*models.Payment, int64, error) {
	where, args := paymentWhere(filter)

	var total int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*)`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting payments: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Limit)
	args = append(args, limit, offset)

	query := `SELECT ` + paymentColumns + `,
		u.id, u.full_name, u.email, u.phone, u.role, u.status, u.created_at, u.updated_at` +
		where + fmt.Sprintf(" ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p := &models.Payment{}
		u := &models.User{}
		err := rows.Scan(
			&p.ID, &p.UserID, &p.Amount, &p.Status, &p.TransactionID, &p.CreatedAt, &p.UpdatedAt,
			&u.ID, &u.FullName, &u.Email, &u.Phone, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
		if err != nil {
			return nil, 0, err
		}
		p.User = u
		payments = append(payments, p)
	}
	return payments, total, rows.Err()
}

// GetStats summarizes the ledger over the filter's date range
func (r *PaymentRepository) GetStats(ctx context.Context, filter dto.PaymentFilter) (*dto.PaymentStats, error) {
	where, args := paymentWhere(filter)

	stats := &dto.PaymentStats{}
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE p.status = 'success'),
			COUNT(*) FILTER (WHERE p.status = 'failed'),
			COALESCE(SUM(p.amount) FILTER (WHERE p.status = 'success'), 0)`+where, args...).
		Scan(&stats.TotalPayments, &stats.SuccessfulPayments, &stats.FailedPayments, &stats.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("error computing payment stats: %w", err)
	}
	return stats, nil
}

// Update rewrites the mutable payment fields
func (r *PaymentRepository) Update(ctx context.Context, payment *models.Payment) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE payments
		SET amount = $1, status = $2, transaction_id = $3, updated_at = NOW()
		WHERE id = $4`,
		payment.Amount, payment.Status, payment.TransactionID, payment.ID)
	if err != nil {
		return fmt.Errorf("error updating payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPaymentNotFound
	}
	return nil
}

// Delete removes a payment
func (r *PaymentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPaymentNotFound
	}
	return nil
}
