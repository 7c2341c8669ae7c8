package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devansh/hostelhub/internal/app/models"
	"github.com/devansh/hostelhub/internal/db"
	"github.com/devansh/hostelhub/internal/pkg/apperrors"
	"github.com/devansh/hostelhub/internal/pkg/dberrors"
)

const userColumns = `id, full_name, email, phone, password, role, status, created_at, updated_at`

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailOrPhoneExists(ctx context.Context, email, phone string) (emailTaken, phoneTaken bool, err error)
	UpdateStatus(ctx context.Context, id int64, status models.UserStatus) error
	WithTx(tx pgx.Tx) IUserRepository
}

// UserRepository handles database operations for users
type UserRepository struct {
	q db.Querier
}

// NewUserRepository creates a new user repository
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{q: pool}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *UserRepository) WithTx(tx pgx.Tx) IUserRepository {
	return &UserRepository{q: tx}
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.FullName, &user.Email, &user.Phone, &user.Password,
		&user.Role, &user.Status, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create inserts a new user. Email and phone collisions surface as
// field-specific conflict errors.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO users (full_name, email, phone, password, role, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		user.FullName, user.Email, user.Phone, user.Password, user.Role, user.Status).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		switch dberrors.ConstraintName(err) {
		case "users_email_key":
			return apperrors.ErrEmailAlreadyExists
		case "users_phone_key":
			return apperrors.ErrPhoneAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := scanUser(r.q.QueryRow(ctx, `
		SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := scanUser(r.q.QueryRow(ctx, `
		SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// EmailOrPhoneExists checks both uniqueness constraints in one round trip
func (r *UserRepository) EmailOrPhoneExists(ctx context.Context, email, phone string) (emailTaken, phoneTaken bool, err error) {
	err = r.q.QueryRow(ctx, `
		SELECT
			EXISTS(SELECT 1 FROM users WHERE email = $1),
			EXISTS(SELECT 1 FROM users WHERE phone = $2)`,
		email, phone).Scan(&emailTaken, &phoneTaken)
	if err != nil {
		return false, false, fmt.Errorf("error checking email/phone: %w", err)
	}
	return emailTaken, phoneTaken, nil
}

// UpdateStatus flips a user between active and inactive
func (r *UserRepository) UpdateStatus(ctx context.Context, id int64, status models.UserStatus) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE users SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("error updating user status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
