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
	"github.com/devansh/hostelhub/internal/pkg/helpers"
)

const caseColumns = `c.id, c.student_id, c.reason, c.fine_amount, c.status,
	c.decided_by, c.created_at, c.updated_at`

// DisciplinaryRepository handles database operations for disciplinary cases
type DisciplinaryRepository struct {
	q db.Querier
}

// NewDisciplinaryRepository creates a new disciplinary case repository
func NewDisciplinaryRepository(pool *pgxpool.Pool) *DisciplinaryRepository {
	return &DisciplinaryRepository{q: pool}
}

func scanCase(row pgx.Row) (*models.DisciplinaryCase, error) {
	c := &models.DisciplinaryCase{}
	err := row.Scan(&c.ID, &c.StudentID, &c.Reason, &c.FineAmount, &c.Status,
		&c.DecidedBy, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a new open case
func (r *DisciplinaryRepository) Create(ctx context.Context, dcase *models.DisciplinaryCase) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO disciplinary_cases (student_id, reason, fine_amount, decided_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, status, created_at, updated_at`,
		dcase.StudentID, dcase.Reason, dcase.FineAmount, dcase.DecidedBy).
		Scan(&dcase.ID, &dcase.Status, &dcase.CreatedAt, &dcase.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating disciplinary case: %w", err)
	}
	return nil
}

// GetByID retrieves a case by ID
func (r *DisciplinaryRepository) GetByID(ctx context.Context, id int64) (*models.DisciplinaryCase, error) {
	dcase, err := scanCase(r.q.QueryRow(ctx, `
		SELECT `+caseColumns+` FROM disciplinary_cases c WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCaseNotFound
		}
		return nil, fmt.Errorf("error retrieving disciplinary case: %w", err)
	}
	return dcase, nil
}

// GetAll retrieves cases matching the filter, newest first, with the
// student and their user joined in, plus the total count.
func (r *DisciplinaryRepository) GetAll(ctx context.Context, filter dto.CaseFilter) ([]*models.DisciplinaryCase, int64, error) {
	where := ` FROM disciplinary_cases c
		JOIN students s ON s.id = c.student_id
		JOIN users u ON u.id = s.user_id
		WHERE 1=1`
	args := []any{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND c.status = $%d", len(args))
	}
	if filter.StudentID > 0 {
		args = append(args, filter.StudentID)
		where += fmt.Sprintf(" AND c.student_id = $%d", len(args))
	}

	var total int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*)`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting disciplinary cases: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Limit)
	args = append(args, limit, offset)

	query := `SELECT ` + caseColumns + `, ` + studentColumns + `,
		u.id, u.full_name, u.email, u.phone, u.role, u.status, u.created_at, u.updated_at` +
		where + fmt.Sprintf(" ORDER BY c.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing disciplinary cases: %w", err)
	}
	defer rows.Close()

	var cases []*models.DisciplinaryCase
	for rows.Next() {
		c := &models.DisciplinaryCase{}
		s := &models.Student{}
		u := &models.User{}
		err := rows.Scan(
			&c.ID, &c.StudentID, &c.Reason, &c.FineAmount, &c.Status,
			&c.DecidedBy, &c.CreatedAt, &c.UpdatedAt,
			&s.ID, &s.UserID, &s.RoomID, &s.SID, &s.PermanentAddress, &s.GuardianName,
			&s.GuardianContact, &s.Branch, &s.BlockCode, &s.RoomNumber, &s.LeavingDate,
			&s.CreatedAt, &s.UpdatedAt,
			&u.ID, &u.FullName, &u.Email, &u.Phone, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
		if err != nil {
			return nil, 0, err
		}
		s.User = u
		c.Student = s
		cases = append(cases, c)
	}
	return cases, total, rows.Err()
}

// Update rewrites the mutable case fields
func (r *DisciplinaryRepository) Update(ctx context.Context, dcase *models.DisciplinaryCase) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE disciplinary_cases
		SET reason = $1, fine_amount = $2, status = $3, updated_at = NOW()
		WHERE id = $4`,
		dcase.Reason, dcase.FineAmount, dcase.Status, dcase.ID)
	if err != nil {
		return fmt.Errorf("error updating disciplinary case: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCaseNotFound
	}
	return nil
}

// Delete removes a case
func (r *DisciplinaryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM disciplinary_cases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting disciplinary case: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCaseNotFound
	}
	return nil
}
