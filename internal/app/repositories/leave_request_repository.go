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

const leaveColumns = `l.id, l.student_id, l.from_date, l.to_date, l.destination,
	l.reason, l.status, l.approved_by, l.created_at, l.updated_at`

// LeaveRequestRepository handles database operations for leave requests
type LeaveRequestRepository struct {
	q db.Querier
}

// NewLeaveRequestRepository creates a new leave request repository
func NewLeaveRequestRepository(pool *pgxpool.Pool) *LeaveRequestRepository {
	return &LeaveRequestRepository{q: pool}
}

func scanLeave(row pgx.Row) (*models.LeaveRequest, error) {
	l := &models.LeaveRequest{}
	err := row.Scan(&l.ID, &l.StudentID, &l.FromDate, &l.ToDate, &l.Destination,
		&l.Reason, &l.Status, &l.ApprovedBy, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// Create inserts a new leave request in pending status
func (r *LeaveRequestRepository) Create(ctx context.Context, leave *models.LeaveRequest) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO leave_requests (student_id, from_date, to_date, destination, reason)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, status, created_at, updated_at`,
		leave.StudentID, leave.FromDate, leave.ToDate, leave.Destination, leave.Reason).
		Scan(&leave.ID, &leave.Status, &leave.CreatedAt, &leave.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating leave request: %w", err)
	}
	return nil
}

// HasOverlapping reports whether the student already has a non-rejected
// request whose date range intersects [from, to].
func (r *LeaveRequestRepository) HasOverlapping(ctx context.Context, studentID int64, leave *models.LeaveRequest) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM leave_requests
			WHERE student_id = $1
			  AND status <> 'rejected'
			  AND from_date <= $3
			  AND to_date >= $2)`,
		studentID, leave.FromDate, leave.ToDate).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking leave overlap: %w", err)
	}
	return exists, nil
}

// GetByID retrieves a leave request by ID
func (r *LeaveRequestRepository) GetByID(ctx context.Context, id int64) (*models.LeaveRequest, error) {
	leave, err := scanLeave(r.q.QueryRow(ctx, `
		SELECT `+leaveColumns+` FROM leave_requests l WHERE l.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLeaveNotFound
		}
		return nil, fmt.Errorf("error retrieving leave request: %w", err)
	}
	return leave, nil
}

// GetAll retrieves leave requests matching the filter, newest first, with
// the requesting student and their user joined in, plus the total count.
func (r *LeaveRequestRepository) GetAll(ctx context.Context, filter dto.LeaveFilter) ([]*models.LeaveRequest, int64, error) {
	where := ` FROM leave_requests l
		JOIN students s ON s.id = l.student_id
		JOIN users u ON u.id = s.user_id
		WHERE 1=1`
	args := []any{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND l.status = $%d", len(args))
	}
	if filter.StudentID > 0 {
		args = append(args, filter.StudentID)
		where += fmt.Sprintf(" AND l.student_id = $%d", len(args))
	}

	var total int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*)`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting leave requests: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Limit)
	args = append(args, limit, offset)

	query := `SELECT ` + leaveColumns + `, ` + studentColumns + `,
		u.id, u.full_name, u.email, u.phone, u.role, u.status, u.created_at, u.updated_at` +
		where + fmt.Sprintf(" ORDER BY l.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing leave requests: %w", err)
	}
	defer rows.Close()

	var leaves []*models.LeaveRequest
	for rows.Next() {
		l := &models.LeaveRequest{}
		s := &models.Student{}
		u := &models.User{}
		err := rows.Scan(
			&l.ID, &l.StudentID, &l.FromDate, &l.ToDate, &l.Destination,
			&l.Reason, &l.Status, &l.ApprovedBy, &l.CreatedAt, &l.UpdatedAt,
			&s.ID, &s.UserID, &s.RoomID, &s.SID, &s.PermanentAddress, &s.GuardianName,
			&s.GuardianContact, &s.Branch, &s.BlockCode, &s.RoomNumber, &s.LeavingDate,
			&s.CreatedAt, &s.UpdatedAt,
			&u.ID, &u.FullName, &u.Email, &u.Phone, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
		if err != nil {
			return nil, 0, err
		}
		s.User = u
		l.Student = s
		leaves = append(leaves, l)
	}
	return leaves, total, rows.Err()
}

// UpdateStatus records the approve/reject decision
func (r *LeaveRequestRepository) UpdateStatus(ctx context.Context, id int64, status models.LeaveStatus, decidedBy int64) (*models.LeaveRequest, error) {
	leave, err := scanLeave(r.q.QueryRow(ctx, `
		UPDATE leave_requests l
		SET status = $1, approved_by = $2, updated_at = NOW()
		WHERE l.id = $3
		RETURNING `+leaveColumns, status, decidedBy, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLeaveNotFound
		}
		return nil, fmt.Errorf("error updating leave request: %w", err)
	}
	return leave, nil
}

// Delete removes a leave request
func (r *LeaveRequestRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrLeaveNotFound
	}
	return nil
}
