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

const studentColumns = `s.id, s.user_id, s.room_id, s.sid, s.permanent_address, s.guardian_name,
	s.guardian_contact, s.branch, s.block, s.room_number, s.leaving_date, s.created_at, s.updated_at`

const studentUserColumns = studentColumns + `,
	u.id, u.full_name, u.email, u.phone, u.role, u.status, u.created_at, u.updated_at`

// IStudentRepository defines the interface for student-profile database operations
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByUserID(ctx context.Context, userID int64) (*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	SIDExists(ctx context.Context, sid string) (bool, error)
	GetAll(ctx context.Context, filter dto.StudentFilter) ([]*models.Student, int64, error)
	UpdateProfile(ctx context.Context, student *models.Student) error
	DeleteByUserID(ctx context.Context, userID int64) (*models.Student, error)
	InsertHistory(ctx context.Context, h *models.StudentHistory) error
	WithTx(tx pgx.Tx) IStudentRepository
}

// StudentRepository handles database operations for student profiles
type StudentRepository struct {
	q db.Querier
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{q: pool}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *StudentRepository) WithTx(tx pgx.Tx) IStudentRepository {
	return &StudentRepository{q: tx}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.ID, &s.UserID, &s.RoomID, &s.SID, &s.PermanentAddress, &s.GuardianName,
		&s.GuardianContact, &s.Branch, &s.BlockCode, &s.RoomNumber, &s.LeavingDate,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func scanStudentWithUser(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	u := &models.User{}
	err := row.Scan(
		&s.ID, &s.UserID, &s.RoomID, &s.SID, &s.PermanentAddress, &s.GuardianName,
		&s.GuardianContact, &s.Branch, &s.BlockCode, &s.RoomNumber, &s.LeavingDate,
		&s.CreatedAt, &s.UpdatedAt,
		&u.ID, &u.FullName, &u.Email, &u.Phone, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.User = u
	return s, nil
}

// Create inserts a new student profile. The caller supplies BlockCode and
// RoomNumber already derived from the referenced room.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO students (user_id, room_id, sid, permanent_address, guardian_name,
			guardian_contact, branch, block, room_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`,
		student.UserID, student.RoomID, student.SID, student.PermanentAddress,
		student.GuardianName, student.GuardianContact, student.Branch,
		student.BlockCode, student.RoomNumber).
		Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)

	if err != nil {
		switch dberrors.ConstraintName(err) {
		case "students_sid_key":
			return apperrors.ErrSIDAlreadyExists
		case "students_user_id_key":
			return apperrors.ErrProfileAlreadyExists
		}
		return fmt.Errorf("error creating student profile: %w", err)
	}
	return nil
}

// GetByUserID retrieves a student profile with its user joined in
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	student, err := scanStudentWithUser(r.q.QueryRow(ctx, `
		SELECT `+studentUserColumns+`
		FROM students s
		JOIN users u ON u.id = s.user_id
		WHERE s.user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}
	return student, nil
}

// GetByID retrieves a student profile by its own ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := scanStudent(r.q.QueryRow(ctx, `
		SELECT `+studentColumns+` FROM students s WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}
	return student, nil
}

// SIDExists checks whether a student ID is already taken
func (r *StudentRepository) SIDExists(ctx context.Context, sid string) (bool, error) {
	var taken bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE sid = $1)`, sid).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("error checking sid uniqueness: %w", err)
	}
	return taken, nil
}

// GetAll retrieves student profiles matching the filter, newest first,
// with their users joined in, plus the total match count.
func (r *StudentRepository) GetAll(ctx context.Context, filter dto.StudentFilter) ([]*models.Student, int64, error) {
	where := ` FROM students s JOIN users u ON u.id = s.user_id WHERE 1=1`
	args := []any{}

	if filter.Block != "" {
		args = append(args, filter.Block)
		where += fmt.Sprintf(" AND s.block = $%d", len(args))
	}
	if filter.Branch != "" {
		args = append(args, "%"+filter.Branch+"%")
		where += fmt.Sprintf(" AND s.branch ILIKE $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		where += fmt.Sprintf(" AND (u.full_name ILIKE $%d OR u.email ILIKE $%d OR s.sid ILIKE $%d)", n, n, n)
	}

	var total int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*)`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Limit)
	args = append(args, limit)
	limitPos := len(args)
	args = append(args, offset)
	offsetPos := len(args)

	query := `SELECT ` + studentUserColumns + where +
		fmt.Sprintf(" ORDER BY s.created_at DESC LIMIT $%d OFFSET $%d", limitPos, offsetPos)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudentWithUser(rows)
		if err != nil {
			return nil, 0, err
		}
		students = append(students, student)
	}
	return students, total, rows.Err()
}

// UpdateProfile rewrites the mutable profile fields. Room assignment
// (room_id, block, room_number) must already be resolved by the caller
// from the referenced room.
func (r *StudentRepository) UpdateProfile(ctx context.Context, student *models.Student) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE students
		SET permanent_address = $1, guardian_name = $2, guardian_contact = $3,
			branch = $4, room_id = $5, block = $6, room_number = $7,
			leaving_date = $8, updated_at = NOW()
		WHERE id = $9`,
		student.PermanentAddress, student.GuardianName, student.GuardianContact,
		student.Branch, student.RoomID, student.BlockCode, student.RoomNumber,
		student.LeavingDate, student.ID)
	if err != nil {
		return fmt.Errorf("error updating student profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// DeleteByUserID removes a profile and returns the deleted record so the
// caller can release its room slot.
func (r *StudentRepository) DeleteByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	student, err := scanStudent(r.q.QueryRow(ctx, `
		DELETE FROM students s WHERE s.user_id = $1
		RETURNING `+studentColumns, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error deleting student profile: %w", err)
	}
	return student, nil
}

// InsertHistory records a snapshot of a profile before an edit
func (r *StudentRepository) InsertHistory(ctx context.Context, h *models.StudentHistory) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO student_history (student_id, updated_by, old_data)
		VALUES ($1, $2, $3)`,
		h.StudentID, h.UpdatedBy, h.OldData)
	if err != nil {
		return fmt.Errorf("error recording student history: %w", err)
	}
	return nil
}
