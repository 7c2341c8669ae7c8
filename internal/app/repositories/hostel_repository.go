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

const hostelColumns = `id, name, code, blocks, floors_per_block, rooms_per_floor,
	total_rooms, is_active, created_at, updated_at`

// HostelRepository handles database operations for hostels
type HostelRepository struct {
	q db.Querier
}

// NewHostelRepository creates a new hostel repository
func NewHostelRepository(pool *pgxpool.Pool) *HostelRepository {
	return &HostelRepository{q: pool}
}

func scanHostel(row pgx.Row) (*models.Hostel, error) {
	h := &models.Hostel{}
	err := row.Scan(&h.ID, &h.Name, &h.Code, &h.Blocks, &h.FloorsPerBlock,
		&h.RoomsPerFloor, &h.TotalRooms, &h.IsActive, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// Create inserts a new hostel
func (r *HostelRepository) Create(ctx context.Context, hostel *models.Hostel) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO hostels (name, code, blocks, floors_per_block, rooms_per_floor, total_rooms)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, is_active, created_at, updated_at`,
		hostel.Name, hostel.Code, hostel.Blocks, hostel.FloorsPerBlock,
		hostel.RoomsPerFloor, hostel.TotalRooms).
		Scan(&hostel.ID, &hostel.IsActive, &hostel.CreatedAt, &hostel.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrHostelAlreadyExists
		}
		return fmt.Errorf("error creating hostel: %w", err)
	}
	return nil
}

// GetByID retrieves a hostel by ID
func (r *HostelRepository) GetByID(ctx context.Context, id int64) (*models.Hostel, error) {
	hostel, err := scanHostel(r.q.QueryRow(ctx, `
		SELECT `+hostelColumns+` FROM hostels WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrHostelNotFound
		}
		return nil, fmt.Errorf("error retrieving hostel: %w", err)
	}
	return hostel, nil
}

// GetAll retrieves all hostels, newest first
func (r *HostelRepository) GetAll(ctx context.Context) ([]*models.Hostel, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+hostelColumns+` FROM hostels ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing hostels: %w", err)
	}
	defer rows.Close()

	var hostels []*models.Hostel
	for rows.Next() {
		hostel, err := scanHostel(rows)
		if err != nil {
			return nil, err
		}
		hostels = append(hostels, hostel)
	}
	return hostels, rows.Err()
}

// Update rewrites the mutable hostel fields
func (r *HostelRepository) Update(ctx context.Context, hostel *models.Hostel) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE hostels
		SET name = $1, blocks = $2, floors_per_block = $3, rooms_per_floor = $4,
			total_rooms = $5, updated_at = NOW()
		WHERE id = $6`,
		hostel.Name, hostel.Blocks, hostel.FloorsPerBlock, hostel.RoomsPerFloor,
		hostel.TotalRooms, hostel.ID)
	if err != nil {
		return fmt.Errorf("error updating hostel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrHostelNotFound
	}
	return nil
}

// ToggleActive flips the active flag and returns the new value
func (r *HostelRepository) ToggleActive(ctx context.Context, id int64) (bool, error) {
	var isActive bool
	err := r.q.QueryRow(ctx, `
		UPDATE hostels SET is_active = NOT is_active, updated_at = NOW()
		WHERE id = $1
		RETURNING is_active`, id).Scan(&isActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, apperrors.ErrHostelNotFound
		}
		return false, fmt.Errorf("error toggling hostel: %w", err)
	}
	return isActive, nil
}

// Delete removes a hostel
func (r *HostelRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM hostels WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting hostel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrHostelNotFound
	}
	return nil
}
