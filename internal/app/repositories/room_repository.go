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
)

const roomColumns = `id, room_number, block, floor, capacity, occupancy, is_active, yearly_rent, created_at, updated_at`

// IRoomRepository defines the interface for room database operations
type IRoomRepository interface {
	Allocate(ctx context.Context, block, roomNumber string, defaultCapacity int, defaultRent int64) (*models.Room, error)
	Release(ctx context.Context, roomID int64) error
	Create(ctx context.Context, room *models.Room) error
	GetByID(ctx context.Context, id int64) (*models.Room, error)
	GetByBlockAndNumber(ctx context.Context, block, roomNumber string) (*models.Room, error)
	GetAll(ctx context.Context, filter dto.RoomFilter) ([]*models.Room, error)
	Update(ctx context.Context, id int64, req *dto.UpdateRoomRequest) (*models.Room, error)
	ToggleActive(ctx context.Context, id int64) (*models.Room, error)
	Delete(ctx context.Context, id int64) error
	WithTx(tx pgx.Tx) IRoomRepository
}

// RoomRepository handles database operations for rooms
type RoomRepository struct {
	q db.Querier
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(pool *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{q: pool}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *RoomRepository) WithTx(tx pgx.Tx) IRoomRepository {
	return &RoomRepository{q: tx}
}

func scanRoom(row pgx.Row) (*models.Room, error) {
	room := &models.Room{}
	err := row.Scan(
		&room.ID, &room.RoomNumber, &room.BlockCode, &room.Floor,
		&room.Capacity, &room.Occupancy, &room.IsActive, &room.YearlyRent,
		&room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return room, nil
}

// Allocate claims one slot in the room identified by (block, roomNumber).
// The increment is a single conditional UPDATE (occupancy < capacity), so
// two racing allocations can never push occupancy past capacity. When the
// room does not exist it is created with the given default capacity and
// occupancy 1. Returns apperrors.ErrRoomFull when the room exists but has
// no free slot, apperrors.ErrRoomInactive when it is blocked.
func (r *RoomRepository) Allocate(ctx context.Context, block, roomNumber string, defaultCapacity int, defaultRent int64) (*models.Room, error) {
	room, err := r.tryClaim(ctx, block, roomNumber)
	if err == nil {
		return room, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("error allocating room: %w", err)
	}

	// No claimable slot: either the room is full/inactive or it does not
	// exist yet. Look it up to tell the cases apart.
	existing, err := r.GetByBlockAndNumber(ctx, block, roomNumber)
	if err == nil {
		if !existing.IsActive {
			return nil, apperrors.ErrRoomInactive
		}
		return nil, apperrors.ErrRoomFull
	}
	if !errors.Is(err, apperrors.ErrRoomNotFound) {
		return nil, err
	}

	// Create the room on first enrollment. ON CONFLICT DO NOTHING keeps
	// a concurrent creator from failing; the loser falls back to claiming
	// a slot in the winner's row.
	row := r.q.QueryRow(ctx, `
		INSERT INTO rooms (room_number, block, floor, capacity, occupancy, is_active, yearly_rent)
		VALUES ($1, $2, 0, $3, 1, TRUE, $4)
		ON CONFLICT (block, room_number) DO NOTHING
		RETURNING `+roomColumns,
		roomNumber, block, defaultCapacity, defaultRent)

	room, err = scanRoom(row)
	if err == nil {
		return room, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("error creating room: %w", err)
	}

	room, err = r.tryClaim(ctx, block, roomNumber)
	if err == nil {
		return room, nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrRoomFull
	}
	return nil, fmt.Errorf("error allocating room: %w", err)
}

// tryClaim performs the compare-and-swap occupancy increment
func (r *RoomRepository) tryClaim(ctx context.Context, block, roomNumber string) (*models.Room, error) {
	row := r.q.QueryRow(ctx, `
		UPDATE rooms
		SET occupancy = occupancy + 1, updated_at = NOW()
		WHERE block = $1 AND room_number = $2 AND is_active AND occupancy < capacity
		RETURNING `+roomColumns,
		block, roomNumber)
	return scanRoom(row)
}

// Release frees one slot of the room, floored at zero occupancy
func (r *RoomRepository) Release(ctx context.Context, roomID int64) error {
	_, err := r.q.Exec(ctx, `
		UPDATE rooms
		SET occupancy = occupancy - 1, updated_at = NOW()
		WHERE id = $1 AND occupancy > 0`,
		roomID)
	if err != nil {
		return fmt.Errorf("error releasing room slot: %w", err)
	}
	return nil
}

// Create inserts an explicitly administered room
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO rooms (room_number, block, floor, capacity, occupancy, is_active, yearly_rent)
		VALUES ($1, $2, $3, $4, 0, TRUE, $5)
		RETURNING id, occupancy, is_active, created_at, updated_at`,
		room.RoomNumber, room.BlockCode, room.Floor, room.Capacity, room.YearlyRent).
		Scan(&room.ID, &room.Occupancy, &room.IsActive, &room.CreatedAt, &room.UpdatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrRoomAlreadyExists
		}
		return fmt.Errorf("error creating room: %w", err)
	}
	return nil
}

// GetByID retrieves a room by ID
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	room, err := scanRoom(r.q.QueryRow(ctx, `
		SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}
	return room, nil
}

// GetByBlockAndNumber retrieves a room by its (block, room_number) identity
func (r *RoomRepository) GetByBlockAndNumber(ctx context.Context, block, roomNumber string) (*models.Room, error) {
	room, err := scanRoom(r.q.QueryRow(ctx, `
		SELECT `+roomColumns+` FROM rooms WHERE block = $1 AND room_number = $2`,
		block, roomNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}
	return room, nil
}

// GetAll retrieves rooms matching the filter, ordered by block then number
func (r *RoomRepository) GetAll(ctx context.Context, filter dto.RoomFilter) ([]*models.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE 1=1`
	args := []any{}

	if filter.Block != "" {
		args = append(args, filter.Block)
		query += fmt.Sprintf(" AND block = $%d", len(args))
	}
	if filter.Floor != nil {
		args = append(args, *filter.Floor)
		query += fmt.Sprintf(" AND floor = $%d", len(args))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		query += fmt.Sprintf(" AND is_active = $%d", len(args))
	}
	query += " ORDER BY block, room_number"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*models.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

// Update applies a partial update to room attributes. Occupancy is never
// written here; it only moves through Allocate/Release.
func (r *RoomRepository) Update(ctx context.Context, id int64, req *dto.UpdateRoomRequest) (*models.Room, error) {
	query := `UPDATE rooms SET updated_at = NOW()`
	args := []any{}

	if req.Floor != nil {
		args = append(args, *req.Floor)
		query += fmt.Sprintf(", floor = $%d", len(args))
	}
	if req.Capacity != nil {
		args = append(args, *req.Capacity)
		query += fmt.Sprintf(", capacity = $%d", len(args))
	}
	if req.YearlyRent != nil {
		args = append(args, *req.YearlyRent)
		query += fmt.Sprintf(", yearly_rent = $%d", len(args))
	}

	args = append(args, id)
	query += fmt.Sprintf(" WHERE id = $%d RETURNING %s", len(args), roomColumns)

	room, err := scanRoom(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("error updating room: %w", err)
	}
	return room, nil
}

// ToggleActive flips the is_active flag and returns the updated room
func (r *RoomRepository) ToggleActive(ctx context.Context, id int64) (*models.Room, error) {
	room, err := scanRoom(r.q.QueryRow(ctx, `
		UPDATE rooms SET is_active = NOT is_active, updated_at = NOW()
		WHERE id = $1
		RETURNING `+roomColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("error toggling room status: %w", err)
	}
	return room, nil
}

// Delete removes a room
func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRoomNotFound
	}
	return nil
}
