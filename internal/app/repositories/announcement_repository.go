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

const announcementColumns = `a.id, a.title, a.message, a.category, a.notice_url,
	a.created_by, a.created_at, a.updated_at`

// AnnouncementRepository handles database operations for announcements
type AnnouncementRepository struct {
	q db.Querier
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(pool *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{q: pool}
}

func scanAnnouncement(row pgx.Row) (*models.Announcement, error) {
	a := &models.Announcement{}
	err := row.Scan(&a.ID, &a.Title, &a.Message, &a.Category, &a.NoticeURL,
		&a.CreatedBy, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts a new announcement
func (r *AnnouncementRepository) Create(ctx context.Context, a *models.Announcement) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO announcements (title, message, category, notice_url, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		a.Title, a.Message, a.Category, a.NoticeURL, a.CreatedBy).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating announcement: %w", err)
	}
	return nil
}

// GetByID retrieves an announcement by ID
func (r *AnnouncementRepository) GetByID(ctx context.Context, id int64) (*models.Announcement, error) {
	a, err := scanAnnouncement(r.q.QueryRow(ctx, `
		SELECT `+announcementColumns+` FROM announcements a WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("error retrieving announcement: %w", err)
	}
	return a, nil
}

// GetAll retrieves announcements matching the filter, newest first, with
// the author joined in, plus the total count.
func (r *AnnouncementRepository) GetAll(ctx context.Context, filter dto.AnnouncementFilter) ([]*models.Announcement, int64, error) {
	where := ` FROM announcements a JOIN users u ON u.id = a.created_by WHERE 1=1`
	args := []any{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		where += fmt.Sprintf(" AND a.category = $%d", len(args))
	}

	var total int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*)`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting announcements: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Limit)
	args = append(args, limit, offset)

	query := `SELECT ` + announcementColumns + `,
		u.id, u.full_name, u.email, u.phone, u.role, u.status, u.created_at, u.updated_at` +
		where + fmt.Sprintf(" ORDER BY a.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing announcements: %w", err)
	}
	defer rows.Close()

	var announcements []*models.Announcement
	for rows.Next() {
		a := &models.Announcement{}
		u := &models.User{}
		err := rows.Scan(
			&a.ID, &a.Title, &a.Message, &a.Category, &a.NoticeURL,
			&a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
			&u.ID, &u.FullName, &u.Email, &u.Phone, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
		if err != nil {
			return nil, 0, err
		}
		a.Author = u
		announcements = append(announcements, a)
	}
	return announcements, total, rows.Err()
}

// Update rewrites the mutable announcement fields
func (r *AnnouncementRepository) Update(ctx context.Context, a *models.Announcement) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE announcements
		SET title = $1, message = $2, category = $3, notice_url = $4, updated_at = NOW()
		WHERE id = $5`,
		a.Title, a.Message, a.Category, a.NoticeURL, a.ID)
	if err != nil {
		return fmt.Errorf("error updating announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAnnouncementNotFound
	}
	return nil
}

// Delete removes an announcement
func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAnnouncementNotFound
	}
	return nil
}
