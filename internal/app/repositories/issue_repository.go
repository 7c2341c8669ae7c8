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

const issueColumns = `i.id, i.title, i.description, i.category, i.status,
	i.raised_by, i.created_at, i.updated_at`

// IssueRepository handles database operations for issue tickets
type IssueRepository struct {
	q db.Querier
}

// NewIssueRepository creates a new issue repository
func NewIssueRepository(pool *pgxpool.Pool) *IssueRepository {
	return &IssueRepository{q: pool}
}

func scanIssue(row pgx.Row) (*models.Issue, error) {
	i := &models.Issue{}
	err := row.Scan(&i.ID, &i.Title, &i.Description, &i.Category, &i.Status,
		&i.RaisedBy, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return i, nil
}

// Create inserts a new pending issue
func (r *IssueRepository) Create(ctx context.Context, issue *models.Issue) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO issues (title, description, category, raised_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, status, created_at, updated_at`,
		issue.Title, issue.Description, issue.Category, issue.RaisedBy).
		Scan(&issue.ID, &issue.Status, &issue.CreatedAt, &issue.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating issue: %w", err)
	}
	return nil
}

// GetByID retrieves an issue by ID
func (r *IssueRepository) GetByID(ctx context.Context, id int64) (*models.Issue, error) {
	issue, err := scanIssue(r.q.QueryRow(ctx, `
		SELECT `+issueColumns+` FROM issues i WHERE i.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrIssueNotFound
		}
		return nil, fmt.Errorf("error retrieving issue: %w", err)
	}
	return issue, nil
}

// GetAll retrieves issues matching the filter, newest first, plus the
// total count. RaisedBy restricts the listing to one student's tickets.
func (r *IssueRepository) GetAll(ctx context.Context, filter dto.IssueFilter) ([]*models.Issue, int64, error) {
	where := ` FROM issues i WHERE 1=1`
	args := []any{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND i.status = $%d", len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		where += fmt.Sprintf(" AND i.category = $%d", len(args))
	}
	if filter.RaisedBy > 0 {
		args = append(args, filter.RaisedBy)
		where += fmt.Sprintf(" AND i.raised_by = $%d", len(args))
	}

	var total int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*)`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting issues: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Limit)
	args = append(args, limit, offset)

	query := `SELECT ` + issueColumns + where +
		fmt.Sprintf(" ORDER BY i.created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing issues: %w", err)
	}
	defer rows.Close()

	var issues []*models.Issue
	for rows.Next() {
		issue, err := scanIssue(rows)
		if err != nil {
			return nil, 0, err
		}
		issues = append(issues, issue)
	}
	return issues, total, rows.Err()
}

// Update rewrites the mutable issue fields
func (r *IssueRepository) Update(ctx context.Context, issue *models.Issue) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE issues
		SET title = $1, description = $2, category = $3, status = $4, updated_at = NOW()
		WHERE id = $5`,
		issue.Title, issue.Description, issue.Category, issue.Status, issue.ID)
	if err != nil {
		return fmt.Errorf("error updating issue: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrIssueNotFound
	}
	return nil
}

// Delete removes an issue and its comments (cascade)
func (r *IssueRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM issues WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting issue: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrIssueNotFound
	}
	return nil
}
