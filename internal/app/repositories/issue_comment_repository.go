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
)

const commentColumns = `c.id, c.issue_id, c.commented_by, c.comment_text, c.created_at, c.updated_at`

// IssueCommentRepository handles database operations for issue comments
type IssueCommentRepository struct {
	q db.Querier
}

// NewIssueCommentRepository creates a new issue comment repository
func NewIssueCommentRepository(pool *pgxpool.Pool) *IssueCommentRepository {
	return &IssueCommentRepository{q: pool}
}

func scanComment(row pgx.Row) (*models.IssueComment, error) {
	c := &models.IssueComment{}
	err := row.Scan(&c.ID, &c.IssueID, &c.CommentedBy, &c.CommentText, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a new comment
func (r *IssueCommentRepository) Create(ctx context.Context, comment *models.IssueComment) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO issue_comments (issue_id, commented_by, comment_text)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		comment.IssueID, comment.CommentedBy, comment.CommentText).
		Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating comment: %w", err)
	}
	return nil
}

// GetByID retrieves a comment by ID
func (r *IssueCommentRepository) GetByID(ctx context.Context, id int64) (*models.IssueComment, error) {
	comment, err := scanComment(r.q.QueryRow(ctx, `
		SELECT `+commentColumns+` FROM issue_comments c WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("error retrieving comment: %w", err)
	}
	return comment, nil
}

// GetByIssue retrieves all comments on an issue, oldest first, with the
// author joined in.
func (r *IssueCommentRepository) GetByIssue(ctx context.Context, issueID int64) ([]*models.IssueComment, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+commentColumns+`,
			u.id, u.full_name, u.email, u.phone, u.role, u.status, u.created_at, u.updated_at
		FROM issue_comments c
		JOIN users u ON u.id = c.commented_by
		WHERE c.issue_id = $1
		ORDER BY c.created_at ASC`, issueID)
	if err != nil {
		return nil, fmt.Errorf("error listing comments: %w", err)
	}
	defer rows.Close()

	var comments []*models.IssueComment
	for rows.Next() {
		c := &models.IssueComment{}
		u := &models.User{}
		err := rows.Scan(
			&c.ID, &c.IssueID, &c.CommentedBy, &c.CommentText, &c.CreatedAt, &c.UpdatedAt,
			&u.ID, &u.FullName, &u.Email, &u.Phone, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
		if err != nil {
			return nil, err
		}
		c.Author = u
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// UpdateText rewrites a comment's text
func (r *IssueCommentRepository) UpdateText(ctx context.Context, id int64, text string) (*models.IssueComment, error) {
	comment, err := scanComment(r.q.QueryRow(ctx, `
		UPDATE issue_comments c
		SET comment_text = $1, updated_at = NOW()
		WHERE c.id = $2
		RETURNING `+commentColumns, text, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("error updating comment: %w", err)
	}
	return comment, nil
}

// Delete removes a comment
func (r *IssueCommentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM issue_comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCommentNotFound
	}
	return nil
}
