package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/boardgamereviews/reviews-service/internal/domain"
)

// Compile-time check that PgCommentRepository implements CommentRepository.
var _ CommentRepository = (*PgCommentRepository)(nil)

// commentColumns is the column list every comment query returns, in scan order.
const commentColumns = `comment_id, votes, created_at, author, body, review_id`

// PgCommentRepository is a PostgreSQL implementation of CommentRepository.
type PgCommentRepository struct {
	db DBTX
}

// NewPgCommentRepository creates a new PostgreSQL comment repository.
func NewPgCommentRepository(db DBTX) *PgCommentRepository {
	return &PgCommentRepository{db: db}
}

// Get retrieves a comment by ID.
func (r *PgCommentRepository) Get(ctx context.Context, commentID int) (*domain.Comment, error) {
	c, err := scanComment(r.db.QueryRow(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE comment_id = $1`, commentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("comment", strconv.Itoa(commentID))
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return c, nil
}

// UpdateVotes applies a relative vote change. The new value is computed by
// the store so concurrent votes are never lost.
func (r *PgCommentRepository) UpdateVotes(ctx context.Context, commentID, delta int) (*domain.Comment, error) {
	var updated *domain.Comment
	err := inTx(ctx, r.db, func(q DBTX) error {
		if err := exists(ctx, q, commentByID, commentID); err != nil {
			return err
		}

		c, err := scanComment(q.QueryRow(ctx, `
			UPDATE comments SET votes = votes + $1
			WHERE comment_id = $2
			RETURNING `+commentColumns,
			delta, commentID,
		))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.NewNotFoundError("comment", strconv.Itoa(commentID))
			}
			return fmt.Errorf("failed to update comment votes: %w", err)
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a comment after confirming it exists.
func (r *PgCommentRepository) Delete(ctx context.Context, commentID int) error {
	return inTx(ctx, r.db, func(q DBTX) error {
		if err := exists(ctx, q, commentByID, commentID); err != nil {
			return err
		}

		tag, err := q.Exec(ctx, `DELETE FROM comments WHERE comment_id = $1`, commentID)
		if err != nil {
			return fmt.Errorf("failed to delete comment: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.NewNotFoundError("comment", strconv.Itoa(commentID))
		}
		return nil
	})
}

// scanComment scans a single comment row selected with commentColumns.
func scanComment(row pgx.Row) (*domain.Comment, error) {
	var c domain.Comment
	if err := row.Scan(&c.CommentID, &c.Votes, &c.CreatedAt, &c.Author, &c.Body, &c.ReviewID); err != nil {
		return nil, err
	}
	return &c, nil
}

// scanComments drains rows selected with commentColumns.
func scanComments(rows pgx.Rows) ([]*domain.Comment, error) {
	defer rows.Close()

	comments := make([]*domain.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}
	return comments, nil
}
