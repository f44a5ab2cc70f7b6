package repository

import (
	"context"

	"github.com/boardgamereviews/reviews-service/internal/domain"
)

// CommentRepository defines the interface for operations addressed to a
// single comment. Comments are created and listed through ReviewRepository.
type CommentRepository interface {
	// Get returns a comment by ID.
	// Returns domain.ErrNotFound if the comment does not exist.
	Get(ctx context.Context, commentID int) (*domain.Comment, error)

	// UpdateVotes adds delta to the comment's votes and returns the updated row.
	// Returns domain.ErrNotFound if the comment does not exist.
	UpdateVotes(ctx context.Context, commentID, delta int) (*domain.Comment, error)

	// Delete removes the comment.
	// Returns domain.ErrNotFound if the comment does not exist.
	Delete(ctx context.Context, commentID int) error
}
