package repository

import (
	"context"

	"github.com/boardgamereviews/reviews-service/internal/domain"
)

// ReviewRepository defines the interface for review persistence and for the
// comments that belong to a review.
type ReviewRepository interface {
	// List validates params and returns one page of review summaries together
	// with the number of reviews matching the filter before pagination.
	// Validation runs in a fixed order: order, sort_by, category (which must
	// exist), then limit and p.
	// Returns domain.ErrInvalidInput for malformed parameters and
	// domain.ErrNotFound for an unknown category.
	List(ctx context.Context, params domain.ReviewListParams) ([]*domain.ReviewSummary, int, error)

	// Get returns a review with its comment count.
	// Returns domain.ErrNotFound with message "Review Not Found" if it does not exist.
	Get(ctx context.Context, reviewID int) (*domain.Review, error)

	// Create inserts a review after checking its owner and category exist, and
	// returns the stored review.
	Create(ctx context.Context, r domain.NewReview) (*domain.Review, error)

	// UpdateVotes adds delta to the review's votes and returns the updated review.
	// Returns domain.ErrNotFound if the review does not exist.
	UpdateVotes(ctx context.Context, reviewID, delta int) (*domain.Review, error)

	// ListComments returns a page of the review's comments, newest first.
	// Returns domain.ErrNotFound if the review does not exist.
	ListComments(ctx context.Context, reviewID int, page domain.Page) ([]*domain.Comment, error)

	// CreateComment attaches a comment to a review. The review is checked
	// before the author.
	// Returns domain.ErrInvalidInput for an incomplete payload and
	// domain.ErrNotFound if the review or the author does not exist.
	CreateComment(ctx context.Context, reviewID int, c domain.NewComment) (*domain.Comment, error)
}
