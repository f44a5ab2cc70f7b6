package repository

import (
	"context"

	"github.com/boardgamereviews/reviews-service/internal/domain"
)

// CategoryRepository defines the interface for category persistence.
type CategoryRepository interface {
	// List returns every category ordered by slug.
	List(ctx context.Context) ([]*domain.Category, error)

	// Create inserts a category and returns the stored row.
	// Returns domain.ErrInvalidInput if slug or description is empty.
	// A duplicate slug is reported as a store error.
	Create(ctx context.Context, c domain.NewCategory) (*domain.Category, error)
}
