package repository

import (
	"context"

	"github.com/boardgamereviews/reviews-service/internal/domain"
)

// UserRepository defines the interface for user lookups.
type UserRepository interface {
	// List returns every user ordered by username.
	List(ctx context.Context) ([]*domain.User, error)

	// Get returns the user with the given username.
	// Returns domain.ErrNotFound if no such user exists.
	Get(ctx context.Context, username string) (*domain.User, error)
}
