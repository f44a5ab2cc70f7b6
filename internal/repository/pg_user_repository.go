package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/boardgamereviews/reviews-service/internal/domain"
)

// Compile-time check that PgUserRepository implements UserRepository.
var _ UserRepository = (*PgUserRepository)(nil)

// PgUserRepository is a PostgreSQL implementation of UserRepository.
type PgUserRepository struct {
	db DBTX
}

// NewPgUserRepository creates a new PostgreSQL user repository.
func NewPgUserRepository(db DBTX) *PgUserRepository {
	return &PgUserRepository{db: db}
}

// List returns every user ordered by username.
func (r *PgUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT username, name, avatar_url FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.Username, &u.Name, &u.AvatarURL); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// Get returns a single user after confirming the username exists.
func (r *PgUserRepository) Get(ctx context.Context, username string) (*domain.User, error) {
	if err := exists(ctx, r.db, userByName, username); err != nil {
		return nil, err
	}

	var u domain.User
	err := r.db.QueryRow(ctx,
		`SELECT username, name, avatar_url FROM users WHERE username = $1`, username,
	).Scan(&u.Username, &u.Name, &u.AvatarURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("user", username)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}
