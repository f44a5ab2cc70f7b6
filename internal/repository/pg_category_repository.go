package repository

import (
	"context"
	"fmt"

	"github.com/boardgamereviews/reviews-service/internal/domain"
)

// Compile-time check that PgCategoryRepository implements CategoryRepository.
var _ CategoryRepository = (*PgCategoryRepository)(nil)

// PgCategoryRepository is a PostgreSQL implementation of CategoryRepository.
type PgCategoryRepository struct {
	db DBTX
}

// NewPgCategoryRepository creates a new PostgreSQL category repository.
func NewPgCategoryRepository(db DBTX) *PgCategoryRepository {
	return &PgCategoryRepository{db: db}
}

// List returns every category ordered by slug.
func (r *PgCategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT slug, description FROM categories ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.Slug, &c.Description); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// Create inserts a new category.
func (r *PgCategoryRepository) Create(ctx context.Context, nc domain.NewCategory) (*domain.Category, error) {
	if err := nc.Validate(); err != nil {
		return nil, err
	}

	var c domain.Category
	err := r.db.QueryRow(ctx,
		`INSERT INTO categories (slug, description) VALUES ($1, $2) RETURNING slug, description`,
		nc.Slug, nc.Description,
	).Scan(&c.Slug, &c.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &c, nil
}
