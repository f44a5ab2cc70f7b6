// Package seed fills a development database with categories, users, reviews
// and comments. Everything except users is written through the repositories.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/boardgamereviews/reviews-service/internal/repository"
)

// Options controls how much data a seed run creates.
type Options struct {
	Users                int
	Reviews              int
	MaxCommentsPerReview int
	// Seed makes runs reproducible. Zero picks a random seed.
	Seed int64
}

// DefaultOptions returns a small data set suitable for local development.
func DefaultOptions() Options {
	return Options{Users: 8, Reviews: 25, MaxCommentsPerReview: 5}
}

// Summary reports what a seed run created.
type Summary struct {
	Categories int
	Users      int
	Reviews    int
	Comments   int
}

// Seeder writes generated data to the database.
type Seeder struct {
	db         repository.DBTX
	categories repository.CategoryRepository
	reviews    repository.ReviewRepository
	comments   repository.CommentRepository
	factory    *Factory
	opts       Options
	logger     zerolog.Logger
}

// NewSeeder creates a Seeder bound to db.
func NewSeeder(db repository.DBTX, opts Options, logger zerolog.Logger) *Seeder {
	return &Seeder{
		db:         db,
		categories: repository.NewPgCategoryRepository(db),
		reviews:    repository.NewPgReviewRepository(db),
		comments:   repository.NewPgCommentRepository(db),
		factory:    NewFactory(opts.Seed),
		opts:       opts,
		logger:     logger.With().Str("component", "seed").Logger(),
	}
}

// Clear removes every row and resets the id sequences.
func (s *Seeder) Clear(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, `TRUNCATE TABLE comments, reviews, users, categories RESTART IDENTITY CASCADE`); err != nil {
		return fmt.Errorf("failed to clear tables: %w", err)
	}
	s.logger.Info().Msg("cleared all tables")
	return nil
}

// Run creates the configured data set.
func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	if s.opts.Users < 1 {
		return sum, fmt.Errorf("at least one user is required")
	}

	slugs := make([]string, 0, len(categories))
	for _, nc := range categories {
		c, err := s.categories.Create(ctx, nc)
		if err != nil {
			return sum, fmt.Errorf("seed category %q: %w", nc.Slug, err)
		}
		slugs = append(slugs, c.Slug)
		sum.Categories++
	}

	usernames := make([]string, 0, s.opts.Users)
	for i := 0; i < s.opts.Users; i++ {
		u := s.factory.User()
		if _, err := s.db.Exec(ctx,
			`INSERT INTO users (username, name, avatar_url) VALUES ($1, $2, $3)`,
			u.Username, u.Name, u.AvatarURL,
		); err != nil {
			return sum, fmt.Errorf("seed user %q: %w", u.Username, err)
		}
		usernames = append(usernames, u.Username)
		sum.Users++
	}

	for i := 0; i < s.opts.Reviews; i++ {
		owner := usernames[s.factory.Pick(len(usernames))]
		category := slugs[s.factory.Pick(len(slugs))]

		review, err := s.reviews.Create(ctx, s.factory.Review(owner, category))
		if err != nil {
			return sum, fmt.Errorf("seed review %d: %w", i+1, err)
		}
		sum.Reviews++

		if delta := s.factory.Votes(-3, 25); delta != 0 {
			if _, err := s.reviews.UpdateVotes(ctx, review.ReviewID, delta); err != nil {
				return sum, fmt.Errorf("seed votes for review %d: %w", review.ReviewID, err)
			}
		}

		if s.opts.MaxCommentsPerReview <= 0 {
			continue
		}
		for n := s.factory.Votes(0, s.opts.MaxCommentsPerReview); n > 0; n-- {
			author := usernames[s.factory.Pick(len(usernames))]
			comment, err := s.reviews.CreateComment(ctx, review.ReviewID, s.factory.Comment(author))
			if err != nil {
				return sum, fmt.Errorf("seed comment on review %d: %w", review.ReviewID, err)
			}
			sum.Comments++

			if delta := s.factory.Votes(0, 20); delta != 0 {
				if _, err := s.comments.UpdateVotes(ctx, comment.CommentID, delta); err != nil {
					return sum, fmt.Errorf("seed votes for comment %d: %w", comment.CommentID, err)
				}
			}
		}
	}

	s.logger.Info().
		Int("categories", sum.Categories).
		Int("users", sum.Users).
		Int("reviews", sum.Reviews).
		Int("comments", sum.Comments).
		Msg("seed complete")

	return sum, nil
}
