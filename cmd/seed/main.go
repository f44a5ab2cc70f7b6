// Package main seeds a development database with generated board game reviews.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/boardgamereviews/reviews-service/internal/config"
	"github.com/boardgamereviews/reviews-service/internal/database"
	"github.com/boardgamereviews/reviews-service/internal/observability"
	"github.com/boardgamereviews/reviews-service/internal/seed"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	defaults := seed.DefaultOptions()
	users := flag.Int("users", defaults.Users, "Number of users to create")
	reviews := flag.Int("reviews", defaults.Reviews, "Number of reviews to create")
	comments := flag.Int("max-comments", defaults.MaxCommentsPerReview, "Maximum comments per review")
	seedValue := flag.Int64("seed", 0, "Random seed (0 = random)")
	clean := flag.Bool("clean", true, "Clear all tables before seeding")
	migrateFirst := flag.Bool("migrate", false, "Apply pending migrations before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := observability.NewLogger(observability.LoggingConfig{
		Level:      "info",
		Format:     "console",
		Output:     "stdout",
		TimeFormat: time.RFC3339,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(ctx, &cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	if *migrateFirst {
		migrator, err := database.NewMigrator(db, cfg.Database.MigrationPath, logger)
		if err != nil {
			return fmt.Errorf("create migrator: %w", err)
		}
		upErr := migrator.Up()
		if closeErr := migrator.Close(); closeErr != nil {
			logger.Error().Err(closeErr).Msg("failed to close migrator")
		}
		if upErr != nil {
			return fmt.Errorf("run migrations: %w", upErr)
		}
	}

	seeder := seed.NewSeeder(db, seed.Options{
		Users:                *users,
		Reviews:              *reviews,
		MaxCommentsPerReview: *comments,
		Seed:                 *seedValue,
	}, logger)

	if *clean {
		if err := seeder.Clear(ctx); err != nil {
			return err
		}
	}

	if _, err := seeder.Run(ctx); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}
