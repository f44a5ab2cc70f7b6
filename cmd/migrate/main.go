// Package main provides the CLI that applies the reviews schema migrations.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/boardgamereviews/reviews-service/internal/config"
	"github.com/boardgamereviews/reviews-service/internal/database"
	"github.com/boardgamereviews/reviews-service/internal/observability"
)

// action is the single migration operation requested on the command line.
type action struct {
	kind    string // up, down, steps, version, force
	steps   int
	version int
	path    string
}

var errNoAction = errors.New("no action specified")

func main() {
	act, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if err := run(act); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// parseArgs reads the flags and checks that exactly one action was given.
func parseArgs(args []string, output io.Writer) (action, error) {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.SetOutput(output)

	up := fs.Bool("up", false, "Run all pending migrations")
	down := fs.Bool("down", false, "Roll back all migrations")
	steps := fs.Int("steps", 0, "Run N migration steps (positive=up, negative=down)")
	version := fs.Bool("version", false, "Print the current migration version")
	force := fs.Int("force", -1, "Force set migration version (use to recover from failed migrations)")
	path := fs.String("path", "", "Override the migrations directory path")

	if err := fs.Parse(args); err != nil {
		return action{}, err
	}

	var chosen []action
	if *up {
		chosen = append(chosen, action{kind: "up"})
	}
	if *down {
		chosen = append(chosen, action{kind: "down"})
	}
	if *steps != 0 {
		chosen = append(chosen, action{kind: "steps", steps: *steps})
	}
	if *version {
		chosen = append(chosen, action{kind: "version"})
	}
	if *force >= 0 {
		chosen = append(chosen, action{kind: "force", version: *force})
	}

	switch len(chosen) {
	case 0:
		fs.Usage()
		fmt.Fprintln(output, "\nPlease specify one of: -up, -down, -steps N, -version, -force V")
		return action{}, errNoAction
	case 1:
		act := chosen[0]
		act.path = *path
		return act, nil
	default:
		return action{}, fmt.Errorf("specify only one action at a time")
	}
}

func run(act action) error {
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
	logger = logger.With().Str("component", "migrate").Logger()

	migrationDir := cfg.Database.MigrationPath
	if act.path != "" {
		migrationDir = act.path
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.New(ctx, &cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	migrator, err := database.NewMigrator(db, migrationDir, logger)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer func() {
		if closeErr := migrator.Close(); closeErr != nil {
			logger.Error().Err(closeErr).Msg("failed to close migrator")
		}
	}()

	if err := apply(migrator, act, logger); err != nil {
		return err
	}
	printVersion(migrator, logger)
	return nil
}

func apply(migrator *database.Migrator, act action, logger zerolog.Logger) error {
	switch act.kind {
	case "up":
		logger.Info().Msg("running all pending migrations")
		if err := migrator.Up(); err != nil {
			return fmt.Errorf("migrate up: %w", err)
		}
	case "down":
		logger.Warn().Msg("rolling back all migrations")
		if err := migrator.Down(); err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
	case "steps":
		logger.Info().Int("steps", act.steps).Msg("running migration steps")
		if err := migrator.Steps(act.steps); err != nil {
			return fmt.Errorf("migrate steps: %w", err)
		}
	case "force":
		logger.Warn().Int("version", act.version).Msg("forcing migration version")
		if err := migrator.Force(act.version); err != nil {
			return fmt.Errorf("force version: %w", err)
		}
	case "version":
	default:
		return errNoAction
	}
	return nil
}

// printVersion logs the current migration version.
func printVersion(migrator *database.Migrator, logger zerolog.Logger) {
	v, dirty, err := migrator.Version()
	if err != nil {
		logger.Warn().Err(err).Msg("could not determine migration version")
		return
	}
	logger.Info().
		Uint("version", v).
		Bool("dirty", dirty).
		Msg("current migration version")
}
