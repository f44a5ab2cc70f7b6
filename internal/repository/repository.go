// Package repository provides data access interfaces and PostgreSQL
// implementations for the board game reviews service.
//
// # Repository Interfaces
//
//   - CategoryRepository: category listing and creation
//   - UserRepository: user listing and lookup by username
//   - ReviewRepository: review listing, lookup, creation, voting and the
//     comments attached to a review
//   - CommentRepository: comment lookup, voting and deletion
//
// # Error Handling
//
// All methods return domain errors:
//
//   - domain.ErrNotFound: a referenced row does not exist
//   - domain.ErrInvalidInput: a query parameter or payload failed validation
//
// Store failures are wrapped with fmt.Errorf and %w and carry no domain
// sentinel.
//
// # Transactions
//
// Operations that check references before mutating run inside a single
// transaction when the repository holds a pool. A repository built on a
// pgx.Tx runs them as a savepoint of that transaction.
//
//	db, _ := database.New(ctx, cfg, logger)
//	reviews := repository.NewPgReviewRepository(db)
//	comments := repository.NewPgCommentRepository(db)
package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/boardgamereviews/reviews-service/internal/database"
)

// DBTX is the database interface supporting both pool and transaction contexts.
//
// Repository implementations accept a DBTX in their constructor:
//
//	func NewPgReviewRepository(db DBTX) *PgReviewRepository {
//	    return &PgReviewRepository{db: db}
//	}
//
// Tests pass a pgxmock pool in its place.
type DBTX = database.DBTX

// transactor is implemented by *database.DB, which owns commit, rollback and
// panic handling for the transactions it opens.
type transactor interface {
	WithTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error
}

// inTx runs fn inside a transaction when db can open one, and directly
// against db otherwise. A pgx.Tx or pgxmock pool is a database.Beginner.
func inTx(ctx context.Context, db DBTX, fn func(q DBTX) error) error {
	run := func(tx pgx.Tx) error { return fn(tx) }
	switch d := db.(type) {
	case transactor:
		return d.WithTransaction(ctx, run)
	case database.Beginner:
		return database.RunInTx(ctx, d, run)
	default:
		return fn(db)
	}
}

// pgForeignKeyViolation is the PostgreSQL foreign_key_violation error code.
const pgForeignKeyViolation = "23503"

// isPgForeignKeyViolation reports whether err is a foreign key violation,
// which happens when a referenced row disappears between the existence
// check and the insert.
func isPgForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	return false
}
