package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/boardgamereviews/reviews-service/internal/domain"
)

// existenceTarget names a table column whose values other rows refer to.
// Only the targets declared below exist, so identifiers never come from
// request input.
type existenceTarget struct {
	entity string
	table  string
	column string
}

var (
	reviewByID     = existenceTarget{entity: "review", table: "reviews", column: "review_id"}
	commentByID    = existenceTarget{entity: "comment", table: "comments", column: "comment_id"}
	userByName     = existenceTarget{entity: "user", table: "users", column: "username"}
	categoryBySlug = existenceTarget{entity: "category", table: "categories", column: "slug"}
)

func (t existenceTarget) query() string {
	return fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)",
		pq.QuoteIdentifier(t.table), pq.QuoteIdentifier(t.column))
}

// exists returns a domain.NotFoundError when no row of target has value.
func exists(ctx context.Context, db DBTX, target existenceTarget, value any) error {
	var found bool
	if err := db.QueryRow(ctx, target.query(), value).Scan(&found); err != nil {
		return fmt.Errorf("failed to check %s existence: %w", target.entity, err)
	}
	if !found {
		return domain.NewNotFoundError(target.entity, fmt.Sprint(value))
	}
	return nil
}
