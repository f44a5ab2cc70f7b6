package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/boardgamereviews/reviews-service/internal/domain"
)

// Compile-time check that PgReviewRepository implements ReviewRepository.
var _ ReviewRepository = (*PgReviewRepository)(nil)

// sortExpressions maps each sort column onto the SQL expression used in
// ORDER BY. The comment count is ordered by its output alias.
var sortExpressions = map[domain.SortColumn]string{
	domain.SortByOwner:        "r.owner",
	domain.SortByTitle:        "r.title",
	domain.SortByReviewID:     "r.review_id",
	domain.SortByCategory:     "r.category",
	domain.SortByReviewImgURL: "r.review_img_url",
	domain.SortByCreatedAt:    "r.created_at",
	domain.SortByVotes:        "r.votes",
	domain.SortByDesigner:     "r.designer",
	domain.SortByCommentCount: "comment_count",
}

const reviewDetailQuery = `
	SELECT r.review_id, r.title, r.category, r.designer, r.owner, r.review_body,
		r.review_img_url, r.created_at, r.votes, COUNT(c.comment_id)::INT AS comment_count
	FROM reviews r
	LEFT JOIN comments c ON c.review_id = r.review_id
	WHERE r.review_id = $1
	GROUP BY r.review_id`

// PgReviewRepository is a PostgreSQL implementation of ReviewRepository.
type PgReviewRepository struct {
	db DBTX
}

// NewPgReviewRepository creates a new PostgreSQL review repository.
func NewPgReviewRepository(db DBTX) *PgReviewRepository {
	return &PgReviewRepository{db: db}
}

// List validates the listing parameters and runs the filtered, sorted and
// paginated query.
func (r *PgReviewRepository) List(ctx context.Context, params domain.ReviewListParams) ([]*domain.ReviewSummary, int, error) {
	q, err := r.buildQuery(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	var conditions []string
	var args []interface{}
	argIndex := 1

	if q.Category != "" {
		conditions = append(conditions, fmt.Sprintf("r.category = $%d", argIndex))
		args = append(args, q.Category)
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	// Get total count
	var total int
	countQuery := "SELECT COUNT(*) FROM reviews r " + whereClause
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	direction := "DESC"
	if q.Order == domain.SortAsc {
		direction = "ASC"
	}
	orderBy := sortExpressions[q.SortBy] + " " + direction
	if q.SortBy != domain.SortByReviewID {
		orderBy += ", r.review_id " + direction
	}

	query := fmt.Sprintf(`
		SELECT r.owner, r.title, r.review_id, r.category, r.review_img_url,
			r.created_at, r.votes, r.designer, COALESCE(counts.comment_count, 0) AS comment_count
		FROM reviews r
		LEFT JOIN (
			SELECT review_id, COUNT(*)::INT AS comment_count
			FROM comments
			GROUP BY review_id
		) counts ON counts.review_id = r.review_id
		%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, whereClause, orderBy, argIndex, argIndex+1)

	args = append(args, q.Page.Limit, q.Page.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]*domain.ReviewSummary, 0)
	for rows.Next() {
		var s domain.ReviewSummary
		if err := rows.Scan(
			&s.Owner, &s.Title, &s.ReviewID, &s.Category, &s.ReviewImgURL,
			&s.CreatedAt, &s.Votes, &s.Designer, &s.CommentCount,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating reviews: %w", err)
	}

	return reviews, total, nil
}

// buildQuery turns raw listing parameters into a ReviewQuery. The checks run
// in order and the first failure is returned.
func (r *PgReviewRepository) buildQuery(ctx context.Context, params domain.ReviewListParams) (domain.ReviewQuery, error) {
	var q domain.ReviewQuery
	var err error

	if q.Order, err = domain.ParseSortOrder(params.Order); err != nil {
		return q, err
	}
	if q.SortBy, err = domain.ParseSortColumn(params.SortBy); err != nil {
		return q, err
	}
	if params.Category != "" {
		if err := exists(ctx, r.db, categoryBySlug, params.Category); err != nil {
			return q, err
		}
		q.Category = params.Category
	}
	if q.Page, err = domain.ParsePage(params.Limit, params.Page); err != nil {
		return q, err
	}
	return q, nil
}

// Get retrieves a review with its live comment count.
func (r *PgReviewRepository) Get(ctx context.Context, reviewID int) (*domain.Review, error) {
	return getReview(ctx, r.db, reviewID)
}

func getReview(ctx context.Context, q DBTX, reviewID int) (*domain.Review, error) {
	review, err := scanReview(q.QueryRow(ctx, reviewDetailQuery, reviewID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewReviewNotFoundError(reviewID)
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return review, nil
}

// Create inserts a review after checking that its owner and category exist.
// A missing image URL leaves the column default in place.
func (r *PgReviewRepository) Create(ctx context.Context, nr domain.NewReview) (*domain.Review, error) {
	if err := nr.Validate(); err != nil {
		return nil, err
	}

	columns := []string{"owner", "title", "review_body", "designer", "category"}
	args := []interface{}{nr.Owner, nr.Title, nr.ReviewBody, nr.Designer, nr.Category}
	if nr.ReviewImgURL != "" {
		columns = append(columns, "review_img_url")
		args = append(args, nr.ReviewImgURL)
	}
	placeholders := make([]string, len(args))
	for i := range args {
		placeholders[i] = "$" + strconv.Itoa(i+1)
	}
	query := fmt.Sprintf(`INSERT INTO reviews (%s) VALUES (%s) RETURNING review_id`,
		strings.Join(columns, ", "), strings.Join(placeholders, ", "))

	var created *domain.Review
	err := inTx(ctx, r.db, func(q DBTX) error {
		if err := exists(ctx, q, userByName, nr.Owner); err != nil {
			return err
		}
		if err := exists(ctx, q, categoryBySlug, nr.Category); err != nil {
			return err
		}

		var reviewID int
		if err := q.QueryRow(ctx, query, args...).Scan(&reviewID); err != nil {
			if isPgForeignKeyViolation(err) {
				return domain.NewNotFoundError("review reference", nr.Owner+"/"+nr.Category)
			}
			return fmt.Errorf("failed to create review: %w", err)
		}

		review, err := getReview(ctx, q, reviewID)
		if err != nil {
			return err
		}
		created = review
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateVotes applies a relative vote change and returns the review with its
// comment count re-attached.
func (r *PgReviewRepository) UpdateVotes(ctx context.Context, reviewID, delta int) (*domain.Review, error) {
	var updated *domain.Review
	err := inTx(ctx, r.db, func(q DBTX) error {
		if err := exists(ctx, q, reviewByID, reviewID); err != nil {
			return err
		}

		review, err := scanReview(q.QueryRow(ctx, `
			WITH updated AS (
				UPDATE reviews SET votes = votes + $1
				WHERE review_id = $2
				RETURNING review_id, title, category, designer, owner, review_body,
					review_img_url, created_at, votes
			)
			SELECT u.review_id, u.title, u.category, u.designer, u.owner, u.review_body,
				u.review_img_url, u.created_at, u.votes,
				(SELECT COUNT(*)::INT FROM comments c WHERE c.review_id = u.review_id) AS comment_count
			FROM updated u`,
			delta, reviewID,
		))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.NewNotFoundError("review", strconv.Itoa(reviewID))
			}
			return fmt.Errorf("failed to update review votes: %w", err)
		}
		updated = review
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ListComments returns one page of a review's comments, newest first.
func (r *PgReviewRepository) ListComments(ctx context.Context, reviewID int, page domain.Page) ([]*domain.Comment, error) {
	if err := exists(ctx, r.db, reviewByID, reviewID); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+commentColumns+`
		FROM comments
		WHERE review_id = $1
		ORDER BY created_at DESC, comment_id DESC
		LIMIT $2 OFFSET $3`,
		reviewID, page.Limit, page.Offset(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return scanComments(rows)
}

// CreateComment validates the payload, checks the review and then the
// author, and inserts the comment with zero votes.
func (r *PgReviewRepository) CreateComment(ctx context.Context, reviewID int, nc domain.NewComment) (*domain.Comment, error) {
	if err := nc.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Comment
	err := inTx(ctx, r.db, func(q DBTX) error {
		if err := exists(ctx, q, reviewByID, reviewID); err != nil {
			return err
		}
		if err := exists(ctx, q, userByName, nc.Username); err != nil {
			return err
		}

		c, err := scanComment(q.QueryRow(ctx, `
			INSERT INTO comments (review_id, author, body, votes, created_at)
			VALUES ($1, $2, $3, 0, NOW())
			RETURNING `+commentColumns,
			reviewID, nc.Username, nc.Body,
		))
		if err != nil {
			if isPgForeignKeyViolation(err) {
				return domain.NewNotFoundError("comment reference", nc.Username)
			}
			return fmt.Errorf("failed to create comment: %w", err)
		}
		created = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// scanReview scans a review detail row including comment_count.
func scanReview(row pgx.Row) (*domain.Review, error) {
	var rv domain.Review
	if err := row.Scan(
		&rv.ReviewID, &rv.Title, &rv.Category, &rv.Designer, &rv.Owner, &rv.ReviewBody,
		&rv.ReviewImgURL, &rv.CreatedAt, &rv.Votes, &rv.CommentCount,
	); err != nil {
		return nil, err
	}
	return &rv, nil
}
