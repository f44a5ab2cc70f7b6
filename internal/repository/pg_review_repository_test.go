package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boardgamereviews/reviews-service/internal/domain"
)

var (
	summaryColumns = []string{
		"owner", "title", "review_id", "category", "review_img_url",
		"created_at", "votes", "designer", "comment_count",
	}
	reviewColumns = []string{
		"review_id", "title", "category", "designer", "owner", "review_body",
		"review_img_url", "created_at", "votes", "comment_count",
	}
)

func expectExists(mock pgxmock.PgxPoolIface, table, column string, value any, found bool) {
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM "` + table + `" WHERE "` + column + `" = \$1\)`).
		WithArgs(value).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(found))
}

func newReviewRow(id, votes, comments int) *pgxmock.Rows {
	return pgxmock.NewRows(reviewColumns).AddRow(
		id, "Jenga", "dexterity", "Leslie Scott", "philippaclaire9", "Fiddly fun for all the family",
		domain.DefaultReviewImageURL, time.Date(2021, 1, 18, 10, 1, 41, 0, time.UTC), votes, comments,
	)
}

func TestNewPgReviewRepository(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPgReviewRepository(mock)
	assert.NotNil(t, repo)
}

func TestPgReviewRepository_List(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2021, 1, 18, 10, 0, 20, 0, time.UTC)

	t.Run("defaults to created_at descending with first page of ten", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reviews r`).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(13))
		mock.ExpectQuery(`LEFT JOIN \( SELECT review_id, COUNT\(\*\)::INT AS comment_count FROM comments GROUP BY review_id \) counts .* ORDER BY r\.created_at DESC, r\.review_id DESC LIMIT \$1 OFFSET \$2`).
			WithArgs(10, 0).
			WillReturnRows(pgxmock.NewRows(summaryColumns).
				AddRow("mallionaire", "Agricola", 1, "euro game", domain.DefaultReviewImageURL, createdAt, 1, "Uwe Rosenberg", 0).
				AddRow("bainesface", "Jenga", 2, "dexterity", domain.DefaultReviewImageURL, createdAt, 5, "Leslie Scott", 3))

		reviews, total, err := repo.List(ctx, domain.ReviewListParams{})
		require.NoError(t, err)
		assert.Equal(t, 13, total)
		require.Len(t, reviews, 2)
		assert.Equal(t, "Agricola", reviews[0].Title)
		assert.Equal(t, 0, reviews[0].CommentCount)
		assert.Equal(t, 3, reviews[1].CommentCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("filters by existing category with a bound parameter", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		expectExists(mock, "categories", "slug", "social deduction", true)
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reviews r WHERE r\.category = \$1`).
			WithArgs("social deduction").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(`WHERE r\.category = \$1 ORDER BY r\.votes ASC, r\.review_id ASC LIMIT \$2 OFFSET \$3`).
			WithArgs("social deduction", 10, 0).
			WillReturnRows(pgxmock.NewRows(summaryColumns).
				AddRow("bainesface", "Ultimate Werewolf", 3, "social deduction", domain.DefaultReviewImageURL, createdAt, 5, "Akihisa Okui", 3))

		reviews, total, err := repo.List(ctx, domain.ReviewListParams{
			Category: "social deduction",
			SortBy:   "votes",
			Order:    "ASC",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, reviews, 1)
		assert.Equal(t, "social deduction", reviews[0].Category)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("known category without reviews is an empty success", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		expectExists(mock, "categories", "slug", "children's games", true)
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reviews r WHERE r\.category = \$1`).
			WithArgs("children's games").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`ORDER BY`).
			WithArgs("children's games", 10, 0).
			WillReturnRows(pgxmock.NewRows(summaryColumns))

		reviews, total, err := repo.List(ctx, domain.ReviewListParams{Category: "children's games"})
		require.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.NotNil(t, reviews)
		assert.Empty(t, reviews)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second page of five by review_id ascending", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		rows := pgxmock.NewRows(summaryColumns)
		for id := 6; id <= 10; id++ {
			rows.AddRow("mallionaire", "Game", id, "strategy", domain.DefaultReviewImageURL, createdAt, 0, "Someone", 0)
		}

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reviews r`).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(13))
		mock.ExpectQuery(`ORDER BY r\.review_id ASC LIMIT \$1 OFFSET \$2`).
			WithArgs(5, 5).
			WillReturnRows(rows)

		reviews, _, err := repo.List(ctx, domain.ReviewListParams{
			SortBy: "review_id",
			Order:  "asc",
			Limit:  "5",
			Page:   "2",
		})
		require.NoError(t, err)
		require.Len(t, reviews, 5)
		for i, rv := range reviews {
			assert.Equal(t, 6+i, rv.ReviewID)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sorts by comment_count alias", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reviews r`).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`ORDER BY comment_count DESC, r\.review_id DESC`).
			WithArgs(10, 0).
			WillReturnRows(pgxmock.NewRows(summaryColumns))

		_, _, err = repo.List(ctx, domain.ReviewListParams{SortBy: "comment_count"})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid order fails before anything else", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		_, _, err = repo.List(ctx, domain.ReviewListParams{
			Order:    "sideways",
			SortBy:   "not_a_column",
			Category: "no-such-category",
		})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "order", verr.Field)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid sort_by is rejected without querying", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		_, _, err = repo.List(ctx, domain.ReviewListParams{SortBy: "votes; DROP TABLE reviews"})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "sort_by", verr.Field)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown category is not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		expectExists(mock, "categories", "slug", "bananas", false)

		_, _, err = repo.List(ctx, domain.ReviewListParams{Category: "bananas", Limit: "many"})
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Equal(t, domain.MsgResourceNotFound, domain.NotFoundMessage(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid limit is rejected after the category check", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		expectExists(mock, "categories", "slug", "dexterity", true)

		_, _, err = repo.List(ctx, domain.ReviewListParams{Category: "dexterity", Limit: "many"})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "limit", verr.Field)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps count errors", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reviews r`).
			WillReturnError(errors.New("connection refused"))

		_, _, err = repo.List(ctx, domain.ReviewListParams{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to count reviews")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPgReviewRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns review with comment count", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		mock.ExpectQuery(`SELECT .* COUNT\(c\.comment_id\)::INT AS comment_count FROM reviews r LEFT JOIN comments c ON c\.review_id = r\.review_id WHERE r\.review_id = \$1 GROUP BY r\.review_id`).
			WithArgs(2).
			WillReturnRows(newReviewRow(2, 5, 3))

		review, err := repo.Get(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, review.ReviewID)
		assert.Equal(t, "Jenga", review.Title)
		assert.Equal(t, "Fiddly fun for all the family", review.ReviewBody)
		assert.Equal(t, 3, review.CommentCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns review not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		mock.ExpectQuery(`FROM reviews r`).
			WithArgs(9999).
			WillReturnError(pgx.ErrNoRows)

		review, err := repo.Get(ctx, 9999)
		assert.Nil(t, review)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Equal(t, domain.MsgReviewNotFound, domain.NotFoundMessage(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPgReviewRepository_UpdateVotes(t *testing.T) {
	ctx := context.Background()

	t.Run("applies a relative unclamped increment", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		mock.ExpectBegin()
		expectExists(mock, "reviews", "review_id", 1, true)
		mock.ExpectQuery(`WITH updated AS \( UPDATE reviews SET votes = votes \+ \$1 WHERE review_id = \$2 RETURNING .*\) SELECT .* FROM updated u`).
			WithArgs(-100, 1).
			WillReturnRows(newReviewRow(1, -99, 0))
		mock.ExpectCommit()

		review, err := repo.UpdateVotes(ctx, 1, -100)
		require.NoError(t, err)
		assert.Equal(t, -99, review.Votes)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing review is not found and rolls back", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		mock.ExpectBegin()
		expectExists(mock, "reviews", "review_id", 9999, false)
		mock.ExpectRollback()

		review, err := repo.UpdateVotes(ctx, 9999, 1)
		assert.Nil(t, review)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("row vanishing after the check is not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		mock.ExpectBegin()
		expectExists(mock, "reviews", "review_id", 4, true)
		mock.ExpectQuery(`WITH updated AS`).
			WithArgs(1, 4).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()

		_, err = repo.UpdateVotes(ctx, 4, 1)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPgReviewRepository_Create(t *testing.T) {
	ctx := context.Background()

	newReview := domain.NewReview{
		Owner:      "philippaclaire9",
		Title:      "Jenga",
		ReviewBody: "Fiddly fun for all the family",
		Designer:   "Leslie Scott",
		Category:   "dexterity",
	}

	t.Run("inserts without image url and re-reads the review", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		mock.ExpectBegin()
		expectExists(mock, "users", "username", "philippaclaire9", true)
		expectExists(mock, "categories", "slug", "dexterity", true)
		mock.ExpectQuery(`INSERT INTO reviews \(owner, title, review_body, designer, category\) VALUES \(\$1, \$2, \$3, \$4, \$5\) RETURNING review_id`).
			WithArgs("philippaclaire9", "Jenga", "Fiddly fun for all the family", "Leslie Scott", "dexterity").
			WillReturnRows(pgxmock.NewRows([]string{"review_id"}).AddRow(14))
		mock.ExpectQuery(`WHERE r\.review_id = \$1 GROUP BY r\.review_id`).
			WithArgs(14).
			WillReturnRows(newReviewRow(14, 0, 0))
		mock.ExpectCommit()

		review, err := repo.Create(ctx, newReview)
		require.NoError(t, err)
		assert.Equal(t, 14, review.ReviewID)
		assert.Equal(t, 0, review.CommentCount)
		assert.Equal(t, domain.DefaultReviewImageURL, review.ReviewImgURL)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("includes image url when given", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)
		withImage := newReview
		withImage.ReviewImgURL = "https://example.com/jenga.png"

		mock.ExpectBegin()
		expectExists(mock, "users", "username", "philippaclaire9", true)
		expectExists(mock, "categories", "slug", "dexterity", true)
		mock.ExpectQuery(`INSERT INTO reviews \(owner, title, review_body, designer, category, review_img_url\) VALUES \(\$1, \$2, \$3, \$4, \$5, \$6\)`).
			WithArgs("philippaclaire9", "Jenga", "Fiddly fun for all the family", "Leslie Scott", "dexterity", "https://example.com/jenga.png").
			WillReturnRows(pgxmock.NewRows([]string{"review_id"}).AddRow(14))
		mock.ExpectQuery(`FROM reviews r`).
			WithArgs(14).
			WillReturnRows(newReviewRow(14, 0, 0))
		mock.ExpectCommit()

		_, err = repo.Create(ctx, withImage)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing field is invalid input", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)
		incomplete := newReview
		incomplete.Title = ""

		_, err = repo.Create(ctx, incomplete)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown owner is not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		mock.ExpectBegin()
		expectExists(mock, "users", "username", "philippaclaire9", false)
		mock.ExpectRollback()

		_, err = repo.Create(ctx, newReview)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown category is not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		mock.ExpectBegin()
		expectExists(mock, "users", "username", "philippaclaire9", true)
		expectExists(mock, "categories", "slug", "dexterity", false)
		mock.ExpectRollback()

		_, err = repo.Create(ctx, newReview)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPgReviewRepository_ListComments(t *testing.T) {
	ctx := context.Background()
	commentCols := []string{"comment_id", "votes", "created_at", "author", "body", "review_id"}

	t.Run("returns comments newest first", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)
		newer := time.Date(2021, 3, 27, 19, 49, 48, 0, time.UTC)
		older := time.Date(2017, 11, 22, 12, 43, 33, 0, time.UTC)

		expectExists(mock, "reviews", "review_id", 2, true)
		mock.ExpectQuery(`FROM comments WHERE review_id = \$1 ORDER BY created_at DESC, comment_id DESC LIMIT \$2 OFFSET \$3`).
			WithArgs(2, 10, 0).
			WillReturnRows(pgxmock.NewRows(commentCols).
				AddRow(5, 13, newer, "mallionaire", "Now this is a story all about how", 2).
				AddRow(1, 16, older, "bainesface", "I loved this game too!", 2))

		comments, err := repo.ListComments(ctx, 2, domain.Page{Limit: 10, Number: 1})
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, 5, comments[0].CommentID)
		assert.True(t, comments[0].CreatedAt.After(comments[1].CreatedAt))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("review without comments yields empty slice", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		expectExists(mock, "reviews", "review_id", 1, true)
		mock.ExpectQuery(`FROM comments`).
			WithArgs(1, 10, 0).
			WillReturnRows(pgxmock.NewRows(commentCols))

		comments, err := repo.ListComments(ctx, 1, domain.Page{Limit: 10, Number: 1})
		require.NoError(t, err)
		assert.NotNil(t, comments)
		assert.Empty(t, comments)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown review is not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		expectExists(mock, "reviews", "review_id", 9999, false)

		_, err = repo.ListComments(ctx, 9999, domain.Page{Limit: 10, Number: 1})
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPgReviewRepository_CreateComment(t *testing.T) {
	ctx := context.Background()
	commentCols := []string{"comment_id", "votes", "created_at", "author", "body", "review_id"}

	t.Run("inserts comment with zero votes", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)
		now := time.Now().UTC()

		mock.ExpectBegin()
		expectExists(mock, "reviews", "review_id", 1, true)
		expectExists(mock, "users", "username", "mallionaire", true)
		mock.ExpectQuery(`INSERT INTO comments \(review_id, author, body, votes, created_at\) VALUES \(\$1, \$2, \$3, 0, NOW\(\)\) RETURNING comment_id`).
			WithArgs(1, "mallionaire", "Great game").
			WillReturnRows(pgxmock.NewRows(commentCols).AddRow(7, 0, now, "mallionaire", "Great game", 1))
		mock.ExpectCommit()

		comment, err := repo.CreateComment(ctx, 1, domain.NewComment{Username: "mallionaire", Body: "Great game"})
		require.NoError(t, err)
		assert.Equal(t, 7, comment.CommentID)
		assert.Equal(t, 0, comment.Votes)
		assert.Equal(t, "mallionaire", comment.Author)
		assert.Equal(t, 1, comment.ReviewID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("incomplete payload is invalid input", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		_, err = repo.CreateComment(ctx, 1, domain.NewComment{Username: "mallionaire"})
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown review wins over unknown user", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		mock.ExpectBegin()
		expectExists(mock, "reviews", "review_id", 9999, false)
		mock.ExpectRollback()

		_, err = repo.CreateComment(ctx, 9999, domain.NewComment{Username: "ghost", Body: "boo"})
		var nf *domain.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "review", nf.Entity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		mock.ExpectBegin()
		expectExists(mock, "reviews", "review_id", 1, true)
		expectExists(mock, "users", "username", "ghost", false)
		mock.ExpectRollback()

		_, err = repo.CreateComment(ctx, 1, domain.NewComment{Username: "ghost", Body: "boo"})
		var nf *domain.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "user", nf.Entity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("foreign key violation after the checks is not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPgReviewRepository(mock)

		mock.ExpectBegin()
		expectExists(mock, "reviews", "review_id", 1, true)
		expectExists(mock, "users", "username", "mallionaire", true)
		mock.ExpectQuery(`INSERT INTO comments`).
			WithArgs(1, "mallionaire", "Great game").
			WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})
		mock.ExpectRollback()

		_, err = repo.CreateComment(ctx, 1, domain.NewComment{Username: "mallionaire", Body: "Great game"})
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
