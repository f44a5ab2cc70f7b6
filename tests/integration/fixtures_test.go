//go:build integration

package integration

import (
	"context"
	"testing"
	"time"
)

var baseTime = time.Date(2021, 1, 1, 9, 0, 0, 0, time.UTC)

// resetFixtures truncates every table and loads a small, known data set:
// four categories (one without reviews), four users, twelve reviews owned
// by mallionaire or bainesface, three comments on review 2 and two on review 3.
// Review n is created n hours after baseTime.
func resetFixtures(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	mustExec(t, ctx, `TRUNCATE TABLE comments, reviews, users, categories RESTART IDENTITY CASCADE`)

	for _, c := range [][2]string{
		{"euro game", "Abstact games that involve little luck"},
		{"social deduction", "Players attempt to uncover each other's hidden role"},
		{"dexterity", "Games involving physical skill"},
		{"children's games", "Games suitable for children"},
	} {
		mustExec(t, ctx, `INSERT INTO categories (slug, description) VALUES ($1, $2)`, c[0], c[1])
	}

	for _, u := range [][3]string{
		{"mallionaire", "haz", "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
		{"philippaclaire9", "philippa", "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
		{"bainesface", "sarah", "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
		{"dav3rid", "dave", "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
	} {
		mustExec(t, ctx, `INSERT INTO users (username, name, avatar_url) VALUES ($1, $2, $3)`, u[0], u[1], u[2])
	}

	for n := 1; n <= 12; n++ {
		category := "social deduction"
		switch {
		case n == 1:
			category = "euro game"
		case n == 4:
			category = "dexterity"
		}
		owner := "mallionaire"
		if n%2 == 0 {
			owner = "bainesface"
		}
		mustExec(t, ctx,
			`INSERT INTO reviews (title, designer, owner, review_body, category, votes, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			"Review "+string(rune('A'+n-1)), "Designer", owner, "Body text", category, n%5, baseTime.Add(time.Duration(n)*time.Hour),
		)
	}

	comments := []struct {
		reviewID int
		author   string
		body     string
		votes    int
	}{
		{2, "bainesface", "I loved this game too!", 16},
		{2, "mallionaire", "My dog loved this game too!", 13},
		{2, "philippaclaire9", "I didn't know dogs could play games", 10},
		{3, "bainesface", "EPIC board game!", 16},
		{3, "mallionaire", "Now this is a story all about how", 5},
	}
	for i, c := range comments {
		mustExec(t, ctx,
			`INSERT INTO comments (review_id, author, body, votes, created_at) VALUES ($1, $2, $3, $4, $5)`,
			c.reviewID, c.author, c.body, c.votes, baseTime.Add(time.Duration(24+i)*time.Hour),
		)
	}
}

func mustExec(t *testing.T, ctx context.Context, sql string, args ...any) {
	t.Helper()
	if _, err := testPool.Exec(ctx, sql, args...); err != nil {
		t.Fatalf("fixture statement failed: %v\n%s", err, sql)
	}
}

func countRows(t *testing.T, sql string, args ...any) int {
	t.Helper()
	var n int
	if err := testPool.QueryRow(context.Background(), sql, args...).Scan(&n); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	return n
}
