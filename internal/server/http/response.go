package httpserver

import (
	"time"

	"github.com/boardgamereviews/reviews-service/internal/domain"
)

type categoryResponse struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type userResponse struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

type reviewSummaryResponse struct {
	Owner        string    `json:"owner"`
	Title        string    `json:"title"`
	ReviewID     int       `json:"review_id"`
	Category     string    `json:"category"`
	ReviewImgURL string    `json:"review_img_url"`
	CreatedAt    time.Time `json:"created_at"`
	Votes        int       `json:"votes"`
	Designer     string    `json:"designer"`
	CommentCount int       `json:"comment_count"`
}

type reviewResponse struct {
	ReviewID     int       `json:"review_id"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Designer     string    `json:"designer"`
	Owner        string    `json:"owner"`
	ReviewBody   string    `json:"review_body"`
	ReviewImgURL string    `json:"review_img_url"`
	CreatedAt    time.Time `json:"created_at"`
	Votes        int       `json:"votes"`
	CommentCount int       `json:"comment_count"`
}

type commentResponse struct {
	CommentID int       `json:"comment_id"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	ReviewID  int       `json:"review_id"`
}

// Envelopes.

type categoriesEnvelope struct {
	Categories []categoryResponse `json:"categories"`
}

type categoryEnvelope struct {
	Category categoryResponse `json:"category"`
}

type usersEnvelope struct {
	Users []userResponse `json:"users"`
}

type userEnvelope struct {
	User userResponse `json:"user"`
}

type reviewsEnvelope struct {
	Reviews    []reviewSummaryResponse `json:"reviews"`
	TotalCount int                     `json:"total_count"`
}

type reviewEnvelope struct {
	Review reviewResponse `json:"review"`
}

type commentsEnvelope struct {
	Comments []commentResponse `json:"comments"`
}

type commentEnvelope struct {
	Comment commentResponse `json:"comment"`
}

type messageResponse struct {
	Msg string `json:"msg"`
}

// Conversion functions.

func categoryToResponse(c *domain.Category) categoryResponse {
	return categoryResponse{Slug: c.Slug, Description: c.Description}
}

func categoriesToResponse(cs []*domain.Category) []categoryResponse {
	out := make([]categoryResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, categoryToResponse(c))
	}
	return out
}

func userToResponse(u *domain.User) userResponse {
	return userResponse{Username: u.Username, Name: u.Name, AvatarURL: u.AvatarURL}
}

func usersToResponse(us []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(us))
	for _, u := range us {
		out = append(out, userToResponse(u))
	}
	return out
}

func reviewSummariesToResponse(rs []*domain.ReviewSummary) []reviewSummaryResponse {
	out := make([]reviewSummaryResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, reviewSummaryResponse{
			Owner:        r.Owner,
			Title:        r.Title,
			ReviewID:     r.ReviewID,
			Category:     r.Category,
			ReviewImgURL: r.ReviewImgURL,
			CreatedAt:    r.CreatedAt,
			Votes:        r.Votes,
			Designer:     r.Designer,
			CommentCount: r.CommentCount,
		})
	}
	return out
}

func reviewToResponse(r *domain.Review) reviewResponse {
	return reviewResponse{
		ReviewID:     r.ReviewID,
		Title:        r.Title,
		Category:     r.Category,
		Designer:     r.Designer,
		Owner:        r.Owner,
		ReviewBody:   r.ReviewBody,
		ReviewImgURL: r.ReviewImgURL,
		CreatedAt:    r.CreatedAt,
		Votes:        r.Votes,
		CommentCount: r.CommentCount,
	}
}

func commentToResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		CommentID: c.CommentID,
		Votes:     c.Votes,
		CreatedAt: c.CreatedAt,
		Author:    c.Author,
		Body:      c.Body,
		ReviewID:  c.ReviewID,
	}
}

func commentsToResponse(cs []*domain.Comment) []commentResponse {
	out := make([]commentResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, commentToResponse(c))
	}
	return out
}
