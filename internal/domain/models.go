// Package domain provides the domain models, request payloads and error
// types for the board game reviews service.
package domain

import "time"

// DefaultReviewImageURL is the image stored for reviews created without one.
// It matches the column default in the reviews table.
const DefaultReviewImageURL = "https://images.pexels.com/photos/163064/play-stone-network-networked-interactive-163064.jpeg"

// Category groups reviews by game type. Slug is the natural key.
type Category struct {
	Slug        string
	Description string
}

// User is a registered reviewer or commenter.
type User struct {
	Username  string
	Name      string
	AvatarURL string
}

// ReviewSummary is the row shape returned by review listings. It omits the
// review body.
type ReviewSummary struct {
	Owner        string
	Title        string
	ReviewID     int
	Category     string
	ReviewImgURL string
	CreatedAt    time.Time
	Votes        int
	Designer     string
	CommentCount int
}

// Review is the full review record with its aggregated comment count.
type Review struct {
	ReviewID     int
	Title        string
	Category     string
	Designer     string
	Owner        string
	ReviewBody   string
	ReviewImgURL string
	CreatedAt    time.Time
	Votes        int
	CommentCount int
}

// Comment is a single comment attached to a review.
type Comment struct {
	CommentID int
	Votes     int
	CreatedAt time.Time
	Author    string
	Body      string
	ReviewID  int
}
