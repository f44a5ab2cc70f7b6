package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/boardgamereviews/reviews-service/internal/domain"
	"github.com/boardgamereviews/reviews-service/internal/events"
)

const voteTargetReview = "review"

// listReviews handles GET /api/reviews.
// Query parameters: sort_by, order, category, limit, p.
func (s *Server) listReviews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := domain.ReviewListParams{
		SortBy:   q.Get("sort_by"),
		Order:    q.Get("order"),
		Category: q.Get("category"),
		Limit:    q.Get("limit"),
		Page:     q.Get("p"),
	}

	reviews, total, err := s.reviews.List(r.Context(), params)
	if err != nil {
		s.writeDomainError(w, r, "list_reviews", err)
		return
	}

	writeJSON(w, http.StatusOK, reviewsEnvelope{
		Reviews:    reviewSummariesToResponse(reviews),
		TotalCount: total,
	})
}

// getReview handles GET /api/reviews/{review_id}.
func (s *Server) getReview(w http.ResponseWriter, r *http.Request) {
	reviewID, err := urlID(r, "review_id")
	if err != nil {
		var nf *domain.NotFoundError
		if errors.As(err, &nf) {
			nf.Message = domain.MsgReviewNotFound
		}
		s.writeDomainError(w, r, "get_review", err)
		return
	}

	review, err := s.reviews.Get(r.Context(), reviewID)
	if err != nil {
		s.writeDomainError(w, r, "get_review", err)
		return
	}

	writeJSON(w, http.StatusOK, reviewEnvelope{Review: reviewToResponse(review)})
}

// createReview handles POST /api/reviews.
func (s *Server) createReview(w http.ResponseWriter, r *http.Request) {
	var req domain.NewReview
	if err := decodeBody(r, &req); err != nil {
		s.writeDomainError(w, r, "create_review", err)
		return
	}

	review, err := s.reviews.Create(r.Context(), req)
	if err != nil {
		s.writeDomainError(w, r, "create_review", err)
		return
	}

	resp := reviewToResponse(review)
	if s.metrics != nil {
		s.metrics.RecordReviewCreated()
	}
	s.publish(r, events.Params{
		Type:          events.TypeReviewCreated,
		AggregateType: events.AggregateReview,
		AggregateID:   strconv.Itoa(review.ReviewID),
		Payload:       resp,
	})

	writeJSON(w, http.StatusCreated, reviewEnvelope{Review: resp})
}

// patchReviewVotes handles PATCH /api/reviews/{review_id}.
// The body must carry an integer inc_votes.
func (s *Server) patchReviewVotes(w http.ResponseWriter, r *http.Request) {
	reviewID, err := urlID(r, "review_id")
	if err != nil {
		s.writeDomainError(w, r, "update_review_votes", err)
		return
	}

	var req domain.VoteChange
	if err := decodeBody(r, &req); err != nil {
		s.writeDomainError(w, r, "update_review_votes", err)
		return
	}
	delta, err := req.Delta()
	if err != nil {
		s.writeDomainError(w, r, "update_review_votes", err)
		return
	}

	review, err := s.reviews.UpdateVotes(r.Context(), reviewID, delta)
	if err != nil {
		s.writeDomainError(w, r, "update_review_votes", err)
		return
	}

	resp := reviewToResponse(review)
	if s.metrics != nil {
		s.metrics.RecordVote(voteTargetReview)
	}
	s.publish(r, events.Params{
		Type:          events.TypeReviewVoted,
		AggregateType: events.AggregateReview,
		AggregateID:   strconv.Itoa(review.ReviewID),
		Payload:       votePayload{Delta: delta, Votes: review.Votes},
	})

	writeJSON(w, http.StatusOK, reviewEnvelope{Review: resp})
}

// listReviewComments handles GET /api/reviews/{review_id}/comments.
// Query parameters: limit, p.
func (s *Server) listReviewComments(w http.ResponseWriter, r *http.Request) {
	reviewID, err := urlID(r, "review_id")
	if err != nil {
		s.writeDomainError(w, r, "list_comments", err)
		return
	}

	page, err := domain.ParsePage(r.URL.Query().Get("limit"), r.URL.Query().Get("p"))
	if err != nil {
		s.writeDomainError(w, r, "list_comments", err)
		return
	}

	comments, err := s.reviews.ListComments(r.Context(), reviewID, page)
	if err != nil {
		s.writeDomainError(w, r, "list_comments", err)
		return
	}

	writeJSON(w, http.StatusOK, commentsEnvelope{Comments: commentsToResponse(comments)})
}

// createReviewComment handles POST /api/reviews/{review_id}/comments.
func (s *Server) createReviewComment(w http.ResponseWriter, r *http.Request) {
	reviewID, err := urlID(r, "review_id")
	if err != nil {
		s.writeDomainError(w, r, "create_comment", err)
		return
	}

	var req domain.NewComment
	if err := decodeBody(r, &req); err != nil {
		s.writeDomainError(w, r, "create_comment", err)
		return
	}

	comment, err := s.reviews.CreateComment(r.Context(), reviewID, req)
	if err != nil {
		s.writeDomainError(w, r, "create_comment", err)
		return
	}

	resp := commentToResponse(comment)
	if s.metrics != nil {
		s.metrics.RecordCommentCreated()
	}
	s.publish(r, events.Params{
		Type:          events.TypeCommentCreated,
		AggregateType: events.AggregateComment,
		AggregateID:   strconv.Itoa(comment.CommentID),
		Payload:       resp,
	})

	writeJSON(w, http.StatusCreated, commentEnvelope{Comment: resp})
}

// votePayload is the event body for vote changes.
type votePayload struct {
	Delta int `json:"delta"`
	Votes int `json:"votes"`
}
