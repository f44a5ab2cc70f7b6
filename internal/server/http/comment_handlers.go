package httpserver

import (
	"net/http"
	"strconv"

	"github.com/boardgamereviews/reviews-service/internal/domain"
	"github.com/boardgamereviews/reviews-service/internal/events"
)

const voteTargetComment = "comment"

// patchCommentVotes handles PATCH /api/comments/{comment_id}.
func (s *Server) patchCommentVotes(w http.ResponseWriter, r *http.Request) {
	commentID, err := urlID(r, "comment_id")
	if err != nil {
		s.writeDomainError(w, r, "update_comment_votes", err)
		return
	}

	var req domain.VoteChange
	if err := decodeBody(r, &req); err != nil {
		s.writeDomainError(w, r, "update_comment_votes", err)
		return
	}
	delta, err := req.Delta()
	if err != nil {
		s.writeDomainError(w, r, "update_comment_votes", err)
		return
	}

	comment, err := s.comments.UpdateVotes(r.Context(), commentID, delta)
	if err != nil {
		s.writeDomainError(w, r, "update_comment_votes", err)
		return
	}

	if s.metrics != nil {
		s.metrics.RecordVote(voteTargetComment)
	}
	s.publish(r, events.Params{
		Type:          events.TypeCommentVoted,
		AggregateType: events.AggregateComment,
		AggregateID:   strconv.Itoa(comment.CommentID),
		Payload:       votePayload{Delta: delta, Votes: comment.Votes},
	})

	writeJSON(w, http.StatusOK, commentEnvelope{Comment: commentToResponse(comment)})
}

// deleteComment handles DELETE /api/comments/{comment_id}.
func (s *Server) deleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := urlID(r, "comment_id")
	if err != nil {
		s.writeDomainError(w, r, "delete_comment", err)
		return
	}

	if err := s.comments.Delete(r.Context(), commentID); err != nil {
		s.writeDomainError(w, r, "delete_comment", err)
		return
	}

	if s.metrics != nil {
		s.metrics.RecordCommentDeleted()
	}
	s.publish(r, events.Params{
		Type:          events.TypeCommentDeleted,
		AggregateType: events.AggregateComment,
		AggregateID:   strconv.Itoa(commentID),
		Payload:       map[string]int{"comment_id": commentID},
	})

	w.WriteHeader(http.StatusNoContent)
}
