// Package events publishes domain events describing successful writes to
// categories, reviews and comments.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event types.
const (
	TypeCategoryCreated = "category.created"
	TypeReviewCreated   = "review.created"
	TypeReviewVoted     = "review.voted"
	TypeCommentCreated  = "comment.created"
	TypeCommentVoted    = "comment.voted"
	TypeCommentDeleted  = "comment.deleted"
)

// Aggregate types.
const (
	AggregateCategory = "category"
	AggregateReview   = "review"
	AggregateComment  = "comment"
)

// Event is the envelope written to the event stream.
type Event struct {
	ID            uuid.UUID       `json:"id"`
	Type          string          `json:"type"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	OccurredAt    time.Time       `json:"occurred_at"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

// Params describes an event to build.
type Params struct {
	Type          string
	AggregateType string
	AggregateID   string
	CorrelationID string
	// Payload is serialized to JSON.
	Payload interface{}
}

// New builds an Event from params.
func New(params Params) (Event, error) {
	if params.Type == "" {
		return Event{}, fmt.Errorf("event type is required")
	}
	if params.AggregateID == "" {
		return Event{}, fmt.Errorf("aggregate id is required")
	}

	payload, err := json.Marshal(params.Payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal payload: %w", err)
	}

	return Event{
		ID:            uuid.New(),
		Type:          params.Type,
		AggregateType: params.AggregateType,
		AggregateID:   params.AggregateID,
		OccurredAt:    time.Now().UTC(),
		CorrelationID: params.CorrelationID,
		Payload:       payload,
	}, nil
}
