package events

import (
	"context"

	"github.com/rs/zerolog"
)

// Publisher delivers events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// LogPublisher writes events to the log instead of a broker. It is used
// when Kafka is disabled.
type LogPublisher struct {
	logger zerolog.Logger
}

// NewLogPublisher creates a LogPublisher.
func NewLogPublisher(logger zerolog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With().Str("component", "event_log_publisher").Logger()}
}

// Publish logs the event at debug level.
func (p *LogPublisher) Publish(_ context.Context, event Event) error {
	p.logger.Debug().
		Str("event_id", event.ID.String()).
		Str("event_type", event.Type).
		Str("aggregate_id", event.AggregateID).
		RawJSON("payload", event.Payload).
		Msg("event emitted")
	return nil
}

// Close is a no-op.
func (p *LogPublisher) Close() error {
	return nil
}
