package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/boardgamereviews/reviews-service/internal/domain"
	"github.com/boardgamereviews/reviews-service/internal/events"
	"github.com/boardgamereviews/reviews-service/internal/observability"
)

const (
	maxRequestBodySize = 1 << 20 // 1 MB limit for request bodies

	msgInternalServerError = "Internal Server Error"
)

// decodeBody reads a size-limited JSON request body into v. An unreadable or
// malformed body is reported as a validation error.
func decodeBody(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodySize))
	if err != nil {
		return domain.NewValidationError("body", "could not be read")
	}
	if err := json.Unmarshal(body, v); err != nil {
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}

// urlID parses a numeric path parameter.
func urlID(r *http.Request, name string) (int, error) {
	return domain.ParseID(name, chi.URLParam(r, name))
}

// writeDomainError maps a domain error to its HTTP status and {"msg"} body.
// Errors that are neither not-found nor invalid-input are logged and
// reported as 500.
func (s *Server) writeDomainError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, domain.NotFoundMessage(err))
	case errors.Is(err, domain.ErrInvalidInput):
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			s.logger.Debug().Str("field", ve.Field).Str("reason", ve.Message).Msg("rejected request")
		}
		writeError(w, http.StatusBadRequest, domain.MsgBadRequest)
	default:
		logger := observability.WithRequestContext(s.logger,
			observability.RequestIDFromContext(r.Context()),
			observability.CorrelationIDFromContext(r.Context()),
		)
		logger.Error().Err(err).Str("operation", operation).Msg("request failed")
		if s.metrics != nil {
			s.metrics.RecordStoreError(operation)
		}
		writeError(w, http.StatusInternalServerError, msgInternalServerError)
	}
}

// publish emits a domain event after a successful write. Failures are logged
// and counted but never reach the client.
func (s *Server) publish(r *http.Request, params events.Params) {
	if s.publisher == nil {
		return
	}

	ctx := context.WithoutCancel(r.Context())
	params.CorrelationID = observability.CorrelationIDFromContext(ctx)

	event, err := events.New(params)
	if err == nil {
		err = s.publisher.Publish(ctx, event)
	}
	if err != nil {
		logger := observability.WithResourceContext(s.logger, params.AggregateType, params.AggregateID)
		logger.Warn().Err(err).Str("event_type", params.Type).Msg("failed to publish event")
		if s.metrics != nil {
			s.metrics.RecordEventFailed(params.Type)
		}
		return
	}

	if s.metrics != nil {
		s.metrics.RecordEventPublished(params.Type)
	}
}
