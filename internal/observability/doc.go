// Package observability provides logging, metrics and request context
// helpers for the board game reviews service.
//
// # Logging
//
// Create a logger from configuration:
//
//	logger := observability.NewLogger(observability.LoggingConfig{
//	    Level:  "info",
//	    Format: "json",
//	    Output: "stdout",
//	})
//	logger = observability.WithRequestContext(logger, requestID, correlationID)
//
// # Metrics
//
//	metrics := observability.NewMetrics("reviews_service")
//	metrics.RecordHTTPRequest("GET", "/api/reviews", 200, 0.012)
//	metrics.RecordVote("review")
//
// Tests use NewMetricsWithRegistry with a fresh prometheus.Registry.
//
// # Standard Fields
//
//   - request_id: chi request identifier
//   - correlation_id: X-Correlation-ID propagated across services
//   - resource: review, comment, category or user
//   - review_id, comment_id, username, slug: entity identifiers
//
// # Thread Safety
//
// All components are safe for concurrent use from multiple goroutines.
package observability
