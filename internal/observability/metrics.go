package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains the Prometheus metrics for the reviews service, grouped
// into HTTP traffic, domain writes, store failures and event publishing.
type Metrics struct {
	// HTTPRequestsTotal counts requests by method, route pattern and status code.
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration observes request latency in seconds by method and route pattern.
	HTTPRequestDuration *prometheus.HistogramVec

	CategoriesCreated prometheus.Counter
	ReviewsCreated    prometheus.Counter
	CommentsCreated   prometheus.Counter
	CommentsDeleted   prometheus.Counter

	// VotesCast counts vote changes by target ("review" or "comment").
	VotesCast *prometheus.CounterVec

	// StoreErrors counts unexpected repository failures by operation.
	StoreErrors *prometheus.CounterVec

	// EventsPublished and EventsFailed count domain events by event type.
	EventsPublished *prometheus.CounterVec
	EventsFailed    *prometheus.CounterVec
}

// NewMetrics creates the metrics and registers them with the default registry.
func NewMetrics(namespace string) *Metrics {
	return newMetrics(promauto.With(prometheus.DefaultRegisterer), namespace)
}

// NewMetricsWithRegistry registers the metrics with reg instead of the
// default registry.
func NewMetricsWithRegistry(namespace string, reg prometheus.Registerer) *Metrics {
	return newMetrics(promauto.With(reg), namespace)
}

func newMetrics(factory promauto.Factory, namespace string) *Metrics {
	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled",
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		CategoriesCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "categories",
			Name:      "created_total",
			Help:      "Total number of categories created",
		}),

		ReviewsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reviews",
			Name:      "created_total",
			Help:      "Total number of reviews created",
		}),

		CommentsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "comments",
			Name:      "created_total",
			Help:      "Total number of comments created",
		}),

		CommentsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "comments",
			Name:      "deleted_total",
			Help:      "Total number of comments deleted",
		}),

		VotesCast: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "votes",
			Name:      "cast_total",
			Help:      "Total number of vote changes applied",
		}, []string{"target"}),

		StoreErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "errors_total",
			Help:      "Total number of unexpected store errors",
		}, []string{"operation"}),

		EventsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Total number of domain events published",
		}, []string{"event_type"}),

		EventsFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "failed_total",
			Help:      "Total number of domain events that could not be published",
		}, []string{"event_type"}),
	}
}

// RecordHTTPRequest records a handled request.
func (m *Metrics) RecordHTTPRequest(method, route string, status int, durationSeconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(durationSeconds)
}

// RecordCategoryCreated records a successful category insert.
func (m *Metrics) RecordCategoryCreated() {
	m.CategoriesCreated.Inc()
}

// RecordReviewCreated records a successful review insert.
func (m *Metrics) RecordReviewCreated() {
	m.ReviewsCreated.Inc()
}

// RecordCommentCreated records a successful comment insert.
func (m *Metrics) RecordCommentCreated() {
	m.CommentsCreated.Inc()
}

// RecordCommentDeleted records a successful comment deletion.
func (m *Metrics) RecordCommentDeleted() {
	m.CommentsDeleted.Inc()
}

// RecordVote records a vote change on a review or comment.
func (m *Metrics) RecordVote(target string) {
	m.VotesCast.WithLabelValues(target).Inc()
}

// RecordStoreError records an unexpected repository failure.
func (m *Metrics) RecordStoreError(operation string) {
	m.StoreErrors.WithLabelValues(operation).Inc()
}

// RecordEventPublished records a delivered domain event.
func (m *Metrics) RecordEventPublished(eventType string) {
	m.EventsPublished.WithLabelValues(eventType).Inc()
}

// RecordEventFailed records a domain event that could not be delivered.
func (m *Metrics) RecordEventFailed(eventType string) {
	m.EventsFailed.WithLabelValues(eventType).Inc()
}
