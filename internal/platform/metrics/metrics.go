package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var latencyBuckets = []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	PersonsCreated     prometheus.Counter
	PersonsUpdated     prometheus.Counter
	PersonsDeleted     prometheus.Counter
	CountriesCreated   prometheus.Counter
	ValidationFailures *prometheus.CounterVec
	QueryDuration      *prometheus.HistogramVec
	HTTPDuration       *prometheus.HistogramVec
}

// New creates the metrics and registers them with reg. Pass
// prometheus.DefaultRegisterer in main and a fresh prometheus.NewRegistry()
// in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		PersonsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "roster_persons_created_total",
			Help: "Total number of persons created",
		}),
		PersonsUpdated: f.NewCounter(prometheus.CounterOpts{
			Name: "roster_persons_updated_total",
			Help: "Total number of persons updated",
		}),
		PersonsDeleted: f.NewCounter(prometheus.CounterOpts{
			Name: "roster_persons_deleted_total",
			Help: "Total number of persons deleted",
		}),
		CountriesCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "roster_countries_created_total",
			Help: "Total number of countries created",
		}),
		ValidationFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_validation_failures_total",
			Help: "Rejected add/update requests by entity and field",
		}, []string{"entity", "field"}),
		QueryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roster_person_query_duration_seconds",
			Help:    "Duration of person filter and sort operations",
			Buckets: latencyBuckets,
		}, []string{"operation"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roster_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern and status",
			Buckets: latencyBuckets,
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) IncrementPersonsCreated()   { m.PersonsCreated.Inc() }
func (m *Metrics) IncrementPersonsUpdated()   { m.PersonsUpdated.Inc() }
func (m *Metrics) IncrementPersonsDeleted()   { m.PersonsDeleted.Inc() }
func (m *Metrics) IncrementCountriesCreated() { m.CountriesCreated.Inc() }

// IncrementValidationFailure records a rejected request. field may be empty
// for failures not tied to a field (e.g. a missing request).
func (m *Metrics) IncrementValidationFailure(entity, field string) {
	if field == "" {
		field = "request"
	}
	m.ValidationFailures.WithLabelValues(entity, field).Inc()
}

// ObserveQuery records the duration of a filter or sort.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveQuery(operation string, start time.Time) {
	m.QueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route, status string, d time.Duration) {
	m.HTTPDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
}
