package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fleet-booking/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fleet_booking"

// Outcome labels shared by the reservation and availability counters.
const (
	OutcomeSuccess      = "success"
	OutcomeConflict     = "conflict"
	OutcomeInvalid      = "invalid_input"
	OutcomeUnauth       = "unauthenticated"
	OutcomeNotFound     = "not_found"
	OutcomeStorageError = "storage_error"
)

// Outcome classifies a usecase error into an outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, errs.ErrSlotConflict):
		return OutcomeConflict
	case errors.Is(err, errs.ErrInvalidInput):
		return OutcomeInvalid
	case errors.Is(err, errs.ErrUnauthenticated):
		return OutcomeUnauth
	case errors.Is(err, errs.ErrResourceNotFound):
		return OutcomeNotFound
	default:
		return OutcomeStorageError
	}
}

// Metrics owns its own registry so tests can build as many instances as they need.
type Metrics struct {
	registry     *prometheus.Registry
	reservations *prometheus.CounterVec
	availability *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		reservations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_total",
			Help:      "Reservation attempts by outcome.",
		}, []string{"outcome"}),
		availability: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "availability_queries_total",
			Help:      "Availability queries by outcome.",
		}, []string{"outcome"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(m.reservations, m.availability, m.httpDuration)
	return m
}

func (m *Metrics) ReservationOutcome(outcome string) {
	if m == nil {
		return
	}
	m.reservations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) AvailabilityOutcome(outcome string) {
	if m == nil {
		return
	}
	m.availability.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
