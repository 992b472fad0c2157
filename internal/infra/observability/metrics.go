// Package observability exposes Prometheus metrics for the HTTP layer.
package observability

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "quill/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
	HTTPErrorsTotal      *prometheus.CounterVec
}

// NewMetrics creates a registry with runtime collectors and the HTTP metric set.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: []float64{0.1, 0.3, 0.5, 1, 2, 5},
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of in-flight requests being processed",
			},
		),
		HTTPErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_errors_total",
				Help: "Total number of HTTP error responses",
			},
			[]string{"method", "path", "status"},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
		m.HTTPErrorsTotal,
	)

	return m
}

// Middleware records per-request metrics. Registered routes are labelled by
// their route pattern rather than the raw path to keep cardinality bounded.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			m.HTTPRequestsInFlight.Inc()
			defer m.HTTPRequestsInFlight.Dec()

			err := next(c)

			method := c.Request().Method
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			// A returned error has not passed through the error handler yet,
			// so the response status still reads as the default.
			statusCode := c.Response().Status
			if err != nil {
				statusCode = statusFromError(err)
			}
			status := strconv.Itoa(statusCode)

			m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
			m.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
			if statusCode >= 400 {
				m.HTTPErrorsTotal.WithLabelValues(method, path, status).Inc()
			}

			return err
		}
	}
}

// statusFromError resolves the status a returned error will be rendered with.
func statusFromError(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

// Handler serves the scrape endpoint for this registry.
func (m *Metrics) Handler() echo.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})

	return echo.WrapHandler(h)
}
