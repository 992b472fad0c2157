package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "quill/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_MiddlewareCountsRequests(t *testing.T) {
	m := NewMetrics()

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	count := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/ping", "200"))
	assert.Equal(t, float64(1), count)

	errCount := testutil.ToFloat64(m.HTTPErrorsTotal.WithLabelValues("GET", "/ping", "200"))
	assert.Equal(t, float64(0), errCount)
}

func TestMetrics_MiddlewareCountsErrors(t *testing.T) {
	m := NewMetrics()

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/missing", func(c echo.Context) error {
		return domainerrors.ErrPostNotFound
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	count := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/missing", "404"))
	assert.Equal(t, float64(1), count)

	errCount := testutil.ToFloat64(m.HTTPErrorsTotal.WithLabelValues("GET", "/missing", "404"))
	assert.Equal(t, float64(1), errCount)
}

func TestMetrics_InFlightReturnsToZero(t *testing.T) {
	m := NewMetrics()

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/ping", func(c echo.Context) error {
		// The gauge holds 1 while this handler runs.
		assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsInFlight))

		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, float64(0), testutil.ToFloat64(m.HTTPRequestsInFlight))
}

func TestMetrics_HandlerServesScrapeEndpoint(t *testing.T) {
	m := NewMetrics()

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/metrics", m.Handler())
	e.GET("/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "http_requests_total")
	assert.Contains(t, body, "http_request_duration_seconds")
	assert.Contains(t, body, "http_requests_in_flight")
	assert.Contains(t, body, "go_goroutines")
}
