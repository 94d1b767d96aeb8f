package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackCounter(t *testing.T) {
	m := New()

	m.Fallback("colleges", "list", ReasonStoreFailure)
	m.Fallback("colleges", "list", ReasonStoreFailure)
	m.Fallback("reviews", "list", ReasonEmptyStore)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.fallbackTotal.WithLabelValues("colleges", "list", ReasonStoreFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fallbackTotal.WithLabelValues("reviews", "list", ReasonEmptyStore)))
}

func TestStoreUpGauge(t *testing.T) {
	m := New()

	m.StoreUp("favorites", false)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.storeUp.WithLabelValues("favorites")))

	m.StoreUp("favorites", true)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeUp.WithLabelValues("favorites")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Fallback("colleges", "list", ReasonEmptyResult)
		m.StoreUp("colleges", true)
		m.ObserveRequest("GET", "/api/colleges", "200", 0.01)
	})
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.Fallback("colleges", "get", ReasonStoreFailure)
	m.ObserveRequest("GET", "/api/colleges/:id", "200", 0.02)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `college_directory_fallback_total{entity="colleges",operation="get",reason="store_failure"} 1`)
	assert.Contains(t, body, "college_directory_http_requests_total")
	assert.Contains(t, body, "go_goroutines")
}
