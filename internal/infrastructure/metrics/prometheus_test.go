package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gst-invoice-api/internal/infrastructure/metrics"
)

func TestObserveCalculation(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New("invoice", reg)

	m.ObserveCalculation("invoice", 3)
	m.ObserveCalculation("invoice", 2)
	m.ObserveCalculation("amount_in_words", 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Calculations.WithLabelValues("invoice")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.CalculatedLines.WithLabelValues("invoice")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Calculations.WithLabelValues("amount_in_words")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.CalculatedLines))
}

func TestObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New("invoice", reg)

	m.ObserveRequest(http.MethodPost, "/api/v1/gst/invoices/calculate", 200, 12*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "", 404, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReqTotal.WithLabelValues(http.MethodPost, "/api/v1/gst/invoices/calculate", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReqTotal.WithLabelValues(http.MethodGet, "unknown", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.ReqDur))
}

func TestNew_RegistroDuplicadoReutiliza(t *testing.T) {
	reg := prometheus.NewRegistry()
	a := metrics.New("invoice", reg)
	b := metrics.New("invoice", reg)

	a.ObserveCalculation("line_item", 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(b.Calculations.WithLabelValues("line_item")))
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New("invoice", reg)
	m.ObserveCalculation("verify", 2)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.True(t, strings.Contains(body, `invoice_gst_calculations_total{kind="verify"} 1`), body)
}

func TestDurationMillis(t *testing.T) {
	assert.Equal(t, 1.5, metrics.DurationMillis(1500*time.Microsecond))
}
