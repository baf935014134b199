package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gst-invoice-api/internal/application/billing"
	"github.com/jhoicas/gst-invoice-api/internal/application/dto"
	"github.com/jhoicas/gst-invoice-api/internal/infrastructure/metrics"
	apphttp "github.com/jhoicas/gst-invoice-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye la aplicación completa con un registro Prometheus privado
// y un logger que escribe en logs.
func buildTestApp(t *testing.T, logs io.Writer) (*fiber.App, *metrics.Metrics) {
	t.Helper()
	m := metrics.New("test", prometheus.NewRegistry())
	uc := billing.NewCalculatorUseCase(billing.NewValidator(), m, func() time.Time {
		return time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC)
	})
	if logs == nil {
		logs = io.Discard
	}
	app := apphttp.NewApp(apphttp.AppConfig{
		Name:   "gst-test",
		Logger: zerolog.New(logs),
	}, apphttp.RouterDeps{Calculator: uc, Metrics: m})
	return app, m
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			r = strings.NewReader(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			r = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	app, _ := buildTestApp(t, nil)
	resp := doJSON(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
	assert.Equal(t, dto.HealthResponse{Status: "ok", Service: "gst-test"}, decode[dto.HealthResponse](t, resp))
}

func TestRates(t *testing.T) {
	app, _ := buildTestApp(t, nil)
	resp := doJSON(t, app, http.MethodGet, "/api/v1/gst/rates", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []float64{0, 5, 12, 18, 28}, decode[dto.GSTRatesResponse](t, resp).Rates)
}

func TestCalculateLineItem_Handler(t *testing.T) {
	app, _ := buildTestApp(t, nil)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/gst/line-items/calculate",
		dto.LineItemRequest{Description: "Widget", Quantity: 5, Rate: 100, GSTRate: 5})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.LineItemResponse](t, resp)
	assert.Equal(t, 500.0, out.Amount)
	assert.Equal(t, 12.5, out.CGST)
	assert.Equal(t, 12.5, out.SGST)
	assert.Equal(t, 525.0, out.Total)
	assert.Equal(t, "₹525.00", out.Formatted.Total)
}

func TestCalculateLineItem_Errores(t *testing.T) {
	app, _ := buildTestApp(t, nil)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/gst/line-items/calculate", `{"quantity":`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode[dto.ErrorResponse](t, resp).Code)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/gst/line-items/calculate", `{"quantity":1,"rate":10,"gst_rate":7}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	e := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", e.Code)
	assert.Contains(t, e.Message, "gst_rate")

	resp = doJSON(t, app, http.MethodPost, "/api/v1/gst/line-items/calculate", `{"quantity":1e200,"rate":1e200,"gst_rate":5}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "AMOUNT_OVERFLOW", decode[dto.ErrorResponse](t, resp).Code)
}

func TestCalculateInvoice_Handler(t *testing.T) {
	app, m := buildTestApp(t, nil)

	body := `{
		"sequence": 6,
		"seller": {"name": "Acme Traders", "gstin": "27AAPFU0939F1ZV"},
		"buyer":  {"name": "Blue Corp",    "gstin": "27AAPFU0939F1ZV"},
		"items": [
			{"description": "Widget", "quantity": 5, "rate": 100, "gst_rate": 5},
			{"description": "Gadget", "quantity": 2, "rate": 250, "gst_rate": 18}
		]
	}`
	resp := doJSON(t, app, http.MethodPost, "/api/v1/gst/invoices/calculate", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.InvoiceCalculationResponse](t, resp)

	assert.Equal(t, "INV-2603-0007", out.InvoiceNumber)
	assert.Equal(t, "2026-03-05", out.Date)
	assert.Equal(t, "draft", out.Status)
	assert.Equal(t, dto.TotalsDTO{Subtotal: 1000, CGSTTotal: 57.5, SGSTTotal: 57.5, GrandTotal: 1115}, out.Totals)
	assert.Equal(t, "1115", out.RoundedTotals.GrandTotal.String())
	assert.Equal(t, "₹1,115.00", out.FormattedTotals.GrandTotal)
	assert.Equal(t, "Rupees One Thousand One Hundred Fifteen Only", out.AmountInWords)
	assert.True(t, out.IntraState)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Calculations.WithLabelValues(billing.KindInvoice)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CalculatedLines.WithLabelValues(billing.KindInvoice)))
}

func TestCalculateInvoice_SinItems(t *testing.T) {
	app, _ := buildTestApp(t, nil)
	resp := doJSON(t, app, http.MethodPost, "/api/v1/gst/invoices/calculate", `{"items": []}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	e := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", e.Code)
	assert.Contains(t, e.Message, "items")
}

func TestVerifyInvoice_Handler(t *testing.T) {
	app, _ := buildTestApp(t, nil)
	body := dto.VerifyInvoiceRequest{
		Items: []dto.StoredLineItem{
			{Description: "Widget", Quantity: 5, Rate: 100, GSTRate: 5, Amount: 500, CGST: 12.5, SGST: 12.5, Total: 525},
		},
		Totals: dto.TotalsDTO{Subtotal: 500, CGSTTotal: 12.5, SGSTTotal: 12.5, GrandTotal: 530},
	}
	resp := doJSON(t, app, http.MethodPost, "/api/v1/gst/invoices/verify", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.VerifyInvoiceResponse](t, resp)
	assert.False(t, out.Valid)
	assert.Equal(t, []dto.MismatchDTO{{Field: "totals.grand_total", Stored: "530.00", Expected: "525.00"}}, out.Mismatches)
	assert.Equal(t, 525.0, out.Recomputed.GrandTotal)
}

func TestAmountInWords_Handler(t *testing.T) {
	app, _ := buildTestApp(t, nil)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/gst/amount-in-words?amount=100000", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.AmountInWordsResponse](t, resp)
	assert.Equal(t, "Rupees One Lakh Only", out.Words)
	assert.Equal(t, "₹1,00,000.00", out.Formatted)

	tests := []struct {
		query string
		code  string
	}{
		{"", "VALIDATION"},
		{"?amount=abc", "VALIDATION"},
		{"?amount=NaN", "VALIDATION"},
		{"?amount=-5", "NEGATIVE_AMOUNT"},
		{"?amount=1e15", "AMOUNT_TOO_LARGE"},
	}
	for _, tt := range tests {
		t.Run(tt.code+tt.query, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodGet, "/api/v1/gst/amount-in-words"+tt.query, nil)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tt.code, decode[dto.ErrorResponse](t, resp).Code)
		})
	}
}

func TestCheckGSTIN_Handler(t *testing.T) {
	app, _ := buildTestApp(t, nil)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/gstin/29AAGCB7383J1Z4", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ok := decode[dto.GSTINResponse](t, resp)
	assert.True(t, ok.Valid)
	assert.Equal(t, "29", ok.StateCode)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/gstin/07AAACR5055K1Z5", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	bad := decode[dto.GSTINResponse](t, resp)
	assert.False(t, bad.Valid)
	assert.NotEmpty(t, bad.Reason)
}

func TestOpenAPI(t *testing.T) {
	app, _ := buildTestApp(t, nil)
	resp := doJSON(t, app, http.MethodGet, "/api/v1/openapi.json", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc := decode[map[string]any](t, resp)
	assert.Equal(t, "2.0", doc["swagger"])
	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/api/v1/gst/invoices/calculate")
	assert.Contains(t, paths, "/api/v1/gstin/{gstin}")
}

// ──────────────────────────────────────────────────────────────────────────────
// Middlewares
// ──────────────────────────────────────────────────────────────────────────────

func TestMetricsEndpointYMiddleware(t *testing.T) {
	app, m := buildTestApp(t, nil)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/gstin/29AAGCB7383J1Z4", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReqTotal.WithLabelValues(http.MethodGet, "/api/v1/gstin/:gstin", "200")))

	resp = doJSON(t, app, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "test_http_requests_total")
}

func TestRequestLogger(t *testing.T) {
	var logs bytes.Buffer
	app, _ := buildTestApp(t, &logs)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/gst/amount-in-words?amount=-1", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	rid := resp.Header.Get(fiber.HeaderXRequestID)
	require.NotEmpty(t, rid)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(logs.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, rid, entry["request_id"])
	assert.Equal(t, "/api/v1/gst/amount-in-words", entry["path"])
	assert.Equal(t, float64(http.StatusBadRequest), entry["status"])
}

func TestPanicRegistradoEnLogYMetricas(t *testing.T) {
	var logs bytes.Buffer
	app, m := buildTestApp(t, &logs)
	app.Get("/api/v1/falla", func(*fiber.Ctx) error {
		panic("falla inesperada")
	})

	resp := doJSON(t, app, http.MethodGet, "/api/v1/falla", nil)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReqTotal.WithLabelValues(http.MethodGet, "/api/v1/falla", "500")))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(logs.Bytes()), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "/api/v1/falla", entry["path"])
	assert.Equal(t, float64(http.StatusInternalServerError), entry["status"])
	assert.Contains(t, entry["error"], "falla inesperada")
}
