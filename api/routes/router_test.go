package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/angelmondragon/invoicing-backend/internal/quotes"
	"github.com/angelmondragon/invoicing-backend/pkg/config"
	"github.com/angelmondragon/invoicing-backend/pkg/logger"
	"github.com/angelmondragon/invoicing-backend/pkg/metrics"
)

func testConfig() *config.Config {
	return &config.Config{
		App:    config.AppConfig{Env: "test", Port: "0"},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		Quotes: config.QuotesConfig{MaxItems: 100},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)
	quoteMetrics := metrics.NewQuoteMetrics(registry)
	service, err := quotes.NewService(cfg.Quotes, quoteMetrics)
	if err != nil {
		t.Fatalf("build quote service: %v", err)
	}
	return NewRouter(cfg, logg, registry, httpMetrics, service)
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t, testConfig())

	for _, path := range []string{"/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s got %d", path, resp.Code)
		}
		if env := resp.Header().Get("X-Invoicing-Env"); env != "test" {
			t.Fatalf("expected env header for %s, got %q", path, env)
		}
	}
}

func TestPublicPing(t *testing.T) {
	router := newTestRouter(t, testConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/public/ping", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestQuoteRouteComputesTotal(t *testing.T) {
	router := newTestRouter(t, testConfig())

	body := `{
		"currency": "USD",
		"discount": {"kind": "percentage", "percent": 0.10},
		"items": [
			{"unit_price": 10.0, "quantity": 2},
			{"unit_price": 4.5, "quantity": 1}
		]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/public/v1/quotes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data struct {
			Total     string `json:"total"`
			TotalLine string `json:"total_line"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Total != "26.24" {
		t.Fatalf("unexpected total: %s", envelope.Data.Total)
	}
	if envelope.Data.TotalLine != "Total: $26.24" {
		t.Fatalf("unexpected total line: %s", envelope.Data.TotalLine)
	}
}

func TestQuoteRouteRejectsUnknownCurrency(t *testing.T) {
	router := newTestRouter(t, testConfig())

	body := `{"currency": "GBP", "items": []}`
	req := httptest.NewRequest(http.MethodPost, "/api/public/v1/quotes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestMetricsEndpointReportsQuoteCounters(t *testing.T) {
	router := newTestRouter(t, testConfig())

	body := `{"currency": "USD", "items": [{"unit_price": 10.0, "quantity": 1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/public/v1/quotes", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	metricsReq := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	metricsResp := httptest.NewRecorder()
	router.ServeHTTP(metricsResp, metricsReq)

	if metricsResp.Code != http.StatusOK {
		t.Fatalf("expected 200 from metrics got %d", metricsResp.Code)
	}
	exposition := metricsResp.Body.String()
	if !strings.Contains(exposition, `quotes_computed_total{currency="USD"} 1`) {
		t.Fatalf("quote counter missing from exposition:\n%s", exposition)
	}
	if !strings.Contains(exposition, "http_request_duration_seconds") {
		t.Fatalf("request duration histogram missing from exposition:\n%s", exposition)
	}
}

func TestCORSPreflightAllowsConfiguredOrigin(t *testing.T) {
	router := newTestRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/public/v1/quotes", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("expected allowed origin header, got %q", got)
	}
}

func TestUnknownRouteReturns404(t *testing.T) {
	router := newTestRouter(t, testConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/public/v1/invoices", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
