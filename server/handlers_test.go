package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Valerii9116/TimaxPaySolanaTransak/clients"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *Config {
	return &Config{
		Port:                   "8080",
		WalletConnectProjectID: "wc-project",
		TransakAPIKey:          "test-key",
		TransakAPISecret:       "test-secret",
		TransakEnvironment:     "STAGING",
		ReferrerDomain:         "merch.example.com",
		AllowedOrigins:         []string{"http://localhost:3000"},
	}
}

func newTestRouter(cfg *Config, transakURL string) *gin.Engine {
	transak := clients.NewTransakClient(clients.TransakConfig{
		APIKey:         cfg.TransakAPIKey,
		APISecret:      cfg.TransakAPISecret,
		Environment:    cfg.TransakEnvironment,
		ReferrerDomain: cfg.ReferrerDomain,
		WidgetBaseURL:  transakURL,
		OrdersBaseURL:  transakURL,
	}, nil)
	return NewRouter(NewHandler(cfg, transak, nil, nil))
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reqBody *strings.Reader
	if body == "" {
		reqBody = strings.NewReader("")
	} else {
		reqBody = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]any
	if len(w.Body.Bytes()) > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func TestGetConfig(t *testing.T) {
	r := newTestRouter(testConfig(), "")

	w, body := doJSON(t, r, http.MethodGet, "/api/getConfig", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "wc-project", body["walletConnectProjectId"])
	assert.Equal(t, "test-key", body["transakApiKey"])
	assert.Equal(t, "STAGING", body["transakEnvironment"])

	// The partner secret must never reach the browser.
	assert.NotContains(t, w.Body.String(), "test-secret")
}

func TestGetConfigMissingKeys(t *testing.T) {
	cfg := testConfig()
	cfg.TransakAPIKey = ""
	r := newTestRouter(cfg, "")

	w, body := doJSON(t, r, http.MethodGet, "/api/getConfig", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, body["error"], "Server configuration is incomplete")
}

const validWidgetBody = `{
	"productsAvailed": "BUY",
	"walletAddress": "0x34accc793fD8C2A8e262C8C95b18D706bc6022f0",
	"cryptoCurrencyCode": "USDC",
	"network": "polygon"
}`

func TestCreateWidget(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"url": "https://global-stg.transak.com/w", "sessionId": "sess-9"},
		})
	}))
	defer srv.Close()

	r := newTestRouter(testConfig(), srv.URL)

	w, body := doJSON(t, r, http.MethodPost, "/api/createTransakWidget", validWidgetBody)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, true, body["success"])
	assert.Equal(t, "https://global-stg.transak.com/w", body["widgetUrl"])
	assert.Equal(t, "sess-9", body["sessionId"])
	assert.Equal(t, "STAGING", body["environment"])
}

func TestCreateWidgetEmptyBody(t *testing.T) {
	r := newTestRouter(testConfig(), "")

	w, body := doJSON(t, r, http.MethodPost, "/api/createTransakWidget", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "required")
}

func TestCreateWidgetInvalidConfig(t *testing.T) {
	r := newTestRouter(testConfig(), "")

	w, body := doJSON(t, r, http.MethodPost, "/api/createTransakWidget",
		`{"productsAvailed":"BUY","network":"polygon"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestCreateWidgetProviderStatusPassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"unauthorized"}`))
	}))
	defer srv.Close()

	r := newTestRouter(testConfig(), srv.URL)

	w, body := doJSON(t, r, http.MethodPost, "/api/createTransakWidget", validWidgetBody)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "invalid API credentials or unauthorized domain")
}

func TestGetTransactions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/partners/api/v2/refresh-token":
			json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"accessToken": "tok"}})
		case "/partners/api/v2/orders":
			json.NewEncoder(w).Encode(map[string]any{"data": []map[string]any{{"id": "ord-1", "status": "COMPLETED"}}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	r := newTestRouter(testConfig(), srv.URL)

	req := httptest.NewRequest(http.MethodPost, "/api/getTransactions", strings.NewReader(`{"partnerCustomerId":"cust-42"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var orders []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "ord-1", orders[0]["id"])
}

func TestGetTransactionsMissingCustomerID(t *testing.T) {
	r := newTestRouter(testConfig(), "")

	w, body := doJSON(t, r, http.MethodPost, "/api/getTransactions", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "partnerCustomerId is required.", body["error"])
}

func TestHealth(t *testing.T) {
	r := newTestRouter(testConfig(), "")

	w, body := doJSON(t, r, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestRequestIDHeader(t *testing.T) {
	r := newTestRouter(testConfig(), "")

	w, _ := doJSON(t, r, http.MethodGet, "/api/health", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-Id", "fixed-id")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "fixed-id", rec.Header().Get("X-Request-Id"))
}
