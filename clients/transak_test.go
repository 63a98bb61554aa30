package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Valerii9116/TimaxPaySolanaTransak/types"
)

func testWidget() *types.WidgetConfig {
	return &types.WidgetConfig{
		ProductsAvailed: "BUY",
		WalletAddress:   "0x34accc793fD8C2A8e262C8C95b18D706bc6022f0",
		CryptoCurrency:  "USDC",
		Network:         "polygon",
	}
}

func newTestTransak(widgetURL, ordersURL string) *TransakClient {
	return NewTransakClient(TransakConfig{
		APIKey:         "test-key",
		APISecret:      "test-secret",
		Environment:    "STAGING",
		ReferrerDomain: "merch.example.com",
		WidgetBaseURL:  widgetURL,
		OrdersBaseURL:  ordersURL,
	}, nil)
}

func TestCreateWidgetInjectsSecret(t *testing.T) {
	var captured map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v2/partners/widget-url", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"url":       "https://global-stg.transak.com/?apiKey=test-key",
				"sessionId": "sess-1",
			},
		})
	}))
	defer srv.Close()

	c := newTestTransak(srv.URL, "")
	session, err := c.CreateWidget(context.Background(), testWidget())
	require.NoError(t, err)

	assert.Equal(t, "https://global-stg.transak.com/?apiKey=test-key", session.URL)
	assert.Equal(t, "sess-1", session.SessionID)

	// Credentials and domain fields are spliced into the forwarded body.
	assert.Equal(t, "test-key", captured["apiKey"])
	assert.Equal(t, "test-secret", captured["partnerApiSecret"])
	assert.Equal(t, "STAGING", captured["environment"])
	assert.Equal(t, "merch.example.com", captured["referrerDomain"])
	assert.Equal(t, "https://merch.example.com", captured["hostURL"])
	assert.Equal(t, "BUY", captured["productsAvailed"])
}

func TestCreateWidgetUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"unauthorized"}`))
	}))
	defer srv.Close()

	c := newTestTransak(srv.URL, "")
	_, err := c.CreateWidget(context.Background(), testWidget())
	require.Error(t, err)

	te, ok := types.IsTerminalError(err)
	require.True(t, ok)
	assert.Equal(t, types.ErrProvider, te.Code)
	assert.Contains(t, te.Message, "invalid API credentials or unauthorized domain")

	data, ok := te.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 401, data["status"])
}

func TestCreateWidgetMissingCredentials(t *testing.T) {
	c := NewTransakClient(TransakConfig{Environment: "STAGING"}, nil)

	_, err := c.CreateWidget(context.Background(), testWidget())
	require.Error(t, err)

	te, ok := types.IsTerminalError(err)
	require.True(t, ok)
	assert.Equal(t, types.ErrConfigMissing, te.Code)
}

func TestCreateWidgetMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{}}`))
	}))
	defer srv.Close()

	c := newTestTransak(srv.URL, "")
	_, err := c.CreateWidget(context.Background(), testWidget())
	require.Error(t, err)

	te, ok := types.IsTerminalError(err)
	require.True(t, ok)
	assert.Equal(t, types.ErrProvider, te.Code)
	assert.Contains(t, te.Message, "missing widget URL")
}

func TestGetOrders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/partners/api/v2/refresh-token":
			assert.Equal(t, "test-secret", r.Header.Get("api-secret"))
			json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{"accessToken": "tok-1"},
			})
		case "/partners/api/v2/orders":
			assert.Equal(t, "tok-1", r.Header.Get("access-token"))
			assert.Equal(t, "cust-42", r.URL.Query().Get("filter[partnerCustomerId]"))
			assert.Equal(t, `["BUY","SELL"]`, r.URL.Query().Get("filter[productsAvailed]"))
			json.NewEncoder(w).Encode(map[string]any{
				"data": []map[string]any{
					{"id": "ord-1", "status": "COMPLETED", "isBuyOrSell": "BUY", "fiatAmount": 50, "fiatCurrency": "USD"},
				},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := newTestTransak("", srv.URL)
	orders, err := c.GetOrders(context.Background(), "cust-42")
	require.NoError(t, err)

	require.Len(t, orders, 1)
	assert.Equal(t, "ord-1", orders[0].ID)
	assert.Equal(t, "COMPLETED", orders[0].Status)
	assert.Equal(t, 50.0, orders[0].FiatAmount)
}

func TestGetOrdersRefreshFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newTestTransak("", srv.URL)
	_, err := c.GetOrders(context.Background(), "cust-42")
	require.Error(t, err)

	te, ok := types.IsTerminalError(err)
	require.True(t, ok)
	assert.Equal(t, types.ErrProvider, te.Code)
}

func TestHostSelectionByEnvironment(t *testing.T) {
	staging := NewTransakClient(TransakConfig{Environment: "STAGING"}, nil)
	assert.Equal(t, transakWidgetStaging, staging.widgetBase())
	assert.Equal(t, transakOrdersStaging, staging.ordersBase())

	prod := NewTransakClient(TransakConfig{Environment: "PRODUCTION"}, nil)
	assert.Equal(t, transakWidgetProduction, prod.widgetBase())
	assert.Equal(t, transakOrdersProduction, prod.ordersBase())
}
