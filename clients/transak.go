// Package clients holds the REST clients for the external payment
// rails: the fiat on/off-ramp provider and the bridge aggregator.
// Every call is bounded by a timeout and never retried automatically.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/Valerii9116/TimaxPaySolanaTransak/logger"
	"github.com/Valerii9116/TimaxPaySolanaTransak/types"
)

// Transak API hosts. The widget-url and partner-order APIs live on
// different staging hosts; both collapse to the same production host.
const (
	transakWidgetStaging    = "https://api-staging.transak.com"
	transakWidgetProduction = "https://api.transak.com"
	transakOrdersStaging    = "https://api-stg.transak.com"
	transakOrdersProduction = "https://api.transak.com"
)

// TransakConfig carries the server-held provider credentials. The
// secret never leaves the backend.
type TransakConfig struct {
	APIKey         string
	APISecret      string
	Environment    string // "STAGING" or "PRODUCTION"
	ReferrerDomain string
	Timeout        time.Duration

	// Test/override hooks; empty means the environment-derived host.
	WidgetBaseURL string
	OrdersBaseURL string
}

type TransakClient struct {
	cfg  TransakConfig
	http *http.Client
	log  logger.Logger
}

// WidgetSession is a successfully created hosted-widget session.
type WidgetSession struct {
	URL       string `json:"widgetUrl"`
	SessionID string `json:"sessionId"`
}

// Order is one provider order row, trimmed to the fields the history
// view renders.
type Order struct {
	ID             string  `json:"id"`
	Status         string  `json:"status"`
	IsBuyOrSell    string  `json:"isBuyOrSell"`
	FiatAmount     float64 `json:"fiatAmount"`
	FiatCurrency   string  `json:"fiatCurrency"`
	CryptoAmount   float64 `json:"cryptoAmount"`
	CryptoCurrency string  `json:"cryptoCurrency"`
	Network        string  `json:"network"`
	WalletAddress  string  `json:"walletAddress"`
	CreatedAt      string  `json:"createdAt"`
}

func NewTransakClient(cfg TransakConfig, log logger.Logger) *TransakClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if log == nil {
		log = logger.NoopLogger{}
	}
	return &TransakClient{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log,
	}
}

func (c *TransakClient) widgetBase() string {
	if c.cfg.WidgetBaseURL != "" {
		return c.cfg.WidgetBaseURL
	}
	if c.cfg.Environment == "PRODUCTION" {
		return transakWidgetProduction
	}
	return transakWidgetStaging
}

func (c *TransakClient) ordersBase() string {
	if c.cfg.OrdersBaseURL != "" {
		return c.cfg.OrdersBaseURL
	}
	if c.cfg.Environment == "PRODUCTION" {
		return transakOrdersProduction
	}
	return transakOrdersStaging
}

// CreateWidget forwards a widget configuration to the provider's
// partner widget-url API with the partner secret injected, returning
// the hosted widget session.
func (c *TransakClient) CreateWidget(ctx context.Context, widget *types.WidgetConfig) (*WidgetSession, error) {
	if c.cfg.APIKey == "" || c.cfg.APISecret == "" {
		return nil, &types.TerminalError{
			Code:    types.ErrConfigMissing,
			Message: "ramp provider API credentials are not configured",
		}
	}

	// Flatten the widget config and splice in the credential and
	// domain fields the provider requires in the body.
	body := map[string]any{}
	raw, err := json.Marshal(widget)
	if err != nil {
		return nil, fmt.Errorf("marshal widget config: %w", err)
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("flatten widget config: %w", err)
	}

	body["apiKey"] = c.cfg.APIKey
	body["environment"] = c.cfg.Environment
	body["partnerApiSecret"] = c.cfg.APISecret
	if c.cfg.ReferrerDomain != "" {
		body["referrerDomain"] = c.cfg.ReferrerDomain
		body["hostURL"] = "https://" + c.cfg.ReferrerDomain
		if body["redirectURL"] == nil || body["redirectURL"] == "" {
			body["redirectURL"] = "https://" + c.cfg.ReferrerDomain + "/"
		}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal widget request: %w", err)
	}

	endpoint := c.widgetBase() + "/api/v2/partners/widget-url"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, timeoutError(err)
		}
		return nil, &types.TerminalError{
			Code:    types.ErrProvider,
			Message: fmt.Sprintf("widget request failed: %v", err),
		}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("widget creation rejected", map[string]any{
			"status": resp.StatusCode,
		})
		return nil, providerError(resp.StatusCode, string(respBody))
	}

	var parsed struct {
		Data struct {
			URL       string `json:"url"`
			SessionID string `json:"sessionId"`
		} `json:"data"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil || parsed.Data.URL == "" {
		return nil, &types.TerminalError{
			Code:    types.ErrProvider,
			Message: "invalid response from ramp provider - missing widget URL",
		}
	}

	return &WidgetSession{URL: parsed.Data.URL, SessionID: parsed.Data.SessionID}, nil
}

// RefreshAccessToken exchanges the partner credentials for a short
// lived access token used by the orders API.
func (c *TransakClient) RefreshAccessToken(ctx context.Context) (string, error) {
	payload, _ := json.Marshal(map[string]string{"apiKey": c.cfg.APIKey})

	endpoint := c.ordersBase() + "/partners/api/v2/refresh-token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-secret", c.cfg.APISecret)

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", timeoutError(err)
		}
		return "", &types.TerminalError{
			Code:    types.ErrProvider,
			Message: fmt.Sprintf("token refresh failed: %v", err),
		}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", providerError(resp.StatusCode, string(respBody))
	}

	var parsed struct {
		Data struct {
			AccessToken string `json:"accessToken"`
		} `json:"data"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil || parsed.Data.AccessToken == "" {
		return "", &types.TerminalError{
			Code:    types.ErrProvider,
			Message: "access token not found in provider response",
		}
	}
	return parsed.Data.AccessToken, nil
}

// GetOrders queries the provider's orders filtered by the partner
// customer id, covering both BUY and SELL products.
func (c *TransakClient) GetOrders(ctx context.Context, partnerCustomerID string) ([]Order, error) {
	token, err := c.RefreshAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	products, _ := json.Marshal([]string{"BUY", "SELL"})
	q := url.Values{}
	q.Set("filter[partnerCustomerId]", partnerCustomerID)
	q.Set("filter[productsAvailed]", string(products))

	endpoint := c.ordersBase() + "/partners/api/v2/orders?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("access-token", token)

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, timeoutError(err)
		}
		return nil, &types.TerminalError{
			Code:    types.ErrProvider,
			Message: fmt.Sprintf("orders request failed: %v", err),
		}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, providerError(resp.StatusCode, string(respBody))
	}

	var parsed struct {
		Data []Order `json:"data"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, &types.TerminalError{
			Code:    types.ErrProvider,
			Message: "invalid orders response from provider",
		}
	}
	return parsed.Data, nil
}

func isTimeout(err error) bool {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Timeout() || errors.Is(uerr.Err, context.DeadlineExceeded)
	}
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded)
}
