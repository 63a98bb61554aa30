package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Valerii9116/TimaxPaySolanaTransak/logger"
	"github.com/Valerii9116/TimaxPaySolanaTransak/types"
)

const lifiDefaultBaseURL = "https://li.quest/v1"

// LiFiClient talks to the li.quest bridge aggregator. Quotes are read
// only; executing the returned transaction request is the wallet's job.
type LiFiClient struct {
	baseURL string
	http    *http.Client
	log     logger.Logger
}

// BridgeToken is an aggregator-known token.
type BridgeToken struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
	ChainID  int64  `json:"chainId"`
	Name     string `json:"name"`
}

// BridgeChain is an aggregator-known chain.
type BridgeChain struct {
	ID   int64  `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// BridgeQuote is the aggregator's quote: the estimated output plus the
// transaction the source wallet must sign and send.
type BridgeQuote struct {
	Estimate struct {
		ToAmount    string      `json:"toAmount"`
		ToAmountMin string      `json:"toAmountMin"`
		ToToken     BridgeToken `json:"toToken"`
	} `json:"estimate"`
	TransactionRequest struct {
		To    string `json:"to"`
		Data  string `json:"data"`
		Value string `json:"value"`
		Gas   string `json:"gasLimit"`
	} `json:"transactionRequest"`
}

func NewLiFiClient(baseURL string, timeout time.Duration, log logger.Logger) *LiFiClient {
	if baseURL == "" {
		baseURL = lifiDefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if log == nil {
		log = logger.NoopLogger{}
	}
	return &LiFiClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Quote fetches a cross-chain quote for an already-validated bridge
// request. Aggregator errors are surfaced verbatim, never retried.
func (c *LiFiClient) Quote(ctx context.Context, req *types.BridgeQuoteRequest) (*BridgeQuote, error) {
	q := url.Values{}
	q.Set("fromChain", req.FromChain.String())
	q.Set("toChain", req.ToChain.String())
	q.Set("fromToken", req.FromToken)
	q.Set("toToken", req.ToToken)
	q.Set("fromAmount", req.FromAmount)
	q.Set("fromAddress", req.FromAddress)
	if req.ToAddress != "" {
		q.Set("toAddress", req.ToAddress)
	}
	q.Set("integrator", req.Integrator)
	q.Set("fee", req.Fee)
	q.Set("referrer", req.Referrer)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/quote?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return nil, timeoutError(err)
		}
		return nil, &types.TerminalError{
			Code:    types.ErrProvider,
			Message: fmt.Sprintf("bridge quote request failed: %v", err),
		}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, &types.TerminalError{
			Code:    types.ErrProvider,
			Message: fmt.Sprintf("bridge aggregator error: %d - %s", resp.StatusCode, string(body)),
			Data:    map[string]any{"status": resp.StatusCode},
		}
	}

	var quote BridgeQuote
	if err := json.Unmarshal(body, &quote); err != nil {
		return nil, &types.TerminalError{
			Code:    types.ErrProvider,
			Message: "invalid quote response from bridge aggregator",
		}
	}
	if quote.Estimate.ToAmount == "" {
		return nil, &types.TerminalError{
			Code:    types.ErrProvider,
			Message: "bridge quote is missing an estimate",
		}
	}
	return &quote, nil
}

// Chains lists the aggregator's supported chains; the bridge view uses
// this to populate its pickers.
func (c *LiFiClient) Chains(ctx context.Context) ([]BridgeChain, error) {
	var parsed struct {
		Chains []BridgeChain `json:"chains"`
	}
	if err := c.getJSON(ctx, "/chains", &parsed); err != nil {
		return nil, err
	}
	return parsed.Chains, nil
}

// Tokens lists the aggregator's known tokens grouped by chain id.
func (c *LiFiClient) Tokens(ctx context.Context) (map[string][]BridgeToken, error) {
	var parsed struct {
		Tokens map[string][]BridgeToken `json:"tokens"`
	}
	if err := c.getJSON(ctx, "/tokens", &parsed); err != nil {
		return nil, err
	}
	return parsed.Tokens, nil
}

func (c *LiFiClient) getJSON(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return timeoutError(err)
		}
		return &types.TerminalError{
			Code:    types.ErrProvider,
			Message: fmt.Sprintf("bridge aggregator request failed: %v", err),
		}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return &types.TerminalError{
			Code:    types.ErrProvider,
			Message: fmt.Sprintf("bridge aggregator error: %d - %s", resp.StatusCode, string(body)),
			Data:    map[string]any{"status": resp.StatusCode},
		}
	}
	return json.Unmarshal(body, dst)
}
