// Package terminal wires the merchant payment terminal's core: the
// chain/asset registry, the payment route selector, the wallet
// connection state machine, and the session transaction tracker.
// External rails (ramp provider, bridge aggregator, wallet SDKs) stay
// behind narrow interfaces.
package terminal

import (
	"context"
	"sync"
	"time"

	"github.com/Valerii9116/TimaxPaySolanaTransak/clients"
	"github.com/Valerii9116/TimaxPaySolanaTransak/logger"
	"github.com/Valerii9116/TimaxPaySolanaTransak/metrics"
	"github.com/Valerii9116/TimaxPaySolanaTransak/registry"
	"github.com/Valerii9116/TimaxPaySolanaTransak/routing"
	"github.com/Valerii9116/TimaxPaySolanaTransak/tracker"
	"github.com/Valerii9116/TimaxPaySolanaTransak/types"
	"github.com/Valerii9116/TimaxPaySolanaTransak/wallet"
)

// Terminal is the root object a front end drives. All methods are safe
// from a single UI event loop; the underlying components tolerate
// concurrent use as well.
type Terminal struct {
	cfg      types.TerminalConfig
	registry *registry.Registry
	selector *routing.Selector
	wallet   *wallet.Manager
	tracker  *tracker.Tracker
	bridge   *clients.LiFiClient

	log     logger.Logger
	metrics metrics.Recorder
	timeout time.Duration

	mu            sync.Mutex
	selectedChain types.ChainID
	selectedAsset types.Asset

	bridgeBaseURL string
}

// New creates a terminal with the given configuration. Zero-value
// config fields fall back to the defaults the terminal ships with.
func New(cfg types.TerminalConfig, opts ...Option) *Terminal {
	def := types.DefaultTerminalConfig()
	if cfg.MinFiatAmount.IsZero() {
		cfg.MinFiatAmount = def.MinFiatAmount
	}
	if cfg.DefaultFiatCurrency == "" {
		cfg.DefaultFiatCurrency = def.DefaultFiatCurrency
	}
	if cfg.ReferrerDomain == "" {
		cfg.ReferrerDomain = def.ReferrerDomain
	}
	if cfg.BridgeIntegrator == "" {
		cfg.BridgeIntegrator = def.BridgeIntegrator
	}
	if cfg.BridgeFeePercent.IsZero() {
		cfg.BridgeFeePercent = def.BridgeFeePercent
	}
	if cfg.BridgeFeeRecipient == "" {
		cfg.BridgeFeeRecipient = def.BridgeFeeRecipient
	}
	if cfg.ProviderTimeout <= 0 {
		cfg.ProviderTimeout = def.ProviderTimeout
	}

	t := &Terminal{
		cfg:     cfg,
		log:     logger.NoopLogger{},
		metrics: metrics.NoopRecorder{},
		timeout: cfg.ProviderTimeout,
	}
	for _, opt := range opts {
		opt(t)
	}

	t.registry = registry.New()
	t.selector = routing.NewSelector(t.registry, cfg, t.log, t.metrics)
	t.wallet = wallet.NewManager(t.log)
	t.tracker = tracker.New()
	t.bridge = clients.NewLiFiClient(t.bridgeBaseURL, t.timeout, t.log)

	// Initial selection: first chain and its first deployed asset.
	chains := t.registry.Chains()
	if len(chains) > 0 {
		t.selectedChain = chains[0].ID
		if asset, err := t.registry.OnChainChanged(t.selectedChain, ""); err == nil {
			t.selectedAsset = asset
		}
		t.wallet.SelectChain(t.selectedChain)
	}

	return t
}

// Registry exposes the static chain/asset tables.
func (t *Terminal) Registry() *registry.Registry {
	return t.registry
}

// Wallet exposes the connection state machine.
func (t *Terminal) Wallet() *wallet.Manager {
	return t.wallet
}

// Tracker exposes the session transaction log.
func (t *Terminal) Tracker() *tracker.Tracker {
	return t.tracker
}

// SelectChain switches the merchant's chain pick. The asset selection
// follows: it stays if still deployed on the new chain, otherwise it
// resets to the first deployed asset, so a selection never dangles.
func (t *Terminal) SelectChain(id types.ChainID) (types.Asset, error) {
	t.mu.Lock()
	prev := t.selectedAsset.Symbol
	t.mu.Unlock()

	asset, err := t.registry.OnChainChanged(id, prev)
	if err != nil {
		return types.Asset{}, err
	}

	t.mu.Lock()
	t.selectedChain = id
	t.selectedAsset = asset
	t.mu.Unlock()

	t.wallet.SelectChain(id)
	t.log.Info("chain selected", map[string]any{
		"chain": id.String(),
		"asset": asset.Symbol,
	})
	return asset, nil
}

// SelectAsset sets the asset pick. Assets with no deployment on the
// selected chain are rejected, so re-selection of an unavailable asset
// never sticks.
func (t *Terminal) SelectAsset(symbol string) error {
	t.mu.Lock()
	chain := t.selectedChain
	t.mu.Unlock()

	_, ok, err := t.registry.ResolveAddress(chain, symbol)
	if err != nil {
		return err
	}
	if !ok {
		return &types.TerminalError{
			Code:    types.ErrUnsupportedAsset,
			Message: symbol + " is not available on chain " + chain.String(),
		}
	}

	asset, _ := t.registry.AssetBySymbol(symbol)
	t.mu.Lock()
	t.selectedAsset = asset
	t.mu.Unlock()
	return nil
}

// Selection returns the current chain/asset pick.
func (t *Terminal) Selection() (types.ChainID, types.Asset) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.selectedChain, t.selectedAsset
}

// BuildRoute validates and assembles the rail request for an operation
// against the currently connected wallet.
func (t *Terminal) BuildRoute(req routing.Request) (*types.RouteRequest, error) {
	return t.selector.BuildRoute(t.wallet.Connection(), req)
}

// QuoteBridge builds and validates a bridge route, then fetches the
// aggregator quote. The quote call never fires unless the route
// validated first.
func (t *Terminal) QuoteBridge(ctx context.Context, req routing.Request) (*clients.BridgeQuote, error) {
	req.Operation = types.OpBridge

	route, err := t.BuildRoute(req)
	if err != nil {
		return nil, err
	}

	quoteCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.bridge.Quote(quoteCtx, route.Bridge)
}

// RecordTransaction appends a provider-acknowledged operation to the
// session log. Returns false for duplicates, which are dropped.
func (t *Terminal) RecordTransaction(rec types.TransactionRecord) bool {
	recorded := t.tracker.Record(rec)
	if recorded {
		t.metrics.IncCounter("transaction_recorded", map[string]string{"network": rec.Network})
	}
	return recorded
}

// Transactions lists the session log, most recent first.
func (t *Terminal) Transactions() []types.TransactionRecord {
	return t.tracker.List()
}
