// Package routing decides, for a connected wallet and a chain/asset
// selection, which payment rail serves an operation and builds that
// rail's request payload. All validation failures come back as typed
// errors so the UI can render a specific message; nothing here issues
// network calls.
package routing

import (
	"fmt"
	"time"

	"github.com/Valerii9116/TimaxPaySolanaTransak/logger"
	"github.com/Valerii9116/TimaxPaySolanaTransak/metrics"
	"github.com/Valerii9116/TimaxPaySolanaTransak/registry"
	"github.com/Valerii9116/TimaxPaySolanaTransak/types"
	"github.com/Valerii9116/TimaxPaySolanaTransak/utils"
)

// Request carries the merchant's current selection into BuildRoute.
type Request struct {
	Operation types.Operation
	Chain     types.ChainID
	Asset     string

	// Human-readable decimal amount. Optional for ACCEPT_FIAT and
	// ACCEPT_CRYPTO, required elsewhere.
	Amount string

	// SEND destination address.
	ToAddress string

	// BRIDGE destination leg.
	ToChain types.ChainID
	ToAsset string

	// Optional bridge payout address; defaults to the sender.
	DestinationAddress string
}

type Selector struct {
	registry *registry.Registry
	cfg      types.TerminalConfig
	log      logger.Logger
	metrics  metrics.Recorder
}

func NewSelector(reg *registry.Registry, cfg types.TerminalConfig, log logger.Logger, rec metrics.Recorder) *Selector {
	if log == nil {
		log = logger.NoopLogger{}
	}
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	return &Selector{registry: reg, cfg: cfg, log: log, metrics: rec}
}

// BuildRoute validates the selection against the connected wallet and
// produces the rail request for the operation, or a typed error.
func (s *Selector) BuildRoute(conn types.WalletConnection, req Request) (*types.RouteRequest, error) {
	start := time.Now()

	route, err := s.buildRoute(conn, req)
	labels := map[string]string{"network": req.Chain.String()}
	if err != nil {
		s.metrics.IncCounter("route_rejected", labels)
		return nil, err
	}

	s.metrics.IncCounter("route_built", labels)
	s.metrics.ObserveLatency("build_route", time.Since(start), labels)
	s.log.Debug("route built", map[string]any{
		"operation": req.Operation.String(),
		"rail":      string(route.Rail),
		"chain":     req.Chain.String(),
		"asset":     req.Asset,
	})
	return route, nil
}

func (s *Selector) buildRoute(conn types.WalletConnection, req Request) (*types.RouteRequest, error) {
	if !conn.Connected() {
		return nil, &types.TerminalError{
			Code:    types.ErrNotConnected,
			Message: "connect a wallet before building a route",
		}
	}

	chain, err := s.registry.ChainByID(req.Chain)
	if err != nil {
		return nil, err
	}

	if err := s.checkEcosystem(conn, chain, req.Operation); err != nil {
		return nil, err
	}

	switch req.Operation {
	case types.OpAcceptFiat:
		return s.buildFiatRoute(conn, chain, req, directionBuy)
	case types.OpWithdraw:
		return s.buildFiatRoute(conn, chain, req, directionSell)
	case types.OpAcceptCrypto:
		return s.buildReceiveRoute(conn, chain, req)
	case types.OpSend:
		return s.buildTransferRoute(conn, chain, req)
	case types.OpBridge:
		return s.buildBridgeRoute(conn, chain, req)
	default:
		return nil, &types.TerminalError{
			Code:    types.ErrInvalidRequest,
			Message: fmt.Sprintf("unknown operation: %s", req.Operation),
		}
	}
}

// checkEcosystem enforces operation/wallet compatibility: the selected
// chain must belong to the connected ecosystem, and bridge operations
// are EVM-only in this system.
func (s *Selector) checkEcosystem(conn types.WalletConnection, chain types.Chain, op types.Operation) error {
	if chain.Ecosystem != conn.Ecosystem {
		return &types.TerminalError{
			Code: types.ErrIncompatibleEcosystem,
			Message: fmt.Sprintf("chain %s requires a %s wallet but a %s wallet is connected",
				chain.Name, chain.Ecosystem, conn.Ecosystem),
		}
	}

	if op == types.OpBridge && conn.Ecosystem != types.EcosystemEVM {
		return &types.TerminalError{
			Code:    types.ErrIncompatibleEcosystem,
			Message: "bridge operations require an EVM wallet",
		}
	}

	return nil
}

// resolveDeployment looks the asset up on the chain and converts an
// absent mapping into the typed unavailable error.
func (s *Selector) resolveDeployment(chain types.Chain, symbol string) (types.TokenDeployment, error) {
	dep, ok, err := s.registry.ResolveAddress(chain.ID, symbol)
	if err != nil {
		return types.TokenDeployment{}, err
	}
	if !ok {
		return types.TokenDeployment{}, &types.TerminalError{
			Code:    types.ErrUnsupportedAsset,
			Message: fmt.Sprintf("%s is not available on %s", symbol, chain.Name),
		}
	}
	return dep, nil
}

func (s *Selector) positiveAmount(amount string) error {
	if _, err := utils.ValidateAmount(amount); err != nil {
		return &types.TerminalError{
			Code:    types.ErrInvalidAmount,
			Message: err.Error(),
		}
	}
	return nil
}
