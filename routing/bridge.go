package routing

import (
	"fmt"

	"github.com/Valerii9116/TimaxPaySolanaTransak/types"
	"github.com/Valerii9116/TimaxPaySolanaTransak/utils"
)

// zeroAddress is how the bridge aggregator denotes a chain's native
// currency in quote requests.
const zeroAddress = "0x0000000000000000000000000000000000000000"

// buildBridgeRoute produces the cross-chain quote request. fromAmount
// is the human amount scaled by the source asset's decimals on the
// source chain, never the destination's.
func (s *Selector) buildBridgeRoute(conn types.WalletConnection, chain types.Chain, req Request) (*types.RouteRequest, error) {
	if !s.registry.BridgeSupported(chain.ID) {
		return nil, &types.TerminalError{
			Code:    types.ErrUnsupportedNetwork,
			Message: fmt.Sprintf("%s is not supported by the bridge aggregator", chain.Name),
		}
	}
	if req.ToChain == "" {
		return nil, &types.TerminalError{
			Code:    types.ErrInvalidRequest,
			Message: "bridge requires a destination chain",
		}
	}
	toChain, err := s.registry.ChainByID(req.ToChain)
	if err != nil {
		return nil, err
	}
	if !s.registry.BridgeSupported(toChain.ID) {
		return nil, &types.TerminalError{
			Code:    types.ErrUnsupportedNetwork,
			Message: fmt.Sprintf("%s is not supported by the bridge aggregator", toChain.Name),
		}
	}

	fromDep, err := s.resolveDeployment(chain, req.Asset)
	if err != nil {
		return nil, err
	}

	toSymbol := req.ToAsset
	if toSymbol == "" {
		toSymbol = req.Asset
	}
	toDep, err := s.resolveDeployment(toChain, toSymbol)
	if err != nil {
		return nil, err
	}

	if err := s.positiveAmount(req.Amount); err != nil {
		return nil, err
	}
	raw, err := utils.ParseAmountWithDecimals(req.Amount, fromDep.Decimals)
	if err != nil {
		return nil, &types.TerminalError{
			Code:    types.ErrInvalidAmount,
			Message: err.Error(),
		}
	}

	bridge := &types.BridgeQuoteRequest{
		FromChain:   chain.ID,
		ToChain:     toChain.ID,
		FromToken:   bridgeToken(fromDep),
		ToToken:     bridgeToken(toDep),
		FromAmount:  raw.String(),
		FromAddress: conn.Address,
		Integrator:  s.cfg.BridgeIntegrator,
		Fee:         s.cfg.BridgeFeePercent.String(),
		Referrer:    s.cfg.BridgeFeeRecipient,
	}
	if req.DestinationAddress != "" {
		if err := utils.ValidateAddress(req.DestinationAddress, toChain.Ecosystem); err != nil {
			return nil, &types.TerminalError{
				Code:    types.ErrInvalidRequest,
				Message: fmt.Sprintf("invalid destination address: %v", err),
			}
		}
		bridge.ToAddress = req.DestinationAddress
	}

	return &types.RouteRequest{
		Operation: req.Operation,
		Rail:      types.RailBridge,
		ChainID:   chain.ID,
		Bridge:    bridge,
	}, nil
}

func bridgeToken(dep types.TokenDeployment) string {
	if dep.IsNative() {
		return zeroAddress
	}
	return dep.Address
}
