package routing

import (
	"fmt"

	"github.com/Valerii9116/TimaxPaySolanaTransak/types"
	"github.com/Valerii9116/TimaxPaySolanaTransak/utils"
)

// buildReceiveRoute produces the direct-receive descriptor shown as a
// QR/address display. Purely local; no provider call is made.
func (s *Selector) buildReceiveRoute(conn types.WalletConnection, chain types.Chain, req Request) (*types.RouteRequest, error) {
	dep, err := s.resolveDeployment(chain, req.Asset)
	if err != nil {
		return nil, err
	}

	if req.Amount != "" {
		if err := s.positiveAmount(req.Amount); err != nil {
			return nil, err
		}
	}

	return &types.RouteRequest{
		Operation: req.Operation,
		Rail:      types.RailReceive,
		ChainID:   chain.ID,
		Receive: &types.ReceiveRequest{
			ChainID:         chain.ID,
			AssetSymbol:     req.Asset,
			TokenAddress:    dep.Address,
			Decimals:        dep.Decimals,
			MerchantAddress: conn.Address,
			Amount:          req.Amount,
		},
	}, nil
}

// buildTransferRoute produces the on-chain send descriptor. Native
// assets target the chain's native transfer primitive; tokens target
// the resolved contract/mint with registry-sourced decimal scaling.
func (s *Selector) buildTransferRoute(conn types.WalletConnection, chain types.Chain, req Request) (*types.RouteRequest, error) {
	dep, err := s.resolveDeployment(chain, req.Asset)
	if err != nil {
		return nil, err
	}

	if err := s.positiveAmount(req.Amount); err != nil {
		return nil, err
	}

	if err := utils.ValidateAddress(req.ToAddress, chain.Ecosystem); err != nil {
		return nil, &types.TerminalError{
			Code:    types.ErrInvalidRequest,
			Message: fmt.Sprintf("invalid recipient: %v", err),
		}
	}

	raw, err := utils.ParseAmountWithDecimals(req.Amount, dep.Decimals)
	if err != nil {
		return nil, &types.TerminalError{
			Code:    types.ErrInvalidAmount,
			Message: err.Error(),
		}
	}

	transfer := &types.TransferRequest{
		ChainID:     chain.ID,
		AssetSymbol: req.Asset,
		Native:      dep.IsNative(),
		Decimals:    dep.Decimals,
		From:        utils.ChecksumAddress(conn.Address, chain.Ecosystem),
		To:          utils.ChecksumAddress(req.ToAddress, chain.Ecosystem),
		Amount:      req.Amount,
		RawAmount:   raw.String(),
	}
	if !dep.IsNative() {
		transfer.TokenAddress = dep.Address
	}

	return &types.RouteRequest{
		Operation: req.Operation,
		Rail:      types.RailTransfer,
		ChainID:   chain.ID,
		Transfer:  transfer,
	}, nil
}
