package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Valerii9116/TimaxPaySolanaTransak/types"
)

func TestBuildBridgeRoute(t *testing.T) {
	s := newTestSelector()

	route, err := s.BuildRoute(evmConn(types.ChainPolygon), Request{
		Operation: types.OpBridge,
		Chain:     types.ChainPolygon,
		Asset:     "USDC",
		ToChain:   types.ChainBase,
		Amount:    "1.5",
	})
	require.NoError(t, err)

	assert.Equal(t, types.RailBridge, route.Rail)
	require.NotNil(t, route.Bridge)

	b := route.Bridge
	assert.Equal(t, types.ChainPolygon, b.FromChain)
	assert.Equal(t, types.ChainBase, b.ToChain)
	assert.Equal(t, "0x3c499c542cEF5E3811e1192ce70d8cC03d5c3359", b.FromToken)
	assert.Equal(t, "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913", b.ToToken)

	// Scaled by the source asset's decimals.
	assert.Equal(t, "1500000", b.FromAmount)

	assert.Equal(t, evmAddr, b.FromAddress)
	assert.Equal(t, "Timax_swap", b.Integrator)
	assert.Equal(t, "0.005", b.Fee)
	assert.Equal(t, "0x34accc793fD8C2A8e262C8C95b18D706bc6022f0", b.Referrer)
}

func TestBuildBridgeRouteNativeUsesZeroAddress(t *testing.T) {
	s := newTestSelector()

	route, err := s.BuildRoute(evmConn(types.ChainEthereum), Request{
		Operation: types.OpBridge,
		Chain:     types.ChainEthereum,
		Asset:     "ETH",
		ToChain:   types.ChainArbitrum,
		Amount:    "0.25",
	})
	require.NoError(t, err)

	b := route.Bridge
	assert.Equal(t, zeroAddress, b.FromToken)
	assert.Equal(t, zeroAddress, b.ToToken)
	assert.Equal(t, "250000000000000000", b.FromAmount)
}

func TestBuildBridgeRouteDecimalsFollowSourceChain(t *testing.T) {
	s := newTestSelector()

	// WETH is 18 decimals on Polygon even though the destination asset
	// defaults to the same symbol.
	route, err := s.BuildRoute(evmConn(types.ChainPolygon), Request{
		Operation: types.OpBridge,
		Chain:     types.ChainPolygon,
		Asset:     "WETH",
		ToChain:   types.ChainBase,
		Amount:    "1.5",
	})
	require.NoError(t, err)
	assert.Equal(t, "1500000000000000000", route.Bridge.FromAmount)
}

func TestBuildBridgeRouteDestinationAsset(t *testing.T) {
	s := newTestSelector()

	route, err := s.BuildRoute(evmConn(types.ChainPolygon), Request{
		Operation: types.OpBridge,
		Chain:     types.ChainPolygon,
		Asset:     "USDC",
		ToChain:   types.ChainEthereum,
		ToAsset:   "USDT",
		Amount:    "10",
	})
	require.NoError(t, err)
	assert.Equal(t, "0xdAC17F958D2ee523a2206206994597C13D831ec7", route.Bridge.ToToken)
}

func TestBuildBridgeRouteDestinationAddress(t *testing.T) {
	s := newTestSelector()

	route, err := s.BuildRoute(evmConn(types.ChainPolygon), Request{
		Operation:          types.OpBridge,
		Chain:              types.ChainPolygon,
		Asset:              "USDC",
		ToChain:            types.ChainBase,
		Amount:             "10",
		DestinationAddress: evmDest,
	})
	require.NoError(t, err)
	assert.Equal(t, evmDest, route.Bridge.ToAddress)

	_, err = s.BuildRoute(evmConn(types.ChainPolygon), Request{
		Operation:          types.OpBridge,
		Chain:              types.ChainPolygon,
		Asset:              "USDC",
		ToChain:            types.ChainBase,
		Amount:             "10",
		DestinationAddress: "bogus",
	})
	requireCode(t, err, types.ErrInvalidRequest)
}

func TestBuildBridgeRouteRejections(t *testing.T) {
	s := newTestSelector()

	tests := []struct {
		name string
		req  Request
		code string
	}{
		{
			name: "missing destination chain",
			req: Request{
				Operation: types.OpBridge,
				Chain:     types.ChainPolygon,
				Asset:     "USDC",
				Amount:    "10",
			},
			code: types.ErrInvalidRequest,
		},
		{
			name: "solana destination unsupported",
			req: Request{
				Operation: types.OpBridge,
				Chain:     types.ChainPolygon,
				Asset:     "USDC",
				ToChain:   types.ChainSolana,
				Amount:    "10",
			},
			code: types.ErrUnsupportedNetwork,
		},
		{
			name: "destination asset unavailable",
			req: Request{
				Operation: types.OpBridge,
				Chain:     types.ChainPolygon,
				Asset:     "USDT",
				ToChain:   types.ChainBase,
				Amount:    "10",
			},
			code: types.ErrUnsupportedAsset,
		},
		{
			name: "zero amount",
			req: Request{
				Operation: types.OpBridge,
				Chain:     types.ChainPolygon,
				Asset:     "USDC",
				ToChain:   types.ChainBase,
				Amount:    "0",
			},
			code: types.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.BuildRoute(evmConn(types.ChainPolygon), tt.req)
			requireCode(t, err, tt.code)
		})
	}
}
