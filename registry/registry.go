// Package registry holds the static chain and asset tables and resolves
// which assets are legal on which chains. Tables are populated at
// construction and never mutated afterwards; iteration order is the
// insertion order below, which the UI relies on.
package registry

import (
	"fmt"

	"github.com/Valerii9116/TimaxPaySolanaTransak/types"
)

type Registry struct {
	chains     []types.Chain
	chainIndex map[types.ChainID]int

	assets     []types.Asset
	assetIndex map[string]int

	// deployments maps asset symbol -> chain -> on-chain presence.
	// Absence means the asset is unavailable on that chain.
	deployments map[string]map[types.ChainID]types.TokenDeployment

	// rampNetworks maps a chain to the ramp provider's network-name
	// string. Chains without a mapping cannot use the fiat rail.
	rampNetworks map[types.ChainID]string

	// bridgeChains is the set of chains the bridge aggregator accepts.
	bridgeChains map[types.ChainID]struct{}
}

// New builds the registry with the terminal's supported chains and
// assets.
func New() *Registry {
	r := &Registry{
		chainIndex:   make(map[types.ChainID]int),
		assetIndex:   make(map[string]int),
		deployments:  make(map[string]map[types.ChainID]types.TokenDeployment),
		rampNetworks: make(map[types.ChainID]string),
		bridgeChains: make(map[types.ChainID]struct{}),
	}

	r.registerChain(types.Chain{ID: types.ChainEthereum, Name: "Ethereum", Ecosystem: types.EcosystemEVM, NativeSymbol: "ETH", NativeDecimals: 18})
	r.registerChain(types.Chain{ID: types.ChainPolygon, Name: "Polygon", Ecosystem: types.EcosystemEVM, NativeSymbol: "MATIC", NativeDecimals: 18})
	r.registerChain(types.Chain{ID: types.ChainArbitrum, Name: "Arbitrum One", Ecosystem: types.EcosystemEVM, NativeSymbol: "ETH", NativeDecimals: 18})
	r.registerChain(types.Chain{ID: types.ChainBase, Name: "Base", Ecosystem: types.EcosystemEVM, NativeSymbol: "ETH", NativeDecimals: 18})
	r.registerChain(types.Chain{ID: types.ChainSolana, Name: "Solana", Ecosystem: types.EcosystemSolana, NativeSymbol: "SOL", NativeDecimals: 9})

	r.registerAsset(types.Asset{Symbol: "ETH", Name: "Ethereum", Ecosystems: []types.Ecosystem{types.EcosystemEVM}})
	r.registerAsset(types.Asset{Symbol: "USDC", Name: "USD Coin", Ecosystems: []types.Ecosystem{types.EcosystemEVM, types.EcosystemSolana}})
	r.registerAsset(types.Asset{Symbol: "USDT", Name: "Tether USD", Ecosystems: []types.Ecosystem{types.EcosystemEVM, types.EcosystemSolana}})
	r.registerAsset(types.Asset{Symbol: "MATIC", Name: "Polygon", Ecosystems: []types.Ecosystem{types.EcosystemEVM}})
	r.registerAsset(types.Asset{Symbol: "WETH", Name: "Wrapped Ethereum", Ecosystems: []types.Ecosystem{types.EcosystemEVM}})
	r.registerAsset(types.Asset{Symbol: "WBTC", Name: "Wrapped Bitcoin", Ecosystems: []types.Ecosystem{types.EcosystemEVM}})
	r.registerAsset(types.Asset{Symbol: "SOL", Name: "Solana", Ecosystems: []types.Ecosystem{types.EcosystemSolana}})

	// Ethereum
	r.registerDeployment("ETH", types.ChainEthereum, types.NativeAddress, 18)
	r.registerDeployment("USDC", types.ChainEthereum, "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", 6)
	r.registerDeployment("USDT", types.ChainEthereum, "0xdAC17F958D2ee523a2206206994597C13D831ec7", 6)
	r.registerDeployment("WBTC", types.ChainEthereum, "0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599", 8)

	// Polygon
	r.registerDeployment("MATIC", types.ChainPolygon, types.NativeAddress, 18)
	r.registerDeployment("USDC", types.ChainPolygon, "0x3c499c542cEF5E3811e1192ce70d8cC03d5c3359", 6)
	r.registerDeployment("USDT", types.ChainPolygon, "0xc2132D05D31c914a87C6611C10748AEb04B58e8F", 6)
	r.registerDeployment("WETH", types.ChainPolygon, "0x7ceB23fD6bC0adD59E62ac25578270cFf1b9f619", 18)

	// Arbitrum
	r.registerDeployment("ETH", types.ChainArbitrum, types.NativeAddress, 18)
	r.registerDeployment("USDC", types.ChainArbitrum, "0xaf88d065e77c8cC2239327C5EDb3A432268e5831", 6)
	r.registerDeployment("USDT", types.ChainArbitrum, "0xFd086bC7CD5C481DCC9C85ebE478A1C0b69FCbb9", 6)
	r.registerDeployment("WBTC", types.ChainArbitrum, "0x2f2a2543B76A4166549F7aaB2e75Bef0aefC5B0f", 8)

	// Base
	r.registerDeployment("ETH", types.ChainBase, types.NativeAddress, 18)
	r.registerDeployment("USDC", types.ChainBase, "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913", 6)
	r.registerDeployment("WETH", types.ChainBase, "0x4200000000000000000000000000000000000006", 18)

	// Solana
	r.registerDeployment("SOL", types.ChainSolana, types.NativeAddress, 9)
	r.registerDeployment("USDC", types.ChainSolana, "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", 6)
	r.registerDeployment("USDT", types.ChainSolana, "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB", 6)

	// Ramp provider network names
	r.rampNetworks[types.ChainEthereum] = "ethereum"
	r.rampNetworks[types.ChainPolygon] = "polygon"
	r.rampNetworks[types.ChainArbitrum] = "arbitrum"
	r.rampNetworks[types.ChainBase] = "base"
	r.rampNetworks[types.ChainSolana] = "solana"

	// Bridge aggregator accepts EVM chains only
	for _, id := range []types.ChainID{types.ChainEthereum, types.ChainPolygon, types.ChainArbitrum, types.ChainBase} {
		r.bridgeChains[id] = struct{}{}
	}

	return r
}

func (r *Registry) registerChain(c types.Chain) {
	r.chainIndex[c.ID] = len(r.chains)
	r.chains = append(r.chains, c)
}

func (r *Registry) registerAsset(a types.Asset) {
	r.assetIndex[a.Symbol] = len(r.assets)
	r.assets = append(r.assets, a)
}

func (r *Registry) registerDeployment(symbol string, chain types.ChainID, address string, decimals int) {
	m, ok := r.deployments[symbol]
	if !ok {
		m = make(map[types.ChainID]types.TokenDeployment)
		r.deployments[symbol] = m
	}
	m[chain] = types.TokenDeployment{Address: address, Decimals: decimals}
}

// Chains returns all supported chains in registration order.
func (r *Registry) Chains() []types.Chain {
	out := make([]types.Chain, len(r.chains))
	copy(out, r.chains)
	return out
}

// ChainByID looks up a chain. An unknown id is a programmer error, not a
// user error, and is the only condition the resolver reports as error.
func (r *Registry) ChainByID(id types.ChainID) (types.Chain, error) {
	idx, ok := r.chainIndex[id]
	if !ok {
		return types.Chain{}, fmt.Errorf("unknown chain id: %s", id)
	}
	return r.chains[idx], nil
}

// Assets returns all known assets in registration order.
func (r *Registry) Assets() []types.Asset {
	out := make([]types.Asset, len(r.assets))
	copy(out, r.assets)
	return out
}

// AssetBySymbol looks up an asset by symbol.
func (r *Registry) AssetBySymbol(symbol string) (types.Asset, bool) {
	idx, ok := r.assetIndex[symbol]
	if !ok {
		return types.Asset{}, false
	}
	return r.assets[idx], true
}

// RampNetwork resolves a chain to the ramp provider's network-name
// string. The second return is false when the chain has no provider
// mapping, in which case the fiat rail must not be offered.
func (r *Registry) RampNetwork(id types.ChainID) (string, bool) {
	name, ok := r.rampNetworks[id]
	return name, ok
}

// BridgeSupported reports whether the bridge aggregator accepts the
// chain.
func (r *Registry) BridgeSupported(id types.ChainID) bool {
	_, ok := r.bridgeChains[id]
	return ok
}
