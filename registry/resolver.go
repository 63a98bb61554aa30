package registry

import (
	"github.com/Valerii9116/TimaxPaySolanaTransak/types"
)

// AssetsForChain returns the assets whose supported ecosystems include
// the chain's ecosystem, in registration order. Assets in the returned
// slice may still be undeployed on the specific chain; ResolveAddress
// reports that case so the UI can disable the control.
func (r *Registry) AssetsForChain(id types.ChainID) ([]types.Asset, error) {
	chain, err := r.ChainByID(id)
	if err != nil {
		return nil, err
	}

	var out []types.Asset
	for _, a := range r.assets {
		if a.SupportsEcosystem(chain.Ecosystem) {
			out = append(out, a)
		}
	}
	return out, nil
}

// ResolveAddress looks up an asset's on-chain presence. The second
// return is false when the asset has no deployment on the chain; the
// caller must branch on it explicitly rather than treating the zero
// deployment as usable. Only an unknown chain id produces an error.
func (r *Registry) ResolveAddress(id types.ChainID, symbol string) (types.TokenDeployment, bool, error) {
	if _, err := r.ChainByID(id); err != nil {
		return types.TokenDeployment{}, false, err
	}

	byChain, ok := r.deployments[symbol]
	if !ok {
		return types.TokenDeployment{}, false, nil
	}

	dep, ok := byChain[id]
	return dep, ok, nil
}

// OnChainChanged picks the asset selection after a chain switch: the
// previous asset if it is still deployed on the new chain, otherwise
// the first deployed asset in registration order. A selection must
// never be left dangling on a chain that cannot serve it.
func (r *Registry) OnChainChanged(newChain types.ChainID, previousSymbol string) (types.Asset, error) {
	if _, _, err := r.ResolveAddress(newChain, previousSymbol); err != nil {
		return types.Asset{}, err
	}

	if previousSymbol != "" {
		if _, ok, _ := r.ResolveAddress(newChain, previousSymbol); ok {
			asset, _ := r.AssetBySymbol(previousSymbol)
			return asset, nil
		}
	}

	candidates, err := r.AssetsForChain(newChain)
	if err != nil {
		return types.Asset{}, err
	}
	for _, a := range candidates {
		if _, ok, _ := r.ResolveAddress(newChain, a.Symbol); ok {
			return a, nil
		}
	}

	return types.Asset{}, &types.TerminalError{
		Code:    types.ErrUnsupportedAsset,
		Message: "no assets available on chain " + newChain.String(),
	}
}
