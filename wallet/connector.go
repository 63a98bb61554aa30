package wallet

import (
	"context"

	"github.com/Valerii9116/TimaxPaySolanaTransak/types"
)

// Connector is the narrow capability contract over a wallet SDK. The
// manager and route selector depend on this interface, never on a
// concrete third-party connector type. Each call resolves exactly once;
// SDK event streams are adapted to single-resolution calls by the
// implementation.
type Connector interface {
	// Ecosystem identifies which chain family the connector serves.
	Ecosystem() types.Ecosystem

	// Connect prompts the user and resolves with the connected address
	// and active chain, or an error on rejection/failure.
	Connect(ctx context.Context) (address string, chainID types.ChainID, err error)

	// Disconnect tears the session down. Must be safe to call when not
	// connected.
	Disconnect(ctx context.Context) error

	// SwitchChain asks the wallet to change its active chain. Only
	// meaningful for EVM connectors; others return an error.
	SwitchChain(ctx context.Context, id types.ChainID) error
}
