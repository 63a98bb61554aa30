// Package wallet tracks which wallet ecosystem is connected and keeps
// the single-active-ecosystem invariant: an address from one ecosystem
// is never observable together with a connected flag from the other.
package wallet

import (
	"context"
	"fmt"
	"sync"

	"github.com/Valerii9116/TimaxPaySolanaTransak/logger"
	"github.com/Valerii9116/TimaxPaySolanaTransak/types"
)

// State is the connection lifecycle position.
type State string

const (
	StateDisconnected State = "disconnected"
	StateConnecting   State = "connecting"
	StateConnected    State = "connected"
)

type Manager struct {
	mu         sync.Mutex
	connectors map[types.Ecosystem]Connector
	state      State
	conn       types.WalletConnection

	// selectedChain is the merchant's chain pick, used to detect a
	// mismatch against the wallet's active chain (EVM only).
	selectedChain types.ChainID

	log logger.Logger
}

func NewManager(log logger.Logger) *Manager {
	if log == nil {
		log = logger.NoopLogger{}
	}
	return &Manager{
		connectors: make(map[types.Ecosystem]Connector),
		state:      StateDisconnected,
		log:        log,
	}
}

// Register adds a connector for its ecosystem, replacing any previous
// one. Call during setup, before Connect.
func (m *Manager) Register(c Connector) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connectors[c.Ecosystem()] = c
}

// Connect establishes a session on the given ecosystem. If the other
// ecosystem is currently connected it is disconnected, and its address
// cleared, before the new connect is attempted.
func (m *Manager) Connect(ctx context.Context, eco types.Ecosystem) (types.WalletConnection, error) {
	m.mu.Lock()
	connector, ok := m.connectors[eco]
	if !ok {
		m.mu.Unlock()
		return types.WalletConnection{}, &types.TerminalError{
			Code:    types.ErrUnsupportedNetwork,
			Message: fmt.Sprintf("no connector registered for ecosystem %s", eco),
		}
	}

	prev := m.conn
	prevConnector := m.connectors[prev.Ecosystem]
	// Clear the previous connection before anything else happens so no
	// reader can see both ecosystems populated.
	m.conn = types.WalletConnection{}
	m.state = StateConnecting
	m.mu.Unlock()

	if prev.Connected() && prev.Ecosystem != eco && prevConnector != nil {
		if err := prevConnector.Disconnect(ctx); err != nil {
			m.log.Warn("disconnect of previous ecosystem failed", map[string]any{
				"ecosystem": prev.Ecosystem.String(),
				"error":     err.Error(),
			})
		}
	}

	address, chainID, err := connector.Connect(ctx)
	if err != nil {
		m.mu.Lock()
		m.state = StateDisconnected
		m.mu.Unlock()
		return types.WalletConnection{}, &types.TerminalError{
			Code:    types.ErrWalletRejected,
			Message: fmt.Sprintf("wallet connection failed: %v", err),
		}
	}

	conn := types.WalletConnection{
		Ecosystem:     eco,
		Address:       address,
		ActiveChainID: chainID,
	}

	m.mu.Lock()
	m.conn = conn
	m.state = StateConnected
	m.mu.Unlock()

	m.log.Info("wallet connected", map[string]any{
		"ecosystem": eco.String(),
		"chain":     chainID.String(),
	})

	return conn, nil
}

// Disconnect tears down the active session, if any. State is reset
// before the connector call returns so a subsequent connect never races
// a half-cleared session.
func (m *Manager) Disconnect(ctx context.Context) error {
	m.mu.Lock()
	prev := m.conn
	connector := m.connectors[prev.Ecosystem]
	m.conn = types.WalletConnection{}
	m.state = StateDisconnected
	m.mu.Unlock()

	if !prev.Connected() || connector == nil {
		return nil
	}
	return connector.Disconnect(ctx)
}

// SwitchEcosystem moves the session to the other ecosystem. Equivalent
// to Connect, which already forces the disconnect first.
func (m *Manager) SwitchEcosystem(ctx context.Context, eco types.Ecosystem) (types.WalletConnection, error) {
	return m.Connect(ctx, eco)
}

// SelectChain records the merchant's chain pick for mismatch detection.
func (m *Manager) SelectChain(id types.ChainID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selectedChain = id
}

// Mismatched reports whether an EVM wallet's active chain differs from
// the selected chain. Solana has a single supported network, so it has
// no mismatch concept.
func (m *Manager) Mismatched() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateConnected || m.conn.Ecosystem != types.EcosystemEVM {
		return false
	}
	return m.selectedChain != "" && m.conn.ActiveChainID != m.selectedChain
}

// SwitchNetwork asks the connected EVM wallet to move to the selected
// chain. On refusal the connection stays on its current chain and the
// mismatch persists.
func (m *Manager) SwitchNetwork(ctx context.Context) error {
	m.mu.Lock()
	conn := m.conn
	target := m.selectedChain
	connector := m.connectors[conn.Ecosystem]
	m.mu.Unlock()

	if !conn.Connected() {
		return &types.TerminalError{Code: types.ErrNotConnected, Message: "no wallet connected"}
	}
	if conn.Ecosystem != types.EcosystemEVM {
		return &types.TerminalError{
			Code:    types.ErrIncompatibleEcosystem,
			Message: "network switching only applies to EVM wallets",
		}
	}
	if target == "" || target == conn.ActiveChainID {
		return nil
	}

	if err := connector.SwitchChain(ctx, target); err != nil {
		return &types.TerminalError{
			Code:    types.ErrWalletRejected,
			Message: fmt.Sprintf("wallet refused network switch: %v", err),
		}
	}

	m.mu.Lock()
	if m.conn.Ecosystem == types.EcosystemEVM && m.conn.Address == conn.Address {
		m.conn.ActiveChainID = target
	}
	m.mu.Unlock()
	return nil
}

// Connection returns a snapshot of the current connection.
func (m *Manager) Connection() types.WalletConnection {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.conn
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}
