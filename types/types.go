package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ecosystem is a family of chains sharing wallet/connection semantics.
type Ecosystem string

const (
	EcosystemNone   Ecosystem = ""
	EcosystemEVM    Ecosystem = "EVM"
	EcosystemSolana Ecosystem = "SOLANA"
)

func (e Ecosystem) String() string {
	if e == EcosystemNone {
		return "none"
	}
	return string(e)
}

// ChainID identifies a supported chain. EVM chains use their decimal
// chain id ("1", "137"); Solana uses the literal "solana" since only
// mainnet-beta is supported.
type ChainID string

const (
	ChainEthereum ChainID = "1"
	ChainPolygon  ChainID = "137"
	ChainArbitrum ChainID = "42161"
	ChainBase     ChainID = "8453"
	ChainSolana   ChainID = "solana"
)

func (c ChainID) String() string {
	return string(c)
}

// Chain describes one supported network. Chains are registered at init
// and never mutated at runtime.
type Chain struct {
	ID             ChainID   `json:"id"`
	Name           string    `json:"name"`
	Ecosystem      Ecosystem `json:"ecosystem"`
	NativeSymbol   string    `json:"nativeSymbol"`
	NativeDecimals int       `json:"nativeDecimals"`
}

// NativeAddress marks an asset that is the chain's native currency
// rather than a deployed token contract or mint.
const NativeAddress = "native"

// TokenDeployment is one asset's on-chain presence: a contract/mint
// address (or NativeAddress) plus the decimal count used for scaling.
type TokenDeployment struct {
	Address  string `json:"address"`
	Decimals int    `json:"decimals"`
}

// IsNative reports whether the deployment is the chain's native currency.
func (t TokenDeployment) IsNative() bool {
	return t.Address == NativeAddress
}

// Asset describes a currency symbol the terminal can price and move.
// Per-chain deployments live in the registry's address table; an asset
// with no deployment on a chain is unavailable there.
type Asset struct {
	Symbol     string      `json:"symbol"`
	Name       string      `json:"name"`
	Ecosystems []Ecosystem `json:"ecosystems"`
}

// SupportsEcosystem reports whether the asset exists anywhere in the
// given ecosystem.
func (a Asset) SupportsEcosystem(eco Ecosystem) bool {
	for _, e := range a.Ecosystems {
		if e == eco {
			return true
		}
	}
	return false
}

// Operation is a terminal mode selected by the merchant.
type Operation string

const (
	OpAcceptFiat   Operation = "ACCEPT_FIAT"
	OpAcceptCrypto Operation = "ACCEPT_CRYPTO"
	OpSend         Operation = "SEND"
	OpWithdraw     Operation = "WITHDRAW"
	OpBridge       Operation = "BRIDGE"
)

func (o Operation) String() string {
	return string(o)
}

// WalletConnection is the currently connected wallet, if any. At most
// one ecosystem is connected at a time; connecting one force-disconnects
// the other.
type WalletConnection struct {
	Ecosystem     Ecosystem `json:"ecosystem"`
	Address       string    `json:"address"`
	ActiveChainID ChainID   `json:"activeChainId"`
}

// Connected reports whether any wallet is connected.
func (w WalletConnection) Connected() bool {
	return w.Ecosystem != EcosystemNone && w.Address != ""
}

// TransactionType classifies a tracked operation.
type TransactionType string

const (
	TxPayment    TransactionType = "PAYMENT"
	TxWithdrawal TransactionType = "WITHDRAWAL"
	TxBridge     TransactionType = "BRIDGE"
)

// TransactionStatus mirrors the provider's order lifecycle.
type TransactionStatus string

const (
	StatusPending    TransactionStatus = "PENDING"
	StatusProcessing TransactionStatus = "PROCESSING"
	StatusCompleted  TransactionStatus = "COMPLETED"
	StatusFailed     TransactionStatus = "FAILED"
)

// TransactionRecord is one provider-acknowledged operation. Records are
// append-only and deduplicated by the provider-issued ID; a record is
// never mutated after creation.
type TransactionRecord struct {
	ID             string            `json:"id"`
	Type           TransactionType   `json:"type"`
	Status         TransactionStatus `json:"status"`
	CreatedAt      time.Time         `json:"createdAt"`
	FiatAmount     string            `json:"fiatAmount,omitempty"`
	FiatCurrency   string            `json:"fiatCurrency,omitempty"`
	CryptoAmount   string            `json:"cryptoAmount,omitempty"`
	CryptoCurrency string            `json:"cryptoCurrency,omitempty"`
	Network        string            `json:"network,omitempty"`
}

// TerminalConfig carries the route-selection knobs the source kept as
// scattered constants. Built once at process start and passed down; the
// selector never reads ambient state.
type TerminalConfig struct {
	// Minimum fiat amount accepted by the on/off-ramp rail.
	MinFiatAmount decimal.Decimal `json:"minFiatAmount"`

	// Default fiat currency for BUY widgets.
	DefaultFiatCurrency string `json:"defaultFiatCurrency"`

	// Domain whitelisted with the ramp provider.
	ReferrerDomain string `json:"referrerDomain"`

	// Bridge integrator identification and fee routing.
	BridgeIntegrator   string          `json:"bridgeIntegrator"`
	BridgeFeePercent   decimal.Decimal `json:"bridgeFeePercent"`
	BridgeFeeRecipient string          `json:"bridgeFeeRecipient"`

	// Bound on every provider REST call. Calls past this are failed,
	// never retried automatically.
	ProviderTimeout time.Duration `json:"providerTimeout"`
}

// DefaultTerminalConfig returns the values the terminal ships with.
func DefaultTerminalConfig() TerminalConfig {
	return TerminalConfig{
		MinFiatAmount:       decimal.NewFromInt(20),
		DefaultFiatCurrency: "USD",
		ReferrerDomain:      "merch.timaxpay.com",
		BridgeIntegrator:    "Timax_swap",
		BridgeFeePercent:    decimal.NewFromFloat(0.005),
		BridgeFeeRecipient:  "0x34accc793fD8C2A8e262C8C95b18D706bc6022f0",
		ProviderTimeout:     15 * time.Second,
	}
}
