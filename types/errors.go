package types

// TerminalError is the typed error returned across component boundaries.
// Validation failures are returned as values, never thrown as panics, so
// the UI can render a specific, actionable message per code.
type TerminalError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func (e *TerminalError) Error() string {
	return e.Message
}

// Error codes
const (
	// Required secret/env absent. Fatal at startup; nothing else halts
	// the application.
	ErrConfigMissing = "CONFIG_MISSING"

	// Route cannot be built for the current selection. Recoverable.
	ErrUnsupportedNetwork = "UNSUPPORTED_NETWORK"
	ErrUnsupportedAsset   = "UNSUPPORTED_ASSET"

	// Operation not valid for the connected wallet type.
	ErrIncompatibleEcosystem = "INCOMPATIBLE_ECOSYSTEM"

	// Amount validation.
	ErrBelowMinimum  = "BELOW_MINIMUM"
	ErrInvalidAmount = "INVALID_AMOUNT"

	// Malformed or incomplete request body.
	ErrInvalidRequest = "INVALID_REQUEST"

	// No wallet connected when the operation requires one.
	ErrNotConnected = "NOT_CONNECTED"

	// External API returned non-2xx. Surfaced with status and message,
	// recoverable via user-initiated re-submit only.
	ErrProvider = "PROVIDER_ERROR"

	// Browser blocked the payment widget window.
	ErrPopupBlocked = "POPUP_BLOCKED"

	// User declined a wallet prompt. No system state changes.
	ErrWalletRejected = "WALLET_REJECTED"
)

// IsTerminalError extracts a TerminalError from err, if it is one.
func IsTerminalError(err error) (*TerminalError, bool) {
	te, ok := err.(*TerminalError)
	return te, ok
}
