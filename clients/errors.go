package clients

import (
	"fmt"

	"github.com/Valerii9116/TimaxPaySolanaTransak/types"
)

// Provider failure messages keyed by status. 4xx bodies from the ramp
// provider are terse; these give the UI something actionable while the
// raw status and body travel in the error's Data field.
const (
	msgUnauthorized   = "invalid API credentials or unauthorized domain"
	msgBadRequest     = "invalid widget configuration or referrer domain not whitelisted"
	msgForbidden      = "access forbidden - check referrer domain whitelist with the provider"
	msgRateLimited    = "rate limit exceeded - please try again later"
	msgTimeout        = "request timeout - please try again"
	msgGenericFailure = "provider request failed"
)

// providerError wraps a non-2xx provider response in the typed error
// the UI branches on. Never retried automatically; re-submit is a user
// action.
func providerError(status int, body string) *types.TerminalError {
	msg := msgGenericFailure
	switch status {
	case 400:
		msg = msgBadRequest
	case 401:
		msg = msgUnauthorized
	case 403:
		msg = msgForbidden
	case 408:
		msg = msgTimeout
	case 429:
		msg = msgRateLimited
	}

	return &types.TerminalError{
		Code:    types.ErrProvider,
		Message: fmt.Sprintf("%s (status %d)", msg, status),
		Data: map[string]any{
			"status": status,
			"body":   body,
		},
	}
}

// timeoutError marks a provider call that exceeded its bound.
func timeoutError(err error) *types.TerminalError {
	return &types.TerminalError{
		Code:    types.ErrProvider,
		Message: msgTimeout,
		Data:    map[string]any{"status": 408, "cause": err.Error()},
	}
}
