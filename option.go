package terminal

import (
	"time"

	"github.com/Valerii9116/TimaxPaySolanaTransak/logger"
	"github.com/Valerii9116/TimaxPaySolanaTransak/metrics"
)

// Option configures optional terminal behavior.
type Option func(*Terminal)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log logger.Logger) Option {
	return func(t *Terminal) {
		if log != nil {
			t.log = log
		}
	}
}

// WithMetrics sets the metrics recorder. Defaults to a no-op recorder.
func WithMetrics(rec metrics.Recorder) Option {
	return func(t *Terminal) {
		if rec != nil {
			t.metrics = rec
		}
	}
}

// WithTimeout overrides the timeout used for outbound provider calls.
func WithTimeout(d time.Duration) Option {
	return func(t *Terminal) {
		if d > 0 {
			t.timeout = d
		}
	}
}

// WithBridgeBaseURL overrides the bridge aggregator endpoint. Intended
// for tests pointed at a local stub.
func WithBridgeBaseURL(base string) Option {
	return func(t *Terminal) {
		t.bridgeBaseURL = base
	}
}
