// Command terminal-server runs the backend proxy for the payment
// terminal front end. It holds the provider secrets and exposes the
// three endpoints the browser is allowed to call.
package main

import (
	"fmt"
	"os"

	"github.com/Valerii9116/TimaxPaySolanaTransak/clients"
	"github.com/Valerii9116/TimaxPaySolanaTransak/logger"
	"github.com/Valerii9116/TimaxPaySolanaTransak/metrics"
	"github.com/Valerii9116/TimaxPaySolanaTransak/server"
)

func main() {
	cfg := server.LoadConfig()

	log := logger.NewZapLogger(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Error("startup aborted", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	transak := clients.NewTransakClient(clients.TransakConfig{
		APIKey:         cfg.TransakAPIKey,
		APISecret:      cfg.TransakAPISecret,
		Environment:    cfg.TransakEnvironment,
		ReferrerDomain: cfg.ReferrerDomain,
	}, log)

	h := server.NewHandler(cfg, transak, log, metrics.NewPrometheusRecorder())

	addr := ":" + cfg.Port
	log.Info("terminal proxy listening", map[string]any{
		"addr":        addr,
		"environment": cfg.TransakEnvironment,
	})

	if err := server.Run(h, addr); err != nil {
		fmt.Fprintf(os.Stderr, "server exited: %v\n", err)
		os.Exit(1)
	}
}
