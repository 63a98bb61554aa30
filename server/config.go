package server

import (
	"os"
	"strings"

	"github.com/Valerii9116/TimaxPaySolanaTransak/types"
)

// Config is the backend's environment-sourced configuration, built once
// at process start. Handlers receive it explicitly; nothing reads the
// environment after startup.
type Config struct {
	Port                   string
	WalletConnectProjectID string
	TransakAPIKey          string
	TransakAPISecret       string
	TransakEnvironment     string
	ReferrerDomain         string
	AllowedOrigins         []string
	LogLevel               string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// LoadConfig reads the backend configuration from the environment.
func LoadConfig() *Config {
	return &Config{
		Port:                   getEnv("PORT", "8080"),
		WalletConnectProjectID: os.Getenv("WALLETCONNECT_PROJECT_ID"),
		TransakAPIKey:          os.Getenv("TRANSAK_API_KEY"),
		TransakAPISecret:       os.Getenv("TRANSAK_API_SECRET"),
		TransakEnvironment:     getEnv("TRANSAK_ENVIRONMENT", "STAGING"),
		ReferrerDomain:         getEnv("REFERRER_DOMAIN", "merch.timaxpay.com"),
		AllowedOrigins:         strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
	}
}

// Validate reports missing required secrets. This is the only error
// class that halts the application; everything else is served as a
// per-request failure.
func (c *Config) Validate() error {
	if c.WalletConnectProjectID == "" || c.TransakAPIKey == "" || c.TransakAPISecret == "" {
		return &types.TerminalError{
			Code:    types.ErrConfigMissing,
			Message: "server configuration is incomplete: WalletConnect and Transak API keys are required",
		}
	}
	return nil
}
