package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Valerii9116/TimaxPaySolanaTransak/types"
)

func TestParseWidgetConfig(t *testing.T) {
	body := []byte(`{
		"productsAvailed": "BUY",
		"walletAddress": "0x34accc793fD8C2A8e262C8C95b18D706bc6022f0",
		"cryptoCurrencyCode": "USDC",
		"network": "polygon",
		"fiatAmount": 50
	}`)

	cfg, err := ParseWidgetConfig(body)
	require.NoError(t, err)
	assert.Equal(t, "BUY", cfg.ProductsAvailed)
	assert.Equal(t, "USDC", cfg.CryptoCurrency)
	assert.Equal(t, "polygon", cfg.Network)
	assert.Equal(t, 50.0, cfg.FiatAmount)
}

func TestParseWidgetConfigRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{"productsAvailed":`},
		{name: "missing wallet", body: `{"productsAvailed":"BUY","cryptoCurrencyCode":"USDC","network":"polygon"}`},
		{name: "bad product", body: `{"productsAvailed":"SWAP","walletAddress":"0x34accc793fD8C2A8e262C8C95b18D706bc6022f0","cryptoCurrencyCode":"USDC","network":"polygon"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWidgetConfig([]byte(tt.body))
			require.Error(t, err)

			te, ok := types.IsTerminalError(err)
			require.True(t, ok)
			assert.Equal(t, types.ErrInvalidRequest, te.Code)
		})
	}
}
