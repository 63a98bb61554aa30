package types

// Rail is the payment mechanism a route resolves to.
type Rail string

const (
	RailFiatRamp Rail = "fiat-ramp"
	RailReceive  Rail = "receive"
	RailTransfer Rail = "transfer"
	RailBridge   Rail = "bridge"
)

// RouteRequest is a resolved, validated route for the current
// wallet/chain/asset selection. Exactly one payload pointer is set,
// matching Rail.
type RouteRequest struct {
	Operation Operation `json:"operation"`
	Rail      Rail      `json:"rail"`
	ChainID   ChainID   `json:"chainId"`

	Widget   *WidgetConfig       `json:"widget,omitempty"`
	Receive  *ReceiveRequest     `json:"receive,omitempty"`
	Transfer *TransferRequest    `json:"transfer,omitempty"`
	Bridge   *BridgeQuoteRequest `json:"bridge,omitempty"`
}

// WidgetConfig is the ramp provider's widget-url request body. Field
// names follow the provider's partner API; the server injects the
// partner secret before forwarding.
type WidgetConfig struct {
	ProductsAvailed string  `json:"productsAvailed" validate:"required,oneof=BUY SELL"`
	WalletAddress   string  `json:"walletAddress" validate:"required"`
	CryptoCurrency  string  `json:"cryptoCurrencyCode" validate:"required"`
	Network         string  `json:"network" validate:"required"`
	FiatCurrency    string  `json:"fiatCurrency,omitempty"`
	FiatAmount      float64 `json:"fiatAmount,omitempty"`
	CryptoAmount    float64 `json:"cryptoAmount,omitempty"`
	ReferrerDomain  string  `json:"referrerDomain,omitempty"`
	HostURL         string  `json:"hostURL,omitempty"`
	RedirectURL     string  `json:"redirectURL,omitempty"`
	ThemeColor      string  `json:"themeColor,omitempty"`
	HideMenu        bool    `json:"hideMenu,omitempty"`
	WidgetHeight    string  `json:"widgetHeight,omitempty"`
	WidgetWidth     string  `json:"widgetWidth,omitempty"`
	DisableAddress  bool    `json:"disableWalletAddressForm,omitempty"`
	PaymentMethod   string  `json:"defaultPaymentMethod,omitempty"`
	ScreenTitle     string  `json:"exchangeScreenTitle,omitempty"`
	PartnerName     string  `json:"partnerDisplayName,omitempty"`
	PartnerCustomer string  `json:"partnerCustomerId,omitempty"`
	PartnerOrderID  string  `json:"partnerOrderId,omitempty"`
}

// ReceiveRequest describes a direct crypto payment to the merchant.
// This is a local QR/display operation; no external API call is made.
type ReceiveRequest struct {
	ChainID         ChainID `json:"chainId"`
	AssetSymbol     string  `json:"assetSymbol"`
	TokenAddress    string  `json:"tokenAddress"` // NativeAddress for native currency
	Decimals        int     `json:"decimals"`
	MerchantAddress string  `json:"merchantAddress"`
	Amount          string  `json:"amount,omitempty"`
}

// TransferRequest describes an on-chain send from the connected wallet.
// RawAmount is the human amount scaled by the deployment's decimals.
type TransferRequest struct {
	ChainID      ChainID `json:"chainId"`
	AssetSymbol  string  `json:"assetSymbol"`
	Native       bool    `json:"native"`
	TokenAddress string  `json:"tokenAddress,omitempty"`
	Decimals     int     `json:"decimals"`
	From         string  `json:"from"`
	To           string  `json:"to"`
	Amount       string  `json:"amount"`
	RawAmount    string  `json:"rawAmount"`
}

// BridgeQuoteRequest is the cross-chain quote query. FromAmount is
// already scaled by the source asset's decimals on the source chain.
type BridgeQuoteRequest struct {
	FromChain   ChainID `json:"fromChain"`
	ToChain     ChainID `json:"toChain"`
	FromToken   string  `json:"fromToken"`
	ToToken     string  `json:"toToken"`
	FromAmount  string  `json:"fromAmount"`
	FromAddress string  `json:"fromAddress"`
	ToAddress   string  `json:"toAddress,omitempty"`
	Integrator  string  `json:"integrator"`
	Fee         string  `json:"fee"`
	Referrer    string  `json:"referrer"`
}
