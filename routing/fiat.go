package routing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Valerii9116/TimaxPaySolanaTransak/types"
)

type fiatDirection string

const (
	directionBuy  fiatDirection = "BUY"
	directionSell fiatDirection = "SELL"
)

// buildFiatRoute assembles the ramp provider's widget configuration for
// accept-fiat (BUY) and withdraw (SELL). The server injects the partner
// secret later; nothing secret appears here.
func (s *Selector) buildFiatRoute(conn types.WalletConnection, chain types.Chain, req Request, dir fiatDirection) (*types.RouteRequest, error) {
	networkName, ok := s.registry.RampNetwork(chain.ID)
	if !ok {
		return nil, &types.TerminalError{
			Code:    types.ErrUnsupportedNetwork,
			Message: fmt.Sprintf("network %s is not supported by the ramp provider", chain.Name),
		}
	}

	// The asset must exist on the selected chain even though the ramp
	// provider is custodial about delivery.
	if _, err := s.resolveDeployment(chain, req.Asset); err != nil {
		return nil, err
	}

	widget := &types.WidgetConfig{
		ProductsAvailed: string(dir),
		WalletAddress:   conn.Address,
		CryptoCurrency:  req.Asset,
		Network:         networkName,
		ReferrerDomain:  s.cfg.ReferrerDomain,
		HostURL:         "https://" + s.cfg.ReferrerDomain,
		RedirectURL:     "https://" + s.cfg.ReferrerDomain + "/",
		ThemeColor:      "1e1e1e",
		WidgetHeight:    "625px",
		WidgetWidth:     "450px",
		DisableAddress:  true,
		PartnerName:     "TimaxPay",
	}

	switch dir {
	case directionBuy:
		widget.FiatCurrency = s.cfg.DefaultFiatCurrency
		widget.PaymentMethod = "credit_debit_card"
		widget.ScreenTitle = "TimaxPay - Buy Cryptocurrency"

		// Amount is optional for BUY: the customer may pick it in the
		// widget. When preset it must clear the rail minimum.
		if req.Amount != "" {
			amount, err := decimal.NewFromString(req.Amount)
			if err != nil || !amount.IsPositive() {
				return nil, &types.TerminalError{
					Code:    types.ErrInvalidAmount,
					Message: fmt.Sprintf("invalid fiat amount: %q", req.Amount),
				}
			}
			if amount.LessThan(s.cfg.MinFiatAmount) {
				return nil, &types.TerminalError{
					Code: types.ErrBelowMinimum,
					Message: fmt.Sprintf("fiat amount %s is below the %s %s minimum",
						amount, s.cfg.MinFiatAmount, s.cfg.DefaultFiatCurrency),
				}
			}
			widget.FiatAmount = amount.InexactFloat64()
		}

	case directionSell:
		widget.HideMenu = true
		widget.PaymentMethod = "bank_transfer"
		widget.ScreenTitle = "TimaxPay - Withdraw to Bank Account"

		if err := s.positiveAmount(req.Amount); err != nil {
			return nil, err
		}
		amount, _ := decimal.NewFromString(req.Amount)
		widget.CryptoAmount = amount.InexactFloat64()
	}

	return &types.RouteRequest{
		Operation: req.Operation,
		Rail:      types.RailFiatRamp,
		ChainID:   chain.ID,
		Widget:    widget,
	}, nil
}
