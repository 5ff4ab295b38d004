package currency

import (
	"github.com/shopspring/decimal"

	"github.com/xyzcommerce/supplier-discount-backend/pkg/config"
)

// Formatter renders decimal amounts for display. The pricing core treats this
// as opaque; swapping it for a locale-aware implementation does not touch the
// discount math.
type Formatter struct {
	symbol   string
	decimals int32
}

// NewFormatter builds a formatter from the pricing configuration.
func NewFormatter(cfg config.PricingConfig) *Formatter {
	symbol := cfg.CurrencySymbol
	if symbol == "" {
		symbol = "$"
	}
	decimals := int32(cfg.CurrencyDecimals)
	if decimals < 0 {
		decimals = 2
	}
	return &Formatter{symbol: symbol, decimals: decimals}
}

// Format renders an amount with the configured symbol and scale.
func (f *Formatter) Format(amount decimal.Decimal) string {
	return f.symbol + amount.StringFixed(f.decimals)
}
