package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/xyzcommerce/supplier-discount-backend/pkg/currency"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/enums"
)

// Formatter renders the base and discounted price pair as display markup.
// It is pure: same inputs, same markup.
type Formatter struct {
	currency *currency.Formatter
}

// NewFormatter wires the display formatter to a currency renderer.
func NewFormatter(currencyFormatter *currency.Formatter) (*Formatter, error) {
	if currencyFormatter == nil {
		return nil, fmt.Errorf("currency formatter required")
	}
	return &Formatter{currency: currencyFormatter}, nil
}

// Format renders the price pair in the requested display mode. Unknown modes
// fall back to strikethrough.
func (f *Formatter) Format(base, discounted decimal.Decimal, mode enums.DisplayMode) string {
	switch enums.SanitizeDisplayMode(mode.String()) {
	case enums.DisplayModeSimple:
		return f.currency.Format(discounted)
	default:
		return fmt.Sprintf("<del>%s</del> <ins>%s</ins>", f.currency.Format(base), f.currency.Format(discounted))
	}
}
