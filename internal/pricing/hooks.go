package pricing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EligibilityFunc decides whether the current request gets supplier pricing.
// The canonical predicate is "actor holds the supplier role and the request is
// not an administrative surface".
type EligibilityFunc func(ctx context.Context) bool

// Hooks is the price pipeline surface the catalog calls into. Hooks are always
// wired; ineligible requests pass through every hook untouched instead of the
// hooks being conditionally registered.
type Hooks struct {
	resolver  *Resolver
	formatter *Formatter
	eligible  EligibilityFunc
}

// NewHooks wires the pipeline hooks to a resolver, a formatter and the
// eligibility predicate.
func NewHooks(resolver *Resolver, formatter *Formatter, eligible EligibilityFunc) (*Hooks, error) {
	if resolver == nil {
		return nil, fmt.Errorf("resolver required")
	}
	if formatter == nil {
		return nil, fmt.Errorf("formatter required")
	}
	if eligible == nil {
		return nil, fmt.Errorf("eligibility predicate required")
	}
	return &Hooks{resolver: resolver, formatter: formatter, eligible: eligible}, nil
}

// ProductPrice adjusts the effective product price. A missing incoming price
// passes through untouched.
func (h *Hooks) ProductPrice(ctx context.Context, subject Subject, price *decimal.Decimal) *decimal.Decimal {
	if price == nil || !h.eligible(ctx) {
		return price
	}
	return h.resolver.Resolve(ctx, subject, price)
}

// SalePrice adjusts a sale price. Sale prices stay untouched unless the
// apply-on-sale setting is enabled, and a product without a sale price never
// gains one here.
func (h *Hooks) SalePrice(ctx context.Context, subject Subject, price *decimal.Decimal) *decimal.Decimal {
	if price == nil || !h.eligible(ctx) {
		return price
	}
	if !h.resolver.applyOnSale(ctx) {
		return price
	}
	return h.resolver.Resolve(ctx, subject, price)
}

// VariationPrice adjusts the effective price of a single variation. Variations
// carry their own metadata rows, so this is the product resolution keyed by
// the variation id. A missing incoming price passes through untouched.
func (h *Hooks) VariationPrice(ctx context.Context, subject Subject, price *decimal.Decimal) *decimal.Decimal {
	if price == nil || !h.eligible(ctx) {
		return price
	}
	return h.resolver.Resolve(ctx, subject, price)
}

// PriceHTML rewrites the rendered price markup. The markup stays untouched
// when the request is ineligible or the discount is not applicable, including
// when the discounted price would not be lower than the base.
func (h *Hooks) PriceHTML(ctx context.Context, subject Subject, html string) string {
	if !h.eligible(ctx) {
		return html
	}
	base, discounted, ok := h.resolver.ResolveForDisplay(ctx, subject)
	if !ok {
		return html
	}
	return h.formatter.Format(base, discounted, h.resolver.DisplayMode(ctx))
}

// VariationPrices rewrites a for-display map of variation id to price,
// resolving each variation through the shared memo. Entries whose discount is
// not applicable keep their original price.
func (h *Hooks) VariationPrices(ctx context.Context, subjects []Subject, prices map[uuid.UUID]decimal.Decimal) map[uuid.UUID]decimal.Decimal {
	if !h.eligible(ctx) {
		return prices
	}
	for _, subject := range subjects {
		if _, present := prices[subject.ID]; !present {
			continue
		}
		_, discounted, ok := h.resolver.ResolveForDisplay(ctx, subject)
		if !ok {
			continue
		}
		prices[subject.ID] = discounted
	}
	return prices
}
