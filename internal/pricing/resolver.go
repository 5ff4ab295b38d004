package pricing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xyzcommerce/supplier-discount-backend/pkg/enums"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/logger"
	"github.com/xyzcommerce/supplier-discount-backend/pkg/metrics"
)

const (
	outcomeApplied     = "applied"
	outcomePassthrough = "passthrough"
)

// Subject is the priceable entity a resolution works on: a product or a
// variation, identified by the id its metadata rows are keyed by.
type Subject struct {
	ID           uuid.UUID
	RegularPrice *decimal.Decimal
	SalePrice    *decimal.Decimal
}

type percentSource interface {
	DiscountPercent(ctx context.Context, ownerID uuid.UUID) (string, bool, error)
}

type settingsSource interface {
	ApplyOnSale(ctx context.Context) (bool, error)
	DisplayMode(ctx context.Context) (enums.DisplayMode, error)
}

// Resolver computes supplier-discounted prices. Resolution never surfaces an
// error to the caller: a failing metadata or settings lookup logs a warning
// and the incoming price passes through untouched.
type Resolver struct {
	percents percentSource
	settings settingsSource
	metrics  *metrics.PricingMetrics
	logg     *logger.Logger
}

// NewResolver constructs the discount resolver.
func NewResolver(percents percentSource, settings settingsSource, pricingMetrics *metrics.PricingMetrics, logg *logger.Logger) (*Resolver, error) {
	if percents == nil {
		return nil, fmt.Errorf("percent source required")
	}
	if settings == nil {
		return nil, fmt.Errorf("settings source required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Resolver{
		percents: percents,
		settings: settings,
		metrics:  pricingMetrics,
		logg:     logg,
	}, nil
}

// Resolve returns the price to charge for the subject. The request memo is
// consulted first; on a hit the memoized value is returned unchanged, which
// keeps resolution idempotent within a request even if the subject's prices
// change underneath it. Otherwise the discount percent is looked up, the base
// price is chosen per the apply-on-sale setting, and the discounted price is
// memoized before it is returned. Invalid or absent percents memoize and
// return current untouched.
func (r *Resolver) Resolve(ctx context.Context, subject Subject, current *decimal.Decimal) *decimal.Decimal {
	memo := MemoFromContext(ctx)
	if memoized, ok := memo.Get(subject.ID); ok {
		r.metrics.IncMemoHit()
		return memoized
	}

	percent, ok := r.percentFor(ctx, subject.ID)
	if !ok {
		memo.Set(subject.ID, current)
		r.metrics.IncResolution(outcomePassthrough)
		return current
	}

	base := r.basePrice(ctx, subject)
	if base == nil {
		base = current
	}
	if base == nil {
		memo.Set(subject.ID, current)
		r.metrics.IncResolution(outcomePassthrough)
		return current
	}

	discounted := applyPercent(*base, percent)
	memo.Set(subject.ID, &discounted)
	r.metrics.IncResolution(outcomeApplied)
	return &discounted
}

// ResolveForDisplay returns the base and discounted price pair for rendering,
// sharing the memo with Resolve so display and charge always agree. It reports
// not applicable when the percent is invalid or absent, the base price is
// missing, or the discounted price would not be lower than the base.
func (r *Resolver) ResolveForDisplay(ctx context.Context, subject Subject) (base, discounted decimal.Decimal, ok bool) {
	percent, valid := r.percentFor(ctx, subject.ID)
	if !valid {
		return decimal.Zero, decimal.Zero, false
	}

	basePtr := r.basePrice(ctx, subject)
	if basePtr == nil {
		return decimal.Zero, decimal.Zero, false
	}
	base = *basePtr

	memo := MemoFromContext(ctx)
	if memoized, hit := memo.Get(subject.ID); hit {
		r.metrics.IncMemoHit()
		if memoized == nil {
			return decimal.Zero, decimal.Zero, false
		}
		discounted = *memoized
	} else {
		discounted = applyPercent(base, percent)
		memo.Set(subject.ID, &discounted)
		r.metrics.IncResolution(outcomeApplied)
	}

	if discounted.GreaterThanOrEqual(base) {
		return decimal.Zero, decimal.Zero, false
	}
	return base, discounted, true
}

// DisplayMode reports the configured display mode, falling back to the
// strikethrough default when the settings store is unavailable.
func (r *Resolver) DisplayMode(ctx context.Context) enums.DisplayMode {
	mode, err := r.settings.DisplayMode(ctx)
	if err != nil {
		r.logg.Warn(r.logg.WithField(ctx, "error", err.Error()), "display mode lookup failed, using default")
		return enums.DisplayModeStrikethrough
	}
	return mode
}

func (r *Resolver) percentFor(ctx context.Context, ownerID uuid.UUID) (int64, bool) {
	raw, found, err := r.percents.DiscountPercent(ctx, ownerID)
	if err != nil {
		r.logg.Warn(r.logg.WithProductID(ctx, ownerID.String()), "discount percent lookup failed, passing price through")
		return 0, false
	}
	if !found {
		return 0, false
	}
	return ParsePercent(raw)
}

// basePrice picks the price the discount applies to: the sale price when the
// apply-on-sale setting is enabled and one exists, the regular price otherwise.
func (r *Resolver) basePrice(ctx context.Context, subject Subject) *decimal.Decimal {
	if r.applyOnSale(ctx) && subject.SalePrice != nil {
		return subject.SalePrice
	}
	return subject.RegularPrice
}

func (r *Resolver) applyOnSale(ctx context.Context) bool {
	enabled, err := r.settings.ApplyOnSale(ctx)
	if err != nil {
		r.logg.Warn(r.logg.WithField(ctx, "error", err.Error()), "apply-on-sale lookup failed, using default")
		return false
	}
	return enabled
}

func applyPercent(base decimal.Decimal, percent int64) decimal.Decimal {
	discount := base.Mul(decimal.NewFromInt(percent)).Div(decimal.NewFromInt(100))
	discounted := base.Sub(discount)
	if discounted.IsNegative() {
		return decimal.Zero
	}
	return discounted
}
