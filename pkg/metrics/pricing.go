package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PricingMetrics records how often supplier discounts resolve and memoize.
type PricingMetrics struct {
	resolutions *prometheus.CounterVec
	memoHits    prometheus.Counter
}

// NewPricingMetrics registers the pricing metrics on the provided registerer.
func NewPricingMetrics(reg prometheus.Registerer) *PricingMetrics {
	if reg == nil {
		return &PricingMetrics{}
	}
	resolutions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "supplier_discount_resolutions_total",
		Help: "Discount resolutions by outcome.",
	}, []string{"outcome"})
	memoHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "supplier_discount_memo_hits_total",
		Help: "Price resolutions served from the per-request memo.",
	})
	reg.MustRegister(resolutions, memoHits)
	return &PricingMetrics{
		resolutions: resolutions,
		memoHits:    memoHits,
	}
}

// IncResolution increments the resolution counter for the named outcome.
func (p *PricingMetrics) IncResolution(outcome string) {
	if p == nil || p.resolutions == nil {
		return
	}
	p.resolutions.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// IncMemoHit increments the memo hit counter.
func (p *PricingMetrics) IncMemoHit() {
	if p == nil || p.memoHits == nil {
		return
	}
	p.memoHits.Inc()
}

func normalizeLabel(outcome string) string {
	if outcome == "" {
		return "unknown"
	}
	return outcome
}
